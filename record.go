package ggchart

// PeriodRecord is one bar of the period comparison chart.
type PeriodRecord struct {
	// Label is the category text; lines are separated by "\n".
	Label string `yaml:"label"`

	// Ratio is the concentration factor, plotted on a 0..3 axis.
	Ratio float64 `yaml:"ratio"`

	// Zones is the number of detected zones. Informational only.
	Zones int `yaml:"zones"`

	// OBPercent is the order block percentage. Informational only.
	OBPercent float64 `yaml:"ob_percent"`
}

// InstrumentRecord is one bar of the instrument comparison chart.
type InstrumentRecord struct {
	Name      string  `yaml:"name"`
	OBPercent float64 `yaml:"ob_percent"`
	Zones     int     `yaml:"zones"`
	Primary   bool    `yaml:"primary"`
}

var periodData = [...]PeriodRecord{
	{Label: "COVID\n2020-2021", Ratio: 2.80, Zones: 88, OBPercent: 93.2},
	{Label: "Post-COVID\n2022-2023", Ratio: 1.90, Zones: 30, OBPercent: 63.3},
	{Label: "Recent\n2024-2025", Ratio: 2.50, Zones: 12, OBPercent: 83.3},
	{Label: "FULL\n6-YEAR", Ratio: 2.56, Zones: 130, OBPercent: 85.4},
}

var instrumentData = [...]InstrumentRecord{
	{Name: "XAUUSD", OBPercent: 95.3, Zones: 85, Primary: true},
	{Name: "EURUSD", OBPercent: 80.0, Zones: 10},
	{Name: "USDJPY", OBPercent: 71.4, Zones: 7},
	{Name: "BTCUSD", OBPercent: 75.0, Zones: 16},
	{Name: "GBPUSD", OBPercent: 16.7, Zones: 12},
}

// PeriodData returns a copy of the built-in period dataset.
func PeriodData() []PeriodRecord {
	out := make([]PeriodRecord, len(periodData))
	copy(out, periodData[:])
	return out
}

// InstrumentData returns a copy of the built-in instrument dataset.
func InstrumentData() []InstrumentRecord {
	out := make([]InstrumentRecord, len(instrumentData))
	copy(out, instrumentData[:])
	return out
}
