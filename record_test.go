package ggchart

import "testing"

func TestDatasets(t *testing.T) {
	p := PeriodData()
	if len(p) != 4 || p[0].Label != "COVID\n2020-2021" || p[3].Zones != 130 {
		t.Errorf("PeriodData() = %+v", p)
	}
	in := InstrumentData()
	if len(in) != 5 || !in[0].Primary || in[4].Name != "GBPUSD" {
		t.Errorf("InstrumentData() = %+v", in)
	}
	for i, r := range in[1:] {
		if r.Primary {
			t.Errorf("instrument %d should not be primary", i+1)
		}
	}
}

func TestDatasetsAreCopies(t *testing.T) {
	p := PeriodData()
	p[0].Ratio = 0
	if PeriodData()[0].Ratio != 2.80 {
		t.Error("mutating a returned dataset changed the built-in data")
	}
	in := InstrumentData()
	in[0].Primary = false
	if !InstrumentData()[0].Primary {
		t.Error("mutating a returned dataset changed the built-in data")
	}
}
