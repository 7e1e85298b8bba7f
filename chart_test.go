package ggchart

import (
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/gogpu/ggchart/paint"
	"github.com/gogpu/ggchart/recording"
)

// mustBuild returns a function that unwraps a builder's results, failing
// the test on error. Use as mustBuild(t)(BuildPeriodChart(records)).
func mustBuild(t *testing.T) func(*recording.Recording, error) *recording.Recording {
	t.Helper()
	return func(rec *recording.Recording, err error) *recording.Recording {
		t.Helper()
		if err != nil {
			t.Fatalf("build: %v", err)
		}
		if rec == nil {
			t.Fatal("build returned nil recording")
		}
		return rec
	}
}

// bars returns the rectangles after the background.
func bars(rec *recording.Recording) []recording.FillRectCommand {
	var out []recording.FillRectCommand
	for _, c := range rec.Commands() {
		if fr, ok := c.(recording.FillRectCommand); ok {
			out = append(out, fr)
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out[1:]
}

func texts(rec *recording.Recording) []recording.DrawTextCommand {
	var out []recording.DrawTextCommand
	for _, c := range rec.Commands() {
		if dt, ok := c.(recording.DrawTextCommand); ok {
			out = append(out, dt)
		}
	}
	return out
}

func findText(t *testing.T, rec *recording.Recording, s string) recording.DrawTextCommand {
	t.Helper()
	for _, dt := range texts(rec) {
		if dt.Text == s {
			return dt
		}
	}
	t.Fatalf("text %q not recorded; have %q", s, rec.Texts())
	return recording.DrawTextCommand{}
}

func TestPeriodChartCounts(t *testing.T) {
	rec := mustBuild(t)(BuildPeriodChart(PeriodData()))

	if rec.Width() != 800 || rec.Height() != 400 {
		t.Errorf("canvas = %dx%d, want 800x400", rec.Width(), rec.Height())
	}
	if got := rec.Count(recording.CmdFillRect); got != 5 {
		t.Errorf("rects = %d, want 5 (background + 4 bars)", got)
	}
	if got := rec.Count(recording.CmdStrokeLine); got != 5 {
		t.Errorf("lines = %d, want 5 grid lines", got)
	}
	// 5 grid labels, 4 x (value + 2 label lines), axis title, title
	if got := rec.Count(recording.CmdDrawText); got != 19 {
		t.Errorf("texts = %d, want 19", got)
	}
}

func TestGridLabels(t *testing.T) {
	tests := []struct {
		name string
		rec  *recording.Recording
		want []string
	}{
		{"period", mustBuild(t)(BuildPeriodChart(PeriodData())), []string{"0.0x", "0.8x", "1.5x", "2.3x", "3.0x"}},
		{"instrument", mustBuild(t)(BuildInstrumentChart(InstrumentData())), []string{"0%", "20%", "40%", "60%", "80%", "100%"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := texts(tt.rec)
			if len(got) < len(tt.want) {
				t.Fatalf("recorded %d texts, want at least %d", len(got), len(tt.want))
			}
			for i, want := range tt.want {
				if got[i].Text != want {
					t.Errorf("grid label %d = %q, want %q", i, got[i].Text, want)
				}
			}
		})
	}
}

func TestPeriodChartContent(t *testing.T) {
	rec := mustBuild(t)(BuildPeriodChart(PeriodData()))

	bg := rec.Commands()[0].(recording.FillRectCommand)
	if bg.Rect != recording.NewRect(0, 0, 800, 400) || recording.BrushColor(bg.Brush) != paint.Background {
		t.Errorf("background = %+v", bg)
	}

	wantColors := []paint.RGBA{paint.Gold, paint.Green, paint.Green, paint.Blue}
	for i, b := range bars(rec) {
		if got := recording.BrushColor(b.Brush); got != wantColors[i] {
			t.Errorf("bar %d color = %s, want %s", i, got.Hex(), wantColors[i].Hex())
		}
		if b.Radius != BarRadius {
			t.Errorf("bar %d radius = %v, want %v", i, b.Radius, BarRadius)
		}
		if b.Class != "bar" {
			t.Errorf("bar %d class = %q, want bar", i, b.Class)
		}
	}

	for _, s := range []string{"0.0x", "0.8x", "1.5x", "2.3x", "3.0x", "2.80x", "1.90x", "2.50x", "2.56x",
		"COVID", "2020-2021", "FULL", "6-YEAR", "Concentration Factor", "Order Block Concentration by Period"} {
		findText(t, rec, s)
	}

	l := ComputeLayout(Canvas, PeriodPadding, 4, PeriodAxisMax)
	first := findText(t, rec, "Post-COVID")
	second := findText(t, rec, "2022-2023")
	if first.Font.Weight != recording.WeightSemiBold || second.Font.Weight != recording.WeightRegular {
		t.Errorf("label weights = %d/%d, want 600/400", first.Font.Weight, second.Font.Weight)
	}
	if first.Y != l.PlotHeight+20 || second.Y != l.PlotHeight+36 {
		t.Errorf("label lines at y=%v,%v, want %v,%v", first.Y, second.Y, l.PlotHeight+20, l.PlotHeight+36)
	}
	if first.X != l.BarCenter(1) || first.Anchor != recording.AnchorMiddle {
		t.Errorf("label at x=%v anchor %s, want %v middle", first.X, first.Anchor, l.BarCenter(1))
	}

	value := findText(t, rec, "2.80x")
	if !almostEqual(value.Y, l.BarTop(2.80)-10) || value.Font.Size != 14 {
		t.Errorf("value label = %+v", value)
	}

	grid := findText(t, rec, "3.0x")
	if grid.X != -10 || grid.Y != 4 || grid.Anchor != recording.AnchorEnd {
		t.Errorf("top grid label = %+v", grid)
	}
}

func TestInstrumentChartCounts(t *testing.T) {
	rec := mustBuild(t)(BuildInstrumentChart(InstrumentData()))

	if got := rec.Count(recording.CmdFillRect); got != 6 {
		t.Errorf("rects = %d, want 6", got)
	}
	if got := rec.Count(recording.CmdStrokeLine); got != 7 {
		t.Errorf("lines = %d, want 7 (6 grid + baseline)", got)
	}
	// 6 grid labels, baseline label, 5 x (value + name), axis title, title
	if got := rec.Count(recording.CmdDrawText); got != 19 {
		t.Errorf("texts = %d, want 19", got)
	}
}

func TestInstrumentChartContent(t *testing.T) {
	rec := mustBuild(t)(BuildInstrumentChart(InstrumentData()))

	wantColors := []paint.RGBA{paint.Gold, paint.Green, paint.Gray, paint.Gray, paint.Red}
	for i, b := range bars(rec) {
		if got := recording.BrushColor(b.Brush); got != wantColors[i] {
			t.Errorf("bar %d color = %s, want %s", i, got.Hex(), wantColors[i].Hex())
		}
		if b.Class != "" {
			t.Errorf("instrument bar %d class = %q, want none", i, b.Class)
		}
	}

	for _, s := range []string{"0%", "20%", "100%", "95.3%", "80.0%", "71.4%", "75.0%", "16.7%",
		"XAUUSD", "GBPUSD", "33.3% Baseline", "OB Concentration (%)", "Order Block Concentration by Instrument"} {
		findText(t, rec, s)
	}

	l := ComputeLayout(Canvas, InstrumentPadding, 5, InstrumentAxisMax)
	var baseline recording.StrokeLineCommand
	for _, c := range rec.Commands() {
		if sl, ok := c.(recording.StrokeLineCommand); ok && sl.Stroke.Width == 2 {
			baseline = sl
		}
	}
	if !almostEqual(baseline.Y1, l.BarTop(Baseline)) || baseline.X2 != l.PlotWidth {
		t.Errorf("baseline = %+v", baseline)
	}
	if !reflect.DeepEqual(baseline.Stroke.DashPattern, []float64{8, 4}) {
		t.Errorf("baseline dash = %v, want [8 4]", baseline.Stroke.DashPattern)
	}

	label := findText(t, rec, "33.3% Baseline")
	if label.X != l.PlotWidth-5 || !almostEqual(label.Y, l.BarTop(Baseline)-5) || label.Font.Size != 11 {
		t.Errorf("baseline label = %+v", label)
	}
	if recording.BrushColor(label.Brush) != paint.Red {
		t.Errorf("baseline label color = %s", recording.BrushColor(label.Brush).Hex())
	}

	name := findText(t, rec, "XAUUSD")
	if name.Y != l.PlotHeight+25 || name.Font.Weight != recording.WeightSemiBold {
		t.Errorf("name label = %+v", name)
	}
}

func TestBarsWithinPlot(t *testing.T) {
	rec := mustBuild(t)(BuildInstrumentChart(InstrumentData()))
	l := ComputeLayout(Canvas, InstrumentPadding, 5, InstrumentAxisMax)
	for i, b := range bars(rec) {
		if b.Rect.MinY < -1e-9 || b.Rect.MaxY > l.PlotHeight+1e-9 {
			t.Errorf("bar %d vertical extent [%v, %v] outside plot", i, b.Rect.MinY, b.Rect.MaxY)
		}
		if !almostEqual(b.Rect.MaxY, l.PlotHeight) {
			t.Errorf("bar %d does not stand on the axis: bottom %v", i, b.Rect.MaxY)
		}
	}
}

func TestAxisTitleRotated(t *testing.T) {
	rec := mustBuild(t)(BuildPeriodChart(PeriodData()))

	var current recording.Matrix
	for _, c := range rec.Commands() {
		switch c := c.(type) {
		case recording.SetTransformCommand:
			current = c.Matrix
		case recording.DrawTextCommand:
			if c.Text != "Concentration Factor" {
				continue
			}
			want := recording.Matrix{A: 0, B: 1, C: 15, D: -1, E: 0, F: 180}
			if current != want {
				t.Errorf("axis title transform = %+v, want %+v", current, want)
			}
			return
		}
	}
	t.Fatal("axis title not found")
}

func TestBuildDeterministic(t *testing.T) {
	a := mustBuild(t)(BuildInstrumentChart(InstrumentData()))
	b := mustBuild(t)(BuildInstrumentChart(InstrumentData()))
	if a == b {
		t.Fatal("each build must return a fresh recording")
	}
	if !reflect.DeepEqual(a.Commands(), b.Commands()) {
		t.Error("equal input produced different command lists")
	}
}

func TestBuildEmpty(t *testing.T) {
	rec := mustBuild(t)(BuildPeriodChart(nil))
	if got := rec.Count(recording.CmdFillRect); got != 1 {
		t.Errorf("rects = %d, want background only", got)
	}
	if got := rec.Count(recording.CmdDrawText); got != 7 {
		t.Errorf("texts = %d, want 5 grid labels + 2 titles", got)
	}

	rec = mustBuild(t)(BuildInstrumentChart([]InstrumentRecord{}))
	if got := rec.Count(recording.CmdStrokeLine); got != 7 {
		t.Errorf("lines = %d, want grid + baseline", got)
	}
}

func TestBuildSingleRecord(t *testing.T) {
	rec := mustBuild(t)(BuildPeriodChart([]PeriodRecord{{Label: "ONLY", Ratio: 1.5}}))
	b := bars(rec)
	if len(b) != 1 {
		t.Fatalf("bars = %d, want 1", len(b))
	}
	if got := recording.BrushColor(b[0].Brush); got != paint.Gold {
		t.Errorf("single period color = %s, want gold", got.Hex())
	}
	l := ComputeLayout(Canvas, PeriodPadding, 1, PeriodAxisMax)
	if !almostEqual(b[0].Rect.X(), (l.PlotWidth-l.BarWidth)/2) {
		t.Errorf("single bar x = %v, want centered", b[0].Rect.X())
	}
}

func TestOutOfRangeLenient(t *testing.T) {
	logs := captureLogs(t)
	recs := []InstrumentRecord{{Name: "HIGH", OBPercent: 120}}

	rec := mustBuild(t)(BuildInstrumentChart(recs))
	b := bars(rec)
	if len(b) != 1 || b[0].Rect.MinY >= 0 {
		t.Errorf("over-range bar should extend above the plot area: %+v", b)
	}
	if !strings.Contains(logs.String(), "out-of-range") {
		t.Errorf("expected a warning, got %q", logs.String())
	}
}

func TestOutOfRangeStrict(t *testing.T) {
	recs := []InstrumentRecord{{Name: "OK", OBPercent: 50}, {Name: "LOW", OBPercent: -1}}
	rec, err := BuildInstrumentChart(recs, WithStrict())
	if rec != nil {
		t.Error("strict build should not return a recording")
	}
	if !errors.Is(err, ErrOutOfRange) {
		t.Fatalf("err = %v, want ErrOutOfRange", err)
	}
	var re *RangeError
	if !errors.As(err, &re) || re.Index != 1 || re.Chart != "instrument" {
		t.Errorf("RangeError = %+v", re)
	}
}

func TestLabelOverflowWarning(t *testing.T) {
	logs := captureLogs(t)
	recs := InstrumentData()
	recs[0].Name = "AN EXTREMELY LONG INSTRUMENT NAME"

	mustBuild(t)(BuildInstrumentChart(recs))
	if !strings.Contains(logs.String(), "wider than its slot") {
		t.Errorf("expected overflow warning, got %q", logs.String())
	}
	if strings.Count(logs.String(), "wider than its slot") != 1 {
		t.Errorf("only the long label should overflow: %q", logs.String())
	}
}
