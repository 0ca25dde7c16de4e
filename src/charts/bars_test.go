package charts

import (
	"bytes"
	"image/png"
	"testing"

	"github.com/Vanish0314/model-format-comparision/src/types"
)

func fp(v float64) *float64 { return &v }

func TestRenderGroupedBars(t *testing.T) {
	spec := BarSpec{
		Title:  "Size Before Zip",
		YLabel: "Size (MB)",
		Groups: []string{"dragon", "crate", "ghost"},
		Series: []Series{
			{Name: "FBX", Color: FormatColor(types.FormatFBX), Values: []*float64{fp(400), fp(40), nil}},
			{Name: "OBJ", Color: FormatColor(types.FormatOBJ), Values: []*float64{fp(650), fp(10), fp(12)}},
		},
	}
	r, err := Render(spec)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	img, err := png.Decode(bytes.NewReader(r.PNG))
	if err != nil {
		t.Fatalf("output is not a decodable png: %v", err)
	}
	if img.Bounds().Dx() != defaultChartWidth || img.Bounds().Dy() != defaultChartHeight {
		t.Fatalf("unexpected dimensions %v", img.Bounds())
	}
	if len(r.Missing) != 1 || r.Missing[0] != "ghost (FBX)" {
		t.Fatalf("missing list wrong: %v", r.Missing)
	}
	if r.LogScale {
		t.Fatalf("650/10 is a 65x range, below the log threshold")
	}
}

func TestRenderLogScaleFlag(t *testing.T) {
	spec := BarSpec{
		Title:  "Import Time",
		YLabel: "Seconds",
		Groups: []string{"a", "b"},
		Series: []Series{
			{Name: "FBX", Color: FormatColor(types.FormatFBX), Values: []*float64{fp(0.05), fp(30)}},
		},
	}
	r, err := Render(spec)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !r.LogScale {
		t.Fatalf("0.05 vs 30 spans a 600x range, expected log scale")
	}
}

func TestRenderSeriesLengthMismatch(t *testing.T) {
	spec := BarSpec{
		Title:  "bad",
		Groups: []string{"a", "b"},
		Series: []Series{{Name: "FBX", Values: []*float64{fp(1)}}},
	}
	if _, err := Render(spec); err == nil {
		t.Fatalf("expected length mismatch error")
	}
}

func TestRenderNoPlottableData(t *testing.T) {
	spec := BarSpec{
		Title:  "empty",
		Groups: []string{"a", "b"},
		Series: []Series{{Name: "FBX", Values: []*float64{nil, nil}}},
	}
	r, err := Render(spec)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if _, err := png.Decode(bytes.NewReader(r.PNG)); err != nil {
		t.Fatalf("placeholder must still be a png: %v", err)
	}
	if r.LogScale {
		t.Fatalf("placeholder never uses log scale")
	}
	if len(r.Missing) != 2 {
		t.Fatalf("expected both slots reported missing, got %v", r.Missing)
	}
}

func TestPlottedMapsUnrepresentableToBase(t *testing.T) {
	if got := plotted(nil, false, 0); got != 0 {
		t.Fatalf("nil on linear axis: %v", got)
	}
	if got := plotted(fp(-3), true, -1); got != -1 {
		t.Fatalf("negative on log axis must sit at base, got %v", got)
	}
	if got := plotted(fp(100), true, 0); got != 2 {
		t.Fatalf("log10(100) = 2, got %v", got)
	}
}

func TestScanDistinguishesZeroFromMissing(t *testing.T) {
	min, max, _, present := scan([]*float64{nil, fp(0), fp(5)})
	if present != 2 {
		t.Fatalf("two measured values, got %d", present)
	}
	if min != 0 || max != 5 {
		t.Fatalf("min/max wrong: %v %v", min, max)
	}
	_, _, _, present = scan([]*float64{nil, nil})
	if present != 0 {
		t.Fatalf("all-nil input has nothing present")
	}
}

func TestNoteText(t *testing.T) {
	if got := noteText(false, nil); got != "y-axis: linear scale" {
		t.Fatalf("unexpected note %q", got)
	}
	got := noteText(true, []string{"a (FBX)"})
	if got != "y-axis: logarithmic scale; 1 missing measurement(s), see page note" {
		t.Fatalf("unexpected note %q", got)
	}
}
