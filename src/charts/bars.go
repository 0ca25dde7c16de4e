package charts

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"math"

	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/Vanish0314/model-format-comparision/src/analysis"
)

// Series is one bar per group (group = model), index-aligned with
// BarSpec.Groups. A nil value is a missing measurement: it renders as an
// empty slot and is reported in Rendered.Missing, distinct from a measured
// zero which renders as a zero-height bar.
type Series struct {
	Name   string
	Color  drawing.Color
	Values []*float64
}

// BarSpec describes one grouped bar chart.
type BarSpec struct {
	Title  string
	YLabel string
	Groups []string
	Series []Series
	Width  int
	Height int
}

// Rendered is the outcome of drawing one chart.
type Rendered struct {
	PNG      []byte
	LogScale bool
	Missing  []string // "model (series)" entries that had no measurement
}

const (
	defaultChartWidth  = 1280
	defaultChartHeight = 640
)

// Render draws the grouped bar chart. The y axis uses log10 scaling when the
// plotted values span a dynamic range at or beyond
// analysis.LogScaleRatioThreshold, with decade ticks labeled in original
// magnitudes. The legend and a scale/missing-data note are stamped onto the
// PNG after rendering.
func Render(spec BarSpec) (*Rendered, error) {
	if spec.Width <= 0 {
		spec.Width = defaultChartWidth
	}
	if spec.Height <= 0 {
		spec.Height = defaultChartHeight
	}
	for _, s := range spec.Series {
		if len(s.Values) != len(spec.Groups) {
			return nil, fmt.Errorf("series %q has %d values for %d groups", s.Name, len(s.Values), len(spec.Groups))
		}
	}

	var all []*float64
	missing := []string{}
	for _, s := range spec.Series {
		all = append(all, s.Values...)
		for gi, v := range s.Values {
			if v == nil {
				missing = append(missing, fmt.Sprintf("%s (%s)", spec.Groups[gi], s.Name))
			}
		}
	}
	minVal, maxVal, minPos, present := scan(all)
	if len(spec.Groups) == 0 || present == 0 {
		return renderEmpty(spec, missing)
	}

	useLog := analysis.ShouldUseLogScale(all)
	var (
		rng   *chart.ContinuousRange
		ticks []chart.Tick
		base  float64
	)
	if useLog {
		maxPos := maxVal
		rng, ticks = logRangeAndTicks(minPos, maxPos)
		base = rng.Min
	} else {
		rng, ticks = linearRangeAndTicks(math.Min(minVal, 0), maxVal, 6)
		base = 0
	}

	bars, barWidth, spacing := layoutBars(spec, useLog, base)
	yLabel := spec.YLabel
	if useLog {
		yLabel += " (log scale)"
	}
	bc := chart.BarChart{
		Title:      spec.Title,
		Width:      spec.Width,
		Height:     spec.Height,
		BarWidth:   barWidth,
		BarSpacing: spacing,
		Background: chart.Style{Padding: chart.Box{Top: 40, Left: 16, Right: 16, Bottom: 24}},
		YAxis: chart.YAxis{
			Name:  yLabel,
			Range: rng,
			Ticks: ticks,
		},
		UseBaseValue: true,
		BaseValue:    base,
		Bars:         bars,
	}
	var buf bytes.Buffer
	if err := bc.Render(chart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("render chart %q: %w", spec.Title, err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		return nil, fmt.Errorf("decode rendered chart %q: %w", spec.Title, err)
	}
	img = stampLegend(img, legendEntries(spec.Series))
	img = stampNote(img, noteText(useLog, missing))
	return encode(img, useLog, missing)
}

// layoutBars flattens groups x series into go-chart's flat bar list, with a
// transparent spacer slot between groups. The group label sits under the
// middle bar of each group.
func layoutBars(spec BarSpec, useLog bool, base float64) ([]chart.Value, int, int) {
	nGroups := len(spec.Groups)
	nSeries := len(spec.Series)
	slots := nGroups*nSeries + (nGroups - 1) // spacers between groups
	if slots < 1 {
		slots = 1
	}
	spacing := 4
	barWidth := (spec.Width - 120 - slots*spacing) / slots
	if barWidth < 4 {
		barWidth = 4
	}
	if barWidth > 60 {
		barWidth = 60
	}
	labelAt := (nSeries - 1) / 2
	bars := make([]chart.Value, 0, slots)
	for gi, group := range spec.Groups {
		if gi > 0 {
			bars = append(bars, chart.Value{
				Value: base,
				Style: chart.Style{FillColor: drawing.ColorTransparent, StrokeColor: drawing.ColorTransparent},
			})
		}
		for si, s := range spec.Series {
			label := ""
			if si == labelAt {
				label = group
			}
			bars = append(bars, chart.Value{
				Value: plotted(s.Values[gi], useLog, base),
				Label: label,
				Style: chart.Style{FillColor: s.Color, StrokeColor: s.Color, StrokeWidth: 1},
			})
		}
	}
	return bars, barWidth, spacing
}

// plotted maps a nullable measurement to its axis position. Missing values
// and values a log axis cannot represent sit at the base line (zero height).
func plotted(v *float64, useLog bool, base float64) float64 {
	if v == nil {
		return base
	}
	if useLog {
		if *v <= 0 {
			return base
		}
		return math.Log10(*v)
	}
	return *v
}

func scan(values []*float64) (min, max, minPos float64, present int) {
	positives := 0
	for _, v := range values {
		if v == nil {
			continue
		}
		if present == 0 {
			min, max = *v, *v
		}
		if *v < min {
			min = *v
		}
		if *v > max {
			max = *v
		}
		if *v > 0 {
			if positives == 0 || *v < minPos {
				minPos = *v
			}
			positives++
		}
		present++
	}
	if positives == 0 {
		minPos = 1 // log range fallback; log scale never triggers without positives
	}
	return min, max, minPos, present
}

func legendEntries(series []Series) []LegendEntry {
	out := make([]LegendEntry, 0, len(series))
	for _, s := range series {
		out = append(out, LegendEntry{Label: s.Name, Color: s.Color})
	}
	return out
}

func noteText(useLog bool, missing []string) string {
	scale := "linear"
	if useLog {
		scale = "logarithmic"
	}
	if len(missing) == 0 {
		return fmt.Sprintf("y-axis: %s scale", scale)
	}
	return fmt.Sprintf("y-axis: %s scale; %d missing measurement(s), see page note", scale, len(missing))
}

func renderEmpty(spec BarSpec, missing []string) (*Rendered, error) {
	img := stampNote(blank(spec.Width, spec.Height), "no plottable data")
	return encode(img, false, missing)
}

func encode(img image.Image, useLog bool, missing []string) (*Rendered, error) {
	var out bytes.Buffer
	if err := png.Encode(&out, img); err != nil {
		return nil, fmt.Errorf("encode chart png: %w", err)
	}
	return &Rendered{PNG: out.Bytes(), LogScale: useLog, Missing: missing}, nil
}
