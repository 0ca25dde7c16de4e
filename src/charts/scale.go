package charts

import (
	"fmt"
	"math"

	chart "github.com/wcharczuk/go-chart/v2"
)

// linearRangeAndTicks builds a zero-anchored (or signed, when negatives are
// present) axis range with up to n "nice" ticks. Steps are chosen from
// 1/2/2.5/5/10 scaled by the span's order of magnitude.
func linearRangeAndTicks(min, max float64, n int) (*chart.ContinuousRange, []chart.Tick) {
	if min > 0 {
		min = 0 // non-negative data anchors at zero
	}
	if max <= min {
		max = min + 1
	}
	step := niceStep(min, max, n)
	lo := math.Floor(min/step) * step
	hi := math.Ceil(max/step) * step
	ticks := []chart.Tick{}
	for v := lo; v <= hi+step/2; v += step {
		ticks = append(ticks, chart.Tick{Value: v, Label: formatTick(v)})
		if len(ticks) > n+2 {
			break
		}
	}
	return &chart.ContinuousRange{Min: lo, Max: hi}, ticks
}

// niceStep picks the candidate step giving a tick count closest to n.
func niceStep(min, max float64, n int) float64 {
	if n < 2 {
		n = 2
	}
	span := max - min
	mag := math.Pow(10, math.Floor(math.Log10(span/float64(n-1))))
	best := mag
	bestScore := math.MaxFloat64
	for _, c := range []float64{1, 2, 2.5, 5, 10} {
		step := c * mag
		count := math.Ceil(span / step)
		if count < 2 {
			count = 2
		}
		score := math.Abs(count - float64(n))
		if score < bestScore {
			bestScore = score
			best = step
		}
	}
	return best
}

// logRangeAndTicks builds a log10-domain range covering the positive values
// [minPos, maxPos], with one tick per decade labeled in the original
// magnitudes. Bars plotted on this axis carry log10(v) values.
func logRangeAndTicks(minPos, maxPos float64) (*chart.ContinuousRange, []chart.Tick) {
	lo := math.Floor(math.Log10(minPos))
	hi := math.Ceil(math.Log10(maxPos))
	if hi <= lo {
		hi = lo + 1
	}
	ticks := []chart.Tick{}
	for d := lo; d <= hi+0.5; d++ {
		ticks = append(ticks, chart.Tick{Value: d, Label: formatTick(math.Pow(10, d))})
	}
	return &chart.ContinuousRange{Min: lo, Max: hi}, ticks
}

// formatTick trims tick labels to a precision appropriate for the magnitude.
func formatTick(v float64) string {
	if v == 0 {
		return "0"
	}
	av := math.Abs(v)
	switch {
	case av >= 100:
		return fmt.Sprintf("%.0f", v)
	case av >= 10:
		return fmt.Sprintf("%.1f", v)
	case av >= 1:
		return fmt.Sprintf("%.1f", v)
	case av >= 0.01:
		return fmt.Sprintf("%.2f", v)
	default:
		return fmt.Sprintf("%.3g", v)
	}
}
