// Package analysis implements the aggregation pipeline behind every chart:
// deciding which models carry displayable data, aligning per-format series by
// model, deriving ratio metrics, and choosing linear vs logarithmic axis
// scaling. All functions are pure transforms over an immutable metrics table;
// degenerate input (empty table, all-missing metrics, zero divisors) yields
// nils or empty slices, never an error.
package analysis

import (
	"github.com/Vanish0314/model-format-comparision/src/types"
)

// LogScaleRatioThreshold is the max/min dynamic-range ratio at or above which
// a chart axis switches to logarithmic scaling. Older report revisions drifted
// between >10 and >=100; 100 is the majority behavior and is applied uniformly.
const LogScaleRatioThreshold = 100.0

// SelectModelsWithData filters the table down to models that have at least one
// positive measurement among the given (format, metric) combinations. A model
// with only nil or non-positive entries across the whole cross product is
// dropped entirely rather than rendered as an all-missing row. Output slices
// are index-aligned (model id, face count, texture count) and preserve the
// table's source order.
func SelectModelsWithData(t *types.Table, formats []types.Format, keys []types.MetricKey) (ids []string, faceCounts, textureCounts []int) {
	ids = []string{}
	faceCounts = []int{}
	textureCounts = []int{}
	if t == nil {
		return ids, faceCounts, textureCounts
	}
	for _, id := range t.Order {
		rec, ok := t.Records[id]
		if !ok {
			continue
		}
		if !hasAnyPositive(rec, formats, keys) {
			continue
		}
		ids = append(ids, id)
		faceCounts = append(faceCounts, rec.FaceCountK)
		textureCounts = append(textureCounts, rec.TextureCount)
	}
	return ids, faceCounts, textureCounts
}

func hasAnyPositive(rec types.ModelRecord, formats []types.Format, keys []types.MetricKey) bool {
	for _, f := range formats {
		fm, ok := rec.Formats[f]
		if !ok {
			continue
		}
		for _, k := range keys {
			if v := fm.Value(k); v != nil && *v > 0 {
				return true
			}
		}
	}
	return false
}

// ExtractSeries returns the metric values for one format across the given
// models, index-aligned with ids. A model that lacks the format, or measured
// the format but not this metric, contributes nil rather than zero, so the
// renderer can tell "not measured" apart from "measured as zero".
func ExtractSeries(t *types.Table, ids []string, format types.Format, key types.MetricKey) []*float64 {
	out := make([]*float64, len(ids))
	if t == nil {
		return out
	}
	for i, id := range ids {
		rec, ok := t.Records[id]
		if !ok {
			continue
		}
		fm, ok := rec.Formats[format]
		if !ok {
			continue
		}
		out[i] = fm.Value(key)
	}
	return out
}

// CompressionRatio derives the percentage size reduction from uncompressed to
// compressed form: (1 - after/before) * 100. The ratio is undefined (nil)
// when either input is missing or when before is zero; a negative result
// means the archive inflated the file and is reported as-is, never clamped.
func CompressionRatio(beforeMB, afterMB *float64) *float64 {
	if beforeMB == nil || *beforeMB == 0 || afterMB == nil {
		return nil
	}
	r := (1 - *afterMB / *beforeMB) * 100
	return &r
}

// TextureShare derives the percentage of the uncompressed file size
// attributable to texture payload: (texture/before) * 100. The guard is
// asymmetric on purpose: before must be present and non-zero, but a texture
// size of exactly 0 is a valid measurement (model with no textures) and
// yields a share of 0. Only a missing texture size yields nil.
func TextureShare(beforeMB, textureMB *float64) *float64 {
	if beforeMB == nil || *beforeMB == 0 || textureMB == nil {
		return nil
	}
	r := *textureMB / *beforeMB * 100
	return &r
}

// CompressionSeries derives the per-model compression ratio for one format,
// index-aligned with ids.
func CompressionSeries(t *types.Table, ids []string, format types.Format) []*float64 {
	before := ExtractSeries(t, ids, format, types.MetricSizeBeforeZipMB)
	after := ExtractSeries(t, ids, format, types.MetricSizeAfterZipMB)
	out := make([]*float64, len(ids))
	for i := range ids {
		out[i] = CompressionRatio(before[i], after[i])
	}
	return out
}

// TextureShareSeries derives the per-model texture share for one format,
// index-aligned with ids.
func TextureShareSeries(t *types.Table, ids []string, format types.Format) []*float64 {
	before := ExtractSeries(t, ids, format, types.MetricSizeBeforeZipMB)
	texture := ExtractSeries(t, ids, format, types.MetricTextureSizeBeforeZipMB)
	out := make([]*float64, len(ids))
	for i := range ids {
		out[i] = TextureShare(before[i], texture[i])
	}
	return out
}

// ShouldUseLogScale reports whether the values destined for one chart axis
// span a dynamic range wide enough that a linear axis would squash the small
// entries into illegibility. Nils and non-positive values are discarded
// first; fewer than two survivors never justify a log axis. The max/min ratio
// test is scale-invariant: multiplying every value by a positive constant
// does not change the outcome.
func ShouldUseLogScale(values []*float64) bool {
	var min, max float64
	n := 0
	for _, v := range values {
		if v == nil || *v <= 0 {
			continue
		}
		if n == 0 || *v < min {
			min = *v
		}
		if n == 0 || *v > max {
			max = *v
		}
		n++
	}
	if n < 2 {
		return false
	}
	return max/min >= LogScaleRatioThreshold
}

// KeepIndices re-filters an already-selected model list against derived
// series (ratios computed after selection): index i survives iff at least one
// series holds a positive measurement at i. Nil and non-positive entries do
// not count, matching the selection rule for raw metrics.
func KeepIndices(seriesSet [][]*float64, n int) []int {
	keep := []int{}
	for i := 0; i < n; i++ {
		for _, s := range seriesSet {
			if i < len(s) && s[i] != nil && *s[i] > 0 {
				keep = append(keep, i)
				break
			}
		}
	}
	return keep
}

// Subset picks the given indices out of vals, in order.
func Subset[T any](vals []T, idx []int) []T {
	out := make([]T, 0, len(idx))
	for _, i := range idx {
		out = append(out, vals[i])
	}
	return out
}

// Scale multiplies every present value by factor, leaving nils in place.
// Used to convert milliseconds to seconds for time charts.
func Scale(values []*float64, factor float64) []*float64 {
	out := make([]*float64, len(values))
	for i, v := range values {
		if v == nil {
			continue
		}
		s := *v * factor
		out[i] = &s
	}
	return out
}
