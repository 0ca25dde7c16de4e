package analysis

import (
	"sort"

	"github.com/Vanish0314/model-format-comparision/src/types"
)

// FormatSummary aggregates one format across all models that measured it.
// Pointer fields stay nil when no model contributed a measurement, so a
// format with zero memory samples reports "no data" rather than zero.
type FormatSummary struct {
	Format                types.Format `json:"format"`
	Count                 int          `json:"count"`
	AvgSizeBeforeZipMB    *float64     `json:"avg_size_before_zip_mb,omitempty"`
	AvgSizeAfterZipMB     *float64     `json:"avg_size_after_zip_mb,omitempty"`
	MinSizeBeforeZipMB    *float64     `json:"min_size_before_zip_mb,omitempty"`
	MaxSizeBeforeZipMB    *float64     `json:"max_size_before_zip_mb,omitempty"`
	MinSizeAfterZipMB     *float64     `json:"min_size_after_zip_mb,omitempty"`
	MaxSizeAfterZipMB     *float64     `json:"max_size_after_zip_mb,omitempty"`
	AvgCompressionPct     *float64     `json:"avg_compression_ratio_pct,omitempty"`
	AvgTextureSharePct    *float64     `json:"avg_texture_share_pct,omitempty"`
	AvgPeakMemoryMB       *float64     `json:"avg_peak_memory_mb,omitempty"`
	MedianPeakMemoryMB    *float64     `json:"median_peak_memory_mb,omitempty"`
	MinPeakMemoryMB       *float64     `json:"min_peak_memory_mb,omitempty"`
	MaxPeakMemoryMB       *float64     `json:"max_peak_memory_mb,omitempty"`
	MemorySamples         int          `json:"memory_samples"`
}

// SummarizeFormat computes the summary for one format. Count is the number of
// models that measured the format at all; each statistic averages only the
// models that measured its underlying metric.
func SummarizeFormat(t *types.Table, format types.Format) FormatSummary {
	s := FormatSummary{Format: format}
	if t == nil {
		return s
	}
	var before, after, compression, textureShare, memory []float64
	for _, id := range t.Order {
		fm, ok := t.Records[id].Formats[format]
		if !ok {
			continue
		}
		s.Count++
		before = appendPresent(before, fm.SizeBeforeZipMB)
		after = appendPresent(after, fm.SizeAfterZipMB)
		compression = appendPresent(compression, CompressionRatio(fm.SizeBeforeZipMB, fm.SizeAfterZipMB))
		textureShare = appendPresent(textureShare, TextureShare(fm.SizeBeforeZipMB, fm.TextureSizeBeforeZipMB))
		memory = appendPresent(memory, fm.PeakMemoryMB)
	}
	s.AvgSizeBeforeZipMB = mean(before)
	s.MinSizeBeforeZipMB = minOf(before)
	s.MaxSizeBeforeZipMB = maxOf(before)
	s.AvgSizeAfterZipMB = mean(after)
	s.MinSizeAfterZipMB = minOf(after)
	s.MaxSizeAfterZipMB = maxOf(after)
	s.AvgCompressionPct = mean(compression)
	s.AvgTextureSharePct = mean(textureShare)
	s.AvgPeakMemoryMB = mean(memory)
	s.MinPeakMemoryMB = minOf(memory)
	s.MaxPeakMemoryMB = maxOf(memory)
	s.MemorySamples = len(memory)
	if len(memory) > 0 {
		m := median(memory)
		s.MedianPeakMemoryMB = &m
	}
	return s
}

// SummarizeFormats summarizes every supported format that at least one model
// measured, in display order.
func SummarizeFormats(t *types.Table) []FormatSummary {
	out := []FormatSummary{}
	for _, f := range types.AllFormats() {
		s := SummarizeFormat(t, f)
		if s.Count > 0 {
			out = append(out, s)
		}
	}
	return out
}

// MatrixCell is one model/format intersection of the comparison matrix.
type MatrixCell struct {
	SizeBeforeZipMB     *float64 `json:"size_before_zip_mb,omitempty"`
	SizeAfterZipMB      *float64 `json:"size_after_zip_mb,omitempty"`
	CompressionPct      *float64 `json:"compression_ratio_pct,omitempty"`
	TextureSharePct     *float64 `json:"texture_share_pct,omitempty"`
	PeakMemoryMB        *float64 `json:"peak_memory_mb,omitempty"`
}

// Matrix is the machine-readable model x format comparison export.
type Matrix struct {
	Formats []types.Format                        `json:"formats"`
	Models  []string                              `json:"models"`
	Cells   map[string]map[types.Format]MatrixCell `json:"comparisons"`
}

// ComparisonMatrix builds the full comparison matrix. Only measured
// model/format intersections get a cell.
func ComparisonMatrix(t *types.Table) Matrix {
	m := Matrix{Formats: types.AllFormats(), Models: []string{}, Cells: map[string]map[types.Format]MatrixCell{}}
	if t == nil {
		return m
	}
	m.Models = append(m.Models, t.Order...)
	for _, id := range t.Order {
		rec := t.Records[id]
		row := map[types.Format]MatrixCell{}
		for _, f := range m.Formats {
			fm, ok := rec.Formats[f]
			if !ok {
				continue
			}
			row[f] = MatrixCell{
				SizeBeforeZipMB: fm.SizeBeforeZipMB,
				SizeAfterZipMB:  fm.SizeAfterZipMB,
				CompressionPct:  CompressionRatio(fm.SizeBeforeZipMB, fm.SizeAfterZipMB),
				TextureSharePct: TextureShare(fm.SizeBeforeZipMB, fm.TextureSizeBeforeZipMB),
				PeakMemoryMB:    fm.PeakMemoryMB,
			}
		}
		m.Cells[id] = row
	}
	return m
}

// MemoryStats summarizes peak import memory for one format.
type MemoryStats struct {
	Count  int     `json:"count"`
	Mean   float64 `json:"avg_memory_mb"`
	Median float64 `json:"median_memory_mb"`
	Min    float64 `json:"min_memory_mb"`
	Max    float64 `json:"max_memory_mb"`
}

// MemoryRollup groups peak-memory measurements by format.
type MemoryRollup struct {
	ModelsWithData int                           `json:"models_with_memory_data"`
	Formats        map[types.Format]MemoryStats  `json:"formats"`
}

// RollupMemory aggregates peak import memory across the table. Models without
// any memory measurement are excluded from the count entirely.
func RollupMemory(t *types.Table) MemoryRollup {
	r := MemoryRollup{Formats: map[types.Format]MemoryStats{}}
	if t == nil {
		return r
	}
	byFormat := map[types.Format][]float64{}
	for _, id := range t.Order {
		rec := t.Records[id]
		seen := false
		for f, fm := range rec.Formats {
			if fm.PeakMemoryMB == nil {
				continue
			}
			byFormat[f] = append(byFormat[f], *fm.PeakMemoryMB)
			seen = true
		}
		if seen {
			r.ModelsWithData++
		}
	}
	for f, vals := range byFormat {
		r.Formats[f] = MemoryStats{
			Count:  len(vals),
			Mean:   *mean(vals),
			Median: median(vals),
			Min:    *minOf(vals),
			Max:    *maxOf(vals),
		}
	}
	return r
}

func appendPresent(dst []float64, v *float64) []float64 {
	if v == nil {
		return dst
	}
	return append(dst, *v)
}

func mean(vals []float64) *float64 {
	if len(vals) == 0 {
		return nil
	}
	sum := 0.0
	for _, v := range vals {
		sum += v
	}
	m := sum / float64(len(vals))
	return &m
}

func median(vals []float64) float64 {
	if len(vals) == 0 {
		return 0
	}
	s := append([]float64(nil), vals...)
	sort.Float64s(s)
	mid := len(s) / 2
	if len(s)%2 == 1 {
		return s[mid]
	}
	return (s[mid-1] + s[mid]) / 2
}

func minOf(vals []float64) *float64 {
	if len(vals) == 0 {
		return nil
	}
	m := vals[0]
	for _, v := range vals[1:] {
		if v < m {
			m = v
		}
	}
	return &m
}

func maxOf(vals []float64) *float64 {
	if len(vals) == 0 {
		return nil
	}
	m := vals[0]
	for _, v := range vals[1:] {
		if v > m {
			m = v
		}
	}
	return &m
}
