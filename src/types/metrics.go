package types

// FormatMetrics holds the measurements captured for one model exported in one
// format. Every field is nullable: nil means the benchmark did not run or did
// not apply, which is never the same thing as a measured zero (a model with no
// textures legitimately reports a texture size of 0).
type FormatMetrics struct {
	SizeBeforeZipMB        *float64 `json:"sizeBeforeZipMB,omitempty"`
	SizeAfterZipMB         *float64 `json:"sizeAfterZipMB,omitempty"`
	TextureSizeBeforeZipMB *float64 `json:"textureSizeBeforeZipMB,omitempty"`
	TextureSizeAfterZipMB  *float64 `json:"textureSizeAfterZipMB,omitempty"`
	PeakMemoryMB           *float64 `json:"peakMemoryMB,omitempty"`
	LoadPeakMemoryMB       *float64 `json:"loadPeakMemoryMB,omitempty"`
	ImportTimeMs           *int64   `json:"importTimeMs,omitempty"`
	LoadTimeMs             *int64   `json:"loadTimeMs,omitempty"`
}

// MetricKey names one FormatMetrics field for data-driven access.
type MetricKey string

const (
	MetricSizeBeforeZipMB        MetricKey = "sizeBeforeZipMB"
	MetricSizeAfterZipMB         MetricKey = "sizeAfterZipMB"
	MetricTextureSizeBeforeZipMB MetricKey = "textureSizeBeforeZipMB"
	MetricTextureSizeAfterZipMB  MetricKey = "textureSizeAfterZipMB"
	MetricPeakMemoryMB           MetricKey = "peakMemoryMB"
	MetricLoadPeakMemoryMB       MetricKey = "loadPeakMemoryMB"
	MetricImportTimeMs           MetricKey = "importTimeMs"
	MetricLoadTimeMs             MetricKey = "loadTimeMs"
)

// Value returns the measurement behind key as a float, or nil when the metric
// was not measured. Integer millisecond fields are widened to float64 so all
// series share one numeric type.
func (m FormatMetrics) Value(key MetricKey) *float64 {
	switch key {
	case MetricSizeBeforeZipMB:
		return m.SizeBeforeZipMB
	case MetricSizeAfterZipMB:
		return m.SizeAfterZipMB
	case MetricTextureSizeBeforeZipMB:
		return m.TextureSizeBeforeZipMB
	case MetricTextureSizeAfterZipMB:
		return m.TextureSizeAfterZipMB
	case MetricPeakMemoryMB:
		return m.PeakMemoryMB
	case MetricLoadPeakMemoryMB:
		return m.LoadPeakMemoryMB
	case MetricImportTimeMs:
		return intToFloat(m.ImportTimeMs)
	case MetricLoadTimeMs:
		return intToFloat(m.LoadTimeMs)
	}
	return nil
}

func intToFloat(v *int64) *float64 {
	if v == nil {
		return nil
	}
	f := float64(*v)
	return &f
}

// ModelRecord is the full measurement set for one model. Formats holds keys
// only for formats that were actually measured; absence means "not measured".
type ModelRecord struct {
	FaceCountK   int                      `json:"faceCountK"`
	TextureCount int                      `json:"textureCount"`
	Formats      map[Format]FormatMetrics `json:"formats"`
}

// Table is the loaded metrics table. Go maps do not preserve document order,
// so the source key order is carried separately; all aggregation output is
// reported in that order. Records are never mutated after loading.
type Table struct {
	Order   []string
	Records map[string]ModelRecord
}

// NewTable returns an empty table ready for Append.
func NewTable() *Table {
	return &Table{Records: map[string]ModelRecord{}}
}

// Append adds a record, keeping first-appearance order. Appending an existing
// id overwrites the record without duplicating the order entry.
func (t *Table) Append(id string, rec ModelRecord) {
	if _, ok := t.Records[id]; !ok {
		t.Order = append(t.Order, id)
	}
	t.Records[id] = rec
}

// Len reports the number of models.
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.Order)
}

// Model returns the record for id.
func (t *Table) Model(id string) (ModelRecord, bool) {
	if t == nil {
		return ModelRecord{}, false
	}
	rec, ok := t.Records[id]
	return rec, ok
}
