// Package metrics loads the benchmark metrics table from its external
// sources: a JSON document keyed by model name (optionally with full-line //
// comments), an http(s) URL serving the same document, or the flattened CSV
// form. Loading is the validation boundary: format identifiers are folded to
// their canonical casing and unknown formats are rejected here, so the
// aggregation core never sees ad hoc keys.
package metrics

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/Vanish0314/model-format-comparision/src/types"
)

// StripComments reads a JSON document that may carry full-line // comments
// and returns plain JSON bytes. Inline // is left alone: the comment style
// used in data files is full-line only, and URLs (http://) would otherwise
// be mangled.
func StripComments(r io.Reader) ([]byte, error) {
	var out []byte
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)
	for scanner.Scan() {
		line := scanner.Text()
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "//") {
			continue
		}
		out = append(out, []byte(line+"\n")...)
	}
	return out, scanner.Err()
}

// rawFormat mirrors FormatMetrics plus the field names of older data
// revisions. Canonical names win when both are present.
type rawFormat struct {
	SizeBeforeZipMB        *float64 `json:"sizeBeforeZipMB"`
	SizeAfterZipMB         *float64 `json:"sizeAfterZipMB"`
	TextureSizeBeforeZipMB *float64 `json:"textureSizeBeforeZipMB"`
	TextureSizeAfterZipMB  *float64 `json:"textureSizeAfterZipMB"`
	PeakMemoryMB           *float64 `json:"peakMemoryMB"`
	LoadPeakMemoryMB       *float64 `json:"loadPeakMemoryMB"`
	ImportTimeMs           *int64   `json:"importTimeMs"`
	LoadTimeMs             *int64   `json:"loadTimeMs"`

	LegacySizeBefore   *float64 `json:"size_before_mb"`
	LegacySizeAfter    *float64 `json:"size_after_mb"`
	LegacyTextureSize  *float64 `json:"texture_size_mb"`
	LegacyTextureAfter *float64 `json:"texture_size_after_mb"`
	LegacyPeakMemory   *float64 `json:"peak_memory_mb"`
	LegacyLoadMemory   *float64 `json:"load_memory_mb"`
	LegacyImportTime   *int64   `json:"import_time_ms"`
	LegacyLoadTime     *int64   `json:"load_time_ms"`

	LegacyOriginalSize   *float64 `json:"original_size_mb"`
	LegacyCompressedSize *float64 `json:"compressed_size_mb"`
}

func (r rawFormat) metrics() types.FormatMetrics {
	return types.FormatMetrics{
		SizeBeforeZipMB:        firstFloat(r.SizeBeforeZipMB, r.LegacySizeBefore, r.LegacyOriginalSize),
		SizeAfterZipMB:         firstFloat(r.SizeAfterZipMB, r.LegacySizeAfter, r.LegacyCompressedSize),
		TextureSizeBeforeZipMB: firstFloat(r.TextureSizeBeforeZipMB, r.LegacyTextureSize),
		TextureSizeAfterZipMB:  firstFloat(r.TextureSizeAfterZipMB, r.LegacyTextureAfter),
		PeakMemoryMB:           firstFloat(r.PeakMemoryMB, r.LegacyPeakMemory),
		LoadPeakMemoryMB:       firstFloat(r.LoadPeakMemoryMB, r.LegacyLoadMemory),
		ImportTimeMs:           firstInt(r.ImportTimeMs, r.LegacyImportTime),
		LoadTimeMs:             firstInt(r.LoadTimeMs, r.LegacyLoadTime),
	}
}

type rawModel struct {
	FaceCountK        *int                 `json:"faceCountK"`
	LegacyFaceCountK  *int                 `json:"face_count_k"`
	LegacyFaceCount   *int                 `json:"face_count"`
	TextureCount      *int                 `json:"textureCount"`
	LegacyTexture     *int                 `json:"texture_count"`
	Formats           map[string]rawFormat `json:"formats"`
}

// ParseTable decodes a metrics JSON document, preserving the document's model
// order. The top level must be an object keyed by model name.
func ParseTable(data []byte) (*types.Table, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("parse metrics table: %w", err)
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return nil, fmt.Errorf("parse metrics table: top-level value must be an object keyed by model name")
	}
	table := types.NewTable()
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("parse metrics table: %w", err)
		}
		id := keyTok.(string)
		var raw rawModel
		if err := dec.Decode(&raw); err != nil {
			return nil, fmt.Errorf("parse model %q: %w", id, err)
		}
		rec, err := raw.record()
		if err != nil {
			return nil, fmt.Errorf("model %q: %w", id, err)
		}
		table.Append(id, rec)
	}
	return table, nil
}

func (r rawModel) record() (types.ModelRecord, error) {
	rec := types.ModelRecord{Formats: map[types.Format]types.FormatMetrics{}}
	if v := firstIntVal(r.FaceCountK, r.LegacyFaceCountK, r.LegacyFaceCount); v != nil {
		rec.FaceCountK = *v
	}
	if v := firstIntVal(r.TextureCount, r.LegacyTexture); v != nil {
		rec.TextureCount = *v
	}
	for key, rf := range r.Formats {
		f, err := types.ParseFormat(key)
		if err != nil {
			return rec, err
		}
		if _, dup := rec.Formats[f]; dup {
			return rec, fmt.Errorf("format %q appears twice after case folding", key)
		}
		rec.Formats[f] = rf.metrics()
	}
	return rec, nil
}

// LoadTable reads the metrics table from a local file path or an http(s) URL.
// Missing files and malformed documents fail fast with a descriptive error so
// a broken source never degrades silently into an empty report.
func LoadTable(source string) (*types.Table, error) {
	var (
		data []byte
		err  error
	)
	if strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://") {
		data, err = Fetch(source)
	} else {
		data, err = readFile(source)
	}
	if err != nil {
		return nil, err
	}
	stripped, err := StripComments(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", source, err)
	}
	table, err := ParseTable(stripped)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", source, err)
	}
	return table, nil
}

func readFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read metrics data: %w", err)
	}
	return data, nil
}

func firstFloat(vals ...*float64) *float64 {
	for _, v := range vals {
		if v != nil {
			return v
		}
	}
	return nil
}

func firstInt(vals ...*int64) *int64 {
	for _, v := range vals {
		if v != nil {
			return v
		}
	}
	return nil
}

func firstIntVal(vals ...*int) *int {
	for _, v := range vals {
		if v != nil {
			return v
		}
	}
	return nil
}
