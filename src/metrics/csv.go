package metrics

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/Vanish0314/model-format-comparision/src/types"
)

// csvHeader is the flattened row layout: one row per measured model/format
// pair. Unmeasured metrics are written as empty cells ("N/A" is accepted on
// read for compatibility with hand-edited sheets).
var csvHeader = []string{
	"model_name",
	"face_count_k",
	"texture_count",
	"format",
	"size_before_zip_mb",
	"size_after_zip_mb",
	"texture_size_before_zip_mb",
	"peak_memory_mb",
	"import_time_ms",
}

// WriteCSV flattens the table to CSV. Formats a model never measured produce
// no row at all, preserving the absent-vs-zero distinction in the flat form.
func WriteCSV(t *types.Table, w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	if t != nil {
		for _, id := range t.Order {
			rec := t.Records[id]
			for _, f := range types.AllFormats() {
				fm, ok := rec.Formats[f]
				if !ok {
					continue
				}
				row := []string{
					id,
					strconv.Itoa(rec.FaceCountK),
					strconv.Itoa(rec.TextureCount),
					string(f),
					floatCell(fm.SizeBeforeZipMB),
					floatCell(fm.SizeAfterZipMB),
					floatCell(fm.TextureSizeBeforeZipMB),
					floatCell(fm.PeakMemoryMB),
					intCell(fm.ImportTimeMs),
				}
				if err := cw.Write(row); err != nil {
					return fmt.Errorf("write csv row for %s/%s: %w", id, f, err)
				}
			}
		}
	}
	cw.Flush()
	return cw.Error()
}

// ReadCSV rebuilds a table from the flattened form, grouping rows by model in
// first-appearance order.
func ReadCSV(r io.Reader) (*types.Table, error) {
	cr := csv.NewReader(r)
	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("read csv header: %w", err)
	}
	col := map[string]int{}
	for i, name := range header {
		col[strings.TrimSpace(name)] = i
	}
	for _, required := range []string{"model_name", "format"} {
		if _, ok := col[required]; !ok {
			return nil, fmt.Errorf("csv is missing required column %q", required)
		}
	}
	table := types.NewTable()
	line := 1
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read csv: %w", err)
		}
		line++
		id := cell(row, col, "model_name")
		if id == "" {
			return nil, fmt.Errorf("csv line %d: empty model_name", line)
		}
		f, err := types.ParseFormat(cell(row, col, "format"))
		if err != nil {
			return nil, fmt.Errorf("csv line %d: %w", line, err)
		}
		rec, ok := table.Model(id)
		if !ok {
			rec = types.ModelRecord{Formats: map[types.Format]types.FormatMetrics{}}
			if rec.FaceCountK, err = intColumn(row, col, "face_count_k", line); err != nil {
				return nil, err
			}
			if rec.TextureCount, err = intColumn(row, col, "texture_count", line); err != nil {
				return nil, err
			}
		}
		fm := types.FormatMetrics{
			SizeBeforeZipMB:        parseFloatCell(cell(row, col, "size_before_zip_mb")),
			SizeAfterZipMB:         parseFloatCell(cell(row, col, "size_after_zip_mb")),
			TextureSizeBeforeZipMB: parseFloatCell(cell(row, col, "texture_size_before_zip_mb")),
			PeakMemoryMB:           parseFloatCell(cell(row, col, "peak_memory_mb")),
			ImportTimeMs:           parseIntCell(cell(row, col, "import_time_ms")),
		}
		rec.Formats[f] = fm
		table.Append(id, rec)
	}
	return table, nil
}

func cell(row []string, col map[string]int, name string) string {
	i, ok := col[name]
	if !ok || i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}

func intColumn(row []string, col map[string]int, name string, line int) (int, error) {
	s := cell(row, col, name)
	if s == "" {
		return 0, nil
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("csv line %d: column %q: %w", line, name, err)
	}
	return v, nil
}

func floatCell(v *float64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatFloat(*v, 'f', -1, 64)
}

func intCell(v *int64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatInt(*v, 10)
}

func parseFloatCell(s string) *float64 {
	if s == "" || strings.EqualFold(s, "n/a") {
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}
	return &v
}

func parseIntCell(s string) *int64 {
	if s == "" || strings.EqualFold(s, "n/a") {
		return nil
	}
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return nil
	}
	return &v
}
