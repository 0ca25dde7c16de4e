package report

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/Vanish0314/model-format-comparision/src/analysis"
	"github.com/Vanish0314/model-format-comparision/src/types"
)

// WriteSummaryExports emits the machine-readable summary set into dir:
// per-format statistics as JSON and CSV, the model comparison matrix, and the
// peak-memory rollup. Returns the written file paths.
func WriteSummaryExports(t *types.Table, dir string) ([]string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create summary dir: %w", err)
	}
	written := []string{}

	summaries := analysis.SummarizeFormats(t)
	jsonPath := filepath.Join(dir, "summary_report.json")
	if err := writeJSON(jsonPath, summaries); err != nil {
		return written, err
	}
	written = append(written, jsonPath)

	csvPath := filepath.Join(dir, "summary_statistics.csv")
	if err := writeSummaryCSV(csvPath, summaries); err != nil {
		return written, err
	}
	written = append(written, csvPath)

	matrixPath := filepath.Join(dir, "model_comparison_data.json")
	if err := writeJSON(matrixPath, analysis.ComparisonMatrix(t)); err != nil {
		return written, err
	}
	written = append(written, matrixPath)

	memoryPath := filepath.Join(dir, "memory_analysis.json")
	if err := writeJSON(memoryPath, analysis.RollupMemory(t)); err != nil {
		return written, err
	}
	written = append(written, memoryPath)

	return written, nil
}

func writeJSON(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal %s: %w", filepath.Base(path), err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

func writeSummaryCSV(path string, summaries []analysis.FormatSummary) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	w := csv.NewWriter(f)
	header := []string{
		"format",
		"avg_size_before_zip_mb",
		"avg_size_after_zip_mb",
		"avg_compression_ratio_pct",
		"avg_texture_share_pct",
		"avg_peak_memory_mb",
		"sample_count",
	}
	if err := w.Write(header); err != nil {
		return fmt.Errorf("write summary csv: %w", err)
	}
	for _, s := range summaries {
		row := []string{
			strings.ToUpper(string(s.Format)),
			statCell(s.AvgSizeBeforeZipMB),
			statCell(s.AvgSizeAfterZipMB),
			statCell(s.AvgCompressionPct),
			statCell(s.AvgTextureSharePct),
			statCell(s.AvgPeakMemoryMB),
			strconv.Itoa(s.Count),
		}
		if err := w.Write(row); err != nil {
			return fmt.Errorf("write summary csv: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("write summary csv: %w", err)
	}
	return nil
}

// statCell renders a nullable statistic; unmeasured stays visibly distinct
// from zero.
func statCell(v *float64) string {
	if v == nil {
		return "N/A"
	}
	return strconv.FormatFloat(*v, 'f', 1, 64)
}
