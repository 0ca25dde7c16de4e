package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/Vanish0314/model-format-comparision/src/metrics"
)

var convertCmd = &cobra.Command{
	Use:   "convert",
	Short: "Flatten the metrics JSON into CSV rows",
	RunE: func(cmd *cobra.Command, args []string) error {
		table, err := loadTable()
		if err != nil {
			return err
		}
		out := cfg.Out
		if out == "" || out == "Charts" {
			out = filepath.Join("data", "model_data.csv")
		}
		if dir := filepath.Dir(out); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return fmt.Errorf("create output dir: %w", err)
			}
		}
		f, err := os.Create(out)
		if err != nil {
			return fmt.Errorf("create csv: %w", err)
		}
		defer f.Close()
		if err := metrics.WriteCSV(table, f); err != nil {
			return err
		}
		log.Info().Int("models", table.Len()).Str("out", out).Msg("metrics converted to csv")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(convertCmd)
}
