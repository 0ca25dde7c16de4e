package cli

import (
	"github.com/spf13/cobra"

	"github.com/Vanish0314/model-format-comparision/src/report"
)

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Export machine-readable per-format statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		table, err := loadTable()
		if err != nil {
			return err
		}
		written, err := report.WriteSummaryExports(table, cfg.Out)
		if err != nil {
			return err
		}
		for _, path := range written {
			log.Info().Str("file", path).Msg("summary export written")
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(summaryCmd)
}
