package cli

import (
	"github.com/spf13/cobra"

	"github.com/Vanish0314/model-format-comparision/src/report"
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Generate all HTML comparison reports",
	RunE: func(cmd *cobra.Command, args []string) error {
		table, err := loadTable()
		if err != nil {
			return err
		}
		formats, err := parsedFormats()
		if err != nil {
			return err
		}
		log.Info().Int("models", table.Len()).Str("out", cfg.Out).Msg("loaded metrics table")
		gen := &report.Generator{
			Table:       table,
			Formats:     formats,
			OutDir:      cfg.Out,
			ChartWidth:  cfg.ChartWidth,
			ChartHeight: cfg.ChartHeight,
			Log:         log,
		}
		if err := gen.Generate(); err != nil {
			return err
		}
		log.Info().Str("index", cfg.Out+"/index.html").Msg("all reports generated")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(reportCmd)
}
