// Package cli wires the modelreport commands: report (charts + HTML pages),
// convert (JSON to CSV) and summary (machine-readable statistics exports).
package cli

import (
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/Vanish0314/model-format-comparision/src/config"
	"github.com/Vanish0314/model-format-comparision/src/metrics"
	"github.com/Vanish0314/model-format-comparision/src/types"
)

var (
	flagConfig   string
	flagData     string
	flagOut      string
	flagFormats  []string
	flagLogLevel string

	cfg config.Config
	log zerolog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "modelreport",
	Short: "Generate 3D model export benchmark reports",
	Long: `modelreport loads per-model, per-format export benchmark metrics
(sizes, times, memory, texture payload) from JSON or CSV and produces static
HTML comparison reports with embedded charts, plus machine-readable summary
exports.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// applyFlagOverrides lets explicitly set flags win over file and environment
// values.
func applyFlagOverrides() {
	flags := rootCmd.PersistentFlags()
	if flags.Changed("data") {
		cfg.Data = flagData
	}
	if flags.Changed("out") {
		cfg.Out = flagOut
	}
	if flags.Changed("formats") {
		cfg.Formats = flagFormats
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = flagLogLevel
	}
}

func newLogger(level string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil {
		lvl = zerolog.InfoLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).Level(lvl).With().Timestamp().Logger()
}

// loadTable loads the metrics table from the configured source (file path or
// http(s) URL; .csv sources use the flattened row form).
func loadTable() (*types.Table, error) {
	if strings.HasSuffix(strings.ToLower(cfg.Data), ".csv") && !strings.HasPrefix(cfg.Data, "http") {
		f, err := os.Open(cfg.Data)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		return metrics.ReadCSV(f)
	}
	return metrics.LoadTable(cfg.Data)
}

func parsedFormats() ([]types.Format, error) {
	return types.ParseFormats(cfg.Formats)
}

func init() {
	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(flagConfig)
		if err != nil {
			return err
		}
		applyFlagOverrides()
		log = newLogger(cfg.LogLevel)
		return nil
	}
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to YAML config file")
	rootCmd.PersistentFlags().StringVar(&flagData, "data", "", "Metrics data source: JSON/CSV file path or http(s) URL")
	rootCmd.PersistentFlags().StringVar(&flagOut, "out", "", "Output directory (or file for convert)")
	rootCmd.PersistentFlags().StringSliceVar(&flagFormats, "formats", nil, "Formats to include (fbx,obj,gltf,glb)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level (debug|info|warn|error)")
}

// Execute runs the CLI.
func Execute() error {
	return rootCmd.Execute()
}
