package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sells-group/gsq/internal/config"
)

var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:   "gsq",
	Short: "Streaming geospatial utility belt",
	Long: `Reads newline-delimited geospatial text from STDIN -- lat/lon pairs,
geohashes, WKT, or GeoJSON -- classifies each line, and converts, filters,
or measures it on demand.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		c, err := config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		cfg = c

		if err := config.InitLogger(cfg.Log); err != nil {
			return fmt.Errorf("init logger: %w", err)
		}

		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = zap.L().Sync()
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
