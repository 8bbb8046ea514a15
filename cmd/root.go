package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/storm-buster/jal-setu/internal/config"
	"github.com/storm-buster/jal-setu/internal/flood"
	"github.com/storm-buster/jal-setu/internal/report"
	"github.com/storm-buster/jal-setu/internal/river"
	"github.com/storm-buster/jal-setu/pkg/anthropic"
)

var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:   "jal-setu",
	Short: "Flood risk analysis service for Indian river basins",
	Long:  "Computes flood extents from river networks, intersects drawn areas of interest with river centerlines, and serves risk summaries and situation reports over HTTP.",
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

// newEngine builds the flood engine from the default river networks and
// the loaded configuration.
func newEngine() *flood.Engine {
	return flood.NewEngine(river.Default(),
		flood.WithCacheCapacity(cfg.Flood.CacheCapacity),
		flood.WithTerrainSlope(cfg.Flood.TerrainSlopeDeg),
	)
}

// newGenerator builds the report generator, with Claude narratives when an
// API key is configured.
func newGenerator() *report.Generator {
	if cfg.Anthropic.Key == "" {
		return report.NewGenerator()
	}
	client := anthropic.NewClient(cfg.Anthropic.Key)
	return report.NewGenerator(report.WithClaude(client, cfg.Anthropic.Model))
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
