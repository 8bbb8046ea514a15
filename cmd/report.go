package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"

	"github.com/storm-buster/jal-setu/internal/model"
	"github.com/storm-buster/jal-setu/internal/report"
	"github.com/storm-buster/jal-setu/internal/risk"
)

var (
	reportRegion   string
	reportScenario string
	reportAOI      string
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Generate a flood risk situation report",
	RunE: func(cmd *cobra.Command, args []string) error {
		region, err := model.ParseRegion(reportRegion)
		if err != nil {
			return err
		}
		scenario, err := model.ParseScenario(reportScenario)
		if err != nil {
			return err
		}

		var polys []model.PolygonAOI
		if reportAOI != "" {
			data, err := os.ReadFile(reportAOI)
			if err != nil {
				return eris.Wrap(err, "report: read aoi file")
			}
			if err := json.Unmarshal(data, &polys); err != nil {
				return eris.Wrap(err, "report: parse aoi file")
			}
		}

		engine := newEngine()
		summary := risk.ApplyAOIScale(region, risk.BaseSummary(region, scenario), polys)

		var rivers []string
		for _, res := range engine.FindIntersections(region, model.Rings(polys)) {
			rivers = append(rivers, res.RiverName)
		}

		rep := newGenerator().Generate(cmd.Context(), report.Input{
			Region:         region,
			Scenario:       scenario,
			Risk:           summary,
			AffectedRivers: rivers,
		})

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Alert %s (%s)\n\n%s\n", rep.AlertID, rep.Timestamp, rep.Report)
		return nil
	},
}

func init() {
	reportCmd.Flags().StringVar(&reportRegion, "region", "Bihar", "region name")
	reportCmd.Flags().StringVar(&reportScenario, "scenario", "1m", "flood scenario (0m, 1m, 2m)")
	reportCmd.Flags().StringVar(&reportAOI, "aoi", "", "path to AOI polygons JSON file (optional)")
	rootCmd.AddCommand(reportCmd)
}
