package main

import (
	"encoding/json"
	"fmt"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"

	"github.com/storm-buster/jal-setu/internal/model"
)

var (
	zonesRegion   string
	zonesScenario string
)

var zonesCmd = &cobra.Command{
	Use:   "zones",
	Short: "Print flood zone GeoJSON for a region and scenario",
	RunE: func(cmd *cobra.Command, args []string) error {
		region, err := model.ParseRegion(zonesRegion)
		if err != nil {
			return err
		}
		scenario, err := model.ParseScenario(zonesScenario)
		if err != nil {
			return err
		}

		fc := newEngine().FloodGeometry(region, scenario)
		out, err := json.MarshalIndent(fc, "", "  ")
		if err != nil {
			return eris.Wrap(err, "zones: marshal geojson")
		}

		fmt.Fprintln(cmd.OutOrStdout(), string(out))
		return nil
	},
}

func init() {
	zonesCmd.Flags().StringVar(&zonesRegion, "region", "Bihar", "region name")
	zonesCmd.Flags().StringVar(&zonesScenario, "scenario", "1m", "flood scenario (0m, 1m, 2m)")
	rootCmd.AddCommand(zonesCmd)
}
