package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"

	"github.com/storm-buster/jal-setu/internal/model"
)

var (
	intersectRegion string
	intersectAOI    string
)

var intersectCmd = &cobra.Command{
	Use:   "intersect",
	Short: "Find rivers intersecting an area of interest",
	Long:  "Reads a JSON file containing an array of AOI polygons ({\"rings\": [[[lon,lat],...]]}) and reports which of the region's rivers they touch.",
	RunE: func(cmd *cobra.Command, args []string) error {
		region, err := model.ParseRegion(intersectRegion)
		if err != nil {
			return err
		}

		data, err := os.ReadFile(intersectAOI)
		if err != nil {
			return eris.Wrap(err, "intersect: read aoi file")
		}
		var polys []model.PolygonAOI
		if err := json.Unmarshal(data, &polys); err != nil {
			return eris.Wrap(err, "intersect: parse aoi file")
		}

		results := newEngine().FindIntersections(region, model.Rings(polys))
		out, err := json.MarshalIndent(results, "", "  ")
		if err != nil {
			return eris.Wrap(err, "intersect: marshal results")
		}

		fmt.Fprintln(cmd.OutOrStdout(), string(out))
		return nil
	},
}

func init() {
	intersectCmd.Flags().StringVar(&intersectRegion, "region", "Bihar", "region name")
	intersectCmd.Flags().StringVar(&intersectAOI, "aoi", "", "path to AOI polygons JSON file")
	intersectCmd.MarkFlagRequired("aoi")
	rootCmd.AddCommand(intersectCmd)
}
