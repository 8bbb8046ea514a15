package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/storm-buster/jal-setu/internal/model"
	"github.com/storm-buster/jal-setu/internal/river"
)

var riversRegion string

var riversCmd = &cobra.Command{
	Use:   "rivers",
	Short: "List known rivers, optionally filtered by region",
	RunE: func(cmd *cobra.Command, args []string) error {
		registry := river.Default()

		regions := registry.Regions()
		if riversRegion != "" {
			region, err := model.ParseRegion(riversRegion)
			if err != nil {
				return err
			}
			regions = []model.Region{region}
		}

		out := cmd.OutOrStdout()
		for _, region := range regions {
			fmt.Fprintf(out, "%s:\n", region)
			for _, riv := range registry.Rivers(region) {
				fmt.Fprintf(out, "  %-16s width %4.0fm  %d centerline points\n",
					riv.Name, riv.AvgWidthM, len(riv.Centerline))
			}
		}
		return nil
	},
}

func init() {
	riversCmd.Flags().StringVar(&riversRegion, "region", "", "region name (all regions when empty)")
	rootCmd.AddCommand(riversCmd)
}
