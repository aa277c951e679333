package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sells-group/directory-cli/internal/catalog"
	"github.com/sells-group/directory-cli/internal/costs"
	"github.com/sells-group/directory-cli/internal/datafile"
)

var costsCmd = &cobra.Command{
	Use:   "costs",
	Short: "Generate cost estimates for all processed cities",
	RunE: func(cmd *cobra.Command, args []string) error {
		cat, err := catalog.Load()
		if err != nil {
			return err
		}

		cities, err := readProcessedCities()
		if err != nil {
			return err
		}

		data := costs.NewEstimator(cat).Generate(cities)

		out := cfg.Paths.CostData()
		if err := datafile.Write(out, data); err != nil {
			return err
		}

		zap.L().Info("cost generation complete",
			zap.Int("cities", len(data.Cities)),
			zap.Int("states", len(data.StateAverages)),
			zap.String("output", out),
		)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(costsCmd)
}
