package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sells-group/directory-cli/internal/catalog"
	"github.com/sells-group/directory-cli/internal/combine"
	"github.com/sells-group/directory-cli/internal/datafile"
	"github.com/sells-group/directory-cli/internal/model"
)

var combineCmd = &cobra.Command{
	Use:   "combine",
	Short: "Merge city, facility, and cost data into the combined dataset",
	RunE: func(cmd *cobra.Command, args []string) error {
		cat, err := catalog.Load()
		if err != nil {
			return err
		}

		cities, err := readProcessedCities()
		if err != nil {
			return err
		}

		var facilities model.FacilityData
		if err := datafile.Read(cfg.Paths.Facilities(), &facilities); err != nil {
			return err
		}

		var costData model.CostData
		if err := datafile.Read(cfg.Paths.CostData(), &costData); err != nil {
			return err
		}

		data, err := combine.NewCombiner(cat).Combine(cities, facilities, costData)
		if err != nil {
			return err
		}

		out := cfg.Paths.CombinedData()
		if err := datafile.Write(out, data); err != nil {
			return err
		}

		zap.L().Info("combine complete",
			zap.Int("cities", data.Meta.TotalCities),
			zap.Int("facilities", data.Meta.TotalFacilities),
			zap.String("output", out),
		)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(combineCmd)
}
