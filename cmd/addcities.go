package main

import (
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sells-group/directory-cli/internal/catalog"
	"github.com/sells-group/directory-cli/internal/cityfile"
	"github.com/sells-group/directory-cli/internal/combine"
	"github.com/sells-group/directory-cli/internal/datafile"
	"github.com/sells-group/directory-cli/internal/model"
)

var addCitiesMax int

var addCitiesCmd = &cobra.Command{
	Use:   "add-cities <city-list>",
	Short: "Append new cities to an existing combined dataset",
	Long:  "Reads a city list, skips cities already in the combined dataset, and appends the largest remaining cities with generated facilities and cost estimates.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		cat, err := catalog.Load()
		if err != nil {
			return err
		}

		var data model.CombinedData
		if err := datafile.Read(cfg.Paths.CombinedData(), &data); err != nil {
			return err
		}

		rows, err := cityfile.Read(args[0])
		if err != nil {
			return err
		}

		provider, err := newFacilityProvider(cat)
		if err != nil {
			return err
		}

		opts := combine.AppendOptions{
			MaxCities: addCitiesMax,
			Seed:      cfg.Append.Seed,
		}
		if !cmd.Flags().Changed("max") {
			opts.MaxCities = cfg.Append.MaxCities
		}
		result, err := combine.NewCombiner(cat).Append(ctx, &data, rows, provider, opts)
		if err != nil {
			return err
		}

		if err := datafile.Write(cfg.Paths.CombinedData(), data); err != nil {
			return err
		}

		zap.L().Info("add-cities complete",
			zap.Int("cities_added", result.CitiesAdded),
			zap.Int("facilities_added", result.FacilitiesAdded),
			zap.Int("total_cities", data.Meta.TotalCities),
		)
		return nil
	},
}

func init() {
	addCitiesCmd.Flags().IntVar(&addCitiesMax, "max", combine.DefaultAppendOptions().MaxCities, "maximum number of cities to append")
	rootCmd.AddCommand(addCitiesCmd)
}
