package main

import (
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sells-group/directory-cli/internal/catalog"
	"github.com/sells-group/directory-cli/internal/datafile"
	"github.com/sells-group/directory-cli/internal/facility"
)

var facilitiesCmd = &cobra.Command{
	Use:   "facilities",
	Short: "Generate facility listings for all processed cities",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		cat, err := catalog.Load()
		if err != nil {
			return err
		}

		cities, err := readProcessedCities()
		if err != nil {
			return err
		}

		provider, err := newFacilityProvider(cat)
		if err != nil {
			return err
		}

		opts := facility.DefaultOptions()
		opts.Concurrency = cfg.Facility.Concurrency

		data, err := facility.Generate(ctx, provider, cities, opts)
		if err != nil {
			return err
		}

		out := cfg.Paths.Facilities()
		if err := datafile.Write(out, data); err != nil {
			return err
		}

		zap.L().Info("facility generation complete",
			zap.String("provider", provider.Name()),
			zap.Int("facilities", data.Meta.TotalCount),
			zap.Int("cities_covered", data.Meta.CitiesCovered),
			zap.String("output", out),
		)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(facilitiesCmd)
}
