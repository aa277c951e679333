package main

import (
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sells-group/directory-cli/internal/catalog"
	"github.com/sells-group/directory-cli/internal/cityfile"
	"github.com/sells-group/directory-cli/internal/combine"
	"github.com/sells-group/directory-cli/internal/costs"
	"github.com/sells-group/directory-cli/internal/datafile"
	"github.com/sells-group/directory-cli/internal/enrich"
	"github.com/sells-group/directory-cli/internal/facility"
	"github.com/sells-group/directory-cli/internal/sitegen"
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Run the full pipeline: enrich, facilities, costs, combine, generate",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		runID := uuid.NewString()
		start := time.Now()
		logger := zap.L().With(zap.String("run_id", runID))
		logger.Info("build started")

		cat, err := catalog.Load()
		if err != nil {
			return err
		}

		rows, err := cityfile.Read(cfg.Paths.CityListPath())
		if err != nil {
			return err
		}

		cities, err := enrich.Enrich(cat, rows, enrich.Options{
			MaxNearby:      cfg.Enrich.MaxNearby,
			MaxRadiusMiles: cfg.Enrich.MaxRadiusMiles,
		})
		if err != nil {
			return err
		}
		if err := datafile.Write(cfg.Paths.ProcessedCities(), cities); err != nil {
			return err
		}
		logger.Info("cities enriched", zap.Int("cities", len(cities)))

		provider, err := newFacilityProvider(cat)
		if err != nil {
			return err
		}
		facOpts := facility.DefaultOptions()
		facOpts.Concurrency = cfg.Facility.Concurrency
		facilities, err := facility.Generate(ctx, provider, cities, facOpts)
		if err != nil {
			return err
		}
		if err := datafile.Write(cfg.Paths.Facilities(), facilities); err != nil {
			return err
		}
		logger.Info("facilities generated", zap.Int("facilities", facilities.Meta.TotalCount))

		costData := costs.NewEstimator(cat).Generate(cities)
		if err := datafile.Write(cfg.Paths.CostData(), costData); err != nil {
			return err
		}
		logger.Info("costs estimated", zap.Int("cities", len(costData.Cities)))

		data, err := combine.NewCombiner(cat).Combine(cities, facilities, costData)
		if err != nil {
			return err
		}
		if err := datafile.Write(cfg.Paths.CombinedData(), data); err != nil {
			return err
		}
		logger.Info("data combined", zap.Int("cities", data.Meta.TotalCities))

		gen := sitegen.New(data, cfg.Paths.PublicDir, cfg.Site.BaseURL)
		if err := gen.Generate(ctx); err != nil {
			return err
		}
		if err := sitegen.WriteIndex(data, cfg.Paths.PublicDir); err != nil {
			return err
		}
		if err := sitegen.CopyAssets(cfg.Paths.StaticDir, cfg.Paths.PublicDir); err != nil {
			return err
		}

		logger.Info("build complete",
			zap.Int("cities", data.Meta.TotalCities),
			zap.Int("facilities", data.Meta.TotalFacilities),
			zap.Duration("elapsed", time.Since(start)),
		)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(buildCmd)
}
