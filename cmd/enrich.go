package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sells-group/directory-cli/internal/catalog"
	"github.com/sells-group/directory-cli/internal/cityfile"
	"github.com/sells-group/directory-cli/internal/datafile"
	"github.com/sells-group/directory-cli/internal/enrich"
)

var enrichInput string

var enrichCmd = &cobra.Command{
	Use:   "enrich",
	Short: "Enrich the raw city list with nearby cities and baseline costs",
	RunE: func(cmd *cobra.Command, args []string) error {
		cat, err := catalog.Load()
		if err != nil {
			return err
		}

		input := enrichInput
		if input == "" {
			input = cfg.Paths.CityListPath()
		}

		rows, err := cityfile.Read(input)
		if err != nil {
			return err
		}
		zap.L().Info("city list loaded",
			zap.String("path", input),
			zap.Int("cities", len(rows)),
		)

		cities, err := enrich.Enrich(cat, rows, enrich.Options{
			MaxNearby:      cfg.Enrich.MaxNearby,
			MaxRadiusMiles: cfg.Enrich.MaxRadiusMiles,
		})
		if err != nil {
			return err
		}

		out := cfg.Paths.ProcessedCities()
		if err := datafile.Write(out, cities); err != nil {
			return err
		}

		zap.L().Info("enrichment complete",
			zap.Int("cities", len(cities)),
			zap.String("output", out),
		)
		return nil
	},
}

func init() {
	enrichCmd.Flags().StringVar(&enrichInput, "input", "", "city list file (csv or xlsx); defaults to the configured path")
	rootCmd.AddCommand(enrichCmd)
}
