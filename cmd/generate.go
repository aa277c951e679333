package main

import (
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sells-group/directory-cli/internal/datafile"
	"github.com/sells-group/directory-cli/internal/model"
	"github.com/sells-group/directory-cli/internal/sitegen"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate the static site from the combined dataset",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		var data model.CombinedData
		if err := datafile.Read(cfg.Paths.CombinedData(), &data); err != nil {
			return err
		}

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

		zap.L().Info("site generation complete",
			zap.Int("cities", len(data.Cities)),
			zap.String("output", cfg.Paths.PublicDir),
		)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(generateCmd)
}
