package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sells-group/directory-cli/internal/datafile"
	"github.com/sells-group/directory-cli/internal/model"
	"github.com/sells-group/directory-cli/internal/sitegen"
)

var indexCmd = &cobra.Command{
	Use:   "index",
	Short: "Write the client-side search index from the combined dataset",
	RunE: func(cmd *cobra.Command, args []string) error {
		var data model.CombinedData
		if err := datafile.Read(cfg.Paths.CombinedData(), &data); err != nil {
			return err
		}

		if err := sitegen.WriteIndex(data, cfg.Paths.PublicDir); err != nil {
			return err
		}

		zap.L().Info("search index written",
			zap.Int("entries", len(data.Cities)),
			zap.String("public_dir", cfg.Paths.PublicDir),
		)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(indexCmd)
}
