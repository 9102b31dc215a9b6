package commands

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/Inouye165/parsing-weather-data-duke/internal/config"
	"github.com/Inouye165/parsing-weather-data-duke/internal/modules/observations/aggregate"
	"github.com/Inouye165/parsing-weather-data-duke/internal/modules/observations/views"
)

func NewColdestCommand(cfg config.Config) *cobra.Command {
	var dir string

	cmd := &cobra.Command{
		Use:   "coldest [files...]",
		Short: "Find the coldest valid temperature reading across the input files",
		RunE: func(cmd *cobra.Command, args []string) error {
			files, err := resolveFiles(cfg, args, dir)
			if err != nil {
				return err
			}

			ext := aggregate.New(slog.Default()).ColdestRecordAcross(files)
			var data views.ColdestData
			if ext != nil {
				data = views.ColdestData{
					Found:     true,
					Value:     ext.Value,
					Timestamp: ext.Record.Timestamp(),
				}
			}
			views.RenderColdest(cmd.OutOrStdout(), data)
			return nil
		},
	}

	cmd.Flags().StringVar(&dir, "dir", "", "directory containing observation CSVs (defaults to DATA_DIR)")
	return cmd
}
