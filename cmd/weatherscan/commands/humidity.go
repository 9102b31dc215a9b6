package commands

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/Inouye165/parsing-weather-data-duke/internal/config"
	"github.com/Inouye165/parsing-weather-data-duke/internal/modules/observations/aggregate"
	"github.com/Inouye165/parsing-weather-data-duke/internal/modules/observations/views"
)

func NewLowestHumidityCommand(cfg config.Config) *cobra.Command {
	var dir string

	cmd := &cobra.Command{
		Use:   "lowest-humidity [files...]",
		Short: "Find the lowest valid humidity reading across the input files",
		RunE: func(cmd *cobra.Command, args []string) error {
			files, err := resolveFiles(cfg, args, dir)
			if err != nil {
				return err
			}

			ext := aggregate.New(slog.Default()).LowestHumidityAcross(files)
			var data views.HumidityData
			if ext != nil {
				data = views.HumidityData{
					Found:     true,
					Value:     ext.Value,
					Timestamp: ext.Record.Timestamp(),
				}
			}
			views.RenderLowestHumidity(cmd.OutOrStdout(), data)
			return nil
		},
	}

	cmd.Flags().StringVar(&dir, "dir", "", "directory containing observation CSVs (defaults to DATA_DIR)")
	return cmd
}
