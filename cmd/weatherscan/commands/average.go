package commands

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/Inouye165/parsing-weather-data-duke/internal/config"
	"github.com/Inouye165/parsing-weather-data-duke/internal/modules/observations/aggregate"
	"github.com/Inouye165/parsing-weather-data-duke/internal/modules/observations/scan"
	"github.com/Inouye165/parsing-weather-data-duke/internal/modules/observations/views"
)

func NewAverageCommand(cfg config.Config) *cobra.Command {
	var dir string
	var minHumidity float64

	cmd := &cobra.Command{
		Use:   "average [files...]",
		Short: "Compute each file's average valid temperature",
		Long: `Compute each file's average valid temperature.

With --min-humidity, only rows whose humidity is at or above the threshold
(inclusive) contribute to the average.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			files, err := resolveFiles(cfg, args, dir)
			if err != nil {
				return err
			}
			filtered := cmd.Flags().Changed("min-humidity")

			agg := aggregate.New(slog.Default())
			rows := make([]views.AverageRow, 0, len(files))
			for _, f := range files {
				var m scan.Mean
				var scanErr error
				if filtered {
					m, scanErr = agg.AverageTemperatureMinHumidityIn(f, minHumidity)
				} else {
					m, scanErr = agg.AverageTemperatureIn(f)
				}
				if scanErr != nil {
					slog.Error("skipping file after failed scan", "file", f.Name(), "error", scanErr)
					rows = append(rows, views.AverageRow{File: f.Name()})
					continue
				}
				row := views.AverageRow{File: f.Name(), HasData: m.Valid(), Count: m.Count}
				if m.Valid() {
					row.Average = m.Value()
				}
				rows = append(rows, row)
			}
			views.RenderAverages(cmd.OutOrStdout(), rows)
			return nil
		},
	}

	cmd.Flags().StringVar(&dir, "dir", "", "directory containing observation CSVs (defaults to DATA_DIR)")
	cmd.Flags().Float64Var(&minHumidity, "min-humidity", 0, "only count rows with humidity at or above this threshold")
	return cmd
}
