package commands

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/Inouye165/parsing-weather-data-duke/internal/config"
	"github.com/Inouye165/parsing-weather-data-duke/internal/modules/observations/aggregate"
	"github.com/Inouye165/parsing-weather-data-duke/internal/modules/observations/views"
)

func NewColdestFileCommand(cfg config.Config) *cobra.Command {
	var dir string

	cmd := &cobra.Command{
		Use:   "coldest-file [files...]",
		Short: "Find the file containing the overall coldest reading and list its temperatures",
		RunE: func(cmd *cobra.Command, args []string) error {
			files, err := resolveFiles(cfg, args, dir)
			if err != nil {
				return err
			}

			agg := aggregate.New(slog.Default())
			best := agg.ColdestAcross(files)

			var data views.ColdestFileData
			if best != nil {
				data = views.ColdestFileData{
					Found:     true,
					Path:      best.File.Path,
					Value:     best.Extremum.Value,
					Timestamp: best.Extremum.Record.Timestamp(),
				}
				// The winning sequence was consumed finding the extremum; the
				// listing needs a fresh pass over the same file.
				readings, total, err := agg.TemperaturesIn(best.File)
				if err != nil {
					slog.Error("could not re-read coldest file", "file", best.File.Name(), "error", err)
					data.RereadFailed = true
				} else {
					data.TotalRecords = total
					data.Temperatures = make([]views.TemperatureRow, 0, len(readings))
					for _, r := range readings {
						data.Temperatures = append(data.Temperatures, views.TemperatureRow{
							Timestamp: r.Timestamp,
							Value:     r.Value,
						})
					}
				}
			}
			views.RenderColdestFile(cmd.OutOrStdout(), data)
			return nil
		},
	}

	cmd.Flags().StringVar(&dir, "dir", "", "directory containing observation CSVs (defaults to DATA_DIR)")
	return cmd
}
