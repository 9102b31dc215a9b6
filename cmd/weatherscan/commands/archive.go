package commands

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/Inouye165/parsing-weather-data-duke/internal/config"
	"github.com/Inouye165/parsing-weather-data-duke/internal/db"
	"github.com/Inouye165/parsing-weather-data-duke/internal/modules/observations/repository"
	"github.com/Inouye165/parsing-weather-data-duke/internal/modules/observations/service"
	"github.com/Inouye165/parsing-weather-data-duke/internal/modules/observations/views"
)

func NewArchiveCommand(cfg config.Config) *cobra.Command {
	var dir string

	cmd := &cobra.Command{
		Use:   "archive [files...]",
		Short: "Store raw observations from the input files in the SQLite archive",
		RunE: func(cmd *cobra.Command, args []string) error {
			files, err := resolveFiles(cfg, args, dir)
			if err != nil {
				return err
			}

			dbConn, err := db.Open(cfg)
			if err != nil {
				return err
			}
			defer func() {
				if closeErr := db.Close(dbConn); closeErr != nil {
					slog.Error("db close", "error", closeErr)
				}
			}()
			if err := repository.Migrate(dbConn); err != nil {
				return err
			}

			repo := repository.NewRepository(dbConn)
			stats := service.New(repo, slog.Default()).ImportAll(files)

			total, err := repo.CountObservations()
			if err != nil {
				return err
			}
			data := views.ImportData{
				Files:       stats.Files,
				Records:     stats.Records,
				Archived:    stats.Archived,
				Skipped:     stats.Skipped,
				TotalStored: total,
			}
			coldest, err := repo.ColdestObservation()
			if err != nil {
				return err
			}
			if coldest != nil {
				data.ColdestStored = &views.ColdestStored{
					Value:      *coldest.TemperatureF,
					SourceFile: coldest.SourceFile,
					ObservedAt: coldest.ObservedAt,
				}
			}
			views.RenderImport(cmd.OutOrStdout(), data)
			return nil
		},
	}

	cmd.Flags().StringVar(&dir, "dir", "", "directory containing observation CSVs (defaults to DATA_DIR)")
	return cmd
}
