// Package service wires the CSV row source to the observation archive.
package service

import (
	"log/slog"

	"github.com/Inouye165/parsing-weather-data-duke/internal/modules/observations/repository"
	"github.com/Inouye165/parsing-weather-data-duke/internal/modules/observations/scan"
	"github.com/Inouye165/parsing-weather-data-duke/internal/modules/observations/source"
	"github.com/Inouye165/parsing-weather-data-duke/internal/modules/observations/types"
)

type Service struct {
	repo   repository.ObservationRepository
	logger *slog.Logger
}

func New(repo repository.ObservationRepository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{repo: repo, logger: logger}
}

// ImportStats counts what happened during an import run.
type ImportStats struct {
	Files    int
	Records  int64
	Archived int64
	Skipped  int64
}

func (s *ImportStats) add(other ImportStats) {
	s.Files += other.Files
	s.Records += other.Records
	s.Archived += other.Archived
	s.Skipped += other.Skipped
}

// ImportAll archives every file in turn. A file that cannot be read is
// reported and skipped; the rest of the run continues.
func (s *Service) ImportAll(files []source.File) ImportStats {
	var total ImportStats
	for _, f := range files {
		stats, err := s.ImportFile(f)
		total.add(stats)
		if err != nil {
			s.logger.Error("import failed", "file", f.Name(), "error", err)
			continue
		}
		s.logger.Info("file archived",
			"file", f.Name(),
			"records", stats.Records,
			"archived", stats.Archived,
			"skipped", stats.Skipped,
		)
	}
	return total
}

// ImportFile archives one file's readings. Rows whose temperature and
// humidity are both sentinel or unparsable carry no data and are skipped; a
// row with one valid reading is stored with nil for the invalid side. The
// record timestamp text is stored as-is.
func (s *Service) ImportFile(f source.File) (ImportStats, error) {
	rows, err := f.Open()
	if err != nil {
		return ImportStats{}, err
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil {
			s.logger.Error("close rows", "file", f.Name(), "error", closeErr)
		}
	}()

	stats := ImportStats{Files: 1}
	for rows.Next() {
		stats.Records++
		rec := rows.Record()

		temp := numericOrNil(s.logger, f, rec, types.ColTemperatureF)
		hum := numericOrNil(s.logger, f, rec, types.ColHumidity)
		if hum != nil && (*hum < 0 || *hum > 100) {
			// The repository rejects these outright; drop the reading here so
			// one bad cell does not abort the rest of the file.
			s.logger.Warn("humidity out of range, reading dropped",
				"file", f.Name(), "record", rec.Number, "value", *hum)
			hum = nil
		}
		if temp == nil && hum == nil {
			stats.Skipped++
			continue
		}

		if err := s.repo.InsertObservation(f.Name(), rec.Number, rec.Timestamp(), temp, hum); err != nil {
			return stats, err
		}
		stats.Archived++
	}
	if err := rows.Err(); err != nil {
		return stats, err
	}
	return stats, nil
}

func numericOrNil(logger *slog.Logger, f source.File, rec types.Record, field string) *float64 {
	v, ok, warn := scan.NumericField(rec, field)
	if warn != nil {
		logger.Warn(warn.String(), "file", f.Name())
	}
	if !ok {
		return nil
	}
	return &v
}
