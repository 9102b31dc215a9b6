// Package aggregate applies the single-file scans across a collection of
// files, keeping the global best under strict less-than. Files are processed
// sequentially; a file that cannot be read is reported and skipped, never
// aborting the rest of the run.
package aggregate

import (
	"log/slog"

	"github.com/Inouye165/parsing-weather-data-duke/internal/modules/observations/scan"
	"github.com/Inouye165/parsing-weather-data-duke/internal/modules/observations/source"
)

// FileExtremum pairs the winning file with its winning record.
type FileExtremum struct {
	File     source.File
	Extremum scan.Extremum
}

// Aggregator runs scans over files. Scan warnings and per-file notices are
// emitted on the logger; they never affect which result is returned.
type Aggregator struct {
	logger *slog.Logger
}

func New(logger *slog.Logger) *Aggregator {
	if logger == nil {
		logger = slog.Default()
	}
	return &Aggregator{logger: logger}
}

// ColdestAcross returns the file containing the overall coldest valid
// temperature together with that record, or nil when the file list is empty
// or no file yields a valid reading.
func (a *Aggregator) ColdestAcross(files []source.File) *FileExtremum {
	return a.minAcross(files, scan.Coldest)
}

// ColdestRecordAcross is ColdestAcross with the file identity discarded.
func (a *Aggregator) ColdestRecordAcross(files []source.File) *scan.Extremum {
	return dropFile(a.minAcross(files, scan.Coldest))
}

// LowestHumidityAcross returns the record with the lowest valid humidity
// among all files, or nil when nothing qualifies.
func (a *Aggregator) LowestHumidityAcross(files []source.File) *scan.Extremum {
	return dropFile(a.minAcross(files, scan.LowestHumidity))
}

// AverageTemperatureIn computes the mean valid temperature of one file.
func (a *Aggregator) AverageTemperatureIn(f source.File) (scan.Mean, error) {
	var m scan.Mean
	err := a.scanFile(f, func(rows scan.Rows) ([]scan.Warning, error) {
		var warnings []scan.Warning
		var err error
		m, warnings, err = scan.AverageTemperature(rows)
		return warnings, err
	})
	return m, err
}

// AverageTemperatureMinHumidityIn computes the mean valid temperature of one
// file over rows at or above the inclusive humidity threshold.
func (a *Aggregator) AverageTemperatureMinHumidityIn(f source.File, threshold float64) (scan.Mean, error) {
	var m scan.Mean
	err := a.scanFile(f, func(rows scan.Rows) ([]scan.Warning, error) {
		var warnings []scan.Warning
		var err error
		m, warnings, err = scan.AverageTemperatureMinHumidity(rows, threshold)
		return warnings, err
	})
	return m, err
}

// TemperaturesIn lists every non-sentinel temperature in the file (fresh
// sequence) with the total record count.
func (a *Aggregator) TemperaturesIn(f source.File) ([]scan.Reading, int64, error) {
	var readings []scan.Reading
	var total int64
	err := a.scanFile(f, func(rows scan.Rows) ([]scan.Warning, error) {
		var err error
		readings, total, err = scan.Temperatures(rows)
		return nil, err
	})
	return readings, total, err
}

type extremumScan func(scan.Rows) (*scan.Extremum, []scan.Warning, error)

func (a *Aggregator) minAcross(files []source.File, fn extremumScan) *FileExtremum {
	var best *FileExtremum
	for _, f := range files {
		var ext *scan.Extremum
		err := a.scanFile(f, func(rows scan.Rows) ([]scan.Warning, error) {
			var warnings []scan.Warning
			var err error
			ext, warnings, err = fn(rows)
			return warnings, err
		})
		if err != nil {
			a.logger.Error("skipping file after failed scan", "file", f.Name(), "error", err)
			continue
		}
		if ext == nil {
			a.logger.Info("no valid data in file", "file", f.Name())
			continue
		}
		if best == nil || ext.Value < best.Extremum.Value {
			best = &FileExtremum{File: f, Extremum: *ext}
		}
	}
	return best
}

// scanFile opens a fresh sequence over f, runs the scan and logs its warnings.
func (a *Aggregator) scanFile(f source.File, fn func(scan.Rows) ([]scan.Warning, error)) error {
	rows, err := f.Open()
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil {
			a.logger.Error("close rows", "file", f.Name(), "error", closeErr)
		}
	}()
	warnings, err := fn(rows)
	for _, w := range warnings {
		a.logger.Warn(w.String(), "file", f.Name())
	}
	return err
}

func dropFile(fe *FileExtremum) *scan.Extremum {
	if fe == nil {
		return nil
	}
	e := fe.Extremum
	return &e
}
