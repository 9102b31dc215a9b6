// Package repository persists raw observations to SQLite so scanned files can
// be inspected later without re-reading the CSVs. Aggregate results are never
// stored; only the readings themselves.
package repository

import (
	"database/sql"
	_ "embed"
	"fmt"
)

//go:embed sql/insert-observation.sql
var insertObservationSQL string

//go:embed sql/count-observations.sql
var countObservationsSQL string

//go:embed sql/coldest-observation.sql
var coldestObservationSQL string

// StoredObservation is one archived reading. A nil pointer means the reading
// was missing or invalid in the source row.
type StoredObservation struct {
	SourceFile   string
	RecordNumber int64
	ObservedAt   string
	TemperatureF *float64
	HumidityPct  *float64
}

type ObservationRepository interface {
	InsertObservation(sourceFile string, recordNumber int64, observedAt string, temperatureF, humidityPct *float64) error
	CountObservations() (int, error)
	ColdestObservation() (*StoredObservation, error)
}

type repositoryImpl struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) ObservationRepository {
	return &repositoryImpl{db: db}
}

func (r *repositoryImpl) InsertObservation(sourceFile string, recordNumber int64, observedAt string, temperatureF, humidityPct *float64) error {
	if recordNumber < 1 {
		return fmt.Errorf("record number must be positive: %d", recordNumber)
	}
	if humidityPct != nil {
		if *humidityPct < 0 || *humidityPct > 100 {
			return fmt.Errorf("humidity_pct out of range: %f (must be 0-100)", *humidityPct)
		}
	}

	var tempVal any
	if temperatureF != nil {
		tempVal = *temperatureF
	}
	var humidityVal any
	if humidityPct != nil {
		humidityVal = *humidityPct
	}

	_, err := r.db.Exec(insertObservationSQL, sourceFile, recordNumber, observedAt, tempVal, humidityVal)
	if err != nil {
		return fmt.Errorf("insert observation: %w", err)
	}
	return nil
}

func (r *repositoryImpl) CountObservations() (int, error) {
	var n int
	err := r.db.QueryRow(countObservationsSQL).Scan(&n)
	return n, err
}

// ColdestObservation returns the archived reading with the lowest stored
// temperature, or nil when the archive holds no temperature readings.
func (r *repositoryImpl) ColdestObservation() (*StoredObservation, error) {
	var o StoredObservation
	var temp float64
	var humidity sql.NullFloat64
	err := r.db.QueryRow(coldestObservationSQL).Scan(&o.SourceFile, &o.RecordNumber, &o.ObservedAt, &temp, &humidity)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("coldest observation: %w", err)
	}
	o.TemperatureF = &temp
	if humidity.Valid {
		h := humidity.Float64
		o.HumidityPct = &h
	}
	return &o, nil
}
