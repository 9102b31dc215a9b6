// Package scan implements single-pass aggregations over observation rows:
// extremum searches and running averages. Scans are pure; warnings about
// malformed cells are returned to the caller instead of being logged here.
package scan

import (
	"fmt"
	"strconv"

	"github.com/Inouye165/parsing-weather-data-duke/internal/modules/observations/types"
)

// Rows is a row sequence consumed by a scan, in the database/sql iteration
// shape. A sequence is consumed once; to scan the same file again, obtain a
// fresh sequence from its source.
type Rows interface {
	Next() bool
	Record() types.Record
	Err() error
}

// Extremum is the winning record of an extremum scan together with the parsed
// value that won the comparison.
type Extremum struct {
	Record types.Record
	Value  float64
}

// Mean is a running sum/count accumulator. Count == 0 means the scan accepted
// no valid readings; Value is meaningful only when Count > 0.
type Mean struct {
	Sum   float64
	Count int
}

func (m Mean) Value() float64 { return m.Sum / float64(m.Count) }

// Valid reports whether at least one reading was accumulated.
func (m Mean) Valid() bool { return m.Count > 0 }

// Warning reports a cell that should have been numeric but could not be
// parsed. The row is excluded from the computation and the scan continues.
type Warning struct {
	Field  string
	Value  string
	Record int64
}

func (w Warning) String() string {
	return fmt.Sprintf("could not parse %s value %q in record %d", w.Field, w.Value, w.Record)
}

// Coldest returns the record with the minimum valid TemperatureF, or nil when
// no row carries one. Ties keep the first record encountered.
func Coldest(rows Rows) (*Extremum, []Warning, error) {
	return minimum(rows, types.ColTemperatureF)
}

// LowestHumidity returns the record with the minimum valid Humidity, or nil
// when no row carries one. Ties keep the first record encountered.
func LowestHumidity(rows Rows) (*Extremum, []Warning, error) {
	return minimum(rows, types.ColHumidity)
}

func minimum(rows Rows, field string) (*Extremum, []Warning, error) {
	var best *Extremum
	var warnings []Warning
	for rows.Next() {
		rec := rows.Record()
		v, ok, warn := NumericField(rec, field)
		if warn != nil {
			warnings = append(warnings, *warn)
		}
		if !ok {
			continue
		}
		if best == nil || v < best.Value {
			best = &Extremum{Record: rec, Value: v}
		}
	}
	if err := rows.Err(); err != nil {
		return nil, warnings, err
	}
	return best, warnings, nil
}

// AverageTemperature returns the mean of all valid TemperatureF readings.
func AverageTemperature(rows Rows) (Mean, []Warning, error) {
	var m Mean
	var warnings []Warning
	for rows.Next() {
		v, ok, warn := NumericField(rows.Record(), types.ColTemperatureF)
		if warn != nil {
			warnings = append(warnings, *warn)
		}
		if !ok {
			continue
		}
		m.Sum += v
		m.Count++
	}
	if err := rows.Err(); err != nil {
		return Mean{}, warnings, err
	}
	return m, warnings, nil
}

// AverageTemperatureMinHumidity returns the mean TemperatureF over rows whose
// Humidity is at least threshold (inclusive). Rows where either reading is the
// sentinel are skipped; a row whose humidity parses but whose temperature does
// not is warned about and not counted.
func AverageTemperatureMinHumidity(rows Rows, threshold float64) (Mean, []Warning, error) {
	var m Mean
	var warnings []Warning
	for rows.Next() {
		rec := rows.Record()
		if raw, ok := rec.Get(types.ColTemperatureF); ok && sentinel(types.ColTemperatureF, raw) {
			continue
		}
		h, ok, warn := NumericField(rec, types.ColHumidity)
		if warn != nil {
			warnings = append(warnings, *warn)
		}
		if !ok || h < threshold {
			continue
		}
		t, ok, warn := NumericField(rec, types.ColTemperatureF)
		if warn != nil {
			warnings = append(warnings, *warn)
		}
		if !ok {
			continue
		}
		m.Sum += t
		m.Count++
	}
	if err := rows.Err(); err != nil {
		return Mean{}, warnings, err
	}
	return m, warnings, nil
}

// sentinel reports whether raw is the reserved missing-value marker for the
// named field. Sentinels are expected data and are skipped without a warning.
func sentinel(field, raw string) bool {
	switch field {
	case types.ColTemperatureF:
		return raw == types.SentinelTemperature
	case types.ColHumidity:
		return raw == types.SentinelHumidity
	}
	return false
}

// NumericField classifies the named cell of rec: a parsed value, a silently
// skipped sentinel or absent cell, or a parse failure reported as a warning.
func NumericField(rec types.Record, field string) (float64, bool, *Warning) {
	raw, ok := rec.Get(field)
	if !ok || sentinel(field, raw) {
		return 0, false, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, false, &Warning{Field: field, Value: raw, Record: rec.Number}
	}
	return v, true, nil
}
