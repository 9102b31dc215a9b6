package types

// Column names used by the wunderground-style observation CSVs.
const (
	ColTemperatureF = "TemperatureF"
	ColHumidity     = "Humidity"
	ColDateUTC      = "DateUTC"
	ColTimeEST      = "TimeEST"
	ColTimeEDT      = "TimeEDT"
)

// Sentinel text marking a missing reading rather than a real measurement.
const (
	SentinelTemperature = "-9999"
	SentinelHumidity    = "N/A"
)

// Record is a single observation row read from a CSV file. Number is the
// 1-based position of the row among the data rows (the header row does not
// count). Fields maps column names from the header to raw cell text.
type Record struct {
	Number int64
	Fields map[string]string
}

// Get returns the raw text for the named column and whether the column was
// present in the file's header.
func (r Record) Get(name string) (string, bool) {
	v, ok := r.Fields[name]
	return v, ok
}

// Timestamp returns the observation time as recorded in the row. DateUTC is
// the primary timestamp column; TimeEST and TimeEDT are consulted only when
// DateUTC is absent. Returns "N/A" when no timestamp column is present.
func (r Record) Timestamp() string {
	if v, ok := r.Fields[ColDateUTC]; ok {
		return v
	}
	if v, ok := r.Fields[ColTimeEST]; ok {
		return v
	}
	if v, ok := r.Fields[ColTimeEDT]; ok {
		return v
	}
	return "N/A"
}
