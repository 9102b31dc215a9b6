package scan

import "github.com/Inouye165/parsing-weather-data-duke/internal/modules/observations/types"

// Reading is one non-sentinel temperature cell paired with its row timestamp,
// kept as raw text for display.
type Reading struct {
	Timestamp string
	Value     string
}

// Temperatures lists every non-sentinel TemperatureF cell in row order, along
// with the total number of records seen (sentinel rows included in the count).
// Cells that would fail a numeric parse are listed as-is; this is a display
// pass, not an aggregation.
func Temperatures(rows Rows) ([]Reading, int64, error) {
	var out []Reading
	var total int64
	for rows.Next() {
		total++
		rec := rows.Record()
		raw, ok := rec.Get(types.ColTemperatureF)
		if !ok || sentinel(types.ColTemperatureF, raw) {
			continue
		}
		out = append(out, Reading{Timestamp: rec.Timestamp(), Value: raw})
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}
	return out, total, nil
}
