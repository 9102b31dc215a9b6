package types

import "testing"

func TestGet(t *testing.T) {
	rec := Record{Number: 1, Fields: map[string]string{"TemperatureF": "41.3"}}

	if v, ok := rec.Get("TemperatureF"); !ok || v != "41.3" {
		t.Errorf("Get(TemperatureF) = %q, %v; want 41.3, true", v, ok)
	}
	if _, ok := rec.Get("Humidity"); ok {
		t.Error("Get(Humidity) = true on absent column; want false")
	}
}

func TestTimestamp_Fallback(t *testing.T) {
	tests := []struct {
		name   string
		fields map[string]string
		want   string
	}{
		{
			name:   "DateUTC primary",
			fields: map[string]string{"DateUTC": "2014-01-03 08:00:00", "TimeEST": "3:00 AM"},
			want:   "2014-01-03 08:00:00",
		},
		{
			name:   "TimeEST when DateUTC absent",
			fields: map[string]string{"TimeEST": "3:00 AM"},
			want:   "3:00 AM",
		},
		{
			name:   "TimeEDT last",
			fields: map[string]string{"TimeEDT": "4:00 AM"},
			want:   "4:00 AM",
		},
		{
			name:   "no timestamp column",
			fields: map[string]string{"TemperatureF": "41.3"},
			want:   "N/A",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := Record{Number: 1, Fields: tt.fields}
			if got := rec.Timestamp(); got != tt.want {
				t.Errorf("Timestamp() = %q, want %q", got, tt.want)
			}
		})
	}
}
