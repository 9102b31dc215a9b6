package source

import (
	"os"
	"path/filepath"
	"testing"
)

func writeCSV(t *testing.T, dir, name, content string) File {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return File{Path: path}
}

func TestOpen_ReadsRecords(t *testing.T) {
	f := writeCSV(t, t.TempDir(), "day.csv",
		"DateUTC,TemperatureF,Humidity\n"+
			"2014-01-03 08:00:00,41.3,74\n"+
			"2014-01-03 09:00:00,-9999,N/A\n")

	rows, err := f.Open()
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer func() {
		if err := rows.Close(); err != nil {
			t.Fatalf("Close: %v", err)
		}
	}()

	if !rows.Next() {
		t.Fatalf("Next = false; want first record (err=%v)", rows.Err())
	}
	rec := rows.Record()
	if rec.Number != 1 {
		t.Errorf("Number = %d; want 1", rec.Number)
	}
	if got, _ := rec.Get("TemperatureF"); got != "41.3" {
		t.Errorf("TemperatureF = %q; want 41.3", got)
	}
	if got := rec.Timestamp(); got != "2014-01-03 08:00:00" {
		t.Errorf("Timestamp = %q; want the DateUTC value", got)
	}

	if !rows.Next() {
		t.Fatalf("Next = false; want second record (err=%v)", rows.Err())
	}
	rec = rows.Record()
	if rec.Number != 2 {
		t.Errorf("Number = %d; want 2", rec.Number)
	}
	if got, _ := rec.Get("Humidity"); got != "N/A" {
		t.Errorf("Humidity = %q; want N/A", got)
	}

	if rows.Next() {
		t.Error("Next = true after last record; want false")
	}
	if err := rows.Err(); err != nil {
		t.Errorf("Err = %v; want nil at clean EOF", err)
	}
}

func TestOpen_IndependentSequences(t *testing.T) {
	f := writeCSV(t, t.TempDir(), "day.csv",
		"TemperatureF\n10\n20\n")

	first, err := f.Open()
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	for first.Next() {
	}
	if err := first.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	// A consumed sequence must not affect a fresh one.
	second, err := f.Open()
	if err != nil {
		t.Fatalf("second Open: %v", err)
	}
	defer second.Close()
	var n int
	for second.Next() {
		n++
	}
	if err := second.Err(); err != nil {
		t.Fatalf("second Err: %v", err)
	}
	if n != 2 {
		t.Errorf("second sequence yielded %d records; want 2", n)
	}
}

func TestOpen_EmptyFile(t *testing.T) {
	f := writeCSV(t, t.TempDir(), "empty.csv", "")
	rows, err := f.Open()
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer rows.Close()
	if rows.Next() {
		t.Error("Next = true on empty file; want false")
	}
	if err := rows.Err(); err != nil {
		t.Errorf("Err = %v; want nil", err)
	}
}

func TestOpen_HeaderOnly(t *testing.T) {
	f := writeCSV(t, t.TempDir(), "header.csv", "DateUTC,TemperatureF,Humidity\n")
	rows, err := f.Open()
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer rows.Close()
	if rows.Next() {
		t.Error("Next = true on header-only file; want false")
	}
}

func TestOpen_RaggedRow(t *testing.T) {
	f := writeCSV(t, t.TempDir(), "ragged.csv",
		"DateUTC,TemperatureF,Humidity\n"+
			"2014-01-03 08:00:00,41.3\n")
	rows, err := f.Open()
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer rows.Close()
	if !rows.Next() {
		t.Fatalf("Next = false; want the short record (err=%v)", rows.Err())
	}
	rec := rows.Record()
	if _, ok := rec.Get("Humidity"); ok {
		t.Error("Humidity present on ragged row; want absent")
	}
	if got, _ := rec.Get("TemperatureF"); got != "41.3" {
		t.Errorf("TemperatureF = %q; want 41.3", got)
	}
}

func TestOpen_Missing(t *testing.T) {
	f := File{Path: filepath.Join(t.TempDir(), "nope.csv")}
	if _, err := f.Open(); err == nil {
		t.Fatal("Open on missing file: want error")
	}
}

func TestOpen_MalformedMidFile(t *testing.T) {
	f := writeCSV(t, t.TempDir(), "bad.csv",
		"TemperatureF\n10\n\"unterminated\n")
	rows, err := f.Open()
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer rows.Close()
	if !rows.Next() {
		t.Fatalf("Next = false; want the good record (err=%v)", rows.Err())
	}
	for rows.Next() {
	}
	if rows.Err() == nil {
		t.Error("Err = nil; want read failure for the malformed record")
	}
}

func TestDiscover(t *testing.T) {
	dir := t.TempDir()
	writeCSV(t, dir, "b.csv", "TemperatureF\n")
	writeCSV(t, dir, "a.CSV", "TemperatureF\n")
	writeCSV(t, dir, "notes.txt", "not a csv")
	if err := os.Mkdir(filepath.Join(dir, "sub.csv"), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	files, err := Discover(dir)
	if err != nil {
		t.Fatalf("Discover: %v", err)
	}
	if len(files) != 2 {
		t.Fatalf("Discover found %d files; want 2: %v", len(files), files)
	}
	if files[0].Name() != "a.CSV" || files[1].Name() != "b.csv" {
		t.Errorf("Discover order = [%s %s]; want [a.CSV b.csv]", files[0].Name(), files[1].Name())
	}
}

func TestDiscover_MissingDir(t *testing.T) {
	if _, err := Discover(filepath.Join(t.TempDir(), "absent")); err == nil {
		t.Fatal("Discover on missing dir: want error")
	}
}
