package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Inouye165/parsing-weather-data-duke/internal/config"
)

func writeCSV(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestColdestCommand(t *testing.T) {
	dir := t.TempDir()
	a := writeCSV(t, dir, "a.csv",
		"DateUTC,TemperatureF\n"+
			"2014-01-01 12:00:00,30\n")
	b := writeCSV(t, dir, "b.csv",
		"DateUTC,TemperatureF\n"+
			"2014-01-02 12:00:00,-5\n")

	cmd := NewColdestCommand(config.Config{})
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetArgs([]string{a, b})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("coldest: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "-5 F") {
		t.Errorf("output missing coldest value:\n%s", out)
	}
	if !strings.Contains(out, "2014-01-02 12:00:00") {
		t.Errorf("output missing timestamp:\n%s", out)
	}
}

func TestColdestCommand_DefaultsToDataDir(t *testing.T) {
	dir := t.TempDir()
	writeCSV(t, dir, "a.csv", "TemperatureF\n17\n")

	cmd := NewColdestCommand(config.Config{DataDir: dir})
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetArgs(nil)
	if err := cmd.Execute(); err != nil {
		t.Fatalf("coldest: %v", err)
	}
	if !strings.Contains(buf.String(), "17 F") {
		t.Errorf("output = %q; want the reading from DATA_DIR", buf.String())
	}
}

func TestColdestCommand_NoData(t *testing.T) {
	cmd := NewColdestCommand(config.Config{DataDir: t.TempDir()})
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetArgs(nil)
	if err := cmd.Execute(); err != nil {
		t.Fatalf("coldest: %v", err)
	}
	if !strings.Contains(buf.String(), "No valid temperature readings") {
		t.Errorf("output = %q; want a no-data notice", buf.String())
	}
}

func TestColdestFileCommand(t *testing.T) {
	dir := t.TempDir()
	warm := writeCSV(t, dir, "warm.csv",
		"DateUTC,TemperatureF\n"+
			"2014-07-01 12:00:00,85\n")
	cold := writeCSV(t, dir, "cold.csv",
		"DateUTC,TemperatureF\n"+
			"2014-01-01 12:00:00,22\n"+
			"2014-01-01 13:00:00,-9999\n"+
			"2014-01-01 14:00:00,-5\n")

	cmd := NewColdestFileCommand(config.Config{})
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetArgs([]string{warm, cold})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("coldest-file: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "cold.csv") {
		t.Errorf("output missing winning file:\n%s", out)
	}
	if !strings.Contains(out, "Total records processed: 3") {
		t.Errorf("output missing record count (sentinel rows count too):\n%s", out)
	}
	if strings.Contains(out, "-9999") {
		t.Errorf("sentinel temperature listed:\n%s", out)
	}
}

func TestLowestHumidityCommand(t *testing.T) {
	dir := t.TempDir()
	f := writeCSV(t, dir, "a.csv",
		"DateUTC,Humidity\n"+
			"2014-01-20 07:00:00,N/A\n"+
			"2014-01-20 08:00:00,43\n")

	cmd := NewLowestHumidityCommand(config.Config{})
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetArgs([]string{f})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("lowest-humidity: %v", err)
	}
	if !strings.Contains(buf.String(), "Lowest humidity was 43") {
		t.Errorf("output = %q", buf.String())
	}
}

func TestAverageCommand(t *testing.T) {
	dir := t.TempDir()
	f := writeCSV(t, dir, "a.csv", "TemperatureF\n10\n-9999\n20\n")

	cmd := NewAverageCommand(config.Config{})
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetArgs([]string{f})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("average: %v", err)
	}
	if !strings.Contains(buf.String(), "15.00") {
		t.Errorf("output missing average:\n%s", buf.String())
	}
}

func TestAverageCommand_MinHumidity(t *testing.T) {
	dir := t.TempDir()
	f := writeCSV(t, dir, "a.csv",
		"TemperatureF,Humidity\n"+
			"50,90\n"+
			"60,70\n")

	cmd := NewAverageCommand(config.Config{})
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetArgs([]string{"--min-humidity", "80", f})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("average --min-humidity: %v", err)
	}
	if !strings.Contains(buf.String(), "50.00") {
		t.Errorf("output missing filtered average:\n%s", buf.String())
	}
}

func TestArchiveCommand(t *testing.T) {
	dir := t.TempDir()
	f := writeCSV(t, dir, "a.csv",
		"DateUTC,TemperatureF,Humidity\n"+
			"2014-01-03 08:00:00,41.3,74\n"+
			"2014-01-03 09:00:00,-9999,N/A\n")

	cfg := config.Config{
		Driver:       "sqlite3",
		Path:         filepath.Join(t.TempDir(), "observations.db"),
		MaxOpenConns: 1,
		MaxIdleConns: 1,
	}
	cmd := NewArchiveCommand(cfg)
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetArgs([]string{f})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("archive: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "Archive now holds 1 observations") {
		t.Errorf("output missing archive total:\n%s", out)
	}
	if !strings.Contains(out, "41.3 F from a.csv") {
		t.Errorf("output missing coldest stored reading:\n%s", out)
	}
}

func TestResolveFiles_ExplicitArgsWin(t *testing.T) {
	files, err := resolveFiles(config.Config{DataDir: "ignored"}, []string{"x.csv", "y.csv"}, "also-ignored")
	if err != nil {
		t.Fatalf("resolveFiles: %v", err)
	}
	if len(files) != 2 || files[0].Path != "x.csv" {
		t.Errorf("files = %v; want the explicit args", files)
	}
}

func TestResolveFiles_MissingDir(t *testing.T) {
	if _, err := resolveFiles(config.Config{}, nil, filepath.Join(t.TempDir(), "absent")); err == nil {
		t.Fatal("resolveFiles on missing dir: want error")
	}
}
