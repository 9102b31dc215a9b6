// Package views renders analysis results for the console. Functions take
// plain view models and an io.Writer so commands stay thin and rendering is
// testable without capturing process output.
package views

import (
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
)

// ColdestData is the view model for a coldest-reading result.
type ColdestData struct {
	Found     bool
	Value     float64
	Timestamp string
}

func RenderColdest(w io.Writer, d ColdestData) {
	if !d.Found {
		fmt.Fprintln(w, "No valid temperature readings found.")
		return
	}
	fmt.Fprintf(w, "Coldest temperature was %v F\n", d.Value)
	fmt.Fprintf(w, "Coldest temperature occurred at %s\n", d.Timestamp)
}

// ColdestFileData is the view model for the file-with-coldest-reading result,
// including the file's full temperature listing.
type ColdestFileData struct {
	Found     bool
	Path      string
	Value     float64
	Timestamp string

	Temperatures []TemperatureRow
	TotalRecords int64
	RereadFailed bool
}

type TemperatureRow struct {
	Timestamp string
	Value     string
}

func RenderColdestFile(w io.Writer, d ColdestFileData) {
	if !d.Found {
		fmt.Fprintln(w, "Unable to find file with coldest temperature (no files or no valid data).")
		return
	}
	fmt.Fprintf(w, "Coldest day was in file %s\n", d.Path)
	fmt.Fprintf(w, "Coldest temperature on that day was %v F (at %s)\n", d.Value, d.Timestamp)
	if d.RereadFailed {
		fmt.Fprintln(w, "Could not re-read the file to list its temperatures.")
		return
	}
	fmt.Fprintln(w, "All the temperatures on the coldest day were:")

	tbl := newTable(w)
	tbl.AppendHeader(table.Row{"Time", "Temperature (F)"})
	for _, r := range d.Temperatures {
		tbl.AppendRow(table.Row{r.Timestamp, r.Value})
	}
	tbl.Render()
	fmt.Fprintf(w, "Total records processed: %d\n", d.TotalRecords)
}

// HumidityData is the view model for a lowest-humidity result.
type HumidityData struct {
	Found     bool
	Value     float64
	Timestamp string
}

func RenderLowestHumidity(w io.Writer, d HumidityData) {
	if !d.Found {
		fmt.Fprintln(w, "No valid humidity readings found.")
		return
	}
	fmt.Fprintf(w, "Lowest humidity was %v at %s\n", d.Value, d.Timestamp)
}

// AverageRow is one file's average in the averages table.
type AverageRow struct {
	File    string
	HasData bool
	Average float64
	Count   int
}

func RenderAverages(w io.Writer, rows []AverageRow) {
	if len(rows) == 0 {
		fmt.Fprintln(w, "No files to analyze.")
		return
	}
	tbl := newTable(w)
	tbl.AppendHeader(table.Row{"File", "Average Temperature (F)", "Readings"})
	for _, r := range rows {
		if !r.HasData {
			tbl.AppendRow(table.Row{r.File, "no valid data", 0})
			continue
		}
		tbl.AppendRow(table.Row{r.File, fmt.Sprintf("%.2f", r.Average), r.Count})
	}
	tbl.Render()
}

// ImportData is the view model for an archive run summary.
type ImportData struct {
	Files    int
	Records  int64
	Archived int64
	Skipped  int64

	TotalStored   int
	ColdestStored *ColdestStored
}

type ColdestStored struct {
	Value      float64
	SourceFile string
	ObservedAt string
}

func RenderImport(w io.Writer, d ImportData) {
	tbl := newTable(w)
	tbl.AppendHeader(table.Row{"Files", "Records", "Archived", "Skipped"})
	tbl.AppendRow(table.Row{d.Files, d.Records, d.Archived, d.Skipped})
	tbl.Render()
	fmt.Fprintf(w, "Archive now holds %d observations\n", d.TotalStored)
	if d.ColdestStored != nil {
		fmt.Fprintf(w, "Coldest stored reading: %v F from %s at %s\n",
			d.ColdestStored.Value, d.ColdestStored.SourceFile, d.ColdestStored.ObservedAt)
	}
}

func newTable(w io.Writer) table.Writer {
	tbl := table.NewWriter()
	tbl.SetOutputMirror(w)
	tbl.SetStyle(table.StyleLight)
	tbl.Style().Options.SeparateRows = false
	return tbl
}
