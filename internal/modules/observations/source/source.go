// Package source reads observation rows from CSV files. A File can be opened
// any number of times; each Open returns an independent row sequence, so a
// file can be re-scanned after a first pass consumed it.
package source

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/Inouye165/parsing-weather-data-duke/internal/modules/observations/types"
)

// File identifies one observation CSV on disk.
type File struct {
	Path string
}

func (f File) Name() string { return filepath.Base(f.Path) }

// Open returns a fresh row sequence over the file. The first CSV record is
// treated as the header; field values are keyed by the header names. The
// caller owns the sequence and must Close it.
func (f File) Open() (*Rows, error) {
	fd, err := os.Open(f.Path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", f.Path, err)
	}
	r := csv.NewReader(fd)
	// Observation exports occasionally carry ragged rows; field count is not
	// part of the schema we care about.
	r.FieldsPerRecord = -1

	header, err := r.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			// An empty file is an empty sequence, not a failure.
			return &Rows{file: fd, done: true}, nil
		}
		_ = fd.Close()
		return nil, fmt.Errorf("read header of %s: %w", f.Path, err)
	}

	return &Rows{file: fd, r: r, header: header}, nil
}

// Rows is a forward-only sequence of records read from one open file. It
// satisfies the scan package's row sequence contract.
type Rows struct {
	file   *os.File
	r      *csv.Reader
	header []string
	rec    types.Record
	n      int64
	err    error
	done   bool
}

// Next advances to the next record. It returns false at the end of the file
// or on a read failure; check Err to distinguish the two.
func (r *Rows) Next() bool {
	if r.done {
		return false
	}
	cells, err := r.r.Read()
	if err != nil {
		r.done = true
		if !errors.Is(err, io.EOF) {
			r.err = fmt.Errorf("read %s: %w", r.file.Name(), err)
		}
		return false
	}
	r.n++
	fields := make(map[string]string, len(r.header))
	for i, name := range r.header {
		if i < len(cells) {
			fields[name] = cells[i]
		}
	}
	r.rec = types.Record{Number: r.n, Fields: fields}
	return true
}

// Record returns the record produced by the last successful Next.
func (r *Rows) Record() types.Record { return r.rec }

// Err returns the first read failure encountered, if any.
func (r *Rows) Err() error { return r.err }

func (r *Rows) Close() error { return r.file.Close() }

// Discover lists the CSV files directly under dir, in name order. It does not
// recurse and matches the .csv extension case-insensitively.
func Discover(dir string) ([]File, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read dir %s: %w", dir, err)
	}
	var files []File
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if !strings.EqualFold(filepath.Ext(e.Name()), ".csv") {
			continue
		}
		files = append(files, File{Path: filepath.Join(dir, e.Name())})
	}
	return files, nil
}
