// Package commands implements CLI command handlers for weatherscan.
package commands

import (
	"fmt"

	"github.com/Inouye165/parsing-weather-data-duke/internal/config"
	"github.com/Inouye165/parsing-weather-data-duke/internal/modules/observations/source"
)

// resolveFiles turns command input into the file list to analyze: explicit
// file arguments win; otherwise --dir is listed; otherwise the configured
// data directory. An empty result is legal and yields a no-data outcome.
func resolveFiles(cfg config.Config, args []string, dir string) ([]source.File, error) {
	if len(args) > 0 {
		files := make([]source.File, 0, len(args))
		for _, a := range args {
			files = append(files, source.File{Path: a})
		}
		return files, nil
	}
	if dir == "" {
		dir = cfg.DataDir
	}
	files, err := source.Discover(dir)
	if err != nil {
		return nil, fmt.Errorf("discover observation files: %w", err)
	}
	return files, nil
}
