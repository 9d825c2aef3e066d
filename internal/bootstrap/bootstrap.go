// Package bootstrap wires configured adapters for the command mains.
package bootstrap

import (
	"net/http"
	"time"

	"promptbuilder/internal/adapters/filesystem"
	"promptbuilder/internal/adapters/httpsource"
	"promptbuilder/internal/config"
	"promptbuilder/internal/ports"
)

const fetchTimeout = 30 * time.Second

// Source returns the HTTP source when a data URL is configured and the data
// file source otherwise
func Source(cfg config.Config) ports.TaxonomySource {
	if cfg.DataURL != "" {
		return httpsource.NewSource(cfg.DataURL, &http.Client{Timeout: fetchTimeout})
	}
	return FileSource(cfg)
}

// FileSource reads the configured category files from the data directory
func FileSource(cfg config.Config) *filesystem.Source {
	files := make([]filesystem.DataFile, 0, len(cfg.Categories))
	for _, c := range cfg.Categories {
		files = append(files, filesystem.DataFile{Name: c.Name, File: c.File})
	}
	return filesystem.NewSource(cfg.DataDir, files)
}
