// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"encoding/json"
	"io"
	"time"

	"github.com/spf13/viper"

	"github.com/pdiddy/paper-dashboard/internal/dashboard"
	"github.com/pdiddy/paper-dashboard/internal/secrets"
	"github.com/pdiddy/paper-dashboard/internal/source"
	"github.com/pdiddy/paper-dashboard/pkg/types"
)

const (
	defaultSource     = "data.xlsx"
	defaultTimeout    = 60 * time.Second
	defaultUserAgent  = "paper-dashboard/0.1"
	defaultAddr       = ":8080"
	defaultShutdown   = 5 * time.Second
	defaultCatalogDir = "catalog"
	defaultMaxResults = 20
)

func setDefaults() {
	viper.SetDefault("source.path", defaultSource)
	viper.SetDefault("source.timeout", defaultTimeout)
	viper.SetDefault("source.user_agent", defaultUserAgent)
	viper.SetDefault("server.addr", defaultAddr)
	viper.SetDefault("server.shutdown_timeout", defaultShutdown)
	viper.SetDefault("catalog.catalog_dir", defaultCatalogDir)
	viper.SetDefault("catalog.max_results", defaultMaxResults)
}

// dashboardConfig assembles the configuration from flags, environment,
// config file and defaults, in that order of precedence.
func dashboardConfig() types.DashboardConfig {
	return types.DashboardConfig{
		Source: types.SourceConfig{
			HTTPConfig: types.HTTPConfig{
				Timeout:   viper.GetDuration("source.timeout"),
				UserAgent: viper.GetString("source.user_agent"),
			},
			Path:  viper.GetString("source.path"),
			Token: loadedSecrets.Get(secrets.SourceToken),
		},
		Server: types.ServerConfig{
			Addr:            viper.GetString("server.addr"),
			ShutdownTimeout: viper.GetDuration("server.shutdown_timeout"),
		},
		Catalog: types.CatalogConfig{
			CatalogDir: viper.GetString("catalog.catalog_dir"),
			MaxResults: viper.GetInt("catalog.max_results"),
		},
	}
}

// newLoader returns a Loader for the configured source.
func newLoader(cfg types.DashboardConfig) *source.Loader {
	return source.NewLoader(cfg.Source, nil, logger)
}

// loadSnapshot loads the configured spreadsheet and derives every view.
func loadSnapshot(ctx context.Context) (*dashboard.Snapshot, error) {
	rows, err := newLoader(dashboardConfig()).Load(ctx)
	if err != nil {
		return nil, err
	}
	return dashboard.NewSnapshot(rows), nil
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
