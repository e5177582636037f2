// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package source fetches the spreadsheet asset and parses it into RawRows.
// The asset is a local path or an http(s) URL; its extension picks the
// parser.
package source

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"path"
	"strings"

	"go.uber.org/zap"

	"github.com/pdiddy/paper-dashboard/internal/httputil"
	"github.com/pdiddy/paper-dashboard/internal/sheet"
	"github.com/pdiddy/paper-dashboard/pkg/types"
)

// Loader reads the configured spreadsheet.
type Loader struct {
	cfg    types.SourceConfig
	client *http.Client
	logger *zap.Logger
}

// NewLoader returns a Loader for cfg. A nil client uses one with
// cfg.Timeout; a nil logger discards output.
func NewLoader(cfg types.SourceConfig, client *http.Client, logger *zap.Logger) *Loader {
	if client == nil {
		client = &http.Client{Timeout: cfg.Timeout}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Loader{cfg: cfg, client: client, logger: logger}
}

// Load fetches and parses the asset. Fetch and parse failures are returned
// wrapped; per-cell problems are not errors.
func (l *Loader) Load(ctx context.Context) ([]types.RawRow, error) {
	if l.cfg.Path == "" {
		return nil, fmt.Errorf("no spreadsheet path configured")
	}

	data, err := l.read(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetching %s: %w", l.cfg.Path, err)
	}

	var rows []types.RawRow
	if isCSV(l.cfg.Path) {
		rows, err = sheet.ParseCSV(bytes.NewReader(data))
	} else {
		rows, err = sheet.Parse(bytes.NewReader(data))
	}
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", l.cfg.Path, err)
	}

	l.logger.Info("spreadsheet loaded",
		zap.String("path", l.cfg.Path),
		zap.Int("bytes", len(data)),
		zap.Int("rows", len(rows)))
	return rows, nil
}

func (l *Loader) read(ctx context.Context) ([]byte, error) {
	if !isRemote(l.cfg.Path) {
		return os.ReadFile(l.cfg.Path)
	}
	return httputil.Get(ctx, l.client, httputil.Request{
		URL:       l.cfg.Path,
		UserAgent: l.cfg.UserAgent,
		Token:     l.cfg.Token,
	})
}

func isRemote(p string) bool {
	return strings.HasPrefix(p, "http://") || strings.HasPrefix(p, "https://")
}

func isCSV(p string) bool {
	if isRemote(p) {
		if u, err := url.Parse(p); err == nil {
			p = u.Path
		}
	}
	return strings.EqualFold(path.Ext(p), ".csv")
}
