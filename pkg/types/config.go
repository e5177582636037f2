package types

import "time"

// HTTPConfig holds shared HTTP settings used when the spreadsheet is fetched
// over the network.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests
	// (e.g. "paper-dashboard/0.1").
	UserAgent string `json:"user_agent" yaml:"user_agent"`
}

// SourceConfig locates the spreadsheet asset.
type SourceConfig struct {
	HTTPConfig `yaml:",inline"`

	// Path is a local file path or an http(s) URL. The extension selects
	// the parser: .csv for CSV, anything else for xlsx.
	Path string `json:"path" yaml:"path"`

	// Token is sent as a bearer token on HTTP fetches. Loaded from
	// .secrets/source-token, never from the config file.
	Token string `json:"-" yaml:"-"`
}

// ServerConfig holds settings for the dashboard HTTP server.
type ServerConfig struct {
	// Addr is the listen address (default ":8080").
	Addr string `json:"addr" yaml:"addr"`

	// ShutdownTimeout bounds graceful shutdown (default 5s).
	ShutdownTimeout time.Duration `json:"shutdown_timeout" yaml:"shutdown_timeout"`
}

// CatalogConfig holds settings for the offline SQLite catalog.
type CatalogConfig struct {
	// CatalogDir is the directory holding catalog.db and exports.
	CatalogDir string `json:"catalog_dir" yaml:"catalog_dir"`

	// MaxResults is the default maximum number of search results (default 20).
	MaxResults int `json:"max_results" yaml:"max_results"`
}

// DashboardConfig groups every configuration section.
type DashboardConfig struct {
	Source  SourceConfig  `json:"source" yaml:"source"`
	Server  ServerConfig  `json:"server" yaml:"server"`
	Catalog CatalogConfig `json:"catalog" yaml:"catalog"`
}
