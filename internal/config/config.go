// Package config defines service configuration structures and loading.
//
// Conventions:
// - Defaults come from New; Load layers file and env on top.
// - External errors are wrapped via this package's sentinel kinds.
package config

// Backend names accepted for the catalog store.
const (
	BackendAirtable = "airtable"
	BackendBaserow  = "baserow"
)

// Config contains process configuration.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// Addr configures the HTTP listen address, e.g. ":8080".
	Addr string `koanf:"addr"`

	// Backend selects the catalog store: airtable or baserow.
	Backend string `koanf:"backend"`

	// FetchTimeoutMS bounds one upstream catalog fetch.
	FetchTimeoutMS int `koanf:"fetch_timeout_ms"`

	// MaxResults caps how many ranked matches a search returns.
	MaxResults int `koanf:"max_results"`

	// PageSize sets how many records are requested per upstream page.
	PageSize int `koanf:"page_size"`

	// Airtable credentials and coordinates.
	AirtableAPIKey string `koanf:"airtable_api_key"`
	AirtableBaseID string `koanf:"airtable_base_id"`
	AirtableTable  string `koanf:"airtable_table"`

	// Baserow credentials and coordinates.
	BaserowToken   string `koanf:"baserow_token"`
	BaserowHost    string `koanf:"baserow_host"`
	BaserowTableID int    `koanf:"baserow_table_id"`
}

// New creates a Config with defaults.
func New() *Config {
	return &Config{
		LogLevel:       "info",
		Addr:           ":9080",
		Backend:        BackendAirtable,
		FetchTimeoutMS: 10_000,
		MaxResults:     3,
		PageSize:       100,
		AirtableTable:  "Ski Finder",
		BaserowHost:    "baserow.io",
	}
}
