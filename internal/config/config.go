// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the invoice
// maker application. It aggregates all sub-configurations and is populated by
// merging values from environment variables, command-line flags, an optional
// JSON file, and built-in defaults.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings: the session signing secret, the
	// one-time owner setup key, and the company branding used on PDFs.
	App App `envPrefix:"APP_"`

	// Storage holds configuration for the SQLite database file.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds network address and timeout settings for the HTTP server.
	Server Server `envPrefix:"SERVER_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// SessionSecret is the secret key used to sign session cookies with
	// HMAC-SHA256. Must be kept confidential.
	// Env: APP_SESSION_SECRET
	SessionSecret string `env:"SESSION_SECRET"`

	// SessionDuration specifies how long a staff session remains valid
	// after login (e.g. "12h", "30m"). Defaults to 12h.
	// Env: APP_SESSION_DURATION
	SessionDuration time.Duration `env:"SESSION_DURATION"`

	// OwnerSetupKey is the shared secret required by the one-time owner
	// setup route. Must be kept confidential.
	// Env: APP_OWNER_SETUP_KEY
	OwnerSetupKey string `env:"OWNER_SETUP_KEY"`

	// CompanyURL is the website printed and linked in every PDF footer.
	// Env: APP_COMPANY_URL
	CompanyURL string `env:"COMPANY_URL"`

	// LogoFile is the path to the brand image bundled alongside the service.
	// A missing file degrades the PDF footer gracefully instead of failing.
	// Env: APP_LOGO_FILE
	LogoFile string `env:"LOGO_FILE"`
}

// Storage groups the configuration for the persistence backend.
type Storage struct {
	// DBFile is the SQLite database file location. On ephemeral storage the
	// data is lost on redeploy; point it at a persistent volume in
	// production. Operational constraint, not a code concern.
	// Env: STORAGE_DB_FILE
	DBFile string `env:"DB_FILE"`
}

// Server holds network and timeout settings for the inbound transport layer.
type Server struct {
	// HTTPAddress is the TCP address on which the HTTP server listens,
	// in "host:port" format (e.g. "0.0.0.0:8080").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the maximum duration allowed for a single inbound
	// request before the server cancels it (e.g. "30s", "1m").
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// defaults returns the built-in fallback configuration. It is merged last, so
// it only fills fields left unset by every other source.
func defaults() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			SessionDuration: 12 * time.Hour,
			CompanyURL:      "https://cargomonterrey.com/",
			LogoFile:        "web/static/cargo_logo.png",
		},
		Storage: Storage{
			DBFile: "app.db",
		},
		Server: Server{
			HTTPAddress:    ":8080",
			RequestTimeout: 30 * time.Second,
		},
	}
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order:
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//  4. Built-in defaults
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		withDefaults().
		build()
}
