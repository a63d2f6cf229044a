// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the
// keybridge broker. It aggregates all sub-configurations and is populated by
// merging values from environment variables, command-line flags, and an
// optional JSON file.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings such as cryptographic keys and
	// token parameters.
	App App `envPrefix:"APP_"`

	// Vault holds settings for the outbound connection to the remote
	// vault/account-management service.
	Vault Vault `envPrefix:"VAULT_"`

	// Storage holds configuration for the persistence backend.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds network address and timeout settings for the HTTP
	// server.
	Server Server `envPrefix:"SERVER_"`

	// Workers holds configuration for background worker processes.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values that control security and
// token lifecycle.
type App struct {
	// MasterKey is the secret from which the symmetric at-rest encryption
	// key is derived. Team and identity private keys are sealed with it
	// before they reach the database. Must be kept confidential.
	// Env: APP_MASTER_KEY
	MasterKey string `env:"MASTER_KEY"`

	// TokenSignKey is the secret key used to sign and verify requester
	// JWT tokens. Must be kept confidential.
	// Env: APP_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer is the "iss" claim embedded in every issued JWT token.
	// Env: APP_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// TokenDuration specifies how long a JWT token remains valid after
	// issuance (e.g. "1h", "30m").
	// Env: APP_TOKEN_DURATION
	TokenDuration time.Duration `env:"TOKEN_DURATION"`

	// Version is the semantic version string of the running application.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Vault holds settings for the outbound vault API client.
type Vault struct {
	// BaseURL is the root URL of the remote vault/account service
	// (e.g. "https://app.vendor.example/api/v1").
	// Env: VAULT_BASE_URL
	BaseURL string `env:"BASE_URL"`

	// Timeout bounds one outbound request including retries inside the
	// HTTP client (e.g. "15s").
	// Env: VAULT_TIMEOUT
	Timeout time.Duration `env:"TIMEOUT"`

	// RequireAuth controls whether outbound calls fail fast when the team
	// carries no key material to build auth headers from.
	// Env: VAULT_REQUIRE_AUTH
	RequireAuth bool `env:"REQUIRE_AUTH" envDefault:"true"`
}

// Storage groups the configuration for the persistence backend.
type Storage struct {
	// DB holds the database connection settings.
	DB DBConfig `envPrefix:"DB_"`
}

// DBConfig holds connection settings for the database backend.
type DBConfig struct {
	// Driver selects the backend: "pgx" for PostgreSQL or "sqlite3" for a
	// single-box file database.
	// Env: STORAGE_DB_DRIVER
	Driver string `env:"DRIVER" envDefault:"pgx"`

	// DSN is the Data Source Name used to open the database connection:
	// a PostgreSQL connection string for "pgx", a file path for "sqlite3".
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
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

// Workers holds configuration for background worker processes.
type Workers struct {
	// VerifyInterval is the period between account-status sweeps over all
	// configured teams. Zero disables the worker.
	// Env: WORKERS_VERIFY_INTERVAL
	VerifyInterval time.Duration `env:"VERIFY_INTERVAL"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (last source wins for non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		build()
}
