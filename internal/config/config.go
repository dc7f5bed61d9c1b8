// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"net/netip"
	"os"
	"strings"
	"time"
)

// StructuredConfig is the top-level configuration container for the
// lara-connect server and client. It aggregates all sub-configurations and
// is populated by merging defaults, a .env file, environment variables,
// command-line flags and an optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env:       direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds credential lifecycle settings: token parameters, password
	// hashing cost, reset OTP lifetime and role derivation.
	App App `envPrefix:"APP_"`

	// Storage holds configuration for the account database and the client
	// session cache.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds network address, timeout and throttling settings for the
	// HTTP server.
	Server Server `envPrefix:"SERVER_"`

	// Mail holds the SMTP relay used to deliver one-time passwords.
	Mail Mail `envPrefix:"MAIL_"`

	// Adapter holds the client's view of the remote HTTP API.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Workers holds configuration for background worker processes.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`

	// DotEnvPath is the .env file loaded before the environment is parsed.
	// Missing files are ignored.
	DotEnvPath string `env:"DOTENV"`
}

// App holds application-level configuration values.
type App struct {
	// TokenSignKey is the secret used to sign and verify session tokens.
	// Env: APP_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer is the "iss" claim embedded in every session token.
	// Env: APP_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// TokenDuration specifies how long a session token remains valid.
	// Env: APP_TOKEN_DURATION
	TokenDuration time.Duration `env:"TOKEN_DURATION"`

	// BcryptCost is the work factor used when hashing passwords.
	// Env: APP_BCRYPT_COST
	BcryptCost int `env:"BCRYPT_COST"`

	// ResetOTPTTL is how long a password reset request stays usable.
	// Env: APP_RESET_OTP_TTL
	ResetOTPTTL time.Duration `env:"RESET_OTP_TTL"`

	// RequireVerifiedReset makes the final reset step require a confirmed
	// reset OTP instead of only an outstanding reset request.
	// Env: APP_REQUIRE_VERIFIED_RESET
	RequireVerifiedReset bool `env:"REQUIRE_VERIFIED_RESET"`

	// RoleCutoff is the admission year prefix above which an identifier
	// belongs to a student; all others are alumni.
	// Env: APP_ROLE_CUTOFF
	RoleCutoff int `env:"ROLE_CUTOFF"`

	// Version is exposed via the /api/version endpoint.
	// Env: APP_VERSION
	Version string `env:"VERSION"`

	// EventCount is the number of upcoming events shown on the dashboards.
	// Env: APP_EVENT_COUNT
	EventCount int `env:"EVENT_COUNT"`
}

// Storage groups the configuration for all storage backends.
type Storage struct {
	// DB holds the account database connection settings.
	DB DB `envPrefix:"DB_"`

	// Session holds the client-side session cache settings.
	Session Session `envPrefix:"SESSION_"`
}

// DB holds connection settings for the account database. The DSN scheme
// selects the backend: postgres:// or mongodb://.
type DB struct {
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`

	// Name is the database name used by the mongodb backend.
	// Env: STORAGE_DB_DATABASE_NAME
	Name string `env:"DATABASE_NAME"`
}

// Session holds the sqlite DSN of the client session cache.
type Session struct {
	// Env: STORAGE_SESSION_DSN
	DSN string `env:"DSN"`
}

// Server holds network, timeout and throttling settings for the HTTP server.
type Server struct {
	// HTTPAddress is the TCP address in "host:port" format.
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the maximum duration allowed for a single request.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// OTPRatePerMinute is the sustained number of OTP submissions allowed
	// per client and account.
	// Env: SERVER_OTP_RATE_PER_MINUTE
	OTPRatePerMinute int `env:"OTP_RATE_PER_MINUTE"`

	// OTPBurst is the number of OTP submissions allowed in a burst.
	// Env: SERVER_OTP_BURST
	OTPBurst int `env:"OTP_BURST"`

	// TrustedProxies lists the addresses or CIDR ranges of reverse proxies
	// whose X-Forwarded-For and X-Real-IP headers are believed. Empty means
	// the peer address is always the client address.
	// Env: SERVER_TRUSTED_PROXIES (comma separated)
	TrustedProxies []string `env:"TRUSTED_PROXIES" envSeparator:","`
}

// TrustedProxyPrefixes parses TrustedProxies. A bare address is a single
// host prefix.
func (s Server) TrustedProxyPrefixes() ([]netip.Prefix, error) {
	prefixes := make([]netip.Prefix, 0, len(s.TrustedProxies))
	for _, entry := range s.TrustedProxies {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}
		if strings.Contains(entry, "/") {
			prefix, err := netip.ParsePrefix(entry)
			if err != nil {
				return nil, fmt.Errorf("trusted proxy %q: %w", entry, err)
			}
			prefixes = append(prefixes, prefix.Masked())
			continue
		}
		addr, err := netip.ParseAddr(entry)
		if err != nil {
			return nil, fmt.Errorf("trusted proxy %q: %w", entry, err)
		}
		addr = addr.Unmap()
		prefixes = append(prefixes, netip.PrefixFrom(addr, addr.BitLen()))
	}
	return prefixes, nil
}

// Mail holds SMTP relay settings. An empty Host selects the log-only relay.
type Mail struct {
	Host     string `env:"HOST"`
	Port     int    `env:"PORT"`
	Username string `env:"USERNAME"`
	Password string `env:"PASSWORD"`
	From     string `env:"FROM"`
	// Timeout bounds a single delivery; zero means no bound.
	Timeout time.Duration `env:"TIMEOUT"`
}

// Adapter holds the client transport settings.
type Adapter struct {
	// HTTPAddress is the base URL or host:port of the credential API.
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the timeout of every outbound client request.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Workers holds configuration for background worker processes.
type Workers struct {
	// JanitorInterval is how often expired records are swept.
	// Env: WORKERS_JANITOR_INTERVAL
	JanitorInterval time.Duration `env:"JANITOR_INTERVAL"`

	// UnverifiedRetention is how long an unverified account is kept before
	// the janitor deletes it.
	// Env: WORKERS_UNVERIFIED_RETENTION
	UnverifiedRetention time.Duration `env:"UNVERIFIED_RETENTION"`
}

// defaults returns the lowest-priority configuration layer.
func defaults() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			TokenIssuer:   "lara-connect",
			TokenDuration: 24 * time.Hour,
			BcryptCost:    10,
			ResetOTPTTL:   10 * time.Minute,
			RoleCutoff:    20,
			Version:       "dev",
			EventCount:    5,
		},
		Server: Server{
			HTTPAddress:      "localhost:8080",
			RequestTimeout:   30 * time.Second,
			OTPRatePerMinute: 5,
			OTPBurst:         5,
		},
		Mail: Mail{
			Port: 587,
		},
		Workers: Workers{
			JanitorInterval:     time.Minute,
			UnverifiedRetention: time.Hour,
		},
		DotEnvPath: ".env",
	}
}

// GetStructuredConfig loads and merges the configuration from all available
// sources in the following priority order (later sources override non-zero
// fields of earlier ones):
//  1. Built-in defaults
//  2. .env file and environment variables
//  3. Command-line flags
//  4. JSON file (path resolved from sources 2 and 3)
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withDefaults().
		withEnv().
		withFlags(os.Args[1:]).
		withJSON().
		build()
}

// GetServerConfig returns the merged configuration validated for the server
// binary.
func GetServerConfig() (*StructuredConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, err
	}

	return cfg, cfg.validateServer()
}
