// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"net/netip"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validServerConfig() *StructuredConfig {
	cfg := defaults()
	cfg.Storage.DB.DSN = "postgres://u:p@localhost:5432/lara?sslmode=disable"
	cfg.App.TokenSignKey = "sign-key"
	return cfg
}

func TestValidateServer(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(cfg *StructuredConfig)
		wantErr error
	}{
		{name: "valid postgres", mutate: func(*StructuredConfig) {}},
		{
			name: "valid mongodb",
			mutate: func(cfg *StructuredConfig) {
				cfg.Storage.DB.DSN = "mongodb://localhost:27017"
				cfg.Storage.DB.Name = "lara"
			},
		},
		{
			name:    "mongodb without name",
			mutate:  func(cfg *StructuredConfig) { cfg.Storage.DB.DSN = "mongodb://localhost:27017" },
			wantErr: ErrInvalidStorageConfigs,
		},
		{
			name:    "unsupported dsn",
			mutate:  func(cfg *StructuredConfig) { cfg.Storage.DB.DSN = "mysql://localhost" },
			wantErr: ErrInvalidStorageConfigs,
		},
		{
			name:    "missing sign key",
			mutate:  func(cfg *StructuredConfig) { cfg.App.TokenSignKey = "" },
			wantErr: ErrInvalidAppConfigs,
		},
		{
			name:    "bcrypt cost too high",
			mutate:  func(cfg *StructuredConfig) { cfg.App.BcryptCost = 40 },
			wantErr: ErrInvalidAppConfigs,
		},
		{
			name:    "zero reset ttl",
			mutate:  func(cfg *StructuredConfig) { cfg.App.ResetOTPTTL = 0 },
			wantErr: ErrInvalidAppConfigs,
		},
		{
			name:    "negative event count",
			mutate:  func(cfg *StructuredConfig) { cfg.App.EventCount = -1 },
			wantErr: ErrInvalidAppConfigs,
		},
		{
			name:   "trusted proxies",
			mutate: func(cfg *StructuredConfig) { cfg.Server.TrustedProxies = []string{"10.0.0.0/8", "192.168.1.7"} },
		},
		{
			name:    "malformed trusted proxy",
			mutate:  func(cfg *StructuredConfig) { cfg.Server.TrustedProxies = []string{"proxy.lara.test"} },
			wantErr: ErrInvalidServerConfigs,
		},
		{
			name:    "no listen address",
			mutate:  func(cfg *StructuredConfig) { cfg.Server.HTTPAddress = "" },
			wantErr: ErrInvalidServerConfigs,
		},
		{
			name:    "smtp host without sender",
			mutate:  func(cfg *StructuredConfig) { cfg.Mail.Host = "smtp.lara.test" },
			wantErr: ErrInvalidMailConfigs,
		},
		{
			name:    "zero janitor interval",
			mutate:  func(cfg *StructuredConfig) { cfg.Workers.JanitorInterval = 0 },
			wantErr: ErrInvalidWorkerConfigs,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validServerConfig()
			tt.mutate(cfg)

			err := cfg.validateServer()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestClientConfigFrom(t *testing.T) {
	cfg := defaults()
	cfg.Adapter.HTTPAddress = "http://localhost:8080"
	cfg.Storage.Session.DSN = "file:session.db"

	clientCfg, err := clientConfigFrom(cfg)
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8080", clientCfg.Adapter.HTTPAddress)
	assert.Equal(t, 30*time.Second, clientCfg.Adapter.RequestTimeout)
	assert.Equal(t, "file:session.db", clientCfg.Storage.DB.DSN)
}

func TestClientConfigFrom_MissingAddress(t *testing.T) {
	cfg := defaults()
	cfg.Storage.Session.DSN = "file:session.db"

	_, err := clientConfigFrom(cfg)
	assert.ErrorIs(t, err, ErrInvalidAdapterConfigs)
}

func TestClientConfigFrom_InMemoryDSNRejected(t *testing.T) {
	cfg := defaults()
	cfg.Adapter.HTTPAddress = "http://localhost:8080"
	cfg.Storage.Session.DSN = ":memory:"

	_, err := clientConfigFrom(cfg)
	assert.ErrorIs(t, err, ErrInvalidStorageConfigs)
}

func TestServer_TrustedProxyPrefixes(t *testing.T) {
	prefixes, err := Server{TrustedProxies: []string{" 10.1.2.3/8 ", "192.168.1.7", "", "::ffff:172.16.0.1"}}.TrustedProxyPrefixes()
	require.NoError(t, err)
	assert.Equal(t, []netip.Prefix{
		netip.MustParsePrefix("10.0.0.0/8"),
		netip.MustParsePrefix("192.168.1.7/32"),
		netip.MustParsePrefix("172.16.0.1/32"),
	}, prefixes)

	_, err = Server{TrustedProxies: []string{"10.0.0.0/99"}}.TrustedProxyPrefixes()
	assert.Error(t, err)
}
