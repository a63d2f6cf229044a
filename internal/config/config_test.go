package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			MasterKey:     "master",
			TokenSignKey:  "sign",
			TokenIssuer:   "keybridge",
			TokenDuration: time.Hour,
		},
		Vault: Vault{
			BaseURL:     "https://vault.example.com",
			Timeout:     15 * time.Second,
			RequireAuth: true,
		},
		Storage: Storage{
			DB: DBConfig{Driver: "pgx", DSN: "postgres://localhost/keybridge"},
		},
		Server: Server{
			HTTPAddress:    "localhost:8080",
			RequestTimeout: 30 * time.Second,
		},
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(cfg *StructuredConfig)
		wantErr error
	}{
		{
			name:   "valid config",
			mutate: func(cfg *StructuredConfig) {},
		},
		{
			name:    "empty DSN",
			mutate:  func(cfg *StructuredConfig) { cfg.Storage.DB.DSN = "" },
			wantErr: ErrInvalidStorageConfigs,
		},
		{
			name:    "unknown driver",
			mutate:  func(cfg *StructuredConfig) { cfg.Storage.DB.Driver = "oracle" },
			wantErr: ErrInvalidStorageConfigs,
		},
		{
			name:    "missing master key",
			mutate:  func(cfg *StructuredConfig) { cfg.App.MasterKey = "" },
			wantErr: ErrInvalidAppConfigs,
		},
		{
			name:    "missing token sign key",
			mutate:  func(cfg *StructuredConfig) { cfg.App.TokenSignKey = "" },
			wantErr: ErrInvalidAppConfigs,
		},
		{
			name:    "missing vault URL",
			mutate:  func(cfg *StructuredConfig) { cfg.Vault.BaseURL = "" },
			wantErr: ErrInvalidVaultConfigs,
		},
		{
			name:    "missing server address",
			mutate:  func(cfg *StructuredConfig) { cfg.Server.HTTPAddress = "" },
			wantErr: ErrInvalidServerConfigs,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)

			err := cfg.validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestParseEnv(t *testing.T) {
	t.Setenv("APP_MASTER_KEY", "env-master")
	t.Setenv("APP_TOKEN_SIGN_KEY", "env-sign")
	t.Setenv("APP_TOKEN_DURATION", "45m")
	t.Setenv("VAULT_BASE_URL", "https://vault.example.com")
	t.Setenv("VAULT_REQUIRE_AUTH", "false")
	t.Setenv("STORAGE_DB_DRIVER", "sqlite3")
	t.Setenv("STORAGE_DB_DATABASE_URI", "keybridge.db")
	t.Setenv("SERVER_ADDRESS", "localhost:9090")
	t.Setenv("WORKERS_VERIFY_INTERVAL", "10m")

	cfg := &StructuredConfig{}
	err := parseEnv(cfg)
	require.NoError(t, err)

	assert.Equal(t, "env-master", cfg.App.MasterKey)
	assert.Equal(t, "env-sign", cfg.App.TokenSignKey)
	assert.Equal(t, 45*time.Minute, cfg.App.TokenDuration)
	assert.Equal(t, "https://vault.example.com", cfg.Vault.BaseURL)
	assert.False(t, cfg.Vault.RequireAuth)
	assert.Equal(t, "sqlite3", cfg.Storage.DB.Driver)
	assert.Equal(t, "keybridge.db", cfg.Storage.DB.DSN)
	assert.Equal(t, "localhost:9090", cfg.Server.HTTPAddress)
	assert.Equal(t, 10*time.Minute, cfg.Workers.VerifyInterval)
}

func TestParseEnvDefaults(t *testing.T) {
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)
	require.NoError(t, err)

	assert.Equal(t, "pgx", cfg.Storage.DB.Driver)
	assert.True(t, cfg.Vault.RequireAuth)
}

func TestParseJSON(t *testing.T) {
	content := `{
		"app": {
			"master_key": "json-master",
			"token_sign_key": "json-sign",
			"token_issuer": "keybridge",
			"token_duration": "2h"
		},
		"vault": {
			"base_url": "https://vault.example.com",
			"timeout": "20s",
			"require_auth": false
		},
		"storage": {
			"db": {"driver": "pgx", "database_uri": "postgres://localhost/keybridge"}
		},
		"server": {
			"address": "localhost:8080",
			"request_timeout": "1m"
		},
		"workers": {
			"verify_interval": "15m"
		}
	}`

	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := parseJSON(path)
	require.NoError(t, err)

	assert.Equal(t, "json-master", cfg.App.MasterKey)
	assert.Equal(t, 2*time.Hour, cfg.App.TokenDuration)
	assert.Equal(t, 20*time.Second, cfg.Vault.Timeout)
	assert.False(t, cfg.Vault.RequireAuth)
	assert.Equal(t, "postgres://localhost/keybridge", cfg.Storage.DB.DSN)
	assert.Equal(t, time.Minute, cfg.Server.RequestTimeout)
	assert.Equal(t, 15*time.Minute, cfg.Workers.VerifyInterval)
}

func TestParseJSONErrors(t *testing.T) {
	_, err := parseJSON(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "broken.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"app":`), 0o600))

	_, err = parseJSON(path)
	assert.Error(t, err)
}

func TestDurationUnmarshal(t *testing.T) {
	var d Duration

	require.NoError(t, d.UnmarshalJSON([]byte(`"1h30m"`)))
	assert.Equal(t, 90*time.Minute, time.Duration(d))

	require.NoError(t, d.UnmarshalJSON([]byte(`1000000000`)))
	assert.Equal(t, time.Second, time.Duration(d))

	assert.Error(t, d.UnmarshalJSON([]byte(`"not-a-duration"`)))
	assert.Error(t, d.UnmarshalJSON([]byte(`true`)))
}

func TestBuilderMergePriority(t *testing.T) {
	envCfg := &StructuredConfig{
		App: App{MasterKey: "env-master", TokenSignKey: "env-sign"},
		Storage: Storage{
			DB: DBConfig{Driver: "pgx", DSN: "postgres://env"},
		},
	}
	jsonCfg := &StructuredConfig{
		App: App{MasterKey: "json-master", TokenIssuer: "json-issuer"},
		Vault: Vault{
			BaseURL: "https://vault.example.com",
		},
		Storage: Storage{
			DB: DBConfig{DSN: "postgres://json"},
		},
		Server: Server{HTTPAddress: "localhost:8080"},
	}

	b := newConfigBuilder()
	b.configs = append(b.configs, envCfg, jsonCfg)

	cfg, err := b.build()
	require.NoError(t, err)

	// earlier sources win, later sources only fill gaps
	assert.Equal(t, "env-master", cfg.App.MasterKey)
	assert.Equal(t, "postgres://env", cfg.Storage.DB.DSN)
	assert.Equal(t, "json-issuer", cfg.App.TokenIssuer)
	assert.Equal(t, "https://vault.example.com", cfg.Vault.BaseURL)
}

func TestBuilderValidationFailure(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{})

	_, err := b.build()
	assert.ErrorIs(t, err, ErrInvalidStorageConfigs)
}

func TestNetAddress(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    NetAddress
		wantErr bool
	}{
		{name: "localhost", input: "localhost:8080", want: NetAddress{Host: "localhost", Port: 8080}},
		{name: "ip address", input: "127.0.0.1:9090", want: NetAddress{Host: "127.0.0.1", Port: 9090}},
		{name: "no port", input: "localhost", wantErr: true},
		{name: "bad port", input: "localhost:http", wantErr: true},
		{name: "negative port", input: "localhost:-1", wantErr: true},
		{name: "bad host", input: "not-an-ip:8080", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var addr NetAddress
			err := addr.Set(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, addr)
			assert.Equal(t, tt.input, addr.String())
		})
	}

	var empty NetAddress
	assert.Empty(t, empty.String())
}
