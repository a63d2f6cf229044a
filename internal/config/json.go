// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"errors"
	"os"
	"time"
)

// Duration wraps time.Duration so JSON configs can carry human-readable
// values like "1h" or "30s".
type Duration time.Duration

// StructuredJSONConfig mirrors StructuredConfig for the JSON file source.
type StructuredJSONConfig struct {
	App          AppJSON     `json:"app"`
	Vault        VaultJSON   `json:"vault"`
	Storage      StorageJSON `json:"storage"`
	Server       ServerJSON  `json:"server"`
	Workers      WorkersJSON `json:"workers"`
	JSONFilePath string      `json:"-"`
}

type AppJSON struct {
	MasterKey     string   `json:"master_key"`
	TokenSignKey  string   `json:"token_sign_key"`
	TokenIssuer   string   `json:"token_issuer"`
	TokenDuration Duration `json:"token_duration"`
}

type VaultJSON struct {
	BaseURL     string   `json:"base_url"`
	Timeout     Duration `json:"timeout"`
	RequireAuth *bool    `json:"require_auth"`
}

type StorageJSON struct {
	DB DBJSONConfig `json:"db"`
}

type DBJSONConfig struct {
	Driver string `json:"driver"`
	DSN    string `json:"database_uri"`
}

type ServerJSON struct {
	HTTPAddress    string   `json:"address"`
	RequestTimeout Duration `json:"request_timeout"`
}

type WorkersJSON struct {
	VerifyInterval Duration `json:"verify_interval"`
}

// parseJSON reads cfgFilePath and converts the result into a
// StructuredConfig suitable for merging.
func parseJSON(cfgFilePath string) (*StructuredConfig, error) {
	data, err := os.ReadFile(cfgFilePath)
	if err != nil {
		return nil, err
	}

	var jsonCfg StructuredJSONConfig
	if err = json.Unmarshal(data, &jsonCfg); err != nil {
		return nil, err
	}

	return jsonCfg.toStructuredConfig(), nil
}

func (c *StructuredJSONConfig) toStructuredConfig() *StructuredConfig {
	cfg := &StructuredConfig{
		App: App{
			MasterKey:     c.App.MasterKey,
			TokenSignKey:  c.App.TokenSignKey,
			TokenIssuer:   c.App.TokenIssuer,
			TokenDuration: time.Duration(c.App.TokenDuration),
		},
		Vault: Vault{
			BaseURL: c.Vault.BaseURL,
			Timeout: time.Duration(c.Vault.Timeout),
		},
		Storage: Storage{
			DB: DBConfig{
				Driver: c.Storage.DB.Driver,
				DSN:    c.Storage.DB.DSN,
			},
		},
		Server: Server{
			HTTPAddress:    c.Server.HTTPAddress,
			RequestTimeout: time.Duration(c.Server.RequestTimeout),
		},
		Workers: Workers{
			VerifyInterval: time.Duration(c.Workers.VerifyInterval),
		},
	}

	if c.Vault.RequireAuth != nil {
		cfg.Vault.RequireAuth = *c.Vault.RequireAuth
	}

	return cfg
}

// UnmarshalJSON accepts either a duration string ("1h30m") or a number of
// nanoseconds.
func (d *Duration) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		parsed, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(parsed)
		return nil
	default:
		return errors.New("invalid duration")
	}
}

// MarshalJSON renders the duration in the human-readable form.
func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
