// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempJSONConfig(t *testing.T, v any) string {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	f, err := os.CreateTemp(t.TempDir(), "config-*.json")
	require.NoError(t, err)
	_, err = f.Write(data)
	require.NoError(t, err)
	require.NoError(t, f.Close())
	return f.Name()
}

func TestNewConfigBuilder_InitialState(t *testing.T) {
	b := newConfigBuilder()
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
}

func TestBuild_EmptyBuilder(t *testing.T) {
	cfg, err := newConfigBuilder().build()
	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = errors.New("boom")

	cfg, err := b.build()
	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "boom")
}

func TestBuild_EarlierSourceWins(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{Sync: Sync{Codec: "binary"}},
		&StructuredConfig{Sync: Sync{Codec: "json", Transport: "grpc"}},
	)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "binary", cfg.Sync.Codec)
	assert.Equal(t, "grpc", cfg.Sync.Transport)
}

func TestBuild_RejectsUnknownCodec(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{Sync: Sync{Codec: "xml"}})

	_, err := b.build()
	assert.ErrorIs(t, err, ErrInvalidSyncConfigs)
}

func TestWithDefaults_FillsZeroFields(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{Workers: Workers{SyncInterval: time.Minute}})

	cfg, err := b.withDefaults().build()
	require.NoError(t, err)

	assert.Equal(t, time.Minute, cfg.Workers.SyncInterval)
	assert.Equal(t, defaultEnrichInterval, cfg.Workers.EnrichInterval)
	assert.Equal(t, defaultFlagRecencyWindow, cfg.Sync.FlagRecencyWindow)
	assert.Equal(t, "json", cfg.Sync.Codec)
	assert.Equal(t, defaultLocalDSN, cfg.Storage.Local.DSN)
}

func TestWithJSON_LoadsFileFromEarlierSource(t *testing.T) {
	path := writeTempJSONConfig(t, map[string]any{
		"sync": map[string]any{"codec": "binary"},
	})

	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: path})

	cfg, err := b.withJSON().build()
	require.NoError(t, err)
	assert.Equal(t, "binary", cfg.Sync.Codec)
}

func TestWithJSON_MissingFileSetsError(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: "/does/not/exist.json"})

	_, err := b.withJSON().build()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error reading a json file")
}

func TestWithJSON_NoPathIsNoop(t *testing.T) {
	b := newConfigBuilder().withJSON()
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
}

func TestGetClientConfig_FromEnvAndDefaults(t *testing.T) {
	setEnvVars(t, map[string]string{
		"STORAGE_LOCAL_DSN": "/tmp/client.db",
		"ADAPTER_ADDRESS":   "http://localhost:8080",
		"SYNC_CODEC":        "binary",
	})
	resetFlags(t)

	cfg, err := GetClientConfig()
	require.NoError(t, err)

	assert.Equal(t, "/tmp/client.db", cfg.Storage.DB.DSN)
	assert.Equal(t, "http://localhost:8080", cfg.Adapter.HTTPAddress)
	assert.Equal(t, "binary", cfg.Sync.Codec)
	assert.Equal(t, "http", cfg.Adapter.Transport)
	assert.Equal(t, defaultRequestTimeout, cfg.Adapter.RequestTimeout)
	assert.Equal(t, defaultSyncInterval, cfg.Workers.SyncInterval)
}

func TestClientConfig_Validate(t *testing.T) {
	valid := func() *ClientConfig {
		return NewClientConfig(defaults())
	}

	tests := []struct {
		name    string
		mutate  func(cfg *ClientConfig)
		wantErr error
	}{
		{name: "defaults are valid", mutate: func(*ClientConfig) {}},
		{name: "empty dsn", mutate: func(cfg *ClientConfig) { cfg.Storage.DB.DSN = "" }, wantErr: ErrInvalidStorageConfigs},
		{name: "memory dsn", mutate: func(cfg *ClientConfig) { cfg.Storage.DB.DSN = ":memory:" }, wantErr: ErrInvalidStorageConfigs},
		{name: "no adapter address", mutate: func(cfg *ClientConfig) { cfg.Adapter.HTTPAddress = "" }, wantErr: ErrInvalidAdapterConfigs},
		{name: "grpc without address", mutate: func(cfg *ClientConfig) { cfg.Adapter.Transport = "grpc" }, wantErr: ErrInvalidAdapterConfigs},
		{name: "zero sync interval", mutate: func(cfg *ClientConfig) { cfg.Workers.SyncInterval = 0 }, wantErr: ErrInvalidWorkerConfigs},
		{name: "zero recency window", mutate: func(cfg *ClientConfig) { cfg.Sync.FlagRecencyWindow = 0 }, wantErr: ErrInvalidSyncConfigs},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
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

func TestStructuredConfig_ValidateServer(t *testing.T) {
	cfg := defaults()
	assert.ErrorIs(t, cfg.ValidateServer(), ErrInvalidStorageConfigs)

	cfg.Storage.DB.DSN = "postgres://localhost/podsync"
	assert.NoError(t, cfg.ValidateServer())

	cfg.Server.HTTPAddress = ""
	assert.ErrorIs(t, cfg.ValidateServer(), ErrInvalidServerConfigs)
}
