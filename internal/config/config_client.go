// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"time"
)

// ClientApp holds the device identity of the client.
type ClientApp struct {
	DeviceID   string
	DeviceKind int32
	LogPath    string
}

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// Transport is "http" or "grpc".
	Transport string
	// HTTPAddress is the server base URL used for sync and catalogue calls.
	HTTPAddress string
	// GRPCAddress is used when Transport is "grpc".
	GRPCAddress string
	// RequestTimeout is the default timeout for outbound client requests.
	RequestTimeout time.Duration
}

// ClientDB contains local database connection settings for the client.
type ClientDB struct {
	// DSN is the SQLite database file path.
	DSN string
}

// ClientStorage groups client storage backend settings.
type ClientStorage struct {
	DB ClientDB
}

// ClientSync holds merge and encoding settings.
type ClientSync struct {
	Codec             string
	FlagRecencyWindow time.Duration
	ImportConcurrency int
}

// ClientWorkers contains client background worker settings.
type ClientWorkers struct {
	SyncInterval   time.Duration
	EnrichInterval time.Duration
	RetryBaseDelay time.Duration
	RetryMaxDelay  time.Duration
	MaxRetries     uint64
}

// ClientConfig is the client view of [StructuredConfig].
type ClientConfig struct {
	App     ClientApp
	Adapter ClientAdapter
	Storage ClientStorage
	Sync    ClientSync
	Workers ClientWorkers
}

// GetClientConfig loads the structured config, maps the fields used by the
// client runtime and validates the result.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := NewClientConfig(cfg)
	return clientCfg, clientCfg.validate()
}

// NewClientConfig maps a structured config onto the client view without
// validating it.
func NewClientConfig(cfg *StructuredConfig) *ClientConfig {
	return &ClientConfig{
		App: ClientApp{
			DeviceID:   cfg.App.DeviceID,
			DeviceKind: cfg.App.DeviceKind,
			LogPath:    cfg.App.LogPath,
		},
		Adapter: ClientAdapter{
			Transport:      cfg.Sync.Transport,
			HTTPAddress:    cfg.Adapter.HTTPAddress,
			GRPCAddress:    cfg.Adapter.GRPCAddress,
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
		Storage: ClientStorage{
			DB: ClientDB{DSN: cfg.Storage.Local.DSN},
		},
		Sync: ClientSync{
			Codec:             cfg.Sync.Codec,
			FlagRecencyWindow: cfg.Sync.FlagRecencyWindow,
			ImportConcurrency: cfg.Sync.ImportConcurrency,
		},
		Workers: ClientWorkers{
			SyncInterval:   cfg.Workers.SyncInterval,
			EnrichInterval: cfg.Workers.EnrichInterval,
			RetryBaseDelay: cfg.Workers.RetryBaseDelay,
			RetryMaxDelay:  cfg.Workers.RetryMaxDelay,
			MaxRetries:     cfg.Workers.MaxRetries,
		},
	}
}
