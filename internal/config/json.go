// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig is the on-disk layout of the JSON config file.
type StructuredJSONConfig struct {
	App struct {
		DeviceID   string `json:"device_id"`
		DeviceKind int32  `json:"device_kind"`
		Version    string `json:"version"`
		LogPath    string `json:"log_path"`
	} `json:"app,omitempty"`

	Sync struct {
		Codec             string   `json:"codec"`
		Transport         string   `json:"transport"`
		FlagRecencyWindow Duration `json:"flag_recency_window"`
		ImportConcurrency int      `json:"import_concurrency"`
	} `json:"sync,omitempty"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`

		Local struct {
			DSN string `json:"dsn"`
		} `json:"local,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		GRPCAddress    string   `json:"grpc_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"server,omitempty"`

	Adapter struct {
		HTTPAddress    string   `json:"http_address"`
		GRPCAddress    string   `json:"grpc_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"adapter,omitempty"`

	Workers struct {
		SyncInterval   Duration `json:"sync_interval"`
		EnrichInterval Duration `json:"enrich_interval"`
		RetryBaseDelay Duration `json:"retry_base_delay"`
		RetryMaxDelay  Duration `json:"retry_max_delay"`
		MaxRetries     uint64   `json:"max_retries"`
	} `json:"workers,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			DeviceID:   jsonCfg.App.DeviceID,
			DeviceKind: jsonCfg.App.DeviceKind,
			Version:    jsonCfg.App.Version,
			LogPath:    jsonCfg.App.LogPath,
		},
		Sync: Sync{
			Codec:             jsonCfg.Sync.Codec,
			Transport:         jsonCfg.Sync.Transport,
			FlagRecencyWindow: time.Duration(jsonCfg.Sync.FlagRecencyWindow),
			ImportConcurrency: jsonCfg.Sync.ImportConcurrency,
		},
		Storage: Storage{
			DB:    DB{DSN: jsonCfg.Storage.DB.DSN},
			Local: Local{DSN: jsonCfg.Storage.Local.DSN},
		},
		Server: Server{
			HTTPAddress:    jsonCfg.Server.HTTPAddress,
			GRPCAddress:    jsonCfg.Server.GRPCAddress,
			RequestTimeout: time.Duration(jsonCfg.Server.RequestTimeout),
		},
		Adapter: Adapter{
			HTTPAddress:    jsonCfg.Adapter.HTTPAddress,
			GRPCAddress:    jsonCfg.Adapter.GRPCAddress,
			RequestTimeout: time.Duration(jsonCfg.Adapter.RequestTimeout),
		},
		Workers: Workers{
			SyncInterval:   time.Duration(jsonCfg.Workers.SyncInterval),
			EnrichInterval: time.Duration(jsonCfg.Workers.EnrichInterval),
			RetryBaseDelay: time.Duration(jsonCfg.Workers.RetryBaseDelay),
			RetryMaxDelay:  time.Duration(jsonCfg.Workers.RetryMaxDelay),
			MaxRetries:     jsonCfg.Workers.MaxRetries,
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
