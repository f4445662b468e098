// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"strings"
)

// validate checks settings shared by both binaries.
func (cfg *StructuredConfig) validate() error {
	switch strings.ToLower(cfg.Sync.Codec) {
	case "", "json", "binary":
	default:
		return fmt.Errorf("%w: codec %q", ErrInvalidSyncConfigs, cfg.Sync.Codec)
	}

	switch strings.ToLower(cfg.Sync.Transport) {
	case "", "http", "grpc":
	default:
		return fmt.Errorf("%w: transport %q", ErrInvalidSyncConfigs, cfg.Sync.Transport)
	}

	if cfg.Sync.FlagRecencyWindow < 0 || cfg.Sync.ImportConcurrency < 0 {
		return ErrInvalidSyncConfigs
	}

	return nil
}

// ValidateServer checks the settings the reference server cannot start
// without.
func (cfg *StructuredConfig) ValidateServer() error {
	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}
	if cfg.Server.HTTPAddress == "" || cfg.Server.RequestTimeout <= 0 {
		return ErrInvalidServerConfigs
	}
	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Storage.DB.DSN == "" || strings.Contains(cfg.Storage.DB.DSN, "memory") {
		return ErrInvalidStorageConfigs
	}

	if cfg.Adapter.HTTPAddress == "" || cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	if strings.EqualFold(cfg.Adapter.Transport, "grpc") && cfg.Adapter.GRPCAddress == "" {
		return ErrInvalidAdapterConfigs
	}

	if cfg.Workers.SyncInterval <= 0 || cfg.Workers.EnrichInterval <= 0 {
		return ErrInvalidWorkerConfigs
	}

	if cfg.Sync.FlagRecencyWindow <= 0 || cfg.Sync.ImportConcurrency <= 0 {
		return ErrInvalidSyncConfigs
	}

	return nil
}
