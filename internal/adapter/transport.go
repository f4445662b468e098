// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"fmt"

	"github.com/MKhiriev/go-pod-sync/internal/config"
	"github.com/MKhiriev/go-pod-sync/internal/logger"
)

const (
	TransportHTTP = "http"
	TransportGRPC = "grpc"
)

// NewSyncTransport builds the transport named by adapterCfg.Transport.
func NewSyncTransport(adapterCfg config.ClientAdapter, logger *logger.Logger) (SyncTransport, error) {
	switch adapterCfg.Transport {
	case TransportHTTP, "":
		return NewHTTPSyncTransport(adapterCfg, logger)
	case TransportGRPC:
		return NewGRPCSyncTransport(adapterCfg, logger)
	default:
		return nil, fmt.Errorf("unknown sync transport %q", adapterCfg.Transport)
	}
}
