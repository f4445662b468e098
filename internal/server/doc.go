// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package server runs the transport listeners of the reference sync server.
//
// It starts the HTTP and gRPC servers enabled by configuration, waits for a
// termination signal and shuts both down gracefully.
package server
