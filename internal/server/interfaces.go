// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

// Server is the lifecycle of the transport servers managed by this package.
type Server interface {
	// RunServer serves requests until SIGINT, SIGTERM or SIGQUIT arrives and
	// then shuts every listener down.
	RunServer()

	// Shutdown stops all listeners. In-flight requests are allowed to finish.
	Shutdown()
}
