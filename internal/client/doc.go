// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the headless sync client runtime.
//
// It wires local storage, the sync transport and the client services into
// one process. In daemon mode the sync and enrichment jobs run periodically
// and every local edit triggers an immediate sync. One-shot commands edit the
// Up Next queue or starred flags, record them in the change journal and try a
// single sync before exiting.
package client
