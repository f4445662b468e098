// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http implements the HTTP transport of the reference sync server.
//
// A sync exchange is a single POST to /api/sync/{collection}. The body is a
// request encoded by one of the codecs and the Content-Type header names the
// codec; the snapshot is answered in the same encoding, or with 304 when the
// client is already up to date. Read-only catalogue endpoints serve the
// podcast and episode metadata that clients import when a snapshot references
// entities they do not know yet.
//
// Request tracing, access logging and gzip compression are applied as
// middleware before requests reach the handlers.
package http
