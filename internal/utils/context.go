// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package utils provides small helpers shared across the application:
// typed context keys, id generation, JSON response writing and the HTTP
// client wrapper.
package utils

import (
	"context"
	"database/sql"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// TxCtxKey is the key under which an open *sql.Tx travels through the
// context, so repositories called inside a transaction join it.
var TxCtxKey = contextKey("sqlTx")

// TraceIDCtxKey is the key of the request trace identifier.
var TraceIDCtxKey = contextKey("traceID")

// Trace id carriers on the wire.
const (
	TraceIDHeader   = "X-Trace-ID"
	TraceIDMetadata = "x-trace-id"
)

// WithTraceID returns a copy of ctx carrying the trace identifier. Outbound
// adapters forward it so client and server logs can be correlated.
func WithTraceID(ctx context.Context, traceID string) context.Context {
	return context.WithValue(ctx, TraceIDCtxKey, traceID)
}

// WithTx returns a copy of ctx carrying tx.
func WithTx(ctx context.Context, tx *sql.Tx) context.Context {
	return context.WithValue(ctx, TxCtxKey, tx)
}

// GetTxFromContext returns the transaction stored by WithTx.
//
//   - ok == true : a non-nil *sql.Tx is present
//   - ok == false: no transaction, callers should use the plain connection
func GetTxFromContext(ctx context.Context) (*sql.Tx, bool) {
	tx, ok := ctx.Value(TxCtxKey).(*sql.Tx)
	return tx, ok && tx != nil
}

// GetTraceIDFromContext returns the trace id set by the tracing middleware.
func GetTraceIDFromContext(ctx context.Context) (string, bool) {
	traceID, ok := ctx.Value(TraceIDCtxKey).(string)
	return traceID, ok && traceID != ""
}
