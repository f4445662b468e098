// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"context"
	"database/sql"
	"testing"
)

func TestContextKeyString(t *testing.T) {
	key := contextKey("testKey")
	if key.String() != "testKey" {
		t.Errorf("expected 'testKey', got '%s'", key.String())
	}
}

func TestGetTxFromContext_Missing(t *testing.T) {
	tx, ok := GetTxFromContext(context.Background())
	if ok || tx != nil {
		t.Errorf("expected no tx, got %v (ok=%v)", tx, ok)
	}
}

func TestGetTxFromContext_Success(t *testing.T) {
	want := &sql.Tx{}
	ctx := WithTx(context.Background(), want)

	got, ok := GetTxFromContext(ctx)
	if !ok {
		t.Fatal("expected ok=true, got false")
	}
	if got != want {
		t.Errorf("expected the stored tx, got %p", got)
	}
}

func TestGetTxFromContext_NilTx(t *testing.T) {
	ctx := WithTx(context.Background(), nil)

	if _, ok := GetTxFromContext(ctx); ok {
		t.Error("expected ok=false for a nil tx")
	}
}

func TestGetTxFromContext_WrongType(t *testing.T) {
	ctx := context.WithValue(context.Background(), TxCtxKey, "not a tx")

	if _, ok := GetTxFromContext(ctx); ok {
		t.Error("expected ok=false for a wrong value type")
	}
}

func TestGetTraceIDFromContext(t *testing.T) {
	ctx := WithTraceID(context.Background(), "trace-1")

	traceID, ok := GetTraceIDFromContext(ctx)
	if !ok || traceID != "trace-1" {
		t.Errorf("expected trace-1, got %q (ok=%v)", traceID, ok)
	}

	if _, ok = GetTraceIDFromContext(context.Background()); ok {
		t.Error("expected ok=false on empty context")
	}
	if _, ok = GetTraceIDFromContext(WithTraceID(context.Background(), "")); ok {
		t.Error("expected ok=false for an empty trace id")
	}
}
