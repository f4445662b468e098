// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"fmt"
)

var (
	// ErrTransportFailure covers network errors, timeouts and 5xx answers.
	// Nothing is committed when a cycle fails with it.
	ErrTransportFailure = errors.New("transport failure")

	// ErrMalformedResponse is returned when the response body cannot be
	// decoded. It is a transport failure as far as callers are concerned.
	ErrMalformedResponse = fmt.Errorf("%w: malformed response", ErrTransportFailure)

	// ErrPartialImportFailure is returned when some referenced entities could
	// not be imported. The merge itself proceeds without them.
	ErrPartialImportFailure = errors.New("partial import failure")

	// ErrSyncCancelled is returned when the context ends before reconciling.
	ErrSyncCancelled = errors.New("sync cancelled")

	ErrEmptyIdentifier   = errors.New("empty identifier")
	ErrUnknownCollection = errors.New("unknown collection")
	ErrInvalidRequest    = errors.New("invalid sync request")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)
