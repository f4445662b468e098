// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// Sentinel errors returned by repository methods. Callers match them with
// [errors.Is].
var (
	// ErrWatermarkRegression is returned when a stream cursor would move
	// backwards. The stored value is left untouched.
	ErrWatermarkRegression = errors.New("watermark regression")

	// ErrEpisodeNotFound is returned when no episode row matches the
	// requested identifier.
	ErrEpisodeNotFound = errors.New("episode was not found")

	// ErrPodcastNotFound is returned when no podcast row matches the
	// requested identifier.
	ErrPodcastNotFound = errors.New("podcast was not found")

	// ErrJournalEntryNotSaved is returned when an append completes without
	// error but no row id was assigned.
	ErrJournalEntryNotSaved = errors.New("journal entry was not saved")

	// ErrConflictingWrite is returned when a concurrent writer inserted the
	// same row first. The operation may be retried.
	ErrConflictingWrite = errors.New("conflicting concurrent write")
)

// Low-level database operation errors.
var (
	ErrBuildingSQLQuery     = errors.New("error building sql query")
	ErrExecutingQuery       = errors.New("error executing sql query")
	ErrBeginningTransaction = errors.New("failed to begin transaction")
	ErrCommitingTransaction = errors.New("failed to commit transaction")
	ErrExecutingStatement   = errors.New("failed to executing statement")
	ErrScanningRow          = errors.New("failed to scan row")
	ErrScanningRows         = errors.New("failed to scan rows")
)
