// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"errors"
	"fmt"
)

// ChangeKind is the closed set of queue mutations a user action can produce.
// Every switch over ChangeKind must handle all five values.
type ChangeKind int

const (
	// ChangeReplace swaps the whole queue for an ordered identifier list.
	ChangeReplace ChangeKind = iota + 1

	// ChangeAppendNext moves or inserts one episode right after the current one.
	ChangeAppendNext

	// ChangeAppendLast moves or inserts one episode at the tail of the queue.
	ChangeAppendLast

	// ChangeRemove drops one episode from the queue.
	ChangeRemove

	// ChangeClearAll empties the upcoming part of the queue. The current
	// episode is kept.
	ChangeClearAll
)

var changeKindNames = map[ChangeKind]string{
	ChangeReplace:    "replace",
	ChangeAppendNext: "append_next",
	ChangeAppendLast: "append_last",
	ChangeRemove:     "remove",
	ChangeClearAll:   "clear",
}

// ErrUnknownChangeKind is returned when a kind name or number is not one of
// the five known change kinds.
var ErrUnknownChangeKind = errors.New("unknown change kind")

// ErrInvalidJournalEntry is returned by [JournalEntry.Validate] when the
// subject fields do not match the entry kind.
var ErrInvalidJournalEntry = errors.New("invalid journal entry")

// Valid reports whether k is one of the known change kinds.
func (k ChangeKind) Valid() bool {
	_, ok := changeKindNames[k]
	return ok
}

// String returns the wire name of the kind.
func (k ChangeKind) String() string {
	if name, ok := changeKindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("change_kind(%d)", int(k))
}

// ParseChangeKind maps a wire name back to a [ChangeKind].
func ParseChangeKind(name string) (ChangeKind, error) {
	for kind, n := range changeKindNames {
		if n == name {
			return kind, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownChangeKind, name)
}

// IsMultiSubject reports whether entries of this kind carry Subjects
// rather than a single Subject.
func (k ChangeKind) IsMultiSubject() bool {
	switch k {
	case ChangeReplace, ChangeClearAll:
		return true
	case ChangeAppendNext, ChangeAppendLast, ChangeRemove:
		return false
	}
	return false
}

// JournalEntry is one pending queue mutation recorded by a user action.
//
// Entries are immutable once appended. ID is assigned by the journal and
// strictly increases; it is zero until the entry has been persisted.
type JournalEntry struct {
	ID           int64      `json:"id"`
	Kind         ChangeKind `json:"kind"`
	Subject      string     `json:"subject,omitempty"`
	Subjects     []string   `json:"subjects,omitempty"`
	ModifiedAtMs int64      `json:"modified_at_ms"`
}

// NewReplaceEntry records that the queue was replaced by ids, in order.
func NewReplaceEntry(modifiedAtMs int64, ids ...string) JournalEntry {
	subjects := make([]string, len(ids))
	copy(subjects, ids)
	return JournalEntry{Kind: ChangeReplace, Subjects: subjects, ModifiedAtMs: modifiedAtMs}
}

// NewAppendNextEntry records a "play next" action.
func NewAppendNextEntry(modifiedAtMs int64, id string) JournalEntry {
	return JournalEntry{Kind: ChangeAppendNext, Subject: id, ModifiedAtMs: modifiedAtMs}
}

// NewAppendLastEntry records a "play last" action.
func NewAppendLastEntry(modifiedAtMs int64, id string) JournalEntry {
	return JournalEntry{Kind: ChangeAppendLast, Subject: id, ModifiedAtMs: modifiedAtMs}
}

// NewRemoveEntry records removal of a single episode.
func NewRemoveEntry(modifiedAtMs int64, id string) JournalEntry {
	return JournalEntry{Kind: ChangeRemove, Subject: id, ModifiedAtMs: modifiedAtMs}
}

// NewClearAllEntry records a "clear upcoming" action.
func NewClearAllEntry(modifiedAtMs int64) JournalEntry {
	return JournalEntry{Kind: ChangeClearAll, Subjects: []string{}, ModifiedAtMs: modifiedAtMs}
}

// Validate checks that exactly the subject field required by the kind is
// populated.
func (e JournalEntry) Validate() error {
	if !e.Kind.Valid() {
		return fmt.Errorf("%w: %w: %d", ErrInvalidJournalEntry, ErrUnknownChangeKind, int(e.Kind))
	}

	switch e.Kind {
	case ChangeReplace:
		if e.Subject != "" {
			return fmt.Errorf("%w: replace carries a single subject", ErrInvalidJournalEntry)
		}
	case ChangeClearAll:
		if e.Subject != "" || len(e.Subjects) > 0 {
			return fmt.Errorf("%w: clear carries subjects", ErrInvalidJournalEntry)
		}
	case ChangeAppendNext, ChangeAppendLast, ChangeRemove:
		if e.Subject == "" || len(e.Subjects) > 0 {
			return fmt.Errorf("%w: %s needs exactly one subject", ErrInvalidJournalEntry, e.Kind)
		}
	}

	return nil
}

// MaxModifiedAtMs returns the highest ModifiedAtMs and the highest ID over
// entries. Both are zero for an empty slice.
func MaxModifiedAtMs(entries []JournalEntry) (maxModifiedAtMs int64, maxID int64) {
	for _, e := range entries {
		if e.ModifiedAtMs > maxModifiedAtMs {
			maxModifiedAtMs = e.ModifiedAtMs
		}
		if e.ID > maxID {
			maxID = e.ID
		}
	}
	return maxModifiedAtMs, maxID
}
