// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Collection names a synchronized collection. Each collection has its own
// coordinator, endpoint and watermark.
type Collection string

const (
	CollectionUpNext  Collection = "up_next"
	CollectionStarred Collection = "starred"
)

// Valid reports whether c is a known collection.
func (c Collection) Valid() bool {
	return c == CollectionUpNext || c == CollectionStarred
}

// Watermark stream keys. The starred collection keeps two cursors: the merge
// cursor (max applied server flag time) and the push cursor (the highest
// local flag sequence acknowledged by the server).
const (
	StreamUpNext      = "up_next"
	StreamStarred     = "starred"
	StreamStarredPush = "starred_push"
)

// DeviceKind identifies the platform of the syncing device.
type DeviceKind int32

const (
	DeviceUnknown DeviceKind = iota
	DeviceAndroid
	DeviceIOS
	DeviceDesktop
	DeviceWeb
)

// SyncChange is one change record on the wire. Replace and ClearAll carry
// Identifiers (possibly empty); the other kinds carry Identifier.
type SyncChange struct {
	Kind         ChangeKind
	Identifier   string
	Identifiers  []string
	ModifiedAtMs int64
}

// ChangeFromEntry converts a journal entry into its wire record. A multi
// subject Replace stays one record with the full ordered list.
func ChangeFromEntry(e JournalEntry) SyncChange {
	if e.Kind.IsMultiSubject() {
		ids := make([]string, len(e.Subjects))
		copy(ids, e.Subjects)
		return SyncChange{Kind: e.Kind, Identifiers: ids, ModifiedAtMs: e.ModifiedAtMs}
	}
	return SyncChange{Kind: e.Kind, Identifier: e.Subject, ModifiedAtMs: e.ModifiedAtMs}
}

// Entry converts a wire record back to a journal entry without an ID.
func (c SyncChange) Entry() JournalEntry {
	if c.Kind.IsMultiSubject() {
		ids := make([]string, len(c.Identifiers))
		copy(ids, c.Identifiers)
		return JournalEntry{Kind: c.Kind, Subjects: ids, ModifiedAtMs: c.ModifiedAtMs}
	}
	return JournalEntry{Kind: c.Kind, Subject: c.Identifier, ModifiedAtMs: c.ModifiedAtMs}
}

// FlagChange is a local starred flag pushed to the server.
type FlagChange struct {
	Identifier   string
	Value        bool
	ModifiedAtMs int64
}

// EpisodeMeta describes an episode referenced by pushed changes so the server
// can render it in later snapshots.
type EpisodeMeta struct {
	Identifier       string
	ParentIdentifier string
	Title            string
	PublishedAtMs    *int64
}

// SyncRequest is the outbound half of one sync exchange.
type SyncRequest struct {
	DeviceID   string
	DeviceKind DeviceKind

	// LastWatermark is nil when the client has never merged server state.
	LastWatermark *int64

	Changes  []SyncChange
	Flags    []FlagChange
	Episodes []EpisodeMeta
}

// SnapshotItem is one entity as reported by the server.
type SnapshotItem struct {
	Identifier          string
	ParentIdentifier    *string
	Title               *string
	PublishedAtMs       *int64
	Starred             *bool
	StarredModifiedAtMs *int64
	Position            *int
}

// Snapshot is the server state of a collection as of NewWatermark.
type Snapshot struct {
	NewWatermark int64
	Items        []SnapshotItem
}

// Identifiers returns item identifiers in the order the server sent them.
func (s Snapshot) Identifiers() []string {
	ids := make([]string, 0, len(s.Items))
	for _, item := range s.Items {
		ids = append(ids, item.Identifier)
	}
	return ids
}

// Exchange is the raw transport result. A NotModified exchange has no body.
type Exchange struct {
	NotModified bool
	Body        []byte
}

// SyncState is the state of a sync coordinator.
type SyncState int

const (
	SyncIdle SyncState = iota
	SyncBuildingRequest
	SyncAwaitingResponse
	SyncNotModified
	SyncResponseReceived
	SyncReconciling
	SyncFailed
)

func (s SyncState) String() string {
	switch s {
	case SyncIdle:
		return "idle"
	case SyncBuildingRequest:
		return "building_request"
	case SyncAwaitingResponse:
		return "awaiting_response"
	case SyncNotModified:
		return "not_modified"
	case SyncResponseReceived:
		return "response_received"
	case SyncReconciling:
		return "reconciling"
	case SyncFailed:
		return "failed"
	}
	return "unknown"
}

// SyncOutcome summarizes what a successful cycle did.
type SyncOutcome string

const (
	OutcomeNotModified    SyncOutcome = "not_modified"
	OutcomeAlreadyApplied SyncOutcome = "already_applied"
	OutcomeFirstContact   SyncOutcome = "first_contact"
	OutcomeUnchanged      SyncOutcome = "unchanged"
	OutcomeMerged         SyncOutcome = "merged"
)

// SyncReport is returned by a finished sync cycle.
type SyncReport struct {
	Collection Collection
	Outcome    SyncOutcome
	Watermark  int64
	Pushed     int
	Applied    int
	Skipped    int
	Pruned     int64
}
