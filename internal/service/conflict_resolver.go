// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"cmp"
	"slices"
	"time"

	"github.com/MKhiriev/go-pod-sync/models"
)

// DefaultFlagRecencyWindow bounds how old a server flag change may be and
// still be applied.
const DefaultFlagRecencyWindow = 7 * 24 * time.Hour

// Decision is the outcome of comparing a snapshot with local state.
type Decision int

const (
	// DecisionAlreadyApplied: the snapshot version equals the local
	// watermark. Nothing is written.
	DecisionAlreadyApplied Decision = iota + 1

	// DecisionStale: the snapshot is older than the local watermark.
	// Nothing is written and nothing is pruned.
	DecisionStale

	// DecisionFirstContact: the client never merged and the server is empty.
	// Local state is republished and the watermark stays at zero.
	DecisionFirstContact

	// DecisionUnchanged: server and local state are identical. The write is
	// skipped but the journal is pruned and the watermark advanced.
	DecisionUnchanged

	// DecisionAdopt: server state replaces local state.
	DecisionAdopt
)

func (d Decision) String() string {
	switch d {
	case DecisionAlreadyApplied:
		return "already_applied"
	case DecisionStale:
		return "stale"
	case DecisionFirstContact:
		return "first_contact"
	case DecisionUnchanged:
		return "unchanged"
	case DecisionAdopt:
		return "adopt"
	}
	return "unknown"
}

// QueuePlan is the resolved queue merge.
type QueuePlan struct {
	Decision Decision
	// Order is the server order, deduplicated. Set for Unchanged and Adopt.
	Order []string
	// Items indexes snapshot items by identifier for the importer.
	Items map[string]models.SnapshotItem
}

// FlagPlan is the resolved flag merge.
type FlagPlan struct {
	Decision Decision
	// Apply lists flags that win against local state, in snapshot order.
	Apply []models.FlagState
	// Cursor is the highest applied modification time, or zero.
	Cursor int64
	// Ignored counts flag items rejected by last-write-wins or by the
	// recency window.
	Ignored int
}

// conflictResolver holds the merge rules. It performs no I/O.
type conflictResolver struct {
	now    func() time.Time
	window time.Duration
}

func newConflictResolver(now func() time.Time, window time.Duration) *conflictResolver {
	if now == nil {
		now = time.Now
	}
	if window <= 0 {
		window = DefaultFlagRecencyWindow
	}
	return &conflictResolver{now: now, window: window}
}

// preflight applies the rules shared by every collection, in order:
// re-delivery of the merged version, first contact with an empty server and
// stale snapshots. Re-delivery wins even at version zero, so the projector is
// never invoked for a version the client already holds.
func (r *conflictResolver) preflight(localWatermark int64, snapshot models.Snapshot) (Decision, bool) {
	switch {
	case snapshot.NewWatermark == localWatermark:
		return DecisionAlreadyApplied, true
	case localWatermark == 0 && len(snapshot.Items) == 0:
		return DecisionFirstContact, true
	case snapshot.NewWatermark < localWatermark:
		return DecisionStale, true
	}
	return 0, false
}

// ResolveQueue compares the server queue with the local one. Equality is
// strict: same identifiers in the same order.
func (r *conflictResolver) ResolveQueue(localWatermark int64, local models.QueueState, snapshot models.Snapshot) QueuePlan {
	if decision, done := r.preflight(localWatermark, snapshot); done {
		return QueuePlan{Decision: decision}
	}

	order, items := serverOrder(snapshot.Items)
	if slices.Equal(order, local.Identifiers()) {
		return QueuePlan{Decision: DecisionUnchanged, Order: order, Items: items}
	}

	return QueuePlan{Decision: DecisionAdopt, Order: order, Items: items}
}

// ResolveFlags picks the server flags that win. A server flag is applied only
// when it is newer than the local one and no older than the recency window.
// Items without a flag value are ignored.
func (r *conflictResolver) ResolveFlags(localWatermark int64, local map[string]models.FlagState, snapshot models.Snapshot) FlagPlan {
	if decision, done := r.preflight(localWatermark, snapshot); done {
		return FlagPlan{Decision: decision}
	}

	oldest := r.now().Add(-r.window).UnixMilli()
	plan := FlagPlan{Decision: DecisionUnchanged, Apply: make([]models.FlagState, 0)}

	for _, item := range snapshot.Items {
		if item.Starred == nil || item.StarredModifiedAtMs == nil {
			continue
		}

		modifiedAt := *item.StarredModifiedAtMs
		if modifiedAt <= local[item.Identifier].LastModifiedAtMs || modifiedAt < oldest {
			plan.Ignored++
			continue
		}

		plan.Apply = append(plan.Apply, models.FlagState{
			Identifier:       item.Identifier,
			Value:            *item.Starred,
			LastModifiedAtMs: modifiedAt,
		})
		plan.Cursor = max(plan.Cursor, modifiedAt)
	}

	if len(plan.Apply) > 0 {
		plan.Decision = DecisionAdopt
	}

	return plan
}

// serverOrder returns snapshot identifiers in queue order. Items are sorted by
// position when every item carries one; otherwise the wire order is kept.
// Repeated identifiers keep their first position.
func serverOrder(items []models.SnapshotItem) ([]string, map[string]models.SnapshotItem) {
	sorted := slices.Clone(items)
	if positioned(sorted) {
		slices.SortStableFunc(sorted, func(a, b models.SnapshotItem) int {
			return cmp.Compare(*a.Position, *b.Position)
		})
	}

	order := make([]string, 0, len(sorted))
	index := make(map[string]models.SnapshotItem, len(sorted))
	for _, item := range sorted {
		if item.Identifier == "" {
			continue
		}
		if _, seen := index[item.Identifier]; seen {
			continue
		}
		index[item.Identifier] = item
		order = append(order, item.Identifier)
	}

	return order, index
}

func positioned(items []models.SnapshotItem) bool {
	for _, item := range items {
		if item.Position == nil {
			return false
		}
	}
	return true
}

// maxFlagTime returns the highest modification time over flags.
func maxFlagTime(flags []models.FlagState) int64 {
	var latest int64
	for _, f := range flags {
		latest = max(latest, f.LastModifiedAtMs)
	}
	return latest
}
