// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "slices"

// QueueState is the Up Next queue: the episode being played plus the ordered
// list of episodes that follow it.
type QueueState struct {
	Current  string   `json:"current,omitempty"`
	Upcoming []string `json:"upcoming"`
}

// QueueFromIdentifiers builds a queue from a flat ordered list where the
// first identifier is the current episode.
func QueueFromIdentifiers(ids []string) QueueState {
	if len(ids) == 0 {
		return QueueState{Upcoming: []string{}}
	}
	upcoming := make([]string, len(ids)-1)
	copy(upcoming, ids[1:])
	return QueueState{Current: ids[0], Upcoming: upcoming}
}

// Identifiers returns the flat ordered list, current episode first.
func (q QueueState) Identifiers() []string {
	ids := make([]string, 0, len(q.Upcoming)+1)
	if q.Current != "" {
		ids = append(ids, q.Current)
	}
	return append(ids, q.Upcoming...)
}

// Len returns the number of episodes in the queue, including the current one.
func (q QueueState) Len() int {
	n := len(q.Upcoming)
	if q.Current != "" {
		n++
	}
	return n
}

// IsEmpty reports whether the queue holds no episodes at all.
func (q QueueState) IsEmpty() bool {
	return q.Len() == 0
}

// Equal reports strict ordered equality of the flat identifier lists.
func (q QueueState) Equal(other QueueState) bool {
	return slices.Equal(q.Identifiers(), other.Identifiers())
}

// Clone returns a deep copy of q.
func (q QueueState) Clone() QueueState {
	upcoming := make([]string, len(q.Upcoming))
	copy(upcoming, q.Upcoming)
	return QueueState{Current: q.Current, Upcoming: upcoming}
}

// Apply returns the queue that results from applying e to q. q itself is not
// modified.
func (q QueueState) Apply(e JournalEntry) QueueState {
	switch e.Kind {
	case ChangeReplace:
		return QueueFromIdentifiers(e.Subjects)
	case ChangeAppendNext:
		next := q.without(e.Subject)
		if next.Current == "" {
			return QueueFromIdentifiers(append([]string{e.Subject}, next.Upcoming...))
		}
		next.Upcoming = slices.Insert(next.Upcoming, 0, e.Subject)
		return next
	case ChangeAppendLast:
		next := q.without(e.Subject)
		if next.Current == "" && len(next.Upcoming) == 0 {
			return QueueState{Current: e.Subject, Upcoming: []string{}}
		}
		next.Upcoming = append(next.Upcoming, e.Subject)
		return next
	case ChangeRemove:
		return q.without(e.Subject)
	case ChangeClearAll:
		return QueueState{Current: q.Current, Upcoming: []string{}}
	}
	return q.Clone()
}

// without removes id from the queue. When the current episode is removed,
// the first upcoming one is promoted.
func (q QueueState) without(id string) QueueState {
	if q.Current == id {
		return QueueFromIdentifiers(q.Upcoming)
	}
	upcoming := make([]string, 0, len(q.Upcoming))
	for _, u := range q.Upcoming {
		if u != id {
			upcoming = append(upcoming, u)
		}
	}
	return QueueState{Current: q.Current, Upcoming: upcoming}
}
