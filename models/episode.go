// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// NoPodcastIdentifier is the reserved parent identifier of user supplied
// files that do not belong to any podcast. It is never fetched.
const NoPodcastIdentifier = "da7aba5e-f11e-f11e-f11e-da7aba5ef11e"

// Podcast is a show that episodes belong to.
type Podcast struct {
	Identifier string `json:"identifier"`
	Title      string `json:"title"`
	Author     string `json:"author,omitempty"`

	// Skeleton is true until the full metadata has been downloaded.
	Skeleton bool `json:"-"`
}

// Episode is a single playable item. ParentIdentifier is the podcast it
// belongs to or [NoPodcastIdentifier] for user files.
type Episode struct {
	Identifier       string `json:"identifier"`
	ParentIdentifier string `json:"parent_identifier"`
	Title            string `json:"title,omitempty"`
	PublishedAtMs    *int64 `json:"published_at_ms,omitempty"`

	Starred             bool  `json:"starred"`
	StarredModifiedAtMs int64 `json:"starred_modified_at_ms"`

	// Skeleton marks records created during a merge with identifiers only.
	// Metadata is filled later by the enrichment job.
	Skeleton bool `json:"-"`
}

// IsStandalone reports whether the episode is a user file without a podcast.
func (e Episode) IsStandalone() bool {
	return e.ParentIdentifier == NoPodcastIdentifier
}

// Flag returns the starred flag of the episode.
func (e Episode) Flag() FlagState {
	return FlagState{Identifier: e.Identifier, Value: e.Starred, LastModifiedAtMs: e.StarredModifiedAtMs}
}

// FlagState is a per-episode boolean flag with the time it last changed,
// regardless of whether the change came from the user or from a merge.
type FlagState struct {
	Identifier       string `json:"identifier"`
	Value            bool   `json:"value"`
	LastModifiedAtMs int64  `json:"last_modified_at_ms"`
}
