// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package codec

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/MKhiriev/go-pod-sync/models"
)

// publishedAtLayout is RFC 3339 with fixed millisecond precision, so a
// timestamp survives the round trip without losing or gaining precision.
const publishedAtLayout = "2006-01-02T15:04:05.000Z07:00"

type jsonRequest struct {
	DeviceID      string        `json:"device_id"`
	DeviceKind    int32         `json:"device_kind"`
	LastWatermark *int64        `json:"last_watermark,omitempty"`
	Changes       []jsonChange  `json:"changes"`
	Flags         []jsonFlag    `json:"flags,omitempty"`
	Episodes      []jsonEpisode `json:"episodes,omitempty"`
}

type jsonChange struct {
	Kind         string   `json:"kind"`
	Identifier   string   `json:"identifier,omitempty"`
	Identifiers  []string `json:"identifiers,omitempty"`
	ModifiedAtMs int64    `json:"modified_at_ms"`
}

type jsonFlag struct {
	Identifier   string `json:"identifier"`
	Value        bool   `json:"value"`
	ModifiedAtMs int64  `json:"modified_at_ms"`
}

type jsonEpisode struct {
	Identifier       string  `json:"identifier"`
	ParentIdentifier string  `json:"parent_identifier,omitempty"`
	Title            string  `json:"title,omitempty"`
	PublishedAt      *string `json:"published_at,omitempty"`
}

type jsonSnapshot struct {
	NewWatermark int64      `json:"new_watermark"`
	Items        []jsonItem `json:"items"`
}

type jsonItem struct {
	Identifier          string  `json:"identifier"`
	ParentIdentifier    *string `json:"parent_identifier,omitempty"`
	Title               *string `json:"title,omitempty"`
	PublishedAt         *string `json:"published_at,omitempty"`
	Starred             *bool   `json:"starred,omitempty"`
	StarredModifiedAtMs *int64  `json:"starred_modified_at_ms,omitempty"`
	Position            *int    `json:"position,omitempty"`
}

type jsonCodec struct{}

// NewJSONCodec returns the self-describing JSON codec.
func NewJSONCodec() Codec {
	return jsonCodec{}
}

func (jsonCodec) Name() string        { return JSON }
func (jsonCodec) ContentType() string { return ContentTypeJSON }

func (jsonCodec) EncodeRequest(req models.SyncRequest) ([]byte, error) {
	wire := jsonRequest{
		DeviceID:      req.DeviceID,
		DeviceKind:    int32(req.DeviceKind),
		LastWatermark: req.LastWatermark,
		Changes:       make([]jsonChange, 0, len(req.Changes)),
	}

	for _, change := range req.Changes {
		wire.Changes = append(wire.Changes, jsonChange{
			Kind:         change.Kind.String(),
			Identifier:   change.Identifier,
			Identifiers:  change.Identifiers,
			ModifiedAtMs: change.ModifiedAtMs,
		})
	}
	for _, flag := range req.Flags {
		wire.Flags = append(wire.Flags, jsonFlag(flag))
	}
	for _, episode := range req.Episodes {
		wire.Episodes = append(wire.Episodes, jsonEpisode{
			Identifier:       episode.Identifier,
			ParentIdentifier: episode.ParentIdentifier,
			Title:            episode.Title,
			PublishedAt:      formatMillis(episode.PublishedAtMs),
		})
	}

	data, err := json.Marshal(wire)
	if err != nil {
		return nil, fmt.Errorf("encode json request: %w", err)
	}
	return data, nil
}

func (jsonCodec) DecodeRequest(data []byte) (models.SyncRequest, error) {
	var wire jsonRequest
	if err := json.Unmarshal(data, &wire); err != nil {
		return models.SyncRequest{}, malformed("json request: %v", err)
	}

	req := models.SyncRequest{
		DeviceID:      wire.DeviceID,
		DeviceKind:    models.DeviceKind(wire.DeviceKind),
		LastWatermark: wire.LastWatermark,
		Changes:       make([]models.SyncChange, 0, len(wire.Changes)),
	}

	for i, change := range wire.Changes {
		kind, err := models.ParseChangeKind(change.Kind)
		if err != nil {
			return models.SyncRequest{}, malformed("change %d: %v", i, err)
		}
		req.Changes = append(req.Changes, models.SyncChange{
			Kind:         kind,
			Identifier:   change.Identifier,
			Identifiers:  change.Identifiers,
			ModifiedAtMs: change.ModifiedAtMs,
		})
	}
	for _, flag := range wire.Flags {
		req.Flags = append(req.Flags, models.FlagChange(flag))
	}
	for i, episode := range wire.Episodes {
		publishedAt, err := parseMillis(episode.PublishedAt)
		if err != nil {
			return models.SyncRequest{}, malformed("episode %d: %v", i, err)
		}
		req.Episodes = append(req.Episodes, models.EpisodeMeta{
			Identifier:       episode.Identifier,
			ParentIdentifier: episode.ParentIdentifier,
			Title:            episode.Title,
			PublishedAtMs:    publishedAt,
		})
	}

	return normalizeRequest(req)
}

func (jsonCodec) EncodeSnapshot(snapshot models.Snapshot) ([]byte, error) {
	wire := jsonSnapshot{
		NewWatermark: snapshot.NewWatermark,
		Items:        make([]jsonItem, 0, len(snapshot.Items)),
	}

	for _, item := range snapshot.Items {
		wire.Items = append(wire.Items, jsonItem{
			Identifier:          item.Identifier,
			ParentIdentifier:    item.ParentIdentifier,
			Title:               item.Title,
			PublishedAt:         formatMillis(item.PublishedAtMs),
			Starred:             item.Starred,
			StarredModifiedAtMs: item.StarredModifiedAtMs,
			Position:            item.Position,
		})
	}

	data, err := json.Marshal(wire)
	if err != nil {
		return nil, fmt.Errorf("encode json snapshot: %w", err)
	}
	return data, nil
}

func (jsonCodec) DecodeSnapshot(data []byte) (models.Snapshot, error) {
	var wire jsonSnapshot
	if err := json.Unmarshal(data, &wire); err != nil {
		return models.Snapshot{}, malformed("json snapshot: %v", err)
	}

	snapshot := models.Snapshot{
		NewWatermark: wire.NewWatermark,
		Items:        make([]models.SnapshotItem, 0, len(wire.Items)),
	}

	for i, item := range wire.Items {
		publishedAt, err := parseMillis(item.PublishedAt)
		if err != nil {
			return models.Snapshot{}, malformed("item %d: %v", i, err)
		}
		snapshot.Items = append(snapshot.Items, models.SnapshotItem{
			Identifier:          item.Identifier,
			ParentIdentifier:    item.ParentIdentifier,
			Title:               item.Title,
			PublishedAtMs:       publishedAt,
			Starred:             item.Starred,
			StarredModifiedAtMs: item.StarredModifiedAtMs,
			Position:            item.Position,
		})
	}

	return normalizeSnapshot(snapshot)
}

func formatMillis(ms *int64) *string {
	if ms == nil {
		return nil
	}
	s := time.UnixMilli(*ms).UTC().Format(publishedAtLayout)
	return &s
}

func parseMillis(s *string) (*int64, error) {
	if s == nil {
		return nil, nil
	}
	t, err := time.Parse(time.RFC3339Nano, *s)
	if err != nil {
		return nil, fmt.Errorf("published_at: %w", err)
	}
	ms := t.UnixMilli()
	return &ms, nil
}
