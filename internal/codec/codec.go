// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package codec translates sync requests and server snapshots to and from
// their wire representations.
//
// Two encodings are provided: a self-describing JSON format and a compact
// binary format that uses the protobuf wire layout with a fixed field-number
// schema. Both are stateless and produce equal [models.SyncRequest] and
// [models.Snapshot] values for equivalent payloads. The encoding is picked by
// configuration at construction time with [New]; a payload is never sniffed
// to guess its format.
package codec

import (
	"errors"
	"fmt"
	"mime"
	"strings"

	"github.com/MKhiriev/go-pod-sync/models"
)

// Codec names accepted by [New].
const (
	JSON   = "json"
	Binary = "binary"
)

// Content types sent with encoded payloads.
const (
	ContentTypeJSON   = "application/json"
	ContentTypeBinary = "application/x-protobuf"
)

var (
	// ErrUnknownCodec is returned by [New] and [ForContentType] for an
	// unsupported encoding.
	ErrUnknownCodec = errors.New("unknown codec")

	// ErrMalformedPayload is returned when bytes cannot be decoded into a
	// request or snapshot.
	ErrMalformedPayload = errors.New("malformed payload")
)

// Codec encodes and decodes both halves of a sync exchange.
type Codec interface {
	Name() string
	ContentType() string

	EncodeRequest(req models.SyncRequest) ([]byte, error)
	DecodeRequest(data []byte) (models.SyncRequest, error)

	EncodeSnapshot(snapshot models.Snapshot) ([]byte, error)
	DecodeSnapshot(data []byte) (models.Snapshot, error)
}

// New returns the codec registered under name.
func New(name string) (Codec, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case JSON, "":
		return NewJSONCodec(), nil
	case Binary, "protobuf", "proto":
		return NewBinaryCodec(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownCodec, name)
	}
}

// ForContentType returns the codec that produces contentType. The server uses
// it to answer in the encoding the client chose.
func ForContentType(contentType string) (Codec, error) {
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrUnknownCodec, contentType)
	}

	switch mediaType {
	case ContentTypeJSON:
		return NewJSONCodec(), nil
	case ContentTypeBinary:
		return NewBinaryCodec(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownCodec, contentType)
	}
}

func malformed(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrMalformedPayload, fmt.Sprintf(format, args...))
}

// normalizeRequest gives decoded requests a single canonical shape so both
// codecs return equal values.
func normalizeRequest(req models.SyncRequest) (models.SyncRequest, error) {
	if req.Changes == nil {
		req.Changes = []models.SyncChange{}
	}
	if req.Flags == nil {
		req.Flags = []models.FlagChange{}
	}
	if req.Episodes == nil {
		req.Episodes = []models.EpisodeMeta{}
	}

	for i, change := range req.Changes {
		if !change.Kind.Valid() {
			return models.SyncRequest{}, malformed("change %d: %v", i, models.ErrUnknownChangeKind)
		}
		if change.Kind.IsMultiSubject() {
			if change.Identifier != "" {
				return models.SyncRequest{}, malformed("change %d: %s carries a single identifier", i, change.Kind)
			}
			if change.Identifiers == nil {
				req.Changes[i].Identifiers = []string{}
			}
			continue
		}
		if change.Identifier == "" || len(change.Identifiers) > 0 {
			return models.SyncRequest{}, malformed("change %d: %s needs exactly one identifier", i, change.Kind)
		}
		req.Changes[i].Identifiers = nil
	}

	for i, flag := range req.Flags {
		if flag.Identifier == "" {
			return models.SyncRequest{}, malformed("flag %d: empty identifier", i)
		}
	}
	for i, episode := range req.Episodes {
		if episode.Identifier == "" {
			return models.SyncRequest{}, malformed("episode %d: empty identifier", i)
		}
	}

	return req, nil
}

func normalizeSnapshot(snapshot models.Snapshot) (models.Snapshot, error) {
	if snapshot.Items == nil {
		snapshot.Items = []models.SnapshotItem{}
	}
	for i, item := range snapshot.Items {
		if item.Identifier == "" {
			return models.Snapshot{}, malformed("item %d: empty identifier", i)
		}
	}
	return snapshot, nil
}
