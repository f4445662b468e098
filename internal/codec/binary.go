// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package codec

import (
	"google.golang.org/protobuf/encoding/protowire"

	"github.com/MKhiriev/go-pod-sync/models"
)

// Field numbers of the binary schema.
//
//	message SyncRequest {
//	  string device_id = 1;
//	  int32 device_kind = 2;
//	  optional int64 last_watermark = 3;
//	  repeated Change changes = 4;
//	  repeated Flag flags = 5;
//	  repeated Episode episodes = 6;
//	}
//	message Change { int32 kind = 1; string identifier = 2; repeated string identifiers = 3; int64 modified_at_ms = 4; }
//	message Flag { string identifier = 1; bool value = 2; int64 modified_at_ms = 3; }
//	message Episode { string identifier = 1; string parent_identifier = 2; string title = 3; optional int64 published_at_ms = 4; }
//
//	message Snapshot { int64 new_watermark = 1; repeated Item items = 2; }
//	message Item {
//	  string identifier = 1;
//	  optional string parent_identifier = 2;
//	  optional string title = 3;
//	  optional int64 published_at_ms = 4;
//	  optional bool starred = 5;
//	  optional int64 starred_modified_at_ms = 6;
//	  optional int64 position = 7;
//	}
const (
	reqDeviceID      protowire.Number = 1
	reqDeviceKind    protowire.Number = 2
	reqLastWatermark protowire.Number = 3
	reqChanges       protowire.Number = 4
	reqFlags         protowire.Number = 5
	reqEpisodes      protowire.Number = 6

	changeKind         protowire.Number = 1
	changeIdentifier   protowire.Number = 2
	changeIdentifiers  protowire.Number = 3
	changeModifiedAtMs protowire.Number = 4

	flagIdentifier   protowire.Number = 1
	flagValue        protowire.Number = 2
	flagModifiedAtMs protowire.Number = 3

	episodeIdentifier    protowire.Number = 1
	episodeParent        protowire.Number = 2
	episodeTitle         protowire.Number = 3
	episodePublishedAtMs protowire.Number = 4

	snapshotNewWatermark protowire.Number = 1
	snapshotItems        protowire.Number = 2

	itemIdentifier          protowire.Number = 1
	itemParent              protowire.Number = 2
	itemTitle               protowire.Number = 3
	itemPublishedAtMs       protowire.Number = 4
	itemStarred             protowire.Number = 5
	itemStarredModifiedAtMs protowire.Number = 6
	itemPosition            protowire.Number = 7
)

type binaryCodec struct{}

// NewBinaryCodec returns the compact protobuf-wire codec.
func NewBinaryCodec() Codec {
	return binaryCodec{}
}

func (binaryCodec) Name() string        { return Binary }
func (binaryCodec) ContentType() string { return ContentTypeBinary }

func (binaryCodec) EncodeRequest(req models.SyncRequest) ([]byte, error) {
	var b []byte
	b = appendString(b, reqDeviceID, req.DeviceID)
	b = appendVarint(b, reqDeviceKind, int64(req.DeviceKind))
	if req.LastWatermark != nil {
		b = protowire.AppendTag(b, reqLastWatermark, protowire.VarintType)
		b = protowire.AppendVarint(b, uint64(*req.LastWatermark))
	}

	for _, change := range req.Changes {
		var m []byte
		m = appendVarint(m, changeKind, int64(change.Kind))
		m = appendString(m, changeIdentifier, change.Identifier)
		for _, id := range change.Identifiers {
			m = protowire.AppendTag(m, changeIdentifiers, protowire.BytesType)
			m = protowire.AppendString(m, id)
		}
		m = appendVarint(m, changeModifiedAtMs, change.ModifiedAtMs)
		b = appendMessage(b, reqChanges, m)
	}

	for _, flag := range req.Flags {
		var m []byte
		m = appendString(m, flagIdentifier, flag.Identifier)
		if flag.Value {
			m = protowire.AppendTag(m, flagValue, protowire.VarintType)
			m = protowire.AppendVarint(m, protowire.EncodeBool(true))
		}
		m = appendVarint(m, flagModifiedAtMs, flag.ModifiedAtMs)
		b = appendMessage(b, reqFlags, m)
	}

	for _, episode := range req.Episodes {
		var m []byte
		m = appendString(m, episodeIdentifier, episode.Identifier)
		m = appendString(m, episodeParent, episode.ParentIdentifier)
		m = appendString(m, episodeTitle, episode.Title)
		if episode.PublishedAtMs != nil {
			m = protowire.AppendTag(m, episodePublishedAtMs, protowire.VarintType)
			m = protowire.AppendVarint(m, uint64(*episode.PublishedAtMs))
		}
		b = appendMessage(b, reqEpisodes, m)
	}

	return b, nil
}

func (binaryCodec) DecodeRequest(data []byte) (models.SyncRequest, error) {
	req := models.SyncRequest{}

	err := walkFields(data, func(num protowire.Number, typ protowire.Type, field []byte) (int, error) {
		switch {
		case num == reqDeviceID && typ == protowire.BytesType:
			v, n := protowire.ConsumeString(field)
			req.DeviceID = v
			return n, nil
		case num == reqDeviceKind && typ == protowire.VarintType:
			v, n := protowire.ConsumeVarint(field)
			req.DeviceKind = models.DeviceKind(int32(v))
			return n, nil
		case num == reqLastWatermark && typ == protowire.VarintType:
			v, n := protowire.ConsumeVarint(field)
			w := int64(v)
			req.LastWatermark = &w
			return n, nil
		case num == reqChanges && typ == protowire.BytesType:
			m, n := protowire.ConsumeBytes(field)
			if n < 0 {
				return n, nil
			}
			change, err := decodeChange(m)
			if err != nil {
				return 0, err
			}
			req.Changes = append(req.Changes, change)
			return n, nil
		case num == reqFlags && typ == protowire.BytesType:
			m, n := protowire.ConsumeBytes(field)
			if n < 0 {
				return n, nil
			}
			flag, err := decodeFlag(m)
			if err != nil {
				return 0, err
			}
			req.Flags = append(req.Flags, flag)
			return n, nil
		case num == reqEpisodes && typ == protowire.BytesType:
			m, n := protowire.ConsumeBytes(field)
			if n < 0 {
				return n, nil
			}
			episode, err := decodeEpisode(m)
			if err != nil {
				return 0, err
			}
			req.Episodes = append(req.Episodes, episode)
			return n, nil
		}
		return protowire.ConsumeFieldValue(num, typ, field), nil
	})
	if err != nil {
		return models.SyncRequest{}, err
	}

	return normalizeRequest(req)
}

func (binaryCodec) EncodeSnapshot(snapshot models.Snapshot) ([]byte, error) {
	var b []byte
	b = appendVarint(b, snapshotNewWatermark, snapshot.NewWatermark)

	for _, item := range snapshot.Items {
		var m []byte
		m = appendString(m, itemIdentifier, item.Identifier)
		if item.ParentIdentifier != nil {
			m = protowire.AppendTag(m, itemParent, protowire.BytesType)
			m = protowire.AppendString(m, *item.ParentIdentifier)
		}
		if item.Title != nil {
			m = protowire.AppendTag(m, itemTitle, protowire.BytesType)
			m = protowire.AppendString(m, *item.Title)
		}
		if item.PublishedAtMs != nil {
			m = protowire.AppendTag(m, itemPublishedAtMs, protowire.VarintType)
			m = protowire.AppendVarint(m, uint64(*item.PublishedAtMs))
		}
		if item.Starred != nil {
			m = protowire.AppendTag(m, itemStarred, protowire.VarintType)
			m = protowire.AppendVarint(m, protowire.EncodeBool(*item.Starred))
		}
		if item.StarredModifiedAtMs != nil {
			m = protowire.AppendTag(m, itemStarredModifiedAtMs, protowire.VarintType)
			m = protowire.AppendVarint(m, uint64(*item.StarredModifiedAtMs))
		}
		if item.Position != nil {
			m = protowire.AppendTag(m, itemPosition, protowire.VarintType)
			m = protowire.AppendVarint(m, uint64(int64(*item.Position)))
		}
		b = appendMessage(b, snapshotItems, m)
	}

	return b, nil
}

func (binaryCodec) DecodeSnapshot(data []byte) (models.Snapshot, error) {
	snapshot := models.Snapshot{}

	err := walkFields(data, func(num protowire.Number, typ protowire.Type, field []byte) (int, error) {
		switch {
		case num == snapshotNewWatermark && typ == protowire.VarintType:
			v, n := protowire.ConsumeVarint(field)
			snapshot.NewWatermark = int64(v)
			return n, nil
		case num == snapshotItems && typ == protowire.BytesType:
			m, n := protowire.ConsumeBytes(field)
			if n < 0 {
				return n, nil
			}
			item, err := decodeItem(m)
			if err != nil {
				return 0, err
			}
			snapshot.Items = append(snapshot.Items, item)
			return n, nil
		}
		return protowire.ConsumeFieldValue(num, typ, field), nil
	})
	if err != nil {
		return models.Snapshot{}, err
	}

	return normalizeSnapshot(snapshot)
}

func decodeChange(data []byte) (models.SyncChange, error) {
	var change models.SyncChange
	err := walkFields(data, func(num protowire.Number, typ protowire.Type, field []byte) (int, error) {
		switch {
		case num == changeKind && typ == protowire.VarintType:
			v, n := protowire.ConsumeVarint(field)
			change.Kind = models.ChangeKind(int32(v))
			return n, nil
		case num == changeIdentifier && typ == protowire.BytesType:
			v, n := protowire.ConsumeString(field)
			change.Identifier = v
			return n, nil
		case num == changeIdentifiers && typ == protowire.BytesType:
			v, n := protowire.ConsumeString(field)
			if n >= 0 {
				change.Identifiers = append(change.Identifiers, v)
			}
			return n, nil
		case num == changeModifiedAtMs && typ == protowire.VarintType:
			v, n := protowire.ConsumeVarint(field)
			change.ModifiedAtMs = int64(v)
			return n, nil
		}
		return protowire.ConsumeFieldValue(num, typ, field), nil
	})
	return change, err
}

func decodeFlag(data []byte) (models.FlagChange, error) {
	var flag models.FlagChange
	err := walkFields(data, func(num protowire.Number, typ protowire.Type, field []byte) (int, error) {
		switch {
		case num == flagIdentifier && typ == protowire.BytesType:
			v, n := protowire.ConsumeString(field)
			flag.Identifier = v
			return n, nil
		case num == flagValue && typ == protowire.VarintType:
			v, n := protowire.ConsumeVarint(field)
			flag.Value = protowire.DecodeBool(v)
			return n, nil
		case num == flagModifiedAtMs && typ == protowire.VarintType:
			v, n := protowire.ConsumeVarint(field)
			flag.ModifiedAtMs = int64(v)
			return n, nil
		}
		return protowire.ConsumeFieldValue(num, typ, field), nil
	})
	return flag, err
}

func decodeEpisode(data []byte) (models.EpisodeMeta, error) {
	var episode models.EpisodeMeta
	err := walkFields(data, func(num protowire.Number, typ protowire.Type, field []byte) (int, error) {
		switch {
		case num == episodeIdentifier && typ == protowire.BytesType:
			v, n := protowire.ConsumeString(field)
			episode.Identifier = v
			return n, nil
		case num == episodeParent && typ == protowire.BytesType:
			v, n := protowire.ConsumeString(field)
			episode.ParentIdentifier = v
			return n, nil
		case num == episodeTitle && typ == protowire.BytesType:
			v, n := protowire.ConsumeString(field)
			episode.Title = v
			return n, nil
		case num == episodePublishedAtMs && typ == protowire.VarintType:
			v, n := protowire.ConsumeVarint(field)
			ms := int64(v)
			episode.PublishedAtMs = &ms
			return n, nil
		}
		return protowire.ConsumeFieldValue(num, typ, field), nil
	})
	return episode, err
}

func decodeItem(data []byte) (models.SnapshotItem, error) {
	var item models.SnapshotItem
	err := walkFields(data, func(num protowire.Number, typ protowire.Type, field []byte) (int, error) {
		switch {
		case num == itemIdentifier && typ == protowire.BytesType:
			v, n := protowire.ConsumeString(field)
			item.Identifier = v
			return n, nil
		case num == itemParent && typ == protowire.BytesType:
			v, n := protowire.ConsumeString(field)
			item.ParentIdentifier = &v
			return n, nil
		case num == itemTitle && typ == protowire.BytesType:
			v, n := protowire.ConsumeString(field)
			item.Title = &v
			return n, nil
		case num == itemPublishedAtMs && typ == protowire.VarintType:
			v, n := protowire.ConsumeVarint(field)
			ms := int64(v)
			item.PublishedAtMs = &ms
			return n, nil
		case num == itemStarred && typ == protowire.VarintType:
			v, n := protowire.ConsumeVarint(field)
			starred := protowire.DecodeBool(v)
			item.Starred = &starred
			return n, nil
		case num == itemStarredModifiedAtMs && typ == protowire.VarintType:
			v, n := protowire.ConsumeVarint(field)
			ms := int64(v)
			item.StarredModifiedAtMs = &ms
			return n, nil
		case num == itemPosition && typ == protowire.VarintType:
			v, n := protowire.ConsumeVarint(field)
			pos := int(int64(v))
			item.Position = &pos
			return n, nil
		}
		return protowire.ConsumeFieldValue(num, typ, field), nil
	})
	return item, err
}

// walkFields iterates the top-level fields of a message. fn consumes the
// value of one field and returns how many bytes it used, or a negative
// protowire error code.
func walkFields(data []byte, fn func(num protowire.Number, typ protowire.Type, field []byte) (int, error)) error {
	for len(data) > 0 {
		num, typ, n := protowire.ConsumeTag(data)
		if n < 0 {
			return malformed("tag: %v", protowire.ParseError(n))
		}
		data = data[n:]

		m, err := fn(num, typ, data)
		if err != nil {
			return err
		}
		if m < 0 {
			return malformed("field %d: %v", num, protowire.ParseError(m))
		}
		data = data[m:]
	}
	return nil
}

func appendString(b []byte, num protowire.Number, v string) []byte {
	if v == "" {
		return b
	}
	b = protowire.AppendTag(b, num, protowire.BytesType)
	return protowire.AppendString(b, v)
}

func appendVarint(b []byte, num protowire.Number, v int64) []byte {
	if v == 0 {
		return b
	}
	b = protowire.AppendTag(b, num, protowire.VarintType)
	return protowire.AppendVarint(b, uint64(v))
}

func appendMessage(b []byte, num protowire.Number, m []byte) []byte {
	b = protowire.AppendTag(b, num, protowire.BytesType)
	return protowire.AppendBytes(b, m)
}
