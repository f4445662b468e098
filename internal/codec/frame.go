// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package codec

import "fmt"

// gRPC carries sync payloads already encoded by a [Codec]; the frame codec
// passes them through untouched.
const (
	GRPCServiceName    = "podsync.v1.Sync"
	GRPCExchangeMethod = "/podsync.v1.Sync/Exchange"

	// Request metadata.
	MetadataCollection  = "podsync-collection"
	MetadataContentType = "podsync-content-type"

	// Response header signalling that the client is up to date.
	MetadataStatus    = "podsync-status"
	StatusNotModified = "not-modified"
)

const frameCodecName = "podsync-frame"

// Frame is an opaque, already encoded sync payload.
type Frame struct {
	Body []byte
}

// FrameCodec implements google.golang.org/grpc/encoding.Codec for [Frame].
type FrameCodec struct{}

func (FrameCodec) Marshal(v any) ([]byte, error) {
	frame, ok := v.(*Frame)
	if !ok {
		return nil, fmt.Errorf("frame codec: unexpected message type %T", v)
	}
	return frame.Body, nil
}

func (FrameCodec) Unmarshal(data []byte, v any) error {
	frame, ok := v.(*Frame)
	if !ok {
		return fmt.Errorf("frame codec: unexpected message type %T", v)
	}
	frame.Body = append(frame.Body[:0], data...)
	return nil
}

func (FrameCodec) Name() string {
	return frameCodecName
}
