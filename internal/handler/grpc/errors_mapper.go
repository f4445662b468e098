// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package grpc

import (
	"errors"

	"google.golang.org/grpc/codes"

	"github.com/MKhiriev/go-pod-sync/internal/codec"
	"github.com/MKhiriev/go-pod-sync/internal/service"
	"github.com/MKhiriev/go-pod-sync/internal/store"
)

var errorCodeMap = map[error]codes.Code{
	service.ErrInvalidRequest:    codes.InvalidArgument,
	service.ErrEmptyIdentifier:   codes.InvalidArgument,
	service.ErrUnknownCollection: codes.NotFound,

	codec.ErrMalformedPayload: codes.InvalidArgument,
	codec.ErrUnknownCodec:     codes.InvalidArgument,

	store.ErrEpisodeNotFound:     codes.NotFound,
	store.ErrPodcastNotFound:     codes.NotFound,
	store.ErrConflictingWrite:    codes.Aborted,
	store.ErrWatermarkRegression: codes.Aborted,
}

func codeFromError(err error) codes.Code {
	for target, code := range errorCodeMap {
		if errors.Is(err, target) {
			return code
		}
	}
	return codes.Internal
}
