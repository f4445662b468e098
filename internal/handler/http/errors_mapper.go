// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-pod-sync/internal/codec"
	"github.com/MKhiriev/go-pod-sync/internal/service"
	"github.com/MKhiriev/go-pod-sync/internal/store"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidRequest:        http.StatusBadRequest,
	service.ErrEmptyIdentifier:       http.StatusBadRequest,
	service.ErrUnknownCollection:     http.StatusNotFound,
	service.ErrVersionIsNotSpecified: http.StatusInternalServerError,

	codec.ErrMalformedPayload: http.StatusBadRequest,
	codec.ErrUnknownCodec:     http.StatusUnsupportedMediaType,

	store.ErrEpisodeNotFound:     http.StatusNotFound,
	store.ErrPodcastNotFound:     http.StatusNotFound,
	store.ErrConflictingWrite:    http.StatusConflict,
	store.ErrWatermarkRegression: http.StatusConflict,

	store.ErrBuildingSQLQuery:     http.StatusInternalServerError,
	store.ErrExecutingQuery:       http.StatusInternalServerError,
	store.ErrBeginningTransaction: http.StatusInternalServerError,
	store.ErrCommitingTransaction: http.StatusInternalServerError,
	store.ErrExecutingStatement:   http.StatusInternalServerError,
	store.ErrScanningRow:          http.StatusInternalServerError,
	store.ErrScanningRows:         http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}
