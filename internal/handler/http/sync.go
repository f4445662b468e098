// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-pod-sync/internal/codec"
	"github.com/MKhiriev/go-pod-sync/internal/logger"
	"github.com/MKhiriev/go-pod-sync/internal/utils"
	"github.com/MKhiriev/go-pod-sync/models"
)

// exchange answers POST /api/sync/{collection}. The response uses the codec
// named by the request Content-Type.
func (h *Handler) exchange(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	collection := models.Collection(chi.URLParam(r, "collection"))
	log := logger.FromRequest(r).WithCollection(string(collection))

	if !collection.Valid() {
		log.Warn().Str("func", "*Handler.exchange").Msg("unknown collection requested")
		http.Error(w, "unknown collection", http.StatusNotFound)
		return
	}

	wire, err := codec.ForContentType(r.Header.Get("Content-Type"))
	if err != nil {
		log.Err(err).Str("func", "*Handler.exchange").Msg("unsupported content type")
		http.Error(w, "unsupported content type", http.StatusUnsupportedMediaType)
		return
	}

	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxSyncBodySize))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			http.Error(w, "request body is too large", http.StatusRequestEntityTooLarge)
			return
		}
		log.Err(err).Str("func", "*Handler.exchange").Msg("error reading request body")
		http.Error(w, "error reading request body", http.StatusBadRequest)
		return
	}

	req, err := wire.DecodeRequest(body)
	if err != nil {
		log.Err(err).Str("func", "*Handler.exchange").Msg("malformed sync request")
		http.Error(w, "malformed sync request", statusFromError(err))
		return
	}

	snapshot, notModified, err := h.services.SyncService.Exchange(ctx, collection, req)
	if err != nil {
		log.Err(err).Str("func", "*Handler.exchange").Msg("sync exchange failed")
		http.Error(w, "sync exchange failed", statusFromError(err))
		return
	}
	if notModified {
		w.WriteHeader(http.StatusNotModified)
		return
	}

	out, err := wire.EncodeSnapshot(snapshot)
	if err != nil {
		log.Err(err).Str("func", "*Handler.exchange").Msg("error encoding snapshot")
		http.Error(w, "error encoding snapshot", http.StatusInternalServerError)
		return
	}

	if _, err = utils.WriteBytes(w, wire.ContentType(), out, http.StatusOK); err != nil {
		log.Err(err).Str("func", "*Handler.exchange").Msg("error writing snapshot")
	}
}
