// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-pod-sync/internal/logger"
	"github.com/MKhiriev/go-pod-sync/internal/utils"
)

func (h *Handler) getPodcast(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	identifier := chi.URLParam(r, "podcast")

	podcast, err := h.services.CatalogService.Podcast(r.Context(), identifier)
	if err != nil {
		log.Err(err).Str("func", "*Handler.getPodcast").Str("podcast", identifier).Msg("error getting podcast")
		http.Error(w, "error getting podcast", statusFromError(err))
		return
	}

	utils.WriteJSON(w, podcast, http.StatusOK)
}

func (h *Handler) getEpisode(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	podcast, identifier := chi.URLParam(r, "podcast"), chi.URLParam(r, "episode")

	episode, err := h.services.CatalogService.Episode(r.Context(), podcast, identifier)
	if err != nil {
		log.Err(err).
			Str("func", "*Handler.getEpisode").
			Str("podcast", podcast).
			Str("episode", identifier).
			Msg("error getting episode")
		http.Error(w, "error getting episode", statusFromError(err))
		return
	}

	utils.WriteJSON(w, episode, http.StatusOK)
}

// getFile serves a standalone user file, an episode without a podcast.
func (h *Handler) getFile(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	identifier := chi.URLParam(r, "file")

	file, err := h.services.CatalogService.File(r.Context(), identifier)
	if err != nil {
		log.Err(err).Str("func", "*Handler.getFile").Str("file", identifier).Msg("error getting file")
		http.Error(w, "error getting file", statusFromError(err))
		return
	}

	utils.WriteJSON(w, file, http.StatusOK)
}
