// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"encoding/json"
	"fmt"
	"net/http"
)

const jsonContentType = "application/json"

// WriteJSON serializes data and writes it with the given status code.
//
// If marshaling fails the client gets 500 and the marshaling error is
// returned wrapped.
//
//	WriteJSON(w, podcast, http.StatusOK)
func WriteJSON(w http.ResponseWriter, data any, statusCode int) (int, error) {
	body, err := json.Marshal(data)
	if err != nil {
		http.Error(w, "error writing data to JSON", http.StatusInternalServerError)
		return 0, fmt.Errorf("error writing data to JSON: %w", err)
	}

	return WriteBytes(w, jsonContentType, body, statusCode)
}

// WriteBytes writes an already encoded body with the given content type and
// status code.
func WriteBytes(w http.ResponseWriter, contentType string, body []byte, statusCode int) (int, error) {
	w.Header().Set("Content-Type", contentType)
	w.WriteHeader(statusCode)

	n, err := w.Write(body)
	if err != nil {
		return n, fmt.Errorf("error writing response body: %w", err)
	}
	return n, nil
}
