// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"compress/gzip"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-pod-sync/internal/logger"
	"github.com/MKhiriev/go-pod-sync/internal/utils"
)

func gzipBytes(t *testing.T, data []byte) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	_, err := zw.Write(data)
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	return buf.Bytes()
}

func gunzipBytes(t *testing.T, data []byte) []byte {
	t.Helper()
	zr, err := gzip.NewReader(bytes.NewReader(data))
	require.NoError(t, err)
	out, err := io.ReadAll(zr)
	require.NoError(t, err)
	return out
}

func TestWithTraceID(t *testing.T) {
	tests := []struct {
		name     string
		incoming string
	}{
		{name: "reuses the caller trace id", incoming: "client-trace"},
		{name: "generates a trace id", incoming: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			h := &Handler{logger: &logger.Logger{Logger: zerolog.New(&buf)}}

			var seen string
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				seen, _ = utils.GetTraceIDFromContext(r.Context())
				logger.FromRequest(r).Info().Msg("inside")
			})

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.incoming != "" {
				req.Header.Set(traceIDHeader, tt.incoming)
			}
			rr := httptest.NewRecorder()
			h.withTraceID(next).ServeHTTP(rr, req)

			traceID := rr.Header().Get(traceIDHeader)
			assert.Equal(t, traceID, seen)
			assert.Contains(t, buf.String(), `"trace_id":"`+traceID+`"`)

			if tt.incoming != "" {
				assert.Equal(t, tt.incoming, traceID)
			} else {
				_, err := uuid.Parse(traceID)
				assert.NoError(t, err)
			}
		})
	}
}

func TestWithTraceID_UniquePerRequest(t *testing.T) {
	h := &Handler{logger: logger.Nop()}
	mw := h.withTraceID(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))

	seen := make(map[string]struct{})
	for i := 0; i < 20; i++ {
		rr := httptest.NewRecorder()
		mw.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))
		seen[rr.Header().Get(traceIDHeader)] = struct{}{}
	}
	assert.Len(t, seen, 20)
}

func TestWithLogging(t *testing.T) {
	tests := []struct {
		name      string
		status    int
		body      string
		wantLevel string
		wantLog   []string
	}{
		{
			name:      "ok",
			status:    http.StatusOK,
			body:      "hello",
			wantLevel: `"level":"info"`,
			wantLog:   []string{`"status":200`, `"size":5`, `"method":"POST"`, `"uri":"/api/sync/up_next"`},
		},
		{
			name:      "not modified",
			status:    http.StatusNotModified,
			wantLevel: `"level":"info"`,
			wantLog:   []string{`"status":304`, `"size":0`},
		},
		{
			name:      "server error",
			status:    http.StatusInternalServerError,
			body:      "boom",
			wantLevel: `"level":"warn"`,
			wantLog:   []string{`"status":500`},
		},
		{
			name:      "implicit status",
			status:    0,
			wantLevel: `"level":"info"`,
			wantLog:   []string{`"status":200`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			h := &Handler{logger: logger.Nop()}

			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if tt.status != 0 {
					w.WriteHeader(tt.status)
				}
				if tt.body != "" {
					_, _ = w.Write([]byte(tt.body))
				}
			})

			req := httptest.NewRequest(http.MethodPost, "/api/sync/up_next", nil)
			l := zerolog.New(&buf)
			req = req.WithContext(l.WithContext(req.Context()))

			h.withLogging(next).ServeHTTP(httptest.NewRecorder(), req)

			entry := buf.String()
			assert.Contains(t, entry, tt.wantLevel)
			for _, want := range tt.wantLog {
				assert.Contains(t, entry, want)
			}
			assert.Contains(t, entry, `"duration":`)
		})
	}
}

func TestGZip(t *testing.T) {
	const payload = "snapshot snapshot snapshot snapshot"

	tests := []struct {
		name           string
		acceptEncoding string
		status         int
		wantGzip       bool
	}{
		{name: "client accepts gzip", acceptEncoding: "gzip", status: http.StatusOK, wantGzip: true},
		{name: "gzip among others", acceptEncoding: "deflate, gzip;q=1.0, br", status: http.StatusOK, wantGzip: true},
		{name: "no gzip support", acceptEncoding: "", status: http.StatusOK},
		{name: "not modified is never compressed", acceptEncoding: "gzip", status: http.StatusNotModified},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				if tt.status == http.StatusOK {
					_, _ = w.Write([]byte(payload))
				}
			})

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.acceptEncoding != "" {
				req.Header.Set("Accept-Encoding", tt.acceptEncoding)
			}
			rr := httptest.NewRecorder()
			withGZip(next).ServeHTTP(rr, req)

			assert.Equal(t, tt.status, rr.Code)
			if !tt.wantGzip {
				assert.Empty(t, rr.Header().Get("Content-Encoding"))
				if tt.status == http.StatusOK {
					assert.Equal(t, payload, rr.Body.String())
				} else {
					assert.Empty(t, rr.Body.Bytes())
				}
				return
			}

			assert.Equal(t, "gzip", rr.Header().Get("Content-Encoding"))
			assert.Equal(t, payload, string(gunzipBytes(t, rr.Body.Bytes())))
		})
	}
}

func TestGZip_DecodesRequestBody(t *testing.T) {
	var got []byte
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got, _ = io.ReadAll(r.Body)
		_ = r.Body.Close()
		assert.Empty(t, r.Header.Get("Content-Encoding"))
	})

	req := httptest.NewRequest(http.MethodPost, "/", bytes.NewReader(gzipBytes(t, []byte("request body"))))
	req.Header.Set("Content-Encoding", "gzip")
	withGZip(next).ServeHTTP(httptest.NewRecorder(), req)

	assert.Equal(t, "request body", string(got))
}

func TestGZip_InvalidRequestBody(t *testing.T) {
	called := false
	next := http.HandlerFunc(func(http.ResponseWriter, *http.Request) { called = true })

	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader("not gzip"))
	req.Header.Set("Content-Encoding", "gzip")
	rr := httptest.NewRecorder()
	withGZip(next).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.False(t, called)
}

func TestWrappedReadCloser_Close(t *testing.T) {
	closed := false
	rc := &wrappedReadCloser{Reader: strings.NewReader("x"), OnClose: func() { closed = true }}
	require.NoError(t, rc.Close())
	assert.True(t, closed)

	assert.NoError(t, (&wrappedReadCloser{Reader: strings.NewReader("x")}).Close())
}

func TestCheckHTTPMethod(t *testing.T) {
	router := chi.NewRouter()
	router.Get("/api/podcasts/{podcast}", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})
	router.MethodNotAllowed(CheckHTTPMethod(router))

	tests := []struct {
		method     string
		path       string
		wantStatus int
	}{
		{http.MethodGet, "/api/podcasts/pod-1", http.StatusTeapot},
		{http.MethodPost, "/api/podcasts/pod-1", http.StatusNotFound},
		{http.MethodDelete, "/api/podcasts/pod-1", http.StatusNotFound},
	}

	for _, tt := range tests {
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, httptest.NewRequest(tt.method, tt.path, nil))
		assert.Equal(t, tt.wantStatus, rr.Code, tt.method)
	}

	// handed straight to the MethodNotAllowed handler with a routable request
	rr := httptest.NewRecorder()
	CheckHTTPMethod(router)(rr, httptest.NewRequest(http.MethodGet, "/api/podcasts/pod-2", nil))
	assert.Equal(t, http.StatusTeapot, rr.Code)
}

func TestResponseWriter(t *testing.T) {
	rr := httptest.NewRecorder()
	w := &responseWriter{ResponseWriter: rr}

	n, err := w.Write([]byte("abc"))
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	w.WriteHeader(http.StatusTeapot)
	_, _ = w.Write([]byte("de"))

	assert.Equal(t, http.StatusOK, w.status)
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, 5, w.size)
	assert.Equal(t, "abcde", rr.Body.String())
}
