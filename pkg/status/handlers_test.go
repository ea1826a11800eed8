// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package status

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/canonical/org-access-service/internal/http/types"
	"github.com/canonical/org-access-service/internal/logging"
	"github.com/canonical/org-access-service/internal/monitoring"
	"github.com/canonical/org-access-service/internal/tracing"
	"github.com/canonical/org-access-service/internal/version"
)

type pinger struct{ err error }

func (p pinger) Ping(context.Context) error { return p.err }

func TestStatusEndpoints(t *testing.T) {
	tests := []struct {
		name     string
		path     string
		pingErr  error
		expected int
	}{
		{name: "alive", path: "/api/v0/status", expected: http.StatusOK},
		{name: "alive ignores database", path: "/api/v0/status", pingErr: errors.New("down"), expected: http.StatusOK},
		{name: "ready", path: "/api/v0/ready", expected: http.StatusOK},
		{name: "not ready", path: "/api/v0/ready", pingErr: errors.New("down"), expected: http.StatusServiceUnavailable},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			logger := logging.NewNoopLogger()
			api := NewAPI(pinger{err: test.pingErr}, tracing.NewNoopTracer(), monitoring.NewNoopMonitor("test", logger), logger)

			mux := chi.NewMux()
			api.RegisterEndpoints(mux)

			w := httptest.NewRecorder()
			mux.ServeHTTP(w, httptest.NewRequest(http.MethodGet, test.path, nil))

			if w.Code != test.expected {
				t.Fatalf("expected status %d, got %d", test.expected, w.Code)
			}

			if test.expected != http.StatusOK {
				return
			}

			var resp types.Response
			resp.Data = new(Status)
			if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
				t.Fatalf("failed to decode response: %v", err)
			}
			if s := resp.Data.(*Status); s.Version != version.Version {
				t.Errorf("expected version %s, got %s", version.Version, s.Version)
			}
		})
	}
}
