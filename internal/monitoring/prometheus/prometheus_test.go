// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package prometheus

import (
	"testing"

	"github.com/canonical/org-access-service/internal/logging"
)

func TestMonitorMetrics(t *testing.T) {
	m := NewMonitor("org-access-service-test", logging.NewNoopLogger())

	if m.GetService() != "org-access-service-test" {
		t.Fatalf("unexpected service %s", m.GetService())
	}

	if err := m.SetResponseTimeMetric(map[string]string{"route": "GET/api/v0/status", "status": "200"}, 0.1); err != nil {
		t.Errorf("unexpected error %s", err)
	}

	if err := m.SetDependencyAvailability(map[string]string{"component": "database"}, 1); err != nil {
		t.Errorf("unexpected error %s", err)
	}
}

func TestMonitorNotInstantiated(t *testing.T) {
	m := new(Monitor)

	if err := m.SetResponseTimeMetric(nil, 1); err == nil {
		t.Errorf("expected error on missing histogram")
	}
	if err := m.SetDependencyAvailability(nil, 1); err == nil {
		t.Errorf("expected error on missing gauge")
	}
}
