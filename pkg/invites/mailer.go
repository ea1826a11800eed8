// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package invites

import (
	"context"

	"github.com/canonical/org-access-service/internal/logging"
)

// LogMailer writes activation links to the log instead of delivering them.
type LogMailer struct {
	logger logging.LoggerInterface
}

func (m *LogMailer) SendActivation(_ context.Context, email, link string) error {
	m.logger.Infof("activation link for %s: %s", email, link)
	return nil
}

func NewLogMailer(logger logging.LoggerInterface) *LogMailer {
	return &LogMailer{logger: logger}
}
