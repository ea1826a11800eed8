// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package invites

import (
	"context"
	"fmt"
	"unicode/utf8"

	"golang.org/x/crypto/bcrypt"

	"github.com/canonical/org-access-service/internal/logging"
	"github.com/canonical/org-access-service/internal/monitoring"
	"github.com/canonical/org-access-service/internal/tracing"
)

// Activator flips a pending account to active with a fresh credential. Every redemption
// path ends here so the effect is identical whichever token the user presented.
type Activator struct {
	storage   ActivationStorageInterface
	cost      int
	minLength int

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

// HashCredential checks the credential policy and hashes it. It runs before any
// transaction is opened so row locks are not held across the hash.
func (a *Activator) HashCredential(credential string) (string, error) {
	if utf8.RuneCountInString(credential) < a.minLength {
		return "", ErrWeakCredential
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(credential), a.cost)
	if err != nil {
		return "", fmt.Errorf("failed to hash credential: %w", err)
	}

	return string(hash), nil
}

// Activate sets the credential and the active flag only while the account is still
// pending, and when expectedVersion is set, only if no invite was issued since. The
// user's remaining live invites are revoked in the same transaction.
func (a *Activator) Activate(ctx context.Context, userID, credentialHash string, expectedVersion *int64) error {
	ctx, span := a.tracer.Start(ctx, "invites.Activator.Activate")
	defer span.End()

	ok, err := a.storage.ActivateUser(ctx, userID, credentialHash, expectedVersion)
	if err != nil {
		return fmt.Errorf("failed to activate user: %w", err)
	}
	if !ok {
		return ErrAlreadyActive
	}

	if _, err := a.storage.RevokeLiveInvites(ctx, userID, nil); err != nil {
		return err
	}

	a.logger.Security().UserActivated(userID)

	return nil
}

func NewActivator(
	storage ActivationStorageInterface,
	cost, minLength int,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Activator {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}

	return &Activator{
		storage:   storage,
		cost:      cost,
		minLength: minLength,
		tracer:    tracer,
		monitor:   monitor,
		logger:    logger,
	}
}
