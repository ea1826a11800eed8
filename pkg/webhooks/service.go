// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package webhooks

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/ory/hydra/v2/oauth2"

	"github.com/canonical/org-access-service/internal/logging"
	"github.com/canonical/org-access-service/internal/monitoring"
	"github.com/canonical/org-access-service/internal/storage"
	"github.com/canonical/org-access-service/internal/tracing"
	"github.com/canonical/org-access-service/internal/types"
)

const (
	tenantsClaim    = "tenants"
	privilegedClaim = "privileged"
)

var ErrMissingSubject = errors.New("token hook session has no subject")

type Service struct {
	storage StorageInterface
	authz   AuthorizerInterface
	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewService(
	storage StorageInterface,
	authz AuthorizerInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Service {
	return &Service{
		storage: storage,
		authz:   authz,
		tracer:  tracer,
		monitor: monitor,
		logger:  logger,
	}
}

// HandleRegistration records a self-registered identity as an active user.
// Identities already known, for example created by an invitation, are left untouched.
func (s *Service) HandleRegistration(ctx context.Context, identityID, email string) error {
	ctx, span := s.tracer.Start(ctx, "webhooks.Service.HandleRegistration")
	defer span.End()

	s.logger.Debugf("handling registration for identity %s", identityID)

	email = strings.TrimSpace(email)
	if identityID == "" || email == "" {
		return fmt.Errorf("identity ID or email is empty")
	}

	_, err := s.storage.CreateUser(ctx, &types.User{ID: identityID, Email: email, Active: true})
	if errors.Is(err, storage.ErrDuplicateKey) {
		s.logger.Debugf("identity %s already registered", identityID)
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}

	s.logger.Infof("registered user %s", identityID)
	return nil
}

// HandleTokenHook injects the active tenants of the subject, and its privileged flag, into both tokens.
func (s *Service) HandleTokenHook(ctx context.Context, req *oauth2.TokenHookRequest) (*TokenHookResponse, error) {
	ctx, span := s.tracer.Start(ctx, "webhooks.Service.HandleTokenHook")
	defer span.End()

	if req == nil || req.Session == nil || req.Session.DefaultSession == nil || req.Session.DefaultSession.Subject == "" {
		return nil, ErrMissingSubject
	}

	subject := req.Session.DefaultSession.Subject
	s.logger.Debugf("handling token hook for %s", subject)

	tenants, err := s.storage.ListActiveTenantsByUserID(ctx, subject)
	if err != nil {
		return nil, fmt.Errorf("failed to list tenants: %w", err)
	}

	privileged, err := s.authz.IsPrivilegedAdmin(ctx, subject)
	if err != nil {
		return nil, fmt.Errorf("failed to check privileged access: %w", err)
	}

	resp := &TokenHookResponse{
		Session: TokenHookSession{
			IDToken:     map[string]interface{}{},
			AccessToken: map[string]interface{}{},
		},
	}

	if len(tenants) > 0 {
		ids := make([]string, 0, len(tenants))
		for _, t := range tenants {
			ids = append(ids, t.ID)
		}
		resp.Session.IDToken[tenantsClaim] = ids
		resp.Session.AccessToken[tenantsClaim] = ids
	}

	if privileged {
		resp.Session.IDToken[privilegedClaim] = true
		resp.Session.AccessToken[privilegedClaim] = true
	}

	return resp, nil
}
