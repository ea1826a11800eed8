// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package invites

import (
	"context"
	"errors"
	"fmt"
	"net/url"

	"github.com/google/uuid"

	"github.com/canonical/org-access-service/internal/db"
	"github.com/canonical/org-access-service/internal/logging"
	"github.com/canonical/org-access-service/internal/monitoring"
	"github.com/canonical/org-access-service/internal/storage"
	"github.com/canonical/org-access-service/internal/tracing"
	"github.com/canonical/org-access-service/internal/types"
	"github.com/canonical/org-access-service/pkg/activity"
)

// Service runs the stored invite lifecycle. An invite is live until it is revoked or
// accepted and at most one live invite exists per user and tenant.
type Service struct {
	storage   StorageInterface
	activator ActivatorInterface
	tx        TxInterface
	activity  ActivityInterface
	mailer    MailerInterface
	baseURL   string

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

// Issue supersedes the user's live invite in the tenant with a new one and puts the
// account back into the pending state. The user row is locked first so concurrent issues
// for the same user run one after the other.
func (s *Service) Issue(ctx context.Context, userID, tenantID string, creatorID *string) (*types.Invite, error) {
	ctx, span := s.tracer.Start(ctx, "invites.Service.Issue")
	defer span.End()

	var invite *types.Invite

	err := s.tx.WithTx(ctx, func(ctx context.Context) error {
		if _, err := s.storage.LockUser(ctx, userID); err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				return ErrUserNotFound
			}
			return fmt.Errorf("failed to lock user: %w", err)
		}

		if _, err := s.storage.GetMembership(ctx, tenantID, userID); err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				return ErrNotAMember
			}
			return fmt.Errorf("failed to check membership: %w", err)
		}

		revoked, err := s.storage.RevokeLiveInvites(ctx, userID, &tenantID)
		if err != nil {
			return err
		}

		invite, err = s.storage.CreateInvite(ctx, &types.Invite{
			UserID:    userID,
			TenantID:  tenantID,
			CreatedBy: creatorID,
		})
		if err != nil {
			return fmt.Errorf("failed to create invite: %w", err)
		}

		if err := s.storage.DeactivateUser(ctx, userID); err != nil {
			return fmt.Errorf("failed to reset user to pending: %w", err)
		}

		return s.activity.Record(ctx, tenantID, activity.VerbInviteIssued, map[string]any{
			"user_id":    userID,
			"invite_id":  invite.ID,
			"superseded": revoked,
		})
	})
	if err != nil {
		return nil, err
	}

	s.logger.Security().InviteIssued(userID, tenantID)

	return invite, nil
}

// Revoke ends a live invite of the tenant.
func (s *Service) Revoke(ctx context.Context, tenantID, inviteID string) error {
	ctx, span := s.tracer.Start(ctx, "invites.Service.Revoke")
	defer span.End()

	if _, err := uuid.Parse(inviteID); err != nil {
		return ErrInviteNotFound
	}

	var invite *types.Invite

	err := s.tx.WithTx(ctx, func(ctx context.Context) error {
		var err error
		invite, err = s.storage.GetInvite(ctx, inviteID)
		if err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				return ErrInviteNotFound
			}
			return fmt.Errorf("failed to get invite: %w", err)
		}

		if invite.TenantID != tenantID {
			return ErrInviteNotFound
		}

		ok, err := s.storage.RevokeInvite(ctx, inviteID)
		if err != nil {
			return err
		}
		if !ok {
			return ErrInviteNotLive
		}

		return s.activity.Record(ctx, tenantID, activity.VerbInviteRevoked, map[string]any{
			"user_id":   invite.UserID,
			"invite_id": inviteID,
		})
	})
	if err != nil {
		return err
	}

	s.logger.Security().InviteRevoked(invite.UserID, tenantID)

	return nil
}

func (s *Service) ListInvites(ctx context.Context, tenantID string, page, size int64) ([]*InviteView, error) {
	ctx, span := s.tracer.Start(ctx, "invites.Service.ListInvites")
	defer span.End()

	limit := db.PageSize(size)

	rows, err := s.storage.ListInvitesByTenantID(ctx, tenantID, db.Offset(page, limit), limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list invites: %w", err)
	}

	views := make([]*InviteView, 0, len(rows))
	for _, i := range rows {
		views = append(views, &InviteView{Invite: i, State: i.State()})
	}

	return views, nil
}

// Notify renders the activation link for invite and hands it to the mailer once the
// transaction that issued the invite has committed. Delivery failures past that point
// are logged, the link is returned either way.
func (s *Service) Notify(ctx context.Context, invite *types.Invite) (string, error) {
	ctx, span := s.tracer.Start(ctx, "invites.Service.Notify")
	defer span.End()

	user, err := s.storage.GetUserByID(ctx, invite.UserID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return "", ErrUserNotFound
		}
		return "", fmt.Errorf("failed to get user: %w", err)
	}

	link, err := activationLink(s.baseURL, url.Values{"token": {invite.ID}})
	if err != nil {
		return "", err
	}

	s.tx.AfterCommit(ctx, func(ctx context.Context) {
		if err := s.mailer.SendActivation(ctx, user.Email, link); err != nil {
			s.logger.Errorf("failed to send activation mail for invite %s: %v", invite.ID, err)
		}
	})

	return link, nil
}

// Redeem accepts a stored invite. The invite moves to accepted with a conditional update,
// so of several concurrent redemptions only one gets past it. An account that is already
// active rolls the acceptance back and fails as not live, matching both error kinds.
func (s *Service) Redeem(ctx context.Context, token, credential string) (*Result, error) {
	ctx, span := s.tracer.Start(ctx, "invites.Service.Redeem")
	defer span.End()

	if _, err := uuid.Parse(token); err != nil {
		return nil, ErrInvalidToken
	}

	hash, err := s.activator.HashCredential(credential)
	if err != nil {
		return nil, err
	}

	var invite *types.Invite

	err = s.tx.WithTx(ctx, func(ctx context.Context) error {
		var err error
		invite, err = s.storage.AcceptInvite(ctx, token)
		if errors.Is(err, storage.ErrNotFound) {
			return s.notLiveError(ctx, token)
		}
		if err != nil {
			return err
		}

		if err := s.activator.Activate(ctx, invite.UserID, hash, nil); err != nil {
			if errors.Is(err, ErrAlreadyActive) {
				return fmt.Errorf("%w: %w", ErrInviteNotLive, err)
			}
			return err
		}

		return s.activity.Record(ctx, invite.TenantID, activity.VerbInviteAccepted, map[string]any{
			"user_id":   invite.UserID,
			"invite_id": invite.ID,
		})
	})
	if err != nil {
		return nil, err
	}

	s.logger.Security().InviteAccepted(invite.UserID, invite.TenantID)

	return &Result{
		UserID:    invite.UserID,
		TenantID:  invite.TenantID,
		InviteID:  invite.ID,
		Mechanism: MechanismStored,
	}, nil
}

// notLiveError tells an unknown token apart from one that was revoked or accepted.
func (s *Service) notLiveError(ctx context.Context, token string) error {
	_, err := s.storage.GetInvite(ctx, token)
	switch {
	case errors.Is(err, storage.ErrNotFound):
		return ErrInvalidToken
	case err != nil:
		return fmt.Errorf("failed to get invite: %w", err)
	default:
		return ErrInviteNotLive
	}
}

func activationLink(base string, q url.Values) (string, error) {
	u, err := url.Parse(base)
	if err != nil {
		return "", fmt.Errorf("invalid invite base url: %w", err)
	}

	values := u.Query()
	for k, v := range q {
		values[k] = v
	}
	u.RawQuery = values.Encode()

	return u.String(), nil
}

func NewService(
	storage StorageInterface,
	activator ActivatorInterface,
	tx TxInterface,
	recorder ActivityInterface,
	mailer MailerInterface,
	baseURL string,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Service {
	return &Service{
		storage:   storage,
		activator: activator,
		tx:        tx,
		activity:  recorder,
		mailer:    mailer,
		baseURL:   baseURL,
		tracer:    tracer,
		monitor:   monitor,
		logger:    logger,
	}
}
