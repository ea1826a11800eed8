// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package invites

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/gorilla/securecookie"

	"github.com/canonical/org-access-service/internal/logging"
	"github.com/canonical/org-access-service/internal/monitoring"
	"github.com/canonical/org-access-service/internal/storage"
	"github.com/canonical/org-access-service/internal/tracing"
	"github.com/canonical/org-access-service/internal/types"
)

const signedTokenName = "activation"

type signedClaim struct {
	UserID  string `json:"sub"`
	Version int64  `json:"ver"`
}

// SignedService issues and redeems stateless activation links. The token signs the user
// id together with the credential version, any later invite or activation bumps the
// version and invalidates links already handed out.
type SignedService struct {
	storage   UserStorageInterface
	activator ActivatorInterface
	tx        TxInterface
	codec     *securecookie.SecureCookie
	maxAge    time.Duration
	baseURL   string
	now       func() time.Time

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

// IssueSigned signs an activation link for a pending member of the tenant.
func (s *SignedService) IssueSigned(ctx context.Context, tenantID, userID string) (*SignedToken, error) {
	ctx, span := s.tracer.Start(ctx, "invites.SignedService.IssueSigned")
	defer span.End()

	if _, err := s.storage.GetMembership(ctx, tenantID, userID); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, ErrNotAMember
		}
		return nil, fmt.Errorf("failed to check membership: %w", err)
	}

	user, err := s.getUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	if user.Active {
		return nil, ErrAlreadyActive
	}

	token, err := s.codec.Encode(signedTokenName, &signedClaim{UserID: user.ID, Version: user.CredentialVersion})
	if err != nil {
		return nil, fmt.Errorf("failed to sign activation token: %w", err)
	}

	uid := base64.RawURLEncoding.EncodeToString([]byte(user.ID))

	link, err := activationLink(s.baseURL, url.Values{"uid": {uid}, "token": {token}})
	if err != nil {
		return nil, err
	}

	return &SignedToken{
		UID:       uid,
		Token:     token,
		Link:      link,
		ExpiresAt: s.now().Add(s.maxAge),
	}, nil
}

// RedeemSigned activates the account named by uid when token verifies for it.
func (s *SignedService) RedeemSigned(ctx context.Context, uid, token, credential string) (*Result, error) {
	ctx, span := s.tracer.Start(ctx, "invites.SignedService.RedeemSigned")
	defer span.End()

	claim, err := s.decode(uid, token)
	if err != nil {
		return nil, err
	}

	user, err := s.getUser(ctx, claim.UserID)
	if errors.Is(err, ErrUserNotFound) {
		return nil, ErrInvalidToken
	}
	if err != nil {
		return nil, err
	}

	if user.Active {
		return nil, ErrAlreadyActive
	}

	if user.CredentialVersion != claim.Version {
		return nil, ErrInvalidToken
	}

	hash, err := s.activator.HashCredential(credential)
	if err != nil {
		return nil, err
	}

	err = s.tx.WithTx(ctx, func(ctx context.Context) error {
		return s.activator.Activate(ctx, user.ID, hash, &claim.Version)
	})
	if err != nil {
		return nil, err
	}

	return &Result{UserID: user.ID, Mechanism: MechanismSigned}, nil
}

// Redeem accepts the uid and token of a signed link joined as "uid/token".
func (s *SignedService) Redeem(ctx context.Context, token, credential string) (*Result, error) {
	uid, signed, ok := strings.Cut(token, "/")
	if !ok || uid == "" || signed == "" {
		return nil, ErrInvalidToken
	}

	return s.RedeemSigned(ctx, uid, signed, credential)
}

func (s *SignedService) decode(uid, token string) (*signedClaim, error) {
	raw, err := base64.RawURLEncoding.DecodeString(uid)
	if err != nil {
		return nil, ErrInvalidToken
	}

	claim := new(signedClaim)
	if err := s.codec.Decode(signedTokenName, token, claim); err != nil {
		if scErr, ok := err.(securecookie.Error); ok && !scErr.IsDecode() {
			s.logger.Warnf("activation token codec failure: %v", err)
		}
		return nil, ErrInvalidToken
	}

	if claim.UserID != string(raw) {
		return nil, ErrInvalidToken
	}

	return claim, nil
}

func (s *SignedService) getUser(ctx context.Context, userID string) (*types.User, error) {
	user, err := s.storage.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return user, nil
}

// NewSignedService builds the legacy adapter. hashKey signs the token, a non empty
// blockKey additionally encrypts it and must be 16, 24 or 32 bytes long.
func NewSignedService(
	storage UserStorageInterface,
	activator ActivatorInterface,
	tx TxInterface,
	hashKey, blockKey []byte,
	maxAge time.Duration,
	baseURL string,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *SignedService {
	if len(blockKey) == 0 {
		blockKey = nil
	}

	codec := securecookie.New(hashKey, blockKey).
		MaxAge(int(maxAge.Seconds())).
		SetSerializer(securecookie.JSONEncoder{})

	return &SignedService{
		storage:   storage,
		activator: activator,
		tx:        tx,
		codec:     codec,
		maxAge:    maxAge,
		baseURL:   baseURL,
		now:       time.Now,
		tracer:    tracer,
		monitor:   monitor,
		logger:    logger,
	}
}
