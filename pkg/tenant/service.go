// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package tenant

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/canonical/org-access-service/internal/authorization"
	"github.com/canonical/org-access-service/internal/logging"
	"github.com/canonical/org-access-service/internal/monitoring"
	"github.com/canonical/org-access-service/internal/storage"
	"github.com/canonical/org-access-service/internal/tracing"
	"github.com/canonical/org-access-service/internal/types"
	"github.com/canonical/org-access-service/pkg/activity"
	"github.com/canonical/org-access-service/pkg/authentication"
	"github.com/canonical/org-access-service/pkg/orgunit"
)

type Service struct {
	storage  StorageInterface
	authz    AuthzInterface
	identity IdentityInterface
	invites  InvitesInterface
	tx       TxInterface
	activity ActivityInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

// NewService wires the tenant store. identity may be nil, accounts are then created with
// locally generated ids.
func NewService(
	storage StorageInterface,
	authz AuthzInterface,
	identity IdentityInterface,
	invites InvitesInterface,
	tx TxInterface,
	recorder ActivityInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Service {
	return &Service{
		storage:  storage,
		authz:    authz,
		identity: identity,
		invites:  invites,
		tx:       tx,
		activity: recorder,
		tracer:   tracer,
		monitor:  monitor,
		logger:   logger,
	}
}

func (s *Service) CreateTenant(ctx context.Context, name string) (*types.Tenant, error) {
	ctx, span := s.tracer.Start(ctx, "tenant.Service.CreateTenant")
	defer span.End()

	name, err := orgunit.NormalizeName(name)
	if err != nil {
		return nil, ErrInvalidName
	}

	var created *types.Tenant

	err = s.tx.WithTx(ctx, func(ctx context.Context) error {
		t, err := s.storage.CreateTenant(ctx, &types.Tenant{Name: name, Enabled: true})
		if err != nil {
			return fmt.Errorf("failed to create tenant: %w", err)
		}

		// privileged admins administer every tenant through this link
		if err := s.authz.LinkTenantToPrivileged(ctx, t.ID, authorization.GlobalPrivilegedGroup); err != nil {
			return fmt.Errorf("failed to link tenant: %w", err)
		}

		created = t

		return s.activity.Record(ctx, t.ID, activity.VerbTenantCreated, map[string]any{"name": name})
	})
	if err != nil {
		return nil, err
	}

	return created, nil
}

func (s *Service) GetTenant(ctx context.Context, id string) (*types.Tenant, error) {
	ctx, span := s.tracer.Start(ctx, "tenant.Service.GetTenant")
	defer span.End()

	t, err := s.storage.GetTenantByID(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, ErrTenantNotFound
		}
		return nil, err
	}

	return t, nil
}

// UpdateTenant applies the fields named in paths, name and enabled are the only mutable ones.
func (s *Service) UpdateTenant(ctx context.Context, tenant *types.Tenant, paths []string) (*types.Tenant, error) {
	ctx, span := s.tracer.Start(ctx, "tenant.Service.UpdateTenant")
	defer span.End()

	for _, p := range paths {
		if p != "name" {
			continue
		}

		name, err := orgunit.NormalizeName(tenant.Name)
		if err != nil {
			return nil, ErrInvalidName
		}
		tenant.Name = name
	}

	var updated *types.Tenant

	err := s.tx.WithTx(ctx, func(ctx context.Context) error {
		if err := s.storage.UpdateTenant(ctx, tenant, paths); err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				return ErrTenantNotFound
			}
			return fmt.Errorf("failed to update tenant: %w", err)
		}

		t, err := s.storage.GetTenantByID(ctx, tenant.ID)
		if err != nil {
			return fmt.Errorf("failed to get updated tenant: %w", err)
		}
		updated = t

		return s.activity.Record(ctx, t.ID, activity.VerbTenantUpdated, map[string]any{"paths": paths})
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}

func (s *Service) ListTenants(ctx context.Context) ([]*types.Tenant, error) {
	ctx, span := s.tracer.Start(ctx, "tenant.Service.ListTenants")
	defer span.End()

	tenants, err := s.storage.ListTenants(ctx)
	if err != nil {
		return nil, err
	}

	return tenants, nil
}

func (s *Service) ListUserTenants(ctx context.Context, userID string) ([]*types.Tenant, error) {
	ctx, span := s.tracer.Start(ctx, "tenant.Service.ListUserTenants")
	defer span.End()

	tenants, err := s.storage.ListTenantsByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list tenants for user: %w", err)
	}

	return tenants, nil
}

func (s *Service) AddMember(ctx context.Context, tenantID, userID, role string) (*types.Membership, error) {
	ctx, span := s.tracer.Start(ctx, "tenant.Service.AddMember")
	defer span.End()

	if !validRole(role) {
		return nil, ErrInvalidRole
	}

	var m *types.Membership

	err := s.tx.WithTx(ctx, func(ctx context.Context) error {
		if _, err := s.GetTenant(ctx, tenantID); err != nil {
			return err
		}

		var err error
		m, err = s.addMember(ctx, tenantID, userID, role)
		return err
	})
	if err != nil {
		return nil, err
	}

	return m, nil
}

func (s *Service) addMember(ctx context.Context, tenantID, userID, role string) (*types.Membership, error) {
	id, err := s.storage.AddMember(ctx, tenantID, userID, role)
	switch {
	case errors.Is(err, storage.ErrDuplicateKey):
		return nil, ErrAlreadyMember
	case errors.Is(err, storage.ErrForeignKeyViolation):
		return nil, ErrUserNotFound
	case err != nil:
		return nil, err
	}

	if err := s.authz.AssignTenantRole(ctx, tenantID, userID, role); err != nil {
		return nil, fmt.Errorf("failed to assign role in authz: %w", err)
	}

	if err := s.activity.Record(ctx, tenantID, activity.VerbMemberAdded, map[string]any{"user_id": userID, "role": role}); err != nil {
		return nil, err
	}

	return &types.Membership{ID: id, TenantID: tenantID, UserID: userID, Role: role}, nil
}

// UpdateMemberRole swaps the member's role, the new relation is written before the old
// one is removed.
func (s *Service) UpdateMemberRole(ctx context.Context, tenantID, userID, role string) (*types.Membership, error) {
	ctx, span := s.tracer.Start(ctx, "tenant.Service.UpdateMemberRole")
	defer span.End()

	if !validRole(role) {
		return nil, ErrInvalidRole
	}

	var m *types.Membership

	err := s.tx.WithTx(ctx, func(ctx context.Context) error {
		var err error
		m, err = s.membership(ctx, tenantID, userID)
		if err != nil {
			return err
		}

		if m.Role == role {
			return nil
		}

		previous := m.Role

		if err := s.storage.UpdateMember(ctx, tenantID, userID, role); err != nil {
			return err
		}

		if err := s.authz.AssignTenantRole(ctx, tenantID, userID, role); err != nil {
			return fmt.Errorf("failed to assign role in authz: %w", err)
		}

		if err := s.authz.RemoveTenantRole(ctx, tenantID, userID, previous); err != nil {
			s.logger.Errorf("failed to remove old %s relation of %s: %v", previous, userID, err)
		}

		m.Role = role

		return s.activity.Record(ctx, tenantID, activity.VerbMemberUpdated, map[string]any{
			"user_id":  userID,
			"role":     role,
			"previous": previous,
		})
	})
	if err != nil {
		return nil, err
	}

	return m, nil
}

// RemoveMember ends the membership. Grants go with it and live invites into the tenant
// are revoked.
func (s *Service) RemoveMember(ctx context.Context, tenantID, userID string) error {
	ctx, span := s.tracer.Start(ctx, "tenant.Service.RemoveMember")
	defer span.End()

	return s.tx.WithTx(ctx, func(ctx context.Context) error {
		m, err := s.membership(ctx, tenantID, userID)
		if err != nil {
			return err
		}

		revoked, err := s.storage.RevokeLiveInvites(ctx, userID, &tenantID)
		if err != nil {
			return err
		}

		if err := s.storage.RemoveMember(ctx, tenantID, userID); err != nil {
			return err
		}

		if err := s.authz.RemoveTenantRole(ctx, tenantID, userID, m.Role); err != nil {
			return fmt.Errorf("failed to remove role in authz: %w", err)
		}

		return s.activity.Record(ctx, tenantID, activity.VerbMemberRemoved, map[string]any{
			"user_id":         userID,
			"revoked_invites": revoked,
		})
	})
}

func (s *Service) ListMembers(ctx context.Context, tenantID string) ([]*types.TenantUser, error) {
	ctx, span := s.tracer.Start(ctx, "tenant.Service.ListMembers")
	defer span.End()

	users, err := s.storage.ListTenantUsers(ctx, tenantID)
	if err != nil {
		return nil, err
	}

	return users, nil
}

func (s *Service) IsMember(ctx context.Context, tenantID, userID string) (bool, error) {
	ctx, span := s.tracer.Start(ctx, "tenant.Service.IsMember")
	defer span.End()

	_, err := s.membership(ctx, tenantID, userID)
	switch {
	case errors.Is(err, ErrNotAMember):
		return false, nil
	case err != nil:
		return false, err
	default:
		return true, nil
	}
}

// IsTenantAdmin reports whether the user holds the admin role in the tenant or
// can manage it through OpenFGA, which covers admins of the privileged group the
// tenant is linked to.
func (s *Service) IsTenantAdmin(ctx context.Context, tenantID, userID string) (bool, error) {
	ctx, span := s.tracer.Start(ctx, "tenant.Service.IsTenantAdmin")
	defer span.End()

	m, err := s.membership(ctx, tenantID, userID)
	if err == nil && m.Role == types.RoleAdmin {
		return true, nil
	}
	if err != nil && !errors.Is(err, ErrNotAMember) {
		return false, err
	}

	ok, err := s.authz.CheckTenantAccess(ctx, tenantID, userID, authorization.CAN_MANAGE_PERMISSION)
	if err != nil {
		return false, fmt.Errorf("failed to check tenant access: %w", err)
	}

	return ok, nil
}

// InviteMember enrolls an e-mail address into the tenant and issues an activation invite.
// The account and membership are created when missing, an existing member keeps its
// role.
func (s *Service) InviteMember(ctx context.Context, tenantID, email, role string) (*Invitation, error) {
	ctx, span := s.tracer.Start(ctx, "tenant.Service.InviteMember")
	defer span.End()

	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || !strings.Contains(email, "@") {
		return nil, ErrInvalidEmail
	}
	if !validRole(role) {
		return nil, ErrInvalidRole
	}

	var creator *string
	if id, ok := authentication.GetUserID(ctx); ok {
		creator = &id
	}

	result := new(Invitation)

	err := s.tx.WithTx(ctx, func(ctx context.Context) error {
		if _, err := s.GetTenant(ctx, tenantID); err != nil {
			return err
		}

		user, created, err := s.ensureUser(ctx, email)
		if err != nil {
			return err
		}
		result.UserID = user.ID
		result.NewUser = created

		_, err = s.membership(ctx, tenantID, user.ID)
		switch {
		case errors.Is(err, ErrNotAMember):
			if _, err := s.addMember(ctx, tenantID, user.ID, role); err != nil {
				return err
			}
			result.Enrolled = true
		case err != nil:
			return err
		}

		result.Invite, err = s.invites.Issue(ctx, user.ID, tenantID, creator)
		return err
	})
	if err != nil {
		return nil, err
	}

	link, err := s.invites.Notify(ctx, result.Invite)
	if err != nil {
		s.logger.Errorf("failed to deliver invite %s: %v", result.Invite.ID, err)
		return result, nil
	}
	result.Link = link

	return result, nil
}

// ensureUser returns the account for email, creating it pending when missing. With an
// identity provider configured the account shares the provider's identity id.
func (s *Service) ensureUser(ctx context.Context, email string) (*types.User, bool, error) {
	user, err := s.storage.GetUserByEmail(ctx, email)
	if err == nil {
		return user, false, nil
	}
	if !errors.Is(err, storage.ErrNotFound) {
		return nil, false, fmt.Errorf("failed to get user: %w", err)
	}

	u := &types.User{Email: email}

	if s.identity != nil {
		id, err := s.identity.GetIdentityIDByEmail(ctx, email)
		if err != nil {
			return nil, false, fmt.Errorf("failed to check identity: %w", err)
		}

		if id == "" {
			s.logger.Infof("creating identity for %s", email)
			if id, err = s.identity.CreateIdentity(ctx, email); err != nil {
				return nil, false, fmt.Errorf("failed to provision identity: %w", err)
			}
		}

		u.ID = id
	}

	user, err = s.storage.CreateUser(ctx, u)
	if err != nil {
		return nil, false, fmt.Errorf("failed to create user: %w", err)
	}

	return user, true, nil
}

func (s *Service) membership(ctx context.Context, tenantID, userID string) (*types.Membership, error) {
	m, err := s.storage.GetMembership(ctx, tenantID, userID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, ErrNotAMember
		}
		return nil, fmt.Errorf("failed to get membership: %w", err)
	}

	return m, nil
}
