// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package seed

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/canonical/org-access-service/internal/authorization"
	"github.com/canonical/org-access-service/internal/logging"
	"github.com/canonical/org-access-service/internal/monitoring"
	"github.com/canonical/org-access-service/internal/storage"
	"github.com/canonical/org-access-service/internal/tracing"
	"github.com/canonical/org-access-service/internal/types"
	"github.com/canonical/org-access-service/pkg/access"
	"github.com/canonical/org-access-service/pkg/orgunit"
)

var (
	ErrUnknownMember = errors.New("member is not declared in users")
	ErrUnknownUnit   = errors.New("grant references an unknown unit code")
)

// Parse decodes a seed document, unknown keys are rejected.
func Parse(r io.Reader) (*File, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	f := new(File)
	if err := dec.Decode(f); err != nil {
		return nil, fmt.Errorf("invalid seed file: %w", err)
	}

	return f, nil
}

type Seeder struct {
	users   UsersInterface
	tenants TenantsInterface
	units   UnitsInterface
	grants  GrantsInterface
	admins  AdminsInterface
	tx      TxInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

// Apply creates everything declared in f in a single transaction. Users that already
// exist are reused, tenants are always created.
func (s *Seeder) Apply(ctx context.Context, f *File) (*Report, error) {
	ctx, span := s.tracer.Start(ctx, "seed.Seeder.Apply")
	defer span.End()

	report := new(Report)
	err := s.tx.WithTx(ctx, func(ctx context.Context) error {
		byEmail := make(map[string]string, len(f.Users))
		for _, u := range f.Users {
			id, created, err := s.ensureUser(ctx, u)
			if err != nil {
				return err
			}
			if created {
				report.Users++
			}
			byEmail[strings.ToLower(u.Email)] = id
		}

		for _, t := range f.Tenants {
			if err := s.applyTenant(ctx, t, byEmail, report); err != nil {
				return fmt.Errorf("tenant %q: %w", t.Name, err)
			}
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	for _, userID := range f.PrivilegedAdmins {
		if err := s.admins.AssignPrivilegedAdmin(ctx, authorization.GlobalPrivilegedGroup, userID); err != nil {
			return report, fmt.Errorf("failed to assign privileged admin %s: %w", userID, err)
		}
	}

	return report, nil
}

func (s *Seeder) ensureUser(ctx context.Context, u User) (string, bool, error) {
	created, err := s.users.CreateUser(ctx, &types.User{ID: u.ID, Email: u.Email, Active: u.Active})
	if err == nil {
		return created.ID, true, nil
	}
	if !errors.Is(err, storage.ErrDuplicateKey) {
		return "", false, fmt.Errorf("failed to create user %s: %w", u.Email, err)
	}

	existing, err := s.users.GetUserByEmail(ctx, u.Email)
	if err != nil {
		return "", false, fmt.Errorf("failed to look up user %s: %w", u.Email, err)
	}

	s.logger.Debugf("user %s already exists", u.Email)
	return existing.ID, false, nil
}

func (s *Seeder) applyTenant(ctx context.Context, t Tenant, users map[string]string, report *Report) error {
	tenant, err := s.tenants.CreateTenant(ctx, t.Name)
	if err != nil {
		return err
	}
	report.Tenants++

	codes := make(map[string]string)
	if err := s.createUnits(ctx, tenant.ID, nil, t.Units, codes, report); err != nil {
		return err
	}

	for _, m := range t.Members {
		userID, ok := users[strings.ToLower(m.Email)]
		if !ok {
			return fmt.Errorf("%w: %s", ErrUnknownMember, m.Email)
		}

		role := m.Role
		if role == "" {
			role = types.RoleMember
		}
		if _, err := s.tenants.AddMember(ctx, tenant.ID, userID, role); err != nil {
			return fmt.Errorf("failed to add member %s: %w", m.Email, err)
		}
		report.Members++

		if len(m.Grants) == 0 {
			continue
		}

		set := make(map[string]access.Permission, len(m.Grants))
		for code, level := range m.Grants {
			key, _ := orgunit.NormalizeCode(code)
			unitID, ok := codes[key]
			if !ok {
				return fmt.Errorf("%w: %s", ErrUnknownUnit, code)
			}
			p, err := access.ParsePermission(level)
			if err != nil {
				return err
			}
			set[unitID] = p
		}

		n, err := s.grants.ReplaceGrants(ctx, userID, tenant.ID, set)
		if err != nil {
			return fmt.Errorf("failed to grant %s: %w", m.Email, err)
		}
		report.Grants += n
	}

	s.logger.Infof("seeded tenant %s (%s)", t.Name, tenant.ID)
	return nil
}

func (s *Seeder) createUnits(ctx context.Context, tenantID string, parentID *string, units []Unit, codes map[string]string, report *Report) error {
	for _, u := range units {
		created, err := s.units.CreateUnit(ctx, tenantID, u.Name, u.Code, parentID)
		if err != nil {
			return fmt.Errorf("failed to create unit %s: %w", u.Code, err)
		}
		report.Units++
		codes[created.Code] = created.ID

		if err := s.createUnits(ctx, tenantID, &created.ID, u.Children, codes, report); err != nil {
			return err
		}
	}

	return nil
}

func NewSeeder(
	users UsersInterface,
	tenants TenantsInterface,
	units UnitsInterface,
	grants GrantsInterface,
	admins AdminsInterface,
	tx TxInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Seeder {
	s := new(Seeder)
	s.users = users
	s.tenants = tenants
	s.units = units
	s.grants = grants
	s.admins = admins
	s.tx = tx
	s.tracer = tracer
	s.monitor = monitor
	s.logger = logger

	return s
}
