// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package access

import (
	"context"
	"fmt"

	"github.com/canonical/org-access-service/internal/logging"
	"github.com/canonical/org-access-service/internal/monitoring"
	"github.com/canonical/org-access-service/internal/tracing"
	"github.com/canonical/org-access-service/pkg/orgunit"
)

// UnitAccess is one row of a user's access state, in tree order.
type UnitAccess struct {
	UnitID     string     `json:"unit_id"`
	Code       string     `json:"code"`
	Name       string     `json:"name"`
	FullPath   string     `json:"full_path"`
	Level      int        `json:"level"`
	Permission Permission `json:"permission"`
	Direct     bool       `json:"direct"`
}

// Service answers access questions for one user in one tenant. Callers check tenant
// administrators before asking, everyone reaching the service is resolved from grants.
type Service struct {
	tree   TreeInterface
	grants GrantsInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (s *Service) ResolveAccess(ctx context.Context, userID, tenantID string) (Map, error) {
	ctx, span := s.tracer.Start(ctx, "access.Service.ResolveAccess")
	defer span.End()

	m, _, _, err := s.resolve(ctx, userID, tenantID)
	return m, err
}

func (s *Service) AccessibleUnitIDs(ctx context.Context, userID, tenantID string) ([]string, error) {
	ctx, span := s.tracer.Start(ctx, "access.Service.AccessibleUnitIDs")
	defer span.End()

	m, _, _, err := s.resolve(ctx, userID, tenantID)
	if err != nil {
		return nil, err
	}

	return m.UnitIDs(), nil
}

func (s *Service) CanView(ctx context.Context, userID, tenantID string, rec Record) (bool, error) {
	ctx, span := s.tracer.Start(ctx, "access.Service.CanView")
	defer span.End()

	m, _, _, err := s.resolve(ctx, userID, tenantID)
	if err != nil {
		return false, err
	}

	return m.CanView(userID, rec), nil
}

func (s *Service) CanEdit(ctx context.Context, userID, tenantID string, rec Record) (bool, error) {
	ctx, span := s.tracer.Start(ctx, "access.Service.CanEdit")
	defer span.End()

	m, _, _, err := s.resolve(ctx, userID, tenantID)
	if err != nil {
		return false, err
	}

	return m.CanEdit(userID, rec), nil
}

// AccessState lists every unit the user can reach, flagging the directly granted ones.
func (s *Service) AccessState(ctx context.Context, userID, tenantID string) ([]*UnitAccess, error) {
	ctx, span := s.tracer.Start(ctx, "access.Service.AccessState")
	defer span.End()

	m, f, direct, err := s.resolve(ctx, userID, tenantID)
	if err != nil {
		return nil, err
	}

	out := make([]*UnitAccess, 0, len(m))
	for _, root := range f.Roots() {
		for _, id := range f.Subtree(root) {
			p, ok := m[id]
			if !ok {
				continue
			}
			u, _ := f.Unit(id)
			_, isDirect := direct[id]
			out = append(out, &UnitAccess{
				UnitID:     id,
				Code:       u.Code,
				Name:       u.Name,
				FullPath:   f.FullPath(id),
				Level:      f.Level(id),
				Permission: p,
				Direct:     isDirect,
			})
		}
	}

	return out, nil
}

func (s *Service) resolve(ctx context.Context, userID, tenantID string) (Map, *orgunit.Forest, map[string]Permission, error) {
	direct, err := s.grants.DirectGrantsFor(ctx, userID, tenantID)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to read grants: %w", err)
	}

	f, err := s.tree.LoadForest(ctx, tenantID)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to load tree: %w", err)
	}

	return Resolve(f, direct), f, direct, nil
}

func NewService(tree TreeInterface, grants GrantsInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Service {
	return &Service{
		tree:    tree,
		grants:  grants,
		tracer:  tracer,
		monitor: monitor,
		logger:  logger,
	}
}
