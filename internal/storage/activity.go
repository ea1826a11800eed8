// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"encoding/json"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/canonical/org-access-service/internal/types"
)

func (s *Storage) CreateActivityEvent(ctx context.Context, e *types.ActivityEvent) error {
	ctx, span := s.tracer.Start(ctx, "storage.CreateActivityEvent")
	defer span.End()

	id, err := uuid.NewV7()
	if err != nil {
		return fmt.Errorf("failed to generate event ID: %w", err)
	}

	meta := e.Meta
	if meta == nil {
		meta = map[string]any{}
	}

	raw, err := json.Marshal(meta)
	if err != nil {
		return fmt.Errorf("failed to encode event meta: %w", err)
	}

	_, err = s.db.Statement(ctx).
		Insert("activity_events").
		Columns("id", "tenant_id", "actor_id", "verb", "meta").
		Values(id.String(), e.TenantID, e.ActorID, e.Verb, string(raw)).
		ExecContext(ctx)

	if err != nil {
		return classify(err, "insert activity event")
	}

	return nil
}

func (s *Storage) ListActivityEvents(ctx context.Context, tenantID string, offset, limit uint64) ([]*types.ActivityEvent, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListActivityEvents")
	defer span.End()

	rows, err := s.db.Statement(ctx).
		Select("id", "tenant_id", "actor_id", "verb", "meta", "created_at").
		From("activity_events").
		Where(sq.Eq{"tenant_id": tenantID}).
		OrderBy("created_at DESC").
		Offset(offset).
		Limit(limit).
		QueryContext(ctx)

	if err != nil {
		return nil, fmt.Errorf("failed to list activity events: %w", err)
	}
	defer rows.Close()

	var events []*types.ActivityEvent
	for rows.Next() {
		var (
			e   types.ActivityEvent
			raw []byte
		)
		if err := rows.Scan(&e.ID, &e.TenantID, &e.ActorID, &e.Verb, &raw, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan activity event: %w", err)
		}
		if len(raw) > 0 {
			if err := json.Unmarshal(raw, &e.Meta); err != nil {
				return nil, fmt.Errorf("failed to decode event meta: %w", err)
			}
		}
		events = append(events, &e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return events, nil
}
