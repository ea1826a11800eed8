// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package kratos

import (
	"context"
	"fmt"
	"net/http"

	ory "github.com/ory/client-go"

	"github.com/canonical/org-access-service/internal/logging"
	"github.com/canonical/org-access-service/internal/monitoring"
	"github.com/canonical/org-access-service/internal/tracing"
)

const identitySchema = "default"

// Client provisions identities through the Kratos admin API so an invited account shares
// its id with the identity it will log in as.
type Client struct {
	client  *ory.APIClient
	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewClient(kratosAdminURL string, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Client {
	conf := ory.NewConfiguration()
	conf.Servers = ory.ServerConfigurations{{URL: kratosAdminURL}}
	return &Client{
		client:  ory.NewAPIClient(conf),
		tracer:  tracer,
		monitor: monitor,
		logger:  logger,
	}
}

// GetIdentityIDByEmail returns an empty id when no identity uses the address.
func (c *Client) GetIdentityIDByEmail(ctx context.Context, email string) (string, error) {
	ctx, span := c.tracer.Start(ctx, "kratos.GetIdentityIDByEmail")
	defer span.End()

	// empty page token works around https://github.com/ory/sdk/issues/461
	ids, r, err := c.client.IdentityAPI.ListIdentities(ctx).CredentialsIdentifier(email).PageToken("").Execute()
	if err != nil {
		if r != nil && r.StatusCode == http.StatusNotFound {
			return "", nil
		}
		c.setAvailability(0)
		return "", fmt.Errorf("failed to list identities: %w", err)
	}
	c.setAvailability(1)

	if len(ids) == 0 {
		return "", nil
	}

	return ids[0].Id, nil
}

func (c *Client) CreateIdentity(ctx context.Context, email string) (string, error) {
	ctx, span := c.tracer.Start(ctx, "kratos.CreateIdentity")
	defer span.End()

	body := ory.CreateIdentityBody{
		SchemaId: identitySchema,
		Traits:   map[string]interface{}{"email": email},
	}

	identity, _, err := c.client.IdentityAPI.CreateIdentity(ctx).CreateIdentityBody(body).Execute()
	if err != nil {
		return "", fmt.Errorf("failed to create identity: %w", err)
	}

	return identity.Id, nil
}

func (c *Client) setAvailability(v float64) {
	if err := c.monitor.SetDependencyAvailability(map[string]string{"component": "kratos"}, v); err != nil {
		c.logger.Debugf("failed to record kratos availability: %v", err)
	}
}
