// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package openfga

import (
	"context"
	"fmt"
	"net/http"
	"reflect"

	fga "github.com/openfga/go-sdk"
	"github.com/openfga/go-sdk/client"
	"github.com/openfga/go-sdk/credentials"

	"github.com/canonical/org-access-service/internal/logging"
	"github.com/canonical/org-access-service/internal/monitoring"
	"github.com/canonical/org-access-service/internal/tracing"
)

type Client struct {
	c *client.OpenFgaClient

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (c *Client) ListObjects(ctx context.Context, user, relation, objectType string) ([]string, error) {
	ctx, span := c.tracer.Start(ctx, "openfga.Client.ListObjects")
	defer span.End()

	r, err := c.c.ListObjects(ctx).Body(
		client.ClientListObjectsRequest{
			User:     user,
			Relation: relation,
			Type:     objectType,
		},
	).Execute()

	if err != nil {
		c.logger.Errorf("issues performing list operation: %s", err)
		return nil, err
	}

	return r.GetObjects(), nil
}

func (c *Client) Check(ctx context.Context, user, relation, object string, contextualTuples ...Tuple) (bool, error) {
	ctx, span := c.tracer.Start(ctx, "openfga.Client.Check")
	defer span.End()

	body := client.ClientCheckRequest{
		User:     user,
		Relation: relation,
		Object:   object,
	}

	if len(contextualTuples) > 0 {
		body.ContextualTuples = contextualKeys(contextualTuples)
	}

	r, err := c.c.Check(ctx).Body(body).Execute()
	if err != nil {
		c.logger.Errorf("issues performing check operation: %s", err)
		return false, err
	}

	return r.GetAllowed(), nil
}

// BatchCheck returns true only if every tuple is allowed
func (c *Client) BatchCheck(ctx context.Context, tuples ...TupleWithContext) (bool, error) {
	ctx, span := c.tracer.Start(ctx, "openfga.Client.BatchCheck")
	defer span.End()

	for _, t := range tuples {
		allowed, err := c.Check(ctx, t.User, t.Relation, t.Object, t.ContextualTuples...)
		if err != nil {
			return false, err
		}

		if !allowed {
			return false, nil
		}
	}

	return true, nil
}

func (c *Client) ReadModel(ctx context.Context) (*fga.AuthorizationModel, error) {
	ctx, span := c.tracer.Start(ctx, "openfga.Client.ReadModel")
	defer span.End()

	authModel, err := c.c.ReadAuthorizationModel(ctx).Execute()
	if err != nil {
		c.logger.Errorf("issues performing read model operation: %s", err)
		return nil, err
	}

	model := authModel.GetAuthorizationModel()

	return &model, nil
}

func (c *Client) CompareModel(ctx context.Context, model fga.AuthorizationModel) (bool, error) {
	ctx, span := c.tracer.Start(ctx, "openfga.Client.CompareModel")
	defer span.End()

	authzModel, err := c.ReadModel(ctx)
	if err != nil {
		return false, err
	}

	if authzModel.SchemaVersion != model.SchemaVersion {
		c.logger.Errorf("invalid authorization model schema version")
		return false, nil
	}

	if !reflect.DeepEqual(authzModel.TypeDefinitions, model.TypeDefinitions) {
		c.logger.Errorf("invalid authorization model type definitions")
		return false, nil
	}

	return true, nil
}

func (c *Client) ReadTuples(ctx context.Context, user, relation, object, continuationToken string) (*client.ClientReadResponse, error) {
	ctx, span := c.tracer.Start(ctx, "openfga.Client.ReadTuples")
	defer span.End()

	body := client.ClientReadRequest{}
	if user != "" {
		body.User = &user
	}
	if relation != "" {
		body.Relation = &relation
	}
	if object != "" {
		body.Object = &object
	}

	options := client.ClientReadOptions{}
	if continuationToken != "" {
		options.ContinuationToken = &continuationToken
	}

	r, err := c.c.Read(ctx).Body(body).Options(options).Execute()
	if err != nil {
		c.logger.Errorf("issues performing read operation: %s", err)
		return nil, err
	}

	return r, nil
}

func (c *Client) WriteTuple(ctx context.Context, user, relation, object string) error {
	ctx, span := c.tracer.Start(ctx, "openfga.Client.WriteTuple")
	defer span.End()

	_, err := c.c.WriteTuples(ctx).Body(
		client.ClientWriteTuplesBody{
			{User: user, Relation: relation, Object: object},
		},
	).Execute()

	if err != nil {
		c.logger.Errorf("issues performing write operation: %s", err)
	}

	return err
}

func (c *Client) DeleteTuple(ctx context.Context, user, relation, object string) error {
	ctx, span := c.tracer.Start(ctx, "openfga.Client.DeleteTuple")
	defer span.End()

	return c.DeleteTuples(ctx, *NewTuple(user, relation, object))
}

func (c *Client) DeleteTuples(ctx context.Context, tuples ...Tuple) error {
	ctx, span := c.tracer.Start(ctx, "openfga.Client.DeleteTuples")
	defer span.End()

	if len(tuples) == 0 {
		return nil
	}

	body := make(client.ClientDeleteTuplesBody, 0, len(tuples))
	for _, t := range tuples {
		body = append(body, client.ClientTupleKeyWithoutCondition{User: t.User, Relation: t.Relation, Object: t.Object})
	}

	_, err := c.c.DeleteTuples(ctx).Body(body).Execute()
	if err != nil {
		c.logger.Errorf("issues performing delete operation: %s", err)
	}

	return err
}

func (c *Client) CreateStore(ctx context.Context, name string) (string, error) {
	ctx, span := c.tracer.Start(ctx, "openfga.Client.CreateStore")
	defer span.End()

	r, err := c.c.CreateStore(ctx).Body(client.ClientCreateStoreRequest{Name: name}).Execute()
	if err != nil {
		return "", err
	}

	return r.GetId(), nil
}

func (c *Client) SetStoreID(ctx context.Context, storeID string) {
	if err := c.c.SetStoreId(storeID); err != nil {
		c.logger.Errorf("failed to set store id: %s", err)
	}
}

func (c *Client) WriteModel(ctx context.Context, model *client.ClientWriteAuthorizationModelRequest) (string, error) {
	ctx, span := c.tracer.Start(ctx, "openfga.Client.WriteModel")
	defer span.End()

	r, err := c.c.WriteAuthorizationModel(ctx).Body(*model).Execute()
	if err != nil {
		return "", err
	}

	return r.GetAuthorizationModelId(), nil
}

func NewClient(cfg *Config) *Client {
	c := new(Client)

	c.tracer = cfg.Tracer
	c.monitor = cfg.Monitor
	c.logger = cfg.Logger

	fgaConfig := &client.ClientConfiguration{
		ApiUrl:               fmt.Sprintf("%s://%s", cfg.ApiScheme, cfg.ApiHost),
		StoreId:              cfg.StoreID,
		AuthorizationModelId: cfg.AuthModelID,
		Debug:                cfg.Debug,
		HTTPClient:           &http.Client{Transport: http.DefaultTransport},
		Credentials: &credentials.Credentials{
			Method: credentials.CredentialsMethodApiToken,
			Config: &credentials.Config{
				ApiToken: cfg.ApiToken,
			},
		},
	}

	fgaClient, err := client.NewSdkClient(fgaConfig)
	if err != nil {
		c.logger.Fatalf("issues setting up openfga client: %s", err)
	}

	c.c = fgaClient

	return c
}
