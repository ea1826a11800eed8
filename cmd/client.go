// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"text/tabwriter"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"golang.org/x/oauth2"

	"github.com/canonical/org-access-service/internal/http/types"
	"github.com/canonical/org-access-service/internal/identity"
)

// apiClient talks to the JSON envelope served under /api/v0.
type apiClient struct {
	endpoint string
	userID   string
	http     *http.Client
}

func newAPIClient() *apiClient {
	endpoint := httpEndpoint
	if !strings.HasPrefix(endpoint, "http") {
		endpoint = "http://" + endpoint
	}

	transport := otelhttp.NewTransport(http.DefaultTransport)

	c := &http.Client{Transport: transport, Timeout: 30 * time.Second}
	if accessToken != "" {
		ctx := context.WithValue(context.Background(), oauth2.HTTPClient, &http.Client{Transport: transport})
		c = oauth2.NewClient(ctx, oauth2.StaticTokenSource(&oauth2.Token{AccessToken: accessToken, TokenType: "Bearer"}))
		c.Timeout = 30 * time.Second
	}

	return &apiClient{
		endpoint: strings.TrimSuffix(endpoint, "/"),
		userID:   userID,
		http:     c,
	}
}

// do sends body as JSON and decodes the data member of the envelope into out.
func (c *apiClient) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request: %w", err)
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.endpoint+path, reader)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.userID != "" {
		req.Header.Set(identity.HeaderName, c.userID)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	envelope := types.Response{Data: out}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("failed to decode response (status %d): %w", resp.StatusCode, err)
	}

	if resp.StatusCode >= 400 {
		if len(envelope.Errors) > 0 {
			return fmt.Errorf("api error (status %d): %s %v", resp.StatusCode, envelope.Message, envelope.Errors)
		}
		return fmt.Errorf("api error (status %d): %s", resp.StatusCode, envelope.Message)
	}

	return nil
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// printTable writes rows under header unless json output was requested, in which case v is printed.
func printTable(w io.Writer, v any, header string, rows func(w io.Writer)) error {
	if outputFormat == "json" {
		return printJSON(w, v)
	}

	tw := tabwriter.NewWriter(w, 0, 0, 3, ' ', 0)
	fmt.Fprintln(tw, header)
	rows(tw)
	return tw.Flush()
}
