// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/coreos/go-oidc/v3/oidc"
	"github.com/spf13/cobra"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/clientcredentials"
)

var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Get an access token for the API using the client credentials flow",
	Long: `Get an access token using the OAuth2 client credentials flow.
The printed token can be passed to the client commands with --token or ORG_ACCESS_TOKEN.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		f := cmd.Flags()
		clientID, _ := f.GetString("client-id")
		clientSecret, _ := f.GetString("client-secret")
		tokenURL, _ := f.GetString("token-url")
		issuerURL, _ := f.GetString("issuer-url")
		scopes, _ := f.GetStringSlice("scopes")

		ctx := cmd.Context()
		if ctx == nil {
			ctx = context.Background()
		}

		token, err := clientCredentialsToken(ctx, clientID, clientSecret, tokenURL, issuerURL, scopes)
		if err != nil {
			return err
		}

		return printToken(cmd.OutOrStdout(), token)
	},
}

func init() {
	rootCmd.AddCommand(tokenCmd)

	tokenCmd.Flags().String("client-id", "", "Client ID")
	tokenCmd.Flags().String("client-secret", "", "Client Secret")
	tokenCmd.Flags().String("token-url", "", "Token URL")
	tokenCmd.Flags().String("issuer-url", "", "Issuer URL, the token URL is discovered when --token-url is not set")
	tokenCmd.Flags().StringSlice("scopes", []string{"org-access"}, "Scopes (comma-separated)")

	_ = tokenCmd.MarkFlagRequired("client-id")
	_ = tokenCmd.MarkFlagRequired("client-secret")
}

func clientCredentialsToken(ctx context.Context, clientID, clientSecret, tokenURL, issuerURL string, scopes []string) (*oauth2.Token, error) {
	if tokenURL == "" {
		if issuerURL == "" {
			return nil, errors.New("either --token-url or --issuer-url must be provided")
		}

		provider, err := oidc.NewProvider(ctx, issuerURL)
		if err != nil {
			return nil, fmt.Errorf("failed to discover issuer %s: %w", issuerURL, err)
		}
		tokenURL = provider.Endpoint().TokenURL
	}

	config := &clientcredentials.Config{
		ClientID:     clientID,
		ClientSecret: clientSecret,
		TokenURL:     tokenURL,
		Scopes:       scopes,
	}

	token, err := config.Token(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get token: %w", err)
	}

	return token, nil
}

func printToken(w io.Writer, token *oauth2.Token) error {
	if outputFormat != "json" {
		_, err := fmt.Fprintln(w, token.AccessToken)
		return err
	}

	out := struct {
		AccessToken string     `json:"access_token"`
		TokenType   string     `json:"token_type"`
		Expiry      *time.Time `json:"expiry,omitempty"`
	}{AccessToken: token.AccessToken, TokenType: token.Type()}
	if !token.Expiry.IsZero() {
		out.Expiry = &token.Expiry
	}

	return printJSON(w, out)
}
