// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/canonical/org-access-service/pkg/invites"
)

var invitesCmd = &cobra.Command{
	Use:   "invites",
	Short: "Issue, revoke and redeem activation invites",
}

func invitesPath(tenantID string, rest ...string) string {
	return "/api/v0/tenants/" + tenantID + "/invites" + strings.Join(append([]string{""}, rest...), "/")
}

var listInvitesCmd = &cobra.Command{
	Use:   "list [tenant-id]",
	Short: "List the invites of a tenant",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		page, _ := cmd.Flags().GetInt64("page")
		size, _ := cmd.Flags().GetInt64("size")

		q := url.Values{}
		q.Set("page", fmt.Sprint(page))
		q.Set("size", fmt.Sprint(size))

		var list []*invites.InviteView
		if err := newAPIClient().do(cmd.Context(), http.MethodGet, invitesPath(args[0])+"?"+q.Encode(), nil, &list); err != nil {
			return fmt.Errorf("failed to list invites: %w", err)
		}

		return printTable(cmd.OutOrStdout(), list, "ID\tUSER_ID\tSTATE\tCREATED_AT", func(w io.Writer) {
			for _, i := range list {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", i.ID, i.UserID, i.State, i.CreatedAt)
			}
		})
	},
}

var issueInviteCmd = &cobra.Command{
	Use:   "issue [tenant-id] [user-id]",
	Short: "Issue a fresh invite, superseding live ones",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		var out struct {
			ID   string `json:"id"`
			Link string `json:"link"`
		}
		if err := newAPIClient().do(cmd.Context(), http.MethodPost, invitesPath(args[0]), map[string]string{"user_id": args[1]}, &out); err != nil {
			return fmt.Errorf("failed to issue invite: %w", err)
		}

		cmd.Printf("Invite issued: %s\n", out.ID)
		if out.Link != "" {
			cmd.Printf("Activation link: %s\n", out.Link)
		}
		return nil
	},
}

var revokeInviteCmd = &cobra.Command{
	Use:   "revoke [tenant-id] [invite-id]",
	Short: "Revoke a live invite",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := newAPIClient().do(cmd.Context(), http.MethodDelete, invitesPath(args[0], args[1]), nil, nil); err != nil {
			return fmt.Errorf("failed to revoke invite: %w", err)
		}

		cmd.Printf("Invite revoked: %s\n", args[1])
		return nil
	},
}

var issueSignedCmd = &cobra.Command{
	Use:   "issue-signed [tenant-id] [user-id]",
	Short: "Issue a stateless signed activation link",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		var token invites.SignedToken
		path := "/api/v0/tenants/" + args[0] + "/users/" + args[1] + "/signed-invite"
		if err := newAPIClient().do(cmd.Context(), http.MethodPost, path, nil, &token); err != nil {
			return fmt.Errorf("failed to issue signed invite: %w", err)
		}

		if outputFormat == "json" {
			return printJSON(cmd.OutOrStdout(), token)
		}

		cmd.Printf("Activation link: %s\nExpires at: %s\n", token.Link, token.ExpiresAt)
		return nil
	},
}

// readCredential prompts without echo when stdin is a terminal.
func readCredential(cmd *cobra.Command) (string, error) {
	if c, _ := cmd.Flags().GetString("credential"); c != "" {
		return c, nil
	}

	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		raw, err := io.ReadAll(os.Stdin)
		return strings.TrimSpace(string(raw)), err
	}

	cmd.Print("New password: ")
	raw, err := term.ReadPassword(fd)
	cmd.Println()
	return string(raw), err
}

func printResult(cmd *cobra.Command, res *invites.Result) error {
	if outputFormat == "json" {
		return printJSON(cmd.OutOrStdout(), res)
	}

	cmd.Printf("Account %s activated (%s)\n", res.UserID, res.Mechanism)
	return nil
}

var redeemInviteCmd = &cobra.Command{
	Use:   "redeem [token]",
	Short: "Redeem a stored invite and set the account password",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		credential, err := readCredential(cmd)
		if err != nil {
			return err
		}

		var res invites.Result
		body := map[string]string{"token": args[0], "credential": credential}
		if err := newAPIClient().do(cmd.Context(), http.MethodPost, "/api/v0/invites/redeem", body, &res); err != nil {
			return fmt.Errorf("failed to redeem invite: %w", err)
		}

		return printResult(cmd, &res)
	},
}

var redeemSignedCmd = &cobra.Command{
	Use:   "redeem-signed [uid] [token]",
	Short: "Redeem a signed activation link and set the account password",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		credential, err := readCredential(cmd)
		if err != nil {
			return err
		}

		var res invites.Result
		body := map[string]string{"uid": args[0], "token": args[1], "credential": credential}
		if err := newAPIClient().do(cmd.Context(), http.MethodPost, "/api/v0/invites/redeem-signed", body, &res); err != nil {
			return fmt.Errorf("failed to redeem signed invite: %w", err)
		}

		return printResult(cmd, &res)
	},
}

func init() {
	rootCmd.AddCommand(invitesCmd)
	invitesCmd.AddCommand(listInvitesCmd)
	invitesCmd.AddCommand(issueInviteCmd)
	invitesCmd.AddCommand(revokeInviteCmd)
	invitesCmd.AddCommand(issueSignedCmd)
	invitesCmd.AddCommand(redeemInviteCmd)
	invitesCmd.AddCommand(redeemSignedCmd)

	listInvitesCmd.Flags().Int64("page", 1, "Page number")
	listInvitesCmd.Flags().Int64("size", 50, "Page size")

	for _, c := range []*cobra.Command{redeemInviteCmd, redeemSignedCmd} {
		c.Flags().String("credential", "", "New password, read from stdin when omitted")
	}
}
