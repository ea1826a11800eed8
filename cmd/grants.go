// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/spf13/cobra"

	"github.com/canonical/org-access-service/internal/types"
)

var grantsCmd = &cobra.Command{
	Use:   "grants",
	Short: "Manage direct access grants of a member",
}

func grantsPath(tenantID, userID string, rest ...string) string {
	return "/api/v0/tenants/" + tenantID + "/users/" + userID + "/grants" + strings.Join(append([]string{""}, rest...), "/")
}

var listGrantsCmd = &cobra.Command{
	Use:   "list [tenant-id] [user-id]",
	Short: "List the direct grants of a member",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		var grants []*types.AccessGrant
		if err := newAPIClient().do(cmd.Context(), http.MethodGet, grantsPath(args[0], args[1]), nil, &grants); err != nil {
			return fmt.Errorf("failed to list grants: %w", err)
		}

		return printTable(cmd.OutOrStdout(), grants, "UNIT_ID\tPERMISSION\tCREATED_AT", func(w io.Writer) {
			for _, g := range grants {
				fmt.Fprintf(w, "%s\t%s\t%s\n", g.OrgUnitID, g.Permission, g.CreatedAt)
			}
		})
	},
}

// parseGrantArgs reads unit[=permission] pairs.
func parseGrantArgs(args []string) map[string]string {
	grants := make(map[string]string, len(args))
	for _, arg := range args {
		unit, permission, _ := strings.Cut(arg, "=")
		grants[unit] = permission
	}
	return grants
}

var replaceGrantsCmd = &cobra.Command{
	Use:   "replace [tenant-id] [user-id] [unit[=permission]]...",
	Short: "Replace every direct grant of a member, no units clears them",
	Args:  cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		body := map[string]any{"grants": parseGrantArgs(args[2:])}

		var out struct {
			Count int `json:"count"`
		}
		if err := newAPIClient().do(cmd.Context(), http.MethodPut, grantsPath(args[0], args[1]), body, &out); err != nil {
			return fmt.Errorf("failed to replace grants: %w", err)
		}

		cmd.Printf("Member %s now holds %d grants\n", args[1], out.Count)
		return nil
	},
}

var grantCmd = &cobra.Command{
	Use:   "add [tenant-id] [user-id] [unit-id]",
	Short: "Grant a single unit, existing grants are left unchanged",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		body := map[string]any{}
		if p, _ := cmd.Flags().GetString("permission"); p != "" {
			body["permission"] = p
		}

		var out struct {
			Created bool `json:"created"`
		}
		if err := newAPIClient().do(cmd.Context(), http.MethodPut, grantsPath(args[0], args[1], args[2]), body, &out); err != nil {
			return fmt.Errorf("failed to grant unit: %w", err)
		}

		cmd.Printf("Grant on %s created: %v\n", args[2], out.Created)
		return nil
	},
}

var revokeCmd = &cobra.Command{
	Use:   "revoke [tenant-id] [user-id] [unit-id]",
	Short: "Revoke a single unit grant",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		var out struct {
			Removed bool `json:"removed"`
		}
		if err := newAPIClient().do(cmd.Context(), http.MethodDelete, grantsPath(args[0], args[1], args[2]), nil, &out); err != nil {
			return fmt.Errorf("failed to revoke grant: %w", err)
		}

		cmd.Printf("Grant on %s removed: %v\n", args[2], out.Removed)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(grantsCmd)
	grantsCmd.AddCommand(listGrantsCmd)
	grantsCmd.AddCommand(replaceGrantsCmd)
	grantsCmd.AddCommand(grantCmd)
	grantsCmd.AddCommand(revokeCmd)

	grantCmd.Flags().String("permission", "", "own, viewer or editor, viewer when omitted")
}
