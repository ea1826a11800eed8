// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"fmt"
	"io"
	"net/http"
	"sort"

	"github.com/spf13/cobra"
)

var accessCmd = &cobra.Command{
	Use:   "access",
	Short: "Inspect resolved access",
}

type accessView struct {
	Bypass bool              `json:"bypass"`
	Access map[string]string `json:"access,omitempty"`
	Units  []string          `json:"units,omitempty"`
}

type checkView struct {
	Allowed bool `json:"allowed"`
	Bypass  bool `json:"bypass"`
}

func accessPath(tenantID, userID string) string {
	if userID == "" {
		return "/api/v0/tenants/" + tenantID + "/me/access"
	}
	return "/api/v0/tenants/" + tenantID + "/users/" + userID + "/access"
}

var showAccessCmd = &cobra.Command{
	Use:   "show [tenant-id] [user-id]",
	Short: "Show the effective permission per unit, for the caller when no user is given",
	Args:  cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		user := ""
		if len(args) == 2 {
			user = args[1]
		}

		var view accessView
		if err := newAPIClient().do(cmd.Context(), http.MethodGet, accessPath(args[0], user), nil, &view); err != nil {
			return fmt.Errorf("failed to resolve access: %w", err)
		}

		if view.Bypass && outputFormat != "json" {
			cmd.Println("Administrator: every unit is editable")
			return nil
		}

		units := make([]string, 0, len(view.Access))
		for id := range view.Access {
			units = append(units, id)
		}
		sort.Strings(units)

		return printTable(cmd.OutOrStdout(), view, "UNIT_ID\tPERMISSION", func(w io.Writer) {
			for _, id := range units {
				fmt.Fprintf(w, "%s\t%s\n", id, view.Access[id])
			}
		})
	},
}

var checkAccessCmd = &cobra.Command{
	Use:   "check [tenant-id] [unit-id] [view|edit]",
	Short: "Check whether a user may view or edit a record in a unit",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		user, _ := cmd.Flags().GetString("user")
		author, _ := cmd.Flags().GetString("author")

		body := map[string]string{"unit_id": args[1], "action": args[2]}
		if author != "" {
			body["author_id"] = author
		}

		var view checkView
		if err := newAPIClient().do(cmd.Context(), http.MethodPost, accessPath(args[0], user)+"/check", body, &view); err != nil {
			return fmt.Errorf("failed to check access: %w", err)
		}

		if outputFormat == "json" {
			return printJSON(cmd.OutOrStdout(), view)
		}

		cmd.Printf("allowed: %v\n", view.Allowed)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(accessCmd)
	accessCmd.AddCommand(showAccessCmd)
	accessCmd.AddCommand(checkAccessCmd)

	checkAccessCmd.Flags().String("user", "", "User to check, the caller when omitted")
	checkAccessCmd.Flags().String("author", "", "Author of the record, for own-level grants")
}
