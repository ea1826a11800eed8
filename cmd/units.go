// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"fmt"
	"io"
	"net/http"

	"github.com/spf13/cobra"

	"github.com/canonical/org-access-service/internal/types"
)

var unitsCmd = &cobra.Command{
	Use:   "units",
	Short: "Manage the org unit tree of a tenant",
}

func unitsPath(tenantID string, rest ...string) string {
	p := "/api/v0/tenants/" + tenantID + "/units"
	for _, r := range rest {
		p += "/" + r
	}
	return p
}

func printUnits(cmd *cobra.Command, units []*types.OrgUnit) error {
	return printTable(cmd.OutOrStdout(), units, "ID\tCODE\tNAME\tPARENT", func(w io.Writer) {
		for _, u := range units {
			parent := "-"
			if u.ParentID != nil {
				parent = *u.ParentID
			}
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", u.ID, u.Code, u.Name, parent)
		}
	})
}

var listUnitsCmd = &cobra.Command{
	Use:   "list [tenant-id]",
	Short: "List the org units of a tenant",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var units []*types.OrgUnit
		if err := newAPIClient().do(cmd.Context(), http.MethodGet, unitsPath(args[0]), nil, &units); err != nil {
			return fmt.Errorf("failed to list units: %w", err)
		}

		return printUnits(cmd, units)
	},
}

var createUnitCmd = &cobra.Command{
	Use:   "create [tenant-id] [code] [name]",
	Short: "Create an org unit, under --parent when given",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		body := map[string]any{"code": args[1], "name": args[2]}
		if parent, _ := cmd.Flags().GetString("parent"); parent != "" {
			body["parent_id"] = parent
		}

		var unit types.OrgUnit
		if err := newAPIClient().do(cmd.Context(), http.MethodPost, unitsPath(args[0]), body, &unit); err != nil {
			return fmt.Errorf("failed to create unit: %w", err)
		}

		cmd.Printf("Unit created: %s (ID: %s)\n", unit.Name, unit.ID)
		return nil
	},
}

var moveUnitCmd = &cobra.Command{
	Use:   "move [tenant-id] [unit-id]",
	Short: "Move an org unit under --parent, or to the root when omitted",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		body := map[string]any{"parent_id": nil}
		if parent, _ := cmd.Flags().GetString("parent"); parent != "" {
			body["parent_id"] = parent
		}

		if err := newAPIClient().do(cmd.Context(), http.MethodPost, unitsPath(args[0], args[1], "move"), body, nil); err != nil {
			return fmt.Errorf("failed to move unit: %w", err)
		}

		cmd.Printf("Unit moved: %s\n", args[1])
		return nil
	},
}

var renameUnitCmd = &cobra.Command{
	Use:   "rename [tenant-id] [unit-id] [name]",
	Short: "Rename an org unit",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := newAPIClient().do(cmd.Context(), http.MethodPatch, unitsPath(args[0], args[1]), map[string]string{"name": args[2]}, nil); err != nil {
			return fmt.Errorf("failed to rename unit: %w", err)
		}

		cmd.Printf("Unit renamed: %s\n", args[1])
		return nil
	},
}

var deleteUnitCmd = &cobra.Command{
	Use:   "delete [tenant-id] [unit-id]",
	Short: "Delete an org unit and its subtree",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		var out struct {
			Removed int `json:"removed"`
		}
		if err := newAPIClient().do(cmd.Context(), http.MethodDelete, unitsPath(args[0], args[1]), nil, &out); err != nil {
			return fmt.Errorf("failed to delete unit: %w", err)
		}

		cmd.Printf("Removed %d units\n", out.Removed)
		return nil
	},
}

func relativesCmd(use, short, segment string) *cobra.Command {
	return &cobra.Command{
		Use:   use + " [tenant-id] [unit-id]",
		Short: short,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			var units []*types.OrgUnit
			if err := newAPIClient().do(cmd.Context(), http.MethodGet, unitsPath(args[0], args[1], segment), nil, &units); err != nil {
				return fmt.Errorf("failed to list %s: %w", segment, err)
			}

			return printUnits(cmd, units)
		},
	}
}

func init() {
	rootCmd.AddCommand(unitsCmd)
	unitsCmd.AddCommand(listUnitsCmd)
	unitsCmd.AddCommand(createUnitCmd)
	unitsCmd.AddCommand(moveUnitCmd)
	unitsCmd.AddCommand(renameUnitCmd)
	unitsCmd.AddCommand(deleteUnitCmd)
	unitsCmd.AddCommand(relativesCmd("ancestors", "List the ancestors of a unit, nearest first", "ancestors"))
	unitsCmd.AddCommand(relativesCmd("descendants", "List the descendants of a unit", "descendants"))

	createUnitCmd.Flags().String("parent", "", "Parent unit ID")
	moveUnitCmd.Flags().String("parent", "", "New parent unit ID")
}
