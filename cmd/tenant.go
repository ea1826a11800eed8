// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/canonical/org-access-service/internal/types"
	"github.com/canonical/org-access-service/pkg/tenant"
)

var tenantCmd = &cobra.Command{
	Use:   "tenant",
	Short: "Manage tenants and their members",
}

func printTenants(cmd *cobra.Command, tenants []*types.Tenant) error {
	return printTable(cmd.OutOrStdout(), tenants, "ID\tNAME\tENABLED\tCREATED_AT", func(w io.Writer) {
		for _, t := range tenants {
			fmt.Fprintf(w, "%s\t%s\t%v\t%s\n", t.ID, t.Name, t.Enabled, t.CreatedAt)
		}
	})
}

var createTenantCmd = &cobra.Command{
	Use:   "create [name]",
	Short: "Create a new tenant",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var t types.Tenant
		if err := newAPIClient().do(cmd.Context(), http.MethodPost, "/api/v0/tenants", map[string]string{"name": args[0]}, &t); err != nil {
			return fmt.Errorf("failed to create tenant: %w", err)
		}

		cmd.Printf("Tenant created: %s (ID: %s)\n", t.Name, t.ID)
		return nil
	},
}

var listTenantsCmd = &cobra.Command{
	Use:   "list",
	Short: "List tenants, all of them with --all",
	RunE: func(cmd *cobra.Command, args []string) error {
		path := "/api/v0/me/tenants"
		if all, _ := cmd.Flags().GetBool("all"); all {
			path = "/api/v0/tenants"
		}

		var tenants []*types.Tenant
		if err := newAPIClient().do(cmd.Context(), http.MethodGet, path, nil, &tenants); err != nil {
			return fmt.Errorf("failed to list tenants: %w", err)
		}

		return printTenants(cmd, tenants)
	},
}

var setTenantEnabledCmd = &cobra.Command{
	Use:   "set-enabled [id] [true|false]",
	Short: "Enable or disable a tenant",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		enabled, err := strconv.ParseBool(args[1])
		if err != nil {
			return fmt.Errorf("invalid enabled value %q", args[1])
		}

		body := map[string]bool{"enabled": enabled}
		if err := newAPIClient().do(cmd.Context(), http.MethodPatch, "/api/v0/tenants/"+args[0], body, nil); err != nil {
			return fmt.Errorf("failed to update tenant: %w", err)
		}

		cmd.Printf("Tenant %s enabled: %v\n", args[0], enabled)
		return nil
	},
}

var renameTenantCmd = &cobra.Command{
	Use:   "rename [id] [name]",
	Short: "Rename a tenant",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := newAPIClient().do(cmd.Context(), http.MethodPatch, "/api/v0/tenants/"+args[0], map[string]string{"name": args[1]}, nil); err != nil {
			return fmt.Errorf("failed to rename tenant: %w", err)
		}

		cmd.Printf("Tenant renamed: %s\n", args[0])
		return nil
	},
}

var membersCmd = &cobra.Command{
	Use:   "members",
	Short: "Manage tenant members",
}

var listMembersCmd = &cobra.Command{
	Use:   "list [tenant-id]",
	Short: "List members of a tenant",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var users []*types.TenantUser
		if err := newAPIClient().do(cmd.Context(), http.MethodGet, "/api/v0/tenants/"+args[0]+"/members", nil, &users); err != nil {
			return fmt.Errorf("failed to list members: %w", err)
		}

		return printTable(cmd.OutOrStdout(), users, "USER_ID\tEMAIL\tROLE\tACTIVE\tPENDING_INVITE", func(w io.Writer) {
			for _, u := range users {
				fmt.Fprintf(w, "%s\t%s\t%s\t%v\t%v\n", u.UserID, u.Email, u.Role, u.Active, u.PendingInvite)
			}
		})
	},
}

var addMemberCmd = &cobra.Command{
	Use:   "add [tenant-id] [user-id] [role]",
	Short: "Add an existing user to a tenant",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		body := map[string]string{"user_id": args[1], "role": args[2]}
		if err := newAPIClient().do(cmd.Context(), http.MethodPost, "/api/v0/tenants/"+args[0]+"/members", body, nil); err != nil {
			return fmt.Errorf("failed to add member: %w", err)
		}

		cmd.Printf("Member %s added to %s as %s\n", args[1], args[0], args[2])
		return nil
	},
}

var inviteMemberCmd = &cobra.Command{
	Use:   "invite [tenant-id] [email] [role]",
	Short: "Invite an e-mail address into a tenant",
	Args:  cobra.RangeArgs(2, 3),
	RunE: func(cmd *cobra.Command, args []string) error {
		body := map[string]string{"email": args[1]}
		if len(args) == 3 {
			body["role"] = args[2]
		}

		var inv tenant.Invitation
		if err := newAPIClient().do(cmd.Context(), http.MethodPost, "/api/v0/tenants/"+args[0]+"/members/invite", body, &inv); err != nil {
			return fmt.Errorf("failed to invite member: %w", err)
		}

		if outputFormat == "json" {
			return printJSON(cmd.OutOrStdout(), inv)
		}

		cmd.Printf("Invited %s (user %s, new: %v)\n", args[1], inv.UserID, inv.NewUser)
		if inv.Link != "" {
			cmd.Printf("Activation link: %s\n", inv.Link)
		}
		return nil
	},
}

var updateMemberCmd = &cobra.Command{
	Use:   "set-role [tenant-id] [user-id] [role]",
	Short: "Change the role of a member",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := "/api/v0/tenants/" + args[0] + "/members/" + args[1]
		if err := newAPIClient().do(cmd.Context(), http.MethodPatch, path, map[string]string{"role": args[2]}, nil); err != nil {
			return fmt.Errorf("failed to update member: %w", err)
		}

		cmd.Printf("Member %s is now %s\n", args[1], args[2])
		return nil
	},
}

var removeMemberCmd = &cobra.Command{
	Use:   "remove [tenant-id] [user-id]",
	Short: "Remove a member from a tenant",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := "/api/v0/tenants/" + args[0] + "/members/" + args[1]
		if err := newAPIClient().do(cmd.Context(), http.MethodDelete, path, nil, nil); err != nil {
			return fmt.Errorf("failed to remove member: %w", err)
		}

		cmd.Printf("Member %s removed from %s\n", args[1], args[0])
		return nil
	},
}

func init() {
	rootCmd.AddCommand(tenantCmd)
	tenantCmd.AddCommand(createTenantCmd)
	tenantCmd.AddCommand(listTenantsCmd)
	tenantCmd.AddCommand(setTenantEnabledCmd)
	tenantCmd.AddCommand(renameTenantCmd)
	tenantCmd.AddCommand(membersCmd)

	membersCmd.AddCommand(listMembersCmd)
	membersCmd.AddCommand(addMemberCmd)
	membersCmd.AddCommand(inviteMemberCmd)
	membersCmd.AddCommand(updateMemberCmd)
	membersCmd.AddCommand(removeMemberCmd)

	listTenantsCmd.Flags().Bool("all", false, "List every tenant, privileged admins only")
}
