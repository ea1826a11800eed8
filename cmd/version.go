// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/canonical/org-access-service/internal/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Get the application's version",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if outputFormat == "json" {
			return printJSON(cmd.OutOrStdout(), map[string]string{"version": version.Version})
		}

		_, err := fmt.Fprintf(cmd.OutOrStdout(), "App Version: %s\n", version.Version)
		return err
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
