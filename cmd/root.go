// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

var (
	userID       string
	httpEndpoint string
	accessToken  string
	outputFormat string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "org-access-service",
	Short: "Org Access Service",
	Long:  `Org Access Service CLI for managing tenants, org units, access grants and invitations.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&httpEndpoint, "endpoint", "http://localhost:8080", "HTTP server endpoint")
	rootCmd.PersistentFlags().StringVar(&userID, "user-id", "", "User ID sent in the identity header")
	rootCmd.PersistentFlags().StringVar(&accessToken, "token", os.Getenv("ORG_ACCESS_TOKEN"), "Bearer token, see the token command")
	rootCmd.PersistentFlags().StringVarP(&outputFormat, "format", "o", "text", "Output format (text or json)")
}
