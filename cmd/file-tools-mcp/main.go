// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Command file-tools-mcp exposes the text-locator and file-editing
// operators over a stdio-framed MCP tool interface.
package main

import (
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const version = "1.0.0"

func main() {
	rootCmd := &cobra.Command{
		Use:   "file-tools-mcp",
		Short: "Whitespace-insensitive fuzzy text locator and editing tools over MCP",
		Long:  "file-tools-mcp serves a fixed set of file-editing tools (replace, delete, insert, move, create, overwrite, append, rename, delete-file) over a stdio-framed request/response channel, locating edit targets with a whitespace-insensitive fuzzy matcher.",
	}

	rootCmd.PersistentFlags().Bool("dry-run", false, "Compute and report edits without writing to disk")
	viper.BindPFlag("dry-run", rootCmd.PersistentFlags().Lookup("dry-run"))

	// Env vars: FILE_TOOLS_MCP_DRY_RUN, etc.
	viper.SetEnvPrefix("FILE_TOOLS_MCP")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	viper.SetConfigName(".file-tools-mcp")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.ReadInConfig() // Ignore error; config file is optional.

	rootCmd.AddCommand(newServeCmd())
	rootCmd.AddCommand(newVersionCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print file-tools-mcp version",
		Run: func(cmd *cobra.Command, args []string) {
			cmd.Println("file-tools-mcp " + version)
		},
	}
}
