// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/eramitmittal/file-tools-mcp/internal/editor"
	"github.com/eramitmittal/file-tools-mcp/internal/mcpserver"
)

// newServeCmd creates the "serve" command, which hosts the MCP tool
// interface over stdio until stdin closes or the process is interrupted.
func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the file-editing tools over stdio",
		RunE:  runServe,
	}
}

func runServe(cmd *cobra.Command, args []string) error {
	ed := &editor.Editor{DryRun: viper.GetBool("dry-run")}
	handler := mcpserver.NewToolHandler(ed)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	errc := make(chan error, 1)
	go func() { errc <- mcpserver.Serve(ctx, handler) }()

	select {
	case err := <-errc:
		if err != nil {
			return fmt.Errorf("serve: %w", err)
		}
		return nil
	case <-ctx.Done():
		// Serve may be blocked reading stdin and cannot see the interrupt.
		return nil
	}
}
