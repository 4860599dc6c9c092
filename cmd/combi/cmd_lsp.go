package main

import (
	"github.com/spf13/cobra"

	"github.com/dhamidi/combi/decl"
)

func newLSPCmd(verbose *int) *cobra.Command {
	return &cobra.Command{
		Use:   "lsp",
		Short: "Start the Language Server Protocol server for declaration files",
		RunE: func(cmd *cobra.Command, args []string) error {
			server := decl.NewLSPServer(version, *verbose > 0)
			return server.RunStdio()
		},
	}
}
