package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// version is overridden by release builds:
//
//	go build -ldflags "-X main.version=v1.2.0" ./cmd/pngyinx
var version = "private-dev"

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "print the version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", cliName, version)
		},
	}
}
