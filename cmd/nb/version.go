package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vanderheijden86/notebook/pkg/version"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number of nb",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "nb %s\n", version.Version)
		},
	}
}
