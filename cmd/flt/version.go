package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/zephyrtronium/flt"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "flt version %s\n", flt.Version)
		},
	}
}
