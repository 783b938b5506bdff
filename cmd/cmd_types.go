package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kommit/kommit/pkg/commit"
)

var typesCmd = &cobra.Command{
	Use:   "types",
	Short: "List the supported commit types",
	Args:  cobra.NoArgs,
	RunE:  runTypesE,
}

func init() {
	rootCmd.AddCommand(typesCmd)
}

func runTypesE(cmd *cobra.Command, args []string) error {
	for _, t := range commit.Types() {
		fmt.Fprintf(cmd.OutOrStdout(), "%-8s  %s\n", t.Token, t.Description)
	}

	return nil
}
