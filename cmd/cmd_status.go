package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the working tree status in short format",
	Args:  cobra.NoArgs,
	RunE:  runStatusE,
}

func init() {
	rootCmd.AddCommand(statusCmd)
}

func runStatusE(cmd *cobra.Command, args []string) error {
	workDir, err := resolveGitWorkDir()
	if err != nil {
		return err
	}

	out, err := gitStatusShort(workDir)
	if err != nil {
		return err
	}

	if out == "" {
		fmt.Fprintln(cmd.OutOrStdout(), "nothing to commit, working tree clean")
		return nil
	}

	fmt.Fprintln(cmd.OutOrStdout(), out)

	return nil
}
