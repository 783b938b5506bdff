package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/duke-git/lancet/v2/strutil"
	"github.com/spf13/cobra"

	"github.com/kommit/kommit/internal/config"
	"github.com/kommit/kommit/pkg/commit"
)

var lintCmd = &cobra.Command{
	Use: "lint [MESSAGE]",
	Aliases: []string{
		"check",
	},
	Short: "Validate a commit message",
	Long:  `Validates a message against the Conventional Commits format. Reads the message from the argument, or from HEAD when no argument is given.`,
	Args:  cobra.MaximumNArgs(1),
	RunE:  runLintE,
}

var lintFlags = lintOptions{
	UnknownTypes: commit.UnknownTypeReject,
}

func lintAddFlags(cmd *cobra.Command) {
	addUnknownTypePolicyFlag(cmd, &lintFlags.UnknownTypes)
}

func init() {
	lintAddFlags(lintCmd)

	rootCmd.AddCommand(lintCmd)
}

type lintOptions struct {
	UnknownTypes commit.UnknownTypePolicy
}

func runLintE(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	policy := cfg.UnknownTypePolicy()
	if cmd.Flags().Changed("unknown-types") {
		policy = lintFlags.UnknownTypes
	}

	var raw string
	if len(args) == 1 {
		raw = args[0]
	} else {
		workDir, err := resolveGitWorkDir()
		if err != nil {
			return err
		}

		raw, err = gitHeadMessage(workDir)
		if err != nil {
			return err
		}
	}

	if strutil.IsBlank(raw) {
		return errors.New("no commit message to lint")
	}

	message := commit.ParseMessage(raw)
	if message.Type == "" {
		return fmt.Errorf("not a conventional commit message: %q", headerLine(raw))
	}

	if err := message.Validate(); err != nil {
		if !errors.Is(err, commit.ErrUnknownType) {
			return err
		}
		if policy != commit.UnknownTypeWarn {
			return withTypeHint(err)
		}

		fmt.Fprintf(cmd.ErrOrStderr(), "Warning: %v\n", withTypeHint(err))
	}

	fmt.Fprintf(cmd.OutOrStdout(), "OK: %s\n", headerLine(message.String()))

	return nil
}

func headerLine(message string) string {
	header, _, _ := strings.Cut(message, "\n")
	return strings.TrimSpace(header)
}
