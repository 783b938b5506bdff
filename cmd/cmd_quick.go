package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/kommit/kommit/internal/config"
	"github.com/kommit/kommit/pkg/commit"
)

var quickCmd = &cobra.Command{
	Use: "quick TYPE DESCRIPTION...",
	Aliases: []string{
		"q",
	},
	Short:       "Create a commit without prompts",
	Long:        `Builds a Conventional Commit message from arguments and creates the commit. Unknown types are rejected unless the unknown-type policy says otherwise.`,
	Annotations: map[string]string{"group": "main"},
	Args:        cobra.MinimumNArgs(2),
	ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		if len(args) == 0 {
			return commit.TypeTokens(), cobra.ShellCompDirectiveNoFileComp
		}
		return nil, cobra.ShellCompDirectiveNoFileComp
	},
	RunE: runQuickE,
}

var quickFlags = quickOptions{
	UnknownTypes: commit.UnknownTypeReject,
}

func quickAddFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&quickFlags.Scope, "scope", "s", "", "Scope of the change")
	cmd.Flags().StringVarP(&quickFlags.Body, "body", "b", "", "Commit message body")
	cmd.Flags().BoolVarP(&quickFlags.Breaking, "breaking", "B", false, "Mark the commit as a breaking change")
	cmd.Flags().StringVar(&quickFlags.BreakingNote, "breaking-note", "", "Footer note for breaking commits (defaults to the configured note)")
	cmd.Flags().BoolVarP(&quickFlags.All, "all", "a", false, "Automatically stage all changes in tracked files")
	cmd.Flags().BoolVarP(&quickFlags.DryRun, "dry-run", "n", false, "Print the message without creating a commit")
	addUnknownTypePolicyFlag(cmd, &quickFlags.UnknownTypes)
}

func init() {
	quickAddFlags(quickCmd)

	rootCmd.AddCommand(quickCmd)
}

type quickOptions struct {
	Scope        string
	Body         string
	Breaking     bool
	BreakingNote string
	All          bool
	DryRun       bool
	UnknownTypes commit.UnknownTypePolicy
}

func runQuickE(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	policy := cfg.UnknownTypePolicy()
	if cmd.Flags().Changed("unknown-types") {
		policy = quickFlags.UnknownTypes
	}

	note := cfg.BreakingNote
	if cmd.Flags().Changed("breaking-note") {
		note = quickFlags.BreakingNote
	}

	message := commit.Message{
		Type:         args[0],
		Scope:        quickFlags.Scope,
		Breaking:     quickFlags.Breaking,
		Description:  strings.Join(args[1:], " "),
		Body:         quickFlags.Body,
		BreakingNote: note,
	}

	formatted, err := message.Format()
	if err != nil {
		if !errors.Is(err, commit.ErrUnknownType) {
			return err
		}
		if policy != commit.UnknownTypeWarn {
			return withTypeHint(err)
		}

		fmt.Fprintf(cmd.ErrOrStderr(), "Warning: %v\n", withTypeHint(err))
		formatted = message.String()
	}

	if quickFlags.DryRun {
		fmt.Fprintln(cmd.OutOrStdout(), formatted)
		return nil
	}

	workDir, err := resolveGitWorkDir()
	if err != nil {
		return err
	}

	if quickFlags.All || cfg.AutoStage {
		if err := gitAddAll(workDir); err != nil {
			return err
		}
	}

	if err := gitCommit(workDir, formatted); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Successfully committed: %s\n", formatted)

	return nil
}
