package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/thediveo/enumflag/v2"

	"github.com/kommit/kommit/pkg/commit"
)

// addUnknownTypePolicyFlag adds the shared unknown-type policy flag to a command
func addUnknownTypePolicyFlag(cmd *cobra.Command, policy *commit.UnknownTypePolicy) {
	cmd.Flags().Var(enumflag.New(policy, "policy", commit.UnknownTypePolicyIds, enumflag.EnumCaseInsensitive), "unknown-types", "How to treat commit types outside the registry (reject, warn)")
}

// withTypeHint appends the registry tokens to unknown-type errors.
func withTypeHint(err error) error {
	return fmt.Errorf("%w (valid types: %s)", err, strings.Join(commit.TypeTokens(), ", "))
}
