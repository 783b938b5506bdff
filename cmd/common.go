package cmd

import (
	"context"
	"errors"

	"github.com/spf13/cobra"
)

// ctxKeyClackPromptStarted marks that a clack session is on screen, so
// Execute routes errors through the prompt renderer instead of cobra.
type ctxKeyClackPromptStarted struct{}

func setCommandContextValue[K, V comparable](cmd *cobra.Command, key K, value V) {
	cmd.SetContext(context.WithValue(cmd.Context(), key, value))
}

// resolveGitWorkDir locates the enclosing git working tree.
func resolveGitWorkDir() (string, error) {
	workDir, err := gitWorkingTreeDir(getWd())
	if err != nil {
		return "", errors.New("The current directory must be a Git repository") //nolint:staticcheck
	}
	return workDir, nil
}
