package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kommit/kommit/pkg/commit"
)

func TestLintValidMessage(t *testing.T) {
	setupConfigSandbox(t)

	out, _, err := executeCommand(t, "lint", "feat(api): add search endpoint")
	require.NoError(t, err)
	assert.Equal(t, "OK: feat(api): add search endpoint\n", out)
}

func TestLintMultiLineMessage(t *testing.T) {
	setupConfigSandbox(t)

	out, _, err := executeCommand(t, "lint", "fix!: handle nil pointer\n\nFound in production.")
	require.NoError(t, err)
	assert.Equal(t, "OK: fix!: handle nil pointer\n", out)
}

func TestLintNonConventionalMessage(t *testing.T) {
	setupConfigSandbox(t)

	_, _, err := executeCommand(t, "lint", "updated some stuff")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not a conventional commit message")
}

func TestLintUnknownTypeRejected(t *testing.T) {
	setupConfigSandbox(t)

	_, _, err := executeCommand(t, "lint", "foo: bar")
	require.Error(t, err)
	assert.ErrorIs(t, err, commit.ErrUnknownType)
}

func TestLintUnknownTypeWarnPolicy(t *testing.T) {
	setupConfigSandbox(t)

	out, errOut, err := executeCommand(t, "lint", "foo: bar", "--unknown-types", "warn")
	require.NoError(t, err)

	assert.Equal(t, "OK: foo: bar\n", out)
	assert.Contains(t, errOut, "Warning")
}

func TestLintAliasCheck(t *testing.T) {
	setupConfigSandbox(t)

	out, _, err := executeCommand(t, "check", "chore: tidy imports")
	require.NoError(t, err)
	assert.Equal(t, "OK: chore: tidy imports\n", out)
}
