package commit

import "slices"

// CommitType pairs a conventional commit type token with the
// human-readable description shown in pickers and listings.
type CommitType struct {
	Token       string
	Description string
}

/**
 * The token set and descriptions follow the conventional-changelog
 * conventions:
 * https://github.com/conventional-changelog/commitlint/blob/18fbed7ea86ac0ec9d5449b4979b762ec4305a92/%40commitlint/config-conventional/index.js#L40-L100
 */
var conventionalTypes = []CommitType{
	{Token: "feat", Description: "A new feature"},
	{Token: "fix", Description: "A bug fix"},
	{Token: "docs", Description: "Documentation only changes"},
	{Token: "style", Description: "Changes that do not affect the meaning of the code"},
	{Token: "refactor", Description: "A code change that neither fixes a bug nor adds a feature"},
	{Token: "perf", Description: "A code change that improves performance"},
	{Token: "test", Description: "Adding missing tests or correcting existing tests"},
	{Token: "chore", Description: "Changes to the build process or auxiliary tools"},
	{Token: "build", Description: "Changes that affect the build system or external dependencies"},
	{Token: "ci", Description: "Changes to CI configuration files and scripts"},
	{Token: "revert", Description: "Reverts a previous commit"},
}

var typeIndex = func() map[string]CommitType {
	index := make(map[string]CommitType, len(conventionalTypes))
	for _, t := range conventionalTypes {
		index[t.Token] = t
	}
	return index
}()

// LookupType resolves a type token against the registry.
func LookupType(token string) (CommitType, bool) {
	t, ok := typeIndex[token]
	return t, ok
}

// Types returns the registry in display order. The returned slice is a
// copy; the registry itself never changes after process start.
func Types() []CommitType {
	return slices.Clone(conventionalTypes)
}

// TypeTokens returns just the tokens, in the same order as Types.
func TypeTokens() []string {
	tokens := make([]string, len(conventionalTypes))
	for i, t := range conventionalTypes {
		tokens[i] = t.Token
	}
	return tokens
}
