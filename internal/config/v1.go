package config

import (
	"fmt"

	"github.com/kommit/kommit/pkg/commit"
)

const configVersionV1 = "1"

type configV1 struct {
	Version string `json:"version"` // required by vconfig-go

	// UnknownTypes selects the policy for type tokens that are not in the
	// registry: "reject" (default) or "warn".
	UnknownTypes string `json:"unknown_types"`
	// AutoStage stages all tracked changes before committing, as if
	// --all was always passed.
	AutoStage bool `json:"auto_stage"`
	// MaxSubjectLength is the advisory header length limit. Zero means
	// the built-in default.
	MaxSubjectLength int `json:"max_subject_length"`
	// BreakingNote is the footer explanation added to breaking commits
	// that carry no explicit note. Empty disables the automatic footer.
	BreakingNote string `json:"breaking_note"`
}

// newConfigV1 creates a new v1 configuration
func newConfigV1() *configV1 {
	return &configV1{
		Version:          configVersionV1,
		UnknownTypes:     commit.UnknownTypeReject.ToString(),
		MaxSubjectLength: commit.DefaultMaxSubjectLength,
		BreakingNote:     commit.DefaultBreakingNote,
	}
}

func (c *configV1) validateV1() error {
	if c.UnknownTypes != "" {
		if _, err := commit.ParseUnknownTypePolicy(c.UnknownTypes); err != nil {
			return fmt.Errorf("invalid unknown_types value: %w", err)
		}
	}

	if c.MaxSubjectLength < 0 {
		return fmt.Errorf("max_subject_length must not be negative: %d", c.MaxSubjectLength)
	}

	return nil
}
