package config

import "github.com/kommit/kommit/pkg/commit"

// Config represents the current version of configuration
type Config = configV1

// NewDefault creates a new configuration
func NewDefault() *Config {
	return newConfigV1()
}

// Validate validates the configuration
func (c *Config) Validate() error {
	return c.validateV1()
}

// UnknownTypePolicy resolves the configured unknown-type policy. Unset or
// unparsable values fall back to rejecting unknown types.
func (c *Config) UnknownTypePolicy() commit.UnknownTypePolicy {
	policy, err := commit.ParseUnknownTypePolicy(c.UnknownTypes)
	if err != nil {
		return commit.UnknownTypeReject
	}
	return policy
}

// SubjectLimit returns the advisory header length limit, substituting the
// built-in default when the configured value is zero.
func (c *Config) SubjectLimit() int {
	if c.MaxSubjectLength > 0 {
		return c.MaxSubjectLength
	}
	return commit.DefaultMaxSubjectLength
}
