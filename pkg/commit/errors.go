package commit

import "errors"

// Validation errors returned by Validate and Format. All of them are
// recoverable: the caller re-prompts or rejects the invocation, the
// process never terminates because of them.
var (
	ErrEmptyDescription = errors.New("commit description is required")
	ErrInvalidScope     = errors.New("commit scope must not contain whitespace or any of '(', ')', ':'")
	ErrUnknownType      = errors.New("unknown commit type")
)
