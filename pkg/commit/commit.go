package commit

import (
	"fmt"
	"strings"
	"unicode"
)

// breakingChangeFooter is the footer token mandated by the Conventional
// Commits specification for marking incompatible changes.
const breakingChangeFooter = "BREAKING CHANGE:"

// Message holds the parts of a conventional commit message. It is a
// single-use value object: populate it, format it, discard it.
type Message struct {
	Type        string
	Scope       string
	Breaking    bool
	Description string
	Body        string
	// BreakingNote is the explanation rendered after the BREAKING CHANGE:
	// footer token. When empty no footer is emitted.
	BreakingNote string
}

// normalized returns a copy with surrounding whitespace trimmed, blank
// lines stripped from the body edges, and a trailing "!" on the type or
// scope folded into the Breaking flag.
func (m Message) normalized() Message {
	var folded bool

	m.Type, folded = foldBang(m.Type)
	m.Breaking = m.Breaking || folded

	m.Scope, folded = foldBang(m.Scope)
	m.Breaking = m.Breaking || folded

	m.Description = strings.TrimSpace(m.Description)
	m.Body = trimBlankLines(m.Body)
	m.BreakingNote = strings.TrimSpace(m.BreakingNote)
	return m
}

// foldBang trims the value and strips a single trailing "!", reporting
// whether one was stripped.
func foldBang(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if strings.HasSuffix(s, "!") {
		return strings.TrimSpace(strings.TrimSuffix(s, "!")), true
	}
	return s, false
}

// Validate checks the message against the formatting rules: the
// description must be non-empty, the scope must be safe to embed in the
// header, and the type token must exist in the registry. The type check
// runs last so that a caller seeing ErrUnknownType knows every other rule
// already holds.
func (m Message) Validate() error {
	n := m.normalized()

	if n.Description == "" {
		return ErrEmptyDescription
	}

	if err := ValidateScope(n.Scope); err != nil {
		return err
	}

	if _, ok := LookupType(n.Type); !ok {
		return fmt.Errorf("%w: %q", ErrUnknownType, n.Type)
	}

	return nil
}

// Format validates the message and renders it. The output is
// deterministic: the same Message always produces the same string.
func (m Message) Format() (string, error) {
	if err := m.Validate(); err != nil {
		return "", err
	}

	return m.String(), nil
}

// String assembles the commit message without validating it. Callers that
// accept unknown type tokens use this after Validate reported only
// ErrUnknownType.
func (m Message) String() string {
	n := m.normalized()

	header := n.Description
	if n.Type != "" {
		header = n.Type
		if n.Scope != "" {
			header += fmt.Sprintf("(%s)", n.Scope)
		}
		if n.Breaking {
			header += "!"
		}
		header += ": " + n.Description
	}

	parts := []string{header}

	if n.Body != "" {
		parts = append(parts, "", n.Body)
	}

	if n.Breaking && n.BreakingNote != "" && !hasBreakingChangeFooter(n.Body) {
		parts = append(parts, "", breakingChangeFooter+" "+n.BreakingNote)
	}

	return strings.Join(parts, "\n")
}

// ValidateScope reports whether a scope can appear inside the header
// parentheses. Whitespace and the characters "(", ")" and ":" would
// corrupt the header syntax.
func ValidateScope(scope string) error {
	if scope == "" {
		return nil
	}

	if strings.ContainsFunc(scope, unicode.IsSpace) || strings.ContainsAny(scope, "():") {
		return fmt.Errorf("%w: %q", ErrInvalidScope, scope)
	}

	return nil
}

// trimBlankLines drops leading and trailing blank lines while leaving the
// remaining lines byte-for-byte intact.
func trimBlankLines(s string) string {
	lines := strings.Split(s, "\n")

	start := 0
	for start < len(lines) && strings.TrimSpace(lines[start]) == "" {
		start++
	}

	end := len(lines)
	for end > start && strings.TrimSpace(lines[end-1]) == "" {
		end--
	}

	return strings.Join(lines[start:end], "\n")
}

// hasBreakingChangeFooter reports whether any line of the body already
// carries the BREAKING CHANGE: footer token.
func hasBreakingChangeFooter(body string) bool {
	for _, line := range strings.Split(body, "\n") {
		if strings.HasPrefix(line, breakingChangeFooter) {
			return true
		}
	}
	return false
}
