package commit

import (
	"errors"
	"strings"
	"testing"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		name     string
		message  Message
		expected string
		wantErr  error
	}{
		{
			name:     "type and description only",
			message:  Message{Type: "feat", Description: "add user registration"},
			expected: "feat: add user registration",
		},
		{
			name:     "type with scope",
			message:  Message{Type: "fix", Scope: "auth", Description: "resolve token expiration issue"},
			expected: "fix(auth): resolve token expiration issue",
		},
		{
			name:     "breaking without note keeps header only",
			message:  Message{Type: "feat", Scope: "api", Breaking: true, Description: "change authentication endpoint"},
			expected: "feat(api)!: change authentication endpoint",
		},
		{
			name:     "body after one blank line",
			message:  Message{Type: "docs", Description: "update installation instructions", Body: "Added steps for Windows and Linux."},
			expected: "docs: update installation instructions\n\nAdded steps for Windows and Linux.",
		},
		{
			name:     "breaking with note appends footer",
			message:  Message{Type: "feat", Scope: "api", Breaking: true, Description: "change authentication endpoint", BreakingNote: "clients must send a bearer token"},
			expected: "feat(api)!: change authentication endpoint\n\nBREAKING CHANGE: clients must send a bearer token",
		},
		{
			name: "breaking with note and body",
			message: Message{
				Type: "feat", Breaking: true,
				Description:  "drop legacy endpoints",
				Body:         "The v1 API is gone.",
				BreakingNote: "use the v2 API",
			},
			expected: "feat!: drop legacy endpoints\n\nThe v1 API is gone.\n\nBREAKING CHANGE: use the v2 API",
		},
		{
			name: "existing footer is not duplicated",
			message: Message{
				Type: "refactor", Breaking: true,
				Description:  "rework storage layout",
				Body:         "BREAKING CHANGE: on-disk format changed",
				BreakingNote: "ignored because the body already has one",
			},
			expected: "refactor!: rework storage layout\n\nBREAKING CHANGE: on-disk format changed",
		},
		{
			name:     "surrounding whitespace is trimmed",
			message:  Message{Type: "fix", Scope: " auth ", Description: "  resolve token expiration issue  "},
			expected: "fix(auth): resolve token expiration issue",
		},
		{
			name:     "body edge blank lines are dropped",
			message:  Message{Type: "docs", Description: "update notes", Body: "\n\n  first line\n\nsecond line\n   \n"},
			expected: "docs: update notes\n\n  first line\n\nsecond line",
		},
		{
			name:     "trailing bang on scope folds into breaking",
			message:  Message{Type: "fix", Scope: "auth!", Description: "rotate signing keys"},
			expected: "fix(auth)!: rotate signing keys",
		},
		{
			name:     "bang folds even with surrounding whitespace",
			message:  Message{Type: "fix", Scope: " auth! ", Description: "rotate signing keys"},
			expected: "fix(auth)!: rotate signing keys",
		},
		{
			name:     "trailing bang on type folds into breaking",
			message:  Message{Type: "feat!", Description: "remove deprecated flags"},
			expected: "feat!: remove deprecated flags",
		},
		{
			name:     "empty scope is treated as absent",
			message:  Message{Type: "feat", Scope: "", Description: "add user registration"},
			expected: "feat: add user registration",
		},
		{
			name:    "empty description",
			message: Message{Type: "feat", Description: ""},
			wantErr: ErrEmptyDescription,
		},
		{
			name:    "whitespace-only description",
			message: Message{Type: "feat", Description: "   \t "},
			wantErr: ErrEmptyDescription,
		},
		{
			name:    "scope with space",
			message: Message{Type: "feat", Scope: "a b", Description: "add something"},
			wantErr: ErrInvalidScope,
		},
		{
			name:    "scope with parenthesis",
			message: Message{Type: "feat", Scope: "api)", Description: "add something"},
			wantErr: ErrInvalidScope,
		},
		{
			name:    "scope with colon",
			message: Message{Type: "feat", Scope: "a:b", Description: "add something"},
			wantErr: ErrInvalidScope,
		},
		{
			name:    "unknown type",
			message: Message{Type: "feature", Description: "add something"},
			wantErr: ErrUnknownType,
		},
		{
			name:    "missing type",
			message: Message{Description: "add something"},
			wantErr: ErrUnknownType,
		},
		{
			name:    "empty description reported before unknown type",
			message: Message{Type: "feature", Description: " "},
			wantErr: ErrEmptyDescription,
		},
		{
			name:    "invalid scope reported before unknown type",
			message: Message{Type: "feature", Scope: "a b", Description: "add something"},
			wantErr: ErrInvalidScope,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result, err := tc.message.Format()

			if tc.wantErr != nil {
				if !errors.Is(err, tc.wantErr) {
					t.Fatalf("Format() error = %v; want %v", err, tc.wantErr)
				}
				return
			}

			if err != nil {
				t.Fatalf("Format() unexpected error: %v", err)
			}
			if result != tc.expected {
				t.Errorf("Format() = %q; want %q", result, tc.expected)
			}
		})
	}
}

func TestFormatIsDeterministic(t *testing.T) {
	m := Message{
		Type: "feat", Scope: "api", Breaking: true,
		Description:  "change authentication endpoint",
		Body:         "Replaces basic auth.\n\nTokens expire after one hour.",
		BreakingNote: "clients must send a bearer token",
	}

	first, err := m.Format()
	if err != nil {
		t.Fatalf("Format() unexpected error: %v", err)
	}
	second, err := m.Format()
	if err != nil {
		t.Fatalf("Format() unexpected error: %v", err)
	}

	if first != second {
		t.Errorf("Format() is not deterministic:\nfirst:  %q\nsecond: %q", first, second)
	}
}

func TestHeaderRoundTrip(t *testing.T) {
	tests := []struct {
		message    Message
		wantPrefix string
	}{
		{Message{Type: "feat", Description: "add user registration"}, "feat"},
		{Message{Type: "fix", Scope: "auth", Description: "resolve token expiration issue"}, "fix(auth)"},
		{Message{Type: "feat", Scope: "api", Breaking: true, Description: "change authentication endpoint"}, "feat(api)!"},
		{Message{Type: "docs", Description: "update docs", Body: "With a body."}, "docs"},
	}

	for _, tc := range tests {
		out, err := tc.message.Format()
		if err != nil {
			t.Fatalf("Format(%v) unexpected error: %v", tc.message, err)
		}

		header, _, _ := strings.Cut(out, "\n")
		prefix, description, found := strings.Cut(header, ": ")
		if !found {
			t.Fatalf("header %q has no ': ' separator", header)
		}
		if prefix != tc.wantPrefix {
			t.Errorf("header prefix = %q; want %q", prefix, tc.wantPrefix)
		}
		if description != strings.TrimSpace(tc.message.Description) {
			t.Errorf("header description = %q; want %q", description, tc.message.Description)
		}

		parsed := ParseMessage(out)
		if parsed.Type != tc.message.Type || parsed.Scope != tc.message.Scope || parsed.Breaking != tc.message.Breaking {
			t.Errorf("ParseMessage(%q) = %+v; does not round-trip %+v", out, parsed, tc.message)
		}
	}
}

func TestString(t *testing.T) {
	tests := []struct {
		name     string
		message  Message
		expected string
	}{
		{
			name:     "unknown type still assembles",
			message:  Message{Type: "wip", Scope: "ui", Description: "half-finished drawer"},
			expected: "wip(ui): half-finished drawer",
		},
		{
			name:     "no type degrades to bare description",
			message:  Message{Description: "just a message"},
			expected: "just a message",
		},
		{
			name:     "body survives without type",
			message:  Message{Description: "just a message", Body: "with detail"},
			expected: "just a message\n\nwith detail",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.message.String(); got != tc.expected {
				t.Errorf("String() = %q; want %q", got, tc.expected)
			}
		})
	}
}

func TestValidateScope(t *testing.T) {
	valid := []string{"", "auth", "api-v2", "pkg/commit", "core.storage", "UI"}
	for _, scope := range valid {
		if err := ValidateScope(scope); err != nil {
			t.Errorf("ValidateScope(%q) = %v; want nil", scope, err)
		}
	}

	invalid := []string{"a b", "a\tb", "a\nb", "(auth", "auth)", "a:b", " "}
	for _, scope := range invalid {
		if err := ValidateScope(scope); !errors.Is(err, ErrInvalidScope) {
			t.Errorf("ValidateScope(%q) = %v; want ErrInvalidScope", scope, err)
		}
	}
}

func TestTrimBlankLines(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"", ""},
		{"\n\n", ""},
		{"text", "text"},
		{"\ntext\n", "text"},
		{"  \n\ntext\n \t\n", "text"},
		{"first\n\nsecond", "first\n\nsecond"},
		{"\nfirst\n\nsecond\n\n", "first\n\nsecond"},
		{"  indented stays  \n", "  indented stays  "},
	}

	for _, tc := range tests {
		if got := trimBlankLines(tc.input); got != tc.expected {
			t.Errorf("trimBlankLines(%q) = %q; want %q", tc.input, got, tc.expected)
		}
	}
}
