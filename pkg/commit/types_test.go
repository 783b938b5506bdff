package commit

import (
	"strings"
	"testing"
)

func TestLookupType(t *testing.T) {
	for _, token := range []string{"feat", "fix", "docs", "style", "refactor", "perf", "test", "chore", "build", "ci", "revert"} {
		ct, ok := LookupType(token)
		if !ok {
			t.Errorf("LookupType(%q) not found", token)
			continue
		}
		if ct.Token != token {
			t.Errorf("LookupType(%q).Token = %q", token, ct.Token)
		}
		if ct.Description == "" {
			t.Errorf("LookupType(%q) has empty description", token)
		}
	}

	for _, token := range []string{"", "feature", "FEAT", "feat "} {
		if _, ok := LookupType(token); ok {
			t.Errorf("LookupType(%q) unexpectedly found", token)
		}
	}
}

func TestTypesOrder(t *testing.T) {
	want := []string{"feat", "fix", "docs", "style", "refactor", "perf", "test", "chore", "build", "ci", "revert"}

	types := Types()
	if len(types) != len(want) {
		t.Fatalf("Types() returned %d entries; want %d", len(types), len(want))
	}
	for i, token := range want {
		if types[i].Token != token {
			t.Errorf("Types()[%d].Token = %q; want %q", i, types[i].Token, token)
		}
	}

	if got := strings.Join(TypeTokens(), ","); got != strings.Join(want, ",") {
		t.Errorf("TypeTokens() = %s; want %s", got, strings.Join(want, ","))
	}
}

func TestTypesUnique(t *testing.T) {
	seen := make(map[string]struct{})
	for _, ct := range Types() {
		if _, dup := seen[ct.Token]; dup {
			t.Errorf("duplicate token %q in registry", ct.Token)
		}
		seen[ct.Token] = struct{}{}
	}
}

func TestTypesReturnsCopy(t *testing.T) {
	types := Types()
	types[0] = CommitType{Token: "mut", Description: "mutated"}

	if _, ok := LookupType("mut"); ok {
		t.Error("mutating the Types() result leaked into the registry")
	}
	if fresh := Types(); fresh[0].Token != "feat" {
		t.Errorf("registry changed: first token = %q; want %q", fresh[0].Token, "feat")
	}
}
