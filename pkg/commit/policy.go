package commit

import (
	"fmt"
	"strings"
)

// UnknownTypePolicy controls what happens when a message carries a type
// token that is not in the registry.
type UnknownTypePolicy int

const (
	// UnknownTypeReject treats an unrecognized type token as a validation
	// error.
	UnknownTypeReject UnknownTypePolicy = iota
	// UnknownTypeWarn accepts an unrecognized type token after the caller
	// surfaced a warning to the user.
	UnknownTypeWarn
)

var UnknownTypePolicyIds = map[UnknownTypePolicy][]string{
	UnknownTypeReject: {"reject"},
	UnknownTypeWarn:   {"warn"},
}

// ParseUnknownTypePolicy parses a string and returns the corresponding
// UnknownTypePolicy. It returns an error if the string doesn't match any
// known policy.
func ParseUnknownTypePolicy(s string) (UnknownTypePolicy, error) {
	for p, ids := range UnknownTypePolicyIds {
		for _, id := range ids {
			if strings.EqualFold(id, s) {
				return p, nil
			}
		}
	}
	return UnknownTypePolicy(0), fmt.Errorf("unknown policy: %s", s)
}

// ToString converts the UnknownTypePolicy value to a string representation.
func (p UnknownTypePolicy) ToString() string {
	if val, ok := UnknownTypePolicyIds[p]; ok {
		return val[0]
	}
	return fmt.Sprintf("UnknownPolicy(%d)", p)
}
