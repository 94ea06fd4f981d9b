package fontstore

import (
	"fmt"
	"strings"
)

// MatchPolicy is the name-matching policy used by duplicate
// detection. The original behavior left case handling unspecified;
// making the policy explicit keeps it testable and swappable.
type MatchPolicy int

const (
	// MatchFold compares names case-insensitively. The default:
	// Windows font paths are case-insensitive and the font registry
	// is queried that way in practice.
	MatchFold MatchPolicy = iota

	// MatchExact compares names byte for byte
	MatchExact
)

// ParseMatchPolicy parses a config value into a MatchPolicy.
func ParseMatchPolicy(s string) (MatchPolicy, error) {
	switch strings.ToLower(s) {
	case "fold", "":
		return MatchFold, nil
	case "exact":
		return MatchExact, nil
	default:
		return MatchFold, fmt.Errorf("unknown match policy: %s", s)
	}
}

// String returns the string representation of the policy
func (p MatchPolicy) String() string {
	if p == MatchExact {
		return "exact"
	}
	return "fold"
}

// Match reports whether two names are equal under the policy.
func (p MatchPolicy) Match(a, b string) bool {
	if p == MatchExact {
		return a == b
	}
	return strings.EqualFold(a, b)
}
