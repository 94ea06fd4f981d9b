package types

import (
	"fmt"
	"strings"
)

// OverwritePolicy controls how a duplicate installation is resolved.
type OverwritePolicy string

const (
	// OverwriteYes always reinstalls, replacing the existing font
	OverwriteYes OverwritePolicy = "yes"

	// OverwriteNo skips fonts that are already installed
	OverwriteNo OverwritePolicy = "no"

	// OverwriteAsk prompts the user for each duplicate
	OverwriteAsk OverwritePolicy = "ask"
)

// ParseOverwritePolicy parses a CLI policy value.
func ParseOverwritePolicy(s string) (OverwritePolicy, error) {
	switch strings.ToLower(s) {
	case "yes":
		return OverwriteYes, nil
	case "no":
		return OverwriteNo, nil
	case "ask", "":
		return OverwriteAsk, nil
	default:
		return OverwriteAsk, fmt.Errorf("unknown overwrite policy: %s", s)
	}
}

// Confirmer is the capability used for blocking yes/no prompts. The
// terminal implementation reads a single-character answer; test
// harnesses supply scripted answers.
type Confirmer interface {
	Confirm(prompt string) bool
}

// ConfirmerFunc adapts a function to the Confirmer interface.
type ConfirmerFunc func(prompt string) bool

// Confirm implements Confirmer
func (f ConfirmerFunc) Confirm(prompt string) bool {
	return f(prompt)
}

// ExecContext is the immutable per-run context threaded through the
// orchestrator and into every strategy invocation. The admin flag is
// determined once, before the batch begins.
type ExecContext struct {
	DryRun    bool
	Policy    OverwritePolicy
	IsAdmin   bool
	Confirmer Confirmer
}
