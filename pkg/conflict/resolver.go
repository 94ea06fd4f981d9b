// Package conflict applies the overwrite policy when a candidate
// font is already installed.
package conflict

import (
	"fmt"

	"github.com/LiteObject/WindowsUtils/pkg/logging"
	"github.com/LiteObject/WindowsUtils/pkg/types"
)

// Decision is the resolver's verdict for one file.
type Decision struct {
	// Proceed means the file goes to the strategy chain
	Proceed bool

	// Force grants the strategies permission to replace an existing
	// font
	Force bool

	// Reason explains a skip; empty when Proceed is true
	Reason string
}

// Resolver maps (policy, duplicate?) to a Decision. The ask policy
// blocks on the run's Confirmer; dry-run never prompts.
type Resolver struct{}

// Resolve decides whether the file should be installed.
func (Resolver) Resolve(ctx types.ExecContext, f types.FontFile, installed bool) Decision {
	if !installed {
		return Decision{Proceed: true, Force: ctx.Policy == types.OverwriteYes}
	}

	logger := logging.GetLogger("conflict")
	switch ctx.Policy {
	case types.OverwriteYes:
		logger.Info().Str("font", f.Name).Msg("Overwriting existing font")
		return Decision{Proceed: true, Force: true}
	case types.OverwriteNo:
		return Decision{Reason: "already installed"}
	default: // ask
		if ctx.DryRun {
			// A prompt would block a preview run; propose the
			// conservative answer.
			return Decision{Reason: "already installed (would prompt)"}
		}
		prompt := fmt.Sprintf("Font '%s' is already installed. Overwrite? (y/n): ", f.Name)
		if ctx.Confirmer != nil && ctx.Confirmer.Confirm(prompt) {
			logger.Info().Str("font", f.Name).Msg("Overwriting existing font")
			return Decision{Proceed: true, Force: true}
		}
		return Decision{Reason: "already installed"}
	}
}
