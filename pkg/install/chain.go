package install

import (
	"github.com/LiteObject/WindowsUtils/pkg/fontstore"
	"github.com/LiteObject/WindowsUtils/pkg/logging"
	"github.com/LiteObject/WindowsUtils/pkg/types"
)

// Chain holds the installation strategies in fixed priority order.
// Constructed once at startup.
type Chain struct {
	strategies []Strategy
}

// NewChain builds the default chain over the given store:
// shell, direct, copy, resource. A nil runner selects the real
// PowerShell runner.
func NewChain(store fontstore.Store, runner CommandRunner) *Chain {
	if runner == nil {
		runner = execRunner{}
	}
	return &Chain{strategies: []Strategy{
		&shellStrategy{store: store, runner: runner},
		&directStrategy{store: store},
		&copyStrategy{store: store},
		&resourceStrategy{store: store},
	}}
}

// NewChainWith builds a chain from explicit strategies, in order.
func NewChainWith(strategies ...Strategy) *Chain {
	return &Chain{strategies: strategies}
}

// First returns the name of the highest-priority strategy, used for
// dry-run proposals.
func (c *Chain) First() string {
	if len(c.strategies) == 0 {
		return ""
	}
	return c.strategies[0].Name()
}

// Install tries each strategy in order. On success it stops and
// returns that strategy's name together with the failed attempts
// that preceded it. Both recoverable and fatal failures advance to
// the next strategy; no strategy is retried. ok is false only when
// every strategy failed, with all attempts in order.
func (c *Chain) Install(ctx types.ExecContext, f types.FontFile, force bool) (method string, attempts []types.InstallationAttempt, ok bool) {
	logger := logging.GetLogger("install")

	for _, s := range c.strategies {
		outcome := s.Attempt(ctx, f, force)
		if outcome.OK() {
			logger.Info().Str("font", f.Name).Str("method", s.Name()).Msg("Font installed")
			return s.Name(), attempts, true
		}
		logger.Debug().
			Str("font", f.Name).
			Str("strategy", s.Name()).
			Str("kind", outcome.Kind.String()).
			Str("reason", outcome.Reason).
			Msg("Strategy attempt failed")
		attempts = append(attempts, types.InstallationAttempt{Strategy: s.Name(), Outcome: outcome})
	}

	logger.Error().Str("font", f.Name).Int("attempts", len(attempts)).Msg("All installation methods failed")
	return "", attempts, false
}
