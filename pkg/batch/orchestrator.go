// Package batch composes discovery, duplicate detection, conflict
// resolution and the strategy chain into one sequential run.
package batch

import (
	"github.com/LiteObject/WindowsUtils/pkg/conflict"
	"github.com/LiteObject/WindowsUtils/pkg/discovery"
	"github.com/LiteObject/WindowsUtils/pkg/fontstore"
	"github.com/LiteObject/WindowsUtils/pkg/install"
	"github.com/LiteObject/WindowsUtils/pkg/logging"
	"github.com/LiteObject/WindowsUtils/pkg/types"
)

// Orchestrator drives the per-file pipeline. Processing is strictly
// sequential: the font store is a shared process-wide resource, the
// ask policy blocks on interactive input, and shell installs can be
// modal.
type Orchestrator struct {
	registry  *fontstore.Registry
	chain     *install.Chain
	resolver  conflict.Resolver
	extraExts []string
}

// New creates an orchestrator. extraExts extends the recognized font
// extensions during discovery.
func New(registry *fontstore.Registry, chain *install.Chain, extraExts []string) *Orchestrator {
	return &Orchestrator{
		registry:  registry,
		chain:     chain,
		extraExts: extraExts,
	}
}

// Run processes every font file under root and returns the
// accumulated report. Only a discovery failure aborts the run; once
// enumeration succeeds every per-file error is converted into that
// file's result and the batch continues.
func (o *Orchestrator) Run(ctx types.ExecContext, root string) (*types.BatchReport, error) {
	logger := logging.GetLogger("batch")

	folders, err := discovery.Discover(root, o.extraExts)
	if err != nil {
		return nil, err
	}

	report := types.NewBatchReport(ctx.DryRun)
	for _, folder := range folders {
		for _, f := range folder.Files {
			logger.Info().Str("font", f.Name).Msg("Processing font")
			report.Add(folder.Path, o.processFile(ctx, f))
		}
	}

	logger.Info().
		Int("processed", report.Counters.Processed).
		Int("installed", report.Counters.Installed).
		Int("failed", report.Counters.Failed).
		Int("skipped", report.Counters.Skipped).
		Msg("Batch completed")
	return report, nil
}

// processFile walks one file through its states: duplicate check,
// conflict resolution, then either skip or the strategy chain. Always
// returns exactly one terminal result.
func (o *Orchestrator) processFile(ctx types.ExecContext, f types.FontFile) types.FileResult {
	installed := o.registry.IsInstalled(f)
	decision := o.resolver.Resolve(ctx, f, installed)

	if ctx.DryRun {
		if !decision.Proceed {
			return types.WouldSkip(f, decision.Reason)
		}
		return types.WouldInstall(f, o.chain.First())
	}

	if !decision.Proceed {
		return types.Skipped(f, decision.Reason)
	}

	method, attempts, ok := o.chain.Install(ctx, f, decision.Force)
	if !ok {
		return types.Failed(f, attempts)
	}
	return types.Installed(f, method)
}
