package cli

import (
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/mitchellh/go-homedir"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/LiteObject/WindowsUtils/pkg/batch"
	"github.com/LiteObject/WindowsUtils/pkg/config"
	"github.com/LiteObject/WindowsUtils/pkg/conflict"
	"github.com/LiteObject/WindowsUtils/pkg/errors"
	"github.com/LiteObject/WindowsUtils/pkg/fontstore"
	"github.com/LiteObject/WindowsUtils/pkg/install"
	"github.com/LiteObject/WindowsUtils/pkg/report"
	"github.com/LiteObject/WindowsUtils/pkg/types"
)

type installOptions struct {
	dryRun       bool
	overwrite    string
	force        bool
	noAdminCheck bool
	configPath   string
	output       string
}

// runInstall assembles the pipeline from config and flags and runs a
// batch over the given folder.
func runInstall(cmd *cobra.Command, folder string, opts installOptions) error {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return err
	}

	// Flags override config; --force is shorthand for --overwrite yes
	policyValue := cfg.Install.Overwrite
	if opts.overwrite != "" {
		policyValue = opts.overwrite
	}
	if opts.force {
		policyValue = "yes"
	}
	policy, err := types.ParseOverwritePolicy(policyValue)
	if err != nil {
		return errors.Wrap(err, errors.ErrInvalidInput, "invalid overwrite policy")
	}

	match, err := fontstore.ParseMatchPolicy(cfg.Install.Match)
	if err != nil {
		return errors.Wrap(err, errors.ErrInvalidInput, "invalid match policy")
	}

	format, err := report.ParseFormat(opts.output)
	if err != nil {
		return errors.Wrap(err, errors.ErrInvalidInput, "invalid output format")
	}

	expanded, err := homedir.Expand(folder)
	if err != nil {
		return errors.Wrapf(err, errors.ErrInvalidInput, "cannot expand path %s", folder)
	}

	confirmer := pickConfirmer()

	admin := isAdmin()
	if !admin && !opts.noAdminCheck && !opts.dryRun {
		fmt.Fprintln(cmd.ErrOrStderr(), MsgAdminWarning)
		if !confirmer.Confirm(MsgAdminContinue) {
			fmt.Fprintln(cmd.ErrOrStderr(), MsgAborted)
			return nil
		}
	}

	store, err := fontstore.NewPlatform(cfg.Store.FontDir)
	if err != nil {
		return err
	}

	log.Info().
		Str("folder", expanded).
		Str("overwrite", string(policy)).
		Bool("dry_run", opts.dryRun).
		Bool("admin", admin).
		Msg("Starting font installation")

	orch := batch.New(
		fontstore.NewRegistry(store, match),
		install.NewChain(store, nil),
		cfg.Discovery.ExtraExtensions,
	)

	ctx := types.ExecContext{
		DryRun:    opts.dryRun,
		Policy:    policy,
		IsAdmin:   admin,
		Confirmer: confirmer,
	}

	rep, err := orch.Run(ctx, expanded)
	if err != nil {
		return err
	}

	return report.NewRenderer(cmd.OutOrStdout(), format).Render(rep)
}

// pickConfirmer returns an interactive confirmer when stdin is a
// terminal, otherwise one that declines every prompt so a piped run
// cannot hang.
func pickConfirmer() types.Confirmer {
	if isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd()) {
		return conflict.NewTerminalConfirmer()
	}
	return conflict.DeclineAll{}
}
