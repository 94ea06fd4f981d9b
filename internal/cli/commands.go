// Package cli wires the command-line surface: flag parsing, config
// loading and the assembly of the installation pipeline.
package cli

import (
	"fmt"

	"github.com/mitchellh/go-homedir"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/LiteObject/WindowsUtils/internal/version"
	"github.com/LiteObject/WindowsUtils/pkg/errors"
	"github.com/LiteObject/WindowsUtils/pkg/logging"
	"github.com/LiteObject/WindowsUtils/pkg/zipextract"
)

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	var (
		verbosity int
		opts      installOptions
	)

	rootCmd := &cobra.Command{
		Use:     "fontinstall [folder]",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		Args:    cobra.MaximumNArgs(1),
		Example: `  # Install every font under the current directory
  fontinstall

  # Install fonts from a downloads folder, preview first
  fontinstall ~/Downloads/fonts --dry-run
  fontinstall ~/Downloads/fonts

  # Reinstall everything without prompting
  fontinstall ~/Downloads/fonts --overwrite yes`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLogger(verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			folder := "."
			if len(args) > 0 {
				folder = args[0]
			}
			return runInstall(cmd, folder, opts)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		DisableAutoGenTag: true,
	}

	// Global flags
	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", MsgFlagVerbose)

	// Install flags
	rootCmd.Flags().BoolVar(&opts.dryRun, "dry-run", false, MsgFlagDryRun)
	rootCmd.Flags().StringVar(&opts.overwrite, "overwrite", "", MsgFlagOverwrite)
	rootCmd.Flags().BoolVar(&opts.force, "force", false, MsgFlagForce)
	rootCmd.Flags().BoolVar(&opts.noAdminCheck, "no-admin-check", false, MsgFlagNoAdmin)
	rootCmd.Flags().StringVar(&opts.configPath, "config", "", MsgFlagConfig)
	rootCmd.Flags().StringVar(&opts.output, "output", "auto", MsgFlagOutput)

	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newExtractCmd())
	rootCmd.AddCommand(newManCmd())

	return rootCmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: MsgVersionShort,
		Long:  MsgVersionLong,
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, MsgVersionFormat, version.Version)
			if version.Commit != "" {
				fmt.Fprintf(out, MsgCommitFormat, version.Commit)
			}
			if version.Date != "" {
				fmt.Fprintf(out, MsgBuiltFormat, version.Date)
			}
		},
	}
}

func newExtractCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "extract [folder]",
		Short: MsgExtractShort,
		Long:  MsgExtractLong,
		Args:  cobra.MaximumNArgs(1),
		Example: `  # Extract all zip files in the current directory
  fontinstall extract

  # Extract a downloads folder, then install from it
  fontinstall extract ~/Downloads/fonts
  fontinstall ~/Downloads/fonts`,
		RunE: func(cmd *cobra.Command, args []string) error {
			folder := "."
			if len(args) > 0 {
				folder = args[0]
			}
			expanded, err := homedir.Expand(folder)
			if err != nil {
				return errors.Wrapf(err, errors.ErrInvalidInput, "cannot expand path %s", folder)
			}

			summary, err := zipextract.ExtractAll(expanded)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if summary.Processed == 0 {
				fmt.Fprintln(out, MsgNoZipFiles)
				return nil
			}
			for _, d := range summary.Details {
				if d.Err != "" {
					fmt.Fprintf(out, MsgExtractFailFormat, d.ZipFile, d.Err)
					continue
				}
				fmt.Fprintf(out, MsgExtractItemFormat, d.ZipFile, d.Files, d.ExtractedTo)
			}
			fmt.Fprintf(out, MsgExtractSummary, summary.Successful, summary.Processed)
			return nil
		},
	}
}
