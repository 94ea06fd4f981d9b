package cli

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort    = "Install fonts from a folder tree into the system font store"
	MsgVersionShort = "Print version information"
	MsgVersionLong  = "Print detailed version information including commit hash and build date"
	MsgExtractShort = "Extract zip archives into per-archive subfolders"

	// Admin check
	MsgAdminWarning  = "Warning: not running as administrator. Some installation methods may fail."
	MsgAdminContinue = "Continue anyway? (y/n): "
	MsgAborted       = "Aborted."

	// Extract output
	MsgNoZipFiles        = "No zip files found."
	MsgExtractItemFormat = "  ✓ %s - %d file(s) extracted to %s\n"
	MsgExtractFailFormat = "  ✗ %s - %s\n"
	MsgExtractSummary    = "\nExtracted %d of %d archive(s).\n"

	// Version output
	MsgVersionFormat = "fontinstall version %s\n"
	MsgCommitFormat  = "Commit: %s\n"
	MsgBuiltFormat   = "Built:  %s\n"

	// Flag descriptions
	MsgFlagVerbose   = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagDryRun    = "Preview what would be installed without making changes"
	MsgFlagOverwrite = "Overwrite policy for already-installed fonts (yes, no, ask)"
	MsgFlagForce     = "Reinstall fonts even if already installed (same as --overwrite yes)"
	MsgFlagNoAdmin   = "Skip the administrator privilege check"
	MsgFlagConfig    = "Path to a config file (default: XDG config dir)"
	MsgFlagOutput    = "Output format (auto, term, text, json)"
)

// MsgRootLong is the root command help text.
const MsgRootLong = `fontinstall walks a folder tree for font files (.ttf, .otf, .ttc,
.fon, .fnt) and installs each one through a chain of installation
methods, falling back from the Windows shell to direct file and
registry operations when a method fails.

Fonts that are already installed are skipped, overwritten or prompted
for according to the overwrite policy. Use --dry-run to preview what
a run would do without touching the system.`

// MsgExtractLong is the extract command help text.
const MsgExtractLong = `Extract loops through all zip files in a folder and extracts each one
into a subfolder named after the archive. Font archives downloaded
from the web can then be installed with a plain fontinstall run over
the same folder.`
