package install

import (
	"fmt"
	"strings"

	"github.com/LiteObject/WindowsUtils/pkg/fontname"
	"github.com/LiteObject/WindowsUtils/pkg/fontstore"
	"github.com/LiteObject/WindowsUtils/pkg/logging"
	"github.com/LiteObject/WindowsUtils/pkg/types"
)

// shellStrategy drives the OS shell's native "install font" action
// via PowerShell and the Shell.Application Fonts namespace (0x14).
// The shell handles elevation itself, so this is the lowest-friction
// method.
type shellStrategy struct {
	store  fontstore.Store
	runner CommandRunner
}

func (s *shellStrategy) Name() string { return "shell" }

func (s *shellStrategy) Attempt(ctx types.ExecContext, f types.FontFile, force bool) types.Outcome {
	if s.store.FileExists(f.Name) && !force {
		return types.Recoverable("already present in font directory")
	}

	// 0x14 = no progress dialog + yes to all
	script := fmt.Sprintf(
		"(New-Object -ComObject Shell.Application).Namespace(0x14).CopyHere('%s', 0x14)",
		strings.ReplaceAll(f.Path, "'", "''"),
	)
	if err := s.runner.Run("powershell", "-NoProfile", "-NonInteractive", "-Command", script); err != nil {
		return classify(ctx, err)
	}
	return types.Succeeded()
}

// directStrategy performs the silent equivalent: remove any existing
// file to avoid the system replace dialog, copy, register the
// font-database entry and broadcast the change.
type directStrategy struct {
	store fontstore.Store
}

func (s *directStrategy) Name() string { return "direct" }

func (s *directStrategy) Attempt(ctx types.ExecContext, f types.FontFile, force bool) types.Outcome {
	logger := logging.GetLogger("install")

	if s.store.FileExists(f.Name) {
		if !force {
			return types.Recoverable("already present in font directory")
		}
		if err := s.store.Remove(f.Name); err != nil {
			return classify(ctx, err)
		}
		logger.Debug().Str("font", f.Name).Msg("Removed existing font file")
	}

	if err := s.store.CopyIn(f.Path, f.Name); err != nil {
		return classify(ctx, err)
	}
	if err := s.store.SetEntry(fontname.Registry(f), f.Name); err != nil {
		return classify(ctx, err)
	}
	if err := s.store.NotifyChanged(); err != nil {
		// Font is installed; applications just pick it up later
		logger.Debug().Err(err).Str("font", f.Name).Msg("Font change notification failed")
	}
	return types.Succeeded()
}

// copyStrategy is the fully manual fallback: copy into the font
// directory and write the database entry, no notification.
type copyStrategy struct {
	store fontstore.Store
}

func (s *copyStrategy) Name() string { return "copy" }

func (s *copyStrategy) Attempt(ctx types.ExecContext, f types.FontFile, force bool) types.Outcome {
	if s.store.FileExists(f.Name) && !force {
		return types.Recoverable("already present in font directory")
	}
	if err := s.store.CopyIn(f.Path, f.Name); err != nil {
		return classify(ctx, err)
	}
	if err := s.store.SetEntry(fontname.Registry(f), f.Name); err != nil {
		return classify(ctx, err)
	}
	return types.Succeeded()
}

// resourceStrategy registers the font resource directly with the
// platform API. Last resort: the registration is session-scoped
// rather than persistent, so it only runs with an explicit overwrite
// grant.
type resourceStrategy struct {
	store fontstore.Store
}

func (s *resourceStrategy) Name() string { return "resource" }

func (s *resourceStrategy) Attempt(ctx types.ExecContext, f types.FontFile, force bool) types.Outcome {
	if !force {
		return types.Recoverable("session-scoped registration requires an overwrite grant")
	}
	if err := s.store.AddResource(f.Path); err != nil {
		return classify(ctx, err)
	}
	_ = s.store.NotifyChanged()
	return types.Succeeded()
}
