package fontstore

import (
	"github.com/LiteObject/WindowsUtils/pkg/fontname"
	"github.com/LiteObject/WindowsUtils/pkg/logging"
	"github.com/LiteObject/WindowsUtils/pkg/types"
)

// Registry answers "is this font already installed?" against a
// Store. Detection is best-effort: a file-presence probe first, then
// a scan of the font-database entries matching both the candidate's
// filename and its derived family name under the MatchPolicy.
type Registry struct {
	store Store
	match MatchPolicy
}

// NewRegistry creates a Registry over the given store.
func NewRegistry(store Store, match MatchPolicy) *Registry {
	return &Registry{store: store, match: match}
}

// IsInstalled reports whether the candidate font is already present
// in the font store. Inconclusive probes (enumeration unavailable,
// lookup errors) answer false rather than block installation.
func (r *Registry) IsInstalled(f types.FontFile) bool {
	logger := logging.GetLogger("fontstore")

	if r.store.FileExists(f.Name) {
		logger.Debug().Str("font", f.Name).Msg("Font file present in font directory")
		return true
	}

	entries, err := r.store.Entries()
	if err != nil {
		logger.Debug().Err(err).Str("font", f.Name).Msg("Font database enumeration failed, assuming not installed")
		return false
	}

	registryName := fontname.Registry(f)
	family := fontname.Family(f)

	for name, value := range entries {
		if r.match.Match(value, f.Name) {
			return true
		}
		if r.match.Match(name, registryName) || r.match.Match(name, family) {
			return true
		}
	}
	return false
}
