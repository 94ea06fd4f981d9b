//go:build !windows

package fontstore

// NewPlatform returns an in-memory store on platforms without a
// system font store. Discovery, duplicate checks and dry-run previews
// work as on Windows; nothing persists past the process.
func NewPlatform(fontDir string) (Store, error) {
	m := NewMemory()
	if fontDir != "" {
		m.FontDir = fontDir
	}
	return m, nil
}
