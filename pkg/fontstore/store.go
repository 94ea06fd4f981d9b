package fontstore

// Store is the mutation and query surface of the OS font store used
// by the installation strategies and by duplicate detection.
//
// File operations address fonts by base filename within the platform
// font directory; entry operations address the font-database entries
// keyed by display name.
type Store interface {
	// Dir returns the platform font directory path
	Dir() string

	// FileExists reports whether a font file with the given base
	// name is present in the font directory
	FileExists(name string) bool

	// CopyIn copies the file at srcPath into the font directory
	// under the given base name
	CopyIn(srcPath, name string) error

	// Remove deletes the named font file from the font directory
	Remove(name string) error

	// SetEntry writes a font-database entry mapping a display name
	// to a font filename
	SetEntry(name, value string) error

	// LookupEntry reads a single font-database entry by display name
	LookupEntry(name string) (string, bool, error)

	// Entries returns all font-database entries
	Entries() (map[string]string, error)

	// AddResource registers a font resource directly with the
	// platform API; session-scoped on Windows
	AddResource(path string) error

	// NotifyChanged broadcasts a font-change notification so running
	// applications pick up the new font
	NotifyChanged() error
}
