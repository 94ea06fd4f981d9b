package fontstore

import (
	"fmt"
	"os"
	"sort"
)

// Memory is an in-memory Store. It backs non-Windows builds, where
// no system font store exists, and every test that needs to observe
// or script store behavior.
//
// The Fail* fields inject errors per operation so tests can exercise
// strategy fallback paths. Mutations counts every mutating call that
// went through, which is how dry-run tests assert zero side effects.
type Memory struct {
	FontDir string

	files   map[string][]byte
	entries map[string]string

	resources []string
	notified  int

	// Mutations counts successful mutating operations
	Mutations int

	// Error injection, keyed by font filename where applicable
	FailCopy     map[string]error
	FailRemove   map[string]error
	FailResource map[string]error
	FailSetEntry error
	FailEntries  error
}

// NewMemory creates an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{
		FontDir: "/fonts",
		files:   make(map[string][]byte),
		entries: make(map[string]string),
	}
}

// Preinstall seeds the store with an installed font: a file in the
// font directory plus its database entry.
func (m *Memory) Preinstall(filename, entryName string) {
	m.files[filename] = []byte(filename)
	if entryName != "" {
		m.entries[entryName] = filename
	}
}

// Dir implements Store
func (m *Memory) Dir() string { return m.FontDir }

// FileExists implements Store
func (m *Memory) FileExists(name string) bool {
	_, ok := m.files[name]
	return ok
}

// CopyIn implements Store
func (m *Memory) CopyIn(srcPath, name string) error {
	if err := m.FailCopy[name]; err != nil {
		return err
	}
	data, err := os.ReadFile(srcPath)
	if err != nil {
		return err
	}
	m.files[name] = data
	m.Mutations++
	return nil
}

// Remove implements Store
func (m *Memory) Remove(name string) error {
	if err := m.FailRemove[name]; err != nil {
		return err
	}
	if _, ok := m.files[name]; !ok {
		return fmt.Errorf("font file not present: %s", name)
	}
	delete(m.files, name)
	m.Mutations++
	return nil
}

// SetEntry implements Store
func (m *Memory) SetEntry(name, value string) error {
	if m.FailSetEntry != nil {
		return m.FailSetEntry
	}
	m.entries[name] = value
	m.Mutations++
	return nil
}

// LookupEntry implements Store
func (m *Memory) LookupEntry(name string) (string, bool, error) {
	if m.FailEntries != nil {
		return "", false, m.FailEntries
	}
	v, ok := m.entries[name]
	return v, ok, nil
}

// Entries implements Store
func (m *Memory) Entries() (map[string]string, error) {
	if m.FailEntries != nil {
		return nil, m.FailEntries
	}
	out := make(map[string]string, len(m.entries))
	for k, v := range m.entries {
		out[k] = v
	}
	return out, nil
}

// AddResource implements Store
func (m *Memory) AddResource(path string) error {
	if err := m.FailResource[path]; err != nil {
		return err
	}
	m.resources = append(m.resources, path)
	m.Mutations++
	return nil
}

// NotifyChanged implements Store
func (m *Memory) NotifyChanged() error {
	m.notified++
	return nil
}

// Files returns the sorted filenames present in the font directory.
func (m *Memory) Files() []string {
	names := make([]string, 0, len(m.files))
	for name := range m.files {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Resources returns the paths registered via AddResource.
func (m *Memory) Resources() []string { return m.resources }

// NotifyCount returns how many change notifications were broadcast.
func (m *Memory) NotifyCount() int { return m.notified }
