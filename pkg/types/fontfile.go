package types

import (
	"path/filepath"
	"strings"
)

// FontExtensions is the set of recognized font file extensions.
// Matching is case-insensitive.
var FontExtensions = map[string]bool{
	".ttf": true,
	".otf": true,
	".ttc": true,
	".fon": true,
	".fnt": true,
}

// IsFontFile reports whether the given filename has a recognized
// font extension.
func IsFontFile(name string) bool {
	return FontExtensions[strings.ToLower(filepath.Ext(name))]
}

// FontFile describes a single candidate font file found during
// discovery. Immutable once created.
type FontFile struct {
	// Path is the absolute path to the font file
	Path string `json:"path"`

	// Name is the base filename, used as the display name
	Name string `json:"name"`

	// Ext is the lower-cased file extension including the dot
	Ext string `json:"ext"`
}

// NewFontFile builds a FontFile from an absolute path.
func NewFontFile(path string) FontFile {
	name := filepath.Base(path)
	return FontFile{
		Path: path,
		Name: name,
		Ext:  strings.ToLower(filepath.Ext(name)),
	}
}

// Stem returns the filename without its extension.
func (f FontFile) Stem() string {
	return strings.TrimSuffix(f.Name, filepath.Ext(f.Name))
}

// Folder returns the directory containing the font file.
func (f FontFile) Folder() string {
	return filepath.Dir(f.Path)
}
