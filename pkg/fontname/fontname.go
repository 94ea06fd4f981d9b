// Package fontname derives the names used for font-database entries
// and duplicate lookups.
package fontname

import (
	"github.com/LiteObject/WindowsUtils/pkg/types"
	"seehuhn.de/go/sfnt"
)

// Registry returns the font-database display name for a file,
// following the Windows Fonts registry convention.
func Registry(f types.FontFile) string {
	switch f.Ext {
	case ".ttf", ".otf":
		return f.Stem() + " (TrueType)"
	case ".ttc":
		return f.Stem() + " (TrueType Collection)"
	default:
		return f.Stem()
	}
}

// Family returns the font family name for duplicate lookup. TTF and
// OTF files are parsed; any parse failure, and the bitmap formats
// sfnt cannot read, fall back to the filename stem. The fallback
// keeps duplicate detection false-negative biased: a file we cannot
// parse is never reported as already installed on name evidence
// alone.
func Family(f types.FontFile) string {
	if f.Ext != ".ttf" && f.Ext != ".otf" {
		return f.Stem()
	}
	info, err := sfnt.ReadFile(f.Path)
	if err != nil || info.FamilyName == "" {
		return f.Stem()
	}
	return info.FamilyName
}
