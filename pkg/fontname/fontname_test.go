// Test Type: Unit Test
// Description: Tests registry name derivation and family name fallback

package fontname_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/LiteObject/WindowsUtils/pkg/fontname"
	"github.com/LiteObject/WindowsUtils/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry(t *testing.T) {
	tests := []struct {
		name string
		file string
		want string
	}{
		{"ttf", "/fonts/Roboto-Regular.ttf", "Roboto-Regular (TrueType)"},
		{"otf", "/fonts/Lato.otf", "Lato (TrueType)"},
		{"ttc", "/fonts/Meiryo.ttc", "Meiryo (TrueType Collection)"},
		{"fon", "/fonts/vga.fon", "vga"},
		{"fnt", "/fonts/terminal.fnt", "terminal"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, fontname.Registry(types.NewFontFile(tt.file)))
		})
	}
}

func TestFamilyFallsBackToStem(t *testing.T) {
	dir := t.TempDir()

	// Not parseable as an sfnt font; Family must degrade to the stem
	// rather than fail.
	corrupted := filepath.Join(dir, "Roboto-Bold.ttf")
	require.NoError(t, os.WriteFile(corrupted, []byte("not a font"), 0644))
	assert.Equal(t, "Roboto-Bold", fontname.Family(types.NewFontFile(corrupted)))

	// Missing file
	assert.Equal(t, "Ghost", fontname.Family(types.NewFontFile(filepath.Join(dir, "Ghost.otf"))))

	// Bitmap formats are never parsed
	fon := filepath.Join(dir, "vga.fon")
	require.NoError(t, os.WriteFile(fon, []byte{0x4d, 0x5a}, 0644))
	assert.Equal(t, "vga", fontname.Family(types.NewFontFile(fon)))
}
