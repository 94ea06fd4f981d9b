// Test Type: Unit Test
// Description: Tests zip archive extraction into per-archive subfolders

package zipextract_test

import (
	"archive/zip"
	"os"
	"path/filepath"
	"testing"

	apperrors "github.com/LiteObject/WindowsUtils/pkg/errors"
	"github.com/LiteObject/WindowsUtils/pkg/zipextract"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// makeZip writes a zip archive at path containing the given entries.
func makeZip(t *testing.T, path string, entries map[string]string) {
	t.Helper()

	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()

	w := zip.NewWriter(f)
	for name, content := range entries {
		entry, err := w.Create(name)
		require.NoError(t, err)
		_, err = entry.Write([]byte(content))
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())
}

func TestExtractAll(t *testing.T) {
	dir := t.TempDir()
	makeZip(t, filepath.Join(dir, "roboto.zip"), map[string]string{
		"Roboto-Regular.ttf": "regular",
		"Roboto-Bold.ttf":    "bold",
	})
	makeZip(t, filepath.Join(dir, "lato.zip"), map[string]string{
		"static/Lato-Light.ttf": "light",
	})

	summary, err := zipextract.ExtractAll(dir)
	require.NoError(t, err)

	assert.Equal(t, 2, summary.Processed)
	assert.Equal(t, 2, summary.Successful)
	assert.Equal(t, 0, summary.Failed)

	// Each archive lands in a subfolder named after its stem
	assert.FileExists(t, filepath.Join(dir, "roboto", "Roboto-Regular.ttf"))
	assert.FileExists(t, filepath.Join(dir, "roboto", "Roboto-Bold.ttf"))
	assert.FileExists(t, filepath.Join(dir, "lato", "static", "Lato-Light.ttf"))

	content, err := os.ReadFile(filepath.Join(dir, "roboto", "Roboto-Bold.ttf"))
	require.NoError(t, err)
	assert.Equal(t, "bold", string(content))
}

func TestExtractAllBadArchiveDoesNotAbort(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "broken.zip"), []byte("not a zip"), 0644))
	makeZip(t, filepath.Join(dir, "good.zip"), map[string]string{"a.ttf": "a"})

	summary, err := zipextract.ExtractAll(dir)
	require.NoError(t, err)

	assert.Equal(t, 2, summary.Processed)
	assert.Equal(t, 1, summary.Successful)
	assert.Equal(t, 1, summary.Failed)
	assert.FileExists(t, filepath.Join(dir, "good", "a.ttf"))

	var badDetail *zipextract.Detail
	for i := range summary.Details {
		if summary.Details[i].ZipFile == "broken.zip" {
			badDetail = &summary.Details[i]
		}
	}
	require.NotNil(t, badDetail)
	assert.NotEmpty(t, badDetail.Err)
}

func TestExtractAllNoArchives(t *testing.T) {
	summary, err := zipextract.ExtractAll(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, 0, summary.Processed)
	assert.Empty(t, summary.Details)
}

func TestExtractAllMissingFolder(t *testing.T) {
	_, err := zipextract.ExtractAll(filepath.Join(t.TempDir(), "nope"))
	require.Error(t, err)
	assert.True(t, apperrors.IsErrorCode(err, apperrors.ErrNotFound))
}

func TestExtractAllNotADirectory(t *testing.T) {
	file := filepath.Join(t.TempDir(), "file.txt")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0644))

	_, err := zipextract.ExtractAll(file)
	require.Error(t, err)
	assert.True(t, apperrors.IsErrorCode(err, apperrors.ErrNotDirectory))
}

func TestExtractAllRejectsEscapingEntries(t *testing.T) {
	dir := t.TempDir()
	makeZip(t, filepath.Join(dir, "evil.zip"), map[string]string{
		"../escape.txt": "nope",
	})

	summary, err := zipextract.ExtractAll(dir)
	require.NoError(t, err)

	assert.Equal(t, 1, summary.Failed)
	assert.NoFileExists(t, filepath.Join(dir, "..", "escape.txt"))
}
