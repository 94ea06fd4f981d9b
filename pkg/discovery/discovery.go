// Package discovery walks a folder tree and yields candidate font
// files grouped by containing folder.
package discovery

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/LiteObject/WindowsUtils/pkg/errors"
	"github.com/LiteObject/WindowsUtils/pkg/logging"
	"github.com/LiteObject/WindowsUtils/pkg/types"
)

// Folder groups the candidate font files found in one directory, in
// walk order.
type Folder struct {
	Path  string
	Files []types.FontFile
}

// Discover walks root recursively and returns the folders containing
// recognized font files, in walk order. extraExts adds extensions
// beyond the built-in set (leading dot optional, case-insensitive).
//
// A missing or non-directory root is a fatal discovery failure; an
// empty result is not an error. Unreadable subdirectories are skipped
// best-effort.
func Discover(root string, extraExts []string) ([]Folder, error) {
	logger := logging.GetLogger("discovery")

	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrDiscovery, "cannot resolve folder path %s", root)
	}

	info, err := os.Stat(abs)
	if os.IsNotExist(err) {
		return nil, errors.Newf(errors.ErrDiscovery, "folder does not exist: %s", abs)
	}
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrDiscovery, "cannot access folder %s", abs)
	}
	if !info.IsDir() {
		return nil, errors.Newf(errors.ErrNotDirectory, "path is not a directory: %s", abs)
	}

	recognized := recognizedExtensions(extraExts)

	var folders []Folder
	index := make(map[string]int)

	walkErr := filepath.WalkDir(abs, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			logger.Debug().Err(err).Str("path", path).Msg("Skipping unreadable entry")
			if d != nil && d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}
		if d.IsDir() {
			return nil
		}
		if !recognized[strings.ToLower(filepath.Ext(d.Name()))] {
			return nil
		}

		dir := filepath.Dir(path)
		idx, ok := index[dir]
		if !ok {
			idx = len(folders)
			index[dir] = idx
			folders = append(folders, Folder{Path: dir})
		}
		folders[idx].Files = append(folders[idx].Files, types.NewFontFile(path))
		return nil
	})
	if walkErr != nil {
		return nil, errors.Wrapf(walkErr, errors.ErrDiscovery, "walking folder %s failed", abs)
	}

	for _, folder := range folders {
		logger.Debug().Str("folder", folder.Path).Int("fonts", len(folder.Files)).Msg("Found fonts in folder")
	}
	return folders, nil
}

func recognizedExtensions(extra []string) map[string]bool {
	recognized := make(map[string]bool, len(types.FontExtensions)+len(extra))
	for ext := range types.FontExtensions {
		recognized[ext] = true
	}
	for _, ext := range extra {
		ext = strings.ToLower(strings.TrimSpace(ext))
		if ext == "" {
			continue
		}
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		recognized[ext] = true
	}
	return recognized
}
