// Package zipextract unpacks font archives before installation. Every
// zip file in a folder is extracted into a sibling subfolder named
// after the archive, so a downstream discovery walk picks the fonts up
// as ordinary folders.
package zipextract

import (
	"archive/zip"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/LiteObject/WindowsUtils/pkg/errors"
	"github.com/LiteObject/WindowsUtils/pkg/logging"
)

// Detail records the outcome for a single archive.
type Detail struct {
	ZipFile     string `json:"zipFile"`
	ExtractedTo string `json:"extractedTo,omitempty"`
	Files       int    `json:"files,omitempty"`
	Err         string `json:"error,omitempty"`
}

// Summary aggregates one ExtractAll run.
type Summary struct {
	Processed  int      `json:"processed"`
	Successful int      `json:"successful"`
	Failed     int      `json:"failed"`
	Details    []Detail `json:"details"`
}

// ExtractAll extracts every zip file directly inside folder into a
// subfolder named after the archive (without the .zip extension).
// Individual archive failures are recorded in the summary and do not
// abort the run; only an unusable folder is a hard error.
func ExtractAll(folder string) (*Summary, error) {
	logger := logging.GetLogger("zipextract")

	abs, err := filepath.Abs(folder)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrInvalidInput, "cannot resolve path %s", folder)
	}

	info, err := os.Stat(abs)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrNotFound, "folder does not exist: %s", abs)
	}
	if !info.IsDir() {
		return nil, errors.Newf(errors.ErrNotDirectory, "path is not a directory: %s", abs)
	}

	archives, err := filepath.Glob(filepath.Join(abs, "*.zip"))
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrInternal, "globbing zip files")
	}

	summary := &Summary{Processed: len(archives)}
	if len(archives) == 0 {
		logger.Info().Str("folder", abs).Msg("No zip files found")
		return summary, nil
	}
	logger.Info().Int("count", len(archives)).Str("folder", abs).Msg("Extracting zip files")

	for _, archive := range archives {
		name := filepath.Base(archive)
		dest := filepath.Join(abs, strings.TrimSuffix(name, filepath.Ext(name)))

		count, err := extractOne(archive, dest)
		if err != nil {
			logger.Error().Err(err).Str("zip", name).Msg("Extraction failed")
			summary.Failed++
			summary.Details = append(summary.Details, Detail{ZipFile: name, Err: err.Error()})
			continue
		}

		logger.Info().Str("zip", name).Int("files", count).Str("dest", dest).Msg("Extracted")
		summary.Successful++
		summary.Details = append(summary.Details, Detail{
			ZipFile:     name,
			ExtractedTo: dest,
			Files:       count,
		})
	}

	return summary, nil
}

// extractOne unpacks a single archive into dest, creating dest if
// needed. Returns the number of files written.
func extractOne(zipPath, dest string) (int, error) {
	reader, err := zip.OpenReader(zipPath)
	if err != nil {
		return 0, errors.Wrap(err, errors.ErrExtract, "invalid zip file")
	}
	defer reader.Close()

	if err := os.MkdirAll(dest, 0755); err != nil {
		return 0, errors.Wrap(err, errors.ErrExtract, "creating destination folder")
	}

	count := 0
	for _, file := range reader.File {
		if err := extractEntry(file, dest); err != nil {
			return count, err
		}
		if !file.FileInfo().IsDir() {
			count++
		}
	}
	return count, nil
}

func extractEntry(file *zip.File, dest string) error {
	// Reject entries that would escape the destination folder
	target := filepath.Join(dest, filepath.FromSlash(file.Name))
	if !strings.HasPrefix(target, filepath.Clean(dest)+string(os.PathSeparator)) {
		return errors.Newf(errors.ErrExtract, "archive entry escapes destination: %s", file.Name)
	}

	if file.FileInfo().IsDir() {
		return os.MkdirAll(target, 0755)
	}

	if err := os.MkdirAll(filepath.Dir(target), 0755); err != nil {
		return errors.Wrap(err, errors.ErrExtract, fmt.Sprintf("creating folder for %s", file.Name))
	}

	src, err := file.Open()
	if err != nil {
		return errors.Wrap(err, errors.ErrExtract, fmt.Sprintf("opening archive entry %s", file.Name))
	}
	defer src.Close()

	dst, err := os.OpenFile(target, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return errors.Wrap(err, errors.ErrExtract, fmt.Sprintf("creating %s", target))
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return errors.Wrap(err, errors.ErrExtract, fmt.Sprintf("writing %s", target))
	}
	return nil
}
