package unpack

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"jonnyzzz.com/nerdfonts/fonterror"
	"jonnyzzz.com/nerdfonts/layout"
	"jonnyzzz.com/nerdfonts/logging"
)

// Extractor expands a downloaded font archive into a directory
type Extractor struct{}

// NewExtractor creates a new extractor
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract expands every entry of the archive into destDir, keeping the archive's
// directory structure. destDir must exist and be empty.
func (e *Extractor) Extract(archive io.ReaderAt, size int64, format layout.ArchiveFormat, destDir string) error {
	logger := logging.GetLogger("unpack")
	logger.Debug().Str("format", string(format)).Int64("size", size).Str("dest", destDir).Msg("Extracting archive")

	var err error
	switch format {
	case layout.FormatZip:
		err = extractZip(archive, size, destDir)
	case layout.FormatTarXz:
		err = extractTarXz(io.NewSectionReader(archive, 0, size), destDir)
	default:
		err = fmt.Errorf("unsupported archive format: %s", format)
	}

	if err != nil {
		return fonterror.Wrap(err, fonterror.FailedZipExtraction, "failed to extract %s archive", format)
	}
	return nil
}

// entryPath resolves an archive member name inside destDir, rejecting escapes
func entryPath(destDir, name string) (string, error) {
	root := filepath.Clean(destDir)
	target := filepath.Join(root, name)
	if target != root && !strings.HasPrefix(target, root+string(os.PathSeparator)) {
		return "", fmt.Errorf("illegal file path in archive: %s", name)
	}
	return target, nil
}

func writeFile(target string, r io.Reader) error {
	if err := os.MkdirAll(filepath.Dir(target), 0755); err != nil {
		return fmt.Errorf("create parent dir for %s: %w", target, err)
	}

	outFile, err := os.OpenFile(target, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
	if err != nil {
		return fmt.Errorf("create file %s: %w", target, err)
	}

	if _, err := io.Copy(outFile, r); err != nil {
		_ = outFile.Close()
		return fmt.Errorf("write file %s: %w", target, err)
	}
	return outFile.Close()
}
