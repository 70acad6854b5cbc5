// Package testutil builds font archives for tests
package testutil

import (
	"archive/tar"
	"archive/zip"
	"bytes"
	"fmt"
	"io"
	"sort"
	"strings"
	"testing"

	"github.com/ulikunitz/xz"
)

// RegularFontEntry is the archive member name a release carries for a font
func RegularFontEntry(fontName string) string {
	return fontName + "NerdFont-Regular.ttf"
}

// FontArchiveFiles returns the members of a typical release archive for fontName
func FontArchiveFiles(fontName, content string) map[string]string {
	files := map[string]string{
		"README.md": "# " + fontName,
		"LICENSE":   "SIL OFL",
	}
	files[RegularFontEntry(fontName)] = content
	files[fontName+"NerdFont-Bold.ttf"] = "bold " + content
	files[fontName+"NerdFontMono-Regular.ttf"] = "mono " + content
	return files
}

func sortedNames(files map[string]string) []string {
	names := make([]string, 0, len(files))
	for name := range files {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// WriteZip writes a zip archive of files to w; names ending with "/" become directories
func WriteZip(w io.Writer, files map[string]string) error {
	zipWriter := zip.NewWriter(w)
	for _, name := range sortedNames(files) {
		entry, err := zipWriter.Create(name)
		if err != nil {
			return fmt.Errorf("create zip entry %s: %w", name, err)
		}
		if strings.HasSuffix(name, "/") {
			continue
		}
		if _, err := entry.Write([]byte(files[name])); err != nil {
			return fmt.Errorf("write zip entry %s: %w", name, err)
		}
	}
	return zipWriter.Close()
}

// WriteTarXz writes a tar.xz archive of files to w; names ending with "/" become directories
func WriteTarXz(w io.Writer, files map[string]string) error {
	xzWriter, err := xz.NewWriter(w)
	if err != nil {
		return fmt.Errorf("create xz writer: %w", err)
	}

	tarWriter := tar.NewWriter(xzWriter)
	for _, name := range sortedNames(files) {
		header := &tar.Header{Name: name, Typeflag: tar.TypeDir, Mode: 0755}
		content := files[name]
		if !strings.HasSuffix(name, "/") {
			header = &tar.Header{Name: name, Typeflag: tar.TypeReg, Mode: 0644, Size: int64(len(content))}
		}

		if err := tarWriter.WriteHeader(header); err != nil {
			return fmt.Errorf("write tar header %s: %w", name, err)
		}
		if header.Typeflag == tar.TypeReg {
			if _, err := tarWriter.Write([]byte(content)); err != nil {
				return fmt.Errorf("write tar entry %s: %w", name, err)
			}
		}
	}

	if err := tarWriter.Close(); err != nil {
		return fmt.Errorf("close tar: %w", err)
	}
	return xzWriter.Close()
}

// BuildZip returns a zip archive of files, failing the test on error
func BuildZip(t testing.TB, files map[string]string) []byte {
	t.Helper()
	var buf bytes.Buffer
	if err := WriteZip(&buf, files); err != nil {
		t.Fatalf("failed to build zip: %v", err)
	}
	return buf.Bytes()
}

// BuildTarXz returns a tar.xz archive of files, failing the test on error
func BuildTarXz(t testing.TB, files map[string]string) []byte {
	t.Helper()
	var buf bytes.Buffer
	if err := WriteTarXz(&buf, files); err != nil {
		t.Fatalf("failed to build tar.xz: %v", err)
	}
	return buf.Bytes()
}
