package unpack

import (
	"archive/zip"
	"fmt"
	"io"
	"os"
)

func extractZip(archive io.ReaderAt, size int64, destDir string) error {
	r, err := zip.NewReader(archive, size)
	if err != nil {
		return fmt.Errorf("failed to open zip: %w", err)
	}

	for _, f := range r.File {
		target, err := entryPath(destDir, f.Name)
		if err != nil {
			return err
		}

		mode := f.FileInfo().Mode()
		if mode.IsDir() {
			if err := os.MkdirAll(target, 0755); err != nil {
				return fmt.Errorf("create directory %s: %w", target, err)
			}
			continue
		}
		if !mode.IsRegular() {
			continue
		}

		if err := extractZipFile(f, target); err != nil {
			return err
		}
	}

	return nil
}

func extractZipFile(f *zip.File, target string) error {
	rc, err := f.Open()
	if err != nil {
		return fmt.Errorf("failed to open file in zip: %w", err)
	}
	//goland:noinspection GoUnhandledErrorResult
	defer rc.Close()

	return writeFile(target, rc)
}
