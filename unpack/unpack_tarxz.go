package unpack

import (
	"archive/tar"
	"fmt"
	"io"
	"os"

	"github.com/ulikunitz/xz"
)

func extractTarXz(archive io.Reader, destDir string) error {
	xzReader, err := xz.NewReader(archive)
	if err != nil {
		return fmt.Errorf("failed to create xz reader: %w", err)
	}

	tarReader := tar.NewReader(xzReader)
	for {
		header, err := tarReader.Next()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return fmt.Errorf("read tar header: %w", err)
		}

		target, err := entryPath(destDir, header.Name)
		if err != nil {
			return err
		}

		switch header.Typeflag {
		case tar.TypeDir:
			if err := os.MkdirAll(target, 0755); err != nil {
				return fmt.Errorf("create directory %s: %w", target, err)
			}
		case tar.TypeReg:
			if err := writeFile(target, tarReader); err != nil {
				return err
			}
		default:
			// symlinks and devices never carry fonts
			continue
		}
	}
}
