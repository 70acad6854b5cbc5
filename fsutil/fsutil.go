package fsutil

import (
	"crypto/sha512"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
)

const partialSuffix = ".partial"

// CopyFile copies a file from src to dst, truncating dst if it exists
func CopyFile(src, dst string) error {
	sourceFile, err := os.Open(src)
	if err != nil {
		return err
	}
	//goland:noinspection GoUnhandledErrorResult
	defer sourceFile.Close()

	destFile, err := os.Create(dst)
	if err != nil {
		return err
	}
	//goland:noinspection GoUnhandledErrorResult
	defer destFile.Close()

	if _, err := io.Copy(destFile, sourceFile); err != nil {
		return err
	}

	return destFile.Sync()
}

// ReplaceFile copies src next to dst under a hidden name and renames it over dst.
// dst keeps its previous content if the copy fails.
func ReplaceFile(src, dst string) error {
	partial := filepath.Join(filepath.Dir(dst), "."+filepath.Base(dst)+partialSuffix)

	if err := CopyFile(src, partial); err != nil {
		_ = os.Remove(partial)
		return fmt.Errorf("failed to copy %s: %w", src, err)
	}

	if err := os.Rename(partial, dst); err != nil {
		_ = os.Remove(partial)
		return fmt.Errorf("failed to move %s into place: %w", dst, err)
	}
	return nil
}

// RemoveIfExists removes a file or an empty directory, absence is not an error
func RemoveIfExists(path string) error {
	if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}

// FileHash calculates the SHA512 hash of a file
func FileHash(filePath string) (string, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return "", err
	}
	//goland:noinspection GoUnhandledErrorResult
	defer file.Close()

	hash := sha512.New()
	if _, err := io.Copy(hash, file); err != nil {
		return "", err
	}

	return hex.EncodeToString(hash.Sum(nil)), nil
}
