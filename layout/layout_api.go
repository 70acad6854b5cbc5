package layout

import (
	"os"
	"strings"

	"jonnyzzz.com/nerdfonts/fonterror"
)

// ValidateFontName rejects names that would escape the font directory
// or collide with hidden in-flight files
func ValidateFontName(name string) error {
	if name == "" {
		return fonterror.New(fonterror.InvalidFontName, "font name is empty")
	}
	if strings.ContainsAny(name, `/\`) {
		return fonterror.New(fonterror.InvalidFontName, "font name %q contains a path separator", name)
	}
	if strings.HasPrefix(name, ".") {
		return fonterror.New(fonterror.InvalidFontName, "font name %q must not start with a dot", name)
	}
	return nil
}

// ParseArchiveFormat maps a user supplied value to a supported ArchiveFormat
func ParseArchiveFormat(value string) (ArchiveFormat, error) {
	for _, f := range ArchiveFormats {
		if string(f) == value {
			return f, nil
		}
	}
	return "", fonterror.New(fonterror.InvalidArguments, "unsupported archive format %q, expected zip or tar.xz", value)
}

// CheckPrefix verifies the prefix exists and is a directory. It never creates it.
func (l Layout) CheckPrefix() error {
	dir, err := os.Open(l.prefix)
	if err != nil {
		return fonterror.Wrap(err, fonterror.OpenPrefixDirectory, "failed to open prefix directory %s", l.prefix)
	}
	//goland:noinspection GoUnhandledErrorResult
	defer dir.Close()

	info, err := dir.Stat()
	if err != nil {
		return fonterror.Wrap(err, fonterror.OpenPrefixDirectory, "failed to stat prefix directory %s", l.prefix)
	}
	if !info.IsDir() {
		return fonterror.New(fonterror.OpenPrefixDirectory, "prefix %s is not a directory", l.prefix)
	}
	return nil
}
