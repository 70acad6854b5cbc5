package layout

import (
	"path/filepath"
)

const (
	fontDirName       = "fonts"
	currentFontName   = "font.ttf"
	scratchDirName    = "tmp"
	scratchFilePrefix = "tmp."
	fontExtension     = ".ttf"
)

// ArchiveFormat is the remote archive flavour, it doubles as the file extension
type ArchiveFormat string

const (
	FormatZip   ArchiveFormat = "zip"
	FormatTarXz ArchiveFormat = "tar.xz"
)

// ArchiveFormats lists every supported format
var ArchiveFormats = []ArchiveFormat{FormatZip, FormatTarXz}

// Layout resolves every managed path under the prefix directory
type Layout struct {
	prefix string
}

// New creates a Layout rooted at the given absolute prefix
func New(prefix string) Layout {
	return Layout{prefix: filepath.Clean(prefix)}
}

// Prefix returns the prefix directory
func (l Layout) Prefix() string {
	return l.prefix
}

// FontDir returns <prefix>/fonts
func (l Layout) FontDir() string {
	return filepath.Join(l.prefix, fontDirName)
}

// FontFile returns <prefix>/fonts/<name>.ttf
func (l Layout) FontFile(name string) string {
	return filepath.Join(l.FontDir(), name+fontExtension)
}

// CurrentFont returns <prefix>/font.ttf
func (l Layout) CurrentFont() string {
	return filepath.Join(l.prefix, currentFontName)
}

// ScratchDir returns <prefix>/tmp
func (l Layout) ScratchDir() string {
	return filepath.Join(l.prefix, scratchDirName)
}

// ScratchArchive returns <prefix>/tmp.<format>
func (l Layout) ScratchArchive(format ArchiveFormat) string {
	return filepath.Join(l.prefix, scratchFilePrefix+string(format))
}

// FontName strips the font extension from a font directory entry name.
// The second result is false for entries that are not managed font files.
func FontName(fileName string) (string, bool) {
	if filepath.Ext(fileName) != fontExtension {
		return "", false
	}
	name := fileName[:len(fileName)-len(fontExtension)]
	if name == "" || name[0] == '.' {
		return "", false
	}
	return name, true
}
