// Package registry manages fonts that are already installed under the prefix
package registry

import (
	"errors"
	"io/fs"
	"os"
	"sort"

	"jonnyzzz.com/nerdfonts/fonterror"
	"jonnyzzz.com/nerdfonts/fsutil"
	"jonnyzzz.com/nerdfonts/layout"
	"jonnyzzz.com/nerdfonts/logging"
)

// Registry lists, activates and removes installed fonts. It never creates the
// font directory, only downloads do.
type Registry struct {
	layout layout.Layout
}

// New creates a Registry over l
func New(l layout.Layout) *Registry {
	return &Registry{layout: l}
}

// List returns the sorted names of installed fonts
func (r *Registry) List() ([]string, error) {
	entries, err := os.ReadDir(r.layout.FontDir())
	if err != nil {
		return nil, fonterror.Wrap(err, fonterror.OpenFontDirectory, "failed to read %s", r.layout.FontDir())
	}

	var names []string
	for _, entry := range entries {
		if !entry.Type().IsRegular() {
			continue
		}
		if name, ok := layout.FontName(entry.Name()); ok {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names, nil
}

// Set copies the installed font over the current font file
func (r *Registry) Set(name string) error {
	if err := layout.ValidateFontName(name); err != nil {
		return err
	}

	source := r.layout.FontFile(name)
	info, err := os.Stat(source)
	if err != nil {
		return fonterror.Wrap(err, fonterror.SetFontFile, "font %s is not installed", name).
			WithDetail("path", source)
	}
	if !info.Mode().IsRegular() {
		return fonterror.New(fonterror.SetFontFile, "font %s is not a regular file", name).
			WithDetail("path", source)
	}

	if err := fsutil.ReplaceFile(source, r.layout.CurrentFont()); err != nil {
		return fonterror.Wrap(err, fonterror.SetFontFile, "failed to set font %s", name)
	}

	logger := logging.GetLogger("registry")
	logger.Info().Str("font", name).Str("path", r.layout.CurrentFont()).Msg("Current font set")
	return nil
}

// Current returns the installed font whose content matches the current font
// file, or "" when there is no current font or it matches none of them
func (r *Registry) Current() (string, error) {
	logger := logging.GetLogger("registry")

	currentHash, err := fsutil.FileHash(r.layout.CurrentFont())
	if errors.Is(err, fs.ErrNotExist) {
		return "", nil
	}
	if err != nil {
		return "", fonterror.Wrap(err, fonterror.ReadCurrentFont, "failed to read %s", r.layout.CurrentFont())
	}

	names, err := r.List()
	if err != nil {
		return "", err
	}

	for _, name := range names {
		hash, err := fsutil.FileHash(r.layout.FontFile(name))
		if err != nil {
			logger.Debug().Err(err).Str("font", name).Msg("Skipping unreadable font")
			continue
		}
		if hash == currentHash {
			return name, nil
		}
	}
	return "", nil
}

// Remove deletes the named fonts, stopping at the first failure. The current
// font file is deleted as well unless exceptCurrent is set.
func (r *Registry) Remove(names []string, exceptCurrent bool) error {
	if len(names) == 0 {
		return fonterror.New(fonterror.InvalidArguments, "no font names given")
	}
	for _, name := range names {
		if err := layout.ValidateFontName(name); err != nil {
			return err
		}
	}

	logger := logging.GetLogger("registry")
	for _, name := range names {
		path := r.layout.FontFile(name)
		if err := os.Remove(path); err != nil {
			return fonterror.Wrap(err, fonterror.DeleteFontFile, "failed to delete font %s", name).
				WithDetail("path", path)
		}
		logger.Info().Str("font", name).Msg("Font removed")
	}

	if exceptCurrent {
		return nil
	}
	return r.removeCurrent()
}

// RemoveAll deletes the whole font directory and, unless exceptCurrent is
// set, the current font file
func (r *Registry) RemoveAll(exceptCurrent bool) error {
	if err := os.RemoveAll(r.layout.FontDir()); err != nil {
		return fonterror.Wrap(err, fonterror.DeleteFontDirectory, "failed to delete %s", r.layout.FontDir())
	}

	logger := logging.GetLogger("registry")
	logger.Info().Str("path", r.layout.FontDir()).Msg("All fonts removed")

	if exceptCurrent {
		return nil
	}
	return r.removeCurrent()
}

func (r *Registry) removeCurrent() error {
	if err := fsutil.RemoveIfExists(r.layout.CurrentFont()); err != nil {
		return fonterror.Wrap(err, fonterror.DeleteCurrentFont, "failed to delete %s", r.layout.CurrentFont())
	}
	return nil
}
