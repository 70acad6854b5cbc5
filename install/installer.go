package install

import (
	"jonnyzzz.com/nerdfonts/fonterror"
	"jonnyzzz.com/nerdfonts/fsutil"
	"jonnyzzz.com/nerdfonts/layout"
	"jonnyzzz.com/nerdfonts/logging"
)

// Installer promotes a located font file into the font directory
type Installer struct {
	layout layout.Layout
}

// NewInstaller creates an installer writing into l.FontDir()
func NewInstaller(l layout.Layout) *Installer {
	return &Installer{layout: l}
}

// Install copies sourcePath to <prefix>/fonts/<fontName>.ttf, replacing an
// existing file only once the new copy is complete
func (i *Installer) Install(sourcePath, fontName string) error {
	dest := i.layout.FontFile(fontName)

	if err := fsutil.ReplaceFile(sourcePath, dest); err != nil {
		return fonterror.Wrap(err, fonterror.SaveFontFile, "failed to save font %s", fontName)
	}

	logger := logging.GetLogger("install")
	logger.Info().Str("font", fontName).Str("path", dest).Msg("Font installed")
	return nil
}
