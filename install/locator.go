package install

import (
	"io/fs"
	"path/filepath"

	"jonnyzzz.com/nerdfonts/fonterror"
)

// RegularFontFileName is the archive member carrying the regular weight of a font
func RegularFontFileName(fontName string) string {
	return fontName + "NerdFont-Regular.ttf"
}

// Locate walks the extracted archive and returns the first regular file named
// exactly <fontName>NerdFont-Regular.ttf
func Locate(extractedDir, fontName string) (string, error) {
	want := RegularFontFileName(fontName)
	found := ""

	err := filepath.WalkDir(extractedDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.Type().IsRegular() && d.Name() == want {
			found = path
			return fs.SkipAll
		}
		return nil
	})
	if err != nil {
		return "", fonterror.Wrap(err, fonterror.ReadExtractedArchive, "failed to scan extracted archive %s", extractedDir)
	}

	if found == "" {
		return "", fonterror.New(fonterror.FontNotFound, "%s not found in the %s archive", want, fontName).
			WithDetail("expected", want)
	}
	return found, nil
}
