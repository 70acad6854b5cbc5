package install

import (
	"context"
	"fmt"
	"io"

	"jonnyzzz.com/nerdfonts/fonterror"
	"jonnyzzz.com/nerdfonts/layout"
	"jonnyzzz.com/nerdfonts/logging"
)

// Fetcher streams the remote archive of a font into sink
type Fetcher interface {
	ArchiveFormat() layout.ArchiveFormat
	Fetch(ctx context.Context, fontName string, sink io.Writer) error
}

// Extractor expands an archive into an existing empty directory
type Extractor interface {
	Extract(archive io.ReaderAt, size int64, format layout.ArchiveFormat, destDir string) error
}

// Service runs the fetch, extract, locate and install pipeline, one
// transaction per font
type Service struct {
	layout           layout.Layout
	fetcher          Fetcher
	extractor        Extractor
	installer        *Installer
	refreshFontCache bool
}

// NewService creates the installation service with all dependencies injected.
// Archives are stored and extracted in the format the fetcher downloads.
func NewService(l layout.Layout, fetcher Fetcher, extractor Extractor) *Service {
	return &Service{
		layout:    l,
		fetcher:   fetcher,
		extractor: extractor,
		installer: NewInstaller(l),
	}
}

// WithFontCacheRefresh makes Download run fc-cache after fonts were installed
func (s *Service) WithFontCacheRefresh(enabled bool) *Service {
	s.refreshFontCache = enabled
	return s
}

// Download installs the named fonts in order and stops at the first failure
func (s *Service) Download(ctx context.Context, fontNames []string) error {
	if len(fontNames) == 0 {
		return fonterror.New(fonterror.InvalidArguments, "no font names given")
	}
	for _, name := range fontNames {
		if err := layout.ValidateFontName(name); err != nil {
			return err
		}
	}
	if err := s.layout.CheckPrefix(); err != nil {
		return err
	}

	for _, name := range fontNames {
		if err := s.InstallFont(ctx, name); err != nil {
			return fmt.Errorf("failed to install %s: %w", name, err)
		}
	}

	if s.refreshFontCache {
		RefreshFontCache(s.layout.FontDir())
	}
	return nil
}

// InstallFont runs one complete transaction for fontName. No scratch state
// remains when it returns.
func (s *Service) InstallFont(ctx context.Context, fontName string) error {
	logger := logging.GetLogger("install")
	done := logging.LogOperationStart(logger, "install "+fontName)
	defer done()

	format := s.fetcher.ArchiveFormat()
	tx, err := BeginTransaction(s.layout, format)
	if err != nil {
		return err
	}
	defer tx.Close()

	if err := s.fetcher.Fetch(ctx, fontName, tx.Archive()); err != nil {
		return err
	}

	archive, size, err := tx.Rewind()
	if err != nil {
		return err
	}

	if err := s.extractor.Extract(archive, size, format, tx.Dir()); err != nil {
		return err
	}

	source, err := Locate(tx.Dir(), fontName)
	if err != nil {
		return err
	}

	return s.installer.Install(source, fontName)
}
