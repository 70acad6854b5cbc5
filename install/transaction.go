package install

import (
	"io"
	"os"

	"github.com/rs/zerolog"

	"jonnyzzz.com/nerdfonts/fonterror"
	"jonnyzzz.com/nerdfonts/fsutil"
	"jonnyzzz.com/nerdfonts/layout"
	"jonnyzzz.com/nerdfonts/logging"
)

// Transaction owns the scratch archive and scratch directory of one font
// installation. Close must be called on every path once BeginTransaction succeeds.
type Transaction struct {
	layout  layout.Layout
	format  layout.ArchiveFormat
	archive *os.File
	logger  zerolog.Logger
}

// BeginTransaction clears leftovers of a crashed run, creates fresh scratch state
// and makes sure the font directory exists
func BeginTransaction(l layout.Layout, format layout.ArchiveFormat) (*Transaction, error) {
	logger := logging.GetLogger("transaction")

	if err := removeLeftovers(l); err != nil {
		return nil, err
	}

	if err := os.Mkdir(l.ScratchDir(), 0755); err != nil {
		return nil, fonterror.Wrap(err, fonterror.CreateTemporaryDirectory, "failed to create %s", l.ScratchDir())
	}

	tx := &Transaction{layout: l, format: format, logger: logger}

	archive, err := os.OpenFile(l.ScratchArchive(format), os.O_RDWR|os.O_CREATE|os.O_EXCL, 0644)
	if err != nil {
		tx.Close()
		return nil, fonterror.Wrap(err, fonterror.CreateTemporaryZipFile, "failed to create %s", l.ScratchArchive(format))
	}
	tx.archive = archive

	if err := os.MkdirAll(l.FontDir(), 0755); err != nil {
		tx.Close()
		return nil, fonterror.Wrap(err, fonterror.CreateFontDirectory, "failed to create %s", l.FontDir())
	}

	logger.Debug().Str("dir", l.ScratchDir()).Str("archive", archive.Name()).Msg("Transaction started")
	return tx, nil
}

// removeLeftovers deletes scratch state of every archive format, absence is fine
func removeLeftovers(l layout.Layout) error {
	if err := os.RemoveAll(l.ScratchDir()); err != nil {
		return fonterror.Wrap(err, fonterror.DeleteTemporaryDirectory, "failed to delete leftover %s", l.ScratchDir())
	}
	for _, format := range layout.ArchiveFormats {
		if err := fsutil.RemoveIfExists(l.ScratchArchive(format)); err != nil {
			return fonterror.Wrap(err, fonterror.DeleteTemporaryZipFile, "failed to delete leftover %s", l.ScratchArchive(format))
		}
	}
	return nil
}

// Archive is the sink the fetcher writes into
func (tx *Transaction) Archive() io.Writer {
	return tx.archive
}

// Dir is the scratch extraction directory
func (tx *Transaction) Dir() string {
	return tx.layout.ScratchDir()
}

// Rewind flushes the downloaded archive and returns it for reading from the start
func (tx *Transaction) Rewind() (io.ReaderAt, int64, error) {
	if err := tx.archive.Sync(); err != nil {
		return nil, 0, fonterror.Wrap(err, fonterror.FlushTemporaryZipFile, "failed to flush %s", tx.archive.Name())
	}
	size, err := tx.archive.Seek(0, io.SeekEnd)
	if err != nil {
		return nil, 0, fonterror.Wrap(err, fonterror.FlushTemporaryZipFile, "failed to measure %s", tx.archive.Name())
	}
	if _, err := tx.archive.Seek(0, io.SeekStart); err != nil {
		return nil, 0, fonterror.Wrap(err, fonterror.FlushTemporaryZipFile, "failed to rewind %s", tx.archive.Name())
	}
	return tx.archive, size, nil
}

// Close removes all scratch state. Failures are logged and never returned so
// they cannot hide the outcome of the transaction.
func (tx *Transaction) Close() {
	if tx.archive != nil {
		if err := tx.archive.Close(); err != nil {
			tx.logger.Warn().Err(err).Str("path", tx.archive.Name()).Msg("Failed to close scratch archive")
		}
		tx.archive = nil
	}

	if err := fsutil.RemoveIfExists(tx.layout.ScratchArchive(tx.format)); err != nil {
		tx.logger.Warn().Err(err).Str("path", tx.layout.ScratchArchive(tx.format)).Msg("Failed to delete scratch archive")
	}
	if err := os.RemoveAll(tx.layout.ScratchDir()); err != nil {
		tx.logger.Warn().Err(err).Str("path", tx.layout.ScratchDir()).Msg("Failed to delete scratch directory")
	}

	tx.logger.Debug().Msg("Transaction closed")
}
