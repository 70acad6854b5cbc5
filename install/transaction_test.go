package install

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jonnyzzz.com/nerdfonts/fonterror"
	"jonnyzzz.com/nerdfonts/layout"
)

func TestTransactionLifecycle(t *testing.T) {
	l := layout.New(t.TempDir())

	tx, err := BeginTransaction(l, layout.FormatZip)
	require.NoError(t, err)

	assert.DirExists(t, tx.Dir())
	assert.FileExists(t, l.ScratchArchive(layout.FormatZip))
	assert.DirExists(t, l.FontDir())

	_, err = tx.Archive().Write([]byte("archive bytes"))
	require.NoError(t, err)

	reader, size, err := tx.Rewind()
	require.NoError(t, err)
	assert.Equal(t, int64(len("archive bytes")), size)

	data, err := io.ReadAll(io.NewSectionReader(reader, 0, size))
	require.NoError(t, err)
	assert.Equal(t, "archive bytes", string(data))

	tx.Close()
	assert.NoDirExists(t, l.ScratchDir())
	assert.NoFileExists(t, l.ScratchArchive(layout.FormatZip))
	assert.DirExists(t, l.FontDir())

	// a second Close is harmless
	tx.Close()
}

func TestBeginTransactionRemovesLeftovers(t *testing.T) {
	l := layout.New(t.TempDir())
	require.NoError(t, os.MkdirAll(filepath.Join(l.ScratchDir(), "a", "b"), 0755))
	require.NoError(t, os.WriteFile(l.ScratchArchive(layout.FormatTarXz), []byte("old"), 0644))
	require.NoError(t, os.WriteFile(l.ScratchArchive(layout.FormatZip), []byte("old"), 0644))

	tx, err := BeginTransaction(l, layout.FormatZip)
	require.NoError(t, err)
	defer tx.Close()

	entries, err := os.ReadDir(tx.Dir())
	require.NoError(t, err)
	assert.Empty(t, entries)
	assert.NoFileExists(t, l.ScratchArchive(layout.FormatTarXz))

	info, err := os.Stat(l.ScratchArchive(layout.FormatZip))
	require.NoError(t, err)
	assert.Zero(t, info.Size())
}

func TestBeginTransactionFontDirBlocked(t *testing.T) {
	l := layout.New(t.TempDir())
	require.NoError(t, os.WriteFile(l.FontDir(), []byte("not a directory"), 0644))

	_, err := BeginTransaction(l, layout.FormatZip)
	require.Error(t, err)
	assert.True(t, fonterror.IsKind(err, fonterror.CreateFontDirectory))
	assert.NoDirExists(t, l.ScratchDir())
	assert.NoFileExists(t, l.ScratchArchive(layout.FormatZip))
}

func TestInstallerReplacesExistingFont(t *testing.T) {
	l := layout.New(t.TempDir())
	require.NoError(t, os.MkdirAll(l.FontDir(), 0755))
	require.NoError(t, os.WriteFile(l.FontFile("Hack"), []byte("old"), 0644))

	source := filepath.Join(t.TempDir(), "HackNerdFont-Regular.ttf")
	require.NoError(t, os.WriteFile(source, []byte("new"), 0644))

	require.NoError(t, NewInstaller(l).Install(source, "Hack"))
	data, err := os.ReadFile(l.FontFile("Hack"))
	require.NoError(t, err)
	assert.Equal(t, "new", string(data))

	entries, err := os.ReadDir(l.FontDir())
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestInstallerFailureKeepsExistingFont(t *testing.T) {
	l := layout.New(t.TempDir())
	require.NoError(t, os.MkdirAll(l.FontDir(), 0755))
	require.NoError(t, os.WriteFile(l.FontFile("Hack"), []byte("old"), 0644))

	err := NewInstaller(l).Install(filepath.Join(t.TempDir(), "missing.ttf"), "Hack")
	require.Error(t, err)
	assert.True(t, fonterror.IsKind(err, fonterror.SaveFontFile))

	data, err := os.ReadFile(l.FontFile("Hack"))
	require.NoError(t, err)
	assert.Equal(t, "old", string(data))
}
