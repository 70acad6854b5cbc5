package unpack

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jonnyzzz.com/nerdfonts/fonterror"
	"jonnyzzz.com/nerdfonts/layout"
	"jonnyzzz.com/nerdfonts/testutil"
)

func extractBytes(t *testing.T, data []byte, format layout.ArchiveFormat) (string, error) {
	t.Helper()
	destDir := filepath.Join(t.TempDir(), "tmp")
	require.NoError(t, os.Mkdir(destDir, 0755))

	err := NewExtractor().Extract(bytes.NewReader(data), int64(len(data)), format, destDir)
	return destDir, err
}

func assertFileContent(t *testing.T, path, want string) {
	t.Helper()
	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, want, string(got))
}

func TestExtractPreservesStructure(t *testing.T) {
	files := map[string]string{
		"0xProto/":                                "",
		"0xProto/0xProtoNerdFont-Regular.ttf":     "regular",
		"0xProto/nested/0xProtoNerdFont-Bold.ttf": "bold",
		"README.md":                               "readme",
	}

	archives := map[layout.ArchiveFormat][]byte{
		layout.FormatZip:   testutil.BuildZip(t, files),
		layout.FormatTarXz: testutil.BuildTarXz(t, files),
	}

	for format, data := range archives {
		t.Run(string(format), func(t *testing.T) {
			destDir, err := extractBytes(t, data, format)
			require.NoError(t, err)

			assertFileContent(t, filepath.Join(destDir, "0xProto", "0xProtoNerdFont-Regular.ttf"), "regular")
			assertFileContent(t, filepath.Join(destDir, "0xProto", "nested", "0xProtoNerdFont-Bold.ttf"), "bold")
			assertFileContent(t, filepath.Join(destDir, "README.md"), "readme")
		})
	}
}

func TestExtractCorruptArchive(t *testing.T) {
	for _, format := range layout.ArchiveFormats {
		t.Run(string(format), func(t *testing.T) {
			_, err := extractBytes(t, []byte("this is not an archive at all"), format)
			require.Error(t, err)
			assert.True(t, fonterror.IsKind(err, fonterror.FailedZipExtraction))
		})
	}
}

func TestExtractTruncatedArchive(t *testing.T) {
	files := testutil.FontArchiveFiles("3270", string(bytes.Repeat([]byte("glyph"), 1000)))

	for format, data := range map[layout.ArchiveFormat][]byte{
		layout.FormatZip:   testutil.BuildZip(t, files),
		layout.FormatTarXz: testutil.BuildTarXz(t, files),
	} {
		t.Run(string(format), func(t *testing.T) {
			_, err := extractBytes(t, data[:len(data)/2], format)
			assert.True(t, fonterror.IsKind(err, fonterror.FailedZipExtraction))
		})
	}
}

func TestExtractRejectsPathTraversal(t *testing.T) {
	files := map[string]string{"../escape.ttf": "evil"}

	for format, data := range map[layout.ArchiveFormat][]byte{
		layout.FormatZip:   testutil.BuildZip(t, files),
		layout.FormatTarXz: testutil.BuildTarXz(t, files),
	} {
		t.Run(string(format), func(t *testing.T) {
			destDir, err := extractBytes(t, data, format)
			assert.True(t, fonterror.IsKind(err, fonterror.FailedZipExtraction))

			_, statErr := os.Stat(filepath.Join(filepath.Dir(destDir), "escape.ttf"))
			assert.True(t, os.IsNotExist(statErr))
		})
	}
}

func TestEntryPath(t *testing.T) {
	target, err := entryPath("/prefix/tmp", "a/b.ttf")
	require.NoError(t, err)
	assert.Equal(t, "/prefix/tmp/a/b.ttf", target)

	target, err = entryPath("/prefix/tmp", "./")
	require.NoError(t, err)
	assert.Equal(t, "/prefix/tmp", target)

	_, err = entryPath("/prefix/tmp", "../tmp2/x")
	assert.Error(t, err)
}
