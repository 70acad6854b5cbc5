package testutil

import (
	"archive/zip"
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("disk full")
}

func TestWriteArchivesReportErrors(t *testing.T) {
	files := FontArchiveFiles("Hack", "hack")

	assert.Error(t, WriteZip(failingWriter{}, files))
	assert.Error(t, WriteTarXz(failingWriter{}, files))
}

func TestWriteZipEntries(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteZip(&buf, map[string]string{
		"Hack/":                         "",
		"Hack/HackNerdFont-Regular.ttf": "hack",
	}))

	r, err := zip.NewReader(bytes.NewReader(buf.Bytes()), int64(buf.Len()))
	require.NoError(t, err)
	require.Len(t, r.File, 2)
	assert.True(t, r.File[0].FileInfo().IsDir())
	assert.Equal(t, RegularFontEntry("Hack"), r.File[1].FileInfo().Name())
}
