package registry

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jonnyzzz.com/nerdfonts/fonterror"
	"jonnyzzz.com/nerdfonts/layout"
)

// installFonts fakes completed downloads, the content of each font is its name
func installFonts(t *testing.T, names ...string) layout.Layout {
	t.Helper()
	l := layout.New(t.TempDir())
	require.NoError(t, os.MkdirAll(l.FontDir(), 0755))
	for _, name := range names {
		require.NoError(t, os.WriteFile(l.FontFile(name), []byte("font "+name), 0644))
	}
	return l
}

func TestListReflectsDirectory(t *testing.T) {
	l := installFonts(t, "0xProto", "3270")

	names, err := New(l).List()
	require.NoError(t, err)
	assert.Equal(t, []string{"0xProto", "3270"}, names)
}

func TestListSkipsForeignEntries(t *testing.T) {
	l := installFonts(t, "Hack")
	require.NoError(t, os.WriteFile(filepath.Join(l.FontDir(), "README.md"), []byte("x"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(l.FontDir(), ".Iosevka.ttf.partial"), []byte("x"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(l.FontDir(), ".hidden.ttf"), []byte("x"), 0644))
	require.NoError(t, os.Mkdir(filepath.Join(l.FontDir(), "nested.ttf"), 0755))

	names, err := New(l).List()
	require.NoError(t, err)
	assert.Equal(t, []string{"Hack"}, names)
}

func TestListEmptyAndMissing(t *testing.T) {
	l := installFonts(t)
	names, err := New(l).List()
	require.NoError(t, err)
	assert.Empty(t, names)

	missing := layout.New(filepath.Join(t.TempDir(), "missing"))
	_, err = New(missing).List()
	assert.True(t, fonterror.IsKind(err, fonterror.OpenFontDirectory))
	assert.NoDirExists(t, missing.FontDir())
}

func TestSetCopiesAndDoesNotLink(t *testing.T) {
	l := installFonts(t, "0xProto", "3270")
	registry := New(l)

	require.NoError(t, registry.Set("0xProto"))
	require.NoError(t, os.Remove(l.FontFile("0xProto")))

	info, err := os.Lstat(l.CurrentFont())
	require.NoError(t, err)
	assert.True(t, info.Mode().IsRegular())

	data, err := os.ReadFile(l.CurrentFont())
	require.NoError(t, err)
	assert.Equal(t, "font 0xProto", string(data))
}

func TestSetOverwritesCurrent(t *testing.T) {
	l := installFonts(t, "0xProto", "3270")
	registry := New(l)

	require.NoError(t, registry.Set("0xProto"))
	require.NoError(t, registry.Set("3270"))

	data, err := os.ReadFile(l.CurrentFont())
	require.NoError(t, err)
	assert.Equal(t, "font 3270", string(data))

	entries, err := os.ReadDir(l.Prefix())
	require.NoError(t, err)
	var names []string
	for _, entry := range entries {
		names = append(names, entry.Name())
	}
	assert.ElementsMatch(t, []string{"font.ttf", "fonts"}, names)
}

func TestSetMissingFont(t *testing.T) {
	l := installFonts(t, "Hack")
	require.NoError(t, New(l).Set("Hack"))

	err := New(l).Set("Missing")
	assert.True(t, fonterror.IsKind(err, fonterror.SetFontFile))

	data, err := os.ReadFile(l.CurrentFont())
	require.NoError(t, err)
	assert.Equal(t, "font Hack", string(data))

	err = New(l).Set("../Hack")
	assert.True(t, fonterror.IsKind(err, fonterror.InvalidFontName))
}

func TestCurrent(t *testing.T) {
	l := installFonts(t, "0xProto", "3270")
	registry := New(l)

	name, err := registry.Current()
	require.NoError(t, err)
	assert.Equal(t, "", name)

	require.NoError(t, registry.Set("3270"))
	name, err = registry.Current()
	require.NoError(t, err)
	assert.Equal(t, "3270", name)

	require.NoError(t, os.WriteFile(l.FontFile("3270"), []byte("updated"), 0644))
	name, err = registry.Current()
	require.NoError(t, err)
	assert.Equal(t, "", name)
}

func TestCurrentUnreadable(t *testing.T) {
	l := installFonts(t, "Hack")
	require.NoError(t, os.Mkdir(l.CurrentFont(), 0755))

	_, err := New(l).Current()
	require.Error(t, err)
	assert.True(t, fonterror.IsKind(err, fonterror.ReadCurrentFont))
}

func TestRemoveSelected(t *testing.T) {
	l := installFonts(t, "0xProto", "3270")
	registry := New(l)
	require.NoError(t, registry.Set("3270"))

	require.NoError(t, registry.Remove([]string{"0xProto"}, false))

	assert.NoFileExists(t, l.FontFile("0xProto"))
	assert.NoFileExists(t, l.CurrentFont())
	assert.FileExists(t, l.FontFile("3270"))
}

func TestRemoveExceptCurrent(t *testing.T) {
	l := installFonts(t, "0xProto", "3270")
	registry := New(l)
	require.NoError(t, registry.Set("0xProto"))

	require.NoError(t, registry.Remove([]string{"0xProto"}, true))

	assert.NoFileExists(t, l.FontFile("0xProto"))
	assert.FileExists(t, l.CurrentFont())
}

func TestRemoveWithoutCurrentFont(t *testing.T) {
	l := installFonts(t, "Hack")
	require.NoError(t, New(l).Remove([]string{"Hack"}, false))
	assert.NoFileExists(t, l.FontFile("Hack"))
}

func TestRemoveStopsAtFirstFailure(t *testing.T) {
	l := installFonts(t, "A", "C")
	registry := New(l)
	require.NoError(t, registry.Set("C"))

	err := registry.Remove([]string{"A", "B", "C"}, false)
	require.Error(t, err)
	assert.True(t, fonterror.IsKind(err, fonterror.DeleteFontFile))

	assert.NoFileExists(t, l.FontFile("A"))
	assert.FileExists(t, l.FontFile("C"))
	assert.FileExists(t, l.CurrentFont())
}

func TestRemoveRequiresNames(t *testing.T) {
	l := installFonts(t, "Hack")
	err := New(l).Remove(nil, false)
	assert.True(t, fonterror.IsKind(err, fonterror.InvalidArguments))
}

func TestRemoveAll(t *testing.T) {
	tests := []struct {
		name          string
		exceptCurrent bool
	}{
		{"with current", false},
		{"except current", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := installFonts(t, "0xProto", "3270")
			registry := New(l)
			require.NoError(t, registry.Set("0xProto"))

			require.NoError(t, registry.RemoveAll(tt.exceptCurrent))

			assert.NoDirExists(t, l.FontDir())
			if tt.exceptCurrent {
				assert.FileExists(t, l.CurrentFont())
			} else {
				assert.NoFileExists(t, l.CurrentFont())
			}
		})
	}
}

func TestRemoveAllWhenNothingInstalled(t *testing.T) {
	l := layout.New(t.TempDir())
	require.NoError(t, New(l).RemoveAll(false))
}
