package asset

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/db47h/ofs"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleMap = `
name = "one"
width = 1
height = 1
palette = ["red", "#00ff00"]

[[tile]]
edges = [0, 1, 0, 1]
`

func writeFile(t *testing.T, name, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(name), 0o755))
	require.NoError(t, os.WriteFile(name, []byte(content), 0o644))
}

// newTestManager sets up two overlaid asset directories.
//
func newTestManager(t *testing.T) *Manager {
	t.Helper()
	base, over := t.TempDir(), t.TempDir()
	writeFile(t, filepath.Join(base, "maps", "one.toml"), sampleMap)
	writeFile(t, filepath.Join(base, "themes", "dark.toml"), `background = "black"`)
	writeFile(t, filepath.Join(over, "data", "hello.txt"), "hello, world")
	writeFile(t, filepath.Join(base, "maps", "bad.toml"), "width = ")

	var ovl ofs.Overlay
	require.NoError(t, ovl.Add(false, base, over))
	return NewManager(&ovl, MapPath("maps"), ThemePath("themes"), FilePath("data"))
}

func TestManagerLoad(t *testing.T) {
	m := newTestManager(t)
	defer m.Close()

	tm, err := m.Map("one.toml")
	require.NoError(t, err)
	assert.Equal(t, "one", tm.Name)
	assert.Equal(t, 1, tm.Len())

	again, err := m.Map("one.toml")
	require.NoError(t, err)
	assert.Same(t, tm, again)

	th, err := m.Theme("dark.toml")
	require.NoError(t, err)
	assert.Equal(t, float32(0), th.Background[0])

	data, err := m.File("hello.txt")
	require.NoError(t, err)
	assert.Equal(t, "hello, world", string(data))

	_, err = m.File("missing.txt")
	assert.Error(t, err)
	assert.False(t, m.Loaded(File("missing.txt")))
}

func TestManagerDiscard(t *testing.T) {
	m := newTestManager(t)

	_, err := m.File("hello.txt")
	require.NoError(t, err)
	assert.True(t, m.Loaded(File("hello.txt")))
	require.NoError(t, m.Discard(File("hello.txt")))
	assert.False(t, m.Loaded(File("hello.txt")))

	err = m.Discard(File("hello.txt"))
	assert.Equal(t, ErrMissing, errors.Cause(err))

	_, err = m.Map("one.toml")
	require.NoError(t, err)
	_, err = m.Theme("dark.toml")
	require.NoError(t, err)
	require.NoError(t, m.Close())
	assert.False(t, m.Loaded(Map("one.toml")))
	assert.False(t, m.Loaded(Theme("dark.toml")))
}

func TestManagerPreload(t *testing.T) {
	m := newTestManager(t)
	defer m.Close()

	_, err := m.File("hello.txt")
	require.NoError(t, err)

	rc, n := m.Preload([]Asset{
		Map("one.toml"),
		Theme("dark.toml"),
		File("hello.txt"),
		Map("one.toml"),
	}, false)
	assert.Equal(t, 2, n)
	require.NoError(t, Wait(rc))
	assert.True(t, m.Loaded(Map("one.toml")))
	assert.True(t, m.Loaded(Theme("dark.toml")))

	rc, n = m.Preload([]Asset{Map("one.toml"), Map("bad.toml"), Map("nope.toml")}, true)
	assert.Equal(t, 2, n)
	err = Wait(rc)
	require.Error(t, err)
	assert.Len(t, err.(errorList), 2)
	assert.True(t, m.Loaded(Map("one.toml")))
	assert.False(t, m.Loaded(Theme("dark.toml")), "flushed")
	assert.False(t, m.Loaded(File("hello.txt")), "flushed")
}

func TestAssetString(t *testing.T) {
	assert.Equal(t, "map asset a", Map("a").String())
	assert.Equal(t, "theme asset b", Theme("b").String())
	assert.Equal(t, "file asset c", File("c").String())
	assert.Equal(t, "unknown asset d", Asset{Type(9), "d"}.String())
}
