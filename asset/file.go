package asset

import (
	"io"

	"github.com/db47h/tilebatch/tilemap"
	"github.com/pkg/errors"
)

type file []byte

func loadFile(r io.Reader) (interface{}, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return file(data), nil
}

func loadMap(r io.Reader) (interface{}, error) {
	return tilemap.Decode(r)
}

func loadTheme(r io.Reader) (interface{}, error) {
	return tilemap.DecodeTheme(r)
}

// File returns the contents of the named raw file. The returned slice is
// shared with the cache and must not be modified.
//
func (m *Manager) File(name string) ([]byte, error) {
	v, err := m.get(File(name))
	if err != nil {
		return nil, err
	}
	if data, ok := v.(file); ok {
		return data, nil
	}
	return nil, errors.Errorf("asset %s is not a raw file", name)
}

// Map returns the named tile map. Maps are mutable: callers that modify the
// returned map modify the cached copy.
//
func (m *Manager) Map(name string) (*tilemap.Map, error) {
	v, err := m.get(Map(name))
	if err != nil {
		return nil, err
	}
	if tm, ok := v.(*tilemap.Map); ok {
		return tm, nil
	}
	return nil, errors.Errorf("asset %s is not a map", name)
}

// Theme returns the named theme.
//
func (m *Manager) Theme(name string) (*tilemap.Theme, error) {
	v, err := m.get(Theme(name))
	if err != nil {
		return nil, err
	}
	if th, ok := v.(*tilemap.Theme); ok {
		return th, nil
	}
	return nil, errors.Errorf("asset %s is not a theme", name)
}
