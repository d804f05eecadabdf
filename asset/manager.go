// Package asset provides asynchronous (pre)loading and caching of tile maps,
// themes and raw files from an ofs.FileSystem.
//
package asset

import (
	"io"
	"path"
	"runtime"
	"strings"
	"sync"

	"github.com/db47h/ofs"
	"github.com/db47h/tilebatch"
	"github.com/pkg/errors"
)

// ErrMissing is returned by Discard for assets that are neither loaded nor
// being loaded.
//
var ErrMissing = errors.New("asset not found")

type errorList []error

func (e errorList) Error() string {
	var sb strings.Builder
	for i, err := range e {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(err.Error())
	}
	return sb.String()
}

// Type designates the type of an asset.
//
type Type int

// Asset types.
const (
	TypeMap Type = iota
	TypeTheme
	TypeFile
)

// Asset uniquely describes an asset.
//
type Asset struct {
	Type
	Name string
}

func (a Asset) String() string {
	switch a.Type {
	case TypeMap:
		return "map asset " + a.Name
	case TypeTheme:
		return "theme asset " + a.Name
	case TypeFile:
		return "file asset " + a.Name
	}
	return "unknown asset " + a.Name
}

// Map, Theme and File return asset descriptors for use with Preload and
// Discard.
func Map(name string) Asset   { return Asset{TypeMap, name} }
func Theme(name string) Asset { return Asset{TypeTheme, name} }
func File(name string) Asset  { return Asset{TypeFile, name} }

// Result wraps the result from preloading an asset.
//
type Result struct {
	Asset
	Err error
}

type loader func(r io.Reader) (interface{}, error)

var loaders = [...]loader{
	TypeMap:   loadMap,
	TypeTheme: loadTheme,
	TypeFile:  loadFile,
}

// A Manager manages asynchronous (pre)loading and caching of assets. It is safe
// for concurrent use.
//
type Manager struct {
	fs      ofs.FileSystem
	cfg     config
	m       sync.Mutex
	cond    *sync.Cond
	assets  map[Asset]interface{}
	pending map[Asset]struct{}
}

type config struct {
	paths [len(loaders)]string
}

// Option is implemented by option functions passed as arguments to NewManager.
//
type Option interface {
	set(*config)
}

type cfn func(*config)

func (f cfn) set(cfg *config) {
	f(cfg)
}

func pathOption(t Type, dir string) Option {
	return cfn(func(cfg *config) {
		cfg.paths[t] = dir
	})
}

// MapPath returns an Option that sets the directory maps are loaded from.
//
func MapPath(dir string) Option { return pathOption(TypeMap, dir) }

// ThemePath returns an Option that sets the directory themes are loaded from.
//
func ThemePath(dir string) Option { return pathOption(TypeTheme, dir) }

// FilePath returns an Option that sets the directory raw files are loaded
// from.
//
func FilePath(dir string) Option { return pathOption(TypeFile, dir) }

// NewManager returns a new asset Manager reading from fs.
//
func NewManager(fs ofs.FileSystem, options ...Option) *Manager {
	m := &Manager{
		fs:      fs,
		assets:  make(map[Asset]interface{}),
		pending: make(map[Asset]struct{}),
	}
	for _, o := range options {
		o.set(&m.cfg)
	}
	m.cond = sync.NewCond(&m.m)
	return m
}

type loadState int

const (
	stateMissing loadState = iota
	statePending
	stateLoaded
)

func (m *Manager) lookup(a Asset) (interface{}, loadState) {
	if v, ok := m.assets[a]; ok {
		return v, stateLoaded
	}
	if _, ok := m.pending[a]; ok {
		return nil, statePending
	}
	return nil, stateMissing
}

func (m *Manager) assetPath(a Asset) string {
	if a.Type < 0 || int(a.Type) >= len(loaders) {
		return a.Name
	}
	return path.Join(m.cfg.paths[a.Type], a.Name)
}

// read opens and decodes a single asset. It must be called without holding
// m.m.
//
func (m *Manager) read(a Asset) (v interface{}, err error) {
	if a.Type < 0 || int(a.Type) >= len(loaders) {
		return nil, errors.Errorf("unknown asset type %d", a.Type)
	}
	name := m.assetPath(a)
	f, err := m.fs.Open(name)
	if err != nil {
		return nil, err
	}
	var r io.Reader = f
	if c, ok := r.(io.Closer); ok {
		defer func() {
			if cerr := c.Close(); err == nil {
				err = cerr
			}
		}()
	}
	tilebatch.Logger().Debug("asset load", "asset", a.String(), "path", name)
	return loaders[a.Type](r)
}

// load returns an asset from cache or synchronously loads it if not in the
// cache. If this asset is being loaded from another goroutine, load waits for
// it and returns the cached version. m.m must be held.
//
func (m *Manager) load(a Asset) (interface{}, error) {
	for {
		v, s := m.lookup(a)
		switch s {
		case stateMissing:
			m.pending[a] = struct{}{}
			m.m.Unlock()
			v, err := m.read(a)
			m.m.Lock()
			delete(m.pending, a)
			m.cond.Broadcast()
			if err != nil {
				return nil, errors.Wrapf(err, "load %s", a)
			}
			m.assets[a] = v
			return v, nil
		case stateLoaded:
			return v, nil
		}
		m.cond.Wait()
	}
}

func (m *Manager) get(a Asset) (interface{}, error) {
	m.m.Lock()
	defer m.m.Unlock()
	return m.load(a)
}

// Discard removes the given asset from the cache.
//
func (m *Manager) Discard(a Asset) (err error) {
	defer func() {
		if err != nil {
			err = errors.Wrapf(err, "discard %s", a)
		}
	}()
	m.m.Lock()
	for {
		if _, ok := m.assets[a]; ok {
			delete(m.assets, a)
			m.m.Unlock()
			return nil
		}
		if _, ok := m.pending[a]; !ok {
			m.m.Unlock()
			return ErrMissing
		}
		m.cond.Wait()
	}
}

// Loaded reports whether a is in the cache.
//
func (m *Manager) Loaded(a Asset) bool {
	m.m.Lock()
	_, s := m.lookup(a)
	m.m.Unlock()
	return s == stateLoaded
}

// Close discards all assets.
//
func (m *Manager) Close() error {
	m.m.Lock()
	defer m.m.Unlock()
	for k := range m.assets {
		delete(m.assets, k)
	}
	return nil
}

// Preload bulk preloads assets. If the flush argument is true, cached assets
// not present in the asset list will be removed from the cache. It returns a
// channel to read preload results from as well as the number of items that will
// actually be preloaded. This item count is informational only and callers
// should rely on the rc channel being closed to ensure that the operation is
// complete.
//
// Calling Preload concurrently may result in unexpected side effects, like
// flushing assets that should not be. An alternative is to build the assets
// slice concurrently and have a single goroutine call Preload and Wait.
//
func (m *Manager) Preload(assets []Asset, flush bool) (rc <-chan Result, n int) {
	m.m.Lock()
	if flush {
		keep := make(map[Asset]struct{}, len(assets))
		for _, a := range assets {
			keep[a] = struct{}{}
		}
		for k := range m.assets {
			if _, ok := keep[k]; !ok {
				delete(m.assets, k)
			}
		}
	}

	// mark assets as pending and ignore loaded/pending/duplicate assets
	todo := make([]Asset, 0, len(assets))
	for _, a := range assets {
		if _, s := m.lookup(a); s != stateMissing {
			continue
		}
		m.pending[a] = struct{}{}
		todo = append(todo, a)
	}
	m.m.Unlock()

	c := make(chan Result, len(todo))
	go m.preload(todo, c)
	return c, len(todo)
}

func (m *Manager) preload(assets []Asset, rc chan<- Result) {
	// spawn a limited number of workers. This is to prevent excessive
	// simultaneous disk access on mechanical hard drives.
	c := make(chan Asset)
	var wg sync.WaitGroup
	workers := 2 * runtime.NumCPU()
	if workers > len(assets) {
		workers = len(assets)
	}
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for a := range c {
				v, err := m.read(a)
				m.m.Lock()
				if err != nil {
					err = errors.Wrapf(err, "preload %s", a)
				} else {
					m.assets[a] = v
				}
				delete(m.pending, a)
				m.cond.Broadcast()
				m.m.Unlock()
				rc <- Result{Asset: a, Err: err}
			}
		}()
	}
	for _, a := range assets {
		c <- a
	}
	close(c)
	wg.Wait()
	close(rc)
}

// Wait waits for completion of a previous Preload and returns any load errors.
//
func Wait(rc <-chan Result) error {
	var errs errorList
	for r := range rc {
		if r.Err != nil {
			errs = append(errs, r.Err)
		}
	}
	if errs != nil {
		return errs
	}
	return nil
}
