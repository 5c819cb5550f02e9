// Package assets handles model loading and caching.
package assets

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"
	"go.uber.org/zap"

	"github.com/Faultbox/wavemesh/internal/logger"
	"github.com/Faultbox/wavemesh/pkg/formats"
	"github.com/Faultbox/wavemesh/pkg/mesh"
)

// ErrNotFound is returned when no root contains the requested file.
var ErrNotFound = errors.New("asset not found")

// Model is a parsed and built mesh.
type Model struct {
	Path    string
	Root    string
	Mesh    *mesh.Mesh
	Buffers *mesh.Buffers
}

type root struct {
	name string
	fsys fs.FS
}

// Manager loads models from an ordered set of roots and keeps the most
// recently used ones built in memory.
type Manager struct {
	roots []root
	cache *lru.Cache[string, *Model]
	mu    sync.RWMutex
	log   *zap.Logger

	statsMu sync.Mutex
	hits    int
	misses  int
}

// NewManager creates a manager that caches up to size models.
func NewManager(size int) (*Manager, error) {
	cache, err := lru.New[string, *Model](size)
	if err != nil {
		return nil, fmt.Errorf("creating model cache: %w", err)
	}
	return &Manager{
		cache: cache,
		log:   logger.Named("assets"),
	}, nil
}

// AddDir adds a directory on disk as a root.
func (m *Manager) AddDir(dir string) error {
	info, err := os.Stat(dir)
	if err != nil {
		return fmt.Errorf("adding root %s: %w", dir, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("adding root %s: not a directory", dir)
	}
	m.AddFS(dir, os.DirFS(dir))
	return nil
}

// AddFS adds a root. Roots are searched in reverse order (last added =
// highest priority).
func (m *Manager) AddFS(name string, fsys fs.FS) {
	m.mu.Lock()
	m.roots = append(m.roots, root{name: name, fsys: fsys})
	m.mu.Unlock()

	m.log.Debug("root added", zap.String("root", name))
}

// ReadFile returns the raw bytes of name from the highest-priority root
// that has it. Absolute paths and paths leaving the roots with ".." are read
// from disk directly; their directory is reported as the root.
func (m *Manager) ReadFile(name string) ([]byte, string, error) {
	if IsExternal(name) {
		return readExternal(name)
	}
	name = path.Clean(filepath.ToSlash(name))

	m.mu.RLock()
	defer m.mu.RUnlock()

	for i := len(m.roots) - 1; i >= 0; i-- {
		data, err := fs.ReadFile(m.roots[i].fsys, name)
		if err == nil {
			return data, m.roots[i].name, nil
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, "", fmt.Errorf("reading %s from %s: %w", name, m.roots[i].name, err)
		}
	}
	return nil, "", fmt.Errorf("%w: %s", ErrNotFound, name)
}

// IsExternal reports whether name cannot be looked up inside a root.
func IsExternal(name string) bool {
	if filepath.IsAbs(name) {
		return true
	}
	return !fs.ValidPath(path.Clean(filepath.ToSlash(name)))
}

func readExternal(name string) ([]byte, string, error) {
	dir := filepath.Dir(name)
	data, err := os.ReadFile(name)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, "", fmt.Errorf("%w: %s", ErrNotFound, name)
	}
	if err != nil {
		return nil, "", fmt.Errorf("reading %s: %w", name, err)
	}
	return data, dir, nil
}

// cacheKey identifies name independent of spelling. External paths are keyed
// by their absolute form.
func cacheKey(name string) string {
	if IsExternal(name) {
		if abs, err := filepath.Abs(name); err == nil {
			return abs
		}
		return filepath.Clean(name)
	}
	return path.Clean(filepath.ToSlash(name))
}

// Load returns the built model for an OBJ file, parsing it on first use.
func (m *Manager) Load(name string) (*Model, error) {
	key := cacheKey(name)
	if model, ok := m.cache.Get(key); ok {
		m.count(true)
		return model, nil
	}
	m.count(false)

	data, rootName, err := m.ReadFile(key)
	if err != nil {
		return nil, err
	}

	msh, err := formats.ParseOBJ(data)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", key, err)
	}
	buf, err := msh.Build()
	if err != nil {
		return nil, fmt.Errorf("building %s: %w", key, err)
	}

	model := &Model{Path: key, Root: rootName, Mesh: msh, Buffers: buf}
	if evicted := m.cache.Add(key, model); evicted {
		m.log.Debug("model cache full, evicted oldest entry")
	}

	m.log.Info("model loaded",
		zap.String("path", key),
		zap.String("root", rootName),
		zap.Int("parts", msh.PartCount()),
		zap.Int("indices", msh.IndexCount()),
	)
	return model, nil
}

func (m *Manager) count(hit bool) {
	m.statsMu.Lock()
	defer m.statsMu.Unlock()
	if hit {
		m.hits++
	} else {
		m.misses++
	}
}

// Stats returns cache statistics.
func (m *Manager) Stats() (hits, misses int) {
	m.statsMu.Lock()
	defer m.statsMu.Unlock()
	return m.hits, m.misses
}

// Cached returns the number of models held in the cache.
func (m *Manager) Cached() int {
	return m.cache.Len()
}

// Purge drops every cached model and resets statistics.
func (m *Manager) Purge() {
	m.cache.Purge()

	m.statsMu.Lock()
	m.hits = 0
	m.misses = 0
	m.statsMu.Unlock()
}
