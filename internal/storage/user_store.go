package storage

import (
	"fmt"
	"ntd/internal/providers"
	"ntd/internal/storage/interfaces"
	"ntd/internal/structures"
	"os"
	"path/filepath"
	"strconv"
	"sync"

	json "github.com/goccy/go-json"
)

// DefaultScope is the sentinel partition used while no user is signed in.
const DefaultScope = "default"

// Store hands out durable key-value namespaces partitioned by user scope.
// A namespace is one compressed JSON file under the data dir; the file name
// is derived deterministically from (baseName, sanitized scope), so every
// Open of the same pair observes the same underlying storage.
type Store struct {
	mu         sync.Mutex
	dir        string
	namespaces map[string]*Namespace
	compressor interfaces.CompressorInterface
	logger     providers.Logger
}

func NewStore(conf *structures.Config, compressor interfaces.CompressorInterface, logger providers.Logger) (*Store, error) {
	if err := os.MkdirAll(conf.Storage.DataDir, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}
	return &Store{
		dir:        conf.Storage.DataDir,
		namespaces: make(map[string]*Namespace),
		compressor: compressor,
		logger:     logger,
	}, nil
}

// SanitizeScope replaces every non-alphanumeric rune so a scope (usually an
// email address) is safe as part of a file name.
func SanitizeScope(scope string) string {
	if scope == "" {
		return DefaultScope
	}
	out := make([]rune, 0, len(scope))
	for _, r := range scope {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			out = append(out, r)
		default:
			out = append(out, '_')
		}
	}
	return string(out)
}

// Open returns the namespace for (baseName, userScope), loading it from disk
// on first access. Namespaces are cached so concurrent callers share one
// in-memory view.
func (s *Store) Open(baseName, userScope string) *Namespace {
	name := baseName + "_" + SanitizeScope(userScope)

	s.mu.Lock()
	defer s.mu.Unlock()

	if ns, ok := s.namespaces[name]; ok {
		return ns
	}

	ns := &Namespace{
		path:       filepath.Join(s.dir, name+".dat"),
		data:       make(map[string]string),
		compressor: s.compressor,
		logger:     s.logger,
	}
	ns.load()
	s.namespaces[name] = ns
	return ns
}

// FlushAll persists every dirty namespace. Called by the scheduler tick and
// on shutdown.
func (s *Store) FlushAll() error {
	s.mu.Lock()
	namespaces := make([]*Namespace, 0, len(s.namespaces))
	for _, ns := range s.namespaces {
		namespaces = append(namespaces, ns)
	}
	s.mu.Unlock()

	var firstErr error
	for _, ns := range namespaces {
		if err := ns.Flush(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

func (s *Store) Close() error {
	err := s.FlushAll()
	s.compressor.Close()
	return err
}

// Namespace is a durable map[string]string. Mutations update the in-memory
// view immediately (read-your-own-writes) and mark the namespace dirty for
// the next flush. Clear is flushed synchronously so a partition erase is
// durable the moment it returns.
type Namespace struct {
	mu         sync.RWMutex
	path       string
	data       map[string]string
	dirty      bool
	compressor interfaces.CompressorInterface
	logger     providers.Logger
}

// load reads the backing file. A missing file is a fresh namespace; a corrupt
// one degrades to empty and is logged, never surfaced.
func (ns *Namespace) load() {
	raw, err := os.ReadFile(ns.path)
	if err != nil {
		if !os.IsNotExist(err) {
			ns.logger.Errorf(providers.TypeApp, "Cannot read namespace %s: %s", ns.path, err)
		}
		return
	}

	decompressed, err := ns.compressor.Decompress(raw)
	if err != nil {
		ns.logger.Errorf(providers.TypeApp, "Cannot decompress namespace %s, starting empty: %s", ns.path, err)
		return
	}

	var data map[string]string
	if err := json.Unmarshal(decompressed, &data); err != nil {
		ns.logger.Errorf(providers.TypeApp, "Corrupt namespace %s, starting empty: %s", ns.path, err)
		return
	}
	ns.data = data
}

func (ns *Namespace) Get(key string) (string, bool) {
	ns.mu.RLock()
	defer ns.mu.RUnlock()
	val, ok := ns.data[key]
	return val, ok
}

func (ns *Namespace) Put(key, value string) {
	ns.mu.Lock()
	defer ns.mu.Unlock()
	ns.data[key] = value
	ns.dirty = true
}

func (ns *Namespace) Remove(key string) {
	ns.mu.Lock()
	defer ns.mu.Unlock()
	if _, ok := ns.data[key]; ok {
		delete(ns.data, key)
		ns.dirty = true
	}
}

func (ns *Namespace) GetInt(key string, fallback int) int {
	val, ok := ns.Get(key)
	if !ok {
		return fallback
	}
	n, err := strconv.Atoi(val)
	if err != nil {
		return fallback
	}
	return n
}

func (ns *Namespace) PutInt(key string, value int) {
	ns.Put(key, strconv.Itoa(value))
}

// keys returns a copy of the stored key set.
func (ns *Namespace) keys() []string {
	ns.mu.RLock()
	defer ns.mu.RUnlock()
	keys := make([]string, 0, len(ns.data))
	for k := range ns.data {
		keys = append(keys, k)
	}
	return keys
}

// Clear drops every key and removes the backing file.
func (ns *Namespace) Clear() error {
	ns.mu.Lock()
	defer ns.mu.Unlock()
	ns.data = make(map[string]string)
	ns.dirty = false
	if err := os.Remove(ns.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove namespace file: %w", err)
	}
	return nil
}

// Flush writes the namespace atomically: tmp file, fsync, rename.
func (ns *Namespace) Flush() error {
	ns.mu.Lock()
	defer ns.mu.Unlock()

	if !ns.dirty {
		return nil
	}

	jsonData, err := json.Marshal(ns.data)
	if err != nil {
		return err
	}
	data, err := ns.compressor.Compress(jsonData)
	if err != nil {
		return err
	}

	tmpFile := ns.path + ".tmp"
	file, err := os.Create(tmpFile)
	if err != nil {
		return err
	}

	_, err = file.Write(data)
	if err != nil {
		file.Close()
		os.Remove(tmpFile)
		return err
	}

	if err = file.Sync(); err != nil {
		file.Close()
		os.Remove(tmpFile)
		return err
	}

	if err = file.Close(); err != nil {
		os.Remove(tmpFile)
		return err
	}

	if err = os.Rename(tmpFile, ns.path); err != nil {
		return err
	}
	ns.dirty = false
	return nil
}
