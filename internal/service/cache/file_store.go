package cache

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"go.uber.org/zap"

	"github.com/anzen-app/bosai-go/pkg/errors"
)

// FileStore persists entries as a single JSON object on disk. The file is
// loaded lazily on first access; a missing or corrupt file starts an empty
// cache rather than failing. Writes go through a temp file and rename so a
// crash mid-write never truncates the cache.
type FileStore struct {
	path   string
	logger *zap.Logger

	loadOnce sync.Once
	mu       sync.Mutex
	entries  map[string]string
}

func NewFileStore(path string, logger *zap.Logger) *FileStore {
	return &FileStore{
		path:   path,
		logger: logger,
	}
}

func (f *FileStore) load() {
	f.entries = make(map[string]string)

	data, err := os.ReadFile(f.path)
	if err != nil {
		if !os.IsNotExist(err) {
			f.logger.Warn("Translation cache file unreadable, starting empty",
				zap.String("path", f.path),
				zap.Error(err),
			)
		}
		return
	}

	if err := json.Unmarshal(data, &f.entries); err != nil {
		f.logger.Warn("Translation cache file corrupt, starting empty",
			zap.String("path", f.path),
			zap.Error(err),
		)
		f.entries = make(map[string]string)
		return
	}

	f.logger.Info("Translation cache loaded",
		zap.String("path", f.path),
		zap.Int("entries", len(f.entries)),
	)
}

func (f *FileStore) Get(_ context.Context, key string) (string, bool, error) {
	f.loadOnce.Do(f.load)

	f.mu.Lock()
	defer f.mu.Unlock()
	v, ok := f.entries[key]
	return v, ok, nil
}

func (f *FileStore) Put(_ context.Context, key, value string) error {
	f.loadOnce.Do(f.load)

	f.mu.Lock()
	defer f.mu.Unlock()
	f.entries[key] = value
	return f.flushLocked(key)
}

// flushLocked writes the full entry map atomically. Caller holds f.mu.
func (f *FileStore) flushLocked(key string) error {
	data, err := json.MarshalIndent(f.entries, "", "  ")
	if err != nil {
		return errors.NewCacheError("marshal failed", "put", key, err)
	}

	dir := filepath.Dir(f.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return errors.NewCacheError("mkdir failed", "put", key, err)
	}

	tmp, err := os.CreateTemp(dir, ".cache-*.json")
	if err != nil {
		return errors.NewCacheError("temp file failed", "put", key, err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return errors.NewCacheError("write failed", "put", key, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return errors.NewCacheError("close failed", "put", key, err)
	}

	if err := os.Rename(tmpName, f.path); err != nil {
		os.Remove(tmpName)
		return errors.NewCacheError("rename failed", "put", key, err)
	}
	return nil
}

func (f *FileStore) Close() error { return nil }

// Len reports the number of loaded entries, forcing a load if needed.
func (f *FileStore) Len() int {
	f.loadOnce.Do(f.load)
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.entries)
}
