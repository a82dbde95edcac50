package cache

import (
	"context"
	"crypto/md5"
	"encoding/hex"
	"encoding/json"

	"go.uber.org/zap"

	"github.com/anzen-app/bosai-go/internal/domain"
)

// Service wraps a Store with digest keys and fail-open semantics. A broken
// backend never surfaces to callers: Get degrades to a miss, Put logs and
// drops the write.
type Service struct {
	store  Store
	logger *zap.Logger
}

func NewService(store Store, logger *zap.Logger) *Service {
	return &Service{store: store, logger: logger}
}

// MakeKey digests a translation key into the store key. The digest keeps
// store keys short and uniform regardless of text length or script.
func MakeKey(key domain.TranslationKey) string {
	sum := md5.Sum([]byte(key.SourceText + ":" + string(key.Target)))
	return hex.EncodeToString(sum[:])
}

// Get looks up a translation. Errors are logged and reported as a miss.
func (s *Service) Get(ctx context.Context, key domain.TranslationKey) (string, bool) {
	digest := MakeKey(key)
	value, ok, err := s.store.Get(ctx, digest)
	if err != nil {
		s.logger.Warn("Cache read failed, treating as miss",
			zap.String("key", digest),
			zap.Error(err),
		)
		return "", false
	}
	return value, ok
}

// Put stores a translation. Errors are logged and swallowed; losing a cache
// write only costs a future AI call.
func (s *Service) Put(ctx context.Context, key domain.TranslationKey, translated string) {
	digest := MakeKey(key)
	if err := s.store.Put(ctx, digest, translated); err != nil {
		s.logger.Warn("Cache write failed, dropping entry",
			zap.String("key", digest),
			zap.Error(err),
		)
	}
}

// GetJSON looks up a structured entry (warning text, safety guides) under a
// caller-supplied key and unmarshals it into dest.
func (s *Service) GetJSON(ctx context.Context, key string, dest any) bool {
	value, ok, err := s.store.Get(ctx, key)
	if err != nil {
		s.logger.Warn("Cache read failed, treating as miss",
			zap.String("key", key),
			zap.Error(err),
		)
		return false
	}
	if !ok {
		return false
	}
	if err := json.Unmarshal([]byte(value), dest); err != nil {
		s.logger.Warn("Cache entry corrupt, treating as miss",
			zap.String("key", key),
			zap.Error(err),
		)
		return false
	}
	return true
}

// PutJSON stores a structured entry under a caller-supplied key.
func (s *Service) PutJSON(ctx context.Context, key string, value any) {
	data, err := json.Marshal(value)
	if err != nil {
		s.logger.Warn("Cache marshal failed, dropping entry",
			zap.String("key", key),
			zap.Error(err),
		)
		return
	}
	if err := s.store.Put(ctx, key, string(data)); err != nil {
		s.logger.Warn("Cache write failed, dropping entry",
			zap.String("key", key),
			zap.Error(err),
		)
	}
}

func (s *Service) Close() error {
	return s.store.Close()
}
