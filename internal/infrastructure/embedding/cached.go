package embedding

import (
	"context"
	"errors"
	"time"

	"github.com/fakeguard/backend/internal/domain"
)

// CachedEmbedder wraps an Embedder with a vector cache keyed by the exact
// description text. Embedding is deterministic per model version, so a cache
// hit is equivalent to calling the model again.
type CachedEmbedder struct {
	inner domain.Embedder
	cache domain.VectorCache
	ttl   time.Duration
}

// NewCached wraps inner with the given cache. A zero TTL defaults to 24h.
func NewCached(inner domain.Embedder, cache domain.VectorCache, ttl time.Duration) *CachedEmbedder {
	if ttl == 0 {
		ttl = 24 * time.Hour
	}
	return &CachedEmbedder{inner: inner, cache: cache, ttl: ttl}
}

// Embed returns the cached vector for text when present, otherwise calls the
// inner embedder and stores the result. Cache write failures are ignored;
// the vector is still returned.
func (e *CachedEmbedder) Embed(ctx context.Context, text string) ([]float32, error) {
	vector, err := e.cache.Get(ctx, text)
	if err == nil {
		return vector, nil
	}
	if !errors.Is(err, domain.ErrCacheMiss) {
		// Unusable cache should not take the service down.
		return e.inner.Embed(ctx, text)
	}

	vector, err = e.inner.Embed(ctx, text)
	if err != nil {
		return nil, err
	}

	_ = e.cache.Set(ctx, text, vector, e.ttl)
	return vector, nil
}
