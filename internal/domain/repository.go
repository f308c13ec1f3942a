package domain

import (
	"context"
	"time"
)

// ReferenceMatch is one entry returned by the nearest-neighbor index: a
// similarity score in [0,1] and the metadata text of the stored reference
// description (label marker plus optional curator reason).
type ReferenceMatch struct {
	Score    float64
	Metadata string
}

// Embedder turns a product description into a fixed-length vector. The
// external model is assumed deterministic for identical input text under the
// same model version.
type Embedder interface {
	Embed(ctx context.Context, text string) ([]float32, error)
}

// VectorIndex is a read-only nearest-neighbor index over labeled reference
// embeddings. Query returns up to topK matches ordered by descending
// similarity, metadata included.
type VectorIndex interface {
	Query(ctx context.Context, vector []float32, topK int) ([]ReferenceMatch, error)
}

// VectorCache stores embedding vectors keyed by description text. Safe to
// use because embedding is deterministic; verdicts themselves are never
// cached.
type VectorCache interface {
	Get(ctx context.Context, key string) ([]float32, error)
	Set(ctx context.Context, key string, vector []float32, ttl time.Duration) error
}
