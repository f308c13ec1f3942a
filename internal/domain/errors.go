package domain

import "errors"

var (
	// ErrInvalidRequest is returned when a record is nil or malformed
	ErrInvalidRequest = errors.New("invalid product record")

	// ErrUnknownCategory is returned for a category with no field table or index
	ErrUnknownCategory = errors.New("unknown product category")

	// ErrEmbeddingFailure is returned when the embedding model call fails
	ErrEmbeddingFailure = errors.New("embedding request failed")

	// ErrIndexFailure is returned when the reference index query fails
	ErrIndexFailure = errors.New("reference index query failed")

	// ErrCacheMiss is returned when a vector is not found in the cache
	ErrCacheMiss = errors.New("cache miss")
)
