package store

import "context"

// Backend is a durable home for the single serialized document. Implementations
// exist for memory, a local file, a key/blob SQL table and a Redis key.
type Backend interface {
	// Load returns the stored document bytes, or (nil, nil) when no document
	// has been stored yet.
	Load(ctx context.Context) ([]byte, error)
	// Save overwrites the stored document with data.
	Save(ctx context.Context, data []byte) error
}
