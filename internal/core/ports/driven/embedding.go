package driven

import "context"

// EmbeddingService generates vector embeddings from text.
// This is an optional service - when nil, the catalog index uses the
// keyword search path.
//
// Note: This is separate from VectorIndex which stores and searches
// vectors. EmbeddingService generates vectors; VectorIndex stores them.
type EmbeddingService interface {
	// Embed generates a vector embedding for the given text.
	Embed(ctx context.Context, text string) ([]float32, error)

	// EmbedBatch generates embeddings for multiple texts efficiently.
	EmbedBatch(ctx context.Context, texts []string) ([][]float32, error)

	// Dimensions returns the embedding vector size (e.g., 384, 768).
	// Resolved once from the model registry at configuration time and
	// checked against stored item vectors at catalog build time.
	Dimensions() int

	// ModelName returns the name of the embedding model being used.
	ModelName() string

	// Ping validates the service is reachable by making a lightweight
	// test request. Used at startup before committing to the embedding
	// search path.
	Ping(ctx context.Context) error

	// Close releases resources.
	Close() error
}
