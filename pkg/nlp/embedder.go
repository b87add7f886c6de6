package nlp

import "context"

// Embedder is a minimal abstraction over a sentence-embedding model.
// It intentionally hides concrete providers to preserve dependency direction.
type Embedder interface {
	// EmbedStrings converts texts into fixed-length vectors, one per input,
	// in input order.
	EmbedStrings(ctx context.Context, texts []string) ([][]float64, error)
}
