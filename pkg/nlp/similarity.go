package nlp

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/sync/semaphore"
)

// NeutralSimilarity is returned when there is no job description to compare
// against: similarity is undefined, and a mid-point avoids biasing the
// composite score either way.
const NeutralSimilarity = 50.0

// Engine computes semantic similarity between a resume and a job description.
// It also implements Embedder, gating every inference call behind a bounded
// semaphore so concurrent scoring requests are not serialized behind a single
// slow call, and so the provider is not flooded.
type Engine struct {
	embedder Embedder
	sem      *semaphore.Weighted
	log      *zap.Logger
}

// NewEngine wraps an embedding provider. maxInflight bounds concurrent
// embedding calls; values below 1 fall back to 1.
func NewEngine(embedder Embedder, maxInflight int64, log *zap.Logger) *Engine {
	if maxInflight < 1 {
		maxInflight = 1
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Engine{
		embedder: embedder,
		sem:      semaphore.NewWeighted(maxInflight),
		log:      log,
	}
}

// EmbedStrings passes through to the provider under the concurrency bound.
func (e *Engine) EmbedStrings(ctx context.Context, texts []string) ([][]float64, error) {
	if err := e.sem.Acquire(ctx, 1); err != nil {
		return nil, err
	}
	defer e.sem.Release(1)
	return e.embedder.EmbedStrings(ctx, texts)
}

// Similarity embeds both texts and maps cosine similarity onto [0,100]
// via (cos+1)/2*100, rounded to 2 decimals. An absent job description is not
// an error: the fixed neutral score is returned regardless of resume content.
func (e *Engine) Similarity(ctx context.Context, resumeText, jobDescription string) (float64, error) {
	if strings.TrimSpace(jobDescription) == "" {
		return NeutralSimilarity, nil
	}
	vecs, err := e.EmbedStrings(ctx, []string{resumeText, jobDescription})
	if err != nil {
		return 0, fmt.Errorf("embed texts: %w", err)
	}
	if len(vecs) != 2 {
		return 0, errors.New("embedder returned unexpected vector count")
	}
	cos := Cosine(vecs[0], vecs[1])
	normalized := (cos + 1) / 2
	if normalized < 0 {
		normalized = 0
	}
	if normalized > 1 {
		normalized = 1
	}
	return math.Round(normalized*100*100) / 100, nil
}

// Cosine returns the cosine similarity of two vectors, 0 when either has
// zero magnitude or lengths differ.
func Cosine(a, b []float64) float64 {
	if len(a) != len(b) || len(a) == 0 {
		return 0
	}
	var dot, normA, normB float64
	for i := range a {
		dot += a[i] * b[i]
		normA += a[i] * a[i]
		normB += b[i] * b[i]
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}
