package rag

import (
	"context"
	"fmt"
	"math"
	"sort"

	"github.com/richinex/persona/llm"
)

// DefaultTopK is the number of excerpts returned per query.
const DefaultTopK = 3

// similarityEpsilon guards cosine similarity against zero-vector division.
const similarityEpsilon = 1e-9

// Retriever ranks indexed chunks against a query by cosine similarity.
type Retriever struct {
	embedder llm.Embedder
	index    *Index
}

// NewRetriever creates a retriever over a prebuilt index.
func NewRetriever(embedder llm.Embedder, index *Index) *Retriever {
	return &Retriever{embedder: embedder, index: index}
}

// Retrieve embeds the query once and returns up to topK chunk texts in
// descending similarity order. Ties order by ascending chunk index so
// results are reproducible. An empty index or topK <= 0 short-circuits
// without calling the embedding service.
func (r *Retriever) Retrieve(ctx context.Context, query string, topK int) ([]string, error) {
	if r.index.Len() == 0 || topK <= 0 {
		return nil, nil
	}

	vectors, err := r.embedder.Embed(ctx, []string{query})
	if err != nil {
		return nil, fmt.Errorf("embedding query: %w", err)
	}
	if len(vectors) != 1 {
		return nil, fmt.Errorf("embedder returned %d vectors for one query", len(vectors))
	}
	queryVec := vectors[0]

	type scored struct {
		index int
		score float64
	}
	scores := make([]scored, len(r.index.Embeddings))
	for i, emb := range r.index.Embeddings {
		scores[i] = scored{index: i, score: cosineSimilarity(queryVec, emb)}
	}

	sort.SliceStable(scores, func(a, b int) bool {
		if scores[a].score != scores[b].score {
			return scores[a].score > scores[b].score
		}
		return scores[a].index < scores[b].index
	})

	if topK > len(scores) {
		topK = len(scores)
	}
	results := make([]string, topK)
	for i := 0; i < topK; i++ {
		results[i] = r.index.Chunks[scores[i].index]
	}
	return results, nil
}

// cosineSimilarity computes (a·b) / (‖a‖·‖b‖ + ε). Vectors of unequal
// length compare over the shorter prefix.
func cosineSimilarity(a, b []float32) float64 {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}

	var dot, normA, normB float64
	for i := 0; i < n; i++ {
		dot += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}

	return dot / (math.Sqrt(normA)*math.Sqrt(normB) + similarityEpsilon)
}
