package rag

import (
	"context"
	"fmt"

	"github.com/richinex/persona/llm"
)

// Index holds document chunks and their precomputed embeddings,
// parallel-indexed: Chunks[i] corresponds to Embeddings[i]. An Index is
// immutable after construction and safe for concurrent reads.
type Index struct {
	Chunks     []string
	Embeddings [][]float32
}

// BuildIndex chunks the document and embeds every chunk once. Empty or
// whitespace-only text yields an empty index without calling the
// embedding service.
func BuildIndex(ctx context.Context, embedder llm.Embedder, text string, chunkSize int) (*Index, error) {
	chunks := Chunk(text, chunkSize)
	if len(chunks) == 0 {
		return &Index{}, nil
	}

	embeddings, err := embedder.Embed(ctx, chunks)
	if err != nil {
		return nil, fmt.Errorf("embedding document chunks: %w", err)
	}
	if len(embeddings) != len(chunks) {
		return nil, fmt.Errorf("embedder returned %d vectors for %d chunks", len(embeddings), len(chunks))
	}

	return &Index{Chunks: chunks, Embeddings: embeddings}, nil
}

// Len returns the number of indexed chunks.
func (ix *Index) Len() int {
	if ix == nil {
		return 0
	}
	return len(ix.Chunks)
}
