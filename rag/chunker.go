// Package rag provides document chunking, embedding and excerpt retrieval.
//
// Information Hiding:
// - Chunk boundaries and similarity math hidden from the agent
// - Embedding transport hidden behind llm.Embedder
package rag

import "strings"

// DefaultChunkSize is the number of words per chunk.
const DefaultChunkSize = 500

// Chunk splits text into word-bounded segments of at most size words each,
// preserving word order. The final segment may be shorter. Empty or
// whitespace-only text yields no segments.
func Chunk(text string, size int) []string {
	if size < 1 {
		size = DefaultChunkSize
	}

	words := strings.Fields(text)
	if len(words) == 0 {
		return nil
	}

	chunks := make([]string, 0, (len(words)+size-1)/size)
	for start := 0; start < len(words); start += size {
		end := start + size
		if end > len(words) {
			end = len(words)
		}
		chunks = append(chunks, strings.Join(words[start:end], " "))
	}
	return chunks
}
