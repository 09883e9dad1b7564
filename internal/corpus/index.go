package corpus

import (
	"context"
	"fmt"
	"math"
	"sort"
)

// Index is an in-memory similarity index over one corpus. Built once,
// read-only thereafter; safe for concurrent queries.
type Index struct {
	name     string
	embedder Embedder
	docs     []Document
	vectors  [][]float32
}

// BuildIndex embeds the given documents and returns a queryable index
func BuildIndex(ctx context.Context, name string, docs []Document, embedder Embedder) (*Index, error) {
	if len(docs) == 0 {
		return nil, fmt.Errorf("no documents to index for corpus %s", name)
	}

	texts := make([]string, len(docs))
	for i, doc := range docs {
		texts[i] = doc.Content
	}

	vectors, err := embedder.EmbedDocuments(ctx, texts)
	if err != nil {
		return nil, fmt.Errorf("embedding corpus %s failed: %w", name, err)
	}

	return &Index{
		name:     name,
		embedder: embedder,
		docs:     docs,
		vectors:  vectors,
	}, nil
}

// Name returns the corpus name
func (ix *Index) Name() string {
	return ix.name
}

// Len returns the number of indexed documents
func (ix *Index) Len() int {
	return len(ix.docs)
}

// Query returns the k documents most similar to text, ordered by descending
// cosine similarity. When k exceeds the corpus size, all documents are
// returned; duplicates are impossible since each document is scored once.
func (ix *Index) Query(ctx context.Context, text string, k int) ([]Document, error) {
	if k <= 0 {
		return nil, nil
	}

	queryVec, err := ix.embedder.EmbedQuery(ctx, text)
	if err != nil {
		return nil, fmt.Errorf("querying corpus %s failed: %w", ix.name, err)
	}

	type scored struct {
		idx   int
		score float64
	}
	results := make([]scored, len(ix.docs))
	for i, vec := range ix.vectors {
		results[i] = scored{idx: i, score: cosineSimilarity(queryVec, vec)}
	}

	sort.SliceStable(results, func(a, b int) bool {
		return results[a].score > results[b].score
	})

	if k > len(results) {
		k = len(results)
	}
	docs := make([]Document, k)
	for i := 0; i < k; i++ {
		docs[i] = ix.docs[results[i].idx]
	}
	return docs, nil
}

// cosineSimilarity computes the cosine similarity of two vectors. A length
// mismatch or zero vector scores 0 rather than erroring; the document simply
// ranks last.
func cosineSimilarity(a, b []float32) float64 {
	if len(a) != len(b) || len(a) == 0 {
		return 0
	}

	var dot, normA, normB float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}
