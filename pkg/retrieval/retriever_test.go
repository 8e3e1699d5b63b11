package retrieval

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/trykin/spark/pkg/database"
	"github.com/trykin/spark/pkg/models"
)

type fakeEmbedder struct {
	err error
}

func (f fakeEmbedder) EmbedOne(_ context.Context, _ string) ([]float32, error) {
	if f.err != nil {
		return nil, f.err
	}
	return []float32{0.1, 0.2}, nil
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(discard{}, nil))
}

type discard struct{}

func (discard) Write(p []byte) (int, error) { return len(p), nil }

func newTestRetriever(k int, match matchFunc, embErr error) *Retriever {
	return &Retriever{
		embedder:  fakeEmbedder{err: embErr},
		logger:    discardLogger(),
		k:         k,
		threshold: 0.3,
		match:     match,
	}
}

func TestRetrieve_MergesAndRanksBothSources(t *testing.T) {
	r := newTestRetriever(5, func(_ context.Context, fn, _ string, _ []float32, _ int, _ float64) ([]models.Chunk, error) {
		switch fn {
		case database.MatchKnowledgeFn:
			return []models.Chunk{
				{ID: "k1", Similarity: 0.9},
				{ID: "k2", Similarity: 0.5},
			}, nil
		default:
			return []models.Chunk{
				{ID: "d1", Similarity: 0.7},
			}, nil
		}
	}, nil)

	chunks := r.Retrieve(context.Background(), "client-a", "pricing")
	ids := make([]string, len(chunks))
	for i, c := range chunks {
		ids[i] = c.ID
	}
	assert.Equal(t, []string{"k1", "d1", "k2"}, ids)
}

func TestRetrieve_TruncatesToK(t *testing.T) {
	r := newTestRetriever(2, func(_ context.Context, fn, _ string, _ []float32, _ int, _ float64) ([]models.Chunk, error) {
		return []models.Chunk{
			{ID: fn + "-1", Similarity: 0.8},
			{ID: fn + "-2", Similarity: 0.6},
		}, nil
	}, nil)

	chunks := r.Retrieve(context.Background(), "client-a", "pricing")
	assert.Len(t, chunks, 2)
}

func TestRetrieve_EmbeddingFailureIsEmpty(t *testing.T) {
	r := newTestRetriever(5, func(_ context.Context, _, _ string, _ []float32, _ int, _ float64) ([]models.Chunk, error) {
		t.Fatal("match must not be called when embedding fails")
		return nil, nil
	}, errors.New("embedding down"))

	assert.Empty(t, r.Retrieve(context.Background(), "client-a", "pricing"))
}

func TestRetrieve_OneSourceFailingKeepsTheOther(t *testing.T) {
	r := newTestRetriever(5, func(_ context.Context, fn, _ string, _ []float32, _ int, _ float64) ([]models.Chunk, error) {
		if fn == database.MatchKnowledgeFn {
			return nil, errors.New("knowledge table unavailable")
		}
		return []models.Chunk{{ID: "d1", Similarity: 0.7}}, nil
	}, nil)

	chunks := r.Retrieve(context.Background(), "client-a", "pricing")
	assert.Len(t, chunks, 1)
	assert.Equal(t, "d1", chunks[0].ID)
}

func TestRetrieve_BothSourcesFailingIsEmpty(t *testing.T) {
	r := newTestRetriever(5, func(_ context.Context, _, _ string, _ []float32, _ int, _ float64) ([]models.Chunk, error) {
		return nil, errors.New("db down")
	}, nil)

	assert.Empty(t, r.Retrieve(context.Background(), "client-a", "pricing"))
}
