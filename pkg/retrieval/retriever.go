// Package retrieval finds the knowledge chunks most relevant to a
// visitor message. Knowledge items and ingested document chunks are
// searched concurrently and merged by similarity.
package retrieval

import (
	"context"
	"database/sql"
	"log/slog"
	"sort"
	"sync"

	"github.com/trykin/spark/pkg/database"
	"github.com/trykin/spark/pkg/models"
)

// Embedder produces a query embedding. Satisfied by *llm.Client.
type Embedder interface {
	EmbedOne(ctx context.Context, text string) ([]float32, error)
}

type matchFunc func(ctx context.Context, fn, clientID string, embedding []float32, k int, threshold float64) ([]models.Chunk, error)

// Retriever embeds a query and searches both vector tables.
type Retriever struct {
	embedder  Embedder
	logger    *slog.Logger
	k         int
	threshold float64

	match matchFunc
}

// NewRetriever builds a retriever over the shared database handle.
func NewRetriever(db *sql.DB, embedder Embedder, logger *slog.Logger, k int, threshold float64) *Retriever {
	return &Retriever{
		embedder:  embedder,
		logger:    logger,
		k:         k,
		threshold: threshold,
		match: func(ctx context.Context, fn, clientID string, embedding []float32, k int, threshold float64) ([]models.Chunk, error) {
			return database.MatchChunks(ctx, db, fn, clientID, embedding, k, threshold)
		},
	}
}

// Retrieve returns up to k chunks for the query, best first. Retrieval
// is advisory: any failure returns an empty list rather than an error,
// and the turn proceeds without document context.
func (r *Retriever) Retrieve(ctx context.Context, clientID, query string) []models.Chunk {
	embedding, err := r.embedder.EmbedOne(ctx, query)
	if err != nil {
		r.logger.Warn("Query embedding failed, skipping retrieval",
			"client_id", clientID, "error", err)
		return nil
	}

	var (
		wg        sync.WaitGroup
		knowledge []models.Chunk
		documents []models.Chunk
		kErr      error
		dErr      error
	)
	wg.Add(2)
	go func() {
		defer wg.Done()
		knowledge, kErr = r.match(ctx, database.MatchKnowledgeFn, clientID, embedding, r.k, r.threshold)
	}()
	go func() {
		defer wg.Done()
		documents, dErr = r.match(ctx, database.MatchDocumentsFn, clientID, embedding, r.k, r.threshold)
	}()
	wg.Wait()

	if kErr != nil {
		r.logger.Warn("Knowledge search failed", "client_id", clientID, "error", kErr)
		knowledge = nil
	}
	if dErr != nil {
		r.logger.Warn("Document search failed", "client_id", clientID, "error", dErr)
		documents = nil
	}

	merged := append(knowledge, documents...)
	sort.SliceStable(merged, func(i, j int) bool {
		return merged[i].Similarity > merged[j].Similarity
	})
	if len(merged) > r.k {
		merged = merged[:r.k]
	}
	return merged
}
