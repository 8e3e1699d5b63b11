package database

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"
	"strings"

	"github.com/trykin/spark/pkg/models"
)

// Vector-search SQL function names. Both take (client_id, embedding,
// match_count, threshold) and return rows with a similarity column.
const (
	MatchKnowledgeFn = "match_spark_knowledge"
	MatchDocumentsFn = "match_spark_documents"
)

// FormatVector renders a float32 slice in pgvector literal form,
// e.g. "[0.12,0.5,...]".
func FormatVector(v []float32) string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, f := range v {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(strconv.FormatFloat(float64(f), 'f', -1, 32))
	}
	sb.WriteByte(']')
	return sb.String()
}

// MatchChunks runs one of the vector-search SQL functions for a client.
// Every call carries the client_id filter; cross-tenant reads are
// impossible at this layer.
func MatchChunks(ctx context.Context, db *sql.DB, fn, clientID string, embedding []float32, k int, threshold float64) ([]models.Chunk, error) {
	if fn != MatchKnowledgeFn && fn != MatchDocumentsFn {
		return nil, fmt.Errorf("unknown match function %q", fn)
	}

	// fn is validated against the two known identifiers above, so the
	// format here cannot inject.
	query := fmt.Sprintf(
		`SELECT id, title, content, category, subcategory, similarity
		 FROM %s($1, $2::vector, $3, $4)`, fn)

	rows, err := db.QueryContext(ctx, query, clientID, FormatVector(embedding), k, threshold)
	if err != nil {
		return nil, fmt.Errorf("%s query failed: %w", fn, err)
	}
	defer rows.Close()

	var chunks []models.Chunk
	for rows.Next() {
		var (
			c           models.Chunk
			title       sql.NullString
			category    sql.NullString
			subcategory sql.NullString
		)
		if err := rows.Scan(&c.ID, &title, &c.Content, &category, &subcategory, &c.Similarity); err != nil {
			return nil, fmt.Errorf("%s scan failed: %w", fn, err)
		}
		c.Title = title.String
		c.Category = category.String
		c.Subcategory = subcategory.String
		chunks = append(chunks, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s rows failed: %w", fn, err)
	}
	return chunks, nil
}

// SetKnowledgeEmbedding writes the pgvector column on a knowledge item.
// The row itself is created through Ent; the embedding column is not in
// the Ent schema.
func SetKnowledgeEmbedding(ctx context.Context, db *sql.DB, knowledgeID string, embedding []float32) error {
	_, err := db.ExecContext(ctx,
		`UPDATE spark_knowledge SET embedding = $1::vector WHERE knowledge_id = $2`,
		FormatVector(embedding), knowledgeID)
	if err != nil {
		return fmt.Errorf("failed to set knowledge embedding: %w", err)
	}
	return nil
}

// SetDocumentEmbedding writes the pgvector column on a document chunk.
func SetDocumentEmbedding(ctx context.Context, db *sql.DB, chunkID string, embedding []float32) error {
	_, err := db.ExecContext(ctx,
		`UPDATE spark_documents SET embedding = $1::vector WHERE chunk_id = $2`,
		FormatVector(embedding), chunkID)
	if err != nil {
		return fmt.Errorf("failed to set document embedding: %w", err)
	}
	return nil
}

// IncrementTurn atomically bumps turn_count and refreshes the expiry
// via the increment_spark_turn SQL function. Returns the new count.
// The function serializes concurrent callers on the row, so the
// returned sequence per conversation is gapless.
func IncrementTurn(ctx context.Context, db *sql.DB, conversationID string, timeoutSeconds int) (int, error) {
	var newCount int
	err := db.QueryRowContext(ctx,
		`SELECT increment_spark_turn($1, $2)`,
		conversationID, timeoutSeconds).Scan(&newCount)
	if err != nil {
		return 0, fmt.Errorf("increment_spark_turn failed: %w", err)
	}
	return newCount, nil
}

// IncrementBoundarySignals atomically bumps boundary_signals_fired.
func IncrementBoundarySignals(ctx context.Context, db *sql.DB, conversationID string) error {
	if _, err := db.ExecContext(ctx,
		`SELECT increment_boundary_signals($1)`, conversationID); err != nil {
		return fmt.Errorf("increment_boundary_signals failed: %w", err)
	}
	return nil
}
