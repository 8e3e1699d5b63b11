package services

import (
	"context"
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"fmt"

	"github.com/google/uuid"

	"github.com/trykin/spark/ent"
	"github.com/trykin/spark/ent/knowledgeitem"
	"github.com/trykin/spark/pkg/database"
)

// maxKnowledgeContentChars caps one knowledge item. Items are embedded
// whole, so oversized content would dilute the vector.
const maxKnowledgeContentChars = 3000

// Embedder produces document embeddings. Satisfied by *llm.Client.
type Embedder interface {
	EmbedOne(ctx context.Context, text string) ([]float32, error)
	Embed(ctx context.Context, texts []string) ([][]float32, error)
}

// KnowledgeService manages admin-curated knowledge items: one row per
// item, embedded whole, deduplicated by content hash per tenant.
type KnowledgeService struct {
	client   *ent.Client
	db       *sql.DB
	embedder Embedder
}

// NewKnowledgeService creates a new KnowledgeService.
func NewKnowledgeService(client *ent.Client, db *sql.DB, embedder Embedder) *KnowledgeService {
	return &KnowledgeService{client: client, db: db, embedder: embedder}
}

// ContentHash returns the SHA-256 hex digest used for dedup.
func ContentHash(content string) string {
	h := sha256.Sum256([]byte(content))
	return hex.EncodeToString(h[:])
}

// CreateKnowledgeInput carries the fields for a new knowledge item.
type CreateKnowledgeInput struct {
	ClientID    string
	Title       string
	Content     string
	Category    string
	Subcategory string
	Priority    int
	Active      bool
}

// Create hashes, embeds, and inserts a knowledge item. A duplicate of
// existing content for the same tenant returns ErrAlreadyExists.
func (s *KnowledgeService) Create(ctx context.Context, in CreateKnowledgeInput) (*ent.KnowledgeItem, error) {
	if in.Title == "" {
		return nil, NewValidationError("title", "required")
	}
	if in.Content == "" {
		return nil, NewValidationError("content", "required")
	}
	if len(in.Content) > maxKnowledgeContentChars {
		return nil, NewValidationError("content", fmt.Sprintf("must be at most %d characters", maxKnowledgeContentChars))
	}
	if in.Category == "" {
		in.Category = "company"
	}

	embedding, err := s.embedder.EmbedOne(ctx, in.Content)
	if err != nil {
		return nil, fmt.Errorf("failed to embed knowledge item: %w", err)
	}

	builder := s.client.KnowledgeItem.Create().
		SetID(uuid.New().String()).
		SetClientID(in.ClientID).
		SetTitle(in.Title).
		SetContent(in.Content).
		SetCategory(in.Category).
		SetPriority(in.Priority).
		SetActive(in.Active).
		SetContentHash(ContentHash(in.Content))
	if in.Subcategory != "" {
		builder.SetSubcategory(in.Subcategory)
	}

	item, err := builder.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, ErrAlreadyExists
		}
		return nil, fmt.Errorf("failed to create knowledge item: %w", err)
	}

	if err := database.SetKnowledgeEmbedding(ctx, s.db, item.ID, embedding); err != nil {
		return nil, err
	}
	return item, nil
}

// List returns a tenant's knowledge items, highest priority first.
func (s *KnowledgeService) List(ctx context.Context, clientID string) ([]*ent.KnowledgeItem, error) {
	items, err := s.client.KnowledgeItem.Query().
		Where(knowledgeitem.ClientID(clientID)).
		Order(ent.Desc(knowledgeitem.FieldPriority), ent.Desc(knowledgeitem.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list knowledge items: %w", err)
	}
	return items, nil
}

// UpdateKnowledgeInput carries editable fields. Nil means unchanged.
type UpdateKnowledgeInput struct {
	Title       *string
	Content     *string
	Category    *string
	Subcategory *string
	Priority    *int
	Active      *bool
}

// Update edits a knowledge item. Content changes are re-hashed and
// re-embedded; other field changes leave the embedding alone.
func (s *KnowledgeService) Update(ctx context.Context, clientID, itemID string, in UpdateKnowledgeInput) (*ent.KnowledgeItem, error) {
	existing, err := s.client.KnowledgeItem.Query().
		Where(knowledgeitem.ID(itemID), knowledgeitem.ClientID(clientID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch knowledge item: %w", err)
	}

	builder := existing.Update()
	if in.Title != nil {
		builder.SetTitle(*in.Title)
	}
	if in.Category != nil {
		builder.SetCategory(*in.Category)
	}
	if in.Subcategory != nil {
		builder.SetSubcategory(*in.Subcategory)
	}
	if in.Priority != nil {
		builder.SetPriority(*in.Priority)
	}
	if in.Active != nil {
		builder.SetActive(*in.Active)
	}

	var embedding []float32
	if in.Content != nil && *in.Content != existing.Content {
		if len(*in.Content) > maxKnowledgeContentChars {
			return nil, NewValidationError("content", fmt.Sprintf("must be at most %d characters", maxKnowledgeContentChars))
		}
		embedding, err = s.embedder.EmbedOne(ctx, *in.Content)
		if err != nil {
			return nil, fmt.Errorf("failed to re-embed knowledge item: %w", err)
		}
		builder.SetContent(*in.Content).SetContentHash(ContentHash(*in.Content))
	}

	item, err := builder.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, ErrAlreadyExists
		}
		return nil, fmt.Errorf("failed to update knowledge item: %w", err)
	}

	if embedding != nil {
		if err := database.SetKnowledgeEmbedding(ctx, s.db, item.ID, embedding); err != nil {
			return nil, err
		}
	}
	return item, nil
}

// Delete removes a knowledge item owned by the tenant.
func (s *KnowledgeService) Delete(ctx context.Context, clientID, itemID string) error {
	n, err := s.client.KnowledgeItem.Delete().
		Where(knowledgeitem.ID(itemID), knowledgeitem.ClientID(clientID)).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to delete knowledge item: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
