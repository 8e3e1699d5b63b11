package ingestion

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/trykin/spark/ent"
	"github.com/trykin/spark/ent/documentchunk"
	"github.com/trykin/spark/pkg/database"
	"github.com/trykin/spark/pkg/services"
)

const (
	fetchTimeout = 30 * time.Second
	// maxFetchBytes bounds how much of a remote page gets read.
	maxFetchBytes = 10 << 20
)

// Sentinel errors for unprocessable sources. The HTTP layer maps these
// to a 422 so the admin UI can show them verbatim.
var (
	ErrPDFNotSupported = errors.New(
		"PDF ingestion is not yet supported. Please paste the text content directly.")
	ErrUnsupportedContentType = errors.New("unsupported content type")
)

// Embedder produces document embeddings in batches. Satisfied by
// *llm.Client.
type Embedder interface {
	Embed(ctx context.Context, texts []string) ([][]float32, error)
}

// Service chunks, embeds, and stores tenant documents.
type Service struct {
	client     *ent.Client
	db         *sql.DB
	embedder   Embedder
	httpClient *http.Client
	logger     *slog.Logger
}

// NewService creates a new ingestion Service.
func NewService(client *ent.Client, db *sql.DB, embedder Embedder, logger *slog.Logger) *Service {
	return &Service{
		client:     client,
		db:         db,
		embedder:   embedder,
		httpClient: &http.Client{Timeout: fetchTimeout},
		logger:     logger,
	}
}

// IngestInput describes one document to ingest.
type IngestInput struct {
	ClientID   string
	Content    string
	Title      string
	SourceType string
	SourceURL  string
}

// IngestText chunks the content, embeds the chunks that are new for
// this tenant, and stores them. Returns the number of chunks inserted.
// When SourceURL is set, existing chunks for that URL are deleted first
// so a page re-ingests cleanly.
func (s *Service) IngestText(ctx context.Context, in IngestInput) (int, error) {
	if in.SourceType == "" {
		in.SourceType = "text"
	}

	chunks := ChunkText(in.Content, defaultChunkSize, defaultChunkOverlap)
	if len(chunks) == 0 {
		return 0, nil
	}

	if in.SourceURL != "" {
		_, err := s.client.DocumentChunk.Delete().
			Where(
				documentchunk.ClientID(in.ClientID),
				documentchunk.SourceURL(in.SourceURL),
			).
			Exec(ctx)
		if err != nil {
			return 0, fmt.Errorf("failed to clear existing chunks for url: %w", err)
		}
	}

	hashes := make([]string, len(chunks))
	for i, c := range chunks {
		hashes[i] = services.ContentHash(c)
	}

	// After a URL delete every chunk is new; otherwise dedup by hash.
	existing := make(map[string]struct{})
	if in.SourceURL == "" {
		rows, err := s.client.DocumentChunk.Query().
			Where(
				documentchunk.ClientID(in.ClientID),
				documentchunk.ContentHashIn(hashes...),
			).
			Select(documentchunk.FieldContentHash).
			Strings(ctx)
		if err != nil {
			return 0, fmt.Errorf("failed to check existing chunks: %w", err)
		}
		for _, h := range rows {
			existing[h] = struct{}{}
		}
	}

	type newChunk struct {
		index   int
		content string
		hash    string
	}
	var fresh []newChunk
	for i, c := range chunks {
		if _, dup := existing[hashes[i]]; dup {
			continue
		}
		fresh = append(fresh, newChunk{index: i, content: c, hash: hashes[i]})
	}
	if len(fresh) == 0 {
		s.logger.Info("Ingestion skipped, all chunks already stored",
			"client_id", in.ClientID, "chunks", len(chunks))
		return 0, nil
	}

	texts := make([]string, len(fresh))
	for i, f := range fresh {
		texts[i] = f.content
	}
	embeddings, err := s.embedder.Embed(ctx, texts)
	if err != nil {
		return 0, fmt.Errorf("failed to embed chunks: %w", err)
	}

	for i, f := range fresh {
		builder := s.client.DocumentChunk.Create().
			SetID(uuid.New().String()).
			SetClientID(in.ClientID).
			SetContent(f.content).
			SetSourceType(in.SourceType).
			SetChunkIndex(f.index).
			SetContentHash(f.hash)
		if in.Title != "" {
			builder.SetTitle(in.Title)
		}
		if in.SourceURL != "" {
			builder.SetSourceURL(in.SourceURL)
		}

		chunk, err := builder.Save(ctx)
		if err != nil {
			return 0, fmt.Errorf("failed to store chunk %d: %w", f.index, err)
		}
		if err := database.SetDocumentEmbedding(ctx, s.db, chunk.ID, embeddings[i]); err != nil {
			return 0, err
		}
	}

	s.logger.Info("Ingestion complete",
		"client_id", in.ClientID,
		"inserted", len(fresh),
		"skipped", len(chunks)-len(fresh))
	return len(fresh), nil
}

// IngestURL fetches a page, extracts its text, and ingests it under
// the URL as source. Re-ingesting the same URL replaces its chunks.
func (s *Service) IngestURL(ctx context.Context, clientID, url, title string) (int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to build request: %w", err)
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return 0, fmt.Errorf("failed to fetch url: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return 0, fmt.Errorf("fetch returned %d for %s", resp.StatusCode, url)
	}

	mime := mimeType(resp.Header.Get("Content-Type"))
	if strings.Contains(mime, "pdf") {
		return 0, ErrPDFNotSupported
	}
	if mime != "" && mime != "text/html" && mime != "text/plain" && !strings.Contains(mime, "html") {
		return 0, fmt.Errorf("%w: %s (supported: text/html, text/plain)", ErrUnsupportedContentType, mime)
	}

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxFetchBytes))
	if err != nil {
		return 0, fmt.Errorf("failed to read response: %w", err)
	}

	var content string
	if mime == "text/plain" {
		content = strings.TrimSpace(string(raw))
	} else {
		content = StripHTML(string(raw))
	}
	if content == "" {
		s.logger.Warn("URL ingestion extracted no content", "url", url)
		return 0, nil
	}

	if title == "" {
		title = url
	}
	return s.IngestText(ctx, IngestInput{
		ClientID:   clientID,
		Content:    content,
		Title:      title,
		SourceType: "url",
		SourceURL:  url,
	})
}

// mimeType strips the charset parameter off a Content-Type header.
func mimeType(contentType string) string {
	mime, _, _ := strings.Cut(contentType, ";")
	return strings.ToLower(strings.TrimSpace(mime))
}
