package api

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/trykin/spark/pkg/ingestion"
	"github.com/trykin/spark/pkg/services"
)

func TestMapServiceError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
	}{
		{"not found", services.ErrNotFound, http.StatusNotFound},
		{"wrapped not found", fmt.Errorf("lookup: %w", services.ErrNotFound), http.StatusNotFound},
		{"already exists", services.ErrAlreadyExists, http.StatusConflict},
		{"validation", services.NewValidationError("email", "required"), http.StatusUnprocessableEntity},
		{"unknown", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			he := mapServiceError(tt.err)
			assert.Equal(t, tt.wantCode, he.Code)
		})
	}
}

func TestMapIngestError(t *testing.T) {
	he := mapIngestError(ingestion.ErrPDFNotSupported)
	assert.Equal(t, http.StatusUnprocessableEntity, he.Code)
	assert.Contains(t, he.Message, "PDF")

	he = mapIngestError(fmt.Errorf("%w: image/png", ingestion.ErrUnsupportedContentType))
	assert.Equal(t, http.StatusUnprocessableEntity, he.Code)

	he = mapIngestError(services.ErrNotFound)
	assert.Equal(t, http.StatusNotFound, he.Code)
}
