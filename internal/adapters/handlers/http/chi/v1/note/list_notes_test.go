package note_test

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	http2 "net/http"
	"net/http/httptest"
	"testing"
	"time"

	"lightnote/internal/adapters/handlers/http/chi"
	note2 "lightnote/internal/adapters/handlers/http/chi/v1/note"
	"lightnote/internal/core/domain"
	"lightnote/internal/core/service/note"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestListNotesV1(t *testing.T) {
	discardLogger := slog.New(slog.NewTextHandler(io.Discard, nil))

	t.Run("success - notes newest first", func(t *testing.T) {
		// Arrange
		newer := domain.Note{
			ID:        uuid.New(),
			Content:   "second capture",
			SourceURL: "https://example.com/b",
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		}
		older := domain.Note{
			ID:        uuid.New(),
			Content:   "first capture",
			SourceURL: "https://example.com/a",
			CreatedAt: time.Now().Add(-time.Hour),
			UpdatedAt: time.Now().Add(-time.Hour),
		}

		mockService := note.NewMockNoteService()
		mockService.On("ListNotes", mock.Anything).
			Return([]domain.Note{newer, older}, nil)

		handler := note2.NewNoteHandlerV1(mockService, discardLogger)
		h := chi.NewRouter(discardLogger, handler, nil, "")
		w := httptest.NewRecorder()

		req := httptest.NewRequest(http2.MethodGet, "/api/v1/notes/", nil)

		// Act
		h.ServeHTTP(w, req)

		// Assert
		assert.Equal(t, http2.StatusOK, w.Code)

		var response note2.V1ListNotesResponse
		err := json.NewDecoder(w.Body).Decode(&response)
		assert.NoError(t, err)
		assert.Len(t, response.Notes, 2)
		assert.Equal(t, newer.ID, response.Notes[0].ID)
		assert.Equal(t, older.ID, response.Notes[1].ID)

		mockService.AssertExpectations(t)
	})

	t.Run("success - no notes yet", func(t *testing.T) {
		// Arrange
		mockService := note.NewMockNoteService()
		mockService.On("ListNotes", mock.Anything).Return([]domain.Note{}, nil)

		handler := note2.NewNoteHandlerV1(mockService, discardLogger)
		h := chi.NewRouter(discardLogger, handler, nil, "")
		w := httptest.NewRecorder()

		req := httptest.NewRequest(http2.MethodGet, "/api/v1/notes/", nil)

		// Act
		h.ServeHTTP(w, req)

		// Assert
		assert.Equal(t, http2.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"notes":[]`)
		mockService.AssertExpectations(t)
	})

	t.Run("error - service failure", func(t *testing.T) {
		// Arrange
		mockService := note.NewMockNoteService()
		mockService.On("ListNotes", mock.Anything).
			Return([]domain.Note(nil), errors.New("db down"))

		handler := note2.NewNoteHandlerV1(mockService, discardLogger)
		h := chi.NewRouter(discardLogger, handler, nil, "")
		w := httptest.NewRecorder()

		req := httptest.NewRequest(http2.MethodGet, "/api/v1/notes/", nil)

		// Act
		h.ServeHTTP(w, req)

		// Assert
		assert.Equal(t, http2.StatusServiceUnavailable, w.Code)
		mockService.AssertExpectations(t)
	})
}
