package note

import (
	"encoding/json"
	"errors"
	"lightnote/internal/core/domain"
	"lightnote/internal/core/port"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// HandlerV1 is the handler for v1 notes routes
type HandlerV1 struct {
	noteService port.NoteService
	logger      *slog.Logger
}

// NewNoteHandlerV1 creates HandlerV1
func NewNoteHandlerV1(service port.NoteService, logger *slog.Logger) *HandlerV1 {
	return &HandlerV1{
		noteService: service,
		logger:      logger,
	}
}

// Routes exposes routes
func (h *HandlerV1) Routes() chi.Router {
	router := chi.NewRouter()

	router.Post("/", h.SaveNoteV1)
	router.Get("/", h.ListNotesV1)

	router.Route("/{id}", func(r chi.Router) {
		r.Get("/", h.GetNoteV1)
		r.Patch("/", h.UpdateNoteV1)
		r.Delete("/", h.DeleteNoteV1)
	})

	return router
}

// V1Note is the wire representation of a note with its tags
type V1Note struct {
	ID          uuid.UUID `json:"id"`
	Content     string    `json:"content"`
	SourceURL   string    `json:"sourceUrl"`
	SourceTitle *string   `json:"sourceTitle,omitempty"`
	FolderID    *string   `json:"folderId,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
	Tags        []V1Tag   `json:"tags"`
}

// V1Tag is the wire representation of a tag
type V1Tag struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Color     *string   `json:"color,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

func toV1Note(n *domain.Note) V1Note {
	out := V1Note{
		ID:          n.ID,
		Content:     n.Content,
		SourceURL:   n.SourceURL,
		SourceTitle: n.SourceTitle,
		CreatedAt:   n.CreatedAt,
		UpdatedAt:   n.UpdatedAt,
		Tags:        make([]V1Tag, 0, len(n.Tags)),
	}
	if n.FolderID != nil {
		folderID := n.FolderID.String()
		out.FolderID = &folderID
	}
	for _, t := range n.Tags {
		out.Tags = append(out.Tags, V1Tag{
			ID:        t.ID,
			Name:      t.Name,
			Color:     t.Color,
			CreatedAt: t.CreatedAt,
		})
	}
	return out
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// writeServiceError maps domain errors to the API error contract.
// Internal failures keep a generic message, distinct from validation.
func (h *HandlerV1) writeServiceError(w http.ResponseWriter, op string, err error, attrs ...any) {
	switch {
	case errors.Is(err, domain.ErrContentRequired),
		errors.Is(err, domain.ErrSourceURLRequired),
		errors.Is(err, domain.ErrSourceTitleRequired):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrNoteNotFound):
		writeError(w, http.StatusNotFound, "note not found")
	default:
		h.logger.Error("error "+op, append(attrs, "error", err)...)
		writeError(w, http.StatusServiceUnavailable, "internal server error")
	}
}

func parseNoteID(r *http.Request) (uuid.UUID, error) {
	return uuid.Parse(chi.URLParam(r, "id"))
}
