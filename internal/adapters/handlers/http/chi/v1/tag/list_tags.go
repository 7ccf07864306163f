package tag

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"lightnote/internal/core/domain"

	"github.com/google/uuid"
)

// V1Tag is the wire representation of a tag
type V1Tag struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Color     *string   `json:"color,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

type V1ListTagsResponse struct {
	Tags       []V1Tag `json:"tags"`
	NextMarker *string `json:"nextMarker,omitempty"`
}

// ListTagsV1 returns tags name-ordered with keyset pagination.
// The tag input in the list UI uses it for suggestions.
func (h *HandlerV1) ListTagsV1(w http.ResponseWriter, r *http.Request) {

	limit := 20
	if s := r.URL.Query().Get("limit"); s != "" {
		v, err := strconv.Atoi(s)
		if err != nil || v <= 0 {
			http.Error(w, "limit must be a positive integer", http.StatusBadRequest)
			return
		}
		limit = v
	}

	var markerPtr *string
	if marker := r.URL.Query().Get("marker"); marker != "" {
		markerPtr = &marker
	}

	tags, nextMarker, err := h.tagService.ListTags(r.Context(), limit, markerPtr)
	if err != nil {
		h.logger.Error("error listing tags", "error", err)
		http.Error(w, "internal server error", http.StatusServiceUnavailable)
		return
	}

	resp := V1ListTagsResponse{
		Tags:       make([]V1Tag, 0, len(tags)),
		NextMarker: nextMarker,
	}
	for _, t := range tags {
		resp.Tags = append(resp.Tags, toV1Tag(t))
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		h.logger.Error("error encoding response", "error", err)
	}
}

func toV1Tag(t domain.Tag) V1Tag {
	return V1Tag{
		ID:        t.ID,
		Name:      t.Name,
		Color:     t.Color,
		CreatedAt: t.CreatedAt,
	}
}
