package note

import (
	"encoding/json"
	"net/http"
)

// V1UpdateNoteRequest is the body request for Update Note.
// All scalar fields are mandatory, including the title.
type V1UpdateNoteRequest struct {
	Content     string   `json:"content"`
	SourceURL   string   `json:"sourceUrl"`
	SourceTitle string   `json:"sourceTitle"`
	Tags        []string `json:"tags,omitempty"`
}

// UpdateNoteV1 is the handler for update note v1
func (h *HandlerV1) UpdateNoteV1(w http.ResponseWriter, r *http.Request) {

	id, err := parseNoteID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid note id")
		return
	}

	var req V1UpdateNoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Error("error decoding update note request", "error", err)
		writeError(w, http.StatusBadRequest, "invalid request")
		return
	}

	updated, err := h.noteService.UpdateNote(r.Context(), id, req.Content, req.SourceURL, req.SourceTitle, req.Tags)
	if err != nil {
		h.writeServiceError(w, "updating note", err, "note_id", id)
		return
	}

	writeJSON(w, http.StatusOK, V1NoteResponse{Success: true, Note: toV1Note(updated)})
}
