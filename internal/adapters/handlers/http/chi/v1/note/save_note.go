package note

import (
	"encoding/json"
	"net/http"
)

// V1SaveNoteRequest is the body request for Save Note.
// Shape matches what the capture extension submits.
type V1SaveNoteRequest struct {
	Content     string   `json:"content"`
	SourceURL   string   `json:"sourceUrl"`
	SourceTitle *string  `json:"sourceTitle,omitempty"`
	Tags        []string `json:"tags,omitempty"`
}

// V1NoteResponse is the success envelope for note mutations
type V1NoteResponse struct {
	Success bool   `json:"success"`
	Note    V1Note `json:"note"`
}

// SaveNoteV1 is the handler for save note v1
func (h *HandlerV1) SaveNoteV1(w http.ResponseWriter, r *http.Request) {

	var req V1SaveNoteRequest

	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		h.logger.Error("error decoding save note request", "error", err)
		writeError(w, http.StatusBadRequest, "invalid request")
		return
	}

	saved, err := h.noteService.SaveNote(r.Context(), req.Content, req.SourceURL, req.SourceTitle, req.Tags)
	if err != nil {
		h.writeServiceError(w, "saving note", err)
		return
	}

	writeJSON(w, http.StatusCreated, V1NoteResponse{Success: true, Note: toV1Note(saved)})
}
