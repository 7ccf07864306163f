package note

import "net/http"

// V1ListNotesResponse carries all notes, newest first
type V1ListNotesResponse struct {
	Notes []V1Note `json:"notes"`
}

func (h *HandlerV1) ListNotesV1(w http.ResponseWriter, r *http.Request) {

	notes, err := h.noteService.ListNotes(r.Context())
	if err != nil {
		h.writeServiceError(w, "listing notes", err)
		return
	}

	resp := V1ListNotesResponse{Notes: make([]V1Note, 0, len(notes))}
	for i := range notes {
		resp.Notes = append(resp.Notes, toV1Note(&notes[i]))
	}

	writeJSON(w, http.StatusOK, resp)
}
