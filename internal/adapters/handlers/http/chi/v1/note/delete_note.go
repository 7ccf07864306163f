package note

import "net/http"

// DeleteNoteV1 is the handler for delete note v1
func (h *HandlerV1) DeleteNoteV1(w http.ResponseWriter, r *http.Request) {

	id, err := parseNoteID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid note id")
		return
	}

	if err := h.noteService.DeleteNote(r.Context(), id); err != nil {
		h.writeServiceError(w, "deleting note", err, "note_id", id)
		return
	}

	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}
