package note

import "net/http"

func (h *HandlerV1) GetNoteV1(w http.ResponseWriter, r *http.Request) {

	id, err := parseNoteID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid note id")
		return
	}

	found, err := h.noteService.GetNote(r.Context(), id)
	if err != nil {
		h.writeServiceError(w, "getting note", err, "note_id", id)
		return
	}

	writeJSON(w, http.StatusOK, V1NoteResponse{Success: true, Note: toV1Note(found)})
}
