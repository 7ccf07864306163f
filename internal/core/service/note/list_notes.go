package note

import (
	"context"
	"lightnote/internal/core/domain"

	"github.com/google/uuid"
)

// ListNotes returns all notes with their tags, most recent first.
// A point-in-time snapshot; concurrent writers may be visible between calls.
func (n *noteService) ListNotes(ctx context.Context) ([]domain.Note, error) {
	notes, err := n.uow.NoteRepo().List(ctx)
	if err != nil {
		return nil, err
	}

	noteIDs := make([]uuid.UUID, 0, len(notes))
	for _, note := range notes {
		noteIDs = append(noteIDs, note.ID)
	}

	tagsByNote, err := n.uow.TagRepo().FindByNoteIDs(ctx, noteIDs)
	if err != nil {
		return nil, err
	}

	for i := range notes {
		notes[i].Tags = tagsByNote[notes[i].ID]
	}

	return notes, nil
}
