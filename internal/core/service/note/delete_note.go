package note

import (
	"context"
	"lightnote/internal/core/port"

	"github.com/google/uuid"
)

// DeleteNote removes a note and its tag associations. Tags stay behind even
// when no other note references them.
func (n *noteService) DeleteNote(ctx context.Context, id uuid.UUID) error {
	return n.uow.Execute(ctx, func(uow port.UnitOfWork) error {
		if err := uow.NoteTagRepo().DeleteByNoteID(ctx, id); err != nil {
			return err
		}
		return uow.NoteRepo().Delete(ctx, id)
	})
}
