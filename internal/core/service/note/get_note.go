package note

import (
	"context"
	"lightnote/internal/core/domain"

	"github.com/google/uuid"
)

func (n *noteService) GetNote(ctx context.Context, id uuid.UUID) (*domain.Note, error) {
	found, err := n.uow.NoteRepo().FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	noteTags, err := n.uow.NoteTagRepo().FindByNoteID(ctx, found.ID)
	if err != nil {
		return nil, err
	}

	tagIDs := make([]uuid.UUID, 0, len(noteTags))
	for _, noteTag := range noteTags {
		tagIDs = append(tagIDs, noteTag.TagID)
	}

	found.Tags, err = n.uow.TagRepo().FindByIDs(ctx, tagIDs)
	if err != nil {
		return nil, err
	}

	return found, nil
}
