package note

import (
	"context"
	"lightnote/internal/core/domain"
	"lightnote/internal/core/port"

	"github.com/google/uuid"
)

// UpdateNote replaces the scalar fields of a note and its whole tag set.
// Unlike SaveNote, the source title is mandatory here.
func (n *noteService) UpdateNote(ctx context.Context, id uuid.UUID, content, sourceURL, sourceTitle string, tags []string) (*domain.Note, error) {
	if content == "" {
		return nil, domain.ErrContentRequired
	}
	if sourceURL == "" {
		return nil, domain.ErrSourceURLRequired
	}
	if sourceTitle == "" {
		return nil, domain.ErrSourceTitleRequired
	}

	if _, err := n.uow.NoteRepo().FindByID(ctx, id); err != nil {
		return nil, err
	}

	names := normalizeTags(tags)

	var updated *domain.Note
	err := n.uow.Execute(ctx, func(uow port.UnitOfWork) error {
		tagIDs, err := resolveTagIDs(ctx, uow, names)
		if err != nil {
			return err
		}

		if err := replaceTagSet(ctx, uow, id, tagIDs); err != nil {
			return err
		}

		updated, err = uow.NoteRepo().Update(ctx, id, content, sourceURL, sourceTitle)
		if err != nil {
			return err
		}

		updated.Tags, err = uow.TagRepo().FindByIDs(ctx, tagIDs)
		return err
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}

// replaceTagSet swaps a note's associations for the desired tag-id set.
// Only the symmetric difference is touched: links no longer wanted are
// removed, missing ones added. Tags themselves are never deleted.
func replaceTagSet(ctx context.Context, uow port.UnitOfWork, noteID uuid.UUID, desired []uuid.UUID) error {
	current, err := uow.NoteTagRepo().FindByNoteID(ctx, noteID)
	if err != nil {
		return err
	}

	wanted := make(map[uuid.UUID]bool, len(desired))
	for _, tagID := range desired {
		wanted[tagID] = true
	}

	var obsolete []uuid.UUID
	existing := make(map[uuid.UUID]bool, len(current))
	for _, link := range current {
		existing[link.TagID] = true
		if !wanted[link.TagID] {
			obsolete = append(obsolete, link.TagID)
		}
	}

	var missing []uuid.UUID
	for _, tagID := range desired {
		if !existing[tagID] {
			missing = append(missing, tagID)
		}
	}

	if err := uow.NoteTagRepo().DeleteMany(ctx, noteID, obsolete); err != nil {
		return err
	}

	_, err = uow.NoteTagRepo().CreateMany(ctx, noteID, missing)
	return err
}
