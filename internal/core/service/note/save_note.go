package note

import (
	"context"
	"lightnote/internal/core/domain"
	"lightnote/internal/core/port"

	"github.com/google/uuid"
)

// SaveNote persists a captured piece of content with its tags.
// Missing tags are created on the fly; existing ones are reused.
func (n *noteService) SaveNote(ctx context.Context, content, sourceURL string, sourceTitle *string, tags []string) (*domain.Note, error) {
	if content == "" {
		return nil, domain.ErrContentRequired
	}
	if sourceURL == "" {
		return nil, domain.ErrSourceURLRequired
	}

	names := normalizeTags(tags)

	var saved *domain.Note
	err := n.uow.Execute(ctx, func(uow port.UnitOfWork) error {
		tagIDs, err := resolveTagIDs(ctx, uow, names)
		if err != nil {
			return err
		}

		created, err := uow.NoteRepo().Create(ctx, uuid.New(), content, sourceURL, sourceTitle)
		if err != nil {
			return err
		}

		if _, err := uow.NoteTagRepo().CreateMany(ctx, created.ID, tagIDs); err != nil {
			return err
		}

		created.Tags, err = uow.TagRepo().FindByIDs(ctx, tagIDs)
		if err != nil {
			return err
		}

		saved = created
		return nil
	})
	if err != nil {
		return nil, err
	}

	return saved, nil
}
