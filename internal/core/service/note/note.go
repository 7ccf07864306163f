package note

import (
	"context"
	"lightnote/internal/core/domain"
	"lightnote/internal/core/port"
	"strings"

	"github.com/google/uuid"
)

type noteService struct {
	uow port.UnitOfWork
}

// NewNoteService creates a new note service
func NewNoteService(uow port.UnitOfWork) port.NoteService {
	return &noteService{uow: uow}
}

// normalizeTags trims, drops empties, dedupes (exact match), caps the list
// and truncates each name, in that order. Truncation runs after dedup so two
// distinct long names that collide once truncated are not merged here; the
// store collapses the resulting identical links instead.
func normalizeTags(tags []string) []string {
	unique := make([]string, 0, len(tags))
	seen := make(map[string]bool, len(tags))
	for _, tag := range tags {
		tag = strings.TrimSpace(tag)
		if tag == "" || seen[tag] {
			continue
		}
		seen[tag] = true
		unique = append(unique, tag)
	}

	if len(unique) > domain.MaxTagsPerNote {
		unique = unique[:domain.MaxTagsPerNote]
	}

	for i, tag := range unique {
		if runes := []rune(tag); len(runes) > domain.MaxTagNameLength {
			unique[i] = string(runes[:domain.MaxTagNameLength])
		}
	}

	return unique
}

// resolveTagIDs finds or creates a tag per name and returns their ids
func resolveTagIDs(ctx context.Context, uow port.UnitOfWork, names []string) ([]uuid.UUID, error) {
	tagIDs := make([]uuid.UUID, 0, len(names))
	for _, name := range names {
		tag, err := uow.TagRepo().Upsert(ctx, name)
		if err != nil {
			return nil, err
		}
		tagIDs = append(tagIDs, tag.ID)
	}
	return tagIDs, nil
}
