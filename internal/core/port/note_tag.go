package port

import (
	"context"
	"lightnote/internal/core/domain"

	"github.com/google/uuid"
)

// NoteTagRepository manages note-tag associations
type NoteTagRepository interface {
	CreateMany(ctx context.Context, noteID uuid.UUID, tagIDs []uuid.UUID) (int, error)
	FindByNoteID(ctx context.Context, noteID uuid.UUID) ([]domain.NoteTag, error)
	DeleteByNoteID(ctx context.Context, noteID uuid.UUID) error
	DeleteMany(ctx context.Context, noteID uuid.UUID, tagIDs []uuid.UUID) error
}
