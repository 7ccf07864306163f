package port

import (
	"context"
	"lightnote/internal/core/domain"

	"github.com/google/uuid"
)

// NoteRepository represents a note repository implementation
type NoteRepository interface {
	Create(ctx context.Context, id uuid.UUID, content, sourceURL string, sourceTitle *string) (*domain.Note, error)
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Note, error)
	List(ctx context.Context) ([]domain.Note, error)
	Update(ctx context.Context, id uuid.UUID, content, sourceURL, sourceTitle string) (*domain.Note, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// NoteService represents a note service implementation
type NoteService interface {
	SaveNote(ctx context.Context, content, sourceURL string, sourceTitle *string, tags []string) (*domain.Note, error)
	GetNote(ctx context.Context, id uuid.UUID) (*domain.Note, error)
	ListNotes(ctx context.Context) ([]domain.Note, error)
	UpdateNote(ctx context.Context, id uuid.UUID, content, sourceURL, sourceTitle string, tags []string) (*domain.Note, error)
	DeleteNote(ctx context.Context, id uuid.UUID) error
}
