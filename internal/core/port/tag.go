package port

import (
	"context"
	"lightnote/internal/core/domain"

	"github.com/google/uuid"
)

// TagRepository represents a tag repository implementation
type TagRepository interface {
	Upsert(ctx context.Context, name string) (*domain.Tag, error)
	FindByName(ctx context.Context, name string) (*domain.Tag, error)
	FindByNames(ctx context.Context, names []string) (map[string]uuid.UUID, error)
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.Tag, error)
	FindByNoteIDs(ctx context.Context, noteIDs []uuid.UUID) (map[uuid.UUID][]domain.Tag, error)
	List(ctx context.Context, limit int, marker *string) ([]domain.Tag, *string, error)
}

// TagService represents a tag service implementation
type TagService interface {
	GetTagByName(ctx context.Context, name string) (*domain.Tag, error)
	ListTags(ctx context.Context, limit int, marker *string) ([]domain.Tag, *string, error)
}
