package note

import (
	"context"
	"lightnote/internal/core/domain"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockNoteService is a mock implementation of NoteService
type MockNoteService struct {
	mock.Mock
}

// NewMockNoteService creates a new MockNoteService
func NewMockNoteService() *MockNoteService {
	return &MockNoteService{}
}

func (m *MockNoteService) SaveNote(ctx context.Context, content, sourceURL string, sourceTitle *string, tags []string) (*domain.Note, error) {
	args := m.Called(ctx, content, sourceURL, sourceTitle, tags)
	return args.Get(0).(*domain.Note), args.Error(1)
}

func (m *MockNoteService) GetNote(ctx context.Context, id uuid.UUID) (*domain.Note, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(*domain.Note), args.Error(1)
}

func (m *MockNoteService) ListNotes(ctx context.Context) ([]domain.Note, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Note), args.Error(1)
}

func (m *MockNoteService) UpdateNote(ctx context.Context, id uuid.UUID, content, sourceURL, sourceTitle string, tags []string) (*domain.Note, error) {
	args := m.Called(ctx, id, content, sourceURL, sourceTitle, tags)
	return args.Get(0).(*domain.Note), args.Error(1)
}

func (m *MockNoteService) DeleteNote(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
