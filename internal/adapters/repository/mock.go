package repository

import (
	"context"
	"lightnote/internal/core/domain"
	"lightnote/internal/core/port"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type MockTagRepository struct {
	mock.Mock
}

func NewMockTagRepository() *MockTagRepository {
	return &MockTagRepository{}
}

func (m *MockTagRepository) Upsert(ctx context.Context, name string) (*domain.Tag, error) {
	args := m.Called(ctx, name)
	return args.Get(0).(*domain.Tag), args.Error(1)
}

func (m *MockTagRepository) FindByName(ctx context.Context, name string) (*domain.Tag, error) {
	args := m.Called(ctx, name)
	return args.Get(0).(*domain.Tag), args.Error(1)
}

func (m *MockTagRepository) FindByNames(ctx context.Context, names []string) (map[string]uuid.UUID, error) {
	args := m.Called(ctx, names)
	return args.Get(0).(map[string]uuid.UUID), args.Error(1)
}

func (m *MockTagRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.Tag, error) {
	args := m.Called(ctx, ids)
	return args.Get(0).([]domain.Tag), args.Error(1)
}

func (m *MockTagRepository) FindByNoteIDs(ctx context.Context, noteIDs []uuid.UUID) (map[uuid.UUID][]domain.Tag, error) {
	args := m.Called(ctx, noteIDs)
	return args.Get(0).(map[uuid.UUID][]domain.Tag), args.Error(1)
}

func (m *MockTagRepository) List(ctx context.Context, limit int, marker *string) ([]domain.Tag, *string, error) {
	args := m.Called(ctx, limit, marker)
	return args.Get(0).([]domain.Tag), args.Get(1).(*string), args.Error(2)
}

type MockNoteRepository struct {
	mock.Mock
}

func NewMockNoteRepository() *MockNoteRepository {
	return &MockNoteRepository{}
}

func (m *MockNoteRepository) Create(ctx context.Context, id uuid.UUID, content, sourceURL string, sourceTitle *string) (*domain.Note, error) {
	args := m.Called(ctx, id, content, sourceURL, sourceTitle)
	return args.Get(0).(*domain.Note), args.Error(1)
}

func (m *MockNoteRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Note, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(*domain.Note), args.Error(1)
}

func (m *MockNoteRepository) List(ctx context.Context) ([]domain.Note, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Note), args.Error(1)
}

func (m *MockNoteRepository) Update(ctx context.Context, id uuid.UUID, content, sourceURL, sourceTitle string) (*domain.Note, error) {
	args := m.Called(ctx, id, content, sourceURL, sourceTitle)
	return args.Get(0).(*domain.Note), args.Error(1)
}

func (m *MockNoteRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockNoteTagRepository struct {
	mock.Mock
}

func NewMockNoteTagRepository() *MockNoteTagRepository {
	return &MockNoteTagRepository{}
}

func (m *MockNoteTagRepository) CreateMany(ctx context.Context, noteID uuid.UUID, tagIDs []uuid.UUID) (int, error) {
	args := m.Called(ctx, noteID, tagIDs)
	return args.Int(0), args.Error(1)
}

func (m *MockNoteTagRepository) FindByNoteID(ctx context.Context, noteID uuid.UUID) ([]domain.NoteTag, error) {
	args := m.Called(ctx, noteID)
	return args.Get(0).([]domain.NoteTag), args.Error(1)
}

func (m *MockNoteTagRepository) DeleteByNoteID(ctx context.Context, noteID uuid.UUID) error {
	args := m.Called(ctx, noteID)
	return args.Error(0)
}

func (m *MockNoteTagRepository) DeleteMany(ctx context.Context, noteID uuid.UUID, tagIDs []uuid.UUID) error {
	args := m.Called(ctx, noteID, tagIDs)
	return args.Error(0)
}

type MockUnitOfWork struct {
	mock.Mock
	noteRepo    *MockNoteRepository
	tagRepo     *MockTagRepository
	noteTagRepo *MockNoteTagRepository
}

func NewMockUnitOfWork() *MockUnitOfWork {
	return &MockUnitOfWork{
		noteRepo:    &MockNoteRepository{},
		tagRepo:     &MockTagRepository{},
		noteTagRepo: &MockNoteTagRepository{},
	}
}

func (m *MockUnitOfWork) NoteRepo() port.NoteRepository {
	return m.noteRepo
}

func (m *MockUnitOfWork) TagRepo() port.TagRepository {
	return m.tagRepo
}

func (m *MockUnitOfWork) NoteTagRepo() port.NoteTagRepository {
	return m.noteTagRepo
}

func (m *MockUnitOfWork) Execute(ctx context.Context, fn func(uow port.UnitOfWork) error) error {
	args := m.Called(ctx, fn)

	if err := fn(m); err != nil {
		return err
	}

	return args.Error(0)
}

func (m *MockUnitOfWork) GetNoteRepoMock() *MockNoteRepository {
	return m.noteRepo
}

func (m *MockUnitOfWork) GetTagRepoMock() *MockTagRepository {
	return m.tagRepo
}

func (m *MockUnitOfWork) GetNoteTagRepoMock() *MockNoteTagRepository {
	return m.noteTagRepo
}
