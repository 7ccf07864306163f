package note_test

import (
	"context"
	"testing"

	"lightnote/internal/adapters/repository"
	"lightnote/internal/core/domain"
	"lightnote/internal/core/service/note"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListNotes_ok(t *testing.T) {

	//Arrange
	ctx := context.Background()
	mockUow := repository.NewMockUnitOfWork()
	noteService := note.NewNoteService(mockUow)

	newer := domain.Note{ID: uuid.New(), Content: "newer", SourceURL: "https://example.com/2"}
	older := domain.Note{ID: uuid.New(), Content: "older", SourceURL: "https://example.com/1"}
	tag := newTag("go")

	mockUow.GetNoteRepoMock().On("List", ctx).Return([]domain.Note{newer, older}, nil)
	mockUow.GetTagRepoMock().
		On("FindByNoteIDs", ctx, []uuid.UUID{newer.ID, older.ID}).
		Return(map[uuid.UUID][]domain.Tag{older.ID: {tag}}, nil)

	//Act
	notes, err := noteService.ListNotes(ctx)

	//Assert
	require.NoError(t, err)
	require.Len(t, notes, 2)
	assert.Equal(t, "newer", notes[0].Content)
	assert.Empty(t, notes[0].Tags)
	assert.Len(t, notes[1].Tags, 1)
	mockUow.GetNoteRepoMock().AssertExpectations(t)
	mockUow.GetTagRepoMock().AssertExpectations(t)
}

func TestListNotes_empty(t *testing.T) {

	//Arrange
	ctx := context.Background()
	mockUow := repository.NewMockUnitOfWork()
	noteService := note.NewNoteService(mockUow)

	mockUow.GetNoteRepoMock().On("List", ctx).Return([]domain.Note{}, nil)
	mockUow.GetTagRepoMock().
		On("FindByNoteIDs", ctx, []uuid.UUID{}).
		Return(map[uuid.UUID][]domain.Tag{}, nil)

	//Act
	notes, err := noteService.ListNotes(ctx)

	//Assert
	require.NoError(t, err)
	assert.Empty(t, notes)
}

func TestListNotes_repoError(t *testing.T) {

	//Arrange
	ctx := context.Background()
	mockUow := repository.NewMockUnitOfWork()
	noteService := note.NewNoteService(mockUow)

	mockUow.GetNoteRepoMock().On("List", ctx).Return([]domain.Note(nil), assert.AnError)

	//Act
	notes, err := noteService.ListNotes(ctx)

	//Assert
	require.ErrorIs(t, err, assert.AnError)
	assert.Nil(t, notes)
}
