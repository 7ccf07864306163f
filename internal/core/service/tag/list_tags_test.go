package tag_test

import (
	"context"
	"errors"
	"testing"

	"lightnote/internal/adapters/repository"
	"lightnote/internal/core/domain"
	"lightnote/internal/core/service/tag"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestListTags_ok(t *testing.T) {

	//Arrange
	mockRepo := repository.NewMockTagRepository()
	tagService := tag.NewTagService(mockRepo)
	ctx := context.Background()
	tags := []domain.Tag{
		{ID: uuid.New(), Name: "design"},
		{ID: uuid.New(), Name: "golang"},
	}
	nextMarker := "golang"
	mockRepo.On("List", ctx, 2, (*string)(nil)).Return(tags, &nextMarker, nil)

	//Act
	list, marker, err := tagService.ListTags(ctx, 2, nil)

	//Assert
	require.NoError(t, err)
	require.Equal(t, tags, list)
	require.NotNil(t, marker)
	require.Equal(t, "golang", *marker)
	mockRepo.AssertExpectations(t)
}

func TestListTags_lastPage(t *testing.T) {

	//Arrange
	mockRepo := repository.NewMockTagRepository()
	tagService := tag.NewTagService(mockRepo)
	ctx := context.Background()
	marker := "golang"
	tags := []domain.Tag{{ID: uuid.New(), Name: "reading"}}
	mockRepo.On("List", ctx, 10, &marker).Return(tags, (*string)(nil), nil)

	//Act
	list, nextMarker, err := tagService.ListTags(ctx, 10, &marker)

	//Assert
	require.NoError(t, err)
	require.Len(t, list, 1)
	require.Nil(t, nextMarker)
	mockRepo.AssertExpectations(t)
}

func TestListTags_repoError(t *testing.T) {

	//Arrange
	mockRepo := repository.NewMockTagRepository()
	tagService := tag.NewTagService(mockRepo)
	ctx := context.Background()
	mockRepo.On("List", ctx, 10, (*string)(nil)).Return([]domain.Tag(nil), (*string)(nil), errors.New("db down"))

	//Act
	list, marker, err := tagService.ListTags(ctx, 10, nil)

	//Assert
	require.Error(t, err)
	require.Nil(t, list)
	require.Nil(t, marker)
	mockRepo.AssertExpectations(t)
}
