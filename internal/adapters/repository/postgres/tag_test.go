package postgres_test

import (
	"context"
	"testing"

	"lightnote/internal/adapters/repository/postgres"
	"lightnote/internal/core/domain"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestSqlTagRepository_Upsert(t *testing.T) {
	dbConnection, cleanup, truncate := postgres.NewTestDB(t)
	defer cleanup()
	ctx := context.Background()

	tagRepo := postgres.NewSqlTagRepository(dbConnection)

	t.Run("nominal", func(t *testing.T) {
		truncate()
		domainTag, err := tagRepo.Upsert(ctx, "design")
		require.NoError(t, err)
		require.NotNil(t, domainTag)
		require.Equal(t, "design", domainTag.Name)
		require.NotEmpty(t, domainTag.ID)
		require.NotEmpty(t, domainTag.CreatedAt)
		require.Nil(t, domainTag.Color)
	})

	t.Run("upsert same name twice returns the same row", func(t *testing.T) {
		truncate()
		first, err := tagRepo.Upsert(ctx, "design")
		require.NoError(t, err)

		second, err := tagRepo.Upsert(ctx, "design")
		require.NoError(t, err)
		require.Equal(t, first.ID, second.ID)

		var count int
		err = dbConnection.QueryRow("SELECT COUNT(*) FROM tags WHERE name = 'design'").Scan(&count)
		require.NoError(t, err)
		require.Equal(t, 1, count)
	})

	t.Run("names differing only in case are distinct tags", func(t *testing.T) {
		truncate()
		lower, err := tagRepo.Upsert(ctx, "design")
		require.NoError(t, err)

		upper, err := tagRepo.Upsert(ctx, "Design")
		require.NoError(t, err)
		require.NotEqual(t, lower.ID, upper.ID)

		var count int
		err = dbConnection.QueryRow("SELECT COUNT(*) FROM tags").Scan(&count)
		require.NoError(t, err)
		require.Equal(t, 2, count)
	})
}

func TestSqlTagRepository_FindByName(t *testing.T) {
	dbConnection, cleanup, truncate := postgres.NewTestDB(t)
	defer cleanup()
	ctx := context.Background()

	tagRepo := postgres.NewSqlTagRepository(dbConnection)

	t.Run("nominal", func(t *testing.T) {
		truncate()
		created, err := tagRepo.Upsert(ctx, "golang")
		require.NoError(t, err)

		found, err := tagRepo.FindByName(ctx, "golang")
		require.NoError(t, err)
		require.Equal(t, created.ID, found.ID)
		require.Equal(t, "golang", found.Name)
	})

	t.Run("lookup is case sensitive", func(t *testing.T) {
		truncate()
		_, err := tagRepo.Upsert(ctx, "golang")
		require.NoError(t, err)

		found, err := tagRepo.FindByName(ctx, "Golang")
		require.ErrorIs(t, err, domain.ErrTagNotFound)
		require.Nil(t, found)
	})

	t.Run("tag not found", func(t *testing.T) {
		truncate()
		found, err := tagRepo.FindByName(ctx, "missing")
		require.ErrorIs(t, err, domain.ErrTagNotFound)
		require.Nil(t, found)
	})
}

func TestSqlTagRepository_FindByNames(t *testing.T) {
	dbConnection, cleanup, truncate := postgres.NewTestDB(t)
	defer cleanup()
	ctx := context.Background()

	tagRepo := postgres.NewSqlTagRepository(dbConnection)

	t.Run("nominal", func(t *testing.T) {
		truncate()
		design, err := tagRepo.Upsert(ctx, "design")
		require.NoError(t, err)
		golang, err := tagRepo.Upsert(ctx, "golang")
		require.NoError(t, err)

		found, err := tagRepo.FindByNames(ctx, []string{"design", "golang", "missing"})
		require.NoError(t, err)
		require.Len(t, found, 2)
		require.Equal(t, design.ID, found["design"])
		require.Equal(t, golang.ID, found["golang"])
	})

	t.Run("empty input", func(t *testing.T) {
		truncate()
		found, err := tagRepo.FindByNames(ctx, nil)
		require.NoError(t, err)
		require.Empty(t, found)
	})
}

func TestSqlTagRepository_FindByIDs(t *testing.T) {
	dbConnection, cleanup, truncate := postgres.NewTestDB(t)
	defer cleanup()
	ctx := context.Background()

	tagRepo := postgres.NewSqlTagRepository(dbConnection)

	t.Run("nominal", func(t *testing.T) {
		truncate()
		design, err := tagRepo.Upsert(ctx, "design")
		require.NoError(t, err)
		golang, err := tagRepo.Upsert(ctx, "golang")
		require.NoError(t, err)

		found, err := tagRepo.FindByIDs(ctx, []uuid.UUID{design.ID, golang.ID})
		require.NoError(t, err)
		require.Len(t, found, 2)
	})

	t.Run("unknown ids are skipped", func(t *testing.T) {
		truncate()
		design, err := tagRepo.Upsert(ctx, "design")
		require.NoError(t, err)

		found, err := tagRepo.FindByIDs(ctx, []uuid.UUID{design.ID, uuid.New()})
		require.NoError(t, err)
		require.Len(t, found, 1)
		require.Equal(t, "design", found[0].Name)
	})
}

func TestSqlTagRepository_FindByNoteIDs(t *testing.T) {
	dbConnection, cleanup, truncate := postgres.NewTestDB(t)
	defer cleanup()
	ctx := context.Background()

	tagRepo := postgres.NewSqlTagRepository(dbConnection)
	noteRepo := postgres.NewSqlNoteRepository(dbConnection)
	noteTagRepo := postgres.NewNoteTagRepository(dbConnection)

	t.Run("tags grouped by note, name ordered", func(t *testing.T) {
		truncate()
		first, err := noteRepo.Create(ctx, uuid.New(), "first", "https://example.com/a", nil)
		require.NoError(t, err)
		second, err := noteRepo.Create(ctx, uuid.New(), "second", "https://example.com/b", nil)
		require.NoError(t, err)

		golang, err := tagRepo.Upsert(ctx, "golang")
		require.NoError(t, err)
		design, err := tagRepo.Upsert(ctx, "design")
		require.NoError(t, err)

		_, err = noteTagRepo.CreateMany(ctx, first.ID, []uuid.UUID{golang.ID, design.ID})
		require.NoError(t, err)
		_, err = noteTagRepo.CreateMany(ctx, second.ID, []uuid.UUID{golang.ID})
		require.NoError(t, err)

		grouped, err := tagRepo.FindByNoteIDs(ctx, []uuid.UUID{first.ID, second.ID})
		require.NoError(t, err)
		require.Len(t, grouped, 2)
		require.Len(t, grouped[first.ID], 2)
		require.Equal(t, "design", grouped[first.ID][0].Name)
		require.Equal(t, "golang", grouped[first.ID][1].Name)
		require.Len(t, grouped[second.ID], 1)
	})

	t.Run("note without tags is absent from result", func(t *testing.T) {
		truncate()
		bare, err := noteRepo.Create(ctx, uuid.New(), "bare", "https://example.com", nil)
		require.NoError(t, err)

		grouped, err := tagRepo.FindByNoteIDs(ctx, []uuid.UUID{bare.ID})
		require.NoError(t, err)
		require.Empty(t, grouped)
	})
}

func TestSqlTagRepository_List(t *testing.T) {
	dbConnection, cleanup, truncate := postgres.NewTestDB(t)
	defer cleanup()
	ctx := context.Background()

	tagRepo := postgres.NewSqlTagRepository(dbConnection)

	t.Run("paginated by name with marker", func(t *testing.T) {
		truncate()
		for _, name := range []string{"design", "golang", "reading", "ux"} {
			_, err := tagRepo.Upsert(ctx, name)
			require.NoError(t, err)
		}

		page, nextMarker, err := tagRepo.List(ctx, 2, nil)
		require.NoError(t, err)
		require.Len(t, page, 2)
		require.Equal(t, "design", page[0].Name)
		require.Equal(t, "golang", page[1].Name)
		require.NotNil(t, nextMarker)
		require.Equal(t, "golang", *nextMarker)

		page, nextMarker, err = tagRepo.List(ctx, 2, nextMarker)
		require.NoError(t, err)
		require.Len(t, page, 2)
		require.Equal(t, "reading", page[0].Name)
		require.Equal(t, "ux", page[1].Name)
		require.Nil(t, nextMarker)
	})

	t.Run("empty table", func(t *testing.T) {
		truncate()
		page, nextMarker, err := tagRepo.List(ctx, 10, nil)
		require.NoError(t, err)
		require.Empty(t, page)
		require.Nil(t, nextMarker)
	})
}
