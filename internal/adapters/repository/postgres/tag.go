package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"lightnote/internal/core/domain"
	"lightnote/internal/core/port"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

type sqlTagRepository struct {
	db SQLQuerier
}

// NewSqlTagRepository creates sqlTagRepository that implements port.TagRepository
func NewSqlTagRepository(db SQLQuerier) port.TagRepository {
	return &sqlTagRepository{
		db: db,
	}
}

// Upsert returns the tag with the given name, creating it if absent.
// A concurrent insert of the same name loses on the unique constraint;
// the loser re-reads the winning row instead of failing.
func (s *sqlTagRepository) Upsert(ctx context.Context, name string) (*domain.Tag, error) {
	query := `INSERT INTO tags (name) VALUES ($1)
              ON CONFLICT (name) DO NOTHING
              RETURNING id, name, color, created_at`

	var tagDB dbTag
	err := s.db.QueryRowContext(ctx, query, name).Scan(
		&tagDB.ID,
		&tagDB.Name,
		&tagDB.Color,
		&tagDB.CreatedAt,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return s.FindByName(ctx, name)
	}
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23505" {
			return s.FindByName(ctx, name)
		}
		return nil, fmt.Errorf("error upserting tag %s: %w", name, err)
	}

	return tagDB.ToDomain(), nil
}

// FindByName finds a tag by exact name
func (s *sqlTagRepository) FindByName(ctx context.Context, name string) (*domain.Tag, error) {
	query := `SELECT id, name, color, created_at FROM tags WHERE name = $1`

	var tagDB dbTag

	err := s.db.QueryRowContext(ctx, query, name).Scan(
		&tagDB.ID,
		&tagDB.Name,
		&tagDB.Color,
		&tagDB.CreatedAt,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrTagNotFound
		}
		return nil, err
	}

	return tagDB.ToDomain(), nil
}

// FindByNames retrieves multiple tags by their names in a single query
func (s *sqlTagRepository) FindByNames(ctx context.Context, names []string) (map[string]uuid.UUID, error) {
	if len(names) == 0 {
		return make(map[string]uuid.UUID), nil
	}

	placeholders := make([]string, len(names))
	args := make([]interface{}, len(names))
	for i, name := range names {
		placeholders[i] = fmt.Sprintf("$%d", i+1)
		args[i] = name
	}

	query := fmt.Sprintf(
		"SELECT id, name FROM tags WHERE name IN (%s)",
		strings.Join(placeholders, ", "),
	)

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("error querying tags: %w", err)
	}
	defer rows.Close()

	result := make(map[string]uuid.UUID)
	for rows.Next() {
		var id uuid.UUID
		var name string
		if err := rows.Scan(&id, &name); err != nil {
			return nil, fmt.Errorf("error scanning tag: %w", err)
		}
		result[name] = id
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating tags: %w", err)
	}

	return result, nil
}

// FindByIDs retrieves multiple tags by their ids in a single query
func (s *sqlTagRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.Tag, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	placeholders := make([]string, len(ids))
	args := make([]interface{}, len(ids))
	for i, id := range ids {
		placeholders[i] = fmt.Sprintf("$%d", i+1)
		args[i] = id
	}

	query := fmt.Sprintf(
		"SELECT id, name, color, created_at FROM tags WHERE id IN (%s)",
		strings.Join(placeholders, ", "),
	)

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("error querying tags: %w", err)
	}
	defer rows.Close()

	var result []domain.Tag
	for rows.Next() {
		var tagDB dbTag
		if err := rows.Scan(&tagDB.ID, &tagDB.Name, &tagDB.Color, &tagDB.CreatedAt); err != nil {
			return nil, fmt.Errorf("error scanning tag: %w", err)
		}
		result = append(result, *tagDB.ToDomain())
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating tags: %w", err)
	}

	return result, nil
}

// FindByNoteIDs retrieves the tags of multiple notes in a single query,
// grouped by note id
func (s *sqlTagRepository) FindByNoteIDs(ctx context.Context, noteIDs []uuid.UUID) (map[uuid.UUID][]domain.Tag, error) {
	result := make(map[uuid.UUID][]domain.Tag)
	if len(noteIDs) == 0 {
		return result, nil
	}

	query := `SELECT nt.note_id, t.id, t.name, t.color, t.created_at
              FROM note_tags nt
              JOIN tags t ON t.id = nt.tag_id
              WHERE nt.note_id = ANY($1)
              ORDER BY t.name ASC`

	rows, err := s.db.QueryContext(ctx, query, pq.Array(noteIDs))
	if err != nil {
		return nil, fmt.Errorf("error querying note tags: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var noteID uuid.UUID
		var tagDB dbTag
		if err := rows.Scan(&noteID, &tagDB.ID, &tagDB.Name, &tagDB.Color, &tagDB.CreatedAt); err != nil {
			return nil, fmt.Errorf("error scanning note tag: %w", err)
		}
		result[noteID] = append(result[noteID], *tagDB.ToDomain())
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating note tags: %w", err)
	}

	return result, nil
}

// List retrieves tags with cursor-based pagination sorted by name
func (s *sqlTagRepository) List(ctx context.Context, limit int, marker *string) ([]domain.Tag, *string, error) {
	if limit <= 0 {
		limit = 20 // default limit
	}
	if limit > 100 {
		limit = 100 // max limit
	}

	var query string
	var args []interface{}

	if marker != nil && *marker != "" {
		query = `
			SELECT id, name, color, created_at
			FROM tags
			WHERE name > $1
			ORDER BY name ASC
			LIMIT $2`
		args = []interface{}{*marker, limit + 1}
	} else {
		query = `
			SELECT id, name, color, created_at
			FROM tags
			ORDER BY name ASC
			LIMIT $1`
		args = []interface{}{limit + 1}
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, nil, fmt.Errorf("error querying tags: %w", err)
	}
	defer rows.Close()

	tags := make([]domain.Tag, 0, limit)
	for rows.Next() {
		var tagDB dbTag
		if err := rows.Scan(&tagDB.ID, &tagDB.Name, &tagDB.Color, &tagDB.CreatedAt); err != nil {
			return nil, nil, fmt.Errorf("error scanning tag: %w", err)
		}
		tags = append(tags, *tagDB.ToDomain())
	}

	if err := rows.Err(); err != nil {
		return nil, nil, fmt.Errorf("error iterating tags: %w", err)
	}

	// Check if there are more results
	var nextMarker *string
	if len(tags) > limit {
		tags = tags[:limit]
		lastName := tags[len(tags)-1].Name
		nextMarker = &lastName
	}

	return tags, nextMarker, nil
}

// dbTag represents a tag in DB
type dbTag struct {
	ID        uuid.UUID      `db:"id"`
	Name      string         `db:"name"`
	Color     sql.NullString `db:"color"`
	CreatedAt time.Time      `db:"created_at"`
}

// ToDomain converts to domain.Tag
func (t *dbTag) ToDomain() *domain.Tag {
	tag := &domain.Tag{
		ID:        t.ID,
		Name:      t.Name,
		CreatedAt: t.CreatedAt,
	}
	if t.Color.Valid {
		color := t.Color.String
		tag.Color = &color
	}
	return tag
}
