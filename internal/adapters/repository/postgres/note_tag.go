package postgres

import (
	"context"
	"fmt"
	"lightnote/internal/core/domain"
	"lightnote/internal/core/port"
	"strings"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

type sqlNoteTagRepository struct {
	db SQLQuerier
}

// NewNoteTagRepository creates sqlNoteTagRepository
func NewNoteTagRepository(db SQLQuerier) port.NoteTagRepository {
	return &sqlNoteTagRepository{db: db}
}

// CreateMany creates multiple note-tag associations in batch.
// Duplicate tag ids collapse to one row (set semantics).
func (s *sqlNoteTagRepository) CreateMany(ctx context.Context, noteID uuid.UUID, tagIDs []uuid.UUID) (int, error) {
	if len(tagIDs) == 0 {
		return 0, nil
	}

	// Remove duplicates
	uniqueTagIDs := make(map[uuid.UUID]bool)
	for _, tagID := range tagIDs {
		uniqueTagIDs[tagID] = true
	}

	tagIDsList := make([]uuid.UUID, 0, len(uniqueTagIDs))
	for tagID := range uniqueTagIDs {
		tagIDsList = append(tagIDsList, tagID)
	}

	placeholders := make([]string, len(tagIDsList))
	args := make([]interface{}, len(tagIDsList)*2)

	for i, tagID := range tagIDsList {
		baseIdx := i * 2
		placeholders[i] = fmt.Sprintf("($%d, $%d)", baseIdx+1, baseIdx+2)
		args[baseIdx] = noteID
		args[baseIdx+1] = tagID
	}

	query := fmt.Sprintf(
		"INSERT INTO note_tags (note_id, tag_id) VALUES %s ON CONFLICT (note_id, tag_id) DO NOTHING",
		strings.Join(placeholders, ", "),
	)

	result, err := s.db.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("error inserting note tags: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, err
	}

	return int(rowsAffected), nil
}

// FindByNoteID finds all tag associations of a note
func (s *sqlNoteTagRepository) FindByNoteID(ctx context.Context, noteID uuid.UUID) ([]domain.NoteTag, error) {
	query := `SELECT note_id, tag_id FROM note_tags WHERE note_id = $1`

	rows, err := s.db.QueryContext(ctx, query, noteID)
	if err != nil {
		return nil, fmt.Errorf("error querying note tags: %w", err)
	}
	defer rows.Close()

	var noteTags []domain.NoteTag
	for rows.Next() {
		var dbRelation dbNoteTag
		if err := rows.Scan(&dbRelation.NoteID, &dbRelation.TagID); err != nil {
			return nil, fmt.Errorf("error scanning note tag: %w", err)
		}
		noteTags = append(noteTags, *dbRelation.ToDomain())
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating note tags: %w", err)
	}

	return noteTags, nil
}

// DeleteByNoteID removes all tag associations for a given note
func (s *sqlNoteTagRepository) DeleteByNoteID(ctx context.Context, noteID uuid.UUID) error {
	query := `DELETE FROM note_tags WHERE note_id = $1`

	_, err := s.db.ExecContext(ctx, query, noteID)
	if err != nil {
		return fmt.Errorf("error deleting note tags: %w", err)
	}
	return nil
}

// DeleteMany removes the given tag associations of a note
func (s *sqlNoteTagRepository) DeleteMany(ctx context.Context, noteID uuid.UUID, tagIDs []uuid.UUID) error {
	if len(tagIDs) == 0 {
		return nil
	}

	query := `DELETE FROM note_tags WHERE note_id = $1 AND tag_id = ANY($2)`

	_, err := s.db.ExecContext(ctx, query, noteID, pq.Array(tagIDs))
	if err != nil {
		return fmt.Errorf("error deleting note tags: %w", err)
	}
	return nil
}

type dbNoteTag struct {
	NoteID uuid.UUID `db:"note_id"`
	TagID  uuid.UUID `db:"tag_id"`
}

func (d *dbNoteTag) ToDomain() *domain.NoteTag {
	return &domain.NoteTag{
		NoteID: d.NoteID,
		TagID:  d.TagID,
	}
}
