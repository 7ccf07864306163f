package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"lightnote/internal/core/domain"
	"lightnote/internal/core/port"
	"time"

	"github.com/google/uuid"
)

type sqlNoteRepository struct {
	db SQLQuerier
}

// NewSqlNoteRepository creates sqlNoteRepository that implements port.NoteRepository
func NewSqlNoteRepository(db SQLQuerier) port.NoteRepository {
	return &sqlNoteRepository{
		db: db,
	}
}

const noteColumns = `id, content, source_url, source_title, folder_id, created_at, updated_at`

// Create inserts a new note and returns it with server-assigned timestamps
func (s *sqlNoteRepository) Create(ctx context.Context, id uuid.UUID, content, sourceURL string, sourceTitle *string) (*domain.Note, error) {
	query := `INSERT INTO notes (id, content, source_url, source_title)
              VALUES ($1, $2, $3, $4)
              RETURNING ` + noteColumns

	var noteDB dbNote
	err := s.db.QueryRowContext(ctx, query, id, content, sourceURL, sourceTitle).Scan(noteDB.fields()...)
	if err != nil {
		return nil, fmt.Errorf("error inserting note: %w", err)
	}

	return noteDB.ToDomain(), nil
}

// FindByID finds a note by id
func (s *sqlNoteRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Note, error) {
	query := `SELECT ` + noteColumns + ` FROM notes WHERE id = $1`

	var noteDB dbNote
	err := s.db.QueryRowContext(ctx, query, id).Scan(noteDB.fields()...)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNoteNotFound
		}
		return nil, err
	}

	return noteDB.ToDomain(), nil
}

// List retrieves all notes, most recent first
func (s *sqlNoteRepository) List(ctx context.Context) ([]domain.Note, error) {
	query := `SELECT ` + noteColumns + ` FROM notes ORDER BY created_at DESC, id DESC`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error querying notes: %w", err)
	}
	defer rows.Close()

	notes := make([]domain.Note, 0, 32)
	for rows.Next() {
		var noteDB dbNote
		if err := rows.Scan(noteDB.fields()...); err != nil {
			return nil, fmt.Errorf("error scanning note: %w", err)
		}
		notes = append(notes, *noteDB.ToDomain())
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating notes: %w", err)
	}

	return notes, nil
}

// Update replaces the scalar fields of a note
func (s *sqlNoteRepository) Update(ctx context.Context, id uuid.UUID, content, sourceURL, sourceTitle string) (*domain.Note, error) {
	query := `UPDATE notes
              SET content = $1, source_url = $2, source_title = $3, updated_at = now()
              WHERE id = $4
              RETURNING ` + noteColumns

	var noteDB dbNote
	err := s.db.QueryRowContext(ctx, query, content, sourceURL, sourceTitle, id).Scan(noteDB.fields()...)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNoteNotFound
		}
		return nil, fmt.Errorf("error updating note: %w", err)
	}

	return noteDB.ToDomain(), nil
}

// Delete removes a note. Tag associations go with it (ON DELETE CASCADE),
// tag rows stay.
func (s *sqlNoteRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM notes WHERE id = $1`

	result, err := s.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("error deleting note: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("error checking rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return domain.ErrNoteNotFound
	}

	return nil
}

// dbNote represents a note in DB
type dbNote struct {
	ID          uuid.UUID      `db:"id"`
	Content     string         `db:"content"`
	SourceURL   string         `db:"source_url"`
	SourceTitle sql.NullString `db:"source_title"`
	FolderID    uuid.NullUUID  `db:"folder_id"`
	CreatedAt   time.Time      `db:"created_at"`
	UpdatedAt   time.Time      `db:"updated_at"`
}

func (n *dbNote) fields() []any {
	return []any{&n.ID, &n.Content, &n.SourceURL, &n.SourceTitle, &n.FolderID, &n.CreatedAt, &n.UpdatedAt}
}

// ToDomain converts to domain.Note
func (n *dbNote) ToDomain() *domain.Note {
	note := &domain.Note{
		ID:        n.ID,
		Content:   n.Content,
		SourceURL: n.SourceURL,
		CreatedAt: n.CreatedAt,
		UpdatedAt: n.UpdatedAt,
	}
	if n.SourceTitle.Valid {
		title := n.SourceTitle.String
		note.SourceTitle = &title
	}
	if n.FolderID.Valid {
		folderID := n.FolderID.UUID
		note.FolderID = &folderID
	}
	return note
}
