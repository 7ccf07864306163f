package domain

import "github.com/google/uuid"

// NoteTag represents a note-tag association
type NoteTag struct {
	NoteID uuid.UUID
	TagID  uuid.UUID
}
