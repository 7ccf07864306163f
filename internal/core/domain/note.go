package domain

import (
	"time"

	"github.com/google/uuid"
)

// Note represents a saved piece of web content
type Note struct {
	ID          uuid.UUID
	Content     string
	SourceURL   string
	SourceTitle *string
	FolderID    *uuid.UUID
	CreatedAt   time.Time
	UpdatedAt   time.Time
	Tags        []Tag
}

// MaxTagsPerNote is the maximum number of tags attachable to a note
const MaxTagsPerNote = 10

// MaxTagNameLength is the maximum length of a tag name in characters
const MaxTagNameLength = 20
