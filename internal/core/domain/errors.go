package domain

import "errors"

// ErrAlreadyExists is an error thrown when entity already exists
var ErrAlreadyExists = errors.New("already exists")

// ErrNoteNotFound is an error thrown when a note is not found
var ErrNoteNotFound = errors.New("note not found")

// ErrTagNotFound is an error when tag is not found
var ErrTagNotFound = errors.New("tag not found")

// ErrContentRequired is an error thrown when note content is missing
var ErrContentRequired = errors.New("content is required")

// ErrSourceURLRequired is an error thrown when the source URL is missing
var ErrSourceURLRequired = errors.New("source url is required")

// ErrSourceTitleRequired is an error thrown when the source title is missing
var ErrSourceTitleRequired = errors.New("source title is required")
