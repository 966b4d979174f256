package model

import (
	"errors"

	"blog-backend/internal/shared/rules"
)

// Validation messages
const (
	MsgNameRequired    = "Author must have a name."
	MsgNameTaken       = "Author name must be unique."
	MsgPhoneLength     = "Phone number must be exactly 10 digits."
	MsgPhoneDigitsOnly = "Phone number must contain digits only."
)

var (
	// Business Rule Errors
	ErrAuthorNotFound = errors.New("author not found")
	ErrSchemaNotReady = errors.New("authors table does not exist - run migrations first")

	// ErrDuplicateName is returned by storage when the unique constraint on
	// authors.name rejects a write that passed validation concurrently.
	ErrDuplicateName = rules.NewFieldError(FieldName, rules.ErrUniqueness, MsgNameTaken)
)
