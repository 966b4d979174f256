package model

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Field names, shared by validation errors and storage columns
const (
	FieldName        = "name"
	FieldPhoneNumber = "phone_number"
)

// Author represents the core Author entity.
// Assign Name and PhoneNumber through NewAuthor, Apply or the setters so the
// field rules run before the value is accepted.
type Author struct {
	ID          uuid.UUID `json:"id" db:"id"`
	Name        string    `json:"name" db:"name"`
	PhoneNumber *string   `json:"phone_number,omitempty" db:"phone_number"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" db:"updated_at"`
}

// NameLookup finds an existing author by exact name.
// Implementations return ErrAuthorNotFound when no author has the name.
type NameLookup interface {
	FindByName(ctx context.Context, name string) (*Author, error)
}

// Field assigns one validated attribute while building or updating an Author.
type Field struct {
	key   string
	apply func(ctx context.Context, names NameLookup, a *Author) error
}

// WithName supplies the author name.
func WithName(name string) Field {
	return Field{
		key: FieldName,
		apply: func(ctx context.Context, names NameLookup, a *Author) error {
			return a.SetName(ctx, names, name)
		},
	}
}

// WithPhoneNumber supplies the phone number. A nil phone clears it.
func WithPhoneNumber(phone *string) Field {
	return Field{
		key: FieldPhoneNumber,
		apply: func(_ context.Context, _ NameLookup, a *Author) error {
			return a.SetPhoneNumber(phone)
		},
	}
}

// NewAuthor builds an Author from the supplied fields, validating each one in
// the order given. The first rejected field aborts construction.
// A name that was never supplied is rejected as missing.
func NewAuthor(ctx context.Context, names NameLookup, fields ...Field) (*Author, error) {
	a := &Author{}
	supplied := make(map[string]bool, len(fields))

	for _, f := range fields {
		if err := f.apply(ctx, names, a); err != nil {
			return nil, err
		}
		supplied[f.key] = true
	}

	if !supplied[FieldName] {
		if _, err := ValidateName(ctx, names, nil); err != nil {
			return nil, err
		}
	}

	return a, nil
}

// Apply validates and assigns fields on a copy of a, so a rejected field
// leaves the receiver untouched.
func (a *Author) Apply(ctx context.Context, names NameLookup, fields ...Field) (*Author, error) {
	updated := *a
	for _, f := range fields {
		if err := f.apply(ctx, names, &updated); err != nil {
			return nil, err
		}
	}
	return &updated, nil
}

// SetName validates name and assigns it. Keeping the author's own current
// name is not a uniqueness violation.
func (a *Author) SetName(ctx context.Context, names NameLookup, name string) error {
	v, err := validateName(ctx, names, &name, a.ID)
	if err != nil {
		return err
	}
	a.Name = v
	return nil
}

// SetPhoneNumber validates phone and assigns it.
func (a *Author) SetPhoneNumber(phone *string) error {
	v, err := ValidatePhoneNumber(phone)
	if err != nil {
		return err
	}
	a.PhoneNumber = v
	return nil
}
