package model

import (
	"time"

	"github.com/google/uuid"
)

// CreateAuthorRequest carries the fields of a new author.
// Nil fields are not supplied.
type CreateAuthorRequest struct {
	Name        *string `json:"name,omitempty" yaml:"name,omitempty"`
	PhoneNumber *string `json:"phone_number,omitempty" yaml:"phone_number,omitempty"`
}

// UpdateAuthorRequest carries a partial update. Only non-nil fields change.
type UpdateAuthorRequest struct {
	Name        *string `json:"name,omitempty" yaml:"name,omitempty"`
	PhoneNumber *string `json:"phone_number,omitempty" yaml:"phone_number,omitempty"`
}

// AuthorResponse - Basic author information
type AuthorResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	PhoneNumber *string   `json:"phone_number,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Fields converts the request into validated-assignment fields, name first.
func (req *CreateAuthorRequest) Fields() []Field {
	return authorFields(req.Name, req.PhoneNumber)
}

// Fields converts the request into validated-assignment fields, name first.
func (req *UpdateAuthorRequest) Fields() []Field {
	return authorFields(req.Name, req.PhoneNumber)
}

func authorFields(name, phone *string) []Field {
	fields := make([]Field, 0, 2)
	if name != nil {
		fields = append(fields, WithName(*name))
	}
	if phone != nil {
		fields = append(fields, WithPhoneNumber(phone))
	}
	return fields
}

// ToResponse converts Author entity to AuthorResponse DTO
func (a *Author) ToResponse() *AuthorResponse {
	return &AuthorResponse{
		ID:          a.ID,
		Name:        a.Name,
		PhoneNumber: a.PhoneNumber,
		CreatedAt:   a.CreatedAt,
		UpdatedAt:   a.UpdatedAt,
	}
}
