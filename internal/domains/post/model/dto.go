package model

import (
	"time"

	"github.com/google/uuid"
)

// CreatePostRequest carries the fields of a new post.
// Nil fields are not supplied.
type CreatePostRequest struct {
	Title    *string `json:"title,omitempty" yaml:"title,omitempty"`
	Content  *string `json:"content,omitempty" yaml:"content,omitempty"`
	Summary  *string `json:"summary,omitempty" yaml:"summary,omitempty"`
	Category *string `json:"category,omitempty" yaml:"category,omitempty"`
}

// UpdatePostRequest - partial update, only non-nil fields change
type UpdatePostRequest struct {
	Title    *string `json:"title,omitempty" yaml:"title,omitempty"`
	Content  *string `json:"content,omitempty" yaml:"content,omitempty"`
	Summary  *string `json:"summary,omitempty" yaml:"summary,omitempty"`
	Category *string `json:"category,omitempty" yaml:"category,omitempty"`
}

type PostResponse struct {
	ID        uuid.UUID `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Summary   *string   `json:"summary,omitempty"`
	Category  string    `json:"category"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Fields converts the request into validated-assignment fields in
// declaration order.
func (req *CreatePostRequest) Fields() []Field {
	return postFields(req.Title, req.Content, req.Summary, req.Category)
}

// Fields converts the request into validated-assignment fields in
// declaration order.
func (req *UpdatePostRequest) Fields() []Field {
	return postFields(req.Title, req.Content, req.Summary, req.Category)
}

func postFields(title, content, summary, category *string) []Field {
	fields := make([]Field, 0, 4)
	if title != nil {
		fields = append(fields, WithTitle(*title))
	}
	if content != nil {
		fields = append(fields, WithContent(*content))
	}
	if summary != nil {
		fields = append(fields, WithSummary(summary))
	}
	if category != nil {
		fields = append(fields, WithCategory(*category))
	}
	return fields
}

// ToResponse converts Post entity to PostResponse DTO
func (p *Post) ToResponse() *PostResponse {
	return &PostResponse{
		ID:        p.ID,
		Title:     p.Title,
		Content:   p.Content,
		Summary:   p.Summary,
		Category:  p.Category,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}
