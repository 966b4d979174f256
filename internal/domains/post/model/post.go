package model

import (
	"time"

	"github.com/google/uuid"
)

// Post is a blog post. Assign the content fields through NewPost, Apply or
// the setters so the field rules run before the value is accepted.
type Post struct {
	ID        uuid.UUID `json:"id" db:"id"`
	Title     string    `json:"title" db:"title"`
	Content   string    `json:"content" db:"content"`
	Summary   *string   `json:"summary,omitempty" db:"summary"`
	Category  string    `json:"category" db:"category"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// Field assigns one validated attribute while building or updating a Post.
type Field struct {
	key   string
	apply func(p *Post) error
}

func WithTitle(title string) Field {
	return Field{key: FieldTitle, apply: func(p *Post) error { return p.SetTitle(title) }}
}

func WithContent(content string) Field {
	return Field{key: FieldContent, apply: func(p *Post) error { return p.SetContent(content) }}
}

// WithSummary supplies the summary. A nil summary clears it.
func WithSummary(summary *string) Field {
	return Field{key: FieldSummary, apply: func(p *Post) error { return p.SetSummary(summary) }}
}

func WithCategory(category string) Field {
	return Field{key: FieldCategory, apply: func(p *Post) error { return p.SetCategory(category) }}
}

// NewPost builds a Post from the supplied fields, validating each one in the
// order given. The first rejected field aborts construction. Title, content
// and category that were never supplied are validated as missing, in that
// order.
func NewPost(fields ...Field) (*Post, error) {
	p := &Post{}
	supplied := make(map[string]bool, len(fields))

	for _, f := range fields {
		if err := f.apply(p); err != nil {
			return nil, err
		}
		supplied[f.key] = true
	}

	if !supplied[FieldTitle] {
		if _, err := ValidateTitle(nil); err != nil {
			return nil, err
		}
	}
	if !supplied[FieldContent] {
		if _, err := ValidateContent(nil); err != nil {
			return nil, err
		}
	}
	if !supplied[FieldCategory] {
		if _, err := ValidateCategory(nil); err != nil {
			return nil, err
		}
	}

	return p, nil
}

// Apply validates and assigns fields on a copy of p, so a rejected field
// leaves the receiver untouched.
func (p *Post) Apply(fields ...Field) (*Post, error) {
	updated := *p
	for _, f := range fields {
		if err := f.apply(&updated); err != nil {
			return nil, err
		}
	}
	return &updated, nil
}

func (p *Post) SetTitle(title string) error {
	v, err := ValidateTitle(&title)
	if err != nil {
		return err
	}
	p.Title = v
	return nil
}

func (p *Post) SetContent(content string) error {
	v, err := ValidateContent(&content)
	if err != nil {
		return err
	}
	p.Content = v
	return nil
}

func (p *Post) SetSummary(summary *string) error {
	v, err := ValidateSummary(summary)
	if err != nil {
		return err
	}
	p.Summary = v
	return nil
}

func (p *Post) SetCategory(category string) error {
	v, err := ValidateCategory(&category)
	if err != nil {
		return err
	}
	p.Category = v
	return nil
}
