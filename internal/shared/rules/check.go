package rules

import (
	"context"
	"errors"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Check runs the ozzo rules against value and reports the first failure as a
// FieldError of the given kind. The failing rule's message becomes the
// FieldError message. Rules that hit an infrastructure problem must return a
// validation.InternalError; its underlying error is returned untouched.
func Check(ctx context.Context, field string, kind error, value any, rules ...validation.Rule) error {
	err := validation.ValidateWithContext(ctx, value, rules...)
	if err == nil {
		return nil
	}

	var internal validation.InternalError
	if errors.As(err, &internal) {
		return internal.InternalError()
	}

	return NewFieldError(field, kind, err.Error())
}

// Validate is Check for rules that never need a context.
func Validate(field string, kind error, value any, rules ...validation.Rule) error {
	return Check(context.Background(), field, kind, value, rules...)
}
