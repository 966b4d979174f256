package model

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"

	"blog-backend/internal/shared/rules"
)

// PhoneNumberLength is the exact number of digits in a phone number
const PhoneNumberLength = 10

var digitsOnly = regexp.MustCompile(`^[0-9]+$`)

// ValidateName checks that name is present and that no stored author already
// uses it. The uniqueness check is skipped when names is nil.
// Returns the name unchanged.
func ValidateName(ctx context.Context, names NameLookup, value *string) (string, error) {
	return validateName(ctx, names, value, uuid.Nil)
}

// validateName treats an author whose ID equals self as the owner of the name.
func validateName(ctx context.Context, names NameLookup, value *string, self uuid.UUID) (string, error) {
	if err := rules.Validate(FieldName, rules.ErrRequiredField, trimmed(value),
		validation.Required.Error(MsgNameRequired),
	); err != nil {
		return "", err
	}

	name := *value
	if names == nil {
		return name, nil
	}

	if err := rules.Check(ctx, FieldName, rules.ErrUniqueness, name,
		validation.WithContext(uniqueName(names, self)),
	); err != nil {
		return "", err
	}

	return name, nil
}

func uniqueName(names NameLookup, self uuid.UUID) validation.RuleWithContextFunc {
	return func(ctx context.Context, value any) error {
		name, _ := value.(string)

		existing, err := names.FindByName(ctx, name)
		switch {
		case errors.Is(err, ErrAuthorNotFound):
			return nil
		case err != nil:
			return validation.NewInternalError(fmt.Errorf("failed to look up author name: %w", err))
		case existing == nil:
			return nil
		case self != uuid.Nil && existing.ID == self:
			return nil
		}

		return validation.NewError("validation_name_taken", MsgNameTaken)
	}
}

// ValidatePhoneNumber checks that a present phone number is exactly ten
// ASCII digits. nil passes through.
func ValidatePhoneNumber(value *string) (*string, error) {
	if value == nil {
		return nil, nil
	}

	if err := rules.Validate(FieldPhoneNumber, rules.ErrFormat, *value,
		validation.Required.Error(MsgPhoneLength),
		validation.RuneLength(PhoneNumberLength, PhoneNumberLength).Error(MsgPhoneLength),
		validation.Match(digitsOnly).Error(MsgPhoneDigitsOnly),
	); err != nil {
		return nil, err
	}

	phone := *value
	return &phone, nil
}

func trimmed(value *string) *string {
	if value == nil {
		return nil
	}
	s := strings.TrimSpace(*value)
	return &s
}
