package model

import (
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/samber/lo"

	"blog-backend/internal/shared/rules"
)

var clickbait = validation.By(func(value any) error {
	title, _ := value.(string)
	if lo.SomeBy(ClickbaitPhrases, func(phrase string) bool {
		return strings.Contains(title, phrase)
	}) {
		return nil
	}
	return validation.NewError("validation_title_clickbait", MsgTitleClickbait)
})

// ValidateTitle checks that the title is present and contains a clickbait
// phrase.
func ValidateTitle(value *string) (string, error) {
	if err := rules.Validate(FieldTitle, rules.ErrRequiredField, trimmed(value),
		validation.Required.Error(MsgTitleRequired),
	); err != nil {
		return "", err
	}

	if err := rules.Validate(FieldTitle, rules.ErrContentPolicy, *value, clickbait); err != nil {
		return "", err
	}

	return *value, nil
}

// ValidateContent checks that content is present and at least
// MinContentLength characters long.
func ValidateContent(value *string) (string, error) {
	if err := rules.Validate(FieldContent, rules.ErrRequiredField, value,
		validation.NotNil.Error(MsgContentRequired),
	); err != nil {
		return "", err
	}

	// Length rules ignore empty strings, Required covers that case.
	if err := rules.Validate(FieldContent, rules.ErrLength, *value,
		validation.Required.Error(MsgContentTooShort),
		validation.RuneLength(MinContentLength, 0).Error(MsgContentTooShort),
	); err != nil {
		return "", err
	}

	return *value, nil
}

// ValidateSummary checks that a present summary has at most
// MaxSummaryLength characters. nil passes through.
func ValidateSummary(value *string) (*string, error) {
	if value == nil {
		return nil, nil
	}

	if err := rules.Validate(FieldSummary, rules.ErrLength, *value,
		validation.RuneLength(0, MaxSummaryLength).Error(MsgSummaryTooLong),
	); err != nil {
		return nil, err
	}

	summary := *value
	return &summary, nil
}

// ValidateCategory checks that the category is exactly one of
// AllowedCategories. nil is not in the list.
func ValidateCategory(value *string) (string, error) {
	if err := rules.Validate(FieldCategory, rules.ErrContentPolicy, value,
		validation.Required.Error(MsgCategoryNotAllowed),
		validation.In(lo.ToAnySlice(AllowedCategories)...).Error(MsgCategoryNotAllowed),
	); err != nil {
		return "", err
	}

	return *value, nil
}

func trimmed(value *string) *string {
	if value == nil {
		return nil
	}
	s := strings.TrimSpace(*value)
	return &s
}
