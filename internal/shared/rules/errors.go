package rules

import "errors"

// Error kinds. Every field rejection unwraps to exactly one of these, so
// callers can branch with errors.Is without knowing which field failed.
var (
	ErrRequiredField = errors.New("required field is missing")
	ErrFormat        = errors.New("value is malformed")
	ErrLength        = errors.New("value length is out of bounds")
	ErrContentPolicy = errors.New("value violates content policy")
	ErrUniqueness    = errors.New("value is already taken")
)

// FieldError reports the rejection of a single field value.
type FieldError struct {
	Field   string `json:"field"`
	Kind    error  `json:"-"`
	Message string `json:"message"`
}

// NewFieldError builds a FieldError of the given kind.
func NewFieldError(field string, kind error, message string) *FieldError {
	return &FieldError{Field: field, Kind: kind, Message: message}
}

func (e *FieldError) Error() string {
	return e.Message
}

func (e *FieldError) Unwrap() error {
	return e.Kind
}

// ToErrorCode converts error to a stable error code
func ToErrorCode(err error) string {
	switch {
	case errors.Is(err, ErrRequiredField):
		return "REQUIRED_FIELD"
	case errors.Is(err, ErrFormat):
		return "INVALID_FORMAT"
	case errors.Is(err, ErrLength):
		return "INVALID_LENGTH"
	case errors.Is(err, ErrContentPolicy):
		return "CONTENT_POLICY"
	case errors.Is(err, ErrUniqueness):
		return "DUPLICATE_VALUE"
	default:
		return "INTERNAL_ERROR"
	}
}

// IsValidation reports whether err is a field rejection rather than an
// infrastructure failure.
func IsValidation(err error) bool {
	var fe *FieldError
	return errors.As(err, &fe)
}
