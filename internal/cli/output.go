package cli

import (
	"encoding/json"
	"errors"
	"fmt"

	"blog-backend/internal/shared/rules"
)

func (a *app) json() bool { return a.output == outputJSON }

func (a *app) printJSON(v any) error {
	enc := json.NewEncoder(a.out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// fieldFailure is the rendered form of a rejected field.
type fieldFailure struct {
	Code    string `json:"code"`
	Field   string `json:"field,omitempty"`
	Message string `json:"message"`
}

func describe(err error) fieldFailure {
	f := fieldFailure{Code: rules.ToErrorCode(err), Message: err.Error()}
	var fe *rules.FieldError
	if errors.As(err, &fe) {
		f.Field = fe.Field
	}
	return f
}

func (f fieldFailure) String() string {
	if f.Field == "" {
		return fmt.Sprintf("%s: %s", f.Code, f.Message)
	}
	return fmt.Sprintf("%s %s: %s", f.Code, f.Field, f.Message)
}

// fail renders a validation failure as the command error. Other errors are
// returned unchanged.
func (a *app) fail(err error) error {
	if !rules.IsValidation(err) {
		return err
	}
	if a.json() {
		_ = a.printJSON(map[string]fieldFailure{"error": describe(err)})
	}
	return errors.New(describe(err).String())
}
