package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// validateStruct runs tag validation and returns one message per failed
// field, keyed by the wire field name from names (falling back to the
// lower-cased Go field name).
func validateStruct(s any, names map[string]string) map[string]string {
	err := validate.Struct(s)
	if err == nil {
		return map[string]string{}
	}

	fields := map[string]string{}
	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		fields["_"] = err.Error()
		return fields
	}
	for _, fe := range ve {
		name, ok := names[fe.Field()]
		if !ok {
			name = strings.ToLower(fe.Field())
		}
		fields[name] = fieldError(fe)
	}
	return fields
}

// fieldError converts a single ValidationError into a human-readable message.
func fieldError(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "max":
		return fmt.Sprintf("must be at most %s characters", fe.Param())
	case "oneof":
		return fmt.Sprintf("must be one of: %s", fe.Param())
	case "datetime":
		return "must be a date in YYYY-MM-DD format"
	case "numeric":
		return "must be numeric"
	default:
		return fmt.Sprintf("failed validation (%s)", fe.Tag())
	}
}
