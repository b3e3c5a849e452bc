// Package validate runs client-side validation of request structs before
// anything is sent to the backend.
package validate

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

// ErrValidation is matched by every error returned from Struct and Var.
var ErrValidation = errors.New("validation error")

var (
	once sync.Once
	v    *validator.Validate
)

func instance() *validator.Validate {
	once.Do(func() {
		v = validator.New(validator.WithRequiredStructEnabled())
	})
	return v
}

// Error lists the offending fields in a human-readable message.
type Error struct {
	Fields  []string
	Message string
}

func (e *Error) Error() string { return e.Message }

func (e *Error) Is(target error) bool { return target == ErrValidation }

// Struct validates s according to its `validate` tags.
func Struct(s any) error {
	return convert(instance().Struct(s), "")
}

// Var validates a single value against tag; name is used in the message.
func Var(name string, value any, tag string) error {
	return convert(instance().Var(value, tag), name)
}

// Failed builds a validation error that did not come from a tag check,
// e.g. a business rule.
func Failed(field, message string) error {
	return &Error{Fields: []string{field}, Message: message}
}

func convert(err error, name string) error {
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: %v", ErrValidation, err)
	}

	out := &Error{}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		field := fe.Field()
		if field == "" {
			field = name
		}
		out.Fields = append(out.Fields, field)
		msgs = append(msgs, describe(field, fe))
	}
	out.Message = strings.Join(msgs, "; ")
	return out
}

func describe(field string, fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "email":
		return field + " must be a valid email address"
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", field, fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", field, fe.Param())
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", field, fe.Param())
	case "gte":
		return fmt.Sprintf("%s must be at least %s", field, fe.Param())
	case "lte":
		return fmt.Sprintf("%s must be at most %s", field, fe.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, fe.Param())
	case "latitude", "longitude":
		return fmt.Sprintf("%s must be a valid %s", field, fe.Tag())
	default:
		return fmt.Sprintf("%s is invalid (%s)", field, fe.Tag())
	}
}
