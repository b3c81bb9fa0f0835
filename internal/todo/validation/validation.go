// Package validation runs declarative struct-tag rules over request inputs
// and reports every violation at once as an ordered list of field errors.
package validation

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

// FieldError names one failed rule. Field is the JSON name.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Error carries every field that failed, in struct declaration order.
type Error struct {
	Fields []FieldError
}

func (e *Error) Error() string {
	parts := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		parts[i] = f.Field + ": " + f.Message
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Field builds a single-field Error.
func Field(field, message string) *Error {
	return &Error{Fields: []FieldError{{Field: field, Message: message}}}
}

// dateLayouts are tried in order by ParseDate.
var dateLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// ParseDate accepts RFC 3339 timestamps, a bare local date-time, or a plain
// calendar date. Zone-less values are taken as UTC.
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("validation: %q is not a valid date", s)
}

type Validator struct {
	v *validator.Validate
}

func New() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		if name == "" {
			return f.Name
		}
		return name
	})

	// Registration only fails for an empty tag or nil func. An empty string
	// passes: omitempty still runs rules on a non-nil *string.
	_ = v.RegisterValidation("calendar", func(fl validator.FieldLevel) bool {
		s := fl.Field().String()
		if s == "" {
			return true
		}
		_, err := ParseDate(s)
		return err == nil
	})

	return &Validator{v: v}
}

// Struct validates s. It returns nil, a *Error listing every failed field, or
// the underlying error when s is not a validatable struct.
func (v *Validator) Struct(s any) error {
	err := v.v.Struct(s)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	out := &Error{Fields: make([]FieldError, 0, len(verrs))}
	for _, fe := range verrs {
		out.Fields = append(out.Fields, FieldError{
			Field:   fe.Field(),
			Message: message(fe),
		})
	}
	return out
}

func message(fe validator.FieldError) string {
	field := fe.Field()
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "email":
		return "must be a valid email address"
	case "oneof":
		return "must be one of: " + strings.Join(strings.Fields(fe.Param()), ", ")
	case "calendar":
		return "must be a valid date"
	case "min":
		if fe.Param() == "1" {
			return field + " cannot be empty"
		}
		return fmt.Sprintf("must be at least %s characters", fe.Param())
	case "max":
		return fmt.Sprintf("must be at most %s characters", fe.Param())
	}
	return "is invalid"
}

// FromJSON converts a JSON type mismatch, such as a string sent for a
// boolean, into a field error. Other errors report false.
func FromJSON(err error) (*Error, bool) {
	var typeErr *json.UnmarshalTypeError
	if !errors.As(err, &typeErr) || typeErr.Field == "" {
		return nil, false
	}

	want := "a string"
	switch typeErr.Type.Kind() {
	case reflect.Bool:
		want = "a boolean"
	case reflect.Int, reflect.Int64, reflect.Float64:
		want = "a number"
	case reflect.Pointer:
		if typeErr.Type.Elem().Kind() == reflect.Bool {
			want = "a boolean"
		}
	}
	return Field(typeErr.Field, "must be "+want), true
}
