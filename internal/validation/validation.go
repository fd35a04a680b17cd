package validation

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"reflect"
	"strings"

	"github.com/creasty/defaults"
	"github.com/go-playground/validator/v10"
)

// FieldError describes a single constraint violation, addressed by the
// JSON path of the offending field (e.g. "items[0].quantity").
type FieldError struct {
	Field  string `json:"field"`
	Reason string `json:"reason"`
}

// Error is returned when a request body fails validation. It carries one
// FieldError per violated constraint.
type Error struct {
	Fields []FieldError
}

func (e *Error) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, fmt.Sprintf("%s %s", f.Field, f.Reason))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Report field paths by json tag name, not Go field name
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return v
}

// Decode reads a JSON body into a fresh T, fills in declared defaults and
// validates the result. Constraint violations are returned as *Error;
// any other error means the body could not be decoded at all.
func Decode[T any](r io.Reader) (*T, error) {
	var v T
	if err := json.NewDecoder(r).Decode(&v); err != nil {
		return nil, fmt.Errorf("decode body: %w", err)
	}
	if err := defaults.Set(&v); err != nil {
		return nil, fmt.Errorf("apply defaults: %w", err)
	}
	if err := Check(&v); err != nil {
		return nil, err
	}
	return &v, nil
}

// Check validates an already-decoded value against its struct tags.
func Check(v any) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	fields := make([]FieldError, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, FieldError{
			Field:  fieldPath(fe),
			Reason: reason(fe),
		})
	}
	return &Error{Fields: fields}
}

// fieldPath strips the root type name from the validator namespace, turning
// "Order.items[0].quantity" into "items[0].quantity".
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.Index(ns, "."); i >= 0 {
		return ns[i+1:]
	}
	return fe.Field()
}

func reason(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "gte", "min":
		return "must be at least " + fe.Param()
	case "email":
		return "must be a valid email address"
	default:
		return "is invalid"
	}
}
