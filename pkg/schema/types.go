package schema

import (
	"fmt"
	"net/mail"
	"strings"
	"time"
)

// Type defines the contract for step-data validation. Implementations
// determine whether a candidate value satisfies one data type.
type Type interface {
	// Name returns the data type name as it appears in Step.DataType.
	Name() string
	// Validate checks if a value conforms to this type.
	Validate(value any) error
}

// --- Built-in Type Implementations ---

// TextType accepts any non-empty string.
type TextType struct{}

func (t *TextType) Name() string { return "text" }

func (t *TextType) Validate(value any) error {
	s, ok := value.(string)
	if !ok {
		return fmt.Errorf("expected string, got %T", value)
	}
	if s == "" {
		return fmt.Errorf("expected non-empty string")
	}
	return nil
}

// PasswordType accepts strings of a minimum length.
type PasswordType struct{}

func (t *PasswordType) Name() string { return "password" }

func (t *PasswordType) Validate(value any) error {
	s, ok := value.(string)
	if !ok {
		return fmt.Errorf("expected string, got %T", value)
	}
	if len(s) < 8 {
		return fmt.Errorf("expected at least 8 characters, got %d", len(s))
	}
	return nil
}

// EmailType accepts RFC 5322 addresses.
type EmailType struct{}

func (t *EmailType) Name() string { return "email" }

func (t *EmailType) Validate(value any) error {
	s, ok := value.(string)
	if !ok {
		return fmt.Errorf("expected string, got %T", value)
	}
	if _, err := mail.ParseAddress(s); err != nil {
		return fmt.Errorf("invalid email address: %v", err)
	}
	return nil
}

// NumberType accepts numeric values, including whole floats produced by
// JSON unmarshaling.
type NumberType struct{}

func (t *NumberType) Name() string { return "number" }

func (t *NumberType) Validate(value any) error {
	switch value.(type) {
	case int, int8, int16, int32, int64, float32, float64:
		return nil
	default:
		return fmt.Errorf("expected number, got %T", value)
	}
}

// BoolType accepts boolean values.
type BoolType struct{}

func (t *BoolType) Name() string { return "bool" }

func (t *BoolType) Validate(value any) error {
	if _, ok := value.(bool); !ok {
		return fmt.Errorf("expected bool, got %T", value)
	}
	return nil
}

// DateType accepts ISO 8601 calendar dates (2006-01-02).
type DateType struct{}

func (t *DateType) Name() string { return "date" }

func (t *DateType) Validate(value any) error {
	s, ok := value.(string)
	if !ok {
		return fmt.Errorf("expected string, got %T", value)
	}
	if _, err := time.Parse("2006-01-02", s); err != nil {
		return fmt.Errorf("invalid date, want YYYY-MM-DD: %v", err)
	}
	return nil
}

// EnumType accepts one of a fixed set of string values.
type EnumType struct {
	values []string
}

func (t *EnumType) Name() string {
	return fmt.Sprintf("enum(%s)", strings.Join(t.values, "|"))
}

func (t *EnumType) Validate(value any) error {
	s, ok := value.(string)
	if !ok {
		return fmt.Errorf("expected string, got %T", value)
	}
	for _, v := range t.values {
		if s == v {
			return nil
		}
	}
	return fmt.Errorf("expected one of %s, got %q", strings.Join(t.values, "|"), s)
}

// --- Factory Functions ---

// Text creates a free-text validator.
func Text() Type { return &TextType{} }

// Password creates a password validator.
func Password() Type { return &PasswordType{} }

// Email creates an email address validator.
func Email() Type { return &EmailType{} }

// Number creates a numeric validator.
func Number() Type { return &NumberType{} }

// Bool creates a boolean validator.
func Bool() Type { return &BoolType{} }

// Date creates a calendar date validator.
func Date() Type { return &DateType{} }

// Enum creates a validator accepting only the given values.
func Enum(values ...string) Type {
	return &EnumType{values: values}
}

// ForDataType resolves a Step.DataType string to a Type.
// An empty name defaults to free text, matching how detectors emit steps
// that require input without classifying it. Enums use the form
// "enum(a|b|c)".
func ForDataType(name string) (Type, error) {
	if strings.HasPrefix(name, "enum(") && strings.HasSuffix(name, ")") {
		inner := name[len("enum(") : len(name)-1]
		if inner == "" {
			return nil, fmt.Errorf("enum with no values: %s", name)
		}
		return Enum(strings.Split(inner, "|")...), nil
	}

	switch name {
	case "", "text":
		return Text(), nil
	case "password":
		return Password(), nil
	case "email":
		return Email(), nil
	case "number":
		return Number(), nil
	case "bool":
		return Bool(), nil
	case "date":
		return Date(), nil
	default:
		return nil, fmt.Errorf("unsupported data type: %s", name)
	}
}
