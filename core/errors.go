package core

import (
	"errors"
	"fmt"
	"strings"
)

// ErrMissingField is wrapped by a StructuralError when a required key is absent
var ErrMissingField = errors.New("missing required field")

// StructuralError means the document does not have the expected shape: a required
// field is missing, or a value has the wrong type.
type StructuralError struct {
	// Path is the dotted location of the offending key, e.g. files[0].version.type
	Path string
	// Line is the 1-based line in the source document, or 0 if it is not known
	Line int
	Err  error
}

func (e *StructuralError) Error() string {
	var b strings.Builder
	b.WriteString("invalid pack")
	if e.Path != "" {
		fmt.Fprintf(&b, " at %s", e.Path)
	}
	if e.Line > 0 {
		fmt.Fprintf(&b, " (line %d)", e.Line)
	}
	if e.Err != nil {
		b.WriteString(": ")
		b.WriteString(e.Err.Error())
	}
	return b.String()
}

func (e *StructuralError) Unwrap() error {
	return e.Err
}

// UnknownVariantError is returned when a discriminant or enum token is not one of the recognised values
type UnknownVariantError struct {
	Path     string
	Value    string
	Expected []string
}

func (e *UnknownVariantError) Error() string {
	return fmt.Sprintf("unknown variant %q at %s, expected one of: %s", e.Value, e.Path, strings.Join(e.Expected, ", "))
}

// ConstraintSyntaxError is returned when a semver range expression cannot be parsed
type ConstraintSyntaxError struct {
	Path string
	Text string
	Err  error
}

func (e *ConstraintSyntaxError) Error() string {
	msg := fmt.Sprintf("invalid semver range %q", e.Text)
	if e.Path != "" {
		msg += " at " + e.Path
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *ConstraintSyntaxError) Unwrap() error {
	return e.Err
}

// UnrepresentableValueError is returned by Render when a value cannot be written to the manifest without loss
type UnrepresentableValueError struct {
	Path string
	Err  error
}

func (e *UnrepresentableValueError) Error() string {
	return fmt.Sprintf("cannot render manifest value at %s: %v", e.Path, e.Err)
}

func (e *UnrepresentableValueError) Unwrap() error {
	return e.Err
}

func missingField(path string) error {
	return &StructuralError{Path: path, Err: ErrMissingField}
}
