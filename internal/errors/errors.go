// Package errors defines the sentinel errors shared across litedsl.
//
// Callers check categories with errors.Is(). Only the standard library may be
// imported here so every other internal package can depend on it.
package errors

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingProperty indicates that a mandatory descriptor property has no value.
	ErrMissingProperty = errors.New("mandatory property is not specified")

	// ErrUnknownVariant indicates that a compound parameter holds a tag that
	// matches none of its registered variants.
	ErrUnknownVariant = errors.New("unknown compound parameter variant")

	// ErrUnknownEnumValue indicates that an enum parameter holds an encoding
	// outside of its value-mapping table.
	ErrUnknownEnumValue = errors.New("unknown enum value")

	// ErrInvalidValue indicates that a parameter value cannot be decoded into
	// the semantic type of its field.
	ErrInvalidValue = errors.New("invalid parameter value")

	// ErrUnknownType indicates that a descriptor type is not present in the catalog.
	ErrUnknownType = errors.New("unknown descriptor type")

	// ErrInvalidDocument indicates a structurally broken configuration document.
	ErrInvalidDocument = errors.New("invalid document")

	// ErrSchemaViolation indicates that a document failed JSON schema validation.
	ErrSchemaViolation = errors.New("document does not match schema")

	// ErrUnsupportedFormat indicates an unknown document or output format.
	ErrUnsupportedFormat = errors.New("unsupported format")

	// ErrValidationFailed indicates that descriptor validation reported errors.
	ErrValidationFailed = errors.New("validation failed")

	// ErrConfigNil indicates that a nil config was passed to validation.
	ErrConfigNil = errors.New("config is nil")

	// ErrConfigInvalid indicates an invalid CLI configuration value.
	ErrConfigInvalid = errors.New("invalid configuration")
)

// Is reports whether any error in err's chain matches target.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target.
func As(err error, target any) bool {
	return errors.As(err, target)
}

// Join returns an error that wraps the given errors.
func Join(errs ...error) error {
	return errors.Join(errs...)
}

// Wrap adds context to err. It returns nil if err is nil.
func Wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", msg, err)
}

// Wrapf adds formatted context to err. It returns nil if err is nil.
func Wrapf(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), err)
}
