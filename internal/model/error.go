package model

import "errors"

// DataValidationError is the single error kind surfaced by the catalogue
// core. It covers malformed deserialization input, updates issued without
// an identifier, and storage write rejections (raised after rollback).
type DataValidationError struct {
	Message string
	Err     error
}

func (e *DataValidationError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *DataValidationError) Unwrap() error {
	return e.Err
}

// NewDataValidationError creates a validation error with the given message.
func NewDataValidationError(message string) *DataValidationError {
	return &DataValidationError{Message: message}
}

// WrapDataValidationError creates a validation error that preserves the
// underlying cause for errors.Is/As inspection.
func WrapDataValidationError(message string, err error) *DataValidationError {
	return &DataValidationError{Message: message, Err: err}
}

// IsDataValidationError reports whether err is, or wraps, a
// DataValidationError.
func IsDataValidationError(err error) bool {
	var dve *DataValidationError
	return errors.As(err, &dve)
}
