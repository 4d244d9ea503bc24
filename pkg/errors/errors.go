package errors

import (
	"fmt"
)

// Code identifies a diagnostic category with a stable numeric value. Codes
// are part of the tool's reporting contract and must not be renumbered.
type Code int

const (
	CodeIOFailure          Code = 810
	CodeUnresolvedType     Code = 851
	CodeUnresolvedStruct   Code = 852
	CodeUnresolvedAlias    Code = 853
	CodeNonColorInPalette  Code = 854
	CodeUnindexedResource  Code = 855
	CodeModifierNotFound   Code = 856
	CodeBadPlaceholderSize Code = 857
	CodeAssetNotFound      Code = 858
	CodeBadIconSize        Code = 861
	CodeBadIconFormat      Code = 862
)

// ParseError represents a module or manifest parsing failure with optional
// line metadata.
type ParseError struct {
	Path    string
	Line    int
	Message string
	Err     error
}

// NewParseError constructs a ParseError.
func NewParseError(path string, line int, err error) error {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &ParseError{Path: path, Line: line, Message: message, Err: err}
}

func (e *ParseError) Error() string {
	if e == nil {
		return ""
	}

	if e.Line > 0 {
		return fmt.Sprintf("parse error: %s:%d: %s", e.Path, e.Line, e.Message)
	}
	return fmt.Sprintf("parse error: %s: %s", e.Path, e.Message)
}

// Unwrap exposes the underlying error.
func (e *ParseError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// ValidationError captures manifest or module validation issues.
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

// NewValidationError constructs a ValidationError.
func NewValidationError(field, message string, err error) error {
	return &ValidationError{Field: field, Message: message, Err: err}
}

func (e *ValidationError) Error() string {
	if e == nil {
		return ""
	}
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// Unwrap exposes the underlying error.
func (e *ValidationError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// EmitError reports a failure while turning a value into generated code.
// Name carries the offending variable, struct or resource identifier.
type EmitError struct {
	Code    Code
	Name    string
	Message string
}

// NewEmitError constructs an EmitError.
func NewEmitError(code Code, name, message string) error {
	return &EmitError{Code: code, Name: name, Message: message}
}

func (e *EmitError) Error() string {
	if e == nil {
		return ""
	}
	if e.Name != "" {
		return fmt.Sprintf("emit error %d: %s: %s", e.Code, e.Name, e.Message)
	}
	return fmt.Sprintf("emit error %d: %s", e.Code, e.Message)
}

// AssetError reports a failure while reading, validating or transforming an
// icon asset or an output artifact on disk.
type AssetError struct {
	Code    Code
	Path    string
	Message string
	Err     error
}

// NewAssetError constructs an AssetError.
func NewAssetError(code Code, path, message string, err error) error {
	return &AssetError{Code: code, Path: path, Message: message, Err: err}
}

func (e *AssetError) Error() string {
	if e == nil {
		return ""
	}
	if e.Path != "" {
		return fmt.Sprintf("asset error %d: %s: %s", e.Code, e.Path, e.Message)
	}
	return fmt.Sprintf("asset error %d: %s", e.Code, e.Message)
}

// Unwrap exposes the underlying error.
func (e *AssetError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}
