package fonterror

import (
	"errors"
	"fmt"
)

// Kind identifies a failure so callers can attach a targeted remediation hint
type Kind string

const (
	// Transport
	InvalidHTTPResponse Kind = "INVALID_HTTP_RESPONSE"

	// Setup
	OpenPrefixDirectory      Kind = "OPEN_PREFIX_DIRECTORY"
	DeleteTemporaryDirectory Kind = "DELETE_TEMPORARY_DIRECTORY"
	DeleteTemporaryZipFile   Kind = "DELETE_TEMPORARY_ZIP_FILE"
	CreateTemporaryDirectory Kind = "CREATE_TEMPORARY_DIRECTORY"
	CreateTemporaryZipFile   Kind = "CREATE_TEMPORARY_ZIP_FILE"
	FlushTemporaryZipFile    Kind = "FLUSH_TEMPORARY_ZIP_FILE"
	CreateFontDirectory      Kind = "CREATE_FONT_DIRECTORY"

	// Extraction
	FailedZipExtraction  Kind = "FAILED_ZIP_EXTRACTION"
	ReadExtractedArchive Kind = "READ_EXTRACTED_ARCHIVE"

	// Lookup
	FontNotFound Kind = "FONT_NOT_FOUND"

	// Installation
	SaveFontFile Kind = "SAVE_FONT_FILE"

	// Registry
	OpenFontDirectory   Kind = "OPEN_FONT_DIRECTORY"
	SetFontFile         Kind = "SET_FONT_FILE"
	DeleteFontFile      Kind = "DELETE_FONT_FILE"
	DeleteFontDirectory Kind = "DELETE_FONT_DIRECTORY"
	DeleteCurrentFont   Kind = "DELETE_CURRENT_FONT"
	ReadCurrentFont     Kind = "READ_CURRENT_FONT"

	// Input
	InvalidFontName  Kind = "INVALID_FONT_NAME"
	InvalidArguments Kind = "INVALID_ARGUMENTS"
	LoadConfig       Kind = "LOAD_CONFIG"

	Unknown Kind = "UNKNOWN"
)

// Error is a failure of a known Kind, optionally wrapping the underlying cause
type Error struct {
	Kind    Kind
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Kind, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Kind, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *Error) Unwrap() error {
	return e.Wrapped
}

// Is matches another *Error of the same Kind
func (e *Error) Is(target error) bool {
	var targetErr *Error
	if errors.As(target, &targetErr) {
		return e.Kind == targetErr.Kind
	}
	return false
}

// New creates an error of the given kind
func New(kind Kind, format string, args ...interface{}) *Error {
	return &Error{
		Kind:    kind,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap attaches a kind to err. Returns nil if err is nil.
func Wrap(err error, kind Kind, format string, args ...interface{}) *Error {
	if err == nil {
		return nil
	}
	return &Error{
		Kind:    kind,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *Error) WithDetail(key string, value interface{}) *Error {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsKind checks if err, or anything it wraps, is of the given kind
func IsKind(err error, kind Kind) bool {
	var fontErr *Error
	if errors.As(err, &fontErr) {
		return fontErr.Kind == kind
	}
	return false
}

// KindOf returns the kind of err, or Unknown for foreign errors
func KindOf(err error) Kind {
	var fontErr *Error
	if errors.As(err, &fontErr) {
		return fontErr.Kind
	}
	return Unknown
}
