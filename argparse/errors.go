package argparse

import (
	"errors"
	"fmt"
)

// ErrorType categorizes failures. The type drives exit-code mapping
// (see ExitCodeManager) and whether errors.Is matches ErrDeclaration or
// ErrParse.
type ErrorType string

const (
	// Declaration time.
	ErrorTypeConflictingOption ErrorType = "conflicting_option"
	ErrorTypeInvalidOption     ErrorType = "invalid_option"
	ErrorTypeKindMismatch      ErrorType = "kind_mismatch"
	ErrorTypeInvalidConst      ErrorType = "invalid_const"
	ErrorTypeInvalidAction     ErrorType = "invalid_action"
	ErrorTypeInvalidNargs      ErrorType = "invalid_nargs"
	ErrorTypeMissingDest       ErrorType = "missing_dest"
	ErrorTypeMissingConst      ErrorType = "missing_const"

	// Parse time.
	ErrorTypeUnrecognized    ErrorType = "unrecognized"
	ErrorTypeMissingRequired ErrorType = "missing_required"
	ErrorTypeInvalidChoice   ErrorType = "invalid_choice"
)

// StatusFailure is the status carried by every *Error.
const StatusFailure = 1

var (
	// ErrDeclaration matches every declaration-time *Error via errors.Is.
	ErrDeclaration = errors.New("argparse: invalid declaration")
	// ErrParse matches every parse-time *Error via errors.Is.
	ErrParse = errors.New("argparse: invalid arguments")
	// ErrHelpShown is returned by Parse when --help was handled and the
	// exit hook returned instead of terminating the process.
	ErrHelpShown = errors.New("argparse: help shown")
)

// Error is the structured failure returned in ModeReturn.
type Error struct {
	Status     int
	Type       ErrorType
	Message    string
	Key        string // argument the failure is about, when known
	Suggestion string // closest declared option for unrecognized flags
}

// Error returns the message, with the suggestion appended when there is one.
func (e *Error) Error() string {
	if e.Suggestion != "" {
		return e.Message + " (did you mean " + e.Suggestion + "?)"
	}
	return e.Message
}

// Is lets errors.Is classify an *Error by failure class.
func (e *Error) Is(target error) bool {
	switch target {
	case ErrDeclaration:
		return e.Type.declaration()
	case ErrParse:
		return !e.Type.declaration()
	}
	return false
}

func (t ErrorType) declaration() bool {
	switch t {
	case ErrorTypeUnrecognized, ErrorTypeMissingRequired, ErrorTypeInvalidChoice:
		return false
	}
	return true
}

func newError(t ErrorType, key, format string, args ...any) *Error {
	return &Error{
		Status:  StatusFailure,
		Type:    t,
		Key:     key,
		Message: fmt.Sprintf(format, args...),
	}
}

func errRequired(name string) *Error {
	return newError(ErrorTypeMissingRequired, name, "the following arguments are required: %s", name)
}

func errUnrecognized(token string) *Error {
	return newError(ErrorTypeUnrecognized, token, "unrecognized arguments: %s", token)
}

func errInvalidChoice(key string, v Value) *Error {
	return newError(ErrorTypeInvalidChoice, key, "argument %s: invalid choice: %s", key, v)
}
