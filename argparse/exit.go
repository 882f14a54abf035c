package argparse

import "errors"

// ExitCodeDefaults holds the codes used when no per-type mapping applies.
type ExitCodeDefaults struct {
	Success      int // default: 0
	GeneralError int // default: 1
}

func defaultExitDefaults() ExitCodeDefaults {
	return ExitCodeDefaults{Success: 0, GeneralError: 1}
}

// ExitCodeManager maps failures to process exit codes in ModeExit.
// Every failure exits with GeneralError unless its type was remapped.
type ExitCodeManager struct {
	codesByType map[ErrorType]int
	defaults    ExitCodeDefaults
}

func newExitCodeManager() *ExitCodeManager {
	return &ExitCodeManager{
		codesByType: make(map[ErrorType]int),
		defaults:    defaultExitDefaults(),
	}
}

// DefineType overrides the exit code for one error category.
func (e *ExitCodeManager) DefineType(typ ErrorType, code int) *ExitCodeManager {
	e.codesByType[typ] = code
	return e
}

// Default replaces the fallback codes.
func (e *ExitCodeManager) Default(d ExitCodeDefaults) *ExitCodeManager {
	e.defaults = d
	return e
}

// Resolve converts an error to an exit code: nil is Success, an *Error uses
// its type mapping if one was defined, anything else is GeneralError.
func (e *ExitCodeManager) Resolve(err error) int {
	if err == nil {
		return e.defaults.Success
	}
	var perr *Error
	if errors.As(err, &perr) {
		if code, ok := e.codesByType[perr.Type]; ok {
			return code
		}
	}
	return e.defaults.GeneralError
}
