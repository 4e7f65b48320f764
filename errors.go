package sharpparse

import "fmt"

// ErrorKind classifies a scan-time or configuration-time error.
type ErrorKind uint8

const (
	// UnexpectedChar is raised when a character matches no handler
	// in a registry that has handlers elsewhere.
	UnexpectedChar ErrorKind = iota
	// UnexpectedSequence is reserved for future use; the dispatch
	// loop does not currently raise it.
	UnexpectedSequence
	// InvalidSyntax is raised by handlers for malformed constructs.
	InvalidSyntax
	// ModeError is raised for mode stack misuse.
	ModeError
	// ConfigError covers invalid registrations and file-read failures.
	ConfigError
	// GenericError is the catch-all kind.
	GenericError
)

var errorKindNames = [...]string{
	UnexpectedChar:     "unexpected character",
	UnexpectedSequence: "unexpected sequence",
	InvalidSyntax:      "invalid syntax",
	ModeError:          "mode error",
	ConfigError:        "configuration error",
	GenericError:       "error",
}

// String returns a human-readable name for the kind.
func (k ErrorKind) String() string {
	if int(k) < len(errorKindNames) {
		return errorKindNames[k]
	}
	return "error"
}

// ErrorInfo describes one recorded error. Line and Col reflect the
// cursor at the moment of detection, before any advance.
type ErrorInfo struct {
	Kind       ErrorKind
	Line       int    // 1-based, 0 when no position applies
	Col        int    // 1-based
	Mode       string // active mode at detection time, "" = none
	Message    string
	Suggestion string // optional hint, may be empty
}

// Error returns a formatted message with position information.
func (e *ErrorInfo) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("%d:%d: %s: %s", e.Line, e.Col, e.Kind, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// configErrorf builds a position-less ConfigError.
func configErrorf(format string, args ...any) *ErrorInfo {
	return &ErrorInfo{
		Kind:    ConfigError,
		Message: fmt.Sprintf(format, args...),
	}
}
