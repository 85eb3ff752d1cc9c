package notes

import (
	"errors"
	"fmt"
)

// Kind classifies adapter failures so callers can branch without matching
// message text.
type Kind string

const (
	KindNotFound       Kind = "not_found"
	KindFolderNotFound Kind = "folder_not_found"
	KindExecution      Kind = "execution_error"
	KindValidation     Kind = "validation_error"
)

// Error is the failure type every adapter operation returns. The rendered
// form is "kind: message", which is what tool callers see.
type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func notFoundf(format string, args ...any) *Error {
	return &Error{Kind: KindNotFound, Message: fmt.Sprintf(format, args...)}
}

func folderNotFoundf(format string, args ...any) *Error {
	return &Error{Kind: KindFolderNotFound, Message: fmt.Sprintf(format, args...)}
}

func executionf(format string, args ...any) *Error {
	return &Error{Kind: KindExecution, Message: fmt.Sprintf(format, args...)}
}

func validationf(format string, args ...any) *Error {
	return &Error{Kind: KindValidation, Message: fmt.Sprintf(format, args...)}
}

// KindOf returns the failure kind of err, or "" if err is nil or not an
// adapter error.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return ""
}

// IsNotFound reports whether err means no matching note exists.
func IsNotFound(err error) bool { return KindOf(err) == KindNotFound }

// IsFolderNotFound reports whether err means the target folder is absent.
func IsFolderNotFound(err error) bool { return KindOf(err) == KindFolderNotFound }

// IsValidation reports whether err means a required argument was missing.
func IsValidation(err error) bool { return KindOf(err) == KindValidation }
