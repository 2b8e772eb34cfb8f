// Package apierr defines the error kinds surfaced by the HTTP API and
// their JSON rendering.
//
// Every failure a handler can report falls into one of four kinds:
// not-found, validation, conflict, or operation-failed. Handlers wrap
// domain errors into an *Error and pass it to Write, which picks the
// status code and emits the uniform body:
//
//	{ "error": { "code": "user_not_found", "message": "..." } }
package apierr

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies an API failure into a status category.
type Kind int

const (
	// KindNotFound covers lookups where no document matched, including
	// malformed identifiers.
	KindNotFound Kind = iota
	// KindValidation covers malformed input shapes and values outside
	// the closed enumerations.
	KindValidation
	// KindConflict covers requests rejected because of existing state,
	// such as duplicate edition ownership.
	KindConflict
	// KindInternal covers writes the store reported no effect for, and
	// any other failure the client did not cause.
	KindInternal
)

func (k Kind) status() int {
	switch k {
	case KindNotFound:
		return http.StatusNotFound
	case KindValidation:
		return http.StatusBadRequest
	case KindConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// Error is an API-visible failure with a stable machine code.
type Error struct {
	Kind    Kind
	Code    string
	Message string
	Err     error // underlying cause, not rendered to clients
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error { return e.Err }

// New builds an Error with a formatted message.
func New(kind Kind, code, format string, args ...any) *Error {
	return &Error{Kind: kind, Code: code, Message: fmt.Sprintf(format, args...)}
}

// Wrap attaches an underlying cause to a new Error.
func Wrap(err error, kind Kind, code, format string, args ...any) *Error {
	e := New(kind, code, format, args...)
	e.Err = err
	return e
}

type body struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// Write renders err as a JSON error response. Errors that are not an
// *Error are reported as a generic internal failure so internals never
// leak to clients.
func Write(w http.ResponseWriter, err error) {
	var ae *Error
	if !errors.As(err, &ae) {
		ae = &Error{Kind: KindInternal, Code: "internal", Message: "internal error"}
	}

	var b body
	b.Error.Code = ae.Code
	b.Error.Message = ae.Message

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(ae.Kind.status())
	_ = json.NewEncoder(w).Encode(b)
}
