package apperr

import (
	"encoding/json"
	"errors"
	"net/http"
)

type Kind int

const (
	Validation Kind = iota
	Unauthenticated
	Forbidden
	NotFound
	Conflict
	Internal
)

func (k Kind) Status() int {
	switch k {
	case Validation, Conflict:
		return http.StatusBadRequest
	case Unauthenticated:
		return http.StatusUnauthorized
	case Forbidden:
		return http.StatusForbidden
	case NotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }

func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

func Wrap(kind Kind, message string, err error) *Error {
	return &Error{Kind: kind, Message: message, Err: err}
}

// KindOf classifies any error; untyped errors count as Internal.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return Internal
}

type body struct {
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
}

// Write converts err to the gateway's JSON error shape. Underlying error
// detail is only exposed for 500s in dev mode.
func Write(w http.ResponseWriter, err error, dev bool) {
	b := body{Message: "Server error"}
	status := http.StatusInternalServerError

	var e *Error
	if errors.As(err, &e) {
		status = e.Kind.Status()
		b.Message = e.Message
		if e.Kind == Internal && dev && e.Err != nil {
			b.Error = e.Err.Error()
		}
	} else if dev && err != nil {
		b.Error = err.Error()
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(b)
}
