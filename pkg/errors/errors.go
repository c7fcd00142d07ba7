package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// Error represents a typed domain error with HTTP awareness.
type Error struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Status  int    `json:"status"`
	Err     error  `json:"-"`
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the wrapped error.
func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// New creates a new Error instance.
func New(code string, status int, message string) *Error {
	return &Error{Code: code, Status: status, Message: message}
}

// Wrap attaches context to an existing error.
func Wrap(err error, code string, status int, message string) *Error {
	return &Error{Code: code, Status: status, Message: message, Err: err}
}

// Predefined errors for common scenarios. Messages are user facing and stay
// in Portuguese, matching the clients this API was built for.
var (
	ErrUnauthorized     = New("UNAUTHORIZED", http.StatusUnauthorized, "Chave de API inválida")
	ErrValidation       = New("VALIDATION_ERROR", http.StatusBadRequest, "Requisição inválida")
	ErrNotFound         = New("NOT_FOUND", http.StatusNotFound, "Não encontrado")
	ErrMethodNotAllowed = New("METHOD_NOT_ALLOWED", http.StatusMethodNotAllowed, "Método não permitido")
	ErrInternal         = New("INTERNAL_ERROR", http.StatusInternalServerError, "Erro interno")
	ErrCacheMiss        = New("CACHE_MISS", http.StatusInternalServerError, "cache miss")
)

// FromError normalises any error into an *Error.
func FromError(err error) *Error {
	if err == nil {
		return nil
	}
	var e *Error
	if errors.As(err, &e) {
		return e
	}
	return Wrap(err, ErrInternal.Code, ErrInternal.Status, ErrInternal.Message)
}

// Clone returns a copy of the error allowing for message overrides.
func Clone(err *Error, message string) *Error {
	if err == nil {
		return nil
	}
	clone := *err
	if message != "" {
		clone.Message = message
	}
	return &clone
}
