// Package apperror classifies failures so the HTTP layer can tell a bad
// request from a missing resource from a broken dependency.
package apperror

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
)

type Kind int

const (
	KindInternal Kind = iota
	KindClient
	KindNotFound
	KindDurableStore
	KindIdentifierExhausted
)

func (k Kind) String() string {
	switch k {
	case KindClient:
		return "client_error"
	case KindNotFound:
		return "not_found"
	case KindDurableStore:
		return "durable_store_error"
	case KindIdentifierExhausted:
		return "identifier_exhausted"
	default:
		return "internal_error"
	}
}

// StatusCode is the HTTP status reported for errors of this kind.
func (k Kind) StatusCode() int {
	switch k {
	case KindClient:
		return fiber.StatusBadRequest
	case KindNotFound:
		return fiber.StatusNotFound
	default:
		return fiber.StatusInternalServerError
	}
}

type Error struct {
	Kind    Kind
	Message string
	// Details is returned to the caller alongside Message (e.g. valid values).
	Details any
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Err
}

func Client(message string) *Error {
	return &Error{Kind: KindClient, Message: message}
}

func ClientWithDetails(message string, details any) *Error {
	return &Error{Kind: KindClient, Message: message, Details: details}
}

func NotFound(message string) *Error {
	return &Error{Kind: KindNotFound, Message: message}
}

func DurableStore(message string, err error) *Error {
	return &Error{Kind: KindDurableStore, Message: message, Err: err}
}

func IdentifierExhausted(message string, err error) *Error {
	return &Error{Kind: KindIdentifierExhausted, Message: message, Err: err}
}

func Internal(message string, err error) *Error {
	return &Error{Kind: KindInternal, Message: message, Err: err}
}

// KindOf returns the kind of the first *Error in err's chain,
// or KindInternal when there is none.
func KindOf(err error) Kind {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindInternal
}

func Is(err error, kind Kind) bool {
	var appErr *Error
	return errors.As(err, &appErr) && appErr.Kind == kind
}
