package apperrors

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
)

// Kind classifies an operation failure. Controllers map kinds to HTTP
// status codes; services and codecs only ever deal in kinds.
type Kind string

const (
	KindNotFound      Kind = "not_found"
	KindInvalidInput  Kind = "invalid_input"
	KindConflict      Kind = "conflict"
	KindInvalidFormat Kind = "invalid_format"
	KindGeocoding     Kind = "geocoding_error"
	KindRouting       Kind = "routing_error"
	KindStorage       Kind = "storage_error"
)

// Error is a classified failure with a human-readable message.
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

func (e *Error) Unwrap() error {
	return e.Err
}

func newf(kind Kind, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

func NotFound(format string, args ...interface{}) *Error {
	return newf(KindNotFound, format, args...)
}

func InvalidInput(format string, args ...interface{}) *Error {
	return newf(KindInvalidInput, format, args...)
}

func Conflict(format string, args ...interface{}) *Error {
	return newf(KindConflict, format, args...)
}

func InvalidFormat(format string, args ...interface{}) *Error {
	return newf(KindInvalidFormat, format, args...)
}

func Geocoding(message string, err error) *Error {
	return &Error{Kind: KindGeocoding, Message: message, Err: err}
}

func Routing(message string, err error) *Error {
	return &Error{Kind: KindRouting, Message: message, Err: err}
}

func Storage(message string, err error) *Error {
	return &Error{Kind: KindStorage, Message: message, Err: err}
}

// KindOf extracts the classification of err, defaulting to storage for
// anything unclassified that reached the boundary.
func KindOf(err error) Kind {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindStorage
}

// HTTPStatus maps a classified error onto a status code. This is the only
// place the taxonomy meets the transport.
func HTTPStatus(err error) int {
	switch KindOf(err) {
	case KindNotFound:
		return fiber.StatusNotFound
	case KindInvalidInput:
		return fiber.StatusBadRequest
	case KindInvalidFormat:
		return fiber.StatusUnprocessableEntity
	case KindConflict:
		return fiber.StatusConflict
	case KindGeocoding, KindRouting:
		return fiber.StatusBadGateway
	default:
		return fiber.StatusInternalServerError
	}
}
