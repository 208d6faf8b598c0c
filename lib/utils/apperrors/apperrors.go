// Package apperrors classifies business errors so controllers can map them
// to HTTP statuses without inspecting message text. Resources outside the
// caller's tenant are reported as not-found on purpose: a 403 would confirm
// the resource exists in another company.
package apperrors

import (
	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"
)

var (
	ErrValidation    = errors.New("validation failed")
	ErrNotAuthorized = errors.New("not authorized")
	ErrNotFound      = errors.New("not found")
	ErrConflict      = errors.New("conflict")
)

func Validation(message string) error {
	return errors.Wrap(ErrValidation, message)
}

func NotAuthorized(message string) error {
	return errors.Wrap(ErrNotAuthorized, message)
}

func NotFound(message string) error {
	return errors.Wrap(ErrNotFound, message)
}

func Conflict(message string) error {
	return errors.Wrap(ErrConflict, message)
}

// StatusOf maps a classified error to an HTTP status. Unclassified errors
// surface as internal failures.
func StatusOf(err error) int {
	switch {
	case errors.Is(err, ErrValidation):
		return fiber.StatusBadRequest
	case errors.Is(err, ErrNotAuthorized):
		return fiber.StatusForbidden
	case errors.Is(err, ErrNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, ErrConflict):
		return fiber.StatusConflict
	default:
		return fiber.StatusInternalServerError
	}
}

// Message strips the sentinel suffix that Wrap appends, leaving the
// human-readable part for API responses.
func Message(err error) string {
	for _, sentinel := range []error{ErrValidation, ErrNotAuthorized, ErrNotFound, ErrConflict} {
		if errors.Is(err, sentinel) {
			msg := err.Error()
			suffix := ": " + sentinel.Error()
			if len(msg) > len(suffix) && msg[len(msg)-len(suffix):] == suffix {
				return msg[:len(msg)-len(suffix)]
			}
			return msg
		}
	}
	return err.Error()
}
