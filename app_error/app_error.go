package app_error

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
)

type statusError struct {
	error
	status int
}

func (e statusError) Unwrap() error {
	return e.error
}

func (e statusError) HTTPStatus() int {
	return e.status
}

// ValidationError marks malformed input that never reaches the store.
type ValidationError struct {
	statusError
}

// NotFoundError marks a referenced tournament, player or identity that does not exist.
type NotFoundError struct {
	statusError
	Entity string
	Key    any
}

// AuthorizationError is only raised by the transport layer.
type AuthorizationError struct {
	statusError
}

func Validation(format string, args ...any) error {
	return &ValidationError{statusError{fmt.Errorf(format, args...), http.StatusBadRequest}}
}

func NotFound(entity string, key any) error {
	return &NotFoundError{
		statusError: statusError{fmt.Errorf("%s %v not found", entity, key), http.StatusNotFound},
		Entity:      entity,
		Key:         key,
	}
}

func Unauthorized(format string, args ...any) error {
	return &AuthorizationError{statusError{fmt.Errorf(format, args...), http.StatusForbidden}}
}

func IsValidation(err error) bool {
	var target *ValidationError
	return errors.As(err, &target)
}

func IsNotFound(err error) bool {
	var target *NotFoundError
	return errors.As(err, &target)
}

func IsUnauthorized(err error) bool {
	var target *AuthorizationError
	return errors.As(err, &target)
}

// Status maps business errors to their HTTP status; anything else is an infrastructure failure.
func Status(err error) int {
	var withStatus interface{ HTTPStatus() int }
	if errors.As(err, &withStatus) {
		return withStatus.HTTPStatus()
	}
	return http.StatusInternalServerError
}

func WithHTTPStatus(c *gin.Context, err error) {
	c.JSON(Status(err), gin.H{"error": err.Error()})
}
