package commands

import (
	"errors"
	"net/http"

	"fulfillment/internal/pkg/errs"
)

// Result is the uniform exit shape of every command. Handlers return plain
// errors; the HTTP adapter converts them through ResultFromError and only
// encodes the outcome, never classifies it.
type Result struct {
	Success    bool   `json:"success"`
	Message    string `json:"message"`
	StatusCode int    `json:"-"`
}

// OkResult builds a successful result for an applied command.
func OkResult(message string) Result {
	return Result{Success: true, Message: message, StatusCode: http.StatusOK}
}

// CreatedResult builds a successful result for a command that created a
// resource.
func CreatedResult(message string) Result {
	return Result{Success: true, Message: message, StatusCode: http.StatusCreated}
}

// ResultFromError classifies an error against the errs taxonomy and maps it
// to a failure result: not-found 404, conflict 409, invalid state or
// validation 400, anything else 500. Internal failures never leak their
// message to the caller.
func ResultFromError(err error) Result {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return Result{Message: err.Error(), StatusCode: http.StatusNotFound}
	case errors.Is(err, errs.ErrConflict):
		return Result{Message: err.Error(), StatusCode: http.StatusConflict}
	case errors.Is(err, errs.ErrInvalidState),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange),
		errors.Is(err, errs.ErrValueIsRequired):
		return Result{Message: err.Error(), StatusCode: http.StatusBadRequest}
	default:
		return Result{Message: "internal server error", StatusCode: http.StatusInternalServerError}
	}
}
