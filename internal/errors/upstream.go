package errors

import (
	"context"
	"errors"
	"net/http"
)

// statusCoder is implemented by transport errors that carry an HTTP status,
// such as the inventory API client's APIError.
type statusCoder interface {
	HTTPStatus() int
}

// MapUpstreamError maps errors returned by the inventory API client to AppError instances.
// It handles:
// - context deadline/cancellation → Timeout/Canceled
// - 401 → Unauthorized, 403 → Forbidden, 404 → NotFound, 400/422 → Validation
// - any other status or transport failure → Unavailable
//
// AppErrors pass through unchanged.
func MapUpstreamError(err error) error {
	if err == nil {
		return nil
	}

	var appErr *AppError
	if errors.As(err, &appErr) {
		return err
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return &AppError{
			Code:    ErrCodeTimeout,
			Message: "Request timed out. Please try again.",
			Cause:   err,
		}
	}
	if errors.Is(err, context.Canceled) {
		return &AppError{
			Code:    ErrCodeCanceled,
			Message: "Request was canceled.",
			Cause:   err,
		}
	}

	var sc statusCoder
	if errors.As(err, &sc) {
		return mapStatus(sc.HTTPStatus(), err)
	}

	return &AppError{
		Code:    ErrCodeUnavailable,
		Message: "The inventory service is unavailable.",
		Cause:   err,
	}
}

func mapStatus(status int, cause error) error {
	code := ErrCodeUnavailable
	message := "The inventory service returned an error."

	switch status {
	case http.StatusUnauthorized:
		code, message = ErrCodeUnauthorized, "Your session is no longer valid."
	case http.StatusForbidden:
		code, message = ErrCodeForbidden, "You do not have permission to do that."
	case http.StatusNotFound:
		code, message = ErrCodeNotFound, "Resource not found"
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		code, message = ErrCodeValidation, "The inventory service rejected the request."
	}

	return &AppError{Code: code, Message: message, Cause: cause}
}
