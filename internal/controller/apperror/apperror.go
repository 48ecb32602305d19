// Package apperror maps domain errors to HTTP status codes.
package apperror

import (
	"errors"
	"net/http"

	"disputeresolver/internal/domain/auth"
	"disputeresolver/internal/domain/dispute"
)

// HTTPStatus resolves the response code for a domain error.
func HTTPStatus(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case errors.Is(err, dispute.ErrValidation), errors.Is(err, auth.ErrMalformedPhone):
		return http.StatusBadRequest
	case errors.Is(err, dispute.ErrAlreadyExists):
		return http.StatusConflict
	case errors.Is(err, dispute.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, auth.ErrInvalidCredentials), errors.Is(err, auth.ErrInvalidToken):
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}
