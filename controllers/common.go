package controllers

import (
	"errors"

	"github.com/creativeyMedia/fwkantine/apperr"
	"github.com/creativeyMedia/fwkantine/pkg/resp"
	"github.com/gin-gonic/gin"
)

// writeError maps the service error taxonomy onto HTTP statuses.
// Idempotency guards come back as 409 with their own message so a
// client can tell "nothing to do" from "broken".
func writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, apperr.ErrValidation):
		resp.BadRequest(c, err.Error())
	case errors.Is(err, apperr.ErrNotFound):
		resp.NotFound(c, err.Error())
	case errors.Is(err, apperr.ErrAlreadyCancelled),
		errors.Is(err, apperr.ErrAlreadySponsored),
		errors.Is(err, apperr.ErrConflict):
		resp.Conflict(c, err.Error())
	default:
		resp.ServerError(c, err)
	}
}

const conflictRetries = 3

// withRetry re-runs an operation that lost an optimistic-concurrency
// race. Anything other than ErrConflict passes through untouched.
func withRetry(op func() error) error {
	var err error
	for i := 0; i < conflictRetries; i++ {
		err = op()
		if !errors.Is(err, apperr.ErrConflict) {
			return err
		}
	}
	return err
}
