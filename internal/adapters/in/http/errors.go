package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/RodrigoFK06/rapiditos/internal/core/ports"
	"github.com/RodrigoFK06/rapiditos/internal/pkg/errs"
)

// ErrorResponse is the uniform error body of the API.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// writeError maps the error taxonomy to HTTP statuses. Domain errors are
// deterministic and carry their own message; transaction contention is the
// one transient case and answers 503 so callers know to retry.
func writeError(c echo.Context, err error) error {
	status := http.StatusInternalServerError

	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		status = http.StatusNotFound
	case errors.Is(err, errs.ErrOperationForbidden):
		status = http.StatusForbidden
	case errors.Is(err, errs.ErrStateIsInvalid):
		status = http.StatusConflict
	case errors.Is(err, errs.ErrDataIsMissing):
		status = http.StatusUnprocessableEntity
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		status = http.StatusBadRequest
	case errors.Is(err, ports.ErrTransactionContention):
		status = http.StatusServiceUnavailable
	}

	return c.JSON(status, ErrorResponse{
		Code:    status,
		Message: err.Error(),
	})
}
