package http

import (
	"errors"
	"net/http"

	"foodorder/internal/core/domain/model/courier"
	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/core/domain/model/review"
	"foodorder/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// statusFor maps a use case error to its HTTP status. Specific domain errors
// are checked before the generic kinds they may wrap.
func statusFor(err error) int {
	switch {
	case errors.Is(err, courier.ErrNotOwner):
		return http.StatusForbidden
	case errors.Is(err, review.ErrNotEligible):
		return http.StatusBadRequest
	case errors.Is(err, order.ErrAlreadyClaimed),
		errors.Is(err, courier.ErrAlreadyActive),
		errors.Is(err, courier.ErrCourierUnavailable),
		errors.Is(err, review.ErrAlreadyReviewed),
		errors.Is(err, errs.ErrVersionIsInvalid):
		return http.StatusConflict
	case errors.Is(err, errs.ErrTransient):
		return http.StatusServiceUnavailable
	case errs.IsValidation(err):
		return http.StatusBadRequest
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, errs.ErrAccessDenied):
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}

func (s *Server) writeError(c echo.Context, err error) error {
	status := statusFor(err)
	message := err.Error()
	if status == http.StatusInternalServerError {
		s.log.Error("unhandled error",
			zap.String("method", c.Request().Method),
			zap.String("route", c.Path()),
			zap.Error(err),
		)
		message = http.StatusText(status)
	}
	return respond(c, status, message)
}

func respond(c echo.Context, status int, message string) error {
	return c.JSON(status, ErrorResponse{Code: status, Message: message})
}
