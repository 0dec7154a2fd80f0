package http

import (
	"errors"
	"net/http"

	"parcels/internal/pkg/errs"
	"parcels/internal/pkg/logger"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// Error types reported in ErrorResponse.Type.
const (
	TypeValidation       = "ValidationError"
	TypeBadRequest       = "BadRequest"
	TypeUniqueConstraint = "UniqueConstraintViolation"
	TypeMaxLength        = "MaxLengthExceeded"
	TypeReference        = "ReferenceViolation"
	TypeNotFound         = "NotFound"
	TypeForbidden        = "Forbidden"
	TypeUnauthorized     = "Unauthorized"
	TypeInternal         = "InternalServerError"
)

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	Type    string              `json:"type"`
	Message string              `json:"message,omitempty"`
	Errors  map[string][]string `json:"errors,omitempty"`
}

// toResponse classifies err. Anything unrecognised is a 500.
func toResponse(err error) (int, ErrorResponse) {
	var (
		validation *errs.ValidationError
		unique     *errs.UniqueConstraintViolationError
		maxLength  *errs.MaxLengthExceededError
		reference  *errs.ReferenceViolationError
		notFound   *errs.ObjectNotFoundError
		httpErr    *echo.HTTPError
	)

	switch {
	case errors.As(err, &validation):
		return http.StatusBadRequest, ErrorResponse{Type: TypeValidation, Errors: validation.Fields}
	case errors.As(err, &unique):
		resp := ErrorResponse{Type: TypeUniqueConstraint, Message: err.Error()}
		if unique.Field != "" {
			resp.Errors = map[string][]string{unique.Field: {unique.Field + " already exists"}}
		}
		return http.StatusBadRequest, resp
	case errors.As(err, &maxLength):
		return http.StatusBadRequest, ErrorResponse{Type: TypeMaxLength, Message: maxLength.Error()}
	case errors.As(err, &reference):
		return http.StatusBadRequest, ErrorResponse{Type: TypeReference, Message: "the entity is still referenced"}
	case errors.As(err, &notFound):
		return http.StatusNotFound, ErrorResponse{Type: TypeNotFound, Message: notFound.Error()}
	case errors.Is(err, errs.ErrUnauthorized):
		return http.StatusUnauthorized, ErrorResponse{Type: TypeUnauthorized}
	case errors.Is(err, errs.ErrForbidden):
		return http.StatusForbidden, ErrorResponse{Type: TypeForbidden, Message: err.Error()}
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return http.StatusBadRequest, ErrorResponse{Type: TypeValidation, Message: err.Error()}
	case errors.As(err, &httpErr):
		return httpErr.Code, ErrorResponse{Type: httpErrorType(httpErr.Code), Message: http.StatusText(httpErr.Code)}
	default:
		return http.StatusInternalServerError, ErrorResponse{Type: TypeInternal}
	}
}

func httpErrorType(code int) string {
	switch code {
	case http.StatusNotFound:
		return TypeNotFound
	case http.StatusUnauthorized:
		return TypeUnauthorized
	case http.StatusForbidden:
		return TypeForbidden
	case http.StatusInternalServerError:
		return TypeInternal
	default:
		return TypeBadRequest
	}
}

// ErrorHandler is the echo.HTTPErrorHandler. Only 5xx responses are logged at
// error level; the body never carries internal details.
func ErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	status, body := toResponse(err)

	ctx := c.Request().Context()
	if status >= http.StatusInternalServerError {
		logger.Log(ctx).Error(ctx, "request failed", zap.Error(err),
			zap.String("method", c.Request().Method),
			zap.String("path", c.Path()))
	}

	var writeErr error
	if c.Request().Method == http.MethodHead {
		writeErr = c.NoContent(status)
	} else {
		writeErr = c.JSON(status, body)
	}
	if writeErr != nil {
		logger.Log(ctx).Error(ctx, "failed to write error response", zap.Error(writeErr))
	}
}

// badRequest wraps a binding failure so the mapper reports it as a 400.
func badRequest(field, message string) error {
	return errs.NewFieldError(field, message)
}
