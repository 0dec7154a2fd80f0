package http

import (
	"strings"
	"time"

	"parcels/internal/core/domain/model/kernel"
	"parcels/internal/core/domain/services"
	"parcels/internal/core/ports"
	"parcels/internal/pkg/errs"
	"parcels/internal/pkg/logger"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

const (
	headerRequestID = echo.HeaderXRequestID
	callerKey       = "caller"
)

// RequestContext puts a request id and a request-scoped logger into the request context.
// An incoming X-Request-ID is reused.
func RequestContext(base *logger.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()

			ctx := logger.NewRequestIDContext(req.Context(), req.Header.Get(headerRequestID))
			requestID, _ := logger.GetRequestID(ctx)
			ctx = logger.NewContext(ctx, base)

			c.SetRequest(req.WithContext(ctx))
			c.Response().Header().Set(headerRequestID, requestID)

			return next(c)
		}
	}
}

// RequestLogger logs one line per request after the error handler has set the status.
func RequestLogger() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			err := next(c)
			if err != nil {
				c.Error(err)
			}

			ctx := c.Request().Context()
			logger.Log(ctx).Info(ctx, "request completed",
				zap.String("method", c.Request().Method),
				zap.String("path", c.Path()),
				zap.Int("status", c.Response().Status),
				zap.Duration("latency", time.Since(start)),
				zap.String("ip", c.RealIP()),
			)

			return nil
		}
	}
}

// Authenticate rejects requests without a valid bearer token with 401. It runs
// before any permission check or body validation.
func Authenticate(tokens ports.TokenValidator) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)

			scheme, token, found := strings.Cut(header, " ")
			if !found || !strings.EqualFold(scheme, "Bearer") || strings.TrimSpace(token) == "" {
				return errs.ErrUnauthorized
			}

			claims, err := tokens.Validate(strings.TrimSpace(token))
			if err != nil {
				ctx := c.Request().Context()
				logger.Log(ctx).Debug(ctx, "token rejected", zap.Error(err))
				return errs.ErrUnauthorized
			}

			c.Set(callerKey, claims.Caller())
			return next(c)
		}
	}
}

// Permit is the route-level gate: it answers 403 before the body is validated. Use
// cases repeat the fine-grained check once the target resource is known.
func Permit(policy services.AccessPolicy, op services.Operation) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			caller, err := callerFrom(c)
			if err != nil {
				return err
			}

			if err = policy.Authorize(caller, op); err != nil {
				return err
			}
			return next(c)
		}
	}
}

func callerFrom(c echo.Context) (kernel.Caller, error) {
	caller, ok := c.Get(callerKey).(kernel.Caller)
	if !ok {
		return kernel.Caller{}, errs.ErrUnauthorized
	}
	return caller, nil
}
