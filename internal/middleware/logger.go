package middleware

import (
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

// Logger attaches a request-scoped zerolog logger to the request context so
// repositories can log through log.Ctx with the same request_id.
func Logger(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()
		requestID := uuid.New().String()

		logger := log.With().Str("request_id", requestID).Logger()
		req := c.Request()
		c.SetRequest(req.WithContext(logger.WithContext(req.Context())))
		c.Response().Header().Set(echo.HeaderXRequestID, requestID)

		err := next(c)
		if err != nil {
			// let echo write the error so the logged status is the real one
			c.Error(err)
		}

		status := c.Response().Status
		event := logger.Info()
		switch {
		case status >= 500:
			event = logger.Error()
		case status >= 400:
			event = logger.Warn()
		}

		event.
			Str("method", req.Method).
			Str("endpoint", req.URL.Path).
			Int("status", status).
			Int64("latency", time.Since(start).Milliseconds()).
			Msg("Request processed")

		return nil
	}
}
