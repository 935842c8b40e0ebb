package middlewares

import (
	"time"

	"youtube_stats_dashboard/pkg/logger"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	// HeaderRequestID request id header, echoed back on the response
	HeaderRequestID = "X-Request-ID"

	// LocalsRequestID c.Locals key holding the request id
	LocalsRequestID = "requestID"
)

// RequestLogger assigns a request id and logs every request through logger.Log
// status >= 500 logs at error, >= 400 at warn, the rest at info
func RequestLogger() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()

		requestID := c.Get(HeaderRequestID)
		if requestID == "" {
			requestID = uuid.NewString()
		}
		c.Locals(LocalsRequestID, requestID)
		c.Set(HeaderRequestID, requestID)

		err := c.Next()
		if err != nil {
			// run the app error handler now so the logged status is the one sent
			if handlerErr := c.App().ErrorHandler(c, err); handlerErr != nil {
				_ = c.SendStatus(fiber.StatusInternalServerError)
			}
		}

		status := c.Response().StatusCode()
		fields := []zap.Field{
			zap.String("request_id", requestID),
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
			zap.Int("status", status),
			zap.Duration("duration", time.Since(start)),
			zap.Int("bytes_sent", len(c.Response().Body())),
		}

		switch {
		case status >= fiber.StatusInternalServerError:
			logger.Log.Error("request", fields...)
		case status >= fiber.StatusBadRequest:
			logger.Log.Warn("request", fields...)
		default:
			logger.Log.Info("request", fields...)
		}
		return nil
	}
}

// RequestID returns the id assigned by RequestLogger
func RequestID(c *fiber.Ctx) string {
	id, _ := c.Locals(LocalsRequestID).(string)
	return id
}
