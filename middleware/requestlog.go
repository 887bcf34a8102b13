package middleware

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"shiori-planner/logger"
	"shiori-planner/types"
)

// RequestLogger queues one log entry per request onto the async logger
// after the handler chain completes. Persistence happens off the request
// path; a slow database never delays a response.
func RequestLogger(asyncLogger *logger.AsyncLogger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		asyncLogger.Log(types.LogEntry{
			Method:     c.Method(),
			Path:       c.Path(),
			StatusCode: c.Response().StatusCode(),
			LatencyMs:  time.Since(start).Milliseconds(),
			ClientIP:   c.IP(),
			CreatedAt:  time.Now(),
		})

		return err
	}
}
