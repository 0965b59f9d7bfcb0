package serverutils

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"grams-mcp-be/internal/pkg/logger"
)

const wireBodyLimit = 4000

// WireLoggerMiddleware logs request and response summaries for the MCP
// endpoint, truncating bodies so a streaming reply cannot flood the log.
func WireLoggerMiddleware(log logger.ILogger) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		start := time.Now()

		log.Info("mcp_wire", "request", map[string]interface{}{
			"method": ctx.Method(),
			"path":   ctx.OriginalURL(),
			"body":   truncate(ctx.Body()),
		})

		err := ctx.Next()

		log.Info("mcp_wire", "response", map[string]interface{}{
			"method":      ctx.Method(),
			"path":        ctx.OriginalURL(),
			"status":      ctx.Response().StatusCode(),
			"duration_ms": time.Since(start).Milliseconds(),
			"body":        truncate(ctx.Response().Body()),
		})

		return err
	}
}

func truncate(body []byte) string {
	if len(body) > wireBodyLimit {
		return string(body[:wireBodyLimit]) + "...(truncated)"
	}
	return string(body)
}
