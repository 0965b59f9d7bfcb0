package serverutils

import "github.com/gofiber/fiber/v2"

// SuccessResponse is the standard envelope for plain HTTP endpoints
// (health and friends). MCP results use the JSON-RPC envelope instead.
func SuccessResponse(message string, data interface{}) fiber.Map {
	return fiber.Map{
		"success": true,
		"message": message,
		"data":    data,
	}
}

func ErrorResponse(message string) fiber.Map {
	return fiber.Map{
		"success": false,
		"message": message,
	}
}
