package controller

import (
	"github.com/gofiber/fiber/v2"

	"grams-mcp-be/internal/mcp"
)

type IMcpController interface {
	RegisterRoutes(r fiber.Router)
	Handle(ctx *fiber.Ctx) error
}

type mcpController struct {
	dispatcher *mcp.Dispatcher
}

func NewMcpController(dispatcher *mcp.Dispatcher) IMcpController {
	return &mcpController{
		dispatcher: dispatcher,
	}
}

func (c *mcpController) RegisterRoutes(r fiber.Router) {
	// ChatGPT's client probes with both verbs.
	r.Get("/mcp", c.Handle)
	r.Post("/mcp", c.Handle)
}

func (c *mcpController) Handle(ctx *fiber.Ctx) error {
	if ctx.Method() == fiber.MethodGet {
		// Stateless mode: no server-initiated stream to attach to.
		return ctx.Status(fiber.StatusMethodNotAllowed).JSON(fiber.Map{
			"jsonrpc": mcp.JSONRPCVersion,
			"id":      nil,
			"error": fiber.Map{
				"code":    mcp.CodeInvalidRequest,
				"message": "Method not allowed: use POST for JSON-RPC messages",
			},
		})
	}

	resp := c.dispatcher.Handle(ctx.Context(), ctx.Body())
	if resp == nil {
		// Notification: acknowledged without a body.
		return ctx.SendStatus(fiber.StatusAccepted)
	}

	return ctx.JSON(resp)
}
