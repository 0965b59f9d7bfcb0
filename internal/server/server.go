package server

import (
	"log"
	"time"

	"grams-mcp-be/internal/bootstrap"
	"grams-mcp-be/internal/config"
	"grams-mcp-be/internal/pkg/serverutils"

	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

// openaiAppsChallenge answers the OpenAI domain verification probe.
const openaiAppsChallenge = "5pdRJeLm1mFKd4MY2eUsgIFeotq-uBR341nDDMhJ6iM"

type Server struct {
	app       *fiber.App
	cfg       *config.Config
	container *bootstrap.Container
}

func New(cfg *config.Config, container *bootstrap.Container) *Server {
	app := fiber.New(fiber.Config{
		BodyLimit: 1 * 1024 * 1024, // 1MB, tool calls are small
	})

	// Middleware
	app.Use(cors.New(cors.Config{
		AllowOrigins:  cfg.App.CorsAllowedOrigins,
		AllowHeaders:  "Origin, Content-Type, Accept, Authorization, MCP-Protocol-Version",
		AllowMethods:  "GET, POST, OPTIONS",
		ExposeHeaders: "Content-Length, Content-Type",
	}))

	// OpenTelemetry tracing middleware (traces all HTTP requests)
	app.Use(otelfiber.Middleware())

	app.Use(serverutils.ErrorHandlerMiddleware())
	app.Use("/mcp", serverutils.WireLoggerMiddleware(container.Logger))

	registerRoutes(app, cfg, container)

	return &Server{
		app:       app,
		cfg:       cfg,
		container: container,
	}
}

func (s *Server) GetApp() *fiber.App {
	return s.app
}

func (s *Server) Run() error {
	log.Printf("✅ Grams MCP server is running on http://localhost:%s", s.cfg.App.Port)
	log.Printf("   MCP endpoint:  http://localhost:%s/mcp", s.cfg.App.Port)
	log.Printf("   Health check:  http://localhost:%s/health", s.cfg.App.Port)
	return s.app.Listen(":" + s.cfg.App.Port)
}

func (s *Server) Shutdown() error {
	return s.app.Shutdown()
}

func registerRoutes(app *fiber.App, cfg *config.Config, c *bootstrap.Container) {
	app.Get("/health", func(ctx *fiber.Ctx) error {
		return ctx.JSON(fiber.Map{
			"status":    "healthy",
			"server":    cfg.Mcp.ServerName,
			"version":   cfg.Mcp.ServerVersion,
			"sessions":  c.ChatService.SessionCount(),
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		})
	})

	app.Get("/.well-known/openai-apps-challenge", func(ctx *fiber.Ctx) error {
		ctx.Set(fiber.HeaderContentType, fiber.MIMETextPlain)
		return ctx.SendString(openaiAppsChallenge)
	})

	c.McpController.RegisterRoutes(app)
}
