package bootstrap

import (
	"log"
	"math/rand"
	"time"

	"grams-mcp-be/internal/config"
	"grams-mcp-be/internal/controller"
	"grams-mcp-be/internal/mcp"
	"grams-mcp-be/internal/pkg/logger"
	"grams-mcp-be/internal/repository/memory"
	"grams-mcp-be/internal/resource"
	"grams-mcp-be/internal/service"
	"grams-mcp-be/pkg/llm"
	"grams-mcp-be/pkg/llm/anthropic"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

type Container struct {
	// Controllers
	McpController controller.IMcpController

	// Services exposed to the server layer
	ChatService  service.IChatService
	VoiceService service.IVoiceService

	// Background Services (Exposed for main.go to run)
	ConsumerService service.IConsumerService

	Logger logger.ILogger
}

func NewContainer(cfg *config.Config) *Container {
	// 1. Core Facades
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	// 2. Event Bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// 3. Reply capability: real provider when a key is configured,
	// template-only mode otherwise.
	var llmProvider llm.LLMProvider
	if cfg.Keys.Anthropic != "" {
		llmProvider = anthropic.NewProvider(cfg.Keys.Anthropic, cfg.Keys.AnthropicModel)
		log.Printf("[INFO] Using LLM Provider: ANTHROPIC (%s)", cfg.Keys.AnthropicModel)
	} else {
		log.Printf("[INFO] No Anthropic API key found, using template responses")
	}

	// 4. In-Memory Session Storage
	sessionRepo := memory.NewSessionRepository()

	// 5. Services
	publisherService := service.NewPublisherService(cfg.App.ChatEventsTopic, pubSub)

	eventLogger := logger.NewIsolatedLogger("logs/chat_events.log")
	consumerService := service.NewConsumerService(pubSub, cfg.App.ChatEventsTopic, eventLogger)

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	chatService := service.NewChatService(sessionRepo, llmProvider, publisherService, sysLogger, rng)

	voiceService := service.NewVoiceService(cfg.Keys.ElevenLabs, cfg.Voice, sysLogger)

	// 6. Tool boundary
	widgetResource := resource.NewWidgetResource(cfg.App.WidgetDir, sysLogger)
	dispatcher := mcp.NewDispatcher(
		chatService,
		widgetResource,
		cfg.Mcp.ServerName,
		cfg.Mcp.ServerVersion,
		sysLogger,
	)

	return &Container{
		McpController:   controller.NewMcpController(dispatcher),
		ChatService:     chatService,
		VoiceService:    voiceService,
		ConsumerService: consumerService,
		Logger:          sysLogger,
	}
}
