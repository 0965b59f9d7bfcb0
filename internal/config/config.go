package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	App   AppConfig
	Mcp   McpConfig
	Keys  APIKeys
	Voice VoiceConfig
}

type AppConfig struct {
	Port               string
	Environment        string
	LogFilePath        string
	CorsAllowedOrigins string
	WidgetDir          string
	ChatEventsTopic    string
}

type McpConfig struct {
	ServerName    string
	ServerVersion string
}

type APIKeys struct {
	Anthropic      string
	AnthropicModel string
	ElevenLabs     string
}

type VoiceConfig struct {
	NanaVoiceID  string
	BubbeVoiceID string
	GramsVoiceID string
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found, usage system environment")
	}

	return &Config{
		App: AppConfig{
			Port:               getEnv("APP_PORT", "3000"),
			Environment:        getEnv("GO_ENV", "development"),
			LogFilePath:        getEnv("LOG_FILE_PATH", "logs/app.log"),
			CorsAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "*"),
			WidgetDir:          getEnv("WIDGET_DIR", "./widget"),
			ChatEventsTopic:    getEnv("CHAT_EVENTS_TOPIC", "CHAT_INTERACTION"),
		},
		Mcp: McpConfig{
			ServerName:    getEnv("MCP_SERVER_NAME", "grams-chatgpt"),
			ServerVersion: getEnv("MCP_SERVER_VERSION", "1.0.0"),
		},
		Keys: APIKeys{
			// Absence is a valid, expected state: the server then runs in
			// template-only mode.
			Anthropic:      getEnv("ANTHROPIC_API_KEY", ""),
			AnthropicModel: getEnv("ANTHROPIC_MODEL", "claude-3-5-sonnet-20241022"),
			ElevenLabs:     getEnv("ELEVENLABS_API_KEY", ""),
		},
		Voice: VoiceConfig{
			NanaVoiceID:  getEnv("ELEVENLABS_VOICE_ID_NANA", ""),
			BubbeVoiceID: getEnv("ELEVENLABS_VOICE_ID_BUBBE", ""),
			GramsVoiceID: getEnv("ELEVENLABS_VOICE_ID_GRAMS", ""),
		},
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}
