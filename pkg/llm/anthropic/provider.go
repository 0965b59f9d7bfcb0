package anthropic

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"grams-mcp-be/pkg/llm"
)

const (
	defaultEndpoint = "https://api.anthropic.com/v1/messages"
	apiVersion      = "2023-06-01"
	defaultModel    = "claude-3-5-sonnet-20241022"
	defaultMaxTok   = 1024
)

type messagesRequest struct {
	Model     string         `json:"model"`
	MaxTokens int            `json:"max_tokens"`
	System    string         `json:"system,omitempty"`
	Messages  []chatMessage  `json:"messages"`
	Metadata  map[string]any `json:"metadata,omitempty"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type contentBlock struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

type messagesResponse struct {
	Content []contentBlock `json:"content"`
	Error   *struct {
		Type    string `json:"type"`
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

// Provider implements llm.LLMProvider against the Anthropic Messages API.
type Provider struct {
	apiKey   string
	model    string
	endpoint string
	client   *http.Client
}

func NewProvider(apiKey, model string) *Provider {
	if model == "" {
		model = defaultModel
	}
	return &Provider{
		apiKey:   apiKey,
		model:    model,
		endpoint: defaultEndpoint,
		client:   &http.Client{Timeout: 60 * time.Second},
	}
}

func (p *Provider) Chat(ctx context.Context, history []llm.Message, options ...llm.Option) (string, error) {
	opts := &llm.Options{Model: p.model, MaxTokens: defaultMaxTok}
	for _, opt := range options {
		opt(opts)
	}
	if opts.Model == "" {
		opts.Model = p.model
	}
	if opts.MaxTokens == 0 {
		opts.MaxTokens = defaultMaxTok
	}

	messages := make([]chatMessage, 0, len(history))
	system := opts.System
	for _, msg := range history {
		// The Messages API takes the system prompt as a top-level field, not
		// as a conversation turn.
		if msg.Role == "system" {
			if system == "" {
				system = msg.Content
			}
			continue
		}
		messages = append(messages, chatMessage{Role: msg.Role, Content: msg.Content})
	}

	payload := messagesRequest{
		Model:     opts.Model,
		MaxTokens: opts.MaxTokens,
		System:    system,
		Messages:  messages,
	}
	payloadJson, err := json.Marshal(payload)
	if err != nil {
		return "", &llm.ServiceError{Provider: "anthropic", Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.endpoint, bytes.NewBuffer(payloadJson))
	if err != nil {
		return "", &llm.ServiceError{Provider: "anthropic", Err: err}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-api-key", p.apiKey)
	req.Header.Set("anthropic-version", apiVersion)

	resp, err := p.client.Do(req)
	if err != nil {
		return "", &llm.ServiceError{Provider: "anthropic", Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &llm.ServiceError{Provider: "anthropic", Err: err}
	}

	var parsed messagesResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return "", &llm.ServiceError{Provider: "anthropic", Err: fmt.Errorf("decode response: %w", err)}
	}

	if resp.StatusCode != http.StatusOK {
		msg := string(body)
		if parsed.Error != nil {
			msg = parsed.Error.Message
		}
		return "", &llm.ServiceError{Provider: "anthropic", Err: fmt.Errorf("status %d: %s", resp.StatusCode, msg)}
	}

	for _, block := range parsed.Content {
		if block.Type == "text" {
			return block.Text, nil
		}
	}
	return "", &llm.ServiceError{Provider: "anthropic", Err: fmt.Errorf("no text content in response")}
}

func (p *Provider) Generate(ctx context.Context, prompt string, options ...llm.Option) (string, error) {
	return p.Chat(ctx, []llm.Message{{Role: "user", Content: prompt}}, options...)
}
