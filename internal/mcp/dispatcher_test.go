package mcp

import (
	"context"
	"encoding/json"
	"math/rand"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"grams-mcp-be/internal/repository/memory"
	"grams-mcp-be/internal/resource"
	"grams-mcp-be/internal/service"
)

type nopLogger struct{}

func (nopLogger) Debug(string, string, map[string]interface{}) {}
func (nopLogger) Info(string, string, map[string]interface{})  {}
func (nopLogger) Warn(string, string, map[string]interface{})  {}
func (nopLogger) Error(string, string, map[string]interface{}) {}
func (nopLogger) Sync() error                                  { return nil }

func writeWidgetDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	files := map[string]string{
		"index.html": "<html><head><!-- CSS_PLACEHOLDER --></head><body><!-- JS_PLACEHOLDER --></body></html>",
		"styles.css": "body { color: pink; }",
		"script.js":  "console.log('grams');",
	}
	for name, content := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	return dir
}

func newTestDispatcher(t *testing.T, widgetDir string) (*Dispatcher, service.IChatService) {
	t.Helper()
	repo := memory.NewSessionRepository()
	chatService := service.NewChatService(repo, nil, nil, nopLogger{}, rand.New(rand.NewSource(1)))
	widget := resource.NewWidgetResource(widgetDir, nopLogger{})
	return NewDispatcher(chatService, widget, "grams-chatgpt", "1.0.0", nopLogger{}), chatService
}

func handle(t *testing.T, d *Dispatcher, body string) *Response {
	t.Helper()
	return d.Handle(context.Background(), []byte(body))
}

func TestHandleInitialize(t *testing.T) {
	d, _ := newTestDispatcher(t, "widget")

	resp := handle(t, d, `{"jsonrpc":"2.0","id":1,"method":"initialize","params":{}}`)
	require.NotNil(t, resp)
	require.Nil(t, resp.Error)

	result, ok := resp.Result.(InitializeResult)
	require.True(t, ok)
	assert.Equal(t, "2024-11-05", result.ProtocolVersion)
	assert.Equal(t, "grams-chatgpt", result.ServerInfo.Name)
	assert.Contains(t, result.Capabilities, "tools")
	assert.Contains(t, result.Capabilities, "resources")
}

func TestHandlePing(t *testing.T) {
	d, _ := newTestDispatcher(t, "widget")

	resp := handle(t, d, `{"jsonrpc":"2.0","id":"p1","method":"ping"}`)
	require.NotNil(t, resp)
	assert.Nil(t, resp.Error)
	assert.Equal(t, json.RawMessage(`"p1"`), resp.ID)
}

func TestHandleNotificationYieldsNoResponse(t *testing.T) {
	d, _ := newTestDispatcher(t, "widget")

	resp := handle(t, d, `{"jsonrpc":"2.0","method":"notifications/initialized"}`)
	assert.Nil(t, resp)
}

func TestHandleParseError(t *testing.T) {
	d, _ := newTestDispatcher(t, "widget")

	resp := handle(t, d, `{not json`)
	require.NotNil(t, resp)
	require.NotNil(t, resp.Error)
	assert.Equal(t, CodeParseError, resp.Error.Code)
}

func TestHandleUnknownMethod(t *testing.T) {
	d, _ := newTestDispatcher(t, "widget")

	resp := handle(t, d, `{"jsonrpc":"2.0","id":2,"method":"prompts/list"}`)
	require.NotNil(t, resp)
	require.NotNil(t, resp.Error)
	assert.Equal(t, CodeMethodNotFound, resp.Error.Code)
	assert.Contains(t, resp.Error.Message, "prompts/list")
}

func TestHandleToolsList(t *testing.T) {
	d, _ := newTestDispatcher(t, "widget")

	resp := handle(t, d, `{"jsonrpc":"2.0","id":3,"method":"tools/list"}`)
	require.NotNil(t, resp)
	require.Nil(t, resp.Error)

	result, ok := resp.Result.(ListToolsResult)
	require.True(t, ok)
	require.Len(t, result.Tools, 2)
	assert.Equal(t, ToolChatWithGrams, result.Tools[0].Name)
	assert.Equal(t, ToolSwitchGrandma, result.Tools[1].Name)
	for _, tool := range result.Tools {
		assert.NotEmpty(t, tool.Description)
		assert.Equal(t, "object", tool.InputSchema["type"])
	}
}

func TestCallChatWithGrams(t *testing.T) {
	d, _ := newTestDispatcher(t, "widget")

	resp := handle(t, d, `{"jsonrpc":"2.0","id":4,"method":"tools/call",
		"params":{"name":"chat_with_grams","arguments":{"message":"Hi there"}}}`)
	require.NotNil(t, resp)
	require.Nil(t, resp.Error)

	result, ok := resp.Result.(CallToolResult)
	require.True(t, ok)
	require.Len(t, result.Content, 1)
	assert.Equal(t, "text", result.Content[0].Type)
	assert.NotEmpty(t, result.Content[0].Text)

	require.NotNil(t, result.Meta)
	require.NotNil(t, result.Meta.UI)
	assert.Equal(t, "sweet-nana", result.Meta.UI.PersonalityID)
	assert.Equal(t, result.Content[0].Text, result.Meta.UI.Message)
}

func TestCallChatWithGramsMissingMessage(t *testing.T) {
	d, chatService := newTestDispatcher(t, "widget")

	resp := handle(t, d, `{"jsonrpc":"2.0","id":5,"method":"tools/call",
		"params":{"name":"chat_with_grams","arguments":{}}}`)
	require.NotNil(t, resp)
	require.NotNil(t, resp.Error)
	assert.Equal(t, CodeInvalidParams, resp.Error.Code)

	// A rejected call must not have touched session state.
	assert.Equal(t, 0, chatService.SessionCount())
}

func TestCallChatWithGramsWrongArgumentType(t *testing.T) {
	d, _ := newTestDispatcher(t, "widget")

	resp := handle(t, d, `{"jsonrpc":"2.0","id":6,"method":"tools/call",
		"params":{"name":"chat_with_grams","arguments":{"message":42}}}`)
	require.NotNil(t, resp)
	require.NotNil(t, resp.Error)
	assert.Equal(t, CodeInvalidParams, resp.Error.Code)
}

func TestCallSwitchGrandma(t *testing.T) {
	d, _ := newTestDispatcher(t, "widget")

	resp := handle(t, d, `{"jsonrpc":"2.0","id":7,"method":"tools/call",
		"params":{"name":"switch_grandma","arguments":{"personality":"cool-grams"}}}`)
	require.NotNil(t, resp)
	require.Nil(t, resp.Error)

	result, ok := resp.Result.(CallToolResult)
	require.True(t, ok)
	assert.Equal(t, "Hey kiddo! Cool Grams reporting for duty! What's up?", result.Content[0].Text)
	require.NotNil(t, result.Meta.UI)
	assert.Equal(t, "cool-grams", result.Meta.UI.PersonalityID)
	assert.True(t, result.Meta.UI.SwitchedTo)
}

func TestCallSwitchGrandmaRejectsUnknownPersonality(t *testing.T) {
	d, chatService := newTestDispatcher(t, "widget")

	resp := handle(t, d, `{"jsonrpc":"2.0","id":8,"method":"tools/call",
		"params":{"name":"switch_grandma","arguments":{"personality":"evil-twin"}}}`)
	require.NotNil(t, resp)
	require.NotNil(t, resp.Error)
	assert.Equal(t, CodeInvalidParams, resp.Error.Code)
	assert.Equal(t, 0, chatService.SessionCount())
}

func TestCallUnknownTool(t *testing.T) {
	d, _ := newTestDispatcher(t, "widget")

	resp := handle(t, d, `{"jsonrpc":"2.0","id":9,"method":"tools/call",
		"params":{"name":"bake_cookies","arguments":{}}}`)
	require.NotNil(t, resp)
	require.NotNil(t, resp.Error)
	assert.Equal(t, CodeInvalidParams, resp.Error.Code)
	assert.Contains(t, resp.Error.Message, "bake_cookies")
}

func TestSessionIDRoutingFromMeta(t *testing.T) {
	d, chatService := newTestDispatcher(t, "widget")

	handle(t, d, `{"jsonrpc":"2.0","id":10,"method":"tools/call",
		"params":{"name":"chat_with_grams","arguments":{"message":"Hi"},"_meta":{"sessionId":"alpha"}}}`)
	handle(t, d, `{"jsonrpc":"2.0","id":11,"method":"tools/call",
		"params":{"name":"chat_with_grams","arguments":{"message":"Hi"},"_meta":{"sessionId":"beta"}}}`)
	// No _meta lands on the shared default session.
	handle(t, d, `{"jsonrpc":"2.0","id":12,"method":"tools/call",
		"params":{"name":"chat_with_grams","arguments":{"message":"Hi"}}}`)

	assert.Equal(t, 3, chatService.SessionCount())
}

func TestResourcesList(t *testing.T) {
	d, _ := newTestDispatcher(t, "widget")

	resp := handle(t, d, `{"jsonrpc":"2.0","id":13,"method":"resources/list"}`)
	require.NotNil(t, resp)
	require.Nil(t, resp.Error)

	result, ok := resp.Result.(ListResourcesResult)
	require.True(t, ok)
	require.Len(t, result.Resources, 1)
	assert.Equal(t, resource.WidgetURI, result.Resources[0].URI)
	assert.Equal(t, "text/html", result.Resources[0].MimeType)
}

func TestResourcesReadBundlesWidget(t *testing.T) {
	d, _ := newTestDispatcher(t, writeWidgetDir(t))

	resp := handle(t, d, `{"jsonrpc":"2.0","id":14,"method":"resources/read",
		"params":{"uri":"grams://widget"}}`)
	require.NotNil(t, resp)
	require.Nil(t, resp.Error)

	result, ok := resp.Result.(ReadResourceResult)
	require.True(t, ok)
	require.Len(t, result.Contents, 1)
	assert.Equal(t, resource.WidgetURI, result.Contents[0].URI)
	assert.Contains(t, result.Contents[0].Text, "<style>body { color: pink; }</style>")
	assert.Contains(t, result.Contents[0].Text, "<script>console.log('grams');</script>")
	assert.NotContains(t, result.Contents[0].Text, "CSS_PLACEHOLDER")
}

func TestResourcesReadFallsBackWhenFilesMissing(t *testing.T) {
	d, _ := newTestDispatcher(t, filepath.Join(t.TempDir(), "missing"))

	resp := handle(t, d, `{"jsonrpc":"2.0","id":15,"method":"resources/read",
		"params":{"uri":"grams://widget"}}`)
	require.NotNil(t, resp)
	require.Nil(t, resp.Error)

	result, ok := resp.Result.(ReadResourceResult)
	require.True(t, ok)
	assert.Contains(t, result.Contents[0].Text, "Error loading widget")
}

func TestResourcesReadUnknownURI(t *testing.T) {
	d, _ := newTestDispatcher(t, "widget")

	resp := handle(t, d, `{"jsonrpc":"2.0","id":16,"method":"resources/read",
		"params":{"uri":"grams://cookbook"}}`)
	require.NotNil(t, resp)
	require.NotNil(t, resp.Error)
	assert.Equal(t, CodeInvalidParams, resp.Error.Code)
	assert.Contains(t, resp.Error.Message, "grams://cookbook")
}
