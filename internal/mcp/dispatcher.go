package mcp

import (
	"context"
	"encoding/json"
	"errors"

	"grams-mcp-be/internal/dto"
	"grams-mcp-be/internal/persona"
	"grams-mcp-be/internal/pkg/logger"
	"grams-mcp-be/internal/pkg/serverutils"
	"grams-mcp-be/internal/resource"
	"grams-mcp-be/internal/service"
)

const protocolVersion = "2024-11-05"

// DefaultSessionID is used when the call envelope carries no session id.
// Unscoped callers share one session by design; this is a simplification,
// not a security boundary.
const DefaultSessionID = "default"

const (
	ToolChatWithGrams = "chat_with_grams"
	ToolSwitchGrandma = "switch_grandma"
)

// Dispatcher validates inbound tool calls against their schemas, routes them
// to the chat service and shapes the JSON-RPC result.
type Dispatcher struct {
	chatService   service.IChatService
	widget        *resource.WidgetResource
	serverName    string
	serverVersion string
	logger        logger.ILogger
}

func NewDispatcher(
	chatService service.IChatService,
	widget *resource.WidgetResource,
	serverName, serverVersion string,
	log logger.ILogger,
) *Dispatcher {
	return &Dispatcher{
		chatService:   chatService,
		widget:        widget,
		serverName:    serverName,
		serverVersion: serverVersion,
		logger:        log,
	}
}

// Handle processes one raw JSON-RPC message. Notifications yield nil; every
// other outcome, including failures, is a response for that call only.
func (d *Dispatcher) Handle(ctx context.Context, body []byte) *Response {
	var req Request
	if err := json.Unmarshal(body, &req); err != nil {
		return errorResponse(json.RawMessage("null"), CodeParseError, "Parse error", err.Error())
	}

	if req.IsNotification() {
		// notifications/initialized and friends need no reply.
		d.logger.Debug("mcp_dispatcher", "notification received", map[string]interface{}{
			"method": req.Method,
		})
		return nil
	}

	switch req.Method {
	case "initialize":
		return d.handleInitialize(&req)
	case "ping":
		return resultResponse(req.ID, struct{}{})
	case "tools/list":
		return resultResponse(req.ID, ListToolsResult{Tools: toolDescriptors()})
	case "tools/call":
		return d.handleToolCall(ctx, &req)
	case "resources/list":
		return resultResponse(req.ID, ListResourcesResult{Resources: []Resource{widgetDescriptor()}})
	case "resources/read":
		return d.handleResourceRead(&req)
	default:
		return errorResponse(req.ID, CodeMethodNotFound, "Method not found: "+req.Method, nil)
	}
}

func (d *Dispatcher) handleInitialize(req *Request) *Response {
	return resultResponse(req.ID, InitializeResult{
		ProtocolVersion: protocolVersion,
		ServerInfo: ServerInfo{
			Name:    d.serverName,
			Version: d.serverVersion,
		},
		Capabilities: map[string]interface{}{
			"tools":     map[string]interface{}{},
			"resources": map[string]interface{}{},
		},
	})
}

func (d *Dispatcher) handleToolCall(ctx context.Context, req *Request) *Response {
	var params CallToolParams
	if err := json.Unmarshal(req.Params, &params); err != nil {
		return errorResponse(req.ID, CodeInvalidParams, "Invalid tool call params", err.Error())
	}

	sessionID := DefaultSessionID
	if params.Meta != nil && params.Meta.SessionID != "" {
		sessionID = params.Meta.SessionID
	}

	d.logger.Debug("mcp_dispatcher", "tool call", map[string]interface{}{
		"tool":       params.Name,
		"session_id": sessionID,
	})

	switch params.Name {
	case ToolChatWithGrams:
		return d.callChatWithGrams(ctx, req, &params, sessionID)
	case ToolSwitchGrandma:
		return d.callSwitchGrandma(ctx, req, &params, sessionID)
	default:
		return errorResponse(req.ID, CodeInvalidParams, "Unknown tool: "+params.Name, nil)
	}
}

func (d *Dispatcher) callChatWithGrams(ctx context.Context, req *Request, params *CallToolParams, sessionID string) *Response {
	var args dto.ChatWithGramsRequest
	if err := unmarshalArguments(params.Arguments, &args); err != nil {
		return errorResponse(req.ID, CodeInvalidParams, "Invalid arguments for chat_with_grams", err.Error())
	}
	if err := serverutils.ValidateRequest(args); err != nil {
		return validationErrorResponse(req.ID, err)
	}

	reply, err := d.chatService.Chat(ctx, sessionID, args.Message)
	if err != nil {
		d.logger.Error("mcp_dispatcher", "chat_with_grams failed", map[string]interface{}{
			"error": err.Error(),
		})
		return errorResponse(req.ID, CodeInternalError, "chat_with_grams failed", err.Error())
	}

	return resultResponse(req.ID, toolResult(reply))
}

func (d *Dispatcher) callSwitchGrandma(ctx context.Context, req *Request, params *CallToolParams, sessionID string) *Response {
	var args dto.SwitchGrandmaRequest
	if err := unmarshalArguments(params.Arguments, &args); err != nil {
		return errorResponse(req.ID, CodeInvalidParams, "Invalid arguments for switch_grandma", err.Error())
	}
	if err := serverutils.ValidateRequest(args); err != nil {
		return validationErrorResponse(req.ID, err)
	}

	reply, err := d.chatService.SwitchPersonality(ctx, sessionID, persona.ID(args.Personality))
	if err != nil {
		d.logger.Error("mcp_dispatcher", "switch_grandma failed", map[string]interface{}{
			"error": err.Error(),
		})
		return errorResponse(req.ID, CodeInternalError, "switch_grandma failed", err.Error())
	}

	return resultResponse(req.ID, toolResult(reply))
}

func (d *Dispatcher) handleResourceRead(req *Request) *Response {
	var params ReadResourceParams
	if err := json.Unmarshal(req.Params, &params); err != nil {
		return errorResponse(req.ID, CodeInvalidParams, "Invalid resource read params", err.Error())
	}

	if params.URI != resource.WidgetURI {
		return errorResponse(req.ID, CodeInvalidParams, "Unknown resource: "+params.URI, nil)
	}

	return resultResponse(req.ID, ReadResourceResult{
		Contents: []ResourceContents{
			{
				URI:      resource.WidgetURI,
				MimeType: "text/html",
				Text:     d.widget.HTML(),
			},
		},
	})
}

// unmarshalArguments is the schema check for argument types: a non-string
// message or personality fails decoding here, before validation tags run.
func unmarshalArguments(raw json.RawMessage, target interface{}) error {
	if len(raw) == 0 {
		raw = json.RawMessage("{}")
	}
	return json.Unmarshal(raw, target)
}

func toolResult(reply *dto.ToolReply) CallToolResult {
	ui := reply.UI
	return CallToolResult{
		Content: []ContentBlock{{Type: "text", Text: reply.Text}},
		Meta:    &ResultMeta{UI: &ui},
	}
}

func toolDescriptors() []Tool {
	return []Tool{
		{
			Name: ToolChatWithGrams,
			Description: "Chat with your AI grandma. She responds with warmth and wisdom based on her " +
				"current personality (Sweet Nana, Wise Bubbe, or Cool Grams).",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"message": map[string]interface{}{
						"type":        "string",
						"description": "Your message to Grandma",
					},
				},
				"required": []string{"message"},
			},
		},
		{
			Name: ToolSwitchGrandma,
			Description: "Switch between different grandma personalities: Sweet Nana (warm and nurturing), " +
				"Wise Bubbe (knowledgeable and direct), or Cool Grams (modern and adventurous).",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"personality": map[string]interface{}{
						"type":        "string",
						"enum":        []string{string(persona.SweetNana), string(persona.WiseBubbe), string(persona.CoolGrams)},
						"description": "The personality to switch to",
					},
				},
				"required": []string{"personality"},
			},
		},
	}
}

func widgetDescriptor() Resource {
	return Resource{
		URI:         resource.WidgetURI,
		Name:        "Grams Widget",
		Description: "Interactive widget for chatting with AI grandmas",
		MimeType:    "text/html",
	}
}

func resultResponse(id json.RawMessage, result interface{}) *Response {
	return &Response{Jsonrpc: JSONRPCVersion, ID: id, Result: result}
}

func errorResponse(id json.RawMessage, code int, message string, data interface{}) *Response {
	return &Response{
		Jsonrpc: JSONRPCVersion,
		ID:      id,
		Error:   &Error{Code: code, Message: message, Data: data},
	}
}

func validationErrorResponse(id json.RawMessage, err error) *Response {
	var verr *serverutils.ValidationError
	if errors.As(err, &verr) {
		return errorResponse(id, CodeInvalidParams, "Invalid params", verr.Fields)
	}
	return errorResponse(id, CodeInvalidParams, "Invalid params", err.Error())
}
