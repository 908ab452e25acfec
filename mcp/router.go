package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/petal-labs/textutils/tool"
)

// RouterConfig configures a Router instance.
type RouterConfig struct {
	Registry      *tool.Registry
	Dispatcher    *tool.Dispatcher
	ServerName    string
	ServerVersion string
	Logger        *slog.Logger
}

// Router maps JSON-RPC methods onto the dispatch core. It is stateless per
// message and safe for concurrent use across transports.
type Router struct {
	registry      *tool.Registry
	dispatcher    *tool.Dispatcher
	serverName    string
	serverVersion string
	logger        *slog.Logger
}

// NewRouter creates a router over the given registry and dispatcher.
func NewRouter(cfg RouterConfig) *Router {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Router{
		registry:      cfg.Registry,
		dispatcher:    cfg.Dispatcher,
		serverName:    cfg.ServerName,
		serverVersion: cfg.ServerVersion,
		logger:        logger,
	}
}

// HandleRaw decodes one raw JSON-RPC request and returns the encoded
// response, or nil when no response is owed (notifications).
func (rt *Router) HandleRaw(ctx context.Context, data []byte) []byte {
	var msg Message
	if err := json.Unmarshal(data, &msg); err != nil {
		return mustEncode(errorMessage(nil, CodeParseError, "parse error"))
	}

	response := rt.Handle(ctx, &msg)
	if response == nil {
		return nil
	}
	return mustEncode(response)
}

// Handle processes one decoded JSON-RPC message and returns the response
// message, or nil when the message is a notification.
func (rt *Router) Handle(ctx context.Context, msg *Message) *Message {
	// A message without an id is a notification and gets no response,
	// whatever its method.
	if msg.ID == nil {
		return nil
	}

	if msg.JSONRPC != jsonRPCVersion {
		return errorMessage(msg.ID, CodeInvalidRequest, fmt.Sprintf("unsupported jsonrpc version %q", msg.JSONRPC))
	}

	switch msg.Method {
	case "initialize":
		return rt.handleInitialize(msg)
	case "notifications/initialized":
		// Client acknowledgment; no response owed even with an id attached.
		return nil
	case "ping":
		return resultMessage(msg.ID, map[string]any{})
	case "tools/list":
		return rt.handleToolsList(msg)
	case "tools/call":
		return rt.handleToolsCall(ctx, msg)
	default:
		return errorMessage(msg.ID, CodeMethodNotFound, fmt.Sprintf("method not found: %s", msg.Method))
	}
}

func (rt *Router) handleInitialize(msg *Message) *Message {
	return resultMessage(msg.ID, InitializeResult{
		ProtocolVersion: protocolVersion,
		Capabilities: map[string]any{
			"tools": map[string]any{"listChanged": false},
		},
		ServerInfo: ServerInfo{
			Name:    rt.serverName,
			Version: rt.serverVersion,
		},
	})
}

func (rt *Router) handleToolsList(msg *Message) *Message {
	descriptors := rt.registry.List()
	tools := make([]ToolInfo, 0, len(descriptors))
	for _, d := range descriptors {
		tools = append(tools, ToolInfo{
			Name:        d.Name,
			Description: d.Description,
			InputSchema: d.InputSchema(),
		})
	}
	return resultMessage(msg.ID, ToolsListResult{Tools: tools})
}

func (rt *Router) handleToolsCall(ctx context.Context, msg *Message) *Message {
	var params ToolsCallParams
	if err := json.Unmarshal(msg.Params, &params); err != nil {
		return errorMessage(msg.ID, CodeInvalidParams, "invalid tools/call params")
	}

	result := rt.dispatcher.Dispatch(ctx, tool.CallRequest{
		ID:        msg.ID,
		ToolName:  params.Name,
		Arguments: params.Arguments,
	})
	if result.Err != nil {
		rt.logger.Debug("tool call failed",
			"tool", params.Name,
			"kind", string(result.Err.Kind),
			"error", result.Err.Message)
		return errorMessage(msg.ID, errorCode(result.Err.Kind), result.Err.Message)
	}

	text, err := json.Marshal(result.Value)
	if err != nil {
		rt.logger.Error("encoding tool result", "tool", params.Name, "error", err)
		return errorMessage(msg.ID, CodeInternalError, "unexpected error")
	}

	callResult := ToolsCallResult{
		Content: []ContentBlock{{Type: "text", Text: string(text)}},
	}
	if structured, ok := result.Value.(map[string]any); ok {
		callResult.StructuredContent = structured
	}
	return resultMessage(msg.ID, callResult)
}

func resultMessage(id, result any) *Message {
	return &Message{
		JSONRPC: jsonRPCVersion,
		ID:      id,
		Result:  result,
	}
}

func errorMessage(id any, code int, message string) *Message {
	return &Message{
		JSONRPC: jsonRPCVersion,
		ID:      id,
		Error: &RPCError{
			Code:    code,
			Message: message,
		},
	}
}

// mustEncode marshals a response message. Response types are all
// JSON-marshalable by construction, so failure here is a defect.
func mustEncode(msg *Message) []byte {
	data, err := json.Marshal(msg)
	if err != nil {
		data, _ = json.Marshal(errorMessage(nil, CodeInternalError, "unexpected error"))
	}
	return data
}
