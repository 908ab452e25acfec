// Package mcp implements the JSON-RPC 2.0 wire surface of the text-utils
// server: envelope types, a transport-agnostic method router over the
// dispatch core, and a newline-delimited stdio transport.
package mcp

import (
	"encoding/json"

	"github.com/petal-labs/textutils/tool"
)

const (
	jsonRPCVersion  = "2.0"
	protocolVersion = "2024-11-05"
)

// JSON-RPC 2.0 error codes. CodeToolError is the implementation-defined code
// for domain failures raised by a tool's own logic.
const (
	CodeParseError     = -32700
	CodeInvalidRequest = -32600
	CodeMethodNotFound = -32601
	CodeInvalidParams  = -32602
	CodeInternalError  = -32603
	CodeToolError      = -32000
)

// Message is a JSON-RPC 2.0 envelope. ID is opaque: whatever the caller
// sends is echoed back untouched. Responses always carry the id member,
// encoded as null when the request's id could not be determined.
type Message struct {
	JSONRPC string          `json:"jsonrpc"`
	ID      any             `json:"id"`
	Method  string          `json:"method,omitempty"`
	Params  json.RawMessage `json:"params,omitempty"`
	Result  any             `json:"result,omitempty"`
	Error   *RPCError       `json:"error,omitempty"`
}

// RPCError is the JSON-RPC error object.
type RPCError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

// ServerInfo identifies this server during initialization.
type ServerInfo struct {
	Name    string `json:"name"`
	Version string `json:"version,omitempty"`
}

// InitializeResult is returned by the initialize request.
type InitializeResult struct {
	ProtocolVersion string         `json:"protocolVersion"`
	Capabilities    map[string]any `json:"capabilities"`
	ServerInfo      ServerInfo     `json:"serverInfo"`
}

// ToolInfo describes one tool in a tools/list response.
type ToolInfo struct {
	Name        string         `json:"name"`
	Description string         `json:"description,omitempty"`
	InputSchema map[string]any `json:"inputSchema"`
}

// ToolsListResult is returned by the tools/list request.
type ToolsListResult struct {
	Tools []ToolInfo `json:"tools"`
}

// ToolsCallParams carries the params of a tools/call request.
type ToolsCallParams struct {
	Name      string         `json:"name"`
	Arguments map[string]any `json:"arguments,omitempty"`
}

// ContentBlock is one content item in a tools/call result.
type ContentBlock struct {
	Type string `json:"type"`
	Text string `json:"text,omitempty"`
}

// ToolsCallResult is returned by a successful tools/call request.
type ToolsCallResult struct {
	Content           []ContentBlock `json:"content"`
	StructuredContent map[string]any `json:"structuredContent,omitempty"`
}

// errorCode maps a dispatch failure kind onto its JSON-RPC error code. The
// mapping is part of the interoperability contract.
func errorCode(kind tool.ErrorKind) int {
	switch kind {
	case tool.KindMethodNotFound:
		return CodeMethodNotFound
	case tool.KindInvalidParams:
		return CodeInvalidParams
	case tool.KindToolExecution:
		return CodeToolError
	default:
		return CodeInternalError
	}
}
