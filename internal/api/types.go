// Package api defines the wire types for the gateway's tool surface.
// These are the request and response shapes exchanged with callers over
// the HTTP channel.
package api

import "encoding/json"

// ContentBlockTypeText is the only content block type the gateway produces.
const ContentBlockTypeText = "text"

// ContentBlock is a single typed chunk of a tool response. Responses carry
// one block (the primary payload) or two (primary payload plus a trailing
// diagnostics block), always in that order.
type ContentBlock struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

// ToolResponse is the result of one tool invocation. It is immutable after
// construction.
type ToolResponse struct {
	Content []ContentBlock `json:"content"`
}

// ToolCallRequest is the inbound shape for POST /api/v1/tools/call.
// Arguments is kept raw so each tool can unmarshal it against its own
// schema.
type ToolCallRequest struct {
	Name      string          `json:"name" binding:"required"`
	Arguments json.RawMessage `json:"arguments"`
}

// TextBlock builds a text content block.
func TextBlock(text string) ContentBlock {
	return ContentBlock{Type: ContentBlockTypeText, Text: text}
}

// TextResponse builds a single-block response holding only the given text.
// This is the shape of every short-circuited failure path.
func TextResponse(text string) ToolResponse {
	return ToolResponse{Content: []ContentBlock{TextBlock(text)}}
}
