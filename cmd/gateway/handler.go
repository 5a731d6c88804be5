package main

import (
	"errors"
	"log"
	"net/http"

	"weather-gateway/internal/api"
	"weather-gateway/internal/tools"

	"github.com/gin-gonic/gin"
)

// GatewayHandler wires the HTTP channel to the tool registry. It owns no
// tool logic: argument parsing against each tool's schema happens inside
// the tool, and the handler only translates transport-level outcomes.
type GatewayHandler struct {
	toolManager *tools.ToolManager
}

func NewGatewayHandler(toolManager *tools.ToolManager) *GatewayHandler {
	return &GatewayHandler{toolManager: toolManager}
}

// HandleListTools returns the definitions of every registered tool.
func (h *GatewayHandler) HandleListTools(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"tools": h.toolManager.GetDefinitions()})
}

// HandleToolCall dispatches one tool invocation. Tool-level trouble
// (upstream failure, missing data) is already folded into the response by
// the tool itself; only malformed requests and unknown tools surface as
// HTTP errors here.
func (h *GatewayHandler) HandleToolCall(c *gin.Context) {
	var req api.ToolCallRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	arguments := "{}"
	if len(req.Arguments) > 0 {
		arguments = string(req.Arguments)
	}

	log.Printf("--- Tool call (Tool: %s) ---", req.Name)
	resp, err := h.toolManager.Execute(c.Request.Context(), req.Name, arguments)
	if err != nil {
		if errors.Is(err, tools.ErrToolNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, resp)
}
