package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"weather-gateway/internal/diag"
	"weather-gateway/internal/nws"
	"weather-gateway/internal/tools"

	"github.com/gin-gonic/gin"
)

// main is the entry point for the application. Its primary role is the
// "Composition Root": it loads configuration, initializes all services,
// injects dependencies, and starts the server.
func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	buildInfo := GetBuildInfo()
	log.Printf("🚀 Starting Weather Gateway | Version: %s | Commit: %s", buildInfo.Version, buildInfo.GitCommit)

	// 1. LOAD CONFIGURATION
	cfg, err := LoadConfig()
	if err != nil {
		log.Fatalf("❌ FATAL: Configuration Error: %v", err)
	}
	log.Println("✅ Configuration loaded.")

	// 2. INITIALIZE SERVICES
	client := nws.NewClient(nws.Config{
		BaseURL:   cfg.Upstream.BaseURL,
		UserAgent: cfg.Upstream.UserAgent,
		Accept:    cfg.Upstream.Accept,
		Timeout:   cfg.Upstream.Timeout(),
	})
	history := diag.NewHistory(cfg.Diagnostics.BufferSize)
	toolManager := initializeToolManager(client, history)
	gatewayHandler := NewGatewayHandler(toolManager)
	log.Println("✅ All services initialized.")

	// 3. SETUP AND RUN THE WEB SERVER
	gin.SetMode(os.Getenv("GIN_MODE"))
	engine := gin.Default()
	engine.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	v1 := engine.Group("/api/v1")
	{
		v1.GET("/tools", gatewayHandler.HandleListTools)
		v1.POST("/tools/call", gatewayHandler.HandleToolCall)
	}

	srv := &http.Server{Addr: fmt.Sprintf(":%s", cfg.Port), Handler: engine}
	runServerWithGracefulShutdown(srv)
}

// initializeToolManager creates and registers all available tools.
func initializeToolManager(client *nws.Client, history *diag.Buffer) *tools.ToolManager {
	manager := tools.NewToolManager()

	manager.Register(tools.NewAlertsTool(client, history))
	manager.Register(tools.NewForecastTool(client, history))
	manager.Register(tools.NewLogsTool(history))

	log.Printf("✅ Tool Manager initialized with %d tools.", manager.ToolCount())
	return manager
}

// runServerWithGracefulShutdown handles the server lifecycle. A listener
// failure at startup is the one fatal error in the system.
func runServerWithGracefulShutdown(srv *http.Server) {
	go func() {
		log.Printf("👂 Gateway is listening on http://localhost%s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("❌ Listen error: %s\n", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("🛑 Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("❌ Server shutdown failed:", err)
	}

	log.Println("👋 Server exited gracefully.")
}
