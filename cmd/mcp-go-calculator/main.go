package main

import (
	"os"

	"github.com/mark3labs/mcp-go/server"
	"github.com/sunfmin/mcp-go-calculator/pkg/logger"
	"github.com/sunfmin/mcp-go-calculator/pkg/mcp"
)

// Version is set during build
var Version = "dev"

func main() {
	logger.Info("Starting MCP Go Calculator", "version", Version)

	// Create MCP calculator server
	calcServer := mcp.NewCalculatorServer(Version)

	// Start the stdio server
	logger.Info("Starting MCP server...")
	if err := server.ServeStdio(calcServer.Server()); err != nil {
		logger.Error("Server error", "error", err)
		os.Exit(1)
	}
}
