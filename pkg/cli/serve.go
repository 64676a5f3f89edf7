package cli

import (
	"github.com/mark3labs/mcp-go/server"
	"github.com/spf13/cobra"

	calcmcp "github.com/sunfmin/mcp-go-calculator/pkg/mcp"
	"github.com/sunfmin/mcp-go-calculator/pkg/logger"
)

func newServeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the calculator as MCP tools over stdio",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			calcServer := calcmcp.NewCalculatorServer(Version)

			logger.Info("Starting MCP server...", "version", Version)
			return server.ServeStdio(calcServer.Server())
		},
	}
}
