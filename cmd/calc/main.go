package main

import (
	"fmt"
	"os"

	"github.com/sunfmin/mcp-go-calculator/pkg/cli"
	"github.com/sunfmin/mcp-go-calculator/pkg/logger"
)

func main() {
	if err := cli.Execute(); err != nil {
		logger.Debug("Command failed", "error", err)
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
