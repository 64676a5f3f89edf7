package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/sunfmin/mcp-go-calculator/pkg/calculator"
	"github.com/sunfmin/mcp-go-calculator/pkg/logger"
	"github.com/sunfmin/mcp-go-calculator/pkg/types"
)

// ServerName is the name advertised to MCP clients
const ServerName = "Go Calculator MCP"

// CalculatorServer encapsulates the MCP server with calculator functionality
type CalculatorServer struct {
	server     *server.MCPServer
	calculator calculator.Calculator
	stats      *callStats
	version    string
	startedAt  time.Time
}

// NewCalculatorServer creates a new MCP server exposing the calculator operations as tools
func NewCalculatorServer(version string) *CalculatorServer {
	s := &CalculatorServer{
		server:     server.NewMCPServer(ServerName, version),
		calculator: calculator.New(),
		stats:      newCallStats(),
		version:    version,
		startedAt:  time.Now(),
	}

	// Register all tools
	s.registerTools()

	return s
}

// Server returns the underlying MCP server
func (s *CalculatorServer) Server() *server.MCPServer {
	return s.server
}

// registerTools registers the health tools and one tool per operation
func (s *CalculatorServer) registerTools() {
	s.addPingTool()
	s.addStatusTool()

	s.addOperationTool(calculator.OpAdd, "Add two integers", s.Add)
	s.addOperationTool(calculator.OpSubtract, "Subtract the second integer from the first", s.Subtract)
	s.addOperationTool(calculator.OpMultiply, "Multiply two integers", s.Multiply)
	s.addOperationTool(calculator.OpDivide,
		"Divide the first integer by the second, returning a floating-point quotient. Fails when the divisor is zero",
		s.Divide)
}

// addPingTool adds a simple ping tool for health checks
func (s *CalculatorServer) addPingTool() {
	pingTool := mcp.NewTool("ping",
		mcp.WithDescription("Simple ping tool to test connection"),
	)

	s.server.AddTool(pingTool, s.Ping)
}

// addStatusTool adds the status tool
func (s *CalculatorServer) addStatusTool() {
	statusTool := mcp.NewTool("status",
		mcp.WithDescription("Report server version, uptime and per-operation call counts"),
	)

	s.server.AddTool(statusTool, s.Status)
}

// addOperationTool adds a two-operand arithmetic tool named after op
func (s *CalculatorServer) addOperationTool(op calculator.Operation, description string, handler func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error)) {
	tool := mcp.NewTool(op.String(),
		mcp.WithDescription(description),
		mcp.WithNumber("a",
			mcp.Required(),
			mcp.Description("First operand (integer)"),
		),
		mcp.WithNumber("b",
			mcp.Required(),
			mcp.Description("Second operand (integer)"),
		),
	)

	s.server.AddTool(tool, handler)
}

// newErrorResult creates a tool result that represents an error
func newErrorResult(format string, args ...interface{}) *mcp.CallToolResult {
	result := mcp.NewToolResultText(fmt.Sprintf("Error: "+format, args...))
	result.IsError = true
	return result
}

// Ping handles the ping command
func (s *CalculatorServer) Ping(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	logger.Debug("Received ping request")
	return mcp.NewToolResultText("pong - MCP Go Calculator is connected!"), nil
}

// Status handles the status command
func (s *CalculatorServer) Status(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	logger.Debug("Received status request")
	return newToolResultJSON(s.status())
}

// Add handles the add command
func (s *CalculatorServer) Add(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return s.calculate(request, calculator.OpAdd)
}

// Subtract handles the subtract command
func (s *CalculatorServer) Subtract(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return s.calculate(request, calculator.OpSubtract)
}

// Multiply handles the multiply command
func (s *CalculatorServer) Multiply(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return s.calculate(request, calculator.OpMultiply)
}

// Divide handles the divide command
func (s *CalculatorServer) Divide(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return s.calculate(request, calculator.OpDivide)
}

func (s *CalculatorServer) calculate(request mcp.CallToolRequest, op calculator.Operation) (*mcp.CallToolResult, error) {
	logger.Debug("Received calculation request", "operation", op)

	a, err := intArgument(request, "a")
	if err != nil {
		s.stats.record(op, false)
		logger.Error("Invalid operand", "operation", op, "error", err)
		return newErrorResult("%v", err), nil
	}

	b, err := intArgument(request, "b")
	if err != nil {
		s.stats.record(op, false)
		logger.Error("Invalid operand", "operation", op, "error", err)
		return newErrorResult("%v", err), nil
	}

	result, err := s.calculator.Apply(op, a, b)
	if err != nil {
		s.stats.record(op, false)
		logger.Error("Calculation failed", "operation", op, "a", a, "b", b, "error", err)
		return newErrorResult("%s failed: %v", op, err), nil
	}

	s.stats.record(op, true)
	logger.Debug("Calculation complete", "summary", result.String())

	return newToolResultJSON(types.NewOperationResponse(result))
}

// intArgument reads a required integral number from the tool arguments.
// JSON numbers arrive as float64, so fractional or out-of-range values are rejected.
func intArgument(request mcp.CallToolRequest, name string) (int, error) {
	raw, ok := request.Params.Arguments[name]
	if !ok || raw == nil {
		return 0, fmt.Errorf("missing required argument %q", name)
	}

	switch v := raw.(type) {
	case int:
		return v, nil
	case int64:
		if int64(int(v)) != v {
			return 0, fmt.Errorf("argument %q is out of range: %d", name, v)
		}
		return int(v), nil
	case float64:
		if math.IsNaN(v) || math.IsInf(v, 0) || v != math.Trunc(v) {
			return 0, fmt.Errorf("argument %q must be an integer, got %v", name, v)
		}
		if v < float64(math.MinInt) || v >= -float64(math.MinInt) {
			return 0, fmt.Errorf("argument %q is out of range: %v", name, v)
		}
		return int(v), nil
	case json.Number:
		n, err := v.Int64()
		if err != nil || int64(int(n)) != n {
			return 0, fmt.Errorf("argument %q must be an integer, got %s", name, v)
		}
		return int(n), nil
	default:
		return 0, fmt.Errorf("argument %q must be a number, got %T", name, raw)
	}
}

func newToolResultJSON(data interface{}) (*mcp.CallToolResult, error) {
	jsonBytes, err := json.Marshal(data)
	if err != nil {
		return newErrorResult("failed to serialize data: %v", err), nil
	}
	return mcp.NewToolResultText(string(jsonBytes)), nil
}
