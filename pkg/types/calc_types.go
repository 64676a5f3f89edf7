package types

import (
	"time"

	"github.com/sunfmin/mcp-go-calculator/pkg/calculator"
)

// Result type labels reported alongside every operation result
const (
	ResultTypeInteger = "integer"
	ResultTypeFloat   = "float"
)

// OperationResponse is the JSON shape returned for a completed calculation
type OperationResponse struct {
	Status     string    `json:"status" yaml:"status"`         // "success"
	Operation  string    `json:"operation" yaml:"operation"`   // Canonical operation name
	A          int       `json:"a" yaml:"a"`                   // First operand
	B          int       `json:"b" yaml:"b"`                   // Second operand
	Result     any       `json:"result" yaml:"result"`         // int for add/subtract/multiply, float64 for divide
	ResultType string    `json:"resultType" yaml:"resultType"` // "integer" or "float"
	Summary    string    `json:"summary" yaml:"summary"`       // Human-readable "a op b = result"
	Timestamp  time.Time `json:"timestamp" yaml:"timestamp"`   // When the calculation ran
}

// NewOperationResponse builds a success response from a calculator result
func NewOperationResponse(r calculator.Result) OperationResponse {
	resultType := ResultTypeInteger
	if r.IsFloat {
		resultType = ResultTypeFloat
	}

	return OperationResponse{
		Status:     "success",
		Operation:  r.Operation.String(),
		A:          r.A,
		B:          r.B,
		Result:     r.Value(),
		ResultType: resultType,
		Summary:    r.String(),
		Timestamp:  time.Now(),
	}
}

// ServerInfo identifies the running server
type ServerInfo struct {
	Name    string `json:"name"`
	Version string `json:"version"`
	Uptime  string `json:"uptime"`
}

// CalculatorInfo describes what the calculator offers and how it has been used
type CalculatorInfo struct {
	Ready      bool             `json:"ready"`
	Operations []string         `json:"operations"`
	Calls      map[string]int64 `json:"calls"`
	Failures   map[string]int64 `json:"failures,omitempty"`
}

// StatusResponse is returned by the status tool
type StatusResponse struct {
	Server     ServerInfo     `json:"server"`
	Calculator CalculatorInfo `json:"calculator"`
}
