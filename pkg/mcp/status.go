package mcp

import (
	"sync"
	"time"

	"github.com/sunfmin/mcp-go-calculator/pkg/calculator"
	"github.com/sunfmin/mcp-go-calculator/pkg/types"
)

// callStats counts tool invocations per operation. Handlers may run concurrently.
type callStats struct {
	mu       sync.Mutex
	calls    map[calculator.Operation]int64
	failures map[calculator.Operation]int64
}

func newCallStats() *callStats {
	return &callStats{
		calls:    make(map[calculator.Operation]int64),
		failures: make(map[calculator.Operation]int64),
	}
}

func (c *callStats) record(op calculator.Operation, ok bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.calls[op]++
	if !ok {
		c.failures[op]++
	}
}

// snapshot copies the counters keyed by operation name
func (c *callStats) snapshot() (calls, failures map[string]int64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	calls = make(map[string]int64, len(calculator.Operations()))
	failures = make(map[string]int64)
	for _, op := range calculator.Operations() {
		calls[op.String()] = c.calls[op]
		if n := c.failures[op]; n > 0 {
			failures[op.String()] = n
		}
	}
	return calls, failures
}

// status gathers the current server and calculator state
func (s *CalculatorServer) status() types.StatusResponse {
	ops := calculator.Operations()
	names := make([]string, len(ops))
	for i, op := range ops {
		names[i] = op.String()
	}

	calls, failures := s.stats.snapshot()

	return types.StatusResponse{
		Server: types.ServerInfo{
			Name:    ServerName,
			Version: s.version,
			Uptime:  time.Since(s.startedAt).Round(time.Second).String(),
		},
		Calculator: types.CalculatorInfo{
			Ready:      true,
			Operations: names,
			Calls:      calls,
			Failures:   failures,
		},
	}
}
