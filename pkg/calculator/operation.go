package calculator

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrUnknownOperation is returned by ParseOperation for names it does not recognize.
var ErrUnknownOperation = errors.New("unknown operation")

// Operation names one of the calculator's binary operations.
type Operation int

const (
	OpAdd Operation = iota
	OpSubtract
	OpMultiply
	OpDivide
)

var operationNames = [...]string{
	OpAdd:      "add",
	OpSubtract: "subtract",
	OpMultiply: "multiply",
	OpDivide:   "divide",
}

var operationSymbols = [...]string{
	OpAdd:      "+",
	OpSubtract: "-",
	OpMultiply: "*",
	OpDivide:   "/",
}

var operationAliases = map[string]Operation{
	"+":   OpAdd,
	"-":   OpSubtract,
	"sub": OpSubtract,
	"*":   OpMultiply,
	"mul": OpMultiply,
	"/":   OpDivide,
	"div": OpDivide,
}

// Operations returns every supported operation in declaration order.
func Operations() []Operation {
	return []Operation{OpAdd, OpSubtract, OpMultiply, OpDivide}
}

func (op Operation) valid() bool {
	return op >= OpAdd && op <= OpDivide
}

// String returns the canonical lower-case name of the operation.
func (op Operation) String() string {
	if !op.valid() {
		return "Operation(" + strconv.Itoa(int(op)) + ")"
	}
	return operationNames[op]
}

// Symbol returns the infix symbol used when rendering results.
func (op Operation) Symbol() string {
	if !op.valid() {
		return "?"
	}
	return operationSymbols[op]
}

// ParseOperation maps a name, alias or symbol to an Operation.
// Matching ignores case and surrounding whitespace.
func ParseOperation(name string) (Operation, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	for op, n := range operationNames {
		if n == key {
			return Operation(op), nil
		}
	}
	if op, ok := operationAliases[key]; ok {
		return op, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownOperation, name)
}

// Result is the outcome of applying an Operation to two operands.
// Exactly one of Int or Float is meaningful, selected by IsFloat.
type Result struct {
	Operation Operation
	A, B      int
	Int       int
	Float     float64
	IsFloat   bool
}

// Value returns the result as an int or a float64.
func (r Result) Value() any {
	if r.IsFloat {
		return r.Float
	}
	return r.Int
}

// FormatValue renders the numeric result. Floats always carry a decimal
// point so 10 / 2 renders as "5.0" rather than "5".
func (r Result) FormatValue() string {
	if !r.IsFloat {
		return strconv.Itoa(r.Int)
	}
	s := strconv.FormatFloat(r.Float, 'f', -1, 64)
	if !strings.ContainsAny(s, ".eEnN") {
		s += ".0"
	}
	return s
}

// String renders the result as "a op b = value".
func (r Result) String() string {
	return fmt.Sprintf("%d %s %d = %s", r.A, r.Operation.Symbol(), r.B, r.FormatValue())
}

// Apply dispatches op to the matching Calculator method.
func (c Calculator) Apply(op Operation, a, b int) (Result, error) {
	r := Result{Operation: op, A: a, B: b}
	switch op {
	case OpAdd:
		r.Int = c.Add(a, b)
	case OpSubtract:
		r.Int = c.Subtract(a, b)
	case OpMultiply:
		r.Int = c.Multiply(a, b)
	case OpDivide:
		q, err := c.Divide(a, b)
		if err != nil {
			return Result{}, err
		}
		r.Float = q
		r.IsFloat = true
	default:
		return Result{}, fmt.Errorf("%w: %s", ErrUnknownOperation, op)
	}
	return r, nil
}
