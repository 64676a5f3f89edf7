package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/sunfmin/mcp-go-calculator/pkg/calculator"
	"github.com/sunfmin/mcp-go-calculator/pkg/logger"
	"github.com/sunfmin/mcp-go-calculator/pkg/types"
)

var operationAliases = map[calculator.Operation][]string{
	calculator.OpSubtract: {"sub"},
	calculator.OpMultiply: {"mul"},
	calculator.OpDivide:   {"div"},
}

var operationShort = map[calculator.Operation]string{
	calculator.OpAdd:      "Add two integers",
	calculator.OpSubtract: "Subtract b from a",
	calculator.OpMultiply: "Multiply two integers",
	calculator.OpDivide:   "Divide a by b, printing a floating-point quotient",
}

func newOperationCommands(v *viper.Viper) []*cobra.Command {
	calc := calculator.New()

	var cmds []*cobra.Command
	for _, op := range calculator.Operations() {
		cmds = append(cmds, &cobra.Command{
			Use:     op.String() + " <a> <b>",
			Aliases: operationAliases[op],
			Short:   operationShort[op],
			Args:    cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				a, err := parseOperand(args[0])
				if err != nil {
					return err
				}
				b, err := parseOperand(args[1])
				if err != nil {
					return err
				}

				result, err := calc.Apply(op, a, b)
				if err != nil {
					logger.Debug("Calculation failed", "operation", op, "a", a, "b", b, "error", err)
					return err
				}
				logger.Debug("Calculation complete", "summary", result.String())

				format, err := outputFormat(v)
				if err != nil {
					return err
				}
				return render(cmd.OutOrStdout(), format, result)
			},
		})
	}
	return cmds
}

func parseOperand(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("invalid operand %q: must be an integer", s)
	}
	return n, nil
}

// render writes a result in the requested output format
func render(w io.Writer, format string, result calculator.Result) error {
	switch format {
	case OutputJSON:
		data, err := json.MarshalIndent(types.NewOperationResponse(result), "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode result: %w", err)
		}
		_, err = fmt.Fprintln(w, string(data))
		return err
	case OutputYAML:
		data, err := yaml.Marshal(types.NewOperationResponse(result))
		if err != nil {
			return fmt.Errorf("failed to encode result: %w", err)
		}
		_, err = w.Write(data)
		return err
	default:
		_, err := fmt.Fprintln(w, result.FormatValue())
		return err
	}
}
