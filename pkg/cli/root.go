// Package cli provides the command-line interface for the calculator.
package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/sunfmin/mcp-go-calculator/pkg/logger"
)

// Output formats accepted by --output
const (
	OutputText = "text"
	OutputJSON = "json"
	OutputYAML = "yaml"
)

// NewRootCommand builds the calc command tree. Each call gets its own viper
// instance so commands can be executed repeatedly in one process.
func NewRootCommand() *cobra.Command {
	v := viper.New()
	var cfgFile string

	rootCmd := &cobra.Command{
		Use:   "calc",
		Short: "Integer calculator with an MCP tool server",
		Long: `calc performs the four elementary operations on two integers.

Addition, subtraction and multiplication print integers; division always
prints a floating-point quotient and fails when the divisor is zero.

Pass negative operands after "--", for example:
  calc subtract -- -3 4`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := initConfig(v, cfgFile); err != nil {
				return err
			}

			if err := logger.Configure(v.GetString("log.level"), v.GetString("log.format")); err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}

			if _, err := outputFormat(v); err != nil {
				return err
			}

			if used := v.ConfigFileUsed(); used != "" {
				logger.Debug("Using config file", "path", used)
			}
			return nil
		},
	}

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./calc.yaml or ~/.config/calc/calc.yaml)")
	rootCmd.PersistentFlags().StringP("output", "o", OutputText, "output format (text, json, yaml)")
	rootCmd.PersistentFlags().String("log-level", "warn", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().String("log-format", "text", "log format (text, json)")

	_ = v.BindPFlag("output", rootCmd.PersistentFlags().Lookup("output"))
	_ = v.BindPFlag("log.level", rootCmd.PersistentFlags().Lookup("log-level"))
	_ = v.BindPFlag("log.format", rootCmd.PersistentFlags().Lookup("log-format"))

	rootCmd.AddCommand(newOperationCommands(v)...)
	rootCmd.AddCommand(newServeCommand())
	rootCmd.AddCommand(newVersionCommand())

	return rootCmd
}

// Execute runs the root command against os.Args.
// This is called by main.main().
func Execute() error {
	return NewRootCommand().Execute()
}

// initConfig reads in config file and ENV variables if set.
func initConfig(v *viper.Viper, cfgFile string) error {
	v.SetEnvPrefix("CALC")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("failed to read config file %s: %w", cfgFile, err)
		}
		return nil
	}

	v.AddConfigPath(".")
	if home, err := os.UserHomeDir(); err == nil {
		v.AddConfigPath(filepath.Join(home, ".config", "calc"))
	}
	v.SetConfigName("calc")
	v.SetConfigType("yaml")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return fmt.Errorf("failed to read config: %w", err)
		}
	}
	return nil
}

func outputFormat(v *viper.Viper) (string, error) {
	format := strings.ToLower(v.GetString("output"))
	switch format {
	case OutputText, OutputJSON, OutputYAML:
		return format, nil
	default:
		return "", fmt.Errorf("invalid output format %q, must be 'text', 'json' or 'yaml'", v.GetString("output"))
	}
}
