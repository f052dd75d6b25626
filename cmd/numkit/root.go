package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"slices"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/numkit/pkg/config"
	"github.com/dmitrymomot/numkit/pkg/decimal"
	"github.com/dmitrymomot/numkit/pkg/logger"
	"github.com/dmitrymomot/numkit/pkg/sanitizer"
)

const (
	outputText = "text"
	outputJSON = "json"
	outputYAML = "yaml"

	// maxDigits bounds explicit precision flags.
	maxDigits = 10000
)

var validOutputFormats = []string{outputText, outputJSON, outputYAML}

type commandKey struct{}

// app holds the state shared by all subcommands of one invocation.
type app struct {
	envFile   string
	logLevel  string
	logFormat string
	output    string

	cfg   decimal.Config
	log   *slog.Logger
	start time.Time
}

// report is the structured form of a command result.
type report struct {
	Op       string            `json:"op" yaml:"op"`
	Operands []decimal.Decimal `json:"operands" yaml:"operands"`
	Result   any               `json:"result" yaml:"result"`
}

func newRootCmd() *cobra.Command {
	a := &app{log: slog.New(slog.DiscardHandler)}

	root := &cobra.Command{
		Use:   "numkit",
		Short: "Exact decimal arithmetic",
		Long: `Exact arbitrary-precision decimal arithmetic on digit strings.

Defaults for division precision, fixed-point width and rounding come from
DECIMAL_DIVISION_DIGITS, DECIMAL_FIXED_DIGITS and DECIMAL_ROUNDING.
Operands may use spaces, '_' or ',' as digit grouping.`,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.envFile, "env-file", "", "load environment variables from `file` before reading config")
	flags.StringVar(&a.logLevel, "log-level", "", "log level (debug, info, warn, error); overrides LOG_LEVEL")
	flags.StringVar(&a.logFormat, "log-format", "", "log format (text, json); overrides LOG_FORMAT")
	flags.StringVarP(&a.output, "output", "o", outputText, "result format (text, json, yaml)")

	root.AddCommand(
		a.newFoldCmd("add", "Sum decimals", decimal.Decimal.Add),
		a.newFoldCmd("sub", "Subtract the remaining decimals from the first", decimal.Decimal.Sub),
		a.newFoldCmd("mul", "Multiply decimals", decimal.Decimal.Mul),
		a.newDivCmd(),
		a.newAvgCmd(),
		a.newCmpCmd(),
		a.newUnaryCmd("abs", "Absolute value", decimal.Decimal.Abs),
		a.newUnaryCmd("neg", "Negate", decimal.Decimal.Neg),
		a.newUnaryCmd("norm", "Print the canonical form", func(d decimal.Decimal) decimal.Decimal { return d }),
		a.newRoundCmd(),
		a.newFixedCmd(),
		a.newClampCmd(),
		a.newCheckCmd(),
	)
	return root
}

// setup loads the env file and configuration, then builds the logger.
// Flags take precedence over environment variables.
func (a *app) setup(c *cobra.Command, _ []string) error {
	a.start = time.Now()
	if !slices.Contains(validOutputFormats, a.output) {
		return fmt.Errorf("invalid output format: %s (valid: %v)", a.output, validOutputFormats)
	}

	if a.envFile != "" {
		if err := config.LoadEnv(a.envFile); err != nil {
			return err
		}
	}

	var logCfg logger.Config
	if err := config.ForceReloadConfig(&logCfg); err != nil {
		return fmt.Errorf("load log config: %w", err)
	}
	if a.logLevel != "" {
		if err := logCfg.Level.UnmarshalText([]byte(a.logLevel)); err != nil {
			return fmt.Errorf("invalid --log-level: %w", err)
		}
	}
	if a.logFormat != "" {
		f, err := logger.ParseFormat(a.logFormat)
		if err != nil {
			return fmt.Errorf("invalid --log-format: %w", err)
		}
		logCfg.Format = f
	}

	a.log = logger.New(
		logger.WithConfig(logCfg),
		logger.WithOutput(c.ErrOrStderr()),
		logger.WithAttr(logger.Component("numkit")),
		logger.WithContextValue("command", commandKey{}),
	)

	if err := config.ForceReloadConfig(&a.cfg); err != nil {
		return fmt.Errorf("load decimal config: %w", err)
	}
	if err := a.cfg.Validate(); err != nil {
		return err
	}

	ctx := c.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	c.SetContext(context.WithValue(ctx, commandKey{}, c.CommandPath()))

	a.log.DebugContext(c.Context(), "configuration loaded",
		logger.Group("division", logger.Digits(a.cfg.DivisionDigits)),
		logger.Group("fixed",
			logger.Digits(a.cfg.FixedDigits),
			slog.String("rounding", a.cfg.Rounding.String()),
		),
	)
	return nil
}

// parseOperands sanitizes and parses every argument.
func parseOperands(args []string) ([]decimal.Decimal, error) {
	ds := make([]decimal.Decimal, len(args))
	for i, arg := range args {
		d, err := sanitizer.ParseDecimal(arg)
		if err != nil {
			return nil, fmt.Errorf("operand %d: %w", i+1, err)
		}
		ds[i] = d
	}
	return ds, nil
}

// print writes r in the selected output format.
func (a *app) print(c *cobra.Command, r report) error {
	a.log.DebugContext(c.Context(), "computed",
		logger.Operation(r.Op),
		logger.Operands(anySlice(r.Operands)...),
		logger.Result(r.Result),
		logger.Duration(time.Since(a.start)),
	)

	w := c.OutOrStdout()
	switch a.output {
	case outputJSON:
		return json.NewEncoder(w).Encode(r)
	case outputYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(r); err != nil {
			return err
		}
		return enc.Close()
	}
	_, err := fmt.Fprintln(w, r.Result)
	return err
}

func anySlice(ds []decimal.Decimal) []any {
	out := make([]any, len(ds))
	for i, d := range ds {
		out[i] = d
	}
	return out
}
