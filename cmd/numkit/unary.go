package main

import (
	"github.com/spf13/cobra"

	"github.com/dmitrymomot/numkit/pkg/decimal"
)

func (a *app) newUnaryCmd(name, short string, op func(decimal.Decimal) decimal.Decimal) *cobra.Command {
	return &cobra.Command{
		Use:   name + " <x>",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			ds, err := parseOperands(args)
			if err != nil {
				return err
			}
			return a.print(c, report{Op: name, Operands: ds, Result: op(ds[0])})
		},
	}
}

func (a *app) newRoundCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "round <x>",
		Short: "Round to at most --digits fractional digits",
		Long: `Round to at most --digits fractional digits (default DECIMAL_FIXED_DIGITS)
using --mode (default DECIMAL_ROUNDING). Trailing zeros are dropped; use
"fixed" for a padded result.`,
		Args: cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			return a.runRounding(c, args, "round")
		},
	}
	addRoundingFlags(c)
	return c
}

func (a *app) newFixedCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "fixed <x>",
		Short: "Format with exactly --digits fractional digits",
		Long: `Format with exactly --digits fractional digits (default DECIMAL_FIXED_DIGITS).
--mode selects "round" (half up) or "truncate" (default DECIMAL_ROUNDING).`,
		Args: cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			return a.runRounding(c, args, "fixed")
		},
	}
	addRoundingFlags(c)
	return c
}

func addRoundingFlags(c *cobra.Command) {
	c.Flags().Int("digits", 0, "fractional digits")
	c.Flags().String("mode", "", "rounding mode: round or truncate")
}

func (a *app) runRounding(c *cobra.Command, args []string, op string) error {
	ds, err := parseOperands(args)
	if err != nil {
		return err
	}

	digits, err := a.digitsFlag(c, a.cfg.FixedDigits)
	if err != nil {
		return err
	}

	mode := a.cfg.Rounding
	if c.Flags().Changed("mode") {
		s, _ := c.Flags().GetString("mode")
		if mode, err = decimal.ParseRoundingMode(s); err != nil {
			return err
		}
	}

	var result any
	if op == "fixed" {
		result = ds[0].ToFixedMode(digits, mode)
	} else {
		result = ds[0].Round(digits, mode)
	}
	return a.print(c, report{Op: op, Operands: ds, Result: result})
}
