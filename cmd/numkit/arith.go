package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/numkit/pkg/decimal"
	"github.com/dmitrymomot/numkit/pkg/validator"
)

// newFoldCmd builds an n-ary command that folds op over its operands left to right.
func (a *app) newFoldCmd(name, short string, op func(decimal.Decimal, decimal.Decimal) decimal.Decimal) *cobra.Command {
	return &cobra.Command{
		Use:   name + " <x> [y...]",
		Short: short,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			ds, err := parseOperands(args)
			if err != nil {
				return err
			}
			acc := ds[0]
			for _, d := range ds[1:] {
				acc = op(acc, d)
			}
			return a.print(c, report{Op: name, Operands: ds, Result: acc})
		},
	}
}

func (a *app) newDivCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "div <dividend> <divisor>",
		Short: "Divide, truncating toward zero",
		Long: `Divide two decimals. The quotient is truncated toward zero after
--digits fractional digits (default DECIMAL_DIVISION_DIGITS).`,
		Args: cobra.ExactArgs(2),
		RunE: a.runDiv,
	}
	c.Flags().Int("digits", 0, "fractional digits to keep")
	return c
}

func (a *app) runDiv(c *cobra.Command, args []string) error {
	ds, err := parseOperands(args)
	if err != nil {
		return err
	}

	digits, err := a.digitsFlag(c, a.cfg.DivisionDigits)
	if err != nil {
		return err
	}

	q, err := ds[0].Div(ds[1], digits)
	if err != nil {
		return fmt.Errorf("div %s by %s: %w", ds[0], ds[1], err)
	}
	return a.print(c, report{Op: "div", Operands: ds, Result: q})
}

func (a *app) newAvgCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "avg <x> [y...]",
		Short: "Arithmetic mean, truncating toward zero",
		Long: `Average decimals. The mean is truncated toward zero after --digits
fractional digits (default DECIMAL_DIVISION_DIGITS).`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			ds, err := parseOperands(args)
			if err != nil {
				return err
			}
			digits, err := a.digitsFlag(c, a.cfg.DivisionDigits)
			if err != nil {
				return err
			}
			mean, err := decimal.Avg(digits, ds...)
			if err != nil {
				return err
			}
			return a.print(c, report{Op: "avg", Operands: ds, Result: mean})
		},
	}
	c.Flags().Int("digits", 0, "fractional digits to keep")
	return c
}

func (a *app) newCmpCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "cmp <x> <y>",
		Short: "Compare two decimals, printing -1, 0 or 1",
		Args:  cobra.ExactArgs(2),
		RunE: func(c *cobra.Command, args []string) error {
			ds, err := parseOperands(args)
			if err != nil {
				return err
			}
			return a.print(c, report{Op: "cmp", Operands: ds, Result: ds[0].Cmp(ds[1])})
		},
	}
}

// digitsFlag returns --digits when set, validated to [0, maxDigits], or def.
func (a *app) digitsFlag(c *cobra.Command, def int) (int, error) {
	if !c.Flags().Changed("digits") {
		return def, nil
	}
	digits, err := c.Flags().GetInt("digits")
	if err != nil {
		return 0, err
	}
	if err := validator.Apply(
		validator.MinNum("digits", digits, 0),
		validator.MaxNum("digits", digits, maxDigits),
	); err != nil {
		return 0, err
	}
	return digits, nil
}
