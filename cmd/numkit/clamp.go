package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/numkit/pkg/decimal"
	"github.com/dmitrymomot/numkit/pkg/sanitizer"
)

func (a *app) newClampCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "clamp <x>",
		Short: "Constrain a decimal to a range",
		Long: `Constrain a decimal to the inclusive range given by --min and --max.
Either bound may be omitted. --non-negative maps negative values to 0 after
the bounds are applied.`,
		Args: cobra.ExactArgs(1),
		RunE: a.runClamp,
	}
	c.Flags().String("min", "", "inclusive lower bound")
	c.Flags().String("max", "", "inclusive upper bound")
	c.Flags().Bool("non-negative", false, "replace negative results with 0")
	return c
}

func (a *app) runClamp(c *cobra.Command, args []string) error {
	ds, err := parseOperands(args)
	if err != nil {
		return err
	}
	lo, hasMin, err := boundFlag(c, "min")
	if err != nil {
		return err
	}
	hi, hasMax, err := boundFlag(c, "max")
	if err != nil {
		return err
	}
	nonNegative, _ := c.Flags().GetBool("non-negative")

	var steps []func(decimal.Decimal) decimal.Decimal
	switch {
	case hasMin && hasMax:
		if lo.Cmp(hi) > 0 {
			return fmt.Errorf("--min %s is greater than --max %s", lo, hi)
		}
		steps = append(steps, func(d decimal.Decimal) decimal.Decimal { return sanitizer.ClampDecimal(d, lo, hi) })
	case hasMin:
		steps = append(steps, func(d decimal.Decimal) decimal.Decimal { return sanitizer.ClampDecimalMin(d, lo) })
	case hasMax:
		steps = append(steps, func(d decimal.Decimal) decimal.Decimal { return sanitizer.ClampDecimalMax(d, hi) })
	}
	if nonNegative {
		steps = append(steps, sanitizer.ZeroIfNegativeDecimal)
	}

	return a.print(c, report{Op: "clamp", Operands: ds, Result: sanitizer.Apply(ds[0], steps...)})
}
