package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/numkit/pkg/decimal"
	"github.com/dmitrymomot/numkit/pkg/logger"
	"github.com/dmitrymomot/numkit/pkg/sanitizer"
	"github.com/dmitrymomot/numkit/pkg/validator"
)

func (a *app) newCheckCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "check <x> [y...]",
		Short: "Validate decimal input",
		Long: `Validate each argument as a decimal number and print its canonical form.

Optional constraints:
  --max-scale N   at most N fractional digits (canonical form)
  --min, --max    inclusive bounds
  --currency      plain amount with at most two fractional digits

All failures are reported; the exit status is non-zero if any argument fails.`,
		Args: cobra.MinimumNArgs(1),
		RunE: a.runCheck,
	}
	c.Flags().Int("max-scale", -1, "maximum fractional digits, negative disables the check")
	c.Flags().String("min", "", "inclusive lower bound")
	c.Flags().String("max", "", "inclusive upper bound")
	c.Flags().Bool("currency", false, "require a currency amount such as 12.50")
	return c
}

func (a *app) runCheck(c *cobra.Command, args []string) error {
	maxScale, _ := c.Flags().GetInt("max-scale")
	currency, _ := c.Flags().GetBool("currency")
	lo, hasMin, err := boundFlag(c, "min")
	if err != nil {
		return err
	}
	hi, hasMax, err := boundFlag(c, "max")
	if err != nil {
		return err
	}

	var rules []validator.Rule
	var valid []decimal.Decimal
	for _, field := range args {
		raw := sanitizer.DecimalString(field)
		rules = append(rules, validator.DecimalString(field, raw))
		if currency {
			rules = append(rules, validator.CurrencyAmount(field, raw))
		}

		d, err := decimal.Parse(raw)
		if err != nil {
			continue
		}
		if maxScale >= 0 {
			rules = append(rules, validator.DecimalMaxScale(field, d, maxScale))
		}
		switch {
		case hasMin && hasMax:
			rules = append(rules, validator.DecimalRange(field, d, lo, hi))
		case hasMin:
			rules = append(rules, validator.DecimalMin(field, d, lo))
		case hasMax:
			rules = append(rules, validator.DecimalMax(field, d, hi))
		}
		valid = append(valid, d)
	}

	if err := validator.Apply(rules...); err != nil {
		verrs := validator.ExtractValidationErrors(err)
		for _, field := range verrs.Fields() {
			for _, msg := range verrs.Get(field) {
				fmt.Fprintf(c.ErrOrStderr(), "%s: %s\n", field, msg)
			}
		}
		a.log.WarnContext(c.Context(), "validation failed",
			logger.Operation("check"),
			logger.Error(err),
		)
		return fmt.Errorf("%d of %d values rejected", len(verrs.Fields()), len(args))
	}

	for _, d := range valid {
		if err := a.print(c, report{Op: "check", Operands: []decimal.Decimal{d}, Result: d}); err != nil {
			return err
		}
	}
	return nil
}

// boundFlag parses a decimal bound flag. ok is false when the flag is unset.
func boundFlag(c *cobra.Command, name string) (d decimal.Decimal, ok bool, err error) {
	if !c.Flags().Changed(name) {
		return decimal.Decimal{}, false, nil
	}
	s, _ := c.Flags().GetString(name)
	d, err = sanitizer.ParseDecimal(s)
	if err != nil {
		return decimal.Decimal{}, false, fmt.Errorf("--%s: %w", name, err)
	}
	return d, true, nil
}
