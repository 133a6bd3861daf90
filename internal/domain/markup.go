package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// MarkupFormula is the ordered set of percentage steps converting an
// international base price into a local retail-equivalent price. Steps are
// applied strictly in declaration order: duty, then tax, then premium.
// Changing any step requires a Version bump so historical records stay
// attributable to the formula that produced them.
type MarkupFormula struct {
	Duty    decimal.Decimal
	Tax     decimal.Decimal
	Premium decimal.Decimal
	Version string
}

// NewMarkupFormula builds a formula from fractional percentages
// (0.10 for 10%).
func NewMarkupFormula(duty, tax, premium float64, version string) MarkupFormula {
	return MarkupFormula{
		Duty:    decimal.NewFromFloat(duty),
		Tax:     decimal.NewFromFloat(tax),
		Premium: decimal.NewFromFloat(premium),
		Version: version,
	}
}

func (f MarkupFormula) Validate() error {
	if f.Version == "" {
		return fmt.Errorf("%w: formula version is required", ErrInvalidInput)
	}
	one := decimal.NewFromInt(1)
	for _, step := range []decimal.Decimal{f.Duty, f.Tax, f.Premium} {
		if step.IsNegative() || step.GreaterThanOrEqual(one) {
			return fmt.Errorf("%w: formula step %s out of [0,1)", ErrInvalidInput, step)
		}
	}
	return nil
}

// Steps returns the multipliers in application order.
func (f MarkupFormula) Steps() []decimal.Decimal {
	one := decimal.NewFromInt(1)
	return []decimal.Decimal{
		one.Add(f.Duty),
		one.Add(f.Tax),
		one.Add(f.Premium),
	}
}
