// Package pricing holds the pure unit and markup arithmetic. It never fails
// with a numeric artifact: bad input comes back as a typed error, and
// rounding happens only at the final output stage.
package pricing

import (
	"fmt"
	"math"

	"github.com/shopspring/decimal"

	"github.com/achaudhary7/SilverInfo-sub002/internal/domain"
)

var gramsPerTroyOunce = decimal.RequireFromString(domain.GramsPerTroyOunce)

// Localize converts an international spot quote (currency-of-quote per troy
// ounce) and an exchange rate into a local marked-up price per gram.
func Localize(spotPerOunce, fxRate, purity float64, f domain.MarkupFormula) (decimal.Decimal, error) {
	if !positive(spotPerOunce) {
		return decimal.Decimal{}, fmt.Errorf("%w: spot %v", domain.ErrInvalidInput, spotPerOunce)
	}
	if !positive(fxRate) {
		return decimal.Decimal{}, fmt.Errorf("%w: fx rate %v", domain.ErrInvalidInput, fxRate)
	}
	base := decimal.NewFromFloat(spotPerOunce).
		Mul(decimal.NewFromFloat(fxRate)).
		Div(gramsPerTroyOunce)
	return markup(base, purity, f)
}

// MarkupGram applies purity and markup to a base price already expressed in
// local currency per fine gram (the aggregator path).
func MarkupGram(gramBase, purity float64, f domain.MarkupFormula) (decimal.Decimal, error) {
	if !positive(gramBase) {
		return decimal.Decimal{}, fmt.Errorf("%w: gram base %v", domain.ErrInvalidInput, gramBase)
	}
	return markup(decimal.NewFromFloat(gramBase), purity, f)
}

// markup applies the purity multiplier first, then the formula steps strictly
// in order. Swapping steps changes the result, so the order is owned here and
// nowhere else.
func markup(base decimal.Decimal, purity float64, f domain.MarkupFormula) (decimal.Decimal, error) {
	if !positive(purity) || purity > 1 {
		return decimal.Decimal{}, fmt.Errorf("%w: purity %v", domain.ErrInvalidInput, purity)
	}
	if err := f.Validate(); err != nil {
		return decimal.Decimal{}, err
	}
	out := base.Mul(decimal.NewFromFloat(purity))
	for _, step := range f.Steps() {
		out = out.Mul(step)
	}
	return out, nil
}

// Denominate converts a per-gram price into the target denomination.
func Denominate(gram decimal.Decimal, u domain.Unit) (decimal.Decimal, error) {
	grams, ok := u.GramsIn()
	if !ok {
		return decimal.Decimal{}, fmt.Errorf("%w: unknown unit %q", domain.ErrInvalidInput, u)
	}
	return gram.Mul(decimal.RequireFromString(grams)), nil
}

// Money rounds a computed price for output. All intermediate math stays
// unrounded.
func Money(d decimal.Decimal) float64 {
	return d.Round(2).InexactFloat64()
}

func positive(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0) && v > 0
}
