package application

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/achaudhary7/SilverInfo-sub002/internal/domain"
	"github.com/achaudhary7/SilverInfo-sub002/internal/pricing"
)

// PricingParams carries the static localization configuration shared by all
// strategies: what is priced, in which currency, at which purity, and under
// which markup formula.
type PricingParams struct {
	Metal    string
	Currency string
	Purity   float64
	Formula  domain.MarkupFormula

	// SpreadPct is the buy-side discount off the sell price, as a fraction.
	SpreadPct float64
	// BandPct sizes the high/low window estimate when upstreams provide no
	// intraday range, as a fraction.
	BandPct float64
}

// Record builds a PriceRecord from a marked-up per-gram price. Derived units
// come from the same unrounded gram value, so kilogram stays 1000x gram
// within output rounding.
func (p PricingParams) Record(gram decimal.Decimal, source domain.Provenance, now time.Time) domain.PriceRecord {
	one := decimal.NewFromInt(1)
	tenGram, _ := pricing.Denominate(gram, domain.UnitTenGram)
	kilogram, _ := pricing.Denominate(gram, domain.UnitKilogram)
	tola, _ := pricing.Denominate(gram, domain.UnitTola)
	spread := decimal.NewFromFloat(p.SpreadPct)
	band := decimal.NewFromFloat(p.BandPct)

	return domain.PriceRecord{
		Metal:          p.Metal,
		Currency:       p.Currency,
		Purity:         p.Purity,
		Gram:           pricing.Money(gram),
		TenGram:        pricing.Money(tenGram),
		Kilogram:       pricing.Money(kilogram),
		Tola:           pricing.Money(tola),
		BuyGram:        pricing.Money(gram.Mul(one.Sub(spread))),
		High:           pricing.Money(gram.Mul(one.Add(band))),
		Low:            pricing.Money(gram.Mul(one.Sub(band))),
		ChangeBasis:    domain.ChangeBasisNone,
		FormulaVersion: p.Formula.Version,
		Source:         source,
		ResolvedAt:     now.UTC(),
	}
}

// RecordFromGram builds a PriceRecord from an already marked-up float gram
// price (ledger reads, simulated seeds). No markup is re-applied.
func (p PricingParams) RecordFromGram(gram float64, source domain.Provenance, now time.Time) domain.PriceRecord {
	return p.Record(decimal.NewFromFloat(gram), source, now)
}
