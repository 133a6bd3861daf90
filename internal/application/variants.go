package application

import (
	"github.com/samber/lo"
	"github.com/shopspring/decimal"

	"github.com/achaudhary7/SilverInfo-sub002/internal/domain"
	"github.com/achaudhary7/SilverInfo-sub002/internal/pricing"
)

// ExpandVariants derives one location price per offset. Offsets are additive
// per gram on the already marked-up base and are never re-marked-up; the
// optional levy applies to the base gram price only. Input order is
// preserved, and the base record is left untouched.
func ExpandVariants(base domain.PriceRecord, offsets []domain.VariantOffset) []domain.VariantPrice {
	hundred := decimal.NewFromInt(100)
	baseGram := decimal.NewFromFloat(base.Gram)

	return lo.Map(offsets, func(o domain.VariantOffset, _ int) domain.VariantPrice {
		levy := baseGram.Mul(decimal.NewFromFloat(o.LevyPct)).Div(hundred)
		gram := baseGram.Add(levy).Add(decimal.NewFromFloat(o.OffsetPerGram))

		tenGram, _ := pricing.Denominate(gram, domain.UnitTenGram)
		kilogram, _ := pricing.Denominate(gram, domain.UnitKilogram)
		tola, _ := pricing.Denominate(gram, domain.UnitTola)
		return domain.VariantPrice{
			Name:     o.Name,
			Gram:     pricing.Money(gram),
			TenGram:  pricing.Money(tenGram),
			Kilogram: pricing.Money(kilogram),
			Tola:     pricing.Money(tola),
		}
	})
}
