package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/achaudhary7/SilverInfo-sub002/internal/domain"
)

// defaultVariants is the built-in per-city offset table, in display order.
// Offsets are local currency per gram on top of the resolved base price.
var defaultVariants = []domain.VariantOffset{
	{Name: "Delhi", OffsetPerGram: 0},
	{Name: "Mumbai", OffsetPerGram: -0.25},
	{Name: "Kolkata", OffsetPerGram: 0.50},
	{Name: "Chennai", OffsetPerGram: 1.50, LevyPct: 1.0},
	{Name: "Hyderabad", OffsetPerGram: 1.00},
	{Name: "Bengaluru", OffsetPerGram: 0.75},
	{Name: "Ahmedabad", OffsetPerGram: 0.25},
	{Name: "Jaipur", OffsetPerGram: 0.40},
}

// Variants returns the offset table, from VARIANTS_FILE when set, otherwise
// the built-in defaults. File order is preserved.
func (c Config) Variants() ([]domain.VariantOffset, error) {
	if c.VariantsFile == "" {
		out := make([]domain.VariantOffset, len(defaultVariants))
		copy(out, defaultVariants)
		return out, nil
	}
	raw, err := os.ReadFile(c.VariantsFile)
	if err != nil {
		return nil, fmt.Errorf("read variants file: %w", err)
	}
	var variants []domain.VariantOffset
	if err := json.Unmarshal(raw, &variants); err != nil {
		return nil, fmt.Errorf("parse variants file: %w", err)
	}
	return variants, nil
}
