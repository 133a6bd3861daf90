package domain

// VariantOffset is a static per-market adjustment applied to a resolved
// base price. Loaded from configuration at startup; read-only at runtime.
type VariantOffset struct {
	Name          string  `json:"name"`
	OffsetPerGram float64 `json:"offset_per_gram"`
	LevyPct       float64 `json:"levy_pct"`
}

// VariantPrice is one location-specific derived price.
type VariantPrice struct {
	Name     string  `json:"name"`
	Gram     float64 `json:"gram"`
	TenGram  float64 `json:"ten_gram"`
	Kilogram float64 `json:"kilogram"`
	Tola     float64 `json:"tola"`
}
