package domain

import "time"

// Provenance identifies the resolution strategy that produced a PriceRecord.
type Provenance string

const (
	ProvenanceLive         Provenance = "live-compute"
	ProvenanceLastKnown    Provenance = "last-known"
	ProvenanceSimulated    Provenance = "simulated"
	ProvenanceRemoteSeries Provenance = "remote-series"
)

// AggregatorProvenance tags a record produced by a paid aggregator.
func AggregatorProvenance(name string) Provenance {
	return Provenance("aggregator:" + name)
}

// Degraded reports whether the record carries stale or synthetic data.
func (p Provenance) Degraded() bool {
	return p == ProvenanceLastKnown || p == ProvenanceSimulated
}

// ChangeBasis names the data the 24h change figures were derived from.
type ChangeBasis string

const (
	ChangeBasisLocal  ChangeBasis = "local-ledger"
	ChangeBasisRemote ChangeBasis = "remote-series"
	ChangeBasisNone   ChangeBasis = "none"
)

// PriceRecord is the resolved, localized price. Each resolution builds a new
// record; records are never mutated after creation.
type PriceRecord struct {
	Metal    string
	Currency string
	Purity   float64

	Gram     float64
	TenGram  float64
	Kilogram float64
	Tola     float64
	BuyGram  float64

	Change        float64
	ChangePercent float64
	ChangeBasis   ChangeBasis
	High          float64
	Low           float64

	FormulaVersion string
	Source         Provenance
	ResolvedAt     time.Time
}
