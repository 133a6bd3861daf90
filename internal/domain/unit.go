package domain

// Unit is a retail denomination of the localized price.
type Unit string

const (
	UnitGram     Unit = "gram"
	UnitTenGram  Unit = "10g"
	UnitKilogram Unit = "kg"
	UnitTola     Unit = "tola"
)

// Conversion constants are fixed rationals, kept as strings so callers doing
// decimal arithmetic never round them mid-calculation.
const (
	GramsPerTroyOunce = "31.1035"
	GramsPerTola      = "11.6638038"
)

// GramsIn returns the gram weight of one unit.
func (u Unit) GramsIn() (string, bool) {
	switch u {
	case UnitGram:
		return "1", true
	case UnitTenGram:
		return "10", true
	case UnitKilogram:
		return "1000", true
	case UnitTola:
		return GramsPerTola, true
	}
	return "", false
}
