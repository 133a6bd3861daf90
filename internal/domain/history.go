package domain

import "time"

// DateLayout is the calendar-date key format of the daily ledger.
const DateLayout = "2006-01-02"

// Day truncates t to its UTC calendar date.
func Day(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// HistoricalEntry is one resolved per-gram price keyed by calendar date.
// The most recent write for a date wins.
type HistoricalEntry struct {
	Date           time.Time
	Gram           float64
	Source         Provenance
	FormulaVersion string
	RecordedAt     time.Time
}

// SeriesPoint is one close value of a remote historical series.
type SeriesPoint struct {
	Date  time.Time
	Close float64
}
