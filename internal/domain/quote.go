package domain

import "time"

// Quote is a single upstream observation. It is never mutated after the
// fetch; a newer Quote supersedes it.
type Quote struct {
	Instrument string
	Value      float64
	Unit       string
	Provider   string
	FetchedAt  time.Time
}
