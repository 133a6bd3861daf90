// Package memstore is the in-memory daily ledger used when durable storage
// is unavailable: the process keeps working, it just stops persisting.
package memstore

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/achaudhary7/SilverInfo-sub002/internal/application"
	"github.com/achaudhary7/SilverInfo-sub002/internal/domain"
)

type HistoryRepo struct {
	mu      sync.RWMutex
	entries map[string]domain.HistoricalEntry
}

var _ application.HistoryRepo = (*HistoryRepo)(nil)

func NewHistoryRepo() *HistoryRepo {
	return &HistoryRepo{entries: map[string]domain.HistoricalEntry{}}
}

func (r *HistoryRepo) RecordDay(_ context.Context, e domain.HistoricalEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	e.Date = domain.Day(e.Date)
	r.entries[e.Date.Format(domain.DateLayout)] = e
	return nil
}

func (r *HistoryRepo) Entry(_ context.Context, date time.Time) (domain.HistoricalEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	e, ok := r.entries[domain.Day(date).Format(domain.DateLayout)]
	if !ok {
		return domain.HistoricalEntry{}, domain.ErrNotFound
	}
	return e, nil
}

func (r *HistoryRepo) Range(_ context.Context, days int) ([]domain.HistoricalEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	keys := make([]string, 0, len(r.entries))
	for k := range r.entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	if days > 0 && len(keys) > days {
		keys = keys[len(keys)-days:]
	}
	out := make([]domain.HistoricalEntry, 0, len(keys))
	for _, k := range keys {
		out = append(out, r.entries[k])
	}
	return out, nil
}
