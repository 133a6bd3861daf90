package application

import (
	"math"
	"sort"

	"github.com/samber/lo"

	"github.com/achaudhary7/SilverInfo-sub002/internal/domain"
)

// ComputeChange derives the day-over-day figures. A local prior entry wins
// outright; otherwise the last two remote series points are used; with
// neither, change is zero under the no-baseline marker rather than omitted.
func ComputeChange(todayGram float64, prior *domain.HistoricalEntry, remote []domain.SeriesPoint) (abs, pct float64, basis domain.ChangeBasis) {
	if prior != nil && prior.Gram > 0 {
		abs = todayGram - prior.Gram
		return round2(abs), round2(abs / prior.Gram * 100), domain.ChangeBasisLocal
	}
	if len(remote) >= 2 {
		prev, last := remote[len(remote)-2].Close, remote[len(remote)-1].Close
		if prev > 0 {
			abs = last - prev
			return round2(abs), round2(abs / prev * 100), domain.ChangeBasisRemote
		}
	}
	return 0, 0, domain.ChangeBasisNone
}

// MergeSeries merges ledger entries with a remote series by calendar date.
// Local entries are ground truth once captured and overwrite remote points
// for overlapping dates. The result is ordered most-recent-last.
func MergeSeries(local []domain.HistoricalEntry, remote []domain.SeriesPoint) []domain.HistoricalEntry {
	byDate := make(map[string]domain.HistoricalEntry, len(local)+len(remote))
	for _, p := range remote {
		d := domain.Day(p.Date)
		byDate[d.Format(domain.DateLayout)] = domain.HistoricalEntry{
			Date:   d,
			Gram:   p.Close,
			Source: domain.ProvenanceRemoteSeries,
		}
	}
	for _, e := range local {
		byDate[domain.Day(e.Date).Format(domain.DateLayout)] = e
	}

	keys := lo.Keys(byDate)
	sort.Strings(keys)
	return lo.Map(keys, func(k string, _ int) domain.HistoricalEntry {
		return byDate[k]
	})
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
