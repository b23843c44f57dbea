package analytics

import (
	"pnl_tracker/internal/domain"
)

type monthBucket struct {
	key     string
	entries []domain.DerivedEntry
}

// ComputeMonthlyPerformance rolls the history up by calendar month. A month's PnL is measured from
// the true chronological predecessor of its first entry, however many months back that is; the
// very first month is measured from its own first entry. Months are returned most recent first.
func ComputeMonthlyPerformance(history History) domain.MonthlyPerformance {
	derived := DeriveAll(history, nil)

	var buckets []*monthBucket
	index := make(map[string]*monthBucket)
	for _, d := range derived {
		key := d.Date.MonthKey()
		b, ok := index[key]
		if !ok {
			b = &monthBucket{key: key}
			index[key] = b
			buckets = append(buckets, b)
		}
		b.entries = append(b.entries, d)
	}

	summaries := make([]domain.MonthSummary, 0, len(buckets))
	for _, b := range buckets {
		summaries = append(summaries, summarizeMonth(history, b))
	}

	out := domain.MonthlyPerformance{
		Monthly: make([]domain.MonthSummary, 0, len(summaries)),
	}
	if len(summaries) == 0 {
		return out
	}

	best, worst := summaries[0], summaries[0]
	for _, s := range summaries[1:] {
		if s.MonthlyPnLPercentage > best.MonthlyPnLPercentage {
			best = s
		}
		if s.MonthlyPnLPercentage < worst.MonthlyPnLPercentage {
			worst = s
		}
	}
	out.BestMonth = &best
	out.WorstMonth = &worst

	for i := len(summaries) - 1; i >= 0; i-- {
		out.Monthly = append(out.Monthly, summaries[i])
	}
	return out
}

func summarizeMonth(history History, b *monthBucket) domain.MonthSummary {
	first := b.entries[0]
	last := b.entries[len(b.entries)-1]

	base := first.Total
	if prev, ok := history.Predecessor(first.Date); ok {
		base = EntryTotal(prev)
	}

	daily := make([]float64, 0, len(b.entries))
	for _, e := range b.entries {
		daily = append(daily, e.PnLPercentage)
	}

	return domain.MonthSummary{
		Month:                b.key,
		TradingDays:          len(b.entries),
		StartBalance:         base,
		EndBalance:           last.Total,
		MonthlyPnLAmount:     sub(last.Total, base),
		MonthlyPnLPercentage: percentOf(last.Total-base, base),
		AvgDailyPnL:          average(daily),
	}
}
