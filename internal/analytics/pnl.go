// Package analytics derives PnL, ROI, monthly rollups and display projections from a user's
// balance history. Every function is pure: results are recomputed from the inputs on each call and
// nothing is cached between calls.
package analytics

import (
	"sort"

	"pnl_tracker/internal/domain"
)

// History is an immutable, date-ascending view over a user's entries.
type History struct {
	entries []domain.Entry
}

// NewHistory copies entries and orders them by date. Storage or insertion order is ignored.
func NewHistory(entries []domain.Entry) History {
	sorted := make([]domain.Entry, len(entries))
	copy(sorted, entries)
	sort.SliceStable(sorted, func(i, j int) bool {
		if !sorted[i].Date.Equal(sorted[j].Date) {
			return sorted[i].Date.Before(sorted[j].Date)
		}
		return sorted[i].ID < sorted[j].ID
	})
	return History{entries: sorted}
}

func (h History) Len() int {
	return len(h.entries)
}

func (h History) Entries() []domain.Entry {
	out := make([]domain.Entry, len(h.entries))
	copy(out, h.entries)
	return out
}

func (h History) Latest() (domain.Entry, bool) {
	if len(h.entries) == 0 {
		return domain.Entry{}, false
	}
	return h.entries[len(h.entries)-1], true
}

// Predecessor returns the entry with the greatest date strictly before date.
func (h History) Predecessor(date domain.Date) (domain.Entry, bool) {
	i := sort.Search(len(h.entries), func(i int) bool {
		return !h.entries[i].Date.Before(date)
	})
	if i == 0 {
		return domain.Entry{}, false
	}
	return h.entries[i-1], true
}

// EntryTotal sums the entry's balances.
func EntryTotal(e domain.Entry) float64 {
	amounts := make([]float64, 0, len(e.Balances))
	for _, b := range e.Balances {
		amounts = append(amounts, b.Amount)
	}
	return sum(amounts...)
}

// ComputeEntryDerived annotates target with its total, its PnL against its chronological
// predecessor in history and its progress towards every KPI. An entry without predecessor, or
// whose predecessor totals zero, gets a zero percentage.
func ComputeEntryDerived(history History, target domain.Entry, kpis []domain.KPI) domain.DerivedEntry {
	total := EntryTotal(target)
	derived := domain.DerivedEntry{
		Entry:       target,
		Total:       total,
		KPIProgress: kpiProgress(total, kpis),
	}

	prev, ok := history.Predecessor(target.Date)
	if !ok {
		return derived
	}

	prevTotal := EntryTotal(prev)
	derived.HasPrevious = true
	derived.PnLAmount = sub(total, prevTotal)
	derived.PnLPercentage = percentOf(total-prevTotal, prevTotal)
	return derived
}

// DeriveAll annotates every entry of history, oldest first.
func DeriveAll(history History, kpis []domain.KPI) []domain.DerivedEntry {
	out := make([]domain.DerivedEntry, 0, history.Len())
	for _, e := range history.entries {
		out = append(out, ComputeEntryDerived(history, e, kpis))
	}
	return out
}

func kpiProgress(total float64, kpis []domain.KPI) []domain.KPIProgress {
	out := make([]domain.KPIProgress, 0, len(kpis))
	for _, k := range kpis {
		out = append(out, domain.KPIProgress{
			KPIID:        k.ID,
			Name:         k.Name,
			TargetAmount: k.TargetAmount,
			Progress:     sub(total, k.TargetAmount),
		})
	}
	return out
}

// ComputeStats aggregates the headline numbers over the whole history.
func ComputeStats(history History, cfg domain.Configuration) domain.Stats {
	derived := DeriveAll(history, cfg.KPIs)

	stats := domain.Stats{
		TotalEntries: len(derived),
		KPIProgress:  []domain.KPIProgress{},
	}

	var latest domain.DerivedEntry
	if len(derived) > 0 {
		latest = derived[len(derived)-1]
		latestDate := latest.Date
		stats.LatestDate = &latestDate
		stats.TotalBalance = latest.Total
		stats.DailyPnL = latest.PnLAmount
		stats.DailyPnLPercentage = latest.PnLPercentage
		stats.KPIProgress = latest.KPIProgress
	}

	var amounts, percentages []float64
	for _, d := range derived {
		if !d.HasPrevious {
			continue
		}
		amounts = append(amounts, d.PnLAmount)
		percentages = append(percentages, d.PnLPercentage)
	}
	stats.AvgDailyPnL = average(amounts)
	stats.AvgDailyPnLPercentage = average(percentages)

	monthly := ComputeMonthlyPerformance(history)
	monthlyPct := make([]float64, 0, len(monthly.Monthly))
	for _, m := range monthly.Monthly {
		monthlyPct = append(monthlyPct, m.MonthlyPnLPercentage)
	}
	stats.AvgMonthlyPnLPercentage = average(monthlyPct)

	startAmounts := make([]float64, 0, len(cfg.StartingBalances))
	currentAmounts := make([]float64, 0, len(cfg.StartingBalances))
	for _, sb := range cfg.StartingBalances {
		startAmounts = append(startAmounts, sb.StartingBalance)
		currentAmounts = append(currentAmounts, latest.AmountFor(sb.ExchangeID))
	}
	stats.TotalStartingBalance = sum(startAmounts...)
	stats.HasStartingBalance = stats.TotalStartingBalance != 0

	depositAmounts := make([]float64, 0, len(cfg.Deposits))
	for _, d := range cfg.Deposits {
		depositAmounts = append(depositAmounts, d.Amount)
	}
	stats.TotalCapitalDeposited = sum(depositAmounts...)
	stats.HasCapital = stats.TotalCapitalDeposited != 0

	// ROI needs a current balance to compare against; an empty history reports 0.
	if len(derived) > 0 {
		current := sum(currentAmounts...)
		stats.ROIVsStartingBalance = percentOf(current-stats.TotalStartingBalance, stats.TotalStartingBalance)
		stats.ROIVsCapital = percentOf(stats.TotalBalance-stats.TotalCapitalDeposited, stats.TotalCapitalDeposited)
	}

	return stats
}
