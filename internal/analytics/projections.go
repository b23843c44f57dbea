package analytics

import (
	"pnl_tracker/internal/domain"
)

// PortfolioTimeline emits one point per entry with a column for every configured exchange, so
// series stay aligned even on days an exchange was left out.
func PortfolioTimeline(history History, exchanges []domain.Exchange) []domain.TimelinePoint {
	out := make([]domain.TimelinePoint, 0, history.Len())
	for _, e := range history.entries {
		columns := make(map[string]float64, len(exchanges))
		for _, ex := range exchanges {
			columns[ex.Name] = round2(e.AmountFor(ex.ID))
		}
		out = append(out, domain.TimelinePoint{
			Date:      e.Date,
			Total:     EntryTotal(e),
			Exchanges: columns,
		})
	}
	return out
}

// ExchangeBreakdown snapshots the latest entry per exchange. Exchanges holding nothing are left out.
func ExchangeBreakdown(history History, exchanges []domain.Exchange) []domain.ExchangeSlice {
	latest, ok := history.Latest()
	if !ok {
		return []domain.ExchangeSlice{}
	}

	total := EntryTotal(latest)
	out := make([]domain.ExchangeSlice, 0, len(exchanges))
	for _, ex := range exchanges {
		amount := round2(latest.AmountFor(ex.ID))
		if amount == 0 {
			continue
		}
		out = append(out, domain.ExchangeSlice{
			ExchangeID:  ex.ID,
			Name:        ex.Name,
			DisplayName: ex.DisplayName,
			Color:       ex.Color,
			Amount:      amount,
			Percentage:  percentOf(amount, total),
		})
	}
	return out
}

// PnLTimeline lists the daily PnL of every entry that has a predecessor.
func PnLTimeline(history History) []domain.PnLPoint {
	derived := DeriveAll(history, nil)
	out := make([]domain.PnLPoint, 0, len(derived))
	for _, d := range derived {
		if !d.HasPrevious {
			continue
		}
		out = append(out, domain.PnLPoint{
			Date:          d.Date,
			PnLAmount:     d.PnLAmount,
			PnLPercentage: d.PnLPercentage,
		})
	}
	return out
}

func ChartData(history History, exchanges []domain.Exchange) domain.ChartData {
	return domain.ChartData{
		PortfolioTimeline: PortfolioTimeline(history, exchanges),
		PnLTimeline:       PnLTimeline(history),
		ExchangeBreakdown: ExchangeBreakdown(history, exchanges),
	}
}
