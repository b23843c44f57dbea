package analytics

import (
	"pnl_tracker/internal/domain"
)

const DefaultHeatmapDays = 365

// HeatmapLevel buckets a daily PnL percentage into 0..4.
func HeatmapLevel(pnlPercentage float64) int {
	switch {
	case pnlPercentage > 5:
		return 4
	case pnlPercentage > 2:
		return 3
	case pnlPercentage > 0:
		return 2
	case pnlPercentage > -2:
		return 1
	default:
		return 0
	}
}

// Heatmap covers every calendar day of the window ending at today, oldest first. Days without an
// entry land in level 0 like a bad day; HasEntry tells the two apart.
func Heatmap(history History, today domain.Date, days int) []domain.HeatmapCell {
	if days <= 0 {
		days = DefaultHeatmapDays
	}

	byDay := make(map[string]domain.DerivedEntry, history.Len())
	for _, d := range DeriveAll(history, nil) {
		byDay[d.Date.String()] = d
	}

	start := today.AddDays(-(days - 1))
	cells := make([]domain.HeatmapCell, 0, days)
	for i := 0; i < days; i++ {
		day := start.AddDays(i)
		cell := domain.HeatmapCell{Date: day}
		if d, ok := byDay[day.String()]; ok {
			cell.HasEntry = true
			cell.PnLPercentage = d.PnLPercentage
			cell.Level = HeatmapLevel(d.PnLPercentage)
		}
		cells = append(cells, cell)
	}
	return cells
}
