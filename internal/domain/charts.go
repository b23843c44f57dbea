package domain

import (
	"encoding/json"
)

// TimelinePoint is one day of the portfolio timeline. It serialises flat, one column per configured
// exchange name next to date and total, which is the shape chart libraries expect.
type TimelinePoint struct {
	Date      Date
	Total     float64
	Exchanges map[string]float64
}

func (p TimelinePoint) MarshalJSON() ([]byte, error) {
	row := make(map[string]any, len(p.Exchanges)+2)
	for name, amount := range p.Exchanges {
		row[name] = amount
	}
	row["date"] = p.Date.String()
	row["total"] = p.Total
	return json.Marshal(row)
}

type ChartData struct {
	PortfolioTimeline []TimelinePoint `json:"portfolio_timeline"`
	PnLTimeline       []PnLPoint      `json:"pnl_timeline"`
	ExchangeBreakdown []ExchangeSlice `json:"exchange_breakdown"`
}
