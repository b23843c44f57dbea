// Package export serialises derived entries for download.
package export

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/shopspring/decimal"

	"pnl_tracker/internal/domain"
)

// WriteCSV writes one row per entry, oldest first. Exchange and KPI columns follow the order of the
// configuration so that every row has the same shape.
func WriteCSV(w io.Writer, cfg domain.Configuration, entries []domain.DerivedEntry) error {
	cw := csv.NewWriter(w)

	header := make([]string, 0, 5+len(cfg.Exchanges)+len(cfg.KPIs))
	header = append(header, "date")
	for _, ex := range cfg.Exchanges {
		header = append(header, ex.DisplayName)
	}
	header = append(header, "total", "pnl_amount", "pnl_percentage")
	for _, kpi := range cfg.KPIs {
		header = append(header, kpi.Name)
	}
	header = append(header, "notes")
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	for _, e := range entries {
		row := make([]string, 0, len(header))
		row = append(row, e.Date.String())
		for _, ex := range cfg.Exchanges {
			row = append(row, amount(e.AmountFor(ex.ID)))
		}
		row = append(row, amount(e.Total), amount(e.PnLAmount), amount(e.PnLPercentage))
		for _, kpi := range cfg.KPIs {
			row = append(row, amount(progressFor(e, kpi.ID)))
		}
		row = append(row, e.Notes)
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write row %s: %w", e.Date, err)
		}
	}

	cw.Flush()
	return cw.Error()
}

func amount(v float64) string {
	return decimal.NewFromFloat(v).StringFixed(2)
}

func progressFor(e domain.DerivedEntry, kpiID string) float64 {
	for _, p := range e.KPIProgress {
		if p.KPIID == kpiID {
			return p.Progress
		}
	}
	return 0
}
