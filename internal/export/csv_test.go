package export

import (
	"bytes"
	"encoding/csv"
	"testing"

	"pnl_tracker/internal/domain"
)

func TestWriteCSV(t *testing.T) {
	cfg := domain.Configuration{
		Exchanges: []domain.Exchange{
			{ID: "ex-1", Name: "kraken", DisplayName: "Kraken"},
			{ID: "ex-2", Name: "bitget", DisplayName: "Bitget"},
		},
		KPIs: []domain.KPI{{ID: "k-1", Name: "5K Goal", TargetAmount: 5000}},
	}
	entries := []domain.DerivedEntry{
		{
			Entry: domain.Entry{
				Date:     domain.MustDate("2024-01-01"),
				Balances: []domain.Balance{{ExchangeID: "ex-1", Amount: 1000}},
			},
			Total:       1000,
			KPIProgress: []domain.KPIProgress{{KPIID: "k-1", Progress: -4000}},
		},
		{
			Entry: domain.Entry{
				Date:     domain.MustDate("2024-01-02"),
				Balances: []domain.Balance{{ExchangeID: "ex-1", Amount: 1000}, {ExchangeID: "ex-2", Amount: 100.5}},
				Notes:    "added, bitget",
			},
			Total:         1100.5,
			PnLAmount:     100.5,
			PnLPercentage: 10.05,
			HasPrevious:   true,
			KPIProgress:   []domain.KPIProgress{{KPIID: "k-1", Progress: -3899.5}},
		},
	}

	var buf bytes.Buffer
	if err := WriteCSV(&buf, cfg, entries); err != nil {
		t.Fatalf("write: %v", err)
	}

	records, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("expected header plus 2 rows, got %d", len(records))
	}

	wantHeader := []string{"date", "Kraken", "Bitget", "total", "pnl_amount", "pnl_percentage", "5K Goal", "notes"}
	for i, col := range wantHeader {
		if records[0][i] != col {
			t.Fatalf("header[%d] = %q, want %q", i, records[0][i], col)
		}
	}

	want := []string{"2024-01-02", "1000.00", "100.50", "1100.50", "100.50", "10.05", "-3899.50", "added, bitget"}
	for i, v := range want {
		if records[2][i] != v {
			t.Fatalf("row[%d] = %q, want %q", i, records[2][i], v)
		}
	}
	if records[1][2] != "0.00" {
		t.Fatalf("missing exchange should be written as 0.00, got %q", records[1][2])
	}
}
