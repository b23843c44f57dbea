package analytics

import (
	"testing"

	"pnl_tracker/internal/domain"
)

func TestHeatmapLevel(t *testing.T) {
	cases := []struct {
		pct  float64
		want int
	}{
		{7.5, 4},
		{5.01, 4},
		{5, 3},
		{2.5, 3},
		{2, 2},
		{0.01, 2},
		{0, 1},
		{-1.99, 1},
		{-2, 0},
		{-10, 0},
	}
	for _, tc := range cases {
		if got := HeatmapLevel(tc.pct); got != tc.want {
			t.Fatalf("HeatmapLevel(%v) = %d, want %d", tc.pct, got, tc.want)
		}
	}
}

func TestHeatmapSparseHistory(t *testing.T) {
	today := domain.MustDate("2024-12-31")
	h := NewHistory([]domain.Entry{
		entry("e1", "2024-06-01", 1000),
		entry("e2", "2024-06-02", 1030),
	})

	cells := Heatmap(h, today, 365)
	if len(cells) != 365 {
		t.Fatalf("expected 365 cells, got %d", len(cells))
	}
	if !cells[364].Date.Equal(today) {
		t.Fatalf("window must end today, got %s", cells[364].Date)
	}
	if !cells[0].Date.Equal(today.AddDays(-364)) {
		t.Fatalf("unexpected window start %s", cells[0].Date)
	}

	missing := 0
	for _, c := range cells {
		if !c.HasEntry {
			missing++
			if c.Level != 0 {
				t.Fatalf("day without entry %s should be level 0, got %d", c.Date, c.Level)
			}
			continue
		}
		switch c.Date.String() {
		case "2024-06-01":
			if c.Level != 1 {
				t.Fatalf("first entry (0%%) should be level 1, got %d", c.Level)
			}
		case "2024-06-02":
			if c.Level != 3 || c.PnLPercentage != 3 {
				t.Fatalf("+3%% day should be level 3, got %d (%f)", c.Level, c.PnLPercentage)
			}
		default:
			t.Fatalf("unexpected entry day %s", c.Date)
		}
	}
	if missing != 363 {
		t.Fatalf("expected 363 days without entry, got %d", missing)
	}
}

func TestHeatmapDefaultsWindow(t *testing.T) {
	cells := Heatmap(NewHistory(nil), domain.MustDate("2024-03-01"), 0)
	if len(cells) != DefaultHeatmapDays {
		t.Fatalf("expected default window, got %d", len(cells))
	}
}
