package usecase

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"pnl_tracker/internal/domain"
)

func seeded(t *testing.T) (testServices, domain.Configuration) {
	t.Helper()
	svc := newTestServices(t)
	cfg, err := svc.config.EnsureDefaults(context.Background(), "u1")
	if err != nil {
		t.Fatalf("ensure defaults: %v", err)
	}
	if len(cfg.Exchanges) != 3 || len(cfg.KPIs) != 3 {
		t.Fatalf("unexpected seeded configuration %+v", cfg)
	}
	return svc, cfg
}

func snapshot(date string, balances ...domain.Balance) domain.Entry {
	return domain.Entry{Date: domain.MustDate(date), Balances: balances}
}

func TestUpsertEntryValidation(t *testing.T) {
	svc, cfg := seeded(t)
	ctx := context.Background()
	kraken := cfg.Exchanges[0].ID

	cases := map[string]domain.Entry{
		"all zero":      snapshot("2024-01-01", domain.Balance{ExchangeID: kraken, Amount: 0}),
		"empty":         snapshot("2024-01-01"),
		"negative":      snapshot("2024-01-01", domain.Balance{ExchangeID: kraken, Amount: -5}),
		"unknown":       snapshot("2024-01-01", domain.Balance{ExchangeID: "nope", Amount: 5}),
		"missing date":  {Balances: []domain.Balance{{ExchangeID: kraken, Amount: 5}}},
		"duplicate ids": snapshot("2024-01-01", domain.Balance{ExchangeID: kraken, Amount: 5}, domain.Balance{ExchangeID: kraken, Amount: 6}),
	}
	for name, entry := range cases {
		if _, err := svc.portfolio.UpsertEntry(ctx, "u1", entry); !domain.IsValidation(err) {
			t.Fatalf("%s: expected validation error, got %v", name, err)
		}
	}
	if len(svc.store.entries) != 0 {
		t.Fatalf("rejected entries must not be stored")
	}
}

func TestUpsertEntryDropsZeroBalancesAndReplacesSameDate(t *testing.T) {
	svc, cfg := seeded(t)
	ctx := context.Background()
	kraken, bitget := cfg.Exchanges[0].ID, cfg.Exchanges[1].ID

	first, err := svc.portfolio.UpsertEntry(ctx, "u1", snapshot("2024-01-01",
		domain.Balance{ExchangeID: kraken, Amount: 1000},
		domain.Balance{ExchangeID: bitget, Amount: 0},
	))
	if err != nil {
		t.Fatalf("upsert: %v", err)
	}
	if len(first.Balances) != 1 {
		t.Fatalf("zero balances should be dropped, got %+v", first.Balances)
	}
	if first.HasPrevious || first.PnLAmount != 0 {
		t.Fatalf("first entry has no predecessor: %+v", first)
	}

	second, err := svc.portfolio.UpsertEntry(ctx, "u1", snapshot("2024-01-01", domain.Balance{ExchangeID: kraken, Amount: 1500}))
	if err != nil {
		t.Fatalf("second upsert: %v", err)
	}
	if second.ID != first.ID || second.Total != 1500 {
		t.Fatalf("same date should replace the entry, got %+v", second)
	}
}

func TestEditAndDeletePropagateToSuccessor(t *testing.T) {
	svc, cfg := seeded(t)
	ctx := context.Background()
	kraken := cfg.Exchanges[0].ID
	bal := func(v float64) domain.Balance { return domain.Balance{ExchangeID: kraken, Amount: v} }

	if _, err := svc.portfolio.UpsertEntry(ctx, "u1", snapshot("2024-01-01", bal(1000))); err != nil {
		t.Fatalf("upsert: %v", err)
	}
	middle, err := svc.portfolio.UpsertEntry(ctx, "u1", snapshot("2024-01-02", bal(1200)))
	if err != nil {
		t.Fatalf("upsert: %v", err)
	}
	last, err := svc.portfolio.UpsertEntry(ctx, "u1", snapshot("2024-01-03", bal(1320)))
	if err != nil {
		t.Fatalf("upsert: %v", err)
	}
	if last.PnLAmount != 120 || last.PnLPercentage != 10 {
		t.Fatalf("unexpected pnl %+v", last)
	}

	if _, err := svc.portfolio.UpdateEntry(ctx, "u1", middle.ID, snapshot("2024-01-02", bal(1100))); err != nil {
		t.Fatalf("update: %v", err)
	}
	got, err := svc.portfolio.GetEntry(ctx, "u1", last.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.PnLAmount != 220 || got.PnLPercentage != 20 {
		t.Fatalf("successor should follow the edit, got %+v", got)
	}

	if err := svc.portfolio.DeleteEntry(ctx, "u1", middle.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	got, _ = svc.portfolio.GetEntry(ctx, "u1", last.ID)
	if got.PnLAmount != 320 || got.PnLPercentage != 32 {
		t.Fatalf("successor should fall back to the earlier entry, got %+v", got)
	}

	list, err := svc.portfolio.ListEntries(ctx, "u1")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != 2 || list[0].ID != last.ID {
		t.Fatalf("expected newest first, got %+v", list)
	}
}

func TestUpdateEntryKeepsBalancesOfDeletedExchange(t *testing.T) {
	svc, _ := seeded(t)
	ctx := context.Background()

	okx, err := svc.config.CreateExchange(ctx, "u1", domain.Exchange{Name: "okx"})
	if err != nil {
		t.Fatalf("create exchange: %v", err)
	}
	entry, err := svc.portfolio.UpsertEntry(ctx, "u1", snapshot("2024-01-01", domain.Balance{ExchangeID: okx.ID, Amount: 700}))
	if err != nil {
		t.Fatalf("upsert: %v", err)
	}
	if err := svc.config.DeleteExchange(ctx, "u1", okx.ID); err != nil {
		t.Fatalf("delete exchange: %v", err)
	}

	edit := snapshot("2024-01-01", domain.Balance{ExchangeID: okx.ID, Amount: 700})
	edit.Notes = "closed okx"
	got, err := svc.portfolio.UpdateEntry(ctx, "u1", entry.ID, edit)
	if err != nil {
		t.Fatalf("editing notes of an entry holding a deleted exchange: %v", err)
	}
	if got.Total != 700 || got.Notes != "closed okx" {
		t.Fatalf("unexpected entry %+v", got)
	}

	other := snapshot("2024-01-01", domain.Balance{ExchangeID: "never-existed", Amount: 5})
	if _, err := svc.portfolio.UpdateEntry(ctx, "u1", entry.ID, other); !domain.IsValidation(err) {
		t.Fatalf("unknown exchange should still be rejected, got %v", err)
	}
	if _, err := svc.portfolio.UpsertEntry(ctx, "u1", snapshot("2024-01-02", domain.Balance{ExchangeID: okx.ID, Amount: 5})); !domain.IsValidation(err) {
		t.Fatalf("new entries may not reference a deleted exchange, got %v", err)
	}
}

func TestUpdateEntryOntoUsedDateConflicts(t *testing.T) {
	svc, cfg := seeded(t)
	ctx := context.Background()
	kraken := cfg.Exchanges[0].ID
	bal := domain.Balance{ExchangeID: kraken, Amount: 10}

	svc.portfolio.UpsertEntry(ctx, "u1", snapshot("2024-01-01", bal))
	moved, _ := svc.portfolio.UpsertEntry(ctx, "u1", snapshot("2024-01-02", bal))

	if _, err := svc.portfolio.UpdateEntry(ctx, "u1", moved.ID, snapshot("2024-01-01", bal)); !errors.Is(err, domain.ErrConflict) {
		t.Fatalf("expected conflict, got %v", err)
	}
	if _, err := svc.portfolio.UpdateEntry(ctx, "u1", "missing", snapshot("2024-01-05", bal)); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
	if _, err := svc.portfolio.GetEntry(ctx, "u2", moved.ID); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("entries are private to their user, got %v", err)
	}
}

func TestStatsUseStartingBalancesAndDeposits(t *testing.T) {
	svc, cfg := seeded(t)
	ctx := context.Background()
	kraken, bitget := cfg.Exchanges[0].ID, cfg.Exchanges[1].ID

	if _, err := svc.config.SetStartingBalance(ctx, "u1", kraken, 1000, domain.MustDate("2024-01-01")); err != nil {
		t.Fatalf("starting balance: %v", err)
	}
	if _, err := svc.config.AddDeposit(ctx, "u1", domain.CapitalDeposit{Amount: 1500, DepositDate: domain.MustDate("2024-01-01")}); err != nil {
		t.Fatalf("deposit: %v", err)
	}
	if _, err := svc.portfolio.UpsertEntry(ctx, "u1", snapshot("2024-01-05",
		domain.Balance{ExchangeID: kraken, Amount: 1200},
		domain.Balance{ExchangeID: bitget, Amount: 600},
	)); err != nil {
		t.Fatalf("upsert: %v", err)
	}

	stats, err := svc.portfolio.GetStats(ctx, "u1")
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	if stats.TotalBalance != 1800 || stats.TotalEntries != 1 {
		t.Fatalf("unexpected stats %+v", stats)
	}
	if stats.ROIVsStartingBalance != 20 {
		t.Fatalf("roi vs start should only cover exchanges with a starting balance, got %v", stats.ROIVsStartingBalance)
	}
	if stats.ROIVsCapital != 20 {
		t.Fatalf("unexpected roi vs capital %v", stats.ROIVsCapital)
	}
}

func TestHeatmapAlertsAndExport(t *testing.T) {
	svc, cfg := seeded(t)
	ctx := context.Background()
	kraken := cfg.Exchanges[0].ID
	for i, v := range []float64{4000, 4200, 4400, 4600, 4800} {
		date := domain.MustDate("2024-03-06").AddDays(i)
		if _, err := svc.portfolio.UpsertEntry(ctx, "u1", domain.Entry{Date: date, Balances: []domain.Balance{{ExchangeID: kraken, Amount: v}}}); err != nil {
			t.Fatalf("upsert: %v", err)
		}
	}

	cells, err := svc.portfolio.GetHeatmap(ctx, "u1", 0)
	if err != nil {
		t.Fatalf("heatmap: %v", err)
	}
	if len(cells) != 365 || cells[len(cells)-1].Date.String() != "2024-03-10" {
		t.Fatalf("expected 365 cells ending today, got %d", len(cells))
	}
	if _, err := svc.portfolio.GetHeatmap(ctx, "u1", 100000); !domain.IsValidation(err) {
		t.Fatalf("expected validation error for oversized window, got %v", err)
	}

	alerts, err := svc.portfolio.GetAlerts(ctx, "u1", 0)
	if err != nil {
		t.Fatalf("alerts: %v", err)
	}
	if len(alerts) < 2 {
		t.Fatalf("expected streak and goal alerts, got %+v", alerts)
	}
	if alerts[0].Priority != domain.AlertPriorityHigh {
		t.Fatalf("high priority alerts come first, got %+v", alerts[0])
	}
	limited, _ := svc.portfolio.GetAlerts(ctx, "u1", 1)
	if len(limited) != 1 {
		t.Fatalf("limit not applied: %d", len(limited))
	}

	var buf bytes.Buffer
	if err := svc.portfolio.ExportCSV(ctx, "u1", &buf); err != nil {
		t.Fatalf("export: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 6 || !strings.HasPrefix(lines[0], "date,Kraken,Bitget,Binance,total") {
		t.Fatalf("unexpected csv:\n%s", buf.String())
	}
	if !strings.HasPrefix(lines[1], "2024-03-06,") {
		t.Fatalf("rows should be oldest first, got %s", lines[1])
	}
}
