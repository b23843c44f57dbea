package usecase

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math"
	"strings"

	"pnl_tracker/internal/analytics"
	"pnl_tracker/internal/domain"
	"pnl_tracker/internal/export"
	applogger "pnl_tracker/internal/infra/logger"
)

const maxHeatmapDays = 366 * 5

// PortfolioService is the query and command surface over a user's balance history. Every read
// loads the full history and configuration and recomputes; nothing derived is stored.
type PortfolioService struct {
	entries domain.EntryRepository
	config  *ConfigService
	rules   []analytics.AlertRule
	today   func() domain.Date
}

func NewPortfolioService(entries domain.EntryRepository, config *ConfigService, alerts analytics.AlertSettings) (*PortfolioService, error) {
	if entries == nil {
		return nil, errors.New("entry repository required")
	}
	if config == nil {
		return nil, errors.New("config service required")
	}
	return &PortfolioService{
		entries: entries,
		config:  config,
		rules:   analytics.DefaultAlertRules(alerts),
		today:   domain.Today,
	}, nil
}

// SetClock replaces the source of "today" used by the heatmap and snapshots.
func (s *PortfolioService) SetClock(today func() domain.Date) {
	if today != nil {
		s.today = today
	}
}

func (s *PortfolioService) Today() domain.Date {
	return s.today()
}

// ListEntries returns every entry with its derived fields, newest first.
func (s *PortfolioService) ListEntries(ctx context.Context, userID string) ([]domain.DerivedEntry, error) {
	history, cfg, err := s.load(ctx, userID)
	if err != nil {
		return nil, err
	}
	derived := analytics.DeriveAll(history, cfg.KPIs)
	for i, j := 0, len(derived)-1; i < j; i, j = i+1, j-1 {
		derived[i], derived[j] = derived[j], derived[i]
	}
	return derived, nil
}

func (s *PortfolioService) GetEntry(ctx context.Context, userID, entryID string) (domain.DerivedEntry, error) {
	entry, err := s.entries.GetEntry(ctx, userID, entryID)
	if err != nil {
		return domain.DerivedEntry{}, err
	}
	history, cfg, err := s.load(ctx, userID)
	if err != nil {
		return domain.DerivedEntry{}, err
	}
	return analytics.ComputeEntryDerived(history, entry, cfg.KPIs), nil
}

// UpsertEntry records the snapshot for entry.Date, replacing any entry already stored for that date.
func (s *PortfolioService) UpsertEntry(ctx context.Context, userID string, entry domain.Entry) (domain.DerivedEntry, error) {
	cfg, err := s.config.Configuration(ctx, userID)
	if err != nil {
		return domain.DerivedEntry{}, err
	}
	entry.ID = ""
	entry.UserID = userID
	if err := validateEntry(&entry, cfg, nil); err != nil {
		return domain.DerivedEntry{}, err
	}

	unlock := s.config.locks.Lock(userID)
	stored, err := s.entries.UpsertEntry(ctx, entry)
	unlock()
	if err != nil {
		return domain.DerivedEntry{}, err
	}
	applogger.Logger.Debug().Str("user_id", userID).Str("date", stored.Date.String()).Msg("entry upserted")

	return s.derive(ctx, userID, stored)
}

// UpdateEntry edits balances, notes and optionally the date of an existing entry. The derived
// fields of its chronological successor change accordingly on the next read.
func (s *PortfolioService) UpdateEntry(ctx context.Context, userID, entryID string, entry domain.Entry) (domain.DerivedEntry, error) {
	cfg, err := s.config.Configuration(ctx, userID)
	if err != nil {
		return domain.DerivedEntry{}, err
	}
	current, err := s.entries.GetEntry(ctx, userID, entryID)
	if err != nil {
		return domain.DerivedEntry{}, err
	}
	entry.ID = entryID
	entry.UserID = userID
	if err := validateEntry(&entry, cfg, current.Balances); err != nil {
		return domain.DerivedEntry{}, err
	}

	unlock := s.config.locks.Lock(userID)
	stored, err := s.entries.UpdateEntry(ctx, entry)
	unlock()
	if err != nil {
		return domain.DerivedEntry{}, err
	}
	applogger.Logger.Debug().Str("user_id", userID).Str("entry_id", entryID).Msg("entry updated")

	return s.derive(ctx, userID, stored)
}

// MergeBalances writes balances into the entry for date. Exchanges not listed keep their stored
// amounts and stored notes win over notes; without a stored entry this is a plain upsert.
func (s *PortfolioService) MergeBalances(ctx context.Context, userID string, date domain.Date, balances []domain.Balance, notes string) (domain.DerivedEntry, error) {
	cfg, err := s.config.Configuration(ctx, userID)
	if err != nil {
		return domain.DerivedEntry{}, err
	}

	unlock := s.config.locks.Lock(userID)
	merged, err := s.mergeWithStored(ctx, userID, date, balances, notes, cfg)
	if err != nil {
		unlock()
		return domain.DerivedEntry{}, err
	}
	stored, err := s.entries.UpsertEntry(ctx, merged)
	unlock()
	if err != nil {
		return domain.DerivedEntry{}, err
	}
	applogger.Logger.Debug().Str("user_id", userID).Str("date", date.String()).Int("balances", len(stored.Balances)).Msg("balances merged")

	return s.derive(ctx, userID, stored)
}

func (s *PortfolioService) mergeWithStored(ctx context.Context, userID string, date domain.Date, balances []domain.Balance, notes string, cfg domain.Configuration) (domain.Entry, error) {
	merged := domain.Entry{UserID: userID, Date: date, Notes: notes}

	existing, err := s.entries.ListEntries(ctx, userID)
	if err != nil {
		return domain.Entry{}, err
	}
	var retained []domain.Balance
	for _, e := range existing {
		if !e.Date.Equal(date) {
			continue
		}
		retained = e.Balances
		if strings.TrimSpace(e.Notes) != "" {
			merged.Notes = e.Notes
		}
		incoming := make(map[string]bool, len(balances))
		for _, b := range balances {
			incoming[b.ExchangeID] = true
		}
		for _, b := range e.Balances {
			if !incoming[b.ExchangeID] {
				merged.Balances = append(merged.Balances, b)
			}
		}
		break
	}
	merged.Balances = append(merged.Balances, balances...)

	if err := validateEntry(&merged, cfg, retained); err != nil {
		return domain.Entry{}, err
	}
	return merged, nil
}

func (s *PortfolioService) DeleteEntry(ctx context.Context, userID, entryID string) error {
	defer s.config.locks.Lock(userID)()
	if err := s.entries.DeleteEntry(ctx, userID, entryID); err != nil {
		return err
	}
	applogger.Logger.Debug().Str("user_id", userID).Str("entry_id", entryID).Msg("entry deleted")
	return nil
}

func (s *PortfolioService) GetStats(ctx context.Context, userID string) (domain.Stats, error) {
	history, cfg, err := s.load(ctx, userID)
	if err != nil {
		return domain.Stats{}, err
	}
	return analytics.ComputeStats(history, cfg), nil
}

func (s *PortfolioService) GetChartData(ctx context.Context, userID string) (domain.ChartData, error) {
	history, cfg, err := s.load(ctx, userID)
	if err != nil {
		return domain.ChartData{}, err
	}
	return analytics.ChartData(history, cfg.Exchanges), nil
}

func (s *PortfolioService) GetMonthlyPerformance(ctx context.Context, userID string) (domain.MonthlyPerformance, error) {
	history, _, err := s.load(ctx, userID)
	if err != nil {
		return domain.MonthlyPerformance{}, err
	}
	return analytics.ComputeMonthlyPerformance(history), nil
}

// GetHeatmap covers the trailing days ending today. days <= 0 selects the default window.
func (s *PortfolioService) GetHeatmap(ctx context.Context, userID string, days int) ([]domain.HeatmapCell, error) {
	if days <= 0 {
		days = analytics.DefaultHeatmapDays
	}
	if days > maxHeatmapDays {
		return nil, domain.NewValidationError("days", fmt.Sprintf("must not exceed %d", maxHeatmapDays))
	}
	history, _, err := s.load(ctx, userID)
	if err != nil {
		return nil, err
	}
	return analytics.Heatmap(history, s.today(), days), nil
}

// GetAlerts evaluates the alert rules; limit <= 0 returns every alert that fired.
func (s *PortfolioService) GetAlerts(ctx context.Context, userID string, limit int) ([]domain.Alert, error) {
	history, cfg, err := s.load(ctx, userID)
	if err != nil {
		return nil, err
	}
	alerts := analytics.EvaluateAlerts(s.rules, analytics.AlertInput{
		Stats:    analytics.ComputeStats(history, cfg),
		Recent:   analytics.DeriveAll(history, cfg.KPIs),
		Currency: cfg.Currency,
	})
	if limit > 0 && len(alerts) > limit {
		alerts = alerts[:limit]
	}
	return alerts, nil
}

// ExportCSV writes the user's derived history, oldest first.
func (s *PortfolioService) ExportCSV(ctx context.Context, userID string, w io.Writer) error {
	history, cfg, err := s.load(ctx, userID)
	if err != nil {
		return err
	}
	return export.WriteCSV(w, cfg, analytics.DeriveAll(history, cfg.KPIs))
}

func (s *PortfolioService) load(ctx context.Context, userID string) (analytics.History, domain.Configuration, error) {
	cfg, err := s.config.Configuration(ctx, userID)
	if err != nil {
		return analytics.History{}, domain.Configuration{}, err
	}
	entries, err := s.entries.ListEntries(ctx, userID)
	if err != nil {
		return analytics.History{}, domain.Configuration{}, err
	}
	return analytics.NewHistory(entries), cfg, nil
}

func (s *PortfolioService) derive(ctx context.Context, userID string, entry domain.Entry) (domain.DerivedEntry, error) {
	history, cfg, err := s.load(ctx, userID)
	if err != nil {
		return domain.DerivedEntry{}, err
	}
	return analytics.ComputeEntryDerived(history, entry, cfg.KPIs), nil
}

// validateEntry drops zero balances and rejects snapshots that would leave nothing to store.
// Exchange ids in retained are accepted even after their exchange was deleted, so stored history
// stays editable.
func validateEntry(entry *domain.Entry, cfg domain.Configuration, retained []domain.Balance) error {
	if entry.Date.IsZero() {
		return domain.NewValidationError("date", "required")
	}
	entry.Notes = strings.TrimSpace(entry.Notes)

	retainedIDs := make(map[string]bool, len(retained))
	for _, b := range retained {
		retainedIDs[b.ExchangeID] = true
	}

	seen := make(map[string]bool, len(entry.Balances))
	nonZero := make([]domain.Balance, 0, len(entry.Balances))
	for _, b := range entry.Balances {
		if math.IsNaN(b.Amount) || math.IsInf(b.Amount, 0) {
			return domain.NewValidationError("balances", "amounts must be finite numbers")
		}
		if b.Amount < 0 {
			return domain.NewValidationError("balances", fmt.Sprintf("amount for exchange %s must not be negative", b.ExchangeID))
		}
		if _, ok := cfg.ExchangeByID(b.ExchangeID); !ok && !retainedIDs[b.ExchangeID] {
			return domain.NewValidationError("balances", fmt.Sprintf("unknown exchange %q", b.ExchangeID))
		}
		if seen[b.ExchangeID] {
			return domain.NewValidationError("balances", fmt.Sprintf("exchange %s listed twice", b.ExchangeID))
		}
		seen[b.ExchangeID] = true
		if b.Amount == 0 {
			continue
		}
		nonZero = append(nonZero, b)
	}
	if len(nonZero) == 0 {
		return domain.NewValidationError("balances", "at least one non-zero balance is required")
	}
	entry.Balances = nonZero
	return nil
}
