package usecase

import (
	"context"
	"errors"
	"fmt"

	"pnl_tracker/internal/domain"
	applogger "pnl_tracker/internal/infra/logger"
)

var ErrNoBalances = errors.New("no balances fetched")

// SnapshotService records today's entry from the balances reported by the balance feed.
type SnapshotService struct {
	feed      domain.BalanceFeed
	users     domain.UserRepository
	keys      *APIKeyService
	config    *ConfigService
	portfolio *PortfolioService
}

func NewSnapshotService(feed domain.BalanceFeed, users domain.UserRepository, keys *APIKeyService, portfolio *PortfolioService) (*SnapshotService, error) {
	if feed == nil {
		return nil, fmt.Errorf("feed is required")
	}
	if users == nil {
		return nil, fmt.Errorf("user repository is required")
	}
	if keys == nil {
		return nil, fmt.Errorf("api key service is required")
	}
	if portfolio == nil {
		return nil, fmt.Errorf("portfolio service is required")
	}

	return &SnapshotService{
		feed:      feed,
		users:     users,
		keys:      keys,
		config:    portfolio.config,
		portfolio: portfolio,
	}, nil
}

// Sync snapshots every user that opted into automatic snapshots and returns how many entries were
// written. A failing user is logged and skipped.
func (s *SnapshotService) Sync(ctx context.Context) (int, error) {
	logger := applogger.Component("snapshot")

	users, err := s.users.ListAutoSnapshotUsers(ctx)
	if err != nil {
		return 0, fmt.Errorf("list users: %w", err)
	}

	written := 0
	for _, user := range users {
		if ctx.Err() != nil {
			return written, ctx.Err()
		}
		if _, err := s.SyncUser(ctx, user.UserID); err != nil {
			logger.Warn().Err(err).Str("user_id", user.UserID).Msg("snapshot skipped")
			continue
		}
		written++
	}
	logger.Info().Int("users", len(users)).Int("written", written).Msg("snapshot sync finished")
	return written, nil
}

// SyncUser fetches every active exchange key of the user and merges the amounts into today's
// entry. Balances entered by hand for other exchanges and existing notes are kept. Keys whose
// exchange is not configured for the user are ignored.
func (s *SnapshotService) SyncUser(ctx context.Context, userID string) (domain.DerivedEntry, error) {
	logger := applogger.Component("snapshot")

	keys, err := s.keys.ActiveAPIKeys(ctx, userID)
	if err != nil {
		return domain.DerivedEntry{}, fmt.Errorf("list api keys: %w", err)
	}
	exchanges, err := s.config.ListExchanges(ctx, userID)
	if err != nil {
		return domain.DerivedEntry{}, fmt.Errorf("list exchanges: %w", err)
	}
	byName := make(map[string]string, len(exchanges))
	for _, ex := range exchanges {
		byName[ex.Name] = ex.ID
	}

	var (
		balances []domain.Balance
		failures []error
	)
	for _, key := range keys {
		exchangeID, ok := byName[key.ExchangeName]
		if !ok {
			logger.Debug().Str("user_id", userID).Str("exchange", key.ExchangeName).Msg("api key has no configured exchange")
			continue
		}
		total, err := s.feed.FetchBalance(ctx, key)
		if err != nil {
			failures = append(failures, fmt.Errorf("%s: %w", key.ExchangeName, err))
			continue
		}
		if total <= 0 {
			continue
		}
		balances = append(balances, domain.Balance{ExchangeID: exchangeID, Amount: total})
	}

	if len(balances) == 0 {
		return domain.DerivedEntry{}, errors.Join(append([]error{ErrNoBalances}, failures...)...)
	}
	for _, f := range failures {
		logger.Warn().Err(f).Str("user_id", userID).Msg("balance fetch failed")
	}

	return s.portfolio.MergeBalances(ctx, userID, s.portfolio.Today(), balances, "auto snapshot")
}
