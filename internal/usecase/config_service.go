package usecase

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"

	"pnl_tracker/internal/config"
	"pnl_tracker/internal/domain"
	applogger "pnl_tracker/internal/infra/logger"
)

// ConfigService owns a user's exchanges, KPIs, starting balances and deposits.
type ConfigService struct {
	exchanges domain.ExchangeRepository
	kpis      domain.KPIRepository
	starting  domain.StartingBalanceRepository
	deposits  domain.DepositRepository
	defaults  *config.Defaults
	currency  string
	locks     *UserLocks
}

type ConfigRepositories struct {
	Exchanges        domain.ExchangeRepository
	KPIs             domain.KPIRepository
	StartingBalances domain.StartingBalanceRepository
	Deposits         domain.DepositRepository
}

func NewConfigService(repos ConfigRepositories, defaults *config.Defaults, currency string, locks *UserLocks) (*ConfigService, error) {
	if repos.Exchanges == nil {
		return nil, errors.New("exchange repository required")
	}
	if repos.KPIs == nil {
		return nil, errors.New("kpi repository required")
	}
	if repos.StartingBalances == nil {
		return nil, errors.New("starting balance repository required")
	}
	if repos.Deposits == nil {
		return nil, errors.New("deposit repository required")
	}
	if defaults == nil {
		return nil, errors.New("defaults required")
	}
	if locks == nil {
		locks = NewUserLocks()
	}
	return &ConfigService{
		exchanges: repos.Exchanges,
		kpis:      repos.KPIs,
		starting:  repos.StartingBalances,
		deposits:  repos.Deposits,
		defaults:  defaults,
		currency:  strings.ToUpper(strings.TrimSpace(currency)),
		locks:     locks,
	}, nil
}

// Configuration loads everything the engine joins against at query time.
func (s *ConfigService) Configuration(ctx context.Context, userID string) (domain.Configuration, error) {
	exchanges, err := s.exchanges.ListExchanges(ctx, userID)
	if err != nil {
		return domain.Configuration{}, fmt.Errorf("list exchanges: %w", err)
	}
	kpis, err := s.kpis.ListKPIs(ctx, userID)
	if err != nil {
		return domain.Configuration{}, fmt.Errorf("list kpis: %w", err)
	}
	starting, err := s.starting.ListStartingBalances(ctx, userID)
	if err != nil {
		return domain.Configuration{}, fmt.Errorf("list starting balances: %w", err)
	}
	deposits, err := s.deposits.ListDeposits(ctx, userID)
	if err != nil {
		return domain.Configuration{}, fmt.Errorf("list deposits: %w", err)
	}
	return domain.Configuration{
		Exchanges:        exchanges,
		KPIs:             kpis,
		StartingBalances: starting,
		Deposits:         deposits,
		Currency:         s.currency,
	}, nil
}

func (s *ConfigService) Currency() string {
	return s.currency
}

func (s *ConfigService) ListExchanges(ctx context.Context, userID string) ([]domain.Exchange, error) {
	return s.exchanges.ListExchanges(ctx, userID)
}

func (s *ConfigService) CreateExchange(ctx context.Context, userID string, ex domain.Exchange) (domain.Exchange, error) {
	ex.ID = ""
	ex.UserID = userID
	if err := normalizeExchange(&ex); err != nil {
		return domain.Exchange{}, err
	}
	defer s.locks.Lock(userID)()
	return s.exchanges.CreateExchange(ctx, ex)
}

func (s *ConfigService) UpdateExchange(ctx context.Context, userID, exchangeID string, ex domain.Exchange) (domain.Exchange, error) {
	ex.ID = exchangeID
	ex.UserID = userID
	if err := normalizeExchange(&ex); err != nil {
		return domain.Exchange{}, err
	}
	defer s.locks.Lock(userID)()
	return s.exchanges.UpdateExchange(ctx, ex)
}

func (s *ConfigService) DeleteExchange(ctx context.Context, userID, exchangeID string) error {
	defer s.locks.Lock(userID)()
	return s.exchanges.DeleteExchange(ctx, userID, exchangeID)
}

func (s *ConfigService) ListKPIs(ctx context.Context, userID string) ([]domain.KPI, error) {
	return s.kpis.ListKPIs(ctx, userID)
}

func (s *ConfigService) CreateKPI(ctx context.Context, userID string, kpi domain.KPI) (domain.KPI, error) {
	kpi.ID = ""
	kpi.UserID = userID
	if err := validateKPI(&kpi); err != nil {
		return domain.KPI{}, err
	}
	defer s.locks.Lock(userID)()
	return s.kpis.CreateKPI(ctx, kpi)
}

func (s *ConfigService) UpdateKPI(ctx context.Context, userID, kpiID string, kpi domain.KPI) (domain.KPI, error) {
	kpi.ID = kpiID
	kpi.UserID = userID
	if err := validateKPI(&kpi); err != nil {
		return domain.KPI{}, err
	}
	defer s.locks.Lock(userID)()
	return s.kpis.UpdateKPI(ctx, kpi)
}

func (s *ConfigService) DeleteKPI(ctx context.Context, userID, kpiID string) error {
	defer s.locks.Lock(userID)()
	return s.kpis.DeleteKPI(ctx, userID, kpiID)
}

func (s *ConfigService) ListStartingBalances(ctx context.Context, userID string) ([]domain.StartingBalance, error) {
	return s.starting.ListStartingBalances(ctx, userID)
}

// SetStartingBalance upserts the baseline for one configured exchange.
func (s *ConfigService) SetStartingBalance(ctx context.Context, userID, exchangeID string, amount float64, startingDate domain.Date) (domain.StartingBalance, error) {
	if !isFiniteNonNegative(amount) {
		return domain.StartingBalance{}, domain.NewValidationError("starting_balance", "must be a non-negative number")
	}
	if err := s.requireExchange(ctx, userID, exchangeID); err != nil {
		return domain.StartingBalance{}, err
	}
	defer s.locks.Lock(userID)()
	return s.starting.UpsertStartingBalance(ctx, domain.StartingBalance{
		UserID:          userID,
		ExchangeID:      exchangeID,
		StartingBalance: amount,
		StartingDate:    startingDate,
	})
}

func (s *ConfigService) DeleteStartingBalance(ctx context.Context, userID, exchangeID string) error {
	defer s.locks.Lock(userID)()
	return s.starting.DeleteStartingBalance(ctx, userID, exchangeID)
}

func (s *ConfigService) ListDeposits(ctx context.Context, userID string) ([]domain.CapitalDeposit, error) {
	return s.deposits.ListDeposits(ctx, userID)
}

func (s *ConfigService) AddDeposit(ctx context.Context, userID string, deposit domain.CapitalDeposit) (domain.CapitalDeposit, error) {
	deposit.ID = ""
	deposit.UserID = userID
	if err := validateDeposit(deposit); err != nil {
		return domain.CapitalDeposit{}, err
	}
	defer s.locks.Lock(userID)()
	return s.deposits.AddDeposit(ctx, deposit)
}

func (s *ConfigService) UpdateDeposit(ctx context.Context, userID, depositID string, deposit domain.CapitalDeposit) (domain.CapitalDeposit, error) {
	deposit.ID = depositID
	deposit.UserID = userID
	if err := validateDeposit(deposit); err != nil {
		return domain.CapitalDeposit{}, err
	}
	defer s.locks.Lock(userID)()
	return s.deposits.UpdateDeposit(ctx, deposit)
}

func (s *ConfigService) DeleteDeposit(ctx context.Context, userID, depositID string) error {
	defer s.locks.Lock(userID)()
	return s.deposits.DeleteDeposit(ctx, userID, depositID)
}

// EnsureDefaults seeds exchanges, KPIs and starting balances from the defaults document. Each kind
// is only seeded when the user has none of it, so calling it repeatedly is harmless.
func (s *ConfigService) EnsureDefaults(ctx context.Context, userID string) (domain.Configuration, error) {
	defer s.locks.Lock(userID)()
	return s.ensureDefaults(ctx, userID)
}

func (s *ConfigService) ensureDefaults(ctx context.Context, userID string) (domain.Configuration, error) {
	logger := applogger.Component("config")

	exchanges, err := s.exchanges.ListExchanges(ctx, userID)
	if err != nil {
		return domain.Configuration{}, fmt.Errorf("list exchanges: %w", err)
	}
	if len(exchanges) == 0 {
		for _, def := range s.defaults.Exchanges {
			ex := domain.Exchange{UserID: userID, Name: def.Name, DisplayName: def.DisplayName, Color: def.Color}
			if err := normalizeExchange(&ex); err != nil {
				return domain.Configuration{}, err
			}
			created, err := s.exchanges.CreateExchange(ctx, ex)
			if err != nil {
				return domain.Configuration{}, fmt.Errorf("seed exchange %s: %w", def.Name, err)
			}
			exchanges = append(exchanges, created)
		}
		logger.Debug().Str("user_id", userID).Int("count", len(exchanges)).Msg("seeded exchanges")
	}

	kpis, err := s.kpis.ListKPIs(ctx, userID)
	if err != nil {
		return domain.Configuration{}, fmt.Errorf("list kpis: %w", err)
	}
	if len(kpis) == 0 {
		for _, def := range s.defaults.KPIs {
			kpi := domain.KPI{UserID: userID, Name: def.Name, TargetAmount: def.TargetAmount, Color: def.Color}
			if err := validateKPI(&kpi); err != nil {
				return domain.Configuration{}, err
			}
			if _, err := s.kpis.CreateKPI(ctx, kpi); err != nil {
				return domain.Configuration{}, fmt.Errorf("seed kpi %s: %w", def.Name, err)
			}
		}
		logger.Debug().Str("user_id", userID).Int("count", len(s.defaults.KPIs)).Msg("seeded kpis")
	}

	starting, err := s.starting.ListStartingBalances(ctx, userID)
	if err != nil {
		return domain.Configuration{}, fmt.Errorf("list starting balances: %w", err)
	}
	if len(starting) == 0 && len(s.defaults.StartingBalances) > 0 {
		byName := make(map[string]string, len(exchanges))
		for _, ex := range exchanges {
			byName[ex.Name] = ex.ID
		}
		for _, def := range s.defaults.StartingBalances {
			exchangeID, ok := byName[strings.ToLower(strings.TrimSpace(def.Exchange))]
			if !ok {
				logger.Warn().Str("exchange", def.Exchange).Msg("default starting balance references unknown exchange")
				continue
			}
			var startingDate domain.Date
			if def.StartingDate != "" {
				startingDate, err = domain.ParseDate(def.StartingDate)
				if err != nil {
					return domain.Configuration{}, domain.NewValidationError("starting_date", err.Error())
				}
			}
			_, err = s.starting.UpsertStartingBalance(ctx, domain.StartingBalance{
				UserID:          userID,
				ExchangeID:      exchangeID,
				StartingBalance: def.StartingBalance,
				StartingDate:    startingDate,
			})
			if err != nil {
				return domain.Configuration{}, fmt.Errorf("seed starting balance %s: %w", def.Exchange, err)
			}
		}
	}

	return s.Configuration(ctx, userID)
}

func (s *ConfigService) requireExchange(ctx context.Context, userID, exchangeID string) error {
	exchanges, err := s.exchanges.ListExchanges(ctx, userID)
	if err != nil {
		return fmt.Errorf("list exchanges: %w", err)
	}
	for _, ex := range exchanges {
		if ex.ID == exchangeID {
			return nil
		}
	}
	return domain.NewNotFoundError("exchange", exchangeID)
}

// Timeline rows carry these keys next to one column per exchange name.
var reservedExchangeNames = map[string]struct{}{
	"date":  {},
	"total": {},
}

func normalizeExchange(ex *domain.Exchange) error {
	ex.Name = strings.ToLower(strings.TrimSpace(ex.Name))
	if ex.Name == "" {
		return domain.NewValidationError("name", "required")
	}
	for _, r := range ex.Name {
		if !(r >= 'a' && r <= 'z' || r >= '0' && r <= '9' || r == '-' || r == '_') {
			return domain.NewValidationError("name", "may only contain letters, digits, '-' and '_'")
		}
	}
	if _, reserved := reservedExchangeNames[ex.Name]; reserved {
		return domain.NewValidationError("name", fmt.Sprintf("%q is reserved", ex.Name))
	}
	ex.DisplayName = strings.TrimSpace(ex.DisplayName)
	if ex.DisplayName == "" {
		ex.DisplayName = ex.Name
	}
	ex.Color = strings.TrimSpace(ex.Color)
	return nil
}

func validateKPI(kpi *domain.KPI) error {
	kpi.Name = strings.TrimSpace(kpi.Name)
	if kpi.Name == "" {
		return domain.NewValidationError("name", "required")
	}
	if math.IsNaN(kpi.TargetAmount) || math.IsInf(kpi.TargetAmount, 0) || kpi.TargetAmount <= 0 {
		return domain.NewValidationError("target_amount", "must be greater than zero")
	}
	return nil
}

func validateDeposit(d domain.CapitalDeposit) error {
	if math.IsNaN(d.Amount) || math.IsInf(d.Amount, 0) || d.Amount <= 0 {
		return domain.NewValidationError("amount", "must be greater than zero")
	}
	if d.DepositDate.IsZero() {
		return domain.NewValidationError("deposit_date", "required")
	}
	return nil
}

func isFiniteNonNegative(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0) && v >= 0
}
