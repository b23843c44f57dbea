package domain

import (
	"context"
)

// BalanceFeed fetches an exchange's current total balance in the display currency.
type BalanceFeed interface {
	FetchBalance(ctx context.Context, key ExchangeAPIKey) (float64, error)
}

// EntryRepository persists daily balance snapshots. At most one entry exists per user and date.
type EntryRepository interface {
	UpsertEntry(ctx context.Context, entry Entry) (Entry, error)
	UpdateEntry(ctx context.Context, entry Entry) (Entry, error)
	GetEntry(ctx context.Context, userID, entryID string) (Entry, error)
	DeleteEntry(ctx context.Context, userID, entryID string) error
	ListEntries(ctx context.Context, userID string) ([]Entry, error)
}

type ExchangeRepository interface {
	CreateExchange(ctx context.Context, exchange Exchange) (Exchange, error)
	UpdateExchange(ctx context.Context, exchange Exchange) (Exchange, error)
	DeleteExchange(ctx context.Context, userID, exchangeID string) error
	ListExchanges(ctx context.Context, userID string) ([]Exchange, error)
}

type KPIRepository interface {
	CreateKPI(ctx context.Context, kpi KPI) (KPI, error)
	UpdateKPI(ctx context.Context, kpi KPI) (KPI, error)
	DeleteKPI(ctx context.Context, userID, kpiID string) error
	ListKPIs(ctx context.Context, userID string) ([]KPI, error)
}

type StartingBalanceRepository interface {
	UpsertStartingBalance(ctx context.Context, sb StartingBalance) (StartingBalance, error)
	DeleteStartingBalance(ctx context.Context, userID, exchangeID string) error
	ListStartingBalances(ctx context.Context, userID string) ([]StartingBalance, error)
}

type DepositRepository interface {
	AddDeposit(ctx context.Context, deposit CapitalDeposit) (CapitalDeposit, error)
	UpdateDeposit(ctx context.Context, deposit CapitalDeposit) (CapitalDeposit, error)
	DeleteDeposit(ctx context.Context, userID, depositID string) error
	ListDeposits(ctx context.Context, userID string) ([]CapitalDeposit, error)
}

type UserRepository interface {
	UpsertUser(ctx context.Context, user User) error
	GetUser(ctx context.Context, userID string) (User, error)
	GetUserBySessionToken(ctx context.Context, token string) (User, error)
	ListAutoSnapshotUsers(ctx context.Context) ([]User, error)
}

type APIKeyRepository interface {
	AddAPIKey(ctx context.Context, key ExchangeAPIKey) error
	UpdateAPIKeyStatus(ctx context.Context, userID, exchangeName string, active bool) error
	DeleteAPIKey(ctx context.Context, userID, exchangeName string) error
	APIKeyExists(ctx context.Context, userID, exchangeName string) (bool, error)
	ListAPIKeys(ctx context.Context, userID string) ([]ExchangeAPIKey, error)
}
