package repository

import (
	"encoding/json"
	"fmt"
	"time"

	"gorm.io/datatypes"

	"pnl_tracker/internal/domain"
)

type UserModel struct {
	UserID       string    `gorm:"column:user_id;primaryKey"`
	Email        *string   `gorm:"column:email"`
	Name         *string   `gorm:"column:name"`
	SessionToken string    `gorm:"column:session_token;uniqueIndex;not null"`
	AutoSnapshot bool      `gorm:"column:auto_snapshot;not null;default:false"`
	LastSeen     time.Time `gorm:"column:last_seen"`
	CreatedAt    time.Time `gorm:"column:created_at"`
	UpdatedAt    time.Time `gorm:"column:updated_at"`
}

func (UserModel) TableName() string {
	return "users"
}

func toUserModel(user domain.User) UserModel {
	return UserModel{
		UserID:       user.UserID,
		Email:        stringPointerOrNil(user.Email),
		Name:         stringPointerOrNil(user.Name),
		SessionToken: user.SessionToken,
		AutoSnapshot: user.AutoSnapshot,
		LastSeen:     user.LastSeen,
	}
}

func (m UserModel) toDomain() domain.User {
	return domain.User{
		UserID:       m.UserID,
		Email:        stringValueOrEmpty(m.Email),
		Name:         stringValueOrEmpty(m.Name),
		SessionToken: m.SessionToken,
		AutoSnapshot: m.AutoSnapshot,
		LastSeen:     m.LastSeen,
		Created:      m.CreatedAt,
		Updated:      m.UpdatedAt,
	}
}

type ExchangeModel struct {
	ID          string    `gorm:"column:id;primaryKey"`
	UserID      string    `gorm:"column:user_id;not null;uniqueIndex:idx_exchanges_user_name"`
	Name        string    `gorm:"column:name;not null;uniqueIndex:idx_exchanges_user_name"`
	DisplayName string    `gorm:"column:display_name;not null"`
	Color       *string   `gorm:"column:color"`
	CreatedAt   time.Time `gorm:"column:created_at"`
	UpdatedAt   time.Time `gorm:"column:updated_at"`
}

func (ExchangeModel) TableName() string {
	return "exchanges"
}

func toExchangeModel(ex domain.Exchange) ExchangeModel {
	return ExchangeModel{
		ID:          ex.ID,
		UserID:      ex.UserID,
		Name:        ex.Name,
		DisplayName: ex.DisplayName,
		Color:       stringPointerOrNil(ex.Color),
	}
}

func (m ExchangeModel) toDomain() domain.Exchange {
	return domain.Exchange{
		ID:          m.ID,
		UserID:      m.UserID,
		Name:        m.Name,
		DisplayName: m.DisplayName,
		Color:       stringValueOrEmpty(m.Color),
		CreatedAt:   m.CreatedAt,
	}
}

type KPIModel struct {
	ID           string    `gorm:"column:id;primaryKey"`
	UserID       string    `gorm:"column:user_id;not null;index"`
	Name         string    `gorm:"column:name;not null"`
	TargetAmount float64   `gorm:"column:target_amount;not null"`
	Color        *string   `gorm:"column:color"`
	CreatedAt    time.Time `gorm:"column:created_at"`
	UpdatedAt    time.Time `gorm:"column:updated_at"`
}

func (KPIModel) TableName() string {
	return "kpis"
}

func toKPIModel(k domain.KPI) KPIModel {
	return KPIModel{
		ID:           k.ID,
		UserID:       k.UserID,
		Name:         k.Name,
		TargetAmount: k.TargetAmount,
		Color:        stringPointerOrNil(k.Color),
	}
}

func (m KPIModel) toDomain() domain.KPI {
	return domain.KPI{
		ID:           m.ID,
		UserID:       m.UserID,
		Name:         m.Name,
		TargetAmount: m.TargetAmount,
		Color:        stringValueOrEmpty(m.Color),
		CreatedAt:    m.CreatedAt,
	}
}

type StartingBalanceModel struct {
	UserID          string    `gorm:"column:user_id;primaryKey"`
	ExchangeID      string    `gorm:"column:exchange_id;primaryKey"`
	StartingBalance float64   `gorm:"column:starting_balance;not null"`
	StartingDate    string    `gorm:"column:starting_date"`
	CreatedAt       time.Time `gorm:"column:created_at"`
	UpdatedAt       time.Time `gorm:"column:updated_at"`
}

func (StartingBalanceModel) TableName() string {
	return "starting_balances"
}

func toStartingBalanceModel(sb domain.StartingBalance) StartingBalanceModel {
	return StartingBalanceModel{
		UserID:          sb.UserID,
		ExchangeID:      sb.ExchangeID,
		StartingBalance: sb.StartingBalance,
		StartingDate:    sb.StartingDate.String(),
	}
}

func (m StartingBalanceModel) toDomain() domain.StartingBalance {
	return domain.StartingBalance{
		UserID:          m.UserID,
		ExchangeID:      m.ExchangeID,
		StartingBalance: m.StartingBalance,
		StartingDate:    dateOrZero(m.StartingDate),
	}
}

type CapitalDepositModel struct {
	ID          string    `gorm:"column:id;primaryKey"`
	UserID      string    `gorm:"column:user_id;not null;index"`
	Amount      float64   `gorm:"column:amount;not null"`
	DepositDate string    `gorm:"column:deposit_date;not null"`
	Notes       *string   `gorm:"column:notes"`
	CreatedAt   time.Time `gorm:"column:created_at"`
	UpdatedAt   time.Time `gorm:"column:updated_at"`
}

func (CapitalDepositModel) TableName() string {
	return "capital_deposits"
}

func toCapitalDepositModel(d domain.CapitalDeposit) CapitalDepositModel {
	return CapitalDepositModel{
		ID:          d.ID,
		UserID:      d.UserID,
		Amount:      d.Amount,
		DepositDate: d.DepositDate.String(),
		Notes:       stringPointerOrNil(d.Notes),
	}
}

func (m CapitalDepositModel) toDomain() domain.CapitalDeposit {
	return domain.CapitalDeposit{
		ID:          m.ID,
		UserID:      m.UserID,
		Amount:      m.Amount,
		DepositDate: dateOrZero(m.DepositDate),
		Notes:       stringValueOrEmpty(m.Notes),
		CreatedAt:   m.CreatedAt,
	}
}

// EntryModel stores one snapshot per user and day. Dates are kept as YYYY-MM-DD text so that
// ordering and uniqueness do not depend on the driver's time zone handling.
type EntryModel struct {
	ID        string         `gorm:"column:id;primaryKey"`
	UserID    string         `gorm:"column:user_id;not null;uniqueIndex:idx_entries_user_date"`
	EntryDate string         `gorm:"column:entry_date;not null;uniqueIndex:idx_entries_user_date"`
	Balances  datatypes.JSON `gorm:"column:balances"`
	Notes     *string        `gorm:"column:notes"`
	CreatedAt time.Time      `gorm:"column:created_at"`
	UpdatedAt time.Time      `gorm:"column:updated_at"`
}

func (EntryModel) TableName() string {
	return "balance_entries"
}

type balanceRecord struct {
	ExchangeID string  `json:"exchange_id"`
	Amount     float64 `json:"amount"`
}

func toEntryModel(e domain.Entry) (EntryModel, error) {
	records := make([]balanceRecord, 0, len(e.Balances))
	for _, b := range e.Balances {
		records = append(records, balanceRecord{ExchangeID: b.ExchangeID, Amount: b.Amount})
	}
	raw, err := json.Marshal(records)
	if err != nil {
		return EntryModel{}, fmt.Errorf("encode balances: %w", err)
	}
	return EntryModel{
		ID:        e.ID,
		UserID:    e.UserID,
		EntryDate: e.Date.String(),
		Balances:  datatypes.JSON(raw),
		Notes:     stringPointerOrNil(e.Notes),
	}, nil
}

func (m EntryModel) toDomain() (domain.Entry, error) {
	var records []balanceRecord
	if len(m.Balances) > 0 {
		if err := json.Unmarshal(m.Balances, &records); err != nil {
			return domain.Entry{}, fmt.Errorf("decode balances of entry %s: %w", m.ID, err)
		}
	}
	balances := make([]domain.Balance, 0, len(records))
	for _, r := range records {
		balances = append(balances, domain.Balance{ExchangeID: r.ExchangeID, Amount: r.Amount})
	}
	return domain.Entry{
		ID:        m.ID,
		UserID:    m.UserID,
		Date:      dateOrZero(m.EntryDate),
		Balances:  balances,
		Notes:     stringValueOrEmpty(m.Notes),
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}, nil
}

type ExchangeAPIKeyModel struct {
	ID           string    `gorm:"column:id;primaryKey"`
	UserID       string    `gorm:"column:user_id;not null;uniqueIndex:idx_api_keys_user_exchange"`
	ExchangeName string    `gorm:"column:exchange_name;not null;uniqueIndex:idx_api_keys_user_exchange"`
	APIKey       string    `gorm:"column:api_key;not null"`
	APISecret    string    `gorm:"column:api_secret;not null"`
	Enabled      bool      `gorm:"column:enabled;not null"`
	CreatedAt    time.Time `gorm:"column:created_at"`
	UpdatedAt    time.Time `gorm:"column:updated_at"`
}

func (ExchangeAPIKeyModel) TableName() string {
	return "exchange_api_keys"
}

func toExchangeAPIKeyModel(k domain.ExchangeAPIKey) ExchangeAPIKeyModel {
	return ExchangeAPIKeyModel{
		ID:           k.ID,
		UserID:       k.UserID,
		ExchangeName: k.ExchangeName,
		APIKey:       k.APIKey,
		APISecret:    k.APISecret,
		Enabled:      k.Active,
	}
}

func (m ExchangeAPIKeyModel) toDomain() domain.ExchangeAPIKey {
	return domain.ExchangeAPIKey{
		ID:           m.ID,
		UserID:       m.UserID,
		ExchangeName: m.ExchangeName,
		APIKey:       m.APIKey,
		APISecret:    m.APISecret,
		Active:       m.Enabled,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

func stringPointerOrNil(value string) *string {
	if value == "" {
		return nil
	}
	return &value
}

func stringValueOrEmpty(value *string) string {
	if value == nil {
		return ""
	}
	return *value
}

func dateOrZero(raw string) domain.Date {
	d, err := domain.ParseDate(raw)
	if err != nil {
		return domain.Date{}
	}
	return d
}
