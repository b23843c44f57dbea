package domain

import "time"

type Exchange struct {
	ID          string    `json:"id"`
	UserID      string    `json:"user_id"`
	Name        string    `json:"name"`
	DisplayName string    `json:"display_name"`
	Color       string    `json:"color"`
	CreatedAt   time.Time `json:"created_at"`
}

type KPI struct {
	ID           string    `json:"id"`
	UserID       string    `json:"user_id"`
	Name         string    `json:"name"`
	TargetAmount float64   `json:"target_amount"`
	Color        string    `json:"color"`
	CreatedAt    time.Time `json:"created_at"`
}

type StartingBalance struct {
	UserID          string  `json:"user_id"`
	ExchangeID      string  `json:"exchange_id"`
	StartingBalance float64 `json:"starting_balance"`
	StartingDate    Date    `json:"starting_date"`
}

type CapitalDeposit struct {
	ID          string    `json:"id"`
	UserID      string    `json:"user_id"`
	Amount      float64   `json:"amount"`
	DepositDate Date      `json:"deposit_date"`
	Notes       string    `json:"notes"`
	CreatedAt   time.Time `json:"created_at"`
}

type Balance struct {
	ExchangeID string  `json:"exchange_id"`
	Amount     float64 `json:"amount"`
}

// Entry is one day's recorded balances. It carries no derived numbers; those are computed on read
// from the whole history.
type Entry struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Date      Date      `json:"date"`
	Balances  []Balance `json:"balances"`
	Notes     string    `json:"notes"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// AmountFor returns the balance held on exchangeID, 0 when absent.
func (e Entry) AmountFor(exchangeID string) float64 {
	var sum float64
	for _, b := range e.Balances {
		if b.ExchangeID == exchangeID {
			sum += b.Amount
		}
	}
	return sum
}

// Configuration is the user's configuration snapshot joined against entries at query time.
type Configuration struct {
	Exchanges        []Exchange        `json:"exchanges"`
	KPIs             []KPI             `json:"kpis"`
	StartingBalances []StartingBalance `json:"starting_balances"`
	Deposits         []CapitalDeposit  `json:"deposits"`
	Currency         string            `json:"currency"`
}

func (c Configuration) ExchangeByID(id string) (Exchange, bool) {
	for _, ex := range c.Exchanges {
		if ex.ID == id {
			return ex, true
		}
	}
	return Exchange{}, false
}

type KPIProgress struct {
	KPIID        string  `json:"kpi_id"`
	Name         string  `json:"name"`
	TargetAmount float64 `json:"target_amount"`
	Progress     float64 `json:"progress"`
}

type DerivedEntry struct {
	Entry
	Total         float64       `json:"total"`
	PnLAmount     float64       `json:"pnl_amount"`
	PnLPercentage float64       `json:"pnl_percentage"`
	HasPrevious   bool          `json:"has_previous"`
	KPIProgress   []KPIProgress `json:"kpi_progress"`
}

type Stats struct {
	TotalBalance            float64       `json:"total_balance"`
	LatestDate              *Date         `json:"latest_date,omitempty"`
	DailyPnL                float64       `json:"daily_pnl"`
	DailyPnLPercentage      float64       `json:"daily_pnl_percentage"`
	AvgDailyPnL             float64       `json:"avg_daily_pnl"`
	AvgDailyPnLPercentage   float64       `json:"avg_daily_pnl_percentage"`
	AvgMonthlyPnLPercentage float64       `json:"avg_monthly_pnl_percentage"`
	TotalEntries            int           `json:"total_entries"`
	TotalStartingBalance    float64       `json:"total_starting_balance"`
	TotalCapitalDeposited   float64       `json:"total_capital_deposited"`
	ROIVsStartingBalance    float64       `json:"roi_vs_starting_balance"`
	ROIVsCapital            float64       `json:"roi_vs_capital"`
	HasStartingBalance      bool          `json:"has_starting_balance"`
	HasCapital              bool          `json:"has_capital"`
	KPIProgress             []KPIProgress `json:"kpi_progress"`
}

type MonthSummary struct {
	Month                string  `json:"month"`
	TradingDays          int     `json:"trading_days"`
	StartBalance         float64 `json:"start_balance"`
	EndBalance           float64 `json:"end_balance"`
	MonthlyPnLAmount     float64 `json:"monthly_pnl_amount"`
	MonthlyPnLPercentage float64 `json:"monthly_pnl_percentage"`
	AvgDailyPnL          float64 `json:"avg_daily_pnl"`
}

type MonthlyPerformance struct {
	Monthly    []MonthSummary `json:"monthly_performance"`
	BestMonth  *MonthSummary  `json:"best_month"`
	WorstMonth *MonthSummary  `json:"worst_month"`
}

type ExchangeSlice struct {
	ExchangeID  string  `json:"exchange_id"`
	Name        string  `json:"name"`
	DisplayName string  `json:"display_name"`
	Color       string  `json:"color"`
	Amount      float64 `json:"amount"`
	Percentage  float64 `json:"percentage"`
}

type PnLPoint struct {
	Date          Date    `json:"date"`
	PnLAmount     float64 `json:"pnl_amount"`
	PnLPercentage float64 `json:"pnl_percentage"`
}

type HeatmapCell struct {
	Date          Date    `json:"date"`
	PnLPercentage float64 `json:"pnl_percentage"`
	Level         int     `json:"level"`
	HasEntry      bool    `json:"hasEntry"`
}

type AlertPriority string

const (
	AlertPriorityHigh   AlertPriority = "high"
	AlertPriorityMedium AlertPriority = "medium"
	AlertPriorityLow    AlertPriority = "low"
)

// Rank orders priorities, higher first.
func (p AlertPriority) Rank() int {
	switch p {
	case AlertPriorityHigh:
		return 3
	case AlertPriorityMedium:
		return 2
	case AlertPriorityLow:
		return 1
	default:
		return 0
	}
}

type AlertKind string

const (
	AlertKindSuccess AlertKind = "success"
	AlertKindWarning AlertKind = "warning"
	AlertKindInfo    AlertKind = "info"
)

type Alert struct {
	Rule     string        `json:"rule"`
	Kind     AlertKind     `json:"type"`
	Priority AlertPriority `json:"priority"`
	Title    string        `json:"title"`
	Message  string        `json:"message"`
	Value    float64       `json:"value"`
}

type User struct {
	UserID       string    `json:"user_id"`
	Email        string    `json:"email"`
	Name         string    `json:"name"`
	SessionToken string    `json:"-"`
	AutoSnapshot bool      `json:"auto_snapshot"`
	LastSeen     time.Time `json:"last_seen"`
	Created      time.Time `json:"created_at"`
	Updated      time.Time `json:"updated_at"`
}

type ExchangeAPIKey struct {
	ID           string    `json:"id"`
	UserID       string    `json:"user_id"`
	ExchangeName string    `json:"exchange_name"`
	APIKey       string    `json:"-"`
	APISecret    string    `json:"-"`
	Active       bool      `json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Preview masks the key down to its first and last four characters.
func (k ExchangeAPIKey) Preview() string {
	if len(k.APIKey) <= 8 {
		return "..."
	}
	return k.APIKey[:4] + "..." + k.APIKey[len(k.APIKey)-4:]
}
