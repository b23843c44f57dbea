package usecase

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"pnl_tracker/internal/config"
	"pnl_tracker/internal/domain"
)

type fakeStore struct {
	mu        sync.Mutex
	seq       int
	entries   map[string]domain.Entry
	exchanges map[string]domain.Exchange
	kpis      map[string]domain.KPI
	starting  map[string]domain.StartingBalance
	deposits  map[string]domain.CapitalDeposit
	users     map[string]domain.User
	keys      map[string]domain.ExchangeAPIKey
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		entries:   map[string]domain.Entry{},
		exchanges: map[string]domain.Exchange{},
		kpis:      map[string]domain.KPI{},
		starting:  map[string]domain.StartingBalance{},
		deposits:  map[string]domain.CapitalDeposit{},
		users:     map[string]domain.User{},
		keys:      map[string]domain.ExchangeAPIKey{},
	}
}

func (f *fakeStore) nextID(prefix string) string {
	f.seq++
	return fmt.Sprintf("%s-%d", prefix, f.seq)
}

func (f *fakeStore) UpsertEntry(_ context.Context, e domain.Entry) (domain.Entry, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for id, existing := range f.entries {
		if existing.UserID == e.UserID && existing.Date.Equal(e.Date) {
			e.ID = id
			f.entries[id] = e
			return e, nil
		}
	}
	e.ID = f.nextID("entry")
	f.entries[e.ID] = e
	return e, nil
}

func (f *fakeStore) UpdateEntry(_ context.Context, e domain.Entry) (domain.Entry, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	current, ok := f.entries[e.ID]
	if !ok || current.UserID != e.UserID {
		return domain.Entry{}, domain.NewNotFoundError("entry", e.ID)
	}
	for id, other := range f.entries {
		if id != e.ID && other.UserID == e.UserID && other.Date.Equal(e.Date) {
			return domain.Entry{}, domain.ErrConflict
		}
	}
	f.entries[e.ID] = e
	return e, nil
}

func (f *fakeStore) GetEntry(_ context.Context, userID, entryID string) (domain.Entry, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	e, ok := f.entries[entryID]
	if !ok || e.UserID != userID {
		return domain.Entry{}, domain.NewNotFoundError("entry", entryID)
	}
	return e, nil
}

func (f *fakeStore) DeleteEntry(_ context.Context, userID, entryID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	e, ok := f.entries[entryID]
	if !ok || e.UserID != userID {
		return domain.NewNotFoundError("entry", entryID)
	}
	delete(f.entries, entryID)
	return nil
}

// ListEntries deliberately returns map order; the engine must not depend on storage order.
func (f *fakeStore) ListEntries(_ context.Context, userID string) ([]domain.Entry, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []domain.Entry
	for _, e := range f.entries {
		if e.UserID == userID {
			out = append(out, e)
		}
	}
	return out, nil
}

func (f *fakeStore) CreateExchange(_ context.Context, ex domain.Exchange) (domain.Exchange, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, other := range f.exchanges {
		if other.UserID == ex.UserID && other.Name == ex.Name {
			return domain.Exchange{}, domain.ErrConflict
		}
	}
	ex.ID = f.nextID("ex")
	f.exchanges[ex.ID] = ex
	return ex, nil
}

func (f *fakeStore) UpdateExchange(_ context.Context, ex domain.Exchange) (domain.Exchange, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	current, ok := f.exchanges[ex.ID]
	if !ok || current.UserID != ex.UserID {
		return domain.Exchange{}, domain.NewNotFoundError("exchange", ex.ID)
	}
	f.exchanges[ex.ID] = ex
	return ex, nil
}

func (f *fakeStore) DeleteExchange(_ context.Context, userID, exchangeID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	current, ok := f.exchanges[exchangeID]
	if !ok || current.UserID != userID {
		return domain.NewNotFoundError("exchange", exchangeID)
	}
	delete(f.exchanges, exchangeID)
	delete(f.starting, userID+"/"+exchangeID)
	return nil
}

func (f *fakeStore) ListExchanges(_ context.Context, userID string) ([]domain.Exchange, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []domain.Exchange
	for _, ex := range f.exchanges {
		if ex.UserID == userID {
			out = append(out, ex)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *fakeStore) CreateKPI(_ context.Context, k domain.KPI) (domain.KPI, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	k.ID = f.nextID("kpi")
	f.kpis[k.ID] = k
	return k, nil
}

func (f *fakeStore) UpdateKPI(_ context.Context, k domain.KPI) (domain.KPI, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	current, ok := f.kpis[k.ID]
	if !ok || current.UserID != k.UserID {
		return domain.KPI{}, domain.NewNotFoundError("kpi", k.ID)
	}
	f.kpis[k.ID] = k
	return k, nil
}

func (f *fakeStore) DeleteKPI(_ context.Context, userID, kpiID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	current, ok := f.kpis[kpiID]
	if !ok || current.UserID != userID {
		return domain.NewNotFoundError("kpi", kpiID)
	}
	delete(f.kpis, kpiID)
	return nil
}

func (f *fakeStore) ListKPIs(_ context.Context, userID string) ([]domain.KPI, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []domain.KPI
	for _, k := range f.kpis {
		if k.UserID == userID {
			out = append(out, k)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].TargetAmount < out[j].TargetAmount })
	return out, nil
}

func (f *fakeStore) UpsertStartingBalance(_ context.Context, sb domain.StartingBalance) (domain.StartingBalance, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.starting[sb.UserID+"/"+sb.ExchangeID] = sb
	return sb, nil
}

func (f *fakeStore) DeleteStartingBalance(_ context.Context, userID, exchangeID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	key := userID + "/" + exchangeID
	if _, ok := f.starting[key]; !ok {
		return domain.NewNotFoundError("starting balance", exchangeID)
	}
	delete(f.starting, key)
	return nil
}

func (f *fakeStore) ListStartingBalances(_ context.Context, userID string) ([]domain.StartingBalance, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []domain.StartingBalance
	for _, sb := range f.starting {
		if sb.UserID == userID {
			out = append(out, sb)
		}
	}
	return out, nil
}

func (f *fakeStore) AddDeposit(_ context.Context, d domain.CapitalDeposit) (domain.CapitalDeposit, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	d.ID = f.nextID("dep")
	f.deposits[d.ID] = d
	return d, nil
}

func (f *fakeStore) UpdateDeposit(_ context.Context, d domain.CapitalDeposit) (domain.CapitalDeposit, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	current, ok := f.deposits[d.ID]
	if !ok || current.UserID != d.UserID {
		return domain.CapitalDeposit{}, domain.NewNotFoundError("deposit", d.ID)
	}
	f.deposits[d.ID] = d
	return d, nil
}

func (f *fakeStore) DeleteDeposit(_ context.Context, userID, depositID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	current, ok := f.deposits[depositID]
	if !ok || current.UserID != userID {
		return domain.NewNotFoundError("deposit", depositID)
	}
	delete(f.deposits, depositID)
	return nil
}

func (f *fakeStore) ListDeposits(_ context.Context, userID string) ([]domain.CapitalDeposit, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []domain.CapitalDeposit
	for _, d := range f.deposits {
		if d.UserID == userID {
			out = append(out, d)
		}
	}
	return out, nil
}

func (f *fakeStore) UpsertUser(_ context.Context, u domain.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if existing, ok := f.users[u.UserID]; ok {
		u.SessionToken = existing.SessionToken
	}
	f.users[u.UserID] = u
	return nil
}

func (f *fakeStore) GetUser(_ context.Context, userID string) (domain.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.users[userID]
	if !ok {
		return domain.User{}, domain.NewNotFoundError("user", userID)
	}
	return u, nil
}

func (f *fakeStore) GetUserBySessionToken(_ context.Context, token string) (domain.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.users {
		if u.SessionToken == token {
			return u, nil
		}
	}
	return domain.User{}, domain.ErrUnauthorized
}

func (f *fakeStore) ListAutoSnapshotUsers(_ context.Context) ([]domain.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []domain.User
	for _, u := range f.users {
		if u.AutoSnapshot {
			out = append(out, u)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].UserID < out[j].UserID })
	return out, nil
}

func (f *fakeStore) AddAPIKey(_ context.Context, k domain.ExchangeAPIKey) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.keys[k.UserID+"/"+k.ExchangeName] = k
	return nil
}

func (f *fakeStore) UpdateAPIKeyStatus(_ context.Context, userID, exchangeName string, active bool) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	k, ok := f.keys[userID+"/"+exchangeName]
	if !ok {
		return domain.NewNotFoundError("api key", exchangeName)
	}
	k.Active = active
	f.keys[userID+"/"+exchangeName] = k
	return nil
}

func (f *fakeStore) DeleteAPIKey(_ context.Context, userID, exchangeName string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.keys[userID+"/"+exchangeName]; !ok {
		return domain.NewNotFoundError("api key", exchangeName)
	}
	delete(f.keys, userID+"/"+exchangeName)
	return nil
}

func (f *fakeStore) APIKeyExists(_ context.Context, userID, exchangeName string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	_, ok := f.keys[userID+"/"+exchangeName]
	return ok, nil
}

func (f *fakeStore) ListAPIKeys(_ context.Context, userID string) ([]domain.ExchangeAPIKey, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []domain.ExchangeAPIKey
	for _, k := range f.keys {
		if k.UserID == userID {
			out = append(out, k)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ExchangeName < out[j].ExchangeName })
	return out, nil
}

type fakeFeed struct {
	totals map[string]float64
	errs   map[string]error
}

func (f fakeFeed) FetchBalance(_ context.Context, key domain.ExchangeAPIKey) (float64, error) {
	if err, ok := f.errs[key.ExchangeName]; ok {
		return 0, err
	}
	return f.totals[key.ExchangeName], nil
}

type testServices struct {
	store     *fakeStore
	config    *ConfigService
	portfolio *PortfolioService
}

func newTestServices(t interface{ Fatalf(string, ...any) }) testServices {
	store := newFakeStore()
	defaults, err := config.LoadDefaults("")
	if err != nil {
		t.Fatalf("defaults: %v", err)
	}
	cfgSvc, err := NewConfigService(ConfigRepositories{
		Exchanges:        store,
		KPIs:             store,
		StartingBalances: store,
		Deposits:         store,
	}, defaults, "USD", NewUserLocks())
	if err != nil {
		t.Fatalf("config service: %v", err)
	}
	portfolio, err := NewPortfolioService(store, cfgSvc, defaults.AlertSettings())
	if err != nil {
		t.Fatalf("portfolio service: %v", err)
	}
	portfolio.SetClock(func() domain.Date { return domain.MustDate("2024-03-10") })
	return testServices{store: store, config: cfgSvc, portfolio: portfolio}
}
