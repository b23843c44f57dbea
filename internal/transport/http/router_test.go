package http

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"pnl_tracker/internal/config"
	"pnl_tracker/internal/domain"
	"pnl_tracker/internal/infra/db"
	"pnl_tracker/internal/infra/repository"
	"pnl_tracker/internal/usecase"
)

type testAPI struct {
	router *Router
	token  string
}

func newTestAPI(t *testing.T) testAPI {
	t.Helper()
	ctx := context.Background()

	gormDB, err := db.Connect(ctx, db.DriverSQLite, filepath.Join(t.TempDir(), "api.db"))
	if err != nil {
		t.Fatalf("connect: %v", err)
	}
	sqlDB, _ := gormDB.DB()
	t.Cleanup(func() { sqlDB.Close() })
	if err := db.ApplyMigrations(ctx, gormDB); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	entryRepo, _ := repository.NewGormEntryRepository(gormDB)
	configRepo, _ := repository.NewGormConfigRepository(gormDB)
	capitalRepo, _ := repository.NewGormCapitalRepository(gormDB)
	userRepo, _ := repository.NewGormUserRepository(gormDB)
	apiKeyRepo, _ := repository.NewGormAPIKeyRepository(gormDB)

	defaults, err := config.LoadDefaults("")
	if err != nil {
		t.Fatalf("defaults: %v", err)
	}
	configSvc, err := usecase.NewConfigService(usecase.ConfigRepositories{
		Exchanges:        configRepo,
		KPIs:             configRepo,
		StartingBalances: capitalRepo,
		Deposits:         capitalRepo,
	}, defaults, "USD", usecase.NewUserLocks())
	if err != nil {
		t.Fatalf("config service: %v", err)
	}
	portfolioSvc, err := usecase.NewPortfolioService(entryRepo, configSvc, defaults.AlertSettings())
	if err != nil {
		t.Fatalf("portfolio service: %v", err)
	}
	portfolioSvc.SetClock(func() domain.Date { return domain.MustDate("2024-01-10") })
	apiKeySvc, _ := usecase.NewAPIKeyService(apiKeyRepo)
	userSvc, _ := usecase.NewUserService(userRepo)

	user, err := userSvc.CreateUser(ctx, "ada@example.com", "Ada", false)
	if err != nil {
		t.Fatalf("create user: %v", err)
	}

	router := New(Services{
		Portfolio: portfolioSvc,
		Config:    configSvc,
		APIKeys:   apiKeySvc,
		Users:     userSvc,
	})
	return testAPI{router: router, token: user.SessionToken}
}

func (a testAPI) do(t *testing.T, method, path, body string) (*http.Response, []byte) {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if a.token != "" {
		req.Header.Set("Authorization", "Bearer "+a.token)
	}
	resp, err := a.router.App().Test(req, -1)
	if err != nil {
		t.Fatalf("%s %s: %v", method, path, err)
	}
	raw, _ := io.ReadAll(resp.Body)
	resp.Body.Close()
	return resp, raw
}

func TestHealthAndAuthGate(t *testing.T) {
	api := newTestAPI(t)

	anon := testAPI{router: api.router}
	if resp, _ := anon.do(t, http.MethodGet, "/health", ""); resp.StatusCode != http.StatusOK {
		t.Fatalf("health: %d", resp.StatusCode)
	}
	if resp, _ := anon.do(t, http.MethodGet, "/api/v1/stats", ""); resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected 401 without token, got %d", resp.StatusCode)
	}
	wrong := testAPI{router: api.router, token: "nope"}
	if resp, _ := wrong.do(t, http.MethodGet, "/api/v1/stats", ""); resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected 401 for unknown token, got %d", resp.StatusCode)
	}
	if resp, _ := api.do(t, http.MethodGet, "/api/v1/stats", ""); resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200 with token, got %d", resp.StatusCode)
	}
}

func TestEntryLifecycle(t *testing.T) {
	api := newTestAPI(t)

	resp, raw := api.do(t, http.MethodPost, "/api/v1/defaults", "")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("defaults: %d %s", resp.StatusCode, raw)
	}
	var cfg domain.Configuration
	if err := json.Unmarshal(raw, &cfg); err != nil {
		t.Fatalf("decode config: %v", err)
	}
	var kraken string
	for _, ex := range cfg.Exchanges {
		if ex.Name == "kraken" {
			kraken = ex.ID
		}
	}
	if kraken == "" {
		t.Fatalf("kraken not seeded: %+v", cfg.Exchanges)
	}

	resp, _ = api.do(t, http.MethodPost, "/api/v1/entries", `{"date":"2024-01-01","balances":[{"exchange_id":"`+kraken+`","amount":0}]}`)
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("all-zero entry should be rejected, got %d", resp.StatusCode)
	}
	resp, _ = api.do(t, http.MethodPost, "/api/v1/entries", `{"date":"01/02/2024","balances":[{"exchange_id":"`+kraken+`","amount":5}]}`)
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("malformed date should be rejected, got %d", resp.StatusCode)
	}

	resp, raw = api.do(t, http.MethodPost, "/api/v1/entries", `{"date":"2024-01-01","balances":[{"exchange_id":"`+kraken+`","amount":1000}]}`)
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("create: %d %s", resp.StatusCode, raw)
	}
	var first domain.DerivedEntry
	json.Unmarshal(raw, &first)

	resp, raw = api.do(t, http.MethodPost, "/api/v1/entries", `{"date":"2024-01-02","balances":[{"exchange_id":"`+kraken+`","amount":1100}],"notes":"up"}`)
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("create second: %d %s", resp.StatusCode, raw)
	}
	var second domain.DerivedEntry
	json.Unmarshal(raw, &second)
	if second.PnLAmount != 100 || second.PnLPercentage != 10 {
		t.Fatalf("unexpected derived fields %+v", second)
	}

	resp, _ = api.do(t, http.MethodPut, "/api/v1/entries/"+second.ID, `{"date":"2024-01-01","balances":[{"exchange_id":"`+kraken+`","amount":1100}]}`)
	if resp.StatusCode != http.StatusConflict {
		t.Fatalf("moving onto a used date should conflict, got %d", resp.StatusCode)
	}
	resp, _ = api.do(t, http.MethodGet, "/api/v1/entries/does-not-exist", "")
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.StatusCode)
	}

	resp, raw = api.do(t, http.MethodGet, "/api/v1/entries", "")
	var list []domain.DerivedEntry
	json.Unmarshal(raw, &list)
	if resp.StatusCode != http.StatusOK || len(list) != 2 || list[0].ID != second.ID {
		t.Fatalf("unexpected list %d %s", resp.StatusCode, raw)
	}

	resp, raw = api.do(t, http.MethodGet, "/api/v1/stats", "")
	var stats domain.Stats
	json.Unmarshal(raw, &stats)
	if stats.TotalBalance != 1100 || stats.TotalEntries != 2 {
		t.Fatalf("unexpected stats %s", raw)
	}

	resp, raw = api.do(t, http.MethodGet, "/api/v1/export.csv", "")
	if resp.StatusCode != http.StatusOK || !strings.HasPrefix(resp.Header.Get("Content-Type"), "text/csv") {
		t.Fatalf("export: %d %s", resp.StatusCode, resp.Header.Get("Content-Type"))
	}
	if !strings.Contains(string(raw), "2024-01-02,") {
		t.Fatalf("export missing rows:\n%s", raw)
	}

	if resp, _ = api.do(t, http.MethodDelete, "/api/v1/entries/"+first.ID, ""); resp.StatusCode != http.StatusNoContent {
		t.Fatalf("delete: %d", resp.StatusCode)
	}
}

func TestQueryValidation(t *testing.T) {
	api := newTestAPI(t)

	if resp, _ := api.do(t, http.MethodGet, "/api/v1/heatmap?days=abc", ""); resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.StatusCode)
	}
	resp, raw := api.do(t, http.MethodGet, "/api/v1/heatmap?days=7", "")
	var cells []domain.HeatmapCell
	json.Unmarshal(raw, &cells)
	if resp.StatusCode != http.StatusOK || len(cells) != 7 {
		t.Fatalf("heatmap: %d %s", resp.StatusCode, raw)
	}
	if resp, _ := api.do(t, http.MethodPost, "/api/v1/snapshots/sync", ""); resp.StatusCode != http.StatusServiceUnavailable {
		t.Fatalf("sync without feed should be unavailable, got %d", resp.StatusCode)
	}
}

func TestAPIKeysAreMasked(t *testing.T) {
	api := newTestAPI(t)

	resp, raw := api.do(t, http.MethodPost, "/api/v1/exchange-api-keys", `{"exchange_name":"kraken","api_key":"abcd1234wxyz","api_secret":"topsecret"}`)
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("add key: %d %s", resp.StatusCode, raw)
	}
	if strings.Contains(string(raw), "topsecret") || strings.Contains(string(raw), "abcd1234wxyz") {
		t.Fatalf("raw credentials leaked: %s", raw)
	}

	resp, raw = api.do(t, http.MethodPatch, "/api/v1/exchange-api-keys/kraken/status", `{"is_active":false}`)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status: %d %s", resp.StatusCode, raw)
	}

	_, raw = api.do(t, http.MethodGet, "/api/v1/exchange-api-keys", "")
	var keys []APIKeyResponse
	json.Unmarshal(raw, &keys)
	if len(keys) != 1 || keys[0].APIKeyPreview != "abcd...wxyz" || keys[0].IsActive {
		t.Fatalf("unexpected keys %s", raw)
	}

	if resp, _ = api.do(t, http.MethodDelete, "/api/v1/exchange-api-keys/bitget", ""); resp.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.StatusCode)
	}
}
