package http

import (
	"context"
	"errors"
	"io"
	"strconv"
	"strings"
	"time"

	fiber "github.com/gofiber/fiber/v2"
	swagger "github.com/gofiber/swagger"

	"pnl_tracker/internal/domain"
	applogger "pnl_tracker/internal/infra/logger"
	"pnl_tracker/internal/usecase"
)

const userIDLocal = "user_id"

type PortfolioService interface {
	ListEntries(ctx context.Context, userID string) ([]domain.DerivedEntry, error)
	GetEntry(ctx context.Context, userID, entryID string) (domain.DerivedEntry, error)
	UpsertEntry(ctx context.Context, userID string, entry domain.Entry) (domain.DerivedEntry, error)
	UpdateEntry(ctx context.Context, userID, entryID string, entry domain.Entry) (domain.DerivedEntry, error)
	DeleteEntry(ctx context.Context, userID, entryID string) error
	GetStats(ctx context.Context, userID string) (domain.Stats, error)
	GetChartData(ctx context.Context, userID string) (domain.ChartData, error)
	GetMonthlyPerformance(ctx context.Context, userID string) (domain.MonthlyPerformance, error)
	GetHeatmap(ctx context.Context, userID string, days int) ([]domain.HeatmapCell, error)
	GetAlerts(ctx context.Context, userID string, limit int) ([]domain.Alert, error)
	ExportCSV(ctx context.Context, userID string, w io.Writer) error
	Today() domain.Date
}

type ConfigService interface {
	ListExchanges(ctx context.Context, userID string) ([]domain.Exchange, error)
	CreateExchange(ctx context.Context, userID string, ex domain.Exchange) (domain.Exchange, error)
	UpdateExchange(ctx context.Context, userID, exchangeID string, ex domain.Exchange) (domain.Exchange, error)
	DeleteExchange(ctx context.Context, userID, exchangeID string) error
	ListKPIs(ctx context.Context, userID string) ([]domain.KPI, error)
	CreateKPI(ctx context.Context, userID string, kpi domain.KPI) (domain.KPI, error)
	UpdateKPI(ctx context.Context, userID, kpiID string, kpi domain.KPI) (domain.KPI, error)
	DeleteKPI(ctx context.Context, userID, kpiID string) error
	ListStartingBalances(ctx context.Context, userID string) ([]domain.StartingBalance, error)
	SetStartingBalance(ctx context.Context, userID, exchangeID string, amount float64, startingDate domain.Date) (domain.StartingBalance, error)
	DeleteStartingBalance(ctx context.Context, userID, exchangeID string) error
	ListDeposits(ctx context.Context, userID string) ([]domain.CapitalDeposit, error)
	AddDeposit(ctx context.Context, userID string, deposit domain.CapitalDeposit) (domain.CapitalDeposit, error)
	UpdateDeposit(ctx context.Context, userID, depositID string, deposit domain.CapitalDeposit) (domain.CapitalDeposit, error)
	DeleteDeposit(ctx context.Context, userID, depositID string) error
	EnsureDefaults(ctx context.Context, userID string) (domain.Configuration, error)
}

type APIKeyService interface {
	AddAPIKey(ctx context.Context, userID, exchangeName, apiKey, apiSecret string) (domain.ExchangeAPIKey, error)
	UpdateAPIKeyStatus(ctx context.Context, userID, exchangeName string, active bool) error
	DeleteAPIKey(ctx context.Context, userID, exchangeName string) error
	ListAPIKeys(ctx context.Context, userID string) ([]domain.ExchangeAPIKey, error)
}

type SnapshotService interface {
	SyncUser(ctx context.Context, userID string) (domain.DerivedEntry, error)
}

type UserService interface {
	Authenticate(ctx context.Context, token string) (domain.User, error)
}

// Services groups the dependencies of the HTTP surface. Snapshots may be nil when no balance feed
// is configured.
type Services struct {
	Portfolio PortfolioService
	Config    ConfigService
	APIKeys   APIKeyService
	Snapshots SnapshotService
	Users     UserService
}

type Router struct {
	app       *fiber.App
	portfolio PortfolioService
	config    ConfigService
	apiKeys   APIKeyService
	snapshots SnapshotService
	users     UserService
}

func New(services Services) *Router {
	app := fiber.New(fiber.Config{
		ErrorHandler: errorHandler,
	})

	r := &Router{
		app:       app,
		portfolio: services.Portfolio,
		config:    services.Config,
		apiKeys:   services.APIKeys,
		snapshots: services.Snapshots,
		users:     services.Users,
	}

	app.Get("/swagger/*", swagger.HandlerDefault)

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	api := app.Group("/api")
	v1 := api.Group("/v1", r.requireSession)

	v1.Get("/entries", r.listEntries)
	v1.Post("/entries", r.upsertEntry)
	v1.Get("/entries/:id", r.getEntry)
	v1.Put("/entries/:id", r.updateEntry)
	v1.Delete("/entries/:id", r.deleteEntry)

	v1.Get("/stats", r.getStats)
	v1.Get("/charts", r.getCharts)
	v1.Get("/monthly-performance", r.getMonthlyPerformance)
	v1.Get("/heatmap", r.getHeatmap)
	v1.Get("/alerts", r.getAlerts)
	v1.Get("/export.csv", r.exportCSV)

	v1.Get("/exchanges", r.listExchanges)
	v1.Post("/exchanges", r.createExchange)
	v1.Put("/exchanges/:id", r.updateExchange)
	v1.Delete("/exchanges/:id", r.deleteExchange)

	v1.Get("/kpis", r.listKPIs)
	v1.Post("/kpis", r.createKPI)
	v1.Put("/kpis/:id", r.updateKPI)
	v1.Delete("/kpis/:id", r.deleteKPI)

	v1.Get("/starting-balances", r.listStartingBalances)
	v1.Put("/starting-balances/:exchange_id", r.setStartingBalance)
	v1.Delete("/starting-balances/:exchange_id", r.deleteStartingBalance)

	v1.Get("/deposits", r.listDeposits)
	v1.Post("/deposits", r.addDeposit)
	v1.Put("/deposits/:id", r.updateDeposit)
	v1.Delete("/deposits/:id", r.deleteDeposit)

	v1.Post("/defaults", r.ensureDefaults)

	v1.Get("/exchange-api-keys", r.listAPIKeys)
	v1.Post("/exchange-api-keys", r.addAPIKey)
	v1.Patch("/exchange-api-keys/:exchange/status", r.updateAPIKeyStatus)
	v1.Delete("/exchange-api-keys/:exchange", r.deleteAPIKey)

	v1.Post("/snapshots/sync", r.syncSnapshot)

	return r
}

func (r *Router) App() *fiber.App {
	return r.app
}

// requireSession resolves the bearer session token to a user id and stores it for the handlers.
func (r *Router) requireSession(c *fiber.Ctx) error {
	if r.users == nil {
		return fiber.NewError(fiber.StatusServiceUnavailable, "user service unavailable")
	}

	token, ok := strings.CutPrefix(c.Get(fiber.HeaderAuthorization), "Bearer ")
	if !ok || strings.TrimSpace(token) == "" {
		return fiber.NewError(fiber.StatusUnauthorized, "missing bearer token")
	}

	ctx, cancel := context.WithTimeout(userContext(c), 5*time.Second)
	defer cancel()

	user, err := r.users.Authenticate(ctx, strings.TrimSpace(token))
	if err != nil {
		return toHTTPError(err)
	}

	c.Locals(userIDLocal, user.UserID)
	return c.Next()
}

func currentUserID(c *fiber.Ctx) string {
	id, _ := c.Locals(userIDLocal).(string)
	return id
}

func userContext(c *fiber.Ctx) context.Context {
	if ctx := c.UserContext(); ctx != nil {
		return ctx
	}
	return context.Background()
}

// toHTTPError maps domain failures onto status codes. Anything unrecognised is a 500.
func toHTTPError(err error) error {
	var validation *domain.ValidationError
	switch {
	case errors.As(err, &validation):
		return fiber.NewError(fiber.StatusBadRequest, validation.Error())
	case errors.Is(err, domain.ErrNotFound):
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	case errors.Is(err, domain.ErrConflict):
		return fiber.NewError(fiber.StatusConflict, err.Error())
	case errors.Is(err, domain.ErrUnauthorized):
		return fiber.NewError(fiber.StatusUnauthorized, "invalid session token")
	case errors.Is(err, usecase.ErrNoBalances):
		return fiber.NewError(fiber.StatusUnprocessableEntity, err.Error())
	case errors.Is(err, context.DeadlineExceeded):
		return fiber.NewError(fiber.StatusGatewayTimeout, "request timed out")
	default:
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
}

func errorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	var fe *fiber.Error
	if errors.As(err, &fe) {
		code = fe.Code
	}
	if code >= fiber.StatusInternalServerError {
		applogger.Logger.Error().Err(err).Str("path", c.Path()).Msg("request failed")
	}
	return c.Status(code).JSON(fiber.Map{"error": err.Error()})
}

func queryInt(c *fiber.Ctx, name string, fallback int) (int, error) {
	v := c.Query(name)
	if v == "" {
		return fallback, nil
	}
	parsed, err := strconv.Atoi(v)
	if err != nil || parsed < 0 {
		return 0, fiber.NewError(fiber.StatusBadRequest, "invalid "+name)
	}
	return parsed, nil
}

func parseOptionalDate(field, raw string) (domain.Date, error) {
	if strings.TrimSpace(raw) == "" {
		return domain.Date{}, nil
	}
	d, err := domain.ParseDate(raw)
	if err != nil {
		return domain.Date{}, domain.NewValidationError(field, "expected YYYY-MM-DD")
	}
	return d, nil
}
