package http

import (
	"bytes"
	"context"
	"fmt"
	"time"

	fiber "github.com/gofiber/fiber/v2"

	"pnl_tracker/internal/domain"
)

type BalanceRequest struct {
	ExchangeID string  `json:"exchange_id"`
	Amount     float64 `json:"amount"`
}

type EntryRequest struct {
	Date     string           `json:"date"`
	Balances []BalanceRequest `json:"balances"`
	Notes    string           `json:"notes"`
}

func (req EntryRequest) toDomain() (domain.Entry, error) {
	if req.Date == "" {
		return domain.Entry{}, domain.NewValidationError("date", "required")
	}
	date, err := parseOptionalDate("date", req.Date)
	if err != nil {
		return domain.Entry{}, err
	}
	balances := make([]domain.Balance, 0, len(req.Balances))
	for _, b := range req.Balances {
		balances = append(balances, domain.Balance{ExchangeID: b.ExchangeID, Amount: b.Amount})
	}
	return domain.Entry{Date: date, Balances: balances, Notes: req.Notes}, nil
}

// listEntries godoc
// @Summary List balance entries with derived PnL, newest first
// @Tags entries
// @Produce json
// @Security BearerAuth
// @Success 200 {array} domain.DerivedEntry
// @Failure 401 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /entries [get]
func (r *Router) listEntries(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(userContext(c), 10*time.Second)
	defer cancel()

	entries, err := r.portfolio.ListEntries(ctx, currentUserID(c))
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(entries)
}

// getEntry godoc
// @Summary Get one entry with derived PnL
// @Tags entries
// @Produce json
// @Security BearerAuth
// @Param id path string true "Entry ID"
// @Success 200 {object} domain.DerivedEntry
// @Failure 404 {object} map[string]string
// @Router /entries/{id} [get]
func (r *Router) getEntry(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(userContext(c), 10*time.Second)
	defer cancel()

	entry, err := r.portfolio.GetEntry(ctx, currentUserID(c), c.Params("id"))
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(entry)
}

// upsertEntry godoc
// @Summary Record the balances for a date, replacing any entry already stored for it
// @Tags entries
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body EntryRequest true "Entry payload"
// @Success 201 {object} domain.DerivedEntry
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /entries [post]
func (r *Router) upsertEntry(c *fiber.Ctx) error {
	var req EntryRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid payload")
	}
	entry, err := req.toDomain()
	if err != nil {
		return toHTTPError(err)
	}

	ctx, cancel := context.WithTimeout(userContext(c), 10*time.Second)
	defer cancel()

	derived, err := r.portfolio.UpsertEntry(ctx, currentUserID(c), entry)
	if err != nil {
		return toHTTPError(err)
	}
	return c.Status(fiber.StatusCreated).JSON(derived)
}

// updateEntry godoc
// @Summary Edit an entry's date, balances or notes
// @Tags entries
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Entry ID"
// @Param request body EntryRequest true "Entry payload"
// @Success 200 {object} domain.DerivedEntry
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /entries/{id} [put]
func (r *Router) updateEntry(c *fiber.Ctx) error {
	var req EntryRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid payload")
	}
	entry, err := req.toDomain()
	if err != nil {
		return toHTTPError(err)
	}

	ctx, cancel := context.WithTimeout(userContext(c), 10*time.Second)
	defer cancel()

	derived, err := r.portfolio.UpdateEntry(ctx, currentUserID(c), c.Params("id"), entry)
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(derived)
}

// deleteEntry godoc
// @Summary Delete an entry
// @Tags entries
// @Security BearerAuth
// @Param id path string true "Entry ID"
// @Success 204
// @Failure 404 {object} map[string]string
// @Router /entries/{id} [delete]
func (r *Router) deleteEntry(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(userContext(c), 10*time.Second)
	defer cancel()

	if err := r.portfolio.DeleteEntry(ctx, currentUserID(c), c.Params("id")); err != nil {
		return toHTTPError(err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// getStats godoc
// @Summary Portfolio statistics and ROI
// @Tags analytics
// @Produce json
// @Security BearerAuth
// @Success 200 {object} domain.Stats
// @Router /stats [get]
func (r *Router) getStats(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(userContext(c), 10*time.Second)
	defer cancel()

	stats, err := r.portfolio.GetStats(ctx, currentUserID(c))
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(stats)
}

// getCharts godoc
// @Summary Portfolio timeline, PnL timeline and exchange breakdown
// @Tags analytics
// @Produce json
// @Security BearerAuth
// @Success 200 {object} domain.ChartData
// @Router /charts [get]
func (r *Router) getCharts(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(userContext(c), 10*time.Second)
	defer cancel()

	charts, err := r.portfolio.GetChartData(ctx, currentUserID(c))
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(charts)
}

// getMonthlyPerformance godoc
// @Summary Monthly PnL rollup with best and worst month
// @Tags analytics
// @Produce json
// @Security BearerAuth
// @Success 200 {object} domain.MonthlyPerformance
// @Router /monthly-performance [get]
func (r *Router) getMonthlyPerformance(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(userContext(c), 10*time.Second)
	defer cancel()

	monthly, err := r.portfolio.GetMonthlyPerformance(ctx, currentUserID(c))
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(monthly)
}

// getHeatmap godoc
// @Summary Daily PnL heatmap ending today
// @Tags analytics
// @Produce json
// @Security BearerAuth
// @Param days query int false "Window length in days (default 365)"
// @Success 200 {array} domain.HeatmapCell
// @Failure 400 {object} map[string]string
// @Router /heatmap [get]
func (r *Router) getHeatmap(c *fiber.Ctx) error {
	days, err := queryInt(c, "days", 0)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(userContext(c), 10*time.Second)
	defer cancel()

	cells, err := r.portfolio.GetHeatmap(ctx, currentUserID(c), days)
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(cells)
}

// getAlerts godoc
// @Summary Smart alerts ordered by priority
// @Tags analytics
// @Produce json
// @Security BearerAuth
// @Param limit query int false "Maximum number of alerts"
// @Success 200 {array} domain.Alert
// @Router /alerts [get]
func (r *Router) getAlerts(c *fiber.Ctx) error {
	limit, err := queryInt(c, "limit", 0)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(userContext(c), 10*time.Second)
	defer cancel()

	alerts, err := r.portfolio.GetAlerts(ctx, currentUserID(c), limit)
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(alerts)
}

// exportCSV godoc
// @Summary Download the entry history as CSV
// @Tags entries
// @Produce text/csv
// @Security BearerAuth
// @Success 200 {string} string
// @Router /export.csv [get]
func (r *Router) exportCSV(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(userContext(c), 30*time.Second)
	defer cancel()

	var buf bytes.Buffer
	if err := r.portfolio.ExportCSV(ctx, currentUserID(c), &buf); err != nil {
		return toHTTPError(err)
	}

	c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="pnl-export-%s.csv"`, r.portfolio.Today()))
	return c.Send(buf.Bytes())
}
