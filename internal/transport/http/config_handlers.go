package http

import (
	"context"
	"time"

	fiber "github.com/gofiber/fiber/v2"

	"pnl_tracker/internal/domain"
)

type ExchangeRequest struct {
	Name        string `json:"name"`
	DisplayName string `json:"display_name"`
	Color       string `json:"color"`
}

type KPIRequest struct {
	Name         string  `json:"name"`
	TargetAmount float64 `json:"target_amount"`
	Color        string  `json:"color"`
}

type StartingBalanceRequest struct {
	StartingBalance float64 `json:"starting_balance"`
	StartingDate    string  `json:"starting_date"`
}

type DepositRequest struct {
	Amount      float64 `json:"amount"`
	DepositDate string  `json:"deposit_date"`
	Notes       string  `json:"notes"`
}

func (req DepositRequest) toDomain() (domain.CapitalDeposit, error) {
	date, err := parseOptionalDate("deposit_date", req.DepositDate)
	if err != nil {
		return domain.CapitalDeposit{}, err
	}
	return domain.CapitalDeposit{Amount: req.Amount, DepositDate: date, Notes: req.Notes}, nil
}

// listExchanges godoc
// @Summary List configured exchanges
// @Tags configuration
// @Produce json
// @Security BearerAuth
// @Success 200 {array} domain.Exchange
// @Router /exchanges [get]
func (r *Router) listExchanges(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(userContext(c), 5*time.Second)
	defer cancel()

	exchanges, err := r.config.ListExchanges(ctx, currentUserID(c))
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(exchanges)
}

// createExchange godoc
// @Summary Add an exchange
// @Tags configuration
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body ExchangeRequest true "Exchange"
// @Success 201 {object} domain.Exchange
// @Failure 400 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /exchanges [post]
func (r *Router) createExchange(c *fiber.Ctx) error {
	var req ExchangeRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid payload")
	}

	ctx, cancel := context.WithTimeout(userContext(c), 5*time.Second)
	defer cancel()

	ex, err := r.config.CreateExchange(ctx, currentUserID(c), domain.Exchange{
		Name:        req.Name,
		DisplayName: req.DisplayName,
		Color:       req.Color,
	})
	if err != nil {
		return toHTTPError(err)
	}
	return c.Status(fiber.StatusCreated).JSON(ex)
}

// updateExchange godoc
// @Summary Update an exchange
// @Tags configuration
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Exchange ID"
// @Param request body ExchangeRequest true "Exchange"
// @Success 200 {object} domain.Exchange
// @Failure 404 {object} map[string]string
// @Router /exchanges/{id} [put]
func (r *Router) updateExchange(c *fiber.Ctx) error {
	var req ExchangeRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid payload")
	}

	ctx, cancel := context.WithTimeout(userContext(c), 5*time.Second)
	defer cancel()

	ex, err := r.config.UpdateExchange(ctx, currentUserID(c), c.Params("id"), domain.Exchange{
		Name:        req.Name,
		DisplayName: req.DisplayName,
		Color:       req.Color,
	})
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(ex)
}

// deleteExchange godoc
// @Summary Remove an exchange; recorded entries keep their amounts
// @Tags configuration
// @Security BearerAuth
// @Param id path string true "Exchange ID"
// @Success 204
// @Failure 404 {object} map[string]string
// @Router /exchanges/{id} [delete]
func (r *Router) deleteExchange(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(userContext(c), 5*time.Second)
	defer cancel()

	if err := r.config.DeleteExchange(ctx, currentUserID(c), c.Params("id")); err != nil {
		return toHTTPError(err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// listKPIs godoc
// @Summary List KPI targets
// @Tags configuration
// @Produce json
// @Security BearerAuth
// @Success 200 {array} domain.KPI
// @Router /kpis [get]
func (r *Router) listKPIs(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(userContext(c), 5*time.Second)
	defer cancel()

	kpis, err := r.config.ListKPIs(ctx, currentUserID(c))
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(kpis)
}

// createKPI godoc
// @Summary Add a KPI target
// @Tags configuration
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body KPIRequest true "KPI"
// @Success 201 {object} domain.KPI
// @Failure 400 {object} map[string]string
// @Router /kpis [post]
func (r *Router) createKPI(c *fiber.Ctx) error {
	var req KPIRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid payload")
	}

	ctx, cancel := context.WithTimeout(userContext(c), 5*time.Second)
	defer cancel()

	kpi, err := r.config.CreateKPI(ctx, currentUserID(c), domain.KPI{
		Name:         req.Name,
		TargetAmount: req.TargetAmount,
		Color:        req.Color,
	})
	if err != nil {
		return toHTTPError(err)
	}
	return c.Status(fiber.StatusCreated).JSON(kpi)
}

// updateKPI godoc
// @Summary Update a KPI target
// @Tags configuration
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "KPI ID"
// @Param request body KPIRequest true "KPI"
// @Success 200 {object} domain.KPI
// @Failure 404 {object} map[string]string
// @Router /kpis/{id} [put]
func (r *Router) updateKPI(c *fiber.Ctx) error {
	var req KPIRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid payload")
	}

	ctx, cancel := context.WithTimeout(userContext(c), 5*time.Second)
	defer cancel()

	kpi, err := r.config.UpdateKPI(ctx, currentUserID(c), c.Params("id"), domain.KPI{
		Name:         req.Name,
		TargetAmount: req.TargetAmount,
		Color:        req.Color,
	})
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(kpi)
}

// deleteKPI godoc
// @Summary Remove a KPI target
// @Tags configuration
// @Security BearerAuth
// @Param id path string true "KPI ID"
// @Success 204
// @Router /kpis/{id} [delete]
func (r *Router) deleteKPI(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(userContext(c), 5*time.Second)
	defer cancel()

	if err := r.config.DeleteKPI(ctx, currentUserID(c), c.Params("id")); err != nil {
		return toHTTPError(err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// listStartingBalances godoc
// @Summary List starting balances
// @Tags configuration
// @Produce json
// @Security BearerAuth
// @Success 200 {array} domain.StartingBalance
// @Router /starting-balances [get]
func (r *Router) listStartingBalances(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(userContext(c), 5*time.Second)
	defer cancel()

	balances, err := r.config.ListStartingBalances(ctx, currentUserID(c))
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(balances)
}

// setStartingBalance godoc
// @Summary Set the starting balance of an exchange
// @Tags configuration
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param exchange_id path string true "Exchange ID"
// @Param request body StartingBalanceRequest true "Starting balance"
// @Success 200 {object} domain.StartingBalance
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /starting-balances/{exchange_id} [put]
func (r *Router) setStartingBalance(c *fiber.Ctx) error {
	var req StartingBalanceRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid payload")
	}
	date, err := parseOptionalDate("starting_date", req.StartingDate)
	if err != nil {
		return toHTTPError(err)
	}

	ctx, cancel := context.WithTimeout(userContext(c), 5*time.Second)
	defer cancel()

	sb, err := r.config.SetStartingBalance(ctx, currentUserID(c), c.Params("exchange_id"), req.StartingBalance, date)
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(sb)
}

// deleteStartingBalance godoc
// @Summary Remove the starting balance of an exchange
// @Tags configuration
// @Security BearerAuth
// @Param exchange_id path string true "Exchange ID"
// @Success 204
// @Router /starting-balances/{exchange_id} [delete]
func (r *Router) deleteStartingBalance(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(userContext(c), 5*time.Second)
	defer cancel()

	if err := r.config.DeleteStartingBalance(ctx, currentUserID(c), c.Params("exchange_id")); err != nil {
		return toHTTPError(err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// listDeposits godoc
// @Summary List capital deposits
// @Tags configuration
// @Produce json
// @Security BearerAuth
// @Success 200 {array} domain.CapitalDeposit
// @Router /deposits [get]
func (r *Router) listDeposits(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(userContext(c), 5*time.Second)
	defer cancel()

	deposits, err := r.config.ListDeposits(ctx, currentUserID(c))
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(deposits)
}

// addDeposit godoc
// @Summary Record a capital deposit
// @Tags configuration
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body DepositRequest true "Deposit"
// @Success 201 {object} domain.CapitalDeposit
// @Failure 400 {object} map[string]string
// @Router /deposits [post]
func (r *Router) addDeposit(c *fiber.Ctx) error {
	var req DepositRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid payload")
	}
	deposit, err := req.toDomain()
	if err != nil {
		return toHTTPError(err)
	}

	ctx, cancel := context.WithTimeout(userContext(c), 5*time.Second)
	defer cancel()

	stored, err := r.config.AddDeposit(ctx, currentUserID(c), deposit)
	if err != nil {
		return toHTTPError(err)
	}
	return c.Status(fiber.StatusCreated).JSON(stored)
}

// updateDeposit godoc
// @Summary Edit a capital deposit
// @Tags configuration
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Deposit ID"
// @Param request body DepositRequest true "Deposit"
// @Success 200 {object} domain.CapitalDeposit
// @Failure 404 {object} map[string]string
// @Router /deposits/{id} [put]
func (r *Router) updateDeposit(c *fiber.Ctx) error {
	var req DepositRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid payload")
	}
	deposit, err := req.toDomain()
	if err != nil {
		return toHTTPError(err)
	}

	ctx, cancel := context.WithTimeout(userContext(c), 5*time.Second)
	defer cancel()

	stored, err := r.config.UpdateDeposit(ctx, currentUserID(c), c.Params("id"), deposit)
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(stored)
}

// deleteDeposit godoc
// @Summary Delete a capital deposit
// @Tags configuration
// @Security BearerAuth
// @Param id path string true "Deposit ID"
// @Success 204
// @Router /deposits/{id} [delete]
func (r *Router) deleteDeposit(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(userContext(c), 5*time.Second)
	defer cancel()

	if err := r.config.DeleteDeposit(ctx, currentUserID(c), c.Params("id")); err != nil {
		return toHTTPError(err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// ensureDefaults godoc
// @Summary Seed default exchanges, KPIs and starting balances where none exist
// @Tags configuration
// @Produce json
// @Security BearerAuth
// @Success 200 {object} domain.Configuration
// @Router /defaults [post]
func (r *Router) ensureDefaults(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(userContext(c), 10*time.Second)
	defer cancel()

	cfg, err := r.config.EnsureDefaults(ctx, currentUserID(c))
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(cfg)
}
