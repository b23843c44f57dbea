package http

import (
	"context"
	"time"

	fiber "github.com/gofiber/fiber/v2"

	"pnl_tracker/internal/domain"
)

type APIKeyRequest struct {
	ExchangeName string `json:"exchange_name"`
	APIKey       string `json:"api_key"`
	APISecret    string `json:"api_secret"`
}

type APIKeyStatusRequest struct {
	IsActive *bool `json:"is_active"`
}

// APIKeyResponse never carries the secret; the key itself is masked.
type APIKeyResponse struct {
	ID            string    `json:"id"`
	ExchangeName  string    `json:"exchange_name"`
	APIKeyPreview string    `json:"api_key_preview"`
	IsActive      bool      `json:"is_active"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func toAPIKeyResponse(k domain.ExchangeAPIKey) APIKeyResponse {
	return APIKeyResponse{
		ID:            k.ID,
		ExchangeName:  k.ExchangeName,
		APIKeyPreview: k.Preview(),
		IsActive:      k.Active,
		CreatedAt:     k.CreatedAt,
		UpdatedAt:     k.UpdatedAt,
	}
}

// listAPIKeys godoc
// @Summary List stored exchange API keys (masked)
// @Tags api-keys
// @Produce json
// @Security BearerAuth
// @Success 200 {array} APIKeyResponse
// @Router /exchange-api-keys [get]
func (r *Router) listAPIKeys(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(userContext(c), 5*time.Second)
	defer cancel()

	keys, err := r.apiKeys.ListAPIKeys(ctx, currentUserID(c))
	if err != nil {
		return toHTTPError(err)
	}
	out := make([]APIKeyResponse, len(keys))
	for i, k := range keys {
		out[i] = toAPIKeyResponse(k)
	}
	return c.JSON(out)
}

// addAPIKey godoc
// @Summary Store API credentials for an exchange
// @Tags api-keys
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body APIKeyRequest true "Credentials"
// @Success 201 {object} APIKeyResponse
// @Failure 400 {object} map[string]string
// @Router /exchange-api-keys [post]
func (r *Router) addAPIKey(c *fiber.Ctx) error {
	var req APIKeyRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid payload")
	}

	ctx, cancel := context.WithTimeout(userContext(c), 5*time.Second)
	defer cancel()

	key, err := r.apiKeys.AddAPIKey(ctx, currentUserID(c), req.ExchangeName, req.APIKey, req.APISecret)
	if err != nil {
		return toHTTPError(err)
	}
	return c.Status(fiber.StatusCreated).JSON(toAPIKeyResponse(key))
}

// updateAPIKeyStatus godoc
// @Summary Enable or disable an exchange API key
// @Tags api-keys
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param exchange path string true "Exchange name"
// @Param request body APIKeyStatusRequest true "Status"
// @Success 200 {object} map[string]bool
// @Failure 404 {object} map[string]string
// @Router /exchange-api-keys/{exchange}/status [patch]
func (r *Router) updateAPIKeyStatus(c *fiber.Ctx) error {
	var req APIKeyStatusRequest
	if err := c.BodyParser(&req); err != nil || req.IsActive == nil {
		return fiber.NewError(fiber.StatusBadRequest, "is_active required")
	}

	ctx, cancel := context.WithTimeout(userContext(c), 5*time.Second)
	defer cancel()

	if err := r.apiKeys.UpdateAPIKeyStatus(ctx, currentUserID(c), c.Params("exchange"), *req.IsActive); err != nil {
		return toHTTPError(err)
	}
	return c.JSON(fiber.Map{"is_active": *req.IsActive})
}

// deleteAPIKey godoc
// @Summary Delete the API key of an exchange
// @Tags api-keys
// @Security BearerAuth
// @Param exchange path string true "Exchange name"
// @Success 204
// @Failure 404 {object} map[string]string
// @Router /exchange-api-keys/{exchange} [delete]
func (r *Router) deleteAPIKey(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(userContext(c), 5*time.Second)
	defer cancel()

	if err := r.apiKeys.DeleteAPIKey(ctx, currentUserID(c), c.Params("exchange")); err != nil {
		return toHTTPError(err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// syncSnapshot godoc
// @Summary Record today's entry from the balance feed
// @Tags snapshots
// @Produce json
// @Security BearerAuth
// @Success 201 {object} domain.DerivedEntry
// @Failure 422 {object} map[string]string
// @Failure 503 {object} map[string]string
// @Router /snapshots/sync [post]
func (r *Router) syncSnapshot(c *fiber.Ctx) error {
	if r.snapshots == nil {
		return fiber.NewError(fiber.StatusServiceUnavailable, "balance feed not configured")
	}

	ctx, cancel := context.WithTimeout(userContext(c), 30*time.Second)
	defer cancel()

	entry, err := r.snapshots.SyncUser(ctx, currentUserID(c))
	if err != nil {
		return toHTTPError(err)
	}
	return c.Status(fiber.StatusCreated).JSON(entry)
}
