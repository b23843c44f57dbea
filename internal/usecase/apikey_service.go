package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"pnl_tracker/internal/domain"
)

type APIKeyService struct {
	apiKeyRepo domain.APIKeyRepository
}

func NewAPIKeyService(apiKeyRepo domain.APIKeyRepository) (*APIKeyService, error) {
	if apiKeyRepo == nil {
		return nil, errors.New("api key repository required")
	}
	return &APIKeyService{
		apiKeyRepo: apiKeyRepo,
	}, nil
}

// AddAPIKey stores credentials for exchangeName. Existing credentials for the same exchange are
// replaced and re-enabled.
func (s *APIKeyService) AddAPIKey(ctx context.Context, userID, exchangeName, apiKey, apiSecret string) (domain.ExchangeAPIKey, error) {
	exchangeName = strings.ToLower(strings.TrimSpace(exchangeName))
	if exchangeName == "" {
		return domain.ExchangeAPIKey{}, domain.NewValidationError("exchange_name", "required")
	}
	if strings.TrimSpace(apiKey) == "" {
		return domain.ExchangeAPIKey{}, domain.NewValidationError("api_key", "required")
	}
	if strings.TrimSpace(apiSecret) == "" {
		return domain.ExchangeAPIKey{}, domain.NewValidationError("api_secret", "required")
	}

	key := domain.ExchangeAPIKey{
		UserID:       userID,
		ExchangeName: exchangeName,
		APIKey:       strings.TrimSpace(apiKey),
		APISecret:    strings.TrimSpace(apiSecret),
		Active:       true,
	}
	if err := s.apiKeyRepo.AddAPIKey(ctx, key); err != nil {
		return domain.ExchangeAPIKey{}, fmt.Errorf("failed to store api key: %w", err)
	}

	stored, err := s.apiKeyRepo.ListAPIKeys(ctx, userID)
	if err != nil {
		return domain.ExchangeAPIKey{}, err
	}
	for _, k := range stored {
		if k.ExchangeName == exchangeName {
			return k, nil
		}
	}
	return key, nil
}

func (s *APIKeyService) UpdateAPIKeyStatus(ctx context.Context, userID, exchangeName string, active bool) error {
	if strings.TrimSpace(exchangeName) == "" {
		return domain.NewValidationError("exchange_name", "required")
	}

	return s.apiKeyRepo.UpdateAPIKeyStatus(ctx, userID, exchangeName, active)
}

func (s *APIKeyService) DeleteAPIKey(ctx context.Context, userID, exchangeName string) error {
	if strings.TrimSpace(exchangeName) == "" {
		return domain.NewValidationError("exchange_name", "required")
	}

	return s.apiKeyRepo.DeleteAPIKey(ctx, userID, exchangeName)
}

func (s *APIKeyService) APIKeyExists(ctx context.Context, userID, exchangeName string) (bool, error) {
	if strings.TrimSpace(exchangeName) == "" {
		return false, domain.NewValidationError("exchange_name", "required")
	}

	return s.apiKeyRepo.APIKeyExists(ctx, userID, exchangeName)
}

func (s *APIKeyService) ListAPIKeys(ctx context.Context, userID string) ([]domain.ExchangeAPIKey, error) {
	return s.apiKeyRepo.ListAPIKeys(ctx, userID)
}

// ActiveAPIKeys returns only the credentials the snapshot job may use.
func (s *APIKeyService) ActiveAPIKeys(ctx context.Context, userID string) ([]domain.ExchangeAPIKey, error) {
	keys, err := s.apiKeyRepo.ListAPIKeys(ctx, userID)
	if err != nil {
		return nil, err
	}
	active := keys[:0]
	for _, k := range keys {
		if k.Active {
			active = append(active, k)
		}
	}
	return active, nil
}
