package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"pnl_tracker/internal/domain"
)

type GormAPIKeyRepository struct {
	db *gorm.DB
}

func NewGormAPIKeyRepository(db *gorm.DB) (*GormAPIKeyRepository, error) {
	if db == nil {
		return nil, fmt.Errorf("db is required")
	}
	return &GormAPIKeyRepository{db: db}, nil
}

// AddAPIKey stores credentials for an exchange, replacing any previous pair for the same exchange.
func (r *GormAPIKeyRepository) AddAPIKey(ctx context.Context, key domain.ExchangeAPIKey) error {
	if key.ID == "" {
		key.ID = uuid.NewString()
	}
	key.ExchangeName = strings.ToLower(strings.TrimSpace(key.ExchangeName))
	model := toExchangeAPIKeyModel(key)

	assignments := clause.Assignments(map[string]interface{}{
		"api_key":    gorm.Expr("EXCLUDED.api_key"),
		"api_secret": gorm.Expr("EXCLUDED.api_secret"),
		"enabled":    gorm.Expr("EXCLUDED.enabled"),
		"updated_at": gorm.Expr("CURRENT_TIMESTAMP"),
	})

	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "exchange_name"}},
			DoUpdates: assignments,
		}).
		Create(&model).Error
}

func (r *GormAPIKeyRepository) UpdateAPIKeyStatus(ctx context.Context, userID, exchangeName string, active bool) error {
	result := r.db.WithContext(ctx).
		Model(&ExchangeAPIKeyModel{}).
		Where("user_id = ? AND exchange_name = ?", userID, strings.ToLower(exchangeName)).
		Update("enabled", active)

	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return domain.NewNotFoundError("api key", exchangeName)
	}

	return nil
}

func (r *GormAPIKeyRepository) DeleteAPIKey(ctx context.Context, userID, exchangeName string) error {
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND exchange_name = ?", userID, strings.ToLower(exchangeName)).
		Delete(&ExchangeAPIKeyModel{})

	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return domain.NewNotFoundError("api key", exchangeName)
	}

	return nil
}

func (r *GormAPIKeyRepository) APIKeyExists(ctx context.Context, userID, exchangeName string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&ExchangeAPIKeyModel{}).
		Where("user_id = ? AND exchange_name = ?", userID, strings.ToLower(exchangeName)).
		Count(&count).Error

	if err != nil {
		return false, err
	}

	return count > 0, nil
}

func (r *GormAPIKeyRepository) ListAPIKeys(ctx context.Context, userID string) ([]domain.ExchangeAPIKey, error) {
	var models []ExchangeAPIKeyModel
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("exchange_name ASC").
		Find(&models).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	keys := make([]domain.ExchangeAPIKey, len(models))
	for i, model := range models {
		keys[i] = model.toDomain()
	}
	return keys, nil
}
