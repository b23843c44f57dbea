package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"pnl_tracker/internal/domain"
)

// GormConfigRepository stores the per-user exchange and KPI lists.
type GormConfigRepository struct {
	db *gorm.DB
}

func NewGormConfigRepository(db *gorm.DB) (*GormConfigRepository, error) {
	if db == nil {
		return nil, fmt.Errorf("db is required")
	}
	return &GormConfigRepository{db: db}, nil
}

func (r *GormConfigRepository) CreateExchange(ctx context.Context, exchange domain.Exchange) (domain.Exchange, error) {
	if exchange.ID == "" {
		exchange.ID = uuid.NewString()
	}
	model := toExchangeModel(exchange)
	if err := r.db.WithContext(ctx).Create(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.Exchange{}, fmt.Errorf("exchange %q already exists: %w", exchange.Name, domain.ErrConflict)
		}
		return domain.Exchange{}, err
	}
	return model.toDomain(), nil
}

func (r *GormConfigRepository) UpdateExchange(ctx context.Context, exchange domain.Exchange) (domain.Exchange, error) {
	model := toExchangeModel(exchange)
	result := r.db.WithContext(ctx).Model(&ExchangeModel{}).
		Where("id = ? AND user_id = ?", model.ID, model.UserID).
		Updates(map[string]interface{}{
			"name":         model.Name,
			"display_name": model.DisplayName,
			"color":        model.Color,
		})
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
			return domain.Exchange{}, fmt.Errorf("exchange %q already exists: %w", exchange.Name, domain.ErrConflict)
		}
		return domain.Exchange{}, result.Error
	}
	if result.RowsAffected == 0 {
		return domain.Exchange{}, domain.NewNotFoundError("exchange", exchange.ID)
	}

	var stored ExchangeModel
	if err := r.db.WithContext(ctx).Where("id = ?", model.ID).First(&stored).Error; err != nil {
		return domain.Exchange{}, err
	}
	return stored.toDomain(), nil
}

// DeleteExchange removes the exchange and its starting balance. Recorded entries keep their
// amounts for it.
func (r *GormConfigRepository) DeleteExchange(ctx context.Context, userID, exchangeID string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Where("id = ? AND user_id = ?", exchangeID, userID).Delete(&ExchangeModel{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return domain.NewNotFoundError("exchange", exchangeID)
		}
		return tx.Where("user_id = ? AND exchange_id = ?", userID, exchangeID).
			Delete(&StartingBalanceModel{}).Error
	})
}

func (r *GormConfigRepository) ListExchanges(ctx context.Context, userID string) ([]domain.Exchange, error) {
	var models []ExchangeModel
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at ASC, name ASC").
		Find(&models).Error; err != nil {
		return nil, err
	}

	exchanges := make([]domain.Exchange, len(models))
	for i, model := range models {
		exchanges[i] = model.toDomain()
	}
	return exchanges, nil
}

func (r *GormConfigRepository) CreateKPI(ctx context.Context, kpi domain.KPI) (domain.KPI, error) {
	if kpi.ID == "" {
		kpi.ID = uuid.NewString()
	}
	model := toKPIModel(kpi)
	if err := r.db.WithContext(ctx).Create(&model).Error; err != nil {
		return domain.KPI{}, err
	}
	return model.toDomain(), nil
}

func (r *GormConfigRepository) UpdateKPI(ctx context.Context, kpi domain.KPI) (domain.KPI, error) {
	model := toKPIModel(kpi)
	result := r.db.WithContext(ctx).Model(&KPIModel{}).
		Where("id = ? AND user_id = ?", model.ID, model.UserID).
		Updates(map[string]interface{}{
			"name":          model.Name,
			"target_amount": model.TargetAmount,
			"color":         model.Color,
		})
	if result.Error != nil {
		return domain.KPI{}, result.Error
	}
	if result.RowsAffected == 0 {
		return domain.KPI{}, domain.NewNotFoundError("kpi", kpi.ID)
	}

	var stored KPIModel
	if err := r.db.WithContext(ctx).Where("id = ?", model.ID).First(&stored).Error; err != nil {
		return domain.KPI{}, err
	}
	return stored.toDomain(), nil
}

func (r *GormConfigRepository) DeleteKPI(ctx context.Context, userID, kpiID string) error {
	result := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", kpiID, userID).
		Delete(&KPIModel{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.NewNotFoundError("kpi", kpiID)
	}
	return nil
}

func (r *GormConfigRepository) ListKPIs(ctx context.Context, userID string) ([]domain.KPI, error) {
	var models []KPIModel
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("target_amount ASC").
		Find(&models).Error; err != nil {
		return nil, err
	}

	kpis := make([]domain.KPI, len(models))
	for i, model := range models {
		kpis[i] = model.toDomain()
	}
	return kpis, nil
}
