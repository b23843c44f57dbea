package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"pnl_tracker/internal/domain"
)

// GormCapitalRepository stores starting balances and capital deposits, the two baselines ROI is
// measured against.
type GormCapitalRepository struct {
	db *gorm.DB
}

func NewGormCapitalRepository(db *gorm.DB) (*GormCapitalRepository, error) {
	if db == nil {
		return nil, fmt.Errorf("db is required")
	}
	return &GormCapitalRepository{db: db}, nil
}

func (r *GormCapitalRepository) UpsertStartingBalance(ctx context.Context, sb domain.StartingBalance) (domain.StartingBalance, error) {
	model := toStartingBalanceModel(sb)

	assignments := clause.Assignments(map[string]interface{}{
		"starting_balance": gorm.Expr("EXCLUDED.starting_balance"),
		"starting_date":    gorm.Expr("EXCLUDED.starting_date"),
		"updated_at":       gorm.Expr("CURRENT_TIMESTAMP"),
	})

	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "exchange_id"}},
			DoUpdates: assignments,
		}).
		Create(&model).Error
	if err != nil {
		return domain.StartingBalance{}, err
	}
	return model.toDomain(), nil
}

func (r *GormCapitalRepository) DeleteStartingBalance(ctx context.Context, userID, exchangeID string) error {
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND exchange_id = ?", userID, exchangeID).
		Delete(&StartingBalanceModel{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.NewNotFoundError("starting balance", exchangeID)
	}
	return nil
}

func (r *GormCapitalRepository) ListStartingBalances(ctx context.Context, userID string) ([]domain.StartingBalance, error) {
	var models []StartingBalanceModel
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("exchange_id ASC").
		Find(&models).Error; err != nil {
		return nil, err
	}

	balances := make([]domain.StartingBalance, len(models))
	for i, model := range models {
		balances[i] = model.toDomain()
	}
	return balances, nil
}

func (r *GormCapitalRepository) AddDeposit(ctx context.Context, deposit domain.CapitalDeposit) (domain.CapitalDeposit, error) {
	if deposit.ID == "" {
		deposit.ID = uuid.NewString()
	}
	model := toCapitalDepositModel(deposit)
	if err := r.db.WithContext(ctx).Create(&model).Error; err != nil {
		return domain.CapitalDeposit{}, err
	}
	return model.toDomain(), nil
}

func (r *GormCapitalRepository) UpdateDeposit(ctx context.Context, deposit domain.CapitalDeposit) (domain.CapitalDeposit, error) {
	model := toCapitalDepositModel(deposit)
	result := r.db.WithContext(ctx).Model(&CapitalDepositModel{}).
		Where("id = ? AND user_id = ?", model.ID, model.UserID).
		Updates(map[string]interface{}{
			"amount":       model.Amount,
			"deposit_date": model.DepositDate,
			"notes":        model.Notes,
		})
	if result.Error != nil {
		return domain.CapitalDeposit{}, result.Error
	}
	if result.RowsAffected == 0 {
		return domain.CapitalDeposit{}, domain.NewNotFoundError("deposit", deposit.ID)
	}

	var stored CapitalDepositModel
	if err := r.db.WithContext(ctx).Where("id = ?", model.ID).First(&stored).Error; err != nil {
		return domain.CapitalDeposit{}, err
	}
	return stored.toDomain(), nil
}

func (r *GormCapitalRepository) DeleteDeposit(ctx context.Context, userID, depositID string) error {
	result := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", depositID, userID).
		Delete(&CapitalDepositModel{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.NewNotFoundError("deposit", depositID)
	}
	return nil
}

func (r *GormCapitalRepository) ListDeposits(ctx context.Context, userID string) ([]domain.CapitalDeposit, error) {
	var models []CapitalDepositModel
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("deposit_date ASC").
		Find(&models).Error; err != nil {
		return nil, err
	}

	deposits := make([]domain.CapitalDeposit, len(models))
	for i, model := range models {
		deposits[i] = model.toDomain()
	}
	return deposits, nil
}
