package db

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"pnl_tracker/internal/infra/repository"
)

func ApplyMigrations(ctx context.Context, db *gorm.DB) error {
	if err := db.WithContext(ctx).AutoMigrate(
		&repository.UserModel{},
		&repository.ExchangeModel{},
		&repository.KPIModel{},
		&repository.StartingBalanceModel{},
		&repository.CapitalDepositModel{},
		&repository.EntryModel{},
		&repository.ExchangeAPIKeyModel{},
	); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}

	return nil
}
