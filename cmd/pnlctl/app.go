package main

import (
	"context"
	"fmt"

	"pnl_tracker/internal/config"
	"pnl_tracker/internal/infra/db"
	applogger "pnl_tracker/internal/infra/logger"
	"pnl_tracker/internal/infra/repository"
	"pnl_tracker/internal/usecase"
)

type app struct {
	users     *usecase.UserService
	config    *usecase.ConfigService
	portfolio *usecase.PortfolioService
	close     func()
}

// openApp wires the same stack as the server, minus the HTTP layer and the scheduler.
func openApp(ctx context.Context) (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	applogger.InitWithWriter(cfg.Logging.Level, stderr)

	defaults, err := config.LoadDefaults(cfg.Portfolio.DefaultsFile)
	if err != nil {
		return nil, fmt.Errorf("load defaults: %w", err)
	}

	gormDB, err := db.Connect(ctx, cfg.Database.Driver, cfg.Database.DSN)
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		return nil, fmt.Errorf("underlying sql db: %w", err)
	}
	if err := db.ApplyMigrations(ctx, gormDB); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("apply migrations: %w", err)
	}

	entryRepo, err := repository.NewGormEntryRepository(gormDB)
	if err != nil {
		return nil, err
	}
	configRepo, err := repository.NewGormConfigRepository(gormDB)
	if err != nil {
		return nil, err
	}
	capitalRepo, err := repository.NewGormCapitalRepository(gormDB)
	if err != nil {
		return nil, err
	}
	userRepo, err := repository.NewGormUserRepository(gormDB)
	if err != nil {
		return nil, err
	}

	configService, err := usecase.NewConfigService(usecase.ConfigRepositories{
		Exchanges:        configRepo,
		KPIs:             configRepo,
		StartingBalances: capitalRepo,
		Deposits:         capitalRepo,
	}, defaults, cfg.Portfolio.Currency, usecase.NewUserLocks())
	if err != nil {
		return nil, err
	}
	portfolioService, err := usecase.NewPortfolioService(entryRepo, configService, defaults.AlertSettings())
	if err != nil {
		return nil, err
	}
	userService, err := usecase.NewUserService(userRepo)
	if err != nil {
		return nil, err
	}

	return &app{
		users:     userService,
		config:    configService,
		portfolio: portfolioService,
		close:     func() { sqlDB.Close() },
	}, nil
}
