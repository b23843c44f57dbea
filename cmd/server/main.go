package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-co-op/gocron/v2"

	docs "pnl_tracker/docs"
	"pnl_tracker/internal/config"
	"pnl_tracker/internal/infra/db"
	"pnl_tracker/internal/infra/httpclient"
	applogger "pnl_tracker/internal/infra/logger"
	"pnl_tracker/internal/infra/repository"
	httptransport "pnl_tracker/internal/transport/http"
	"pnl_tracker/internal/usecase"
)

// @title Crypto PnL Tracker API
// @version 1.0
// @description Daily exchange balances, PnL and ROI analytics, KPI projections and smart alerts.
// @BasePath /api/v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

func main() {
	rootCtx := context.Background()

	applogger.Init("info") // Initialize with default level first
	logger := applogger.Logger

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal().Err(err).Msg("load config")
	}

	applogger.Init(cfg.Logging.Level)
	logger = applogger.Logger
	logger.Info().Str("level", cfg.Logging.Level).Msg("logger initialized")

	docs.SwaggerInfo.Title = "Crypto PnL Tracker API"
	docs.SwaggerInfo.Version = "1.0"
	docs.SwaggerInfo.Description = "Daily exchange balances, PnL and ROI analytics, KPI projections and smart alerts."
	docs.SwaggerInfo.BasePath = "/api/v1"

	defaults, err := config.LoadDefaults(cfg.Portfolio.DefaultsFile)
	if err != nil {
		logger.Fatal().Err(err).Str("path", cfg.Portfolio.DefaultsFile).Msg("load defaults")
	}

	logger.Info().Str("driver", cfg.Database.Driver).Str("dsn", maskDSN(cfg.Database.DSN)).Msg("connecting to database")
	gormDB, err := db.Connect(rootCtx, cfg.Database.Driver, cfg.Database.DSN)
	if err != nil {
		logger.Fatal().Err(err).Msg("connect database")
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		logger.Fatal().Err(err).Msg("underlying sql db")
	}
	defer sqlDB.Close()
	logger.Info().Msg("database connected successfully")

	if err := db.ApplyMigrations(rootCtx, gormDB); err != nil {
		logger.Fatal().Err(err).Msg("apply migrations")
	}
	logger.Info().Msg("migrations applied successfully")

	entryRepo, err := repository.NewGormEntryRepository(gormDB)
	if err != nil {
		logger.Fatal().Err(err).Msg("init entry repository")
	}
	configRepo, err := repository.NewGormConfigRepository(gormDB)
	if err != nil {
		logger.Fatal().Err(err).Msg("init config repository")
	}
	capitalRepo, err := repository.NewGormCapitalRepository(gormDB)
	if err != nil {
		logger.Fatal().Err(err).Msg("init capital repository")
	}
	userRepo, err := repository.NewGormUserRepository(gormDB)
	if err != nil {
		logger.Fatal().Err(err).Msg("init user repository")
	}
	apiKeyRepo, err := repository.NewGormAPIKeyRepository(gormDB)
	if err != nil {
		logger.Fatal().Err(err).Msg("init api key repository")
	}

	configService, err := usecase.NewConfigService(usecase.ConfigRepositories{
		Exchanges:        configRepo,
		KPIs:             configRepo,
		StartingBalances: capitalRepo,
		Deposits:         capitalRepo,
	}, defaults, cfg.Portfolio.Currency, usecase.NewUserLocks())
	if err != nil {
		logger.Fatal().Err(err).Msg("init config service")
	}
	portfolioService, err := usecase.NewPortfolioService(entryRepo, configService, defaults.AlertSettings())
	if err != nil {
		logger.Fatal().Err(err).Msg("init portfolio service")
	}
	apiKeyService, err := usecase.NewAPIKeyService(apiKeyRepo)
	if err != nil {
		logger.Fatal().Err(err).Msg("init api key service")
	}
	userService, err := usecase.NewUserService(userRepo)
	if err != nil {
		logger.Fatal().Err(err).Msg("init user service")
	}

	services := httptransport.Services{
		Portfolio: portfolioService,
		Config:    configService,
		APIKeys:   apiKeyService,
		Users:     userService,
	}

	var snapshotService *usecase.SnapshotService
	if cfg.Snapshot.FeedURL != "" {
		logger.Info().Str("url", cfg.Snapshot.FeedURL).Msg("initializing balance feed client")
		feed, err := httpclient.NewBalanceFeedClient(cfg.Snapshot.FeedURL)
		if err != nil {
			logger.Fatal().Err(err).Msg("init balance feed client")
		}
		snapshotService, err = usecase.NewSnapshotService(feed, userRepo, apiKeyService, portfolioService)
		if err != nil {
			logger.Fatal().Err(err).Msg("init snapshot service")
		}
		services.Snapshots = snapshotService
	} else {
		logger.Info().Msg("BALANCE_FEED_URL not set, automatic snapshots disabled")
	}

	logger.Info().Msg("all services initialized")

	router := httptransport.New(services)

	if snapshotService != nil {
		logger.Info().Dur("interval", cfg.Snapshot.Interval).Msg("initializing scheduler")
		scheduler, err := gocron.NewScheduler()
		if err != nil {
			logger.Fatal().Err(err).Msg("init scheduler")
		}
		defer func() {
			if err := scheduler.Shutdown(); err != nil {
				logger.Error().Err(err).Msg("scheduler shutdown error")
			}
		}()

		_, err = scheduler.NewJob(
			gocron.DurationJob(cfg.Snapshot.Interval),
			gocron.NewTask(func(ctx context.Context) {
				logger.Info().Msg("scheduled snapshot sync started")
				count, err := snapshotService.Sync(ctx)
				if err != nil {
					logger.Error().Err(err).Msg("scheduled snapshot sync error")
					return
				}
				logger.Info().Int("users", count).Msg("scheduled snapshot sync completed")
			}),
			gocron.WithSingletonMode(gocron.LimitModeReschedule),
		)
		if err != nil {
			logger.Fatal().Err(err).Msg("schedule job")
		}
		scheduler.Start()
		logger.Info().Msg("scheduler started")
	}

	serverErr := make(chan error, 1)
	go func() {
		addr := ":" + cfg.Server.Port
		logger.Info().Str("addr", addr).Msg("server listening")
		serverErr <- router.App().Listen(addr)
	}()

	signalCh := make(chan os.Signal, 1)
	signal.Notify(signalCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErr:
		if err != nil {
			logger.Fatal().Err(err).Msg("fiber server error")
		}
	case sig := <-signalCh:
		logger.Info().Str("signal", sig.String()).Msg("received signal, shutting down")
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := router.App().ShutdownWithContext(ctx); err != nil {
			logger.Error().Err(err).Msg("server shutdown error")
		}
		logger.Info().Msg("server shutdown complete")
	}
}

// maskDSN hides credentials in postgres URLs; sqlite paths pass through.
func maskDSN(dsn string) string {
	if len(dsn) > 20 {
		return dsn[:10] + "***" + dsn[len(dsn)-10:]
	}
	return dsn
}
