package db

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	applogger "pnl_tracker/internal/infra/logger"
)

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

// zerologWriter adapts zerolog.Logger to gorm logger.Writer interface
type zerologWriter struct {
	logger zerolog.Logger
}

func (w *zerologWriter) Printf(format string, v ...interface{}) {
	w.logger.Warn().Msg(fmt.Sprintf(format, v...))
}

// Connect opens the database for driver and verifies it answers a ping.
func Connect(ctx context.Context, driver, dsn string) (*gorm.DB, error) {
	switch driver {
	case DriverPostgres:
		return connectPostgres(ctx, dsn)
	case DriverSQLite, "":
		return connectSQLite(ctx, dsn)
	default:
		return nil, fmt.Errorf("unsupported database driver %q", driver)
	}
}

func gormConfig() *gorm.Config {
	writer := &zerologWriter{logger: applogger.Component("gorm")}
	return &gorm.Config{
		Logger: logger.New(
			writer,
			logger.Config{
				SlowThreshold:             time.Second,
				LogLevel:                  logger.Warn,
				IgnoreRecordNotFoundError: true,
				Colorful:                  false,
			},
		),
		TranslateError: true,
	}
}
