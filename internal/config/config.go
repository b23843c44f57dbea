package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type ServerConfig struct {
	Port string
}

type DatabaseConfig struct {
	Driver string
	DSN    string
}

type LoggingConfig struct {
	Level string
}

type PortfolioConfig struct {
	Currency     string
	DefaultsFile string
}

type SnapshotConfig struct {
	FeedURL  string
	Interval time.Duration
}

type AppConfig struct {
	Server    ServerConfig
	Database  DatabaseConfig
	Logging   LoggingConfig
	Portfolio PortfolioConfig
	Snapshot  SnapshotConfig
}

func Load() (*AppConfig, error) {
	_ = godotenv.Load()

	viper.AutomaticEnv()

	viper.SetDefault("SERVER_PORT", "3000")
	viper.SetDefault("DATABASE_DRIVER", "sqlite")
	viper.SetDefault("DATABASE_DSN", "data/pnl.db")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("DISPLAY_CURRENCY", "EUR")
	viper.SetDefault("DEFAULTS_FILE", "")
	viper.SetDefault("BALANCE_FEED_URL", "")
	viper.SetDefault("SNAPSHOT_INTERVAL", "24h")

	interval, err := time.ParseDuration(viper.GetString("SNAPSHOT_INTERVAL"))
	if err != nil {
		return nil, fmt.Errorf("invalid snapshot interval: %w", err)
	}

	cfg := &AppConfig{
		Server: ServerConfig{
			Port: viper.GetString("SERVER_PORT"),
		},
		Database: DatabaseConfig{
			Driver: strings.ToLower(strings.TrimSpace(viper.GetString("DATABASE_DRIVER"))),
			DSN:    viper.GetString("DATABASE_DSN"),
		},
		Logging: LoggingConfig{
			Level: viper.GetString("LOG_LEVEL"),
		},
		Portfolio: PortfolioConfig{
			Currency:     strings.ToUpper(strings.TrimSpace(viper.GetString("DISPLAY_CURRENCY"))),
			DefaultsFile: viper.GetString("DEFAULTS_FILE"),
		},
		Snapshot: SnapshotConfig{
			FeedURL:  strings.TrimSpace(viper.GetString("BALANCE_FEED_URL")),
			Interval: interval,
		},
	}

	if cfg.Database.DSN == "" {
		return nil, fmt.Errorf("DATABASE_DSN is required")
	}
	switch cfg.Database.Driver {
	case "sqlite", "postgres":
	default:
		return nil, fmt.Errorf("unsupported DATABASE_DRIVER %q", cfg.Database.Driver)
	}
	if cfg.Snapshot.Interval <= 0 {
		return nil, fmt.Errorf("SNAPSHOT_INTERVAL must be positive")
	}

	return cfg, nil
}
