package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	ServerAddress string `mapstructure:"SERVER_ADDRESS"`
	ServiceName   string `mapstructure:"SERVICE_NAME"`
	Env           string `mapstructure:"APP_ENV"`

	DBDriver          string        `mapstructure:"DB_DRIVER"`
	PostgresConn      string        `mapstructure:"POSTGRES_CONN"`
	DBDSN             string        `mapstructure:"DB_DSN"`
	DBMaxOpenConns    int           `mapstructure:"DB_MAX_OPEN_CONNS"`
	DBMaxIdleConns    int           `mapstructure:"DB_MAX_IDLE_CONNS"`
	DBConnMaxLifetime time.Duration `mapstructure:"DB_CONN_MAX_LIFETIME"`
	RunMigrations     bool          `mapstructure:"RUN_MIGRATIONS"`

	LogLevel        string        `mapstructure:"LOG_LEVEL"`
	RequestTimeout  time.Duration `mapstructure:"REQUEST_TIMEOUT"`
	ShutdownTimeout time.Duration `mapstructure:"SHUTDOWN_TIMEOUT"`
}

var defaults = map[string]interface{}{
	"SERVER_ADDRESS":       "0.0.0.0:8080",
	"SERVICE_NAME":         "sitesense",
	"APP_ENV":              "development",
	"DB_DRIVER":            "postgres",
	"POSTGRES_CONN":        "",
	"DB_DSN":               "",
	"DB_MAX_OPEN_CONNS":    25,
	"DB_MAX_IDLE_CONNS":    5,
	"DB_CONN_MAX_LIFETIME": time.Hour,
	"RUN_MIGRATIONS":       true,
	"LOG_LEVEL":            "info",
	"REQUEST_TIMEOUT":      5 * time.Second,
	"SHUTDOWN_TIMEOUT":     10 * time.Second,
}

// Load reads path/app.env when present, then lets the environment override it.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.AddConfigPath(path)
	v.SetConfigName("app")
	v.SetConfigType("env")
	v.AutomaticEnv()
	for k, val := range defaults {
		v.SetDefault(k, val)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// DSN prefers DB_DSN over POSTGRES_CONN.
func (c *Config) DSN() string {
	if c.DBDSN != "" {
		return c.DBDSN
	}
	return c.PostgresConn
}

func (c *Config) validate() error {
	switch c.DBDriver {
	case "postgres", "pgx", "sqlite":
	default:
		return fmt.Errorf("unsupported DB_DRIVER %q", c.DBDriver)
	}
	if c.DSN() == "" {
		return errors.New("database connection string is empty: set DB_DSN or POSTGRES_CONN")
	}
	return nil
}
