package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"strings"
	"time"

	"skate/internal/adapters/out/storage"
	"skate/internal/pkg/errs"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	HTTPPort string

	DBDriver          string
	DBPath            string
	DBHost            string
	DBPort            string
	DBUser            string
	DBPassword        string
	DBName            string
	DBSslMode         string
	DBMaxOpenConns    int
	DBMaxIdleConns    int
	DBConnMaxLifetime time.Duration

	LogLevel            string
	OrphanSweepSchedule string
	ShutdownTimeout     time.Duration
}

var defaults = map[string]any{
	"HTTP_PORT":             "8080",
	"DB_DRIVER":             storage.DriverSQLite,
	"DB_PATH":               "db/orders.db",
	"DB_HOST":               "localhost",
	"DB_PORT":               "5432",
	"DB_SSLMODE":            "disable",
	"DB_MAX_OPEN_CONNS":     10,
	"DB_MAX_IDLE_CONNS":     5,
	"DB_CONN_MAX_LIFETIME":  "30m",
	"LOG_LEVEL":             "info",
	"ORPHAN_SWEEP_SCHEDULE": "0 */10 * * * *",
	"SHUTDOWN_TIMEOUT":      "10s",
}

// LoadConfig reads the configuration from the environment. Variables from envFile
// are loaded first when the file exists; variables already set in the process win.
// A variable set to the empty string overrides its default, which is how
// ORPHAN_SWEEP_SCHEDULE is switched off.
func LoadConfig(envFile string) (Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load %s: %w", envFile, err)
		}
	}

	v := viper.New()
	for key, value := range defaults {
		v.SetDefault(key, value)
	}
	v.AllowEmptyEnv(true)
	v.AutomaticEnv()

	config := Config{
		HTTPPort:            v.GetString("HTTP_PORT"),
		DBDriver:            strings.ToLower(v.GetString("DB_DRIVER")),
		DBPath:              v.GetString("DB_PATH"),
		DBHost:              v.GetString("DB_HOST"),
		DBPort:              v.GetString("DB_PORT"),
		DBUser:              v.GetString("DB_USER"),
		DBPassword:          v.GetString("DB_PASSWORD"),
		DBName:              v.GetString("DB_NAME"),
		DBSslMode:           v.GetString("DB_SSLMODE"),
		DBMaxOpenConns:      v.GetInt("DB_MAX_OPEN_CONNS"),
		DBMaxIdleConns:      v.GetInt("DB_MAX_IDLE_CONNS"),
		DBConnMaxLifetime:   v.GetDuration("DB_CONN_MAX_LIFETIME"),
		LogLevel:            v.GetString("LOG_LEVEL"),
		OrphanSweepSchedule: v.GetString("ORPHAN_SWEEP_SCHEDULE"),
		ShutdownTimeout:     v.GetDuration("SHUTDOWN_TIMEOUT"),
	}

	if err := config.Validate(); err != nil {
		return Config{}, err
	}

	return config, nil
}

// Validate reports every missing or malformed setting.
func (c Config) Validate() error {
	var validationErrs []error

	if c.HTTPPort == "" {
		validationErrs = append(validationErrs, errs.NewValueIsRequiredError("HTTP_PORT"))
	}

	switch c.DBDriver {
	case storage.DriverSQLite:
		if c.DBPath == "" {
			validationErrs = append(validationErrs, errs.NewValueIsRequiredError("DB_PATH"))
		}
	case storage.DriverPostgres:
		if c.DBName == "" {
			validationErrs = append(validationErrs, errs.NewValueIsRequiredError("DB_NAME"))
		}
		if c.DBUser == "" {
			validationErrs = append(validationErrs, errs.NewValueIsRequiredError("DB_USER"))
		}
	default:
		validationErrs = append(validationErrs, errs.NewValueIsInvalidErrorWithCause(
			"DB_DRIVER", fmt.Errorf("%q is not supported", c.DBDriver)))
	}

	if _, err := c.SlogLevel(); err != nil {
		validationErrs = append(validationErrs, err)
	}

	return errors.Join(validationErrs...)
}

// Storage returns the database settings.
func (c Config) Storage() storage.Config {
	return storage.Config{
		Driver:          c.DBDriver,
		Path:            c.DBPath,
		Host:            c.DBHost,
		Port:            c.DBPort,
		User:            c.DBUser,
		Password:        c.DBPassword,
		Name:            c.DBName,
		SSLMode:         c.DBSslMode,
		MaxOpenConns:    c.DBMaxOpenConns,
		MaxIdleConns:    c.DBMaxIdleConns,
		ConnMaxLifetime: c.DBConnMaxLifetime,
	}
}

// SlogLevel parses LogLevel ("debug", "info", "warn", "error").
func (c Config) SlogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo, errs.NewValueIsInvalidErrorWithCause("LOG_LEVEL", err)
	}
	return level, nil
}
