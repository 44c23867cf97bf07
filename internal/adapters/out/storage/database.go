package storage

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"skate/internal/pkg/errs"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

// sqliteParams keeps concurrent writers waiting instead of failing with
// SQLITE_BUSY, and takes the write lock when a transaction begins.
const sqliteParams = "?_busy_timeout=5000&_journal_mode=WAL&_txlock=immediate"

// Config describes the database connection.
type Config struct {
	Driver string

	// Path is the SQLite database file.
	Path string

	Host     string
	Port     string
	User     string
	Password string
	Name     string
	SSLMode  string

	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

// Open connects to the configured database and returns the shared pool.
// For SQLite the database file and its directory are created first when absent.
// Open is meant to run once at process start.
func Open(ctx context.Context, cfg Config, logger *slog.Logger) (*gorm.DB, error) {
	dialector, err := dialectorFor(cfg, logger)
	if err != nil {
		return nil, err
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: gormlogger.New(
			slog.NewLogLogger(logger.Handler(), slog.LevelWarn),
			gormlogger.Config{
				SlowThreshold:             200 * time.Millisecond,
				LogLevel:                  gormlogger.Warn,
				IgnoreRecordNotFoundError: true,
			},
		),
	})
	if err != nil {
		return nil, errs.NewStorageFailureError("open database", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, errs.NewStorageFailureError("open database", err)
	}

	if cfg.MaxOpenConns > 0 {
		sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	}
	if cfg.MaxIdleConns > 0 {
		sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	}
	if cfg.ConnMaxLifetime > 0 {
		sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	}

	if err = sqlDB.PingContext(ctx); err != nil {
		_ = sqlDB.Close()
		return nil, errs.NewStorageFailureError("ping database", err)
	}

	logger.InfoContext(ctx, "Database connected", "driver", cfg.Driver)
	return db, nil
}

// Close releases the pool behind db.
func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// EnsureDatabaseFile creates an empty SQLite file at path, including missing parent
// directories, unless it already exists. It reports whether the file was created.
func EnsureDatabaseFile(path string) (bool, error) {
	if path == "" {
		return false, errs.NewValueIsRequiredError("DB_PATH")
	}

	if _, err := os.Stat(path); err == nil {
		return false, nil
	} else if !errors.Is(err, fs.ErrNotExist) {
		return false, fmt.Errorf("stat database file: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return false, fmt.Errorf("create database directory: %w", err)
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o644)
	if err != nil {
		if errors.Is(err, fs.ErrExist) {
			return false, nil
		}
		return false, fmt.Errorf("create database file: %w", err)
	}

	return true, f.Close()
}

func dialectorFor(cfg Config, logger *slog.Logger) (gorm.Dialector, error) {
	switch cfg.Driver {
	case DriverSQLite:
		created, err := EnsureDatabaseFile(cfg.Path)
		if err != nil {
			return nil, err
		}
		if created {
			logger.Info("Database file created", "path", cfg.Path)
		}
		return sqlite.Open(cfg.Path + sqliteParams), nil
	case DriverPostgres:
		dsn := fmt.Sprintf(
			"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
			cfg.Host, cfg.Port, cfg.User, cfg.Password, cfg.Name, cfg.SSLMode,
		)
		return postgres.Open(dsn), nil
	default:
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"DB_DRIVER",
			fmt.Errorf("%q is not one of %q, %q", cfg.Driver, DriverSQLite, DriverPostgres),
		)
	}
}
