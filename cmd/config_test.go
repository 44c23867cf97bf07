package cmd_test

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"skate/cmd"
	"skate/internal/adapters/out/storage"
	"skate/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	config, err := cmd.LoadConfig(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.Equal(t, "8080", config.HTTPPort)
	assert.Equal(t, storage.DriverSQLite, config.DBDriver)
	assert.Equal(t, "db/orders.db", config.DBPath)
	assert.Equal(t, 30*time.Minute, config.DBConnMaxLifetime)
	assert.Equal(t, "0 */10 * * * *", config.OrphanSweepSchedule)
	assert.Equal(t, 10*time.Second, config.ShutdownTimeout)
}

func TestLoadConfig_EnvironmentOverrides(t *testing.T) {
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("DB_DRIVER", "POSTGRES")
	t.Setenv("DB_NAME", "orders")
	t.Setenv("DB_USER", "skate")
	t.Setenv("DB_MAX_OPEN_CONNS", "25")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("ORPHAN_SWEEP_SCHEDULE", "")

	config, err := cmd.LoadConfig("")
	require.NoError(t, err)

	assert.Equal(t, "9090", config.HTTPPort)
	assert.Equal(t, storage.DriverPostgres, config.DBDriver)
	assert.Equal(t, 25, config.Storage().MaxOpenConns)
	assert.Equal(t, "orders", config.Storage().Name)
	assert.Empty(t, config.OrphanSweepSchedule)

	level, err := config.SlogLevel()
	require.NoError(t, err)
	assert.Equal(t, slog.LevelDebug, level)
}

func TestLoadConfig_DotEnvFile(t *testing.T) {
	envFile := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(envFile, []byte("DB_PATH=/tmp/skate/from-dotenv.db\n"), 0o600))
	t.Cleanup(func() { _ = os.Unsetenv("DB_PATH") })

	config, err := cmd.LoadConfig(envFile)
	require.NoError(t, err)

	assert.Equal(t, "/tmp/skate/from-dotenv.db", config.DBPath)
}

func TestLoadConfig_InvalidSettings(t *testing.T) {
	t.Setenv("DB_DRIVER", "oracle")
	t.Setenv("LOG_LEVEL", "loud")

	_, err := cmd.LoadConfig("")

	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	assert.Contains(t, err.Error(), "DB_DRIVER")
	assert.Contains(t, err.Error(), "LOG_LEVEL")
}

func TestConfig_Validate_PostgresRequiresNameAndUser(t *testing.T) {
	config := cmd.Config{HTTPPort: "8080", DBDriver: storage.DriverPostgres, LogLevel: "info"}

	err := config.Validate()

	require.ErrorIs(t, err, errs.ErrValueIsRequired)
	assert.Contains(t, err.Error(), "DB_NAME")
	assert.Contains(t, err.Error(), "DB_USER")
}
