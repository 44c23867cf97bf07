package jobs_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"skate/internal/core/application/usecases/commands"
	"skate/internal/jobs"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockSweeper struct{ mock.Mock }

func (m *MockSweeper) Handle(ctx context.Context, cmd commands.SweepOrphanItemsCommand) (int64, error) {
	args := m.Called(ctx, cmd)
	return args.Get(0).(int64), args.Error(1)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestOrphanItemSweepJob_RunOnce(t *testing.T) {
	sweeper := new(MockSweeper)
	sweeper.On("Handle", mock.Anything, mock.AnythingOfType("commands.SweepOrphanItemsCommand")).
		Return(int64(3), nil).Once()
	sweeper.On("Handle", mock.Anything, mock.Anything).
		Return(int64(0), errors.New("database is locked")).Once()

	registry := prometheus.NewRegistry()
	job := jobs.NewOrphanItemSweepJob(sweeper, "@every 1h", registry, discardLogger())

	assert.Equal(t, int64(3), job.RunOnce(t.Context()))
	assert.Zero(t, job.RunOnce(t.Context()))

	count, err := testutil.GatherAndCount(registry,
		"skate_order_service_orphan_sweep_runs_total",
		"skate_order_service_orphan_items_removed_total")
	require.NoError(t, err)
	assert.Equal(t, 3, count)
	sweeper.AssertExpectations(t)
}

func TestOrphanItemSweepJob_StartRunsOnSchedule(t *testing.T) {
	ran := make(chan struct{}, 1)
	sweeper := new(MockSweeper)
	sweeper.On("Handle", mock.Anything, mock.Anything).Return(int64(0), nil).Run(func(mock.Arguments) {
		select {
		case ran <- struct{}{}:
		default:
		}
	})

	job := jobs.NewOrphanItemSweepJob(sweeper, "* * * * * *", prometheus.NewRegistry(), discardLogger())
	require.NoError(t, job.Start())
	t.Cleanup(job.Stop)

	select {
	case <-ran:
	case <-time.After(3 * time.Second):
		t.Fatal("sweep did not run within 3s")
	}
}

func TestOrphanItemSweepJob_InvalidSchedule(t *testing.T) {
	job := jobs.NewOrphanItemSweepJob(new(MockSweeper), "every tuesday", prometheus.NewRegistry(), discardLogger())

	require.Error(t, job.Start())
}

func TestJobManager(t *testing.T) {
	t.Run("empty schedule disables the sweep", func(t *testing.T) {
		sweeper := new(MockSweeper)
		jm := jobs.NewJobManager(sweeper, "", prometheus.NewRegistry(), discardLogger())

		require.NoError(t, jm.StartAll())
		jm.StopAll()
		sweeper.AssertNotCalled(t, "Handle", mock.Anything, mock.Anything)
	})

	t.Run("invalid schedule fails to start", func(t *testing.T) {
		jm := jobs.NewJobManager(new(MockSweeper), "not a cron", prometheus.NewRegistry(), discardLogger())

		err := jm.StartAll()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "orphan item sweep job")
	})

	t.Run("valid schedule starts and stops", func(t *testing.T) {
		jm := jobs.NewJobManager(new(MockSweeper), "0 0 3 * * *", prometheus.NewRegistry(), discardLogger())

		require.NoError(t, jm.StartAll())
		jm.StopAll()
	})
}
