package sunrise_test

import (
	"context"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/subtlepseudonym/sunrise"
)

func TestJobExec(t *testing.T) {
	job := sunrise.Job{
		Name:    "echo",
		Command: []string{"echo", "lights on"},
	}

	output, err := job.Exec(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "lights on", output)
}

func TestJobExecFailure(t *testing.T) {
	job := sunrise.Job{
		Name:    "fail",
		Command: []string{"sh", "-c", "echo broken >&2; exit 3"},
	}

	output, err := job.Exec(context.Background())
	require.Error(t, err)
	assert.Equal(t, "broken", output)
}

func TestJobExecTimeout(t *testing.T) {
	job := sunrise.Job{
		Name:    "slow",
		Command: []string{"sleep", "5"},
		Timeout: 50 * time.Millisecond,
	}

	start := time.Now()
	_, err := job.Exec(context.Background())
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Less(t, time.Since(start), 5*time.Second)
}

func TestJobExecEmptyCommand(t *testing.T) {
	_, err := sunrise.Job{Name: "empty"}.Exec(context.Background())
	assert.ErrorIs(t, err, sunrise.ErrEmptyCommand)
}

func TestJobRunRecordsMetrics(t *testing.T) {
	metrics := sunrise.NewMetrics(prometheus.NewRegistry())

	sunrise.Job{Name: "ok", Command: []string{"true"}, Metrics: metrics}.Run()
	sunrise.Job{Name: "ok", Command: []string{"true"}, Metrics: metrics}.Run()
	sunrise.Job{Name: "bad", Command: []string{"false"}, Metrics: metrics}.Run()

	assert.Equal(t, 2.0, testutil.ToFloat64(metrics.JobRuns.WithLabelValues("ok", "success")))
	assert.Equal(t, 0.0, testutil.ToFloat64(metrics.JobRuns.WithLabelValues("ok", "error")))
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.JobRuns.WithLabelValues("bad", "error")))
	assert.Equal(t, 2, testutil.CollectAndCount(metrics.JobDuration))
}

func TestJobRunWithoutMetrics(t *testing.T) {
	assert.NotPanics(t, func() {
		sunrise.Job{Name: "ok", Command: []string{"true"}}.Run()
	})
}
