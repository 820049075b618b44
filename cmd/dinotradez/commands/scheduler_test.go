package commands

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dinotradez/backend/internal/scheduler"
	"github.com/dinotradez/backend/pkg/logger"
)

type stubJob struct {
	name string
	err  error
}

func (j stubJob) Name() string                  { return j.name }
func (j stubJob) Schedule() string              { return "@hourly" }
func (j stubJob) Run(ctx context.Context) error { return j.err }

func TestStatsRows(t *testing.T) {
	sched := scheduler.New(logger.Nop(), scheduler.WithRetry(0, time.Millisecond))
	require.NoError(t, sched.AddJob(stubJob{name: "ok_scan"}))
	require.NoError(t, sched.AddJob(stubJob{name: "broken_scan", err: errors.New("upstream down")}))
	require.NoError(t, sched.AddJob(stubJob{name: "idle_scan"}))

	_, err := sched.RunJob(context.Background(), "ok_scan")
	require.NoError(t, err)
	_, err = sched.RunJob(context.Background(), "broken_scan")
	require.Error(t, err)

	rows := statsRows(sched)
	require.Len(t, rows, 3)

	byName := map[string][]string{}
	for _, r := range rows {
		byName[r[0]] = r
	}

	assert.Equal(t, []string{"1", "1 (100.0%)", "0"}, byName["ok_scan"][1:4])
	assert.Equal(t, []string{"1", "0 (0.0%)", "1"}, byName["broken_scan"][1:4])
	assert.Equal(t, []string{"0", "0 (0.0%)", "0", "-"}, byName["idle_scan"][1:])
}
