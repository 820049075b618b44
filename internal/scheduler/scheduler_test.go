package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dinotradez/backend/internal/contracts"
	"github.com/dinotradez/backend/pkg/logger"
)

type fakeJob struct {
	name     string
	schedule string
	errs     []error // returned in order, then nil
	calls    int
}

func (j *fakeJob) Name() string     { return j.name }
func (j *fakeJob) Schedule() string { return j.schedule }

func (j *fakeJob) Run(ctx context.Context) error {
	j.calls++
	if j.calls <= len(j.errs) {
		return j.errs[j.calls-1]
	}
	return nil
}

func newTestScheduler() *Scheduler {
	return New(logger.Nop(), WithRetry(2, time.Millisecond), WithRunTimeout(time.Second))
}

func TestAddJob(t *testing.T) {
	s := newTestScheduler()

	require.NoError(t, s.AddJob(&fakeJob{name: "b", schedule: "0 */15 9-15 * * 1-5"}))
	require.NoError(t, s.AddJob(&fakeJob{name: "a", schedule: "CRON_TZ=America/New_York 0 30 10-15 * * 1-5"}))

	err := s.AddJob(&fakeJob{name: "a", schedule: "@hourly"})
	assert.ErrorContains(t, err, "already exists")

	err = s.AddJob(&fakeJob{name: "bad", schedule: "not a schedule"})
	assert.ErrorContains(t, err, "failed to schedule")

	assert.Equal(t, []string{"a", "b"}, s.GetAllJobs())
}

func TestRunJob(t *testing.T) {
	tests := []struct {
		name         string
		errs         []error
		wantErr      bool
		wantAttempts int
	}{
		{"first try", nil, false, 1},
		{"recovers after retry", []error{errors.New("upstream 503")}, false, 2},
		{"exhausts retries", []error{errors.New("a"), errors.New("b"), errors.New("c")}, true, 3},
		{"invalid input not retried", []error{contracts.InvalidInput("empty set")}, true, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestScheduler()
			job := &fakeJob{name: "scan", schedule: "@hourly", errs: tt.errs}
			require.NoError(t, s.AddJob(job))

			result, err := s.RunJob(context.Background(), "scan")
			if tt.wantErr {
				assert.Error(t, err)
				assert.False(t, result.Success)
				assert.NotEmpty(t, result.Error)
			} else {
				assert.NoError(t, err)
				assert.True(t, result.Success)
			}
			assert.Equal(t, tt.wantAttempts, result.Attempts)
			assert.Equal(t, tt.wantAttempts, job.calls)

			history, err := s.GetJobHistory("scan")
			require.NoError(t, err)
			assert.Len(t, history.Results, 1)
		})
	}
}

func TestRunJob_NotFound(t *testing.T) {
	_, err := newTestScheduler().RunJob(context.Background(), "missing")
	assert.ErrorContains(t, err, "not found")
}

func TestRemoveJob(t *testing.T) {
	s := newTestScheduler()
	require.NoError(t, s.AddJob(&fakeJob{name: "scan", schedule: "@hourly"}))

	require.NoError(t, s.RemoveJob("scan"))
	assert.Empty(t, s.GetAllJobs())
	assert.True(t, s.NextRun("scan").IsZero())
	assert.Error(t, s.RemoveJob("scan"))
}

func TestGetJobStats(t *testing.T) {
	s := newTestScheduler()
	job := &fakeJob{name: "scan", schedule: "@hourly", errs: []error{
		contracts.InvalidInput("x"),
	}}
	require.NoError(t, s.AddJob(job))

	_, _ = s.RunJob(context.Background(), "scan")
	_, _ = s.RunJob(context.Background(), "scan")

	stats := s.GetJobStats()["scan"]
	assert.Equal(t, 2, stats.TotalRuns)
	assert.Equal(t, 1, stats.SuccessCount)
	assert.Equal(t, 1, stats.FailureCount)
	assert.InDelta(t, 0.5, stats.SuccessRate, 1e-9)
	assert.NotNil(t, stats.LastSuccess)
	assert.Nil(t, stats.LastFailure)
}

func TestJobHistory(t *testing.T) {
	h := &JobHistory{}
	assert.Equal(t, 0.0, h.GetSuccessRate())
	assert.Empty(t, h.GetLatestResults(5))

	for i := 0; i < maxHistory+10; i++ {
		h.AddResult(JobResult{JobName: "scan", Success: i%2 == 0})
	}
	assert.Len(t, h.Results, maxHistory)
	assert.Len(t, h.GetLatestResults(3), 3)
	assert.Len(t, h.GetFailedResults(), maxHistory/2)
}
