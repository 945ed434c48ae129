package background

import (
	"errors"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

func TestStatsCollector(t *testing.T) {
	exec := New(WithWorkers(2))

	require.True(t, exec.Submit(func() error { return nil }))
	require.True(t, exec.Submit(func() error { return nil }))
	require.True(t, exec.SubmitUnique("m", func() error { return errors.New("boom") }))

	exec.Shutdown(true, false)
	require.False(t, exec.Submit(func() error { return nil }))

	c := NewStatsCollector(exec)
	require.Equal(t, 6, testutil.CollectAndCount(c))

	expected := `
# HELP background_jobs_completed_total Jobs that finished executing, successfully or not.
# TYPE background_jobs_completed_total counter
background_jobs_completed_total 3
# HELP background_jobs_failed_total Jobs that returned an error or panicked.
# TYPE background_jobs_failed_total counter
background_jobs_failed_total 1
# HELP background_jobs_in_flight Jobs currently executing on a worker.
# TYPE background_jobs_in_flight gauge
background_jobs_in_flight 0
# HELP background_jobs_queued Accepted jobs not yet picked up by a worker.
# TYPE background_jobs_queued gauge
background_jobs_queued 0
# HELP background_jobs_rejected_total Submissions rejected as duplicates, over capacity, or after shutdown.
# TYPE background_jobs_rejected_total counter
background_jobs_rejected_total 1
# HELP background_jobs_submitted_total Jobs accepted by the background executor.
# TYPE background_jobs_submitted_total counter
background_jobs_submitted_total 3
`
	require.NoError(t, testutil.CollectAndCompare(c, strings.NewReader(expected)))
}
