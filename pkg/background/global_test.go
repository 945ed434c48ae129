package background

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// resetDefault tears down any process-wide executor a previous test left
// behind so each test observes first-use construction.
func resetDefault(t *testing.T) {
	t.Helper()
	if e := defaultExec.Load(); e != nil {
		e.Shutdown(true, true)
	}
	defaultExec.Store(nil)
	t.Cleanup(func() {
		if e := defaultExec.Load(); e != nil {
			e.Shutdown(true, true)
		}
		defaultExec.Store(nil)
	})
}

func TestDefaultReturnsSameInstance(t *testing.T) {
	resetDefault(t)

	var wg sync.WaitGroup
	instances := make([]*Executor, 8)
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			instances[i] = Default()
		}(i)
	}
	wg.Wait()

	for i := 1; i < 8; i++ {
		assert.Same(t, instances[0], instances[i])
	}
}

func TestRunHelpers(t *testing.T) {
	resetDefault(t)

	done := make(chan struct{}, 4)
	job := func() error {
		done <- struct{}{}
		return nil
	}

	require.True(t, Run(job))
	require.True(t, RunUnique("a", job))
	require.True(t, RunUniquePre("b", job))
	require.True(t, RunUniquePost("c", job))

	for i := 0; i < 4; i++ {
		select {
		case <-done:
		case <-time.After(5 * time.Second):
			t.Fatal("timed out waiting for background job")
		}
	}
}

func TestShutdownDefaultWithoutConstruction(t *testing.T) {
	resetDefault(t)

	// Must not lazily construct an executor just to shut it down.
	ShutdownDefault(true, true)
	assert.Nil(t, defaultExec.Load())
}

func TestShutdownDefaultRejectsLaterSubmissions(t *testing.T) {
	resetDefault(t)

	require.True(t, Run(func() error { return nil }))
	ShutdownDefault(true, false)
	assert.False(t, Run(func() error { return nil }))
}

func TestWorkersFromEnv(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  int
	}{
		{"Unset", "", DefaultWorkers},
		{"Valid", "8", 8},
		{"Unparsable", "lots", DefaultWorkers},
		{"Zero", "0", DefaultWorkers},
		{"Negative", "-2", DefaultWorkers},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Setenv(EnvWorkers, tc.value)
			assert.Equal(t, tc.want, workersFromEnv())
		})
	}
}
