package background

import (
	"os"
	"sync"
	"sync/atomic"

	"github.com/spf13/cast"
)

// EnvWorkers overrides the default executor's pool size. Unset or unparsable
// values fall back to DefaultWorkers.
const EnvWorkers = "BASEPLATE_BACKGROUND_WORKERS"

var (
	defaultExec atomic.Pointer[Executor]
	defaultMu   sync.Mutex
)

// Default returns the process-wide executor, constructing it on first use.
// Construction is race-guarded; every caller gets the same instance. Embedding
// applications that want explicit ownership should construct their own
// Executor with New and skip this accessor entirely.
func Default() *Executor {
	if e := defaultExec.Load(); e != nil {
		return e
	}

	defaultMu.Lock()
	defer defaultMu.Unlock()
	if e := defaultExec.Load(); e != nil {
		return e
	}
	e := New(WithWorkers(workersFromEnv()))
	defaultExec.Store(e)
	return e
}

// Run schedules job on the default executor without dedup.
func Run(job Job) bool {
	return Default().Submit(job)
}

// RunUnique schedules job under id with post-style dedup (the default unique
// flavor). Use Run when collision prevention is not needed.
func RunUnique(id any, job Job) bool {
	return Default().SubmitUnique(id, job)
}

// RunUniquePre schedules job under id, releasing the reservation as the job
// starts rather than when it completes.
func RunUniquePre(id any, job Job) bool {
	return Default().SubmitUniquePre(id, job)
}

// RunUniquePost schedules job under id, holding the reservation until the job
// finishes.
func RunUniquePost(id any, job Job) bool {
	return Default().SubmitUniquePost(id, job)
}

// ShutdownDefault shuts down the default executor if it was ever constructed.
// Safe to call during process termination, including when no job was ever
// submitted; it never constructs an executor just to shut it down.
func ShutdownDefault(wait, cancelPending bool) {
	if e := defaultExec.Load(); e != nil {
		e.Shutdown(wait, cancelPending)
	}
}

func workersFromEnv() int {
	raw := os.Getenv(EnvWorkers)
	if raw == "" {
		return DefaultWorkers
	}
	if n := cast.ToInt(raw); n > 0 {
		return n
	}
	return DefaultWorkers
}
