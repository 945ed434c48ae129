// Package background runs fire-and-forget jobs on a fixed-size worker pool
// with duplicate-submission suppression keyed by caller-supplied identifiers.
package background

import (
	"fmt"
	"sync"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// DefaultWorkers is the pool size used when no override is configured.
const DefaultWorkers = 4

// Job is a unit of work. The returned error is logged and forwarded to the
// completion hook, if any; it is never delivered back to the submitter.
type Job func() error

type dedupStyle int

const (
	styleNone dedupStyle = iota
	// stylePre releases the identifier reservation when the job starts.
	stylePre
	// stylePost releases the identifier reservation when the job finishes,
	// including on failure or panic.
	stylePost
)

type task struct {
	id    any
	style dedupStyle
	job   Job
}

// Stats is a point-in-time snapshot of executor counters. Queued and InFlight
// are advisory: they can be stale by the time the caller inspects them.
type Stats struct {
	Submitted uint64
	Rejected  uint64
	Completed uint64
	Failed    uint64
	Queued    int
	InFlight  int
}

// Executor schedules jobs on a fixed number of worker goroutines. Jobs
// submitted under an identifier are rejected while that identifier is
// reserved; when the reservation is released depends on the dedup style.
//
// The zero value is not usable; construct with New.
type Executor struct {
	workers  int
	capacity int
	logger   zerolog.Logger
	onDone   func(id any, err error)

	mu       sync.Mutex
	cond     *sync.Cond
	queue    []task
	reserved map[any]struct{}
	closed   bool

	submitted uint64
	rejected  uint64
	completed uint64
	failed    uint64
	inFlight  int

	wg sync.WaitGroup
}

// New constructs an executor and starts its worker pool.
func New(opts ...Option) *Executor {
	e := &Executor{
		workers:  DefaultWorkers,
		logger:   log.With().Str("component", "background").Logger(),
		reserved: make(map[any]struct{}),
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.workers <= 0 {
		e.workers = DefaultWorkers
	}
	e.cond = sync.NewCond(&e.mu)

	e.logger.Info().
		Int("workers", e.workers).
		Msg("Starting background executor")

	for i := 0; i < e.workers; i++ {
		e.wg.Add(1)
		go e.worker(i)
	}
	return e
}

// Submit schedules job without any dedup. It returns true unless the executor
// has been shut down or the optional queue cap is reached.
func (e *Executor) Submit(job Job) bool {
	return e.enqueue(task{style: styleNone, job: job})
}

// SubmitUnique schedules job under id with post-style dedup. It is the default
// unique-submission flavor.
func (e *Executor) SubmitUnique(id any, job Job) bool {
	return e.SubmitUniquePost(id, job)
}

// SubmitUniquePre schedules job under id, releasing the reservation as the job
// starts. A duplicate is accepted as soon as the first job begins running,
// even while it is still executing.
func (e *Executor) SubmitUniquePre(id any, job Job) bool {
	return e.enqueue(task{id: id, style: stylePre, job: job})
}

// SubmitUniquePost schedules job under id, holding the reservation for the
// job's entire execution. The reservation is released even when the job fails
// or panics.
func (e *Executor) SubmitUniquePost(id any, job Job) bool {
	return e.enqueue(task{id: id, style: stylePost, job: job})
}

// QueueLength reports the number of accepted tasks not yet picked up by a
// worker. Advisory only; not usable for admission control.
func (e *Executor) QueueLength() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return len(e.queue)
}

// Stats returns a snapshot of the executor counters.
func (e *Executor) Stats() Stats {
	e.mu.Lock()
	defer e.mu.Unlock()
	return Stats{
		Submitted: e.submitted,
		Rejected:  e.rejected,
		Completed: e.completed,
		Failed:    e.failed,
		Queued:    len(e.queue),
		InFlight:  e.inFlight,
	}
}

// Shutdown stops the executor. With wait, it blocks until every worker has
// drained and exited. With cancelPending, tasks that were queued but have not
// started are discarded; running jobs are never interrupted. Safe to call more
// than once; subsequent submissions return false.
func (e *Executor) Shutdown(wait, cancelPending bool) {
	e.mu.Lock()
	if !e.closed {
		e.closed = true
		if cancelPending {
			dropped := len(e.queue)
			e.queue = nil
			e.reserved = make(map[any]struct{})
			if dropped > 0 {
				e.logger.Info().
					Int("dropped", dropped).
					Msg("Cancelled pending background jobs")
			}
		}
		e.logger.Info().Msg("Shutting down background executor")
		e.cond.Broadcast()
	}
	e.mu.Unlock()

	if wait {
		e.wg.Wait()
	}
}

func (e *Executor) enqueue(t task) bool {
	if t.job == nil {
		return false
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	if e.closed {
		e.rejected++
		e.logger.Debug().Msg("Submission rejected: executor is shut down")
		return false
	}
	if e.capacity > 0 && len(e.queue) >= e.capacity {
		e.rejected++
		e.logger.Warn().
			Int("capacity", e.capacity).
			Msg("Submission rejected: queue is full")
		return false
	}
	if t.style != styleNone {
		if _, dup := e.reserved[t.id]; dup {
			e.rejected++
			e.logger.Info().
				Interface("job_id", t.id).
				Msg("Job with this ID is already reserved, ignoring duplicate")
			return false
		}
		e.reserved[t.id] = struct{}{}
	}

	e.queue = append(e.queue, t)
	e.submitted++
	e.cond.Signal()
	return true
}

func (e *Executor) worker(id int) {
	defer e.wg.Done()

	e.logger.Debug().Int("worker_id", id).Msg("Worker started")

	for {
		e.mu.Lock()
		for len(e.queue) == 0 && !e.closed {
			e.cond.Wait()
		}
		if len(e.queue) == 0 {
			e.mu.Unlock()
			e.logger.Debug().Int("worker_id", id).Msg("Worker stopping")
			return
		}
		t := e.queue[0]
		e.queue = e.queue[1:]
		if t.style == stylePre {
			// Pre-style: the slot frees as the job starts, not when it ends.
			delete(e.reserved, t.id)
		}
		e.inFlight++
		e.mu.Unlock()

		e.run(t)
	}
}

func (e *Executor) run(t task) {
	var err error
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("job panicked: %v", r)
		}
		e.finish(t, err)
	}()
	err = t.job()
}

// finish releases post-style reservations and records the outcome. It runs
// unconditionally, so a panicking job cannot leave its identifier stuck.
func (e *Executor) finish(t task, err error) {
	e.mu.Lock()
	if t.style == stylePost {
		delete(e.reserved, t.id)
	}
	e.inFlight--
	e.completed++
	if err != nil {
		e.failed++
	}
	e.mu.Unlock()

	if err != nil {
		e.logger.Error().
			Err(err).
			Interface("job_id", t.id).
			Msg("Background job failed")
	}
	if e.onDone != nil {
		e.onDone(t.id, err)
	}
}
