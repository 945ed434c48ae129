package background

import "github.com/google/uuid"

// NewJobID returns a new UUID-based job identifier for callers that want a
// traceable reservation without inventing their own naming scheme.
func NewJobID() string {
	return uuid.NewString()
}

// SubmitTracked schedules job under a freshly generated identifier and
// returns it. Generated identifiers never collide, so the submission is only
// rejected when the executor is shut down or over capacity. The identifier
// appears in logs and in the completion hook, letting callers attribute the
// outcome of otherwise anonymous jobs.
func (e *Executor) SubmitTracked(job Job) (string, bool) {
	id := NewJobID()
	return id, e.SubmitUniquePost(id, job)
}

// RunTracked schedules job on the default executor under a generated
// identifier and returns it.
func RunTracked(job Job) (string, bool) {
	return Default().SubmitTracked(job)
}
