package usecase

import (
	"context"
	"sync"

	"bengkel_service/internal/domain/entities"
	"bengkel_service/internal/usecase/interfaces"
)

// memJobRepo is an in-memory jobs collection that enforces the same
// write-once number rules as the DynamoDB store.
type memJobRepo struct {
	mu      sync.Mutex
	jobs    map[string]entities.Job
	updates int
}

var _ interfaces.IJobRepository = (*memJobRepo)(nil)

func newMemJobRepo(jobs ...entities.Job) *memJobRepo {
	r := &memJobRepo{jobs: map[string]entities.Job{}}
	for _, j := range jobs {
		r.jobs[j.ID] = j
	}
	return r
}

func (r *memJobRepo) Create(_ context.Context, job entities.Job) (entities.Job, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.jobs[job.ID] = job
	return job, nil
}

func (r *memJobRepo) GetByID(_ context.Context, id string) (entities.Job, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.jobs[id], nil
}

func (r *memJobRepo) List(_ context.Context) ([]entities.Job, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]entities.Job, 0, len(r.jobs))
	for _, j := range r.jobs {
		out = append(out, j)
	}
	return out, nil
}

func (r *memJobRepo) Update(_ context.Context, id string, patch entities.JobPatch) (entities.Job, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	job, ok := r.jobs[id]
	if !ok {
		return entities.Job{}, nil
	}
	if patch.WONumber != nil && job.WONumber != "" && job.WONumber != *patch.WONumber {
		return entities.Job{}, interfaces.ErrImmutableNumber
	}
	if patch.Estimate != nil {
		cur := job.Estimate.EstimationNumber
		if cur != "" && cur != patch.Estimate.EstimationNumber {
			return entities.Job{}, interfaces.ErrImmutableNumber
		}
	}
	r.updates++
	job = patch.Apply(job)
	r.jobs[id] = job
	return job, nil
}

func (r *memJobRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.jobs, id)
	return nil
}

func (r *memJobRepo) get(id string) entities.Job {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.jobs[id]
}

// memClaimer reserves numbers in a set; taken numbers are rejected.
type memClaimer struct {
	mu    sync.Mutex
	taken map[string]string
	calls int
}

func newMemClaimer(taken ...string) *memClaimer {
	c := &memClaimer{taken: map[string]string{}}
	for _, n := range taken {
		c.taken[n] = "other"
	}
	return c
}

func (c *memClaimer) Claim(_ context.Context, number, jobID string) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.calls++
	if _, ok := c.taken[number]; ok {
		return false, nil
	}
	c.taken[number] = jobID
	return true, nil
}

type countingMetrics struct {
	mu        sync.Mutex
	outcomes  map[string]string
	conflicts int
}

func newCountingMetrics() *countingMetrics {
	return &countingMetrics{outcomes: map[string]string{}}
}

func (m *countingMetrics) ObserveOperation(op, outcome string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.outcomes[op] = outcome
}

func (m *countingMetrics) ObserveNumberConflict(string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.conflicts++
}
