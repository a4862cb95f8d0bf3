package ingestion

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// JobKind identifies what an ingestion job forwards to the ingestion service.
type JobKind string

const (
	JobKindStatement JobKind = "statement"
	JobKindForecast  JobKind = "forecast"
)

// Job is a running ingestion job.
type Job struct {
	ID        string    `json:"id"`
	Kind      JobKind   `json:"kind"`
	StartedAt time.Time `json:"started_at"`
}

// Outcome is the result of the last successful job.
type Outcome struct {
	Kind       JobKind   `json:"kind"`
	Count      int       `json:"count"`
	FinishedAt time.Time `json:"finished_at"`
}

// ProcessingTracker tracks at most one running ingestion job per user.
type ProcessingTracker interface {
	// Start registers a job; it returns false if the user already has one running.
	Start(userID uuid.UUID, kind JobKind) (*Job, bool)
	// Finish clears the running job and records its outcome.
	Finish(userID uuid.UUID, outcome *Outcome)
	// Fail clears the running job and records the error.
	Fail(userID uuid.UUID, err *ProcessingError)

	Current(userID uuid.UUID) *Job
	LastOutcome(userID uuid.UUID) *Outcome
	LastError(userID uuid.UUID) *ProcessingError
}

type userState struct {
	running *Job
	outcome *Outcome
	err     *ProcessingError
}

// InMemoryProcessingTracker is a simple in-memory implementation of ProcessingTracker.
type InMemoryProcessingTracker struct {
	mu    sync.RWMutex
	users map[uuid.UUID]*userState
}

// NewInMemoryProcessingTracker creates a new in-memory processing tracker.
func NewInMemoryProcessingTracker() *InMemoryProcessingTracker {
	return &InMemoryProcessingTracker{
		users: make(map[uuid.UUID]*userState),
	}
}

func (t *InMemoryProcessingTracker) state(userID uuid.UUID) *userState {
	s, ok := t.users[userID]
	if !ok {
		s = &userState{}
		t.users[userID] = s
	}
	return s
}

// Start registers a job for a user.
func (t *InMemoryProcessingTracker) Start(userID uuid.UUID, kind JobKind) (*Job, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	s := t.state(userID)
	if s.running != nil {
		return nil, false
	}
	s.running = &Job{
		ID:        uuid.New().String(),
		Kind:      kind,
		StartedAt: time.Now().UTC(),
	}
	job := *s.running
	return &job, true
}

// Finish records a successful outcome. A new outcome clears the last error.
func (t *InMemoryProcessingTracker) Finish(userID uuid.UUID, outcome *Outcome) {
	t.mu.Lock()
	defer t.mu.Unlock()

	s := t.state(userID)
	s.running = nil
	s.outcome = outcome
	s.err = nil
}

// Fail records a failed job.
func (t *InMemoryProcessingTracker) Fail(userID uuid.UUID, err *ProcessingError) {
	t.mu.Lock()
	defer t.mu.Unlock()

	s := t.state(userID)
	s.running = nil
	s.err = err
}

// Current returns a copy of the running job, or nil.
func (t *InMemoryProcessingTracker) Current(userID uuid.UUID) *Job {
	t.mu.RLock()
	defer t.mu.RUnlock()

	s, ok := t.users[userID]
	if !ok || s.running == nil {
		return nil
	}
	job := *s.running
	return &job
}

// LastOutcome returns the last successful outcome, or nil.
func (t *InMemoryProcessingTracker) LastOutcome(userID uuid.UUID) *Outcome {
	t.mu.RLock()
	defer t.mu.RUnlock()

	if s, ok := t.users[userID]; ok {
		return s.outcome
	}
	return nil
}

// LastError returns the last job error, or nil.
func (t *InMemoryProcessingTracker) LastError(userID uuid.UUID) *ProcessingError {
	t.mu.RLock()
	defer t.mu.RUnlock()

	if s, ok := t.users[userID]; ok {
		return s.err
	}
	return nil
}
