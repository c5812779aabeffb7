package domain

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/google/uuid"
)

// AttemptState is the delivery state of a dispatched submission
type AttemptState string

const (
	AttemptPending   AttemptState = "PENDING"
	AttemptDelivered AttemptState = "DELIVERED"
	AttemptFailed    AttemptState = "FAILED"
)

// Attempt tracks one asynchronous write-path submission
type Attempt struct {
	ID        uuid.UUID
	Event     ResultEvent
	CreatedAt time.Time

	mu         sync.RWMutex
	state      AttemptState
	err        string
	response   json.RawMessage
	finishedAt time.Time
	done       chan struct{}
}

// AttemptSnapshot is a read-only copy of an Attempt
type AttemptSnapshot struct {
	ID             uuid.UUID       `json:"attemptId"`
	Event          ResultEvent     `json:"event"`
	State          AttemptState    `json:"state"`
	Error          string          `json:"error,omitempty"`
	RemoteResponse json.RawMessage `json:"gasResponse,omitempty"`
	CreatedAt      time.Time       `json:"createdAt"`
	FinishedAt     *time.Time      `json:"finishedAt,omitempty"`
}

// NewAttempt creates a pending attempt
func NewAttempt(event ResultEvent) *Attempt {
	return &Attempt{
		ID:        uuid.New(),
		Event:     event,
		CreatedAt: time.Now(),
		state:     AttemptPending,
		done:      make(chan struct{}),
	}
}

// Done is closed once the attempt has finished
func (a *Attempt) Done() <-chan struct{} {
	return a.done
}

// Succeed marks the attempt delivered. Only the first Succeed/Fail call has an effect.
func (a *Attempt) Succeed(response json.RawMessage) {
	a.finish(AttemptDelivered, response, "")
}

// Fail marks the attempt failed with the given reason
func (a *Attempt) Fail(reason string) {
	a.finish(AttemptFailed, nil, reason)
}

func (a *Attempt) finish(state AttemptState, response json.RawMessage, reason string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.state != AttemptPending {
		return
	}
	a.state = state
	a.response = response
	a.err = reason
	a.finishedAt = time.Now()
	close(a.done)
}

// FinishedBefore reports whether the attempt finished before t
func (a *Attempt) FinishedBefore(t time.Time) bool {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.state != AttemptPending && a.finishedAt.Before(t)
}

func (a *Attempt) Snapshot() AttemptSnapshot {
	a.mu.RLock()
	defer a.mu.RUnlock()
	s := AttemptSnapshot{
		ID:             a.ID,
		Event:          a.Event,
		State:          a.state,
		Error:          a.err,
		RemoteResponse: a.response,
		CreatedAt:      a.CreatedAt,
	}
	if !a.finishedAt.IsZero() {
		finished := a.finishedAt
		s.FinishedAt = &finished
	}
	return s
}
