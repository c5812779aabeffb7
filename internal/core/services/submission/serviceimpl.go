package submission

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"gitlab.com/toeic-drill.net/internal/core/ports/primary"
	"gitlab.com/toeic-drill.net/internal/core/services/relay"
	"gitlab.com/toeic-drill.net/internal/domain"
)

var _ ISubmissionService = (*SubmissionService)(nil)

type SubmissionService struct {
	relay  relay.IRelayService
	logger primary.Logger

	mu       sync.RWMutex
	attempts map[uuid.UUID]*domain.Attempt
	inflight sync.WaitGroup
}

func NewSubmissionService(relaySvc relay.IRelayService, logger primary.Logger) *SubmissionService {
	return &SubmissionService{
		relay:    relaySvc,
		logger:   logger,
		attempts: make(map[uuid.UUID]*domain.Attempt),
	}
}

// Dispatch starts delivering event on its own goroutine. The request that
// triggered it may finish first, so a background context is used.
func (s *SubmissionService) Dispatch(event domain.ResultEvent, endpointURL string) *domain.Attempt {
	attempt := domain.NewAttempt(event)

	s.mu.Lock()
	s.attempts[attempt.ID] = attempt
	s.mu.Unlock()

	s.logger.Info("Dispatching result", "attemptId", attempt.ID, "problemId", event.ProblemID, "result", event.Result)

	s.inflight.Add(1)
	go func() {
		defer s.inflight.Done()

		remote, err := s.relay.Submit(context.Background(), &event, endpointURL)
		if err != nil {
			s.logger.Warn("Result submission failed", "attemptId", attempt.ID, "error", err)
			attempt.Fail(err.Error())
			return
		}
		attempt.Succeed(remote)
		s.logger.Debug("Result delivered", "attemptId", attempt.ID)
	}()

	return attempt
}

func (s *SubmissionService) Attempt(id uuid.UUID) *domain.Attempt {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.attempts[id]
}

func (s *SubmissionService) Prune(cutoff time.Time) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	for id, attempt := range s.attempts {
		if attempt.FinishedBefore(cutoff) {
			delete(s.attempts, id)
			removed++
		}
	}
	return removed
}

func (s *SubmissionService) Wait() {
	s.inflight.Wait()
}
