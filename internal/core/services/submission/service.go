package submission

import (
	"time"

	"github.com/google/uuid"

	"gitlab.com/toeic-drill.net/internal/domain"
)

// ISubmissionService sends result events in the background and keeps the
// outcome of each attempt observable for a while
type ISubmissionService interface {
	// Dispatch starts delivering event to endpointURL and returns immediately
	Dispatch(event domain.ResultEvent, endpointURL string) *domain.Attempt

	// Attempt looks up a dispatched attempt, nil when unknown or pruned
	Attempt(id uuid.UUID) *domain.Attempt

	// Prune forgets finished attempts that finished before cutoff
	Prune(cutoff time.Time) int

	// Wait blocks until every in-flight attempt has finished
	Wait()
}
