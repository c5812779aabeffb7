package schedulerengine

import (
	"fmt"
	"time"

	"github.com/go-co-op/gocron"

	"gitlab.com/toeic-drill.net/internal/config"
	"gitlab.com/toeic-drill.net/internal/core/ports/primary"
	"gitlab.com/toeic-drill.net/internal/core/services/submission"
)

// SchedulerEngine runs the periodic housekeeping of the service
type SchedulerEngine struct {
	AttemptCfg  *config.AttemptCfg
	submissions submission.ISubmissionService
	logger      primary.Logger
	scheduler   *gocron.Scheduler
}

func NewSchedulerEngine(
	attemptCfg *config.AttemptCfg,
	submissions submission.ISubmissionService,
	logger primary.Logger,
) *SchedulerEngine {
	return &SchedulerEngine{
		AttemptCfg:  attemptCfg,
		submissions: submissions,
		logger:      logger,
		scheduler:   gocron.NewScheduler(time.UTC),
	}
}

// Start schedules the attempt pruning job without blocking
func (s *SchedulerEngine) Start() error {
	if _, err := s.scheduler.Every(s.AttemptCfg.PruneInterval).Do(s.PruneAttempts); err != nil {
		return fmt.Errorf("failed to schedule attempt pruning: %w", err)
	}
	s.scheduler.StartAsync()
	s.logger.Info("Scheduler started", "pruneInterval", s.AttemptCfg.PruneInterval.String())
	return nil
}

func (s *SchedulerEngine) Stop() {
	s.scheduler.Stop()
}

// PruneAttempts forgets attempts that finished more than the TTL ago
func (s *SchedulerEngine) PruneAttempts() {
	removed := s.submissions.Prune(time.Now().Add(-s.AttemptCfg.TTL))
	if removed > 0 {
		s.logger.Debug("Pruned finished attempts", "count", removed)
	}
}
