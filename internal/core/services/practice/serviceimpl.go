package practice

import (
	"context"
	"fmt"
	"time"

	"gitlab.com/toeic-drill.net/internal/core/ports/primary"
	"gitlab.com/toeic-drill.net/internal/core/ports/secondary"
	"gitlab.com/toeic-drill.net/internal/core/services/endpoint"
	"gitlab.com/toeic-drill.net/internal/core/services/relay"
	"gitlab.com/toeic-drill.net/internal/core/services/submission"
	"gitlab.com/toeic-drill.net/internal/domain"
	"gitlab.com/toeic-drill.net/internal/static/errs"
)

// timestampLayout matches the ISO-8601 form browsers produce
const timestampLayout = "2006-01-02T15:04:05.000Z"

var _ IPracticeService = (*PracticeService)(nil)

type PracticeService struct {
	catalog     secondary.ProblemCatalog
	relay       relay.IRelayService
	submissions submission.ISubmissionService
	endpoint    endpoint.IEndpointStore
	logger      primary.Logger
	now         func() time.Time
}

func NewPracticeService(
	catalog secondary.ProblemCatalog,
	relaySvc relay.IRelayService,
	submissions submission.ISubmissionService,
	endpointStore endpoint.IEndpointStore,
	logger primary.Logger,
) *PracticeService {
	return &PracticeService{
		catalog:     catalog,
		relay:       relaySvc,
		submissions: submissions,
		endpoint:    endpointStore,
		logger:      logger,
		now:         time.Now,
	}
}

func (s *PracticeService) Parts(ctx context.Context) []domain.Part {
	return s.catalog.Parts(ctx)
}

func (s *PracticeService) Difficulties(ctx context.Context, part domain.Part) []domain.Difficulty {
	return s.catalog.Difficulties(ctx, part)
}

// ListProblems never fails because of the external endpoint: when results
// cannot be read every problem is reported unanswered.
func (s *PracticeService) ListProblems(ctx context.Context, part domain.Part, diff domain.Difficulty) (*domain.ProblemList, error) {
	problems := s.catalog.Problems(ctx, part, diff)
	if len(problems) == 0 {
		return nil, fmt.Errorf("no problems for %s/%s: %w", part, diff, errs.ErrProblemNotFound)
	}

	record, loaded := s.loadStatus(ctx, part, diff)

	list := &domain.ProblemList{
		Part:          part,
		Difficulty:    diff,
		Problems:      make([]domain.ProblemSummary, 0, len(problems)),
		ResultsLoaded: loaded,
	}
	for i, p := range problems {
		list.Problems = append(list.Problems, domain.ProblemSummary{
			Index:  i + 1,
			ID:     p.ID,
			Status: record.Status(p.ID),
		})
	}
	return list, nil
}

func (s *PracticeService) loadStatus(ctx context.Context, part domain.Part, diff domain.Difficulty) (domain.StatusRecord, bool) {
	endpointURL := s.endpoint.Get()
	if endpointURL == "" {
		return domain.StatusRecord{}, false
	}

	set, err := s.relay.FetchResults(ctx, endpointURL, part, diff)
	if err != nil {
		s.logger.Warn("Could not fetch recorded results", "part", part, "level", diff, "error", err)
		return domain.StatusRecord{}, false
	}
	return domain.BuildStatusRecord(set.Data), true
}

func (s *PracticeService) GetProblem(ctx context.Context, part domain.Part, diff domain.Difficulty, problemID string) (*domain.ProblemView, error) {
	problem := s.catalog.Problem(ctx, part, diff, problemID)
	if problem == nil {
		return nil, fmt.Errorf("%s: %w", problemID, errs.ErrProblemNotFound)
	}

	return &domain.ProblemView{
		Part:          part,
		Difficulty:    diff,
		Problem:       problem.Public(),
		NextProblemID: nextID(problemID),
	}, nil
}

// Answer grades the problem locally first; delivery to the external endpoint
// happens in the background and never changes the graded outcome.
func (s *PracticeService) Answer(ctx context.Context, part domain.Part, diff domain.Difficulty, problemID string, answers map[string]domain.Option) (*domain.AnswerOutcome, error) {
	problem := s.catalog.Problem(ctx, part, diff, problemID)
	if problem == nil {
		return nil, fmt.Errorf("%s: %w", problemID, errs.ErrProblemNotFound)
	}

	status, reviews, err := Grade(part, problem, answers)
	if err != nil {
		return nil, err
	}

	outcome := &domain.AnswerOutcome{
		ProblemID:     problem.ID,
		Status:        status,
		Reviews:       reviews,
		NextProblemID: nextID(problemID),
	}

	if endpointURL := s.endpoint.Get(); endpointURL != "" {
		attempt := s.submissions.Dispatch(domain.ResultEvent{
			Timestamp: s.now().UTC().Format(timestampLayout),
			ProblemID: problem.ID,
			Part:      part,
			Level:     diff,
			Result:    status,
		}, endpointURL)
		id := attempt.ID
		outcome.AttemptID = &id
	}

	return outcome, nil
}

// Grade scores answers against problem. Part 5 problems are graded on their
// single question; other parts need every question answered and are correct
// only when all answers are.
func Grade(part domain.Part, problem *domain.Problem, answers map[string]domain.Option) (domain.ProblemStatus, []domain.QuestionReview, error) {
	if len(problem.Questions) == 0 {
		return "", nil, fmt.Errorf("problem %s has no questions: %w", problem.ID, errs.ErrInvalidAnswer)
	}

	questions := problem.Questions
	if part == domain.PartFive {
		questions = questions[:1]
	}

	status := domain.StatusCorrect
	reviews := make([]domain.QuestionReview, 0, len(questions))
	for _, q := range questions {
		selected, ok := answers[q.ID]
		if !ok {
			return "", nil, fmt.Errorf("question %s is unanswered: %w", q.ID, errs.ErrInvalidAnswer)
		}
		if !selected.Valid() {
			return "", nil, fmt.Errorf("option %q for question %s: %w", selected, q.ID, errs.ErrInvalidAnswer)
		}

		correct := selected == q.Answer
		if !correct {
			status = domain.StatusIncorrect
		}
		reviews = append(reviews, domain.QuestionReview{
			QuestionID:  q.ID,
			Selected:    selected,
			Answer:      q.Answer,
			Correct:     correct,
			Explanation: q.Explanation,
		})
	}
	return status, reviews, nil
}

func nextID(problemID string) *string {
	next, ok := domain.NextProblemID(problemID)
	if !ok {
		return nil
	}
	return &next
}
