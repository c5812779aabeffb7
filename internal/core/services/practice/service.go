package practice

import (
	"context"

	"gitlab.com/toeic-drill.net/internal/domain"
)

type IPracticeService interface {
	Parts(ctx context.Context) []domain.Part
	Difficulties(ctx context.Context, part domain.Part) []domain.Difficulty

	// ListProblems returns the set annotated with the results recorded remotely
	ListProblems(ctx context.Context, part domain.Part, diff domain.Difficulty) (*domain.ProblemList, error)

	// GetProblem returns a problem without its answer key
	GetProblem(ctx context.Context, part domain.Part, diff domain.Difficulty, problemID string) (*domain.ProblemView, error)

	// Answer grades the selected options and reports the result when an endpoint is configured
	Answer(ctx context.Context, part domain.Part, diff domain.Difficulty, problemID string, answers map[string]domain.Option) (*domain.AnswerOutcome, error)
}
