package secondary

import (
	"context"

	"gitlab.com/toeic-drill.net/internal/domain"
)

type ProblemCatalog interface {
	// Parts lists the parts that have problem data
	Parts(ctx context.Context) []domain.Part

	// Difficulties lists the difficulty bands available for a part
	Difficulties(ctx context.Context, part domain.Part) []domain.Difficulty

	// Problems returns the ordered problems of one (part, difficulty) set
	Problems(ctx context.Context, part domain.Part, diff domain.Difficulty) []domain.Problem

	// Problem returns a single problem, nil when it does not exist
	Problem(ctx context.Context, part domain.Part, diff domain.Difficulty, problemID string) *domain.Problem
}
