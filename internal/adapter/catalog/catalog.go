// Package catalog reads problem sets from <dir>/<part>/<difficulty>.json files
package catalog

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gitlab.com/toeic-drill.net/internal/core/ports/primary"
	"gitlab.com/toeic-drill.net/internal/core/ports/secondary"
	"gitlab.com/toeic-drill.net/internal/domain"
)

var _ secondary.ProblemCatalog = (*FileCatalog)(nil)

// FileCatalog implements ProblemCatalog on a directory tree. Read errors are
// logged and reported as empty results.
type FileCatalog struct {
	dir    string
	logger primary.Logger
}

func NewFileCatalog(dir string, logger primary.Logger) *FileCatalog {
	return &FileCatalog{
		dir:    dir,
		logger: logger,
	}
}

func (c *FileCatalog) Parts(ctx context.Context) []domain.Part {
	entries, err := os.ReadDir(c.dir)
	if err != nil {
		c.logger.Error("Failed to read problems directory", "dir", c.dir, "error", err)
		return []domain.Part{}
	}

	parts := make([]domain.Part, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() && strings.HasPrefix(entry.Name(), "part") {
			parts = append(parts, domain.Part(entry.Name()))
		}
	}
	sort.Slice(parts, func(i, j int) bool { return parts[i] < parts[j] })
	return parts
}

func (c *FileCatalog) Difficulties(ctx context.Context, part domain.Part) []domain.Difficulty {
	entries, err := os.ReadDir(filepath.Join(c.dir, string(part)))
	if err != nil {
		c.logger.Error("Failed to read difficulties", "part", part, "error", err)
		return []domain.Difficulty{}
	}

	diffs := make([]domain.Difficulty, 0, len(entries))
	for _, entry := range entries {
		diff := domain.Difficulty(strings.TrimSuffix(entry.Name(), ".json"))
		if !entry.IsDir() && diff.Valid() {
			diffs = append(diffs, diff)
		}
	}
	sort.Slice(diffs, func(i, j int) bool { return diffs[i] < diffs[j] })
	return diffs
}

func (c *FileCatalog) Problems(ctx context.Context, part domain.Part, diff domain.Difficulty) []domain.Problem {
	// part and diff come from URLs; only known values map to files
	if !part.Valid() || !diff.Valid() {
		return []domain.Problem{}
	}

	path := filepath.Join(c.dir, string(part), string(diff)+".json")
	data, err := os.ReadFile(path)
	if err != nil {
		c.logger.Error("Failed to read problem file", "path", path, "error", err)
		return []domain.Problem{}
	}

	var problems []domain.Problem
	if err := json.Unmarshal(data, &problems); err != nil {
		c.logger.Error("Failed to parse problem file", "path", path, "error", err)
		return []domain.Problem{}
	}
	return problems
}

func (c *FileCatalog) Problem(ctx context.Context, part domain.Part, diff domain.Difficulty, problemID string) *domain.Problem {
	for _, p := range c.Problems(ctx, part, diff) {
		if p.ID == problemID {
			problem := p
			return &problem
		}
	}
	return nil
}
