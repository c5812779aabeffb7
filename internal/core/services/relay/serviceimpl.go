package relay

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"

	"gitlab.com/toeic-drill.net/internal/core/ports/primary"
	"gitlab.com/toeic-drill.net/internal/core/ports/secondary"
	"gitlab.com/toeic-drill.net/internal/domain"
	"gitlab.com/toeic-drill.net/internal/static/errs"
)

var _ IRelayService = (*RelayService)(nil)

// RelayService implements IRelayService. It holds no per-call state.
type RelayService struct {
	endpoint secondary.ResultEndpoint
	logger   primary.Logger
}

// NewRelayService creates a new relay service
func NewRelayService(endpoint secondary.ResultEndpoint, logger primary.Logger) *RelayService {
	return &RelayService{
		endpoint: endpoint,
		logger:   logger,
	}
}

// Submit posts payload to endpointURL. Any parsable response counts as
// delivered, whatever status the remote body itself reports.
func (s *RelayService) Submit(ctx context.Context, payload *domain.ResultEvent, endpointURL string) (json.RawMessage, error) {
	if payload == nil || endpointURL == "" {
		return nil, errs.ErrInvalidRequest
	}

	s.logger.Debug("Relaying result", "problemId", payload.ProblemID, "result", payload.Result)

	body, err := s.endpoint.Post(ctx, endpointURL, payload)
	if err != nil {
		s.logger.Error("Failed to post result to external endpoint", "problemId", payload.ProblemID, "error", err)
		return nil, errs.ErrRelay
	}

	var remote json.RawMessage
	if err := json.Unmarshal(body, &remote); err != nil {
		s.logger.Error("Failed to parse external endpoint response", "problemId", payload.ProblemID, "error", err)
		return nil, errs.ErrRelay
	}

	return remote, nil
}

// Fetch reads endpointURL and returns its JSON body
func (s *RelayService) Fetch(ctx context.Context, endpointURL string) (json.RawMessage, error) {
	if endpointURL == "" {
		return nil, errs.ErrInvalidRequest
	}

	status, body, err := s.endpoint.Get(ctx, endpointURL)
	if err != nil {
		s.logger.Error("Failed to fetch from external endpoint", "error", err)
		return nil, errs.ErrRelay
	}

	if status < 200 || status > 299 {
		s.logger.Error("External endpoint returned an error", "statusCode", status, "body", string(body))
		return nil, &errs.ExternalStatusError{StatusCode: status}
	}

	var data json.RawMessage
	if err := json.Unmarshal(body, &data); err != nil {
		s.logger.Error("Failed to parse external endpoint response", "error", err)
		return nil, errs.ErrRelay
	}

	return data, nil
}

// FetchResults reads the results recorded for part and diff
func (s *RelayService) FetchResults(ctx context.Context, endpointURL string, part domain.Part, diff domain.Difficulty) (*domain.ResultSet, error) {
	scoped, err := ScopedURL(endpointURL, part, diff)
	if err != nil {
		return nil, err
	}

	data, err := s.Fetch(ctx, scoped)
	if err != nil {
		return nil, err
	}

	var set domain.ResultSet
	if err := json.Unmarshal(data, &set); err != nil {
		s.logger.Error("Unexpected result set shape", "part", part, "level", diff, "error", err)
		return nil, errs.ErrRelay
	}
	return &set, nil
}

// ScopedURL adds the part and level query parameters to endpointURL
func ScopedURL(endpointURL string, part domain.Part, diff domain.Difficulty) (string, error) {
	if endpointURL == "" {
		return "", errs.ErrInvalidRequest
	}
	u, err := url.Parse(endpointURL)
	if err != nil {
		return "", fmt.Errorf("%w: %v", errs.ErrInvalidEndpointURL, err)
	}
	q := u.Query()
	q.Set("part", string(part))
	q.Set("level", string(diff))
	u.RawQuery = q.Encode()
	return u.String(), nil
}
