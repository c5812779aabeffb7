package relay

import (
	"context"
	"encoding/json"

	"gitlab.com/toeic-drill.net/internal/domain"
)

// IRelayService forwards result events to the external endpoint and proxies reads from it
type IRelayService interface {
	// Submit posts payload to endpointURL and returns the parsed remote response
	Submit(ctx context.Context, payload *domain.ResultEvent, endpointURL string) (json.RawMessage, error)

	// Fetch reads endpointURL and returns its JSON body unchanged
	Fetch(ctx context.Context, endpointURL string) (json.RawMessage, error)

	// FetchResults reads the recorded results of one (part, difficulty) scope
	FetchResults(ctx context.Context, endpointURL string, part domain.Part, diff domain.Difficulty) (*domain.ResultSet, error)
}
