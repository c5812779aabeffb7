package secondary

import "context"

type ResultEndpoint interface {
	// Post sends body as JSON to url and returns the raw response body
	Post(ctx context.Context, url string, body interface{}) ([]byte, error)

	// Get fetches url and returns the status code and raw response body
	Get(ctx context.Context, url string) (int, []byte, error)
}
