package secondary

import "context"

type SettingsRepository interface {
	// Get returns the stored value for key, nil when the key is unset
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores value under key, replacing any previous value
	Set(ctx context.Context, key string, value []byte) error

	Close() error
}
