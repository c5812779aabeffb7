package endpoint

import "context"

const (
	// SettingKey is the fixed key the webhook URL is persisted under
	SettingKey = "gasWebhookUrl"

	// URLPrefix is the prefix every non-empty webhook URL must carry
	URLPrefix = "https://script.google.com/macros/s/"
)

// IEndpointStore holds the user-configured external endpoint URL
type IEndpointStore interface {
	// Get returns the current URL, empty when none is configured
	Get() string

	// Set persists url as the new value. No validation is performed.
	Set(ctx context.Context, url string) error
}
