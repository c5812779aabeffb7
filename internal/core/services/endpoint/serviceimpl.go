package endpoint

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"gitlab.com/toeic-drill.net/internal/core/ports/primary"
	"gitlab.com/toeic-drill.net/internal/core/ports/secondary"
	"gitlab.com/toeic-drill.net/internal/static/errs"
)

var _ IEndpointStore = (*EndpointStore)(nil)

// EndpointStore caches the persisted webhook URL. Writes go to the
// repository first, so the cache never holds an unpersisted value.
type EndpointStore struct {
	repo   secondary.SettingsRepository
	logger primary.Logger

	mu    sync.RWMutex
	value string
}

// NewEndpointStore reads the persisted URL. An unset, unreadable or corrupt
// value starts the store empty.
func NewEndpointStore(ctx context.Context, repo secondary.SettingsRepository, logger primary.Logger) *EndpointStore {
	s := &EndpointStore{
		repo:   repo,
		logger: logger,
	}
	s.value = s.load(ctx)
	return s
}

func (s *EndpointStore) load(ctx context.Context) string {
	raw, err := s.repo.Get(ctx, SettingKey)
	if err != nil {
		s.logger.Error("Failed to read endpoint setting", "key", SettingKey, "error", err)
		return ""
	}
	if raw == nil {
		return ""
	}

	var value string
	if err := json.Unmarshal(raw, &value); err != nil {
		s.logger.Warn("Ignoring corrupt endpoint setting", "key", SettingKey, "error", err)
		return ""
	}
	return value
}

// Get returns the current URL
func (s *EndpointStore) Get() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.value
}

// Set persists url and makes it current
func (s *EndpointStore) Set(ctx context.Context, url string) error {
	encoded, err := json.Marshal(url)
	if err != nil {
		return fmt.Errorf("failed to encode endpoint setting: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.repo.Set(ctx, SettingKey, encoded); err != nil {
		s.logger.Error("Failed to persist endpoint setting", "error", err)
		return fmt.Errorf("failed to persist endpoint setting: %w", err)
	}
	s.value = url

	s.logger.Info("Endpoint setting updated", "configured", url != "")
	return nil
}

// ValidateURL accepts the empty string (cleared) or a URL with URLPrefix
func ValidateURL(url string) error {
	if url == "" || strings.HasPrefix(url, URLPrefix) {
		return nil
	}
	return errs.ErrInvalidEndpointURL
}
