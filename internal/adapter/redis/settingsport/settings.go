package settingsport

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-redis/redis/v8"

	"gitlab.com/toeic-drill.net/internal/config"
	"gitlab.com/toeic-drill.net/internal/core/ports/primary"
	"gitlab.com/toeic-drill.net/internal/core/ports/secondary"
)

const settingsKeyPrefix = "settings:"

var _ secondary.SettingsRepository = (*SettingsRepository)(nil)

// SettingsRepository implements the SettingsRepository interface with Redis.
// Values never expire.
type SettingsRepository struct {
	redisClient *redis.Client
	logger      primary.Logger
}

// NewSettingsRepository creates a new Redis settings repository
func NewSettingsRepository(redisClient *redis.Client, logger primary.Logger) *SettingsRepository {
	return &SettingsRepository{
		redisClient: redisClient,
		logger:      logger,
	}
}

// Connect dials Redis with cfg and verifies the connection
func Connect(ctx context.Context, cfg *config.RedisConfig, logger primary.Logger) (*SettingsRepository, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Url,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}
	return NewSettingsRepository(client, logger), nil
}

// Get returns the stored value for key, nil when the key is unset
func (r *SettingsRepository) Get(ctx context.Context, key string) ([]byte, error) {
	value, err := r.redisClient.Get(ctx, settingsKeyPrefix+key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		r.logger.Error("Failed to get setting", "key", key, "error", err)
		return nil, fmt.Errorf("failed to get setting: %w", err)
	}
	return value, nil
}

// Set stores value under key
func (r *SettingsRepository) Set(ctx context.Context, key string, value []byte) error {
	if err := r.redisClient.Set(ctx, settingsKeyPrefix+key, value, 0).Err(); err != nil {
		r.logger.Error("Failed to save setting", "key", key, "error", err)
		return fmt.Errorf("failed to save setting: %w", err)
	}
	return nil
}

func (r *SettingsRepository) Close() error {
	return r.redisClient.Close()
}
