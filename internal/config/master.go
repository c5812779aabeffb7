package config

type AppConfig struct {
	DebugMode      bool
	HTTPConfig     *HTTPConfig
	RelayConfig    *RelayConfig
	StoreConfig    *StoreConfig
	RedisConfig    *RedisConfig
	PostgresConfig *PostgresConfig
	CatalogConfig  *CatalogConfig
	AttemptCfg     *AttemptCfg
}

// NewSystemConfig assembles the configuration from the environment, falling
// back to file (which may be nil) and then to built-in defaults.
func NewSystemConfig(file *FileConfig) *AppConfig {
	if file == nil {
		file = &FileConfig{}
	}
	return &AppConfig{
		DebugMode:      boolValue("DEBUG_MODE", file.DebugMode),
		HTTPConfig:     NewHTTPConfig(file.HTTP),
		RelayConfig:    NewRelayConfig(file.Relay),
		StoreConfig:    NewStoreConfig(file.Settings),
		RedisConfig:    NewRedisConfig(file.Settings),
		PostgresConfig: NewPostgresConfig(file.Settings),
		CatalogConfig:  NewCatalogConfig(file.Catalog),
		AttemptCfg:     NewAttemptCfg(file.Attempts),
	}
}
