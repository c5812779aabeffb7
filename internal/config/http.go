package config

import "time"

type HTTPConfig struct {
	Port         int
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
}

func NewHTTPConfig(file HTTPSection) *HTTPConfig {
	return &HTTPConfig{
		Port:         intValue("HTTP_PORT", file.Port, 8082),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
}

// RelayConfig controls the outbound calls to the external endpoint
type RelayConfig struct {
	// Timeout of 0 leaves the transport default in place (no deadline)
	Timeout time.Duration
}

func NewRelayConfig(file RelaySection) *RelayConfig {
	return &RelayConfig{
		Timeout: seconds(intValue("RELAY_TIMEOUT_SEC", file.TimeoutSec, 0)),
	}
}
