package config

import "time"

type CatalogConfig struct {
	ProblemsDir string
}

func NewCatalogConfig(file CatalogSection) *CatalogConfig {
	return &CatalogConfig{
		ProblemsDir: stringValue("PROBLEMS_DIR", file.ProblemsDir, "public/problems"),
	}
}

// AttemptCfg controls how long finished submission attempts stay observable
type AttemptCfg struct {
	TTL           time.Duration
	PruneInterval time.Duration
}

func NewAttemptCfg(file AttemptSection) *AttemptCfg {
	ttl := intValue("ATTEMPT_TTL_SEC", file.TTLSec, 600)
	interval := intValue("ATTEMPT_PRUNE_INTERVAL_SEC", file.PruneIntervalSec, 60)
	if ttl <= 0 {
		ttl = 600
	}
	if interval <= 0 {
		interval = 60
	}
	return &AttemptCfg{
		TTL:           seconds(ttl),
		PruneInterval: seconds(interval),
	}
}
