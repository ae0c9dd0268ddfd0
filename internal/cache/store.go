package cache

import (
	"fmt"

	"github.com/vulcanutils/vulcan/internal/config"
	"github.com/vulcanutils/vulcan/internal/types"
)

// NewStore builds the backend named by cfg.Cache.Backend.
func NewStore(cfg *config.Config, logger types.Logger) (types.Store, error) {
	switch cfg.Cache.Backend {
	case config.BackendMemory:
		return NewMemoryStore(cfg.Memory, logger)
	case config.BackendRedis, "":
		return NewRedisStore(cfg.Redis, cfg.Cache.DefaultTTL, logger)
	default:
		return nil, fmt.Errorf("unknown cache backend: %q", cfg.Cache.Backend)
	}
}
