package config

import (
	"fmt"
	"strings"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}

	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be in 1..65535 (got %d)", c.Server.Port)
	}

	if err := c.Moderation.validate(); err != nil {
		return fmt.Errorf("moderation: %w", err)
	}

	if err := c.Search.validate(); err != nil {
		return fmt.Errorf("search: %w", err)
	}

	if c.RateLimit.WritesPerMinute <= 0 {
		return fmt.Errorf("rate_limit.writes_per_minute must be > 0 (got %d)", c.RateLimit.WritesPerMinute)
	}

	if c.Cache.Enabled() && c.Cache.TTL <= 0 {
		return fmt.Errorf("cache.ttl must be > 0 when cache is enabled (got %v)", c.Cache.TTL)
	}

	switch strings.ToLower(c.Log.Format) {
	case "json", "text":
	default:
		return fmt.Errorf("log.format must be json or text (got %q)", c.Log.Format)
	}

	return nil
}

func (m *ModerationConfig) validate() error {
	if m.ApproveAllConcurrency <= 0 {
		return fmt.Errorf("approve_all_concurrency must be > 0 (got %d)", m.ApproveAllConcurrency)
	}
	if m.ApproveAllMaxItems <= 0 {
		return fmt.Errorf("approve_all_max_items must be > 0 (got %d)", m.ApproveAllMaxItems)
	}
	return nil
}

func (s *SearchConfig) validate() error {
	if s.DefaultLimit <= 0 {
		return fmt.Errorf("default_limit must be > 0 (got %d)", s.DefaultLimit)
	}
	if s.MaxLimit < s.DefaultLimit {
		return fmt.Errorf("max_limit must be >= default_limit (got %d < %d)", s.MaxLimit, s.DefaultLimit)
	}
	return nil
}
