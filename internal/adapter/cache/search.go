package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/heartmarshall/ai-arabic-dictionary/internal/domain"
	"github.com/heartmarshall/ai-arabic-dictionary/internal/metrics"
)

type lookupRecorder interface {
	CacheLookup(result string)
}

// LoadFunc fetches search results from the source of truth.
type LoadFunc = func(ctx context.Context) ([]domain.Term, error)

// SearchCache caches approved-term search results in Redis. Keys embed a
// generation counter; Invalidate bumps it so every earlier entry becomes
// unreachable and expires on its own TTL.
type SearchCache struct {
	rdb    *redis.Client
	ttl    time.Duration
	prefix string
	rec    lookupRecorder
	log    *slog.Logger
}

// NewSearchCache creates a SearchCache. rec may be nil.
func NewSearchCache(rdb *redis.Client, ttl time.Duration, prefix string, rec lookupRecorder, log *slog.Logger) *SearchCache {
	return &SearchCache{
		rdb:    rdb,
		ttl:    ttl,
		prefix: prefix,
		rec:    rec,
		log:    log.With("component", "search_cache"),
	}
}

// GetOrLoad returns cached results for the query, or calls load and stores
// its result. Redis failures degrade to a direct load.
func (c *SearchCache) GetOrLoad(ctx context.Context, query string, limit int, load LoadFunc) ([]domain.Term, error) {
	key, err := c.key(ctx, query, limit)
	if err != nil {
		c.record(metrics.CacheError)
		c.log.WarnContext(ctx, "search cache unavailable", slog.String("error", err.Error()))
		return load(ctx)
	}

	raw, err := c.rdb.Get(ctx, key).Bytes()
	switch {
	case err == nil:
		var terms []domain.Term
		if jsonErr := json.Unmarshal(raw, &terms); jsonErr == nil {
			c.record(metrics.CacheHit)
			return terms, nil
		}
		c.record(metrics.CacheError)
	case errors.Is(err, redis.Nil):
		c.record(metrics.CacheMiss)
	default:
		c.record(metrics.CacheError)
		c.log.WarnContext(ctx, "search cache get failed", slog.String("error", err.Error()))
	}

	terms, err := load(ctx)
	if err != nil {
		return nil, err
	}

	if b, err := json.Marshal(terms); err == nil {
		if err := c.rdb.Set(ctx, key, b, c.ttl).Err(); err != nil {
			c.log.WarnContext(ctx, "search cache set failed", slog.String("error", err.Error()))
		}
	}

	return terms, nil
}

// Invalidate makes every cached search result stale.
func (c *SearchCache) Invalidate(ctx context.Context) error {
	if err := c.rdb.Incr(ctx, c.generationKey()).Err(); err != nil {
		return fmt.Errorf("bump search cache generation: %w", err)
	}
	return nil
}

// Ping checks the Redis connection.
func (c *SearchCache) Ping(ctx context.Context) error {
	return c.rdb.Ping(ctx).Err()
}

func (c *SearchCache) key(ctx context.Context, query string, limit int) (string, error) {
	gen, err := c.rdb.Get(ctx, c.generationKey()).Int64()
	if err != nil && !errors.Is(err, redis.Nil) {
		return "", err
	}

	sum := sha256.Sum256([]byte(domain.NormalizeText(query)))
	return fmt.Sprintf("%s:search:%d:%d:%s", c.prefix, gen, limit, hex.EncodeToString(sum[:12])), nil
}

func (c *SearchCache) generationKey() string {
	return c.prefix + ":search:generation"
}

func (c *SearchCache) record(result string) {
	if c.rec != nil {
		c.rec.CacheLookup(result)
	}
}

// Nop is used when Redis is not configured: it always loads and never stores.
type Nop struct{}

// GetOrLoad calls load.
func (Nop) GetOrLoad(ctx context.Context, _ string, _ int, load LoadFunc) ([]domain.Term, error) {
	return load(ctx)
}

// Invalidate does nothing.
func (Nop) Invalidate(context.Context) error { return nil }
