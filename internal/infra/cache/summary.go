package cache

import (
	"context"
	"encoding/json"
	"strconv"
	"time"

	"commission-tracker/internal/pkg/errs"
	"commission-tracker/internal/usecase/queries"

	"github.com/redis/go-redis/v9"
)

const (
	generationKey = "commission:summary:gen"
	dateLayout    = "2006-01-02"
)

// RedisSummaryCache namespaces entries by a generation counter. Invalidate
// bumps the generation so every cached range is orphaned at once; orphans
// expire through their TTL.
type RedisSummaryCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisSummaryCache(client *redis.Client, ttl time.Duration) *RedisSummaryCache {
	return &RedisSummaryCache{client: client, ttl: ttl}
}

// Get returns the cached summary, or nil on a miss, together with the
// generation it was looked up under.
func (c *RedisSummaryCache) Get(ctx context.Context, from, to time.Time) (*queries.CommissionSummary, int64, error) {
	gen, err := c.generation(ctx)
	if err != nil {
		return nil, 0, err
	}
	raw, err := c.client.Get(ctx, SummaryKey(gen, from, to)).Bytes()
	if errs.Is(err, redis.Nil) {
		return nil, gen, nil
	}
	if err != nil {
		return nil, 0, errs.Wrap(err, "failed to read cached summary")
	}

	var s queries.CommissionSummary
	if err := json.Unmarshal(raw, &s); err != nil {
		return nil, 0, errs.Wrap(err, "failed to decode cached summary")
	}
	return &s, gen, nil
}

// Set stores s under gen, the generation Get returned before s was computed.
// If an invalidation happened in between, the entry is written under the old
// generation and never read.
func (c *RedisSummaryCache) Set(ctx context.Context, gen int64, s *queries.CommissionSummary) error {
	raw, err := json.Marshal(s)
	if err != nil {
		return errs.Wrap(err, "failed to encode summary")
	}
	if err := c.client.Set(ctx, SummaryKey(gen, s.From, s.To), raw, c.ttl).Err(); err != nil {
		return errs.Wrap(err, "failed to cache summary")
	}
	return nil
}

func (c *RedisSummaryCache) Invalidate(ctx context.Context) error {
	if err := c.client.Incr(ctx, generationKey).Err(); err != nil {
		return errs.Wrap(err, "failed to invalidate summary cache")
	}
	return nil
}

func (c *RedisSummaryCache) generation(ctx context.Context) (int64, error) {
	gen, err := c.client.Get(ctx, generationKey).Int64()
	if errs.Is(err, redis.Nil) {
		return 0, nil
	}
	if err != nil {
		return 0, errs.Wrap(err, "failed to read summary cache generation")
	}
	return gen, nil
}

func SummaryKey(gen int64, from, to time.Time) string {
	return "commission:summary:v" + strconv.FormatInt(gen, 10) + ":" + from.Format(dateLayout) + ":" + to.Format(dateLayout)
}

// NoopSummaryCache is used when no Redis address is configured.
type NoopSummaryCache struct{}

func (NoopSummaryCache) Get(context.Context, time.Time, time.Time) (*queries.CommissionSummary, int64, error) {
	return nil, 0, nil
}

func (NoopSummaryCache) Set(context.Context, int64, *queries.CommissionSummary) error { return nil }

func (NoopSummaryCache) Invalidate(context.Context) error { return nil }
