package cache

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/dgraph-io/ristretto"

	"indicators/internal/adapters"
	"indicators/internal/domain"
)

// SeriesCache keeps recently fetched yearly series in memory so that
// back-to-back invocations do not hit the upstream API twice. Only series
// that already carry today's observation are kept, and entries are keyed by
// day, so a value published after the fetch is never hidden by the cache.
type SeriesCache struct {
	next     adapters.IndicatorClient
	cache    *ristretto.Cache
	ttl      time.Duration
	location *time.Location
	now      func() time.Time
}

func NewSeriesCache(next adapters.IndicatorClient, maxItems int64, ttl time.Duration, location *time.Location) (*SeriesCache, error) {
	c, err := ristretto.NewCache(&ristretto.Config{
		NumCounters: 10 * maxItems,
		MaxCost:     maxItems,
		BufferItems: 64,
	})
	if err != nil {
		return nil, fmt.Errorf("create series cache failed: %w", err)
	}
	if location == nil {
		location = time.UTC
	}
	return &SeriesCache{next: next, cache: c, ttl: ttl, location: location, now: time.Now}, nil
}

func (c *SeriesCache) GetSeries(ctx context.Context, indicator string, year int) (domain.Series, error) {
	today := c.now().In(c.location).Format(domain.DateLayout)
	key := toKey(indicator, year, today)
	if v, ok := c.cache.Get(key); ok {
		if series, ok := v.(domain.Series); ok {
			return series, nil
		}
	}

	series, err := c.next.GetSeries(ctx, indicator, year)
	if err != nil {
		return series, err
	}
	if _, ok := series.On(today); ok {
		c.cache.SetWithTTL(key, series, 1, c.ttl)
	}
	return series, nil
}

func (c *SeriesCache) Close() { c.cache.Close() }

func toKey(indicator string, year int, day string) string {
	return indicator + ":" + strconv.Itoa(year) + ":" + day
}
