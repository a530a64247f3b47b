package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"indicators/internal/domain"
)

type mockClient struct{ mock.Mock }

func (m *mockClient) GetSeries(ctx context.Context, indicator string, year int) (domain.Series, error) {
	args := m.Called(ctx, indicator, year)
	return args.Get(0).(domain.Series), args.Error(1)
}

var santiago = time.FixedZone("CLT", -4*60*60)

func seriesWith(t *testing.T, fechas ...string) domain.Series {
	t.Helper()
	s := domain.Series{Indicator: "uf", Year: 2024}
	for _, f := range fechas {
		obs, err := domain.NewObservation(f+"T04:00:00.000Z", "37000.50")
		require.NoError(t, err)
		s.Observations = append(s.Observations, obs)
	}
	return s
}

func newTestCache(t *testing.T, next *mockClient, now time.Time) *SeriesCache {
	t.Helper()
	c, err := NewSeriesCache(next, 16, time.Minute, santiago)
	require.NoError(t, err)
	t.Cleanup(c.Close)
	c.now = func() time.Time { return now }
	return c
}

func TestSeriesCache_SecondCallServedFromCache(t *testing.T) {
	ctx := context.Background()
	next := new(mockClient)
	next.On("GetSeries", ctx, "uf", 2024).Return(seriesWith(t, "2024-05-01", "2024-05-02"), nil).Once()
	c := newTestCache(t, next, time.Date(2024, 5, 2, 9, 0, 0, 0, santiago))

	first, err := c.GetSeries(ctx, "uf", 2024)
	require.NoError(t, err)
	c.cache.Wait()

	second, err := c.GetSeries(ctx, "uf", 2024)
	require.NoError(t, err)
	require.Equal(t, first, second)
	next.AssertExpectations(t)
}

func TestSeriesCache_SeriesWithoutTodayIsNotCached(t *testing.T) {
	ctx := context.Background()
	next := new(mockClient)
	// fetched just before today's value was published
	next.On("GetSeries", ctx, "uf", 2024).Return(seriesWith(t, "2024-05-01"), nil).Once()
	next.On("GetSeries", ctx, "uf", 2024).Return(seriesWith(t, "2024-05-01", "2024-05-02"), nil).Once()
	c := newTestCache(t, next, time.Date(2024, 5, 2, 8, 58, 0, 0, santiago))

	stale, err := c.GetSeries(ctx, "uf", 2024)
	require.NoError(t, err)
	_, ok := stale.On("2024-05-02")
	require.False(t, ok)
	c.cache.Wait()

	fresh, err := c.GetSeries(ctx, "uf", 2024)
	require.NoError(t, err)
	_, ok = fresh.On("2024-05-02")
	require.True(t, ok)
	next.AssertExpectations(t)
}

func TestSeriesCache_EntriesDoNotOutliveTheDay(t *testing.T) {
	ctx := context.Background()
	next := new(mockClient)
	next.On("GetSeries", ctx, "uf", 2024).Return(seriesWith(t, "2024-05-01", "2024-05-02"), nil).Twice()
	now := time.Date(2024, 5, 1, 23, 59, 0, 0, santiago)
	c := newTestCache(t, next, now)

	_, err := c.GetSeries(ctx, "uf", 2024)
	require.NoError(t, err)
	c.cache.Wait()

	c.now = func() time.Time { return now.Add(2 * time.Minute) }
	_, err = c.GetSeries(ctx, "uf", 2024)
	require.NoError(t, err)
	next.AssertExpectations(t)
}

func TestSeriesCache_EmptySeriesIsNotCached(t *testing.T) {
	ctx := context.Background()
	empty := domain.Series{Indicator: "uf", Year: 2024}
	next := new(mockClient)
	next.On("GetSeries", ctx, "uf", 2024).Return(empty, nil).Twice()
	c := newTestCache(t, next, time.Date(2024, 1, 1, 9, 0, 0, 0, santiago))

	for i := 0; i < 2; i++ {
		got, err := c.GetSeries(ctx, "uf", 2024)
		require.NoError(t, err)
		require.True(t, got.Empty())
		c.cache.Wait()
	}
	next.AssertExpectations(t)
}

func TestSeriesCache_ErrorsAreNotCached(t *testing.T) {
	ctx := context.Background()
	next := new(mockClient)
	next.On("GetSeries", ctx, "uf", 2024).Return(domain.Series{}, errors.New("boom")).Once()
	next.On("GetSeries", ctx, "uf", 2024).Return(seriesWith(t, "2024-05-02"), nil).Once()
	c := newTestCache(t, next, time.Date(2024, 5, 2, 9, 0, 0, 0, santiago))

	_, err := c.GetSeries(ctx, "uf", 2024)
	require.Error(t, err)

	got, err := c.GetSeries(ctx, "uf", 2024)
	require.NoError(t, err)
	require.False(t, got.Empty())
	next.AssertExpectations(t)
}
