package app

import (
	"context"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"

	"indicators/internal/adapters/cache"
	"indicators/internal/adapters/mindicador"
	"indicators/internal/config"
)

func TestSetupLogging(t *testing.T) {
	defer logrus.SetLevel(logrus.InfoLevel)

	SetupLogging(config.Logging{Level: "debug"})
	require.Equal(t, logrus.DebugLevel, logrus.GetLevel())

	SetupLogging(config.Logging{Level: "loud"})
	require.Equal(t, logrus.InfoLevel, logrus.GetLevel())
}

func TestNewIndicatorClient_CacheToggle(t *testing.T) {
	a := &App{}
	defer a.Close()

	direct, err := newIndicatorClient(config.Mindicador{BaseURL: "http://localhost", CacheTTLSeconds: 0}, time.UTC, a)
	require.NoError(t, err)
	require.IsType(t, &mindicador.Client{}, direct)

	cached, err := newIndicatorClient(config.Mindicador{BaseURL: "http://localhost", CacheTTLSeconds: 60}, time.UTC, a)
	require.NoError(t, err)
	require.IsType(t, &cache.SeriesCache{}, cached)
	require.Len(t, a.closers, 3)
}

func TestBuild_InvalidTimezone(t *testing.T) {
	_, err := Build(context.Background(), &config.AppConfig{Timezone: "Mars/Olympus"})
	require.ErrorContains(t, err, "failed to load timezone")
}

func TestClose_RunsInReverseOrder(t *testing.T) {
	var order []int
	a := &App{closers: []func(){
		func() { order = append(order, 1) },
		func() { order = append(order, 2) },
	}}
	a.Close()
	a.Close()
	require.Equal(t, []int{2, 1}, order)
}
