package adapters

import (
	"context"
	"indicators/internal/domain"
)

type IndicatorClient interface {
	GetSeries(ctx context.Context, indicator string, year int) (domain.Series, error)
}

type RecordRepository interface {
	Put(ctx context.Context, record domain.Record) error
	Scan(ctx context.Context) ([]domain.Record, error)
}

// ObjectStore archives rendered documents and tells where they can be fetched from.
type ObjectStore interface {
	Upload(ctx context.Context, key string, contentType string, body []byte) error
	URL(key string) string
}

type DocumentRenderer interface {
	Render(lines ...string) ([]byte, error)
}
