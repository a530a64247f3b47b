package indicator

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"indicators/internal/adapters"
	"indicators/internal/domain"
)

const (
	OperationUF      = "uf"
	OperationDolar   = "dolar"
	OperationHistory = "datos"
)

var ErrUnknownOperation = errors.New("unknown operation")

// Operations bundles the three indicator operations over shared adapters.
type Operations struct {
	client   adapters.IndicatorClient
	repo     adapters.RecordRepository
	store    adapters.ObjectStore
	renderer adapters.DocumentRenderer
	location *time.Location
	now      func() time.Time
}

func NewOperations(
	client adapters.IndicatorClient,
	repo adapters.RecordRepository,
	store adapters.ObjectStore,
	renderer adapters.DocumentRenderer,
	location *time.Location,
) *Operations {
	if location == nil {
		location = time.UTC
	}
	return &Operations{
		client:   client,
		repo:     repo,
		store:    store,
		renderer: renderer,
		location: location,
		now:      time.Now,
	}
}

// Run dispatches an operation by its short name: datos or an indicator type
// (uf, dolar), case-insensitive.
func (o *Operations) Run(ctx context.Context, name string) (Response, error) {
	if strings.EqualFold(strings.TrimSpace(name), OperationHistory) {
		return o.History(ctx), nil
	}

	t, err := domain.ParseType(name)
	if err != nil {
		return Response{}, fmt.Errorf("%w: %w", ErrUnknownOperation, err)
	}
	switch t {
	case domain.TypeUF:
		return o.ArchiveUF(ctx), nil
	case domain.TypeDolar:
		return o.SnapshotDolar(ctx), nil
	}
	return Response{}, fmt.Errorf("%w: %q", ErrUnknownOperation, name)
}

func (o *Operations) clock() time.Time {
	return o.now().In(o.location)
}
