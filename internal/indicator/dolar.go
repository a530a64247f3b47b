package indicator

import (
	"context"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"

	"indicators/internal/domain"
)

// SnapshotDolar stores the most recent observed dollar value.
func (o *Operations) SnapshotDolar(ctx context.Context) Response {
	logger := log.WithFields(log.Fields{"operation": "snapshot_dolar", "indicator": domain.TypeDolar.Indicator()})

	record, err := o.snapshotDolar(ctx)
	if err != nil {
		logger.WithError(err).Error("dolar snapshot failed")
		return failure(err)
	}

	logger.WithField("fecha", record.Fecha).Info("✅ Dolar stored")
	return recordStored("Dólar guardado OK", record)
}

func (o *Operations) snapshotDolar(ctx context.Context) (domain.Record, error) {
	now := o.clock()
	indicator := domain.TypeDolar.Indicator()

	series, err := o.client.GetSeries(ctx, indicator, now.Year())
	if err != nil {
		return domain.Record{}, fmt.Errorf("failed to fetch %s/%d: %w", indicator, now.Year(), err)
	}

	obs, ok := series.Latest()
	if !ok {
		return domain.Record{}, fmt.Errorf("%w for %s/%d", domain.ErrEmptySeries, indicator, now.Year())
	}

	record := domain.Record{
		ID:        domain.RecordID(domain.TypeDolar, obs.Fecha),
		Fecha:     obs.Fecha,
		Tipo:      domain.TypeDolar,
		Valor:     obs.Valor,
		Timestamp: now.Format(time.RFC3339),
	}
	if err = o.repo.Put(ctx, record); err != nil {
		return domain.Record{}, err
	}
	return record, nil
}
