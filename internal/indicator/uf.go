package indicator

import (
	"context"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"

	"indicators/internal/domain"
)

const pdfContentType = "application/pdf"

// ArchiveUF stores today's UF value together with a PDF receipt. When the
// source has not published today's value yet the most recent one is used.
func (o *Operations) ArchiveUF(ctx context.Context) Response {
	logger := log.WithFields(log.Fields{"operation": "archive_uf", "indicator": domain.TypeUF.Indicator()})

	record, err := o.archiveUF(ctx, logger)
	if err != nil {
		logger.WithError(err).Error("UF archival failed")
		return failure(err)
	}

	logger.WithField("fecha", record.Fecha).Info("✅ UF archived")
	return recordStored("Proceso UF OK", record)
}

func (o *Operations) archiveUF(ctx context.Context, logger *log.Entry) (domain.Record, error) {
	now := o.clock()
	today := now.Format(domain.DateLayout)
	indicator := domain.TypeUF.Indicator()

	series, err := o.client.GetSeries(ctx, indicator, now.Year())
	if err != nil {
		return domain.Record{}, fmt.Errorf("failed to fetch %s/%d: %w", indicator, now.Year(), err)
	}

	obs, ok := series.On(today)
	if !ok {
		if obs, ok = series.Latest(); !ok {
			return domain.Record{}, fmt.Errorf("%w for %s/%d", domain.ErrEmptySeries, indicator, now.Year())
		}
		logger.Warnf("no UF value for %s, using latest available %s", today, obs.Fecha)
	}

	doc, err := o.renderer.Render("Valor UF: "+obs.Valor, "Fecha: "+obs.Fecha)
	if err != nil {
		return domain.Record{}, fmt.Errorf("failed to render UF document: %w", err)
	}

	key := "UF_" + obs.Fecha + ".pdf"
	if err = o.store.Upload(ctx, key, pdfContentType, doc); err != nil {
		return domain.Record{}, err
	}

	record := domain.Record{
		ID:        domain.RecordID(domain.TypeUF, obs.Fecha),
		Fecha:     obs.Fecha,
		Tipo:      domain.TypeUF,
		Valor:     obs.Valor,
		URLPDF:    o.store.URL(key),
		Timestamp: now.Format(time.RFC3339),
	}
	if err = o.repo.Put(ctx, record); err != nil {
		return domain.Record{}, err
	}
	return record, nil
}
