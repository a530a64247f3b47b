package indicator

import (
	"context"
	"maps"
	"net/http"
	"slices"
	"strings"

	log "github.com/sirupsen/logrus"

	"indicators/internal/domain"
)

// History lists every stored record, newest fecha first.
func (o *Operations) History(ctx context.Context) Response {
	records, err := o.repo.Scan(ctx)
	if err != nil {
		log.WithField("operation", "history").WithError(err).Error("history query failed")
		return failure(err)
	}
	if records == nil {
		records = []domain.Record{}
	}

	// ISO dates sort chronologically as strings
	slices.SortStableFunc(records, func(a, b domain.Record) int {
		return strings.Compare(b.Fecha, a.Fecha)
	})

	return jsonResponse(http.StatusOK, records, maps.Clone(corsHeaders))
}
