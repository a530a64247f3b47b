package handler

import "net/http"

// ArchiveUF godoc
// @Summary Archive today's UF
// @Description Fetch the UF value for today (or the latest published one), store it and archive a PDF receipt
// @Tags Indicators
// @Produce json
// @Success 200 {object} indicator.Response
// @Failure 500 {object} indicator.Response
// @Router /indicators/uf [post]
func (h *Handler) ArchiveUF(w http.ResponseWriter, r *http.Request) {
	writeResponse(w, h.service.ArchiveUF(r.Context()))
}

// SnapshotDolar godoc
// @Summary Store the latest dollar value
// @Tags Indicators
// @Produce json
// @Success 200 {object} indicator.Response
// @Failure 500 {object} indicator.Response
// @Router /indicators/dolar [post]
func (h *Handler) SnapshotDolar(w http.ResponseWriter, r *http.Request) {
	writeResponse(w, h.service.SnapshotDolar(r.Context()))
}

// History godoc
// @Summary List stored indicator values
// @Description All stored records, newest fecha first
// @Tags Indicators
// @Produce json
// @Success 200 {array} domain.Record
// @Failure 500 {object} indicator.Response
// @Router /indicators [get]
func (h *Handler) History(w http.ResponseWriter, r *http.Request) {
	writeResponse(w, h.service.History(r.Context()))
}
