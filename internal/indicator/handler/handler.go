package handler

import (
	"context"
	"net/http"

	"indicators/internal/indicator"
)

type Service interface {
	ArchiveUF(ctx context.Context) indicator.Response
	SnapshotDolar(ctx context.Context) indicator.Response
	History(ctx context.Context) indicator.Response
}

type Handler struct {
	service Service
}

func NewIndicatorHandler(service Service) *Handler {
	return &Handler{service: service}
}

func writeResponse(w http.ResponseWriter, resp indicator.Response) {
	for k, v := range resp.Headers {
		w.Header().Set(k, v)
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(resp.StatusCode)
	_, _ = w.Write([]byte(resp.Body))
}
