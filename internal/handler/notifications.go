// Package handler exposes the HTTP surface of the notification service.
package handler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/notifika/mailroom/internal/dispatch"
	"github.com/notifika/mailroom/pkg/logger"
)

// BatchProcessor handles a decoded notification batch end to end.
type BatchProcessor interface {
	Process(ctx context.Context, batch dispatch.Batch) (*dispatch.Result, error)
}

// response is the envelope every notification endpoint returns. statusCode
// mirrors the HTTP status so callers that only see the body can branch on it.
type response struct {
	StatusCode  int    `json:"statusCode"`
	Message     string `json:"message"`
	ParquetFile string `json:"parquet_file,omitempty"`
}

// Option configures Notifications.
type Option func(*Notifications)

// WithLogger sets the logger for request handling failures.
func WithLogger(log *slog.Logger) Option {
	return func(h *Notifications) {
		if log != nil {
			h.log = log
		}
	}
}

// Notifications serves the batch notification endpoint.
type Notifications struct {
	processor BatchProcessor
	log       *slog.Logger
}

// NewNotifications creates the notification handler.
func NewNotifications(processor BatchProcessor, opts ...Option) *Notifications {
	h := &Notifications{
		processor: processor,
		log:       logger.NewNop(),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Routes mounts the notification endpoints on r.
func (h *Notifications) Routes(r chi.Router) {
	r.Post("/api/notifications", h.handleBatch)
}

func (h *Notifications) handleBatch(w http.ResponseWriter, r *http.Request) {
	var batch dispatch.Batch
	if err := json.NewDecoder(r.Body).Decode(&batch); err != nil {
		h.respond(w, r, response{
			StatusCode: http.StatusBadRequest,
			Message:    "malformed request body",
		})
		return
	}

	result, err := h.processor.Process(r.Context(), batch)
	switch {
	case errors.Is(err, dispatch.ErrInvalidBatch):
		h.respond(w, r, response{
			StatusCode: http.StatusBadRequest,
			Message:    err.Error(),
		})
	case err != nil:
		h.log.ErrorContext(r.Context(), "batch processing failed",
			slog.String("error", err.Error()),
		)
		h.respond(w, r, response{
			StatusCode: http.StatusInternalServerError,
			Message:    err.Error(),
		})
	default:
		h.respond(w, r, response{
			StatusCode:  http.StatusOK,
			Message:     summarize(result),
			ParquetFile: result.ArtifactKey,
		})
	}
}

func summarize(res *dispatch.Result) string {
	return fmt.Sprintf("processed %d records: %d sent, %d failed, %d missing attachments",
		res.Records, res.Sent, res.Failed, res.MissingAttachments)
}

func (h *Notifications) respond(w http.ResponseWriter, r *http.Request, res response) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(res.StatusCode)
	if err := json.NewEncoder(w).Encode(res); err != nil {
		h.log.ErrorContext(r.Context(), "write response",
			slog.String("error", err.Error()),
		)
	}
}
