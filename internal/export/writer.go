// Package export persists processed notification batches as parquet
// artifacts in the object store.
package export

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/parquet-go/parquet-go"

	"github.com/notifika/mailroom/internal/dispatch"
	"github.com/notifika/mailroom/pkg/logger"
	"github.com/notifika/mailroom/pkg/storage"
)

// ErrEncodeFailed indicates the batch could not be encoded as parquet.
var ErrEncodeFailed = errors.New("parquet encode failed")

// ObjectStore is the slice of the object store the writer needs.
type ObjectStore interface {
	Put(ctx context.Context, key string, r io.Reader, size int64, opts ...storage.PutOption) error
}

// row is the parquet schema of an export artifact. Column names follow the
// inbound payload so downstream consumers can join on them directly.
type row struct {
	Recipient      string `parquet:"email_destinatario"`
	ReferenceID    string `parquet:"id_retorno"`
	Body           string `parquet:"mensagem_enviada"`
	AttachmentName string `parquet:"anexo"`
	SentAt         string `parquet:"data_envio"`
	ErrorMessage   string `parquet:"mensagem_erro"`
}

// Config holds export configuration.
// Embed this in your app config for env parsing with caarlos0/env.
type Config struct {
	// Prefix is the key prefix artifacts are written under.
	Prefix string `env:"EXPORT_PREFIX" envDefault:"exports/"`
}

// Option configures a Writer.
type Option func(*Writer)

// WithLogger sets the logger for export activity.
func WithLogger(log *slog.Logger) Option {
	return func(w *Writer) {
		if log != nil {
			w.log = log
		}
	}
}

// WithClock overrides the time source used to name artifacts. Tests use it
// to pin keys.
func WithClock(now func() time.Time) Option {
	return func(w *Writer) {
		if now != nil {
			w.now = now
		}
	}
}

// Writer encodes processed batches as parquet and uploads them.
type Writer struct {
	store  ObjectStore
	log    *slog.Logger
	now    func() time.Time
	prefix string
}

// NewWriter creates a batch export writer.
func NewWriter(store ObjectStore, cfg Config, opts ...Option) *Writer {
	w := &Writer{
		store:  store,
		log:    logger.NewNop(),
		now:    time.Now,
		prefix: normalizePrefix(cfg.Prefix),
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Write encodes the batch as a snappy-compressed parquet file and uploads
// it under a timestamped key. Every record lands in the artifact regardless
// of its delivery outcome.
func (w *Writer) Write(ctx context.Context, records []dispatch.ProcessedRecord) (string, error) {
	rows := make([]row, len(records))
	for i, rec := range records {
		rows[i] = row{
			Recipient:      rec.Recipient,
			ReferenceID:    rec.ReferenceID,
			Body:           rec.Body,
			AttachmentName: rec.AttachmentName,
			SentAt:         rec.SentAt.UTC().Format(time.RFC3339),
			ErrorMessage:   rec.ErrorMessage,
		}
	}

	buf := new(bytes.Buffer)
	pw := parquet.NewGenericWriter[row](buf, parquet.Compression(&parquet.Snappy))
	if _, err := pw.Write(rows); err != nil {
		return "", fmt.Errorf("%w: %v", ErrEncodeFailed, err)
	}
	if err := pw.Close(); err != nil {
		return "", fmt.Errorf("%w: %v", ErrEncodeFailed, err)
	}

	key := w.artifactKey()
	size := int64(buf.Len())
	body := bytes.NewReader(buf.Bytes())
	if err := w.store.Put(ctx, key, body, size, storage.WithContentType(storage.MIMEFromExtension(key))); err != nil {
		return "", fmt.Errorf("upload export artifact: %w", err)
	}

	w.log.InfoContext(ctx, "export artifact written",
		slog.String("key", key),
		slog.Int("records", len(records)),
		slog.Int64("bytes", size),
	)
	return key, nil
}

// artifactKey names artifacts by UTC creation time at second resolution.
// Batches finishing within the same second overwrite one another; the
// object store keeps the last write.
func (w *Writer) artifactKey() string {
	return w.prefix + "notifications-" + w.now().UTC().Format("20060102-150405") + ".parquet"
}

func normalizePrefix(prefix string) string {
	prefix = strings.Trim(prefix, "/")
	if prefix == "" {
		return ""
	}
	return prefix + "/"
}

// Ensure Writer implements dispatch.Exporter.
var _ dispatch.Exporter = (*Writer)(nil)
