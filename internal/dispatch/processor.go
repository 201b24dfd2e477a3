package dispatch

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/notifika/mailroom/pkg/logger"
	"github.com/notifika/mailroom/pkg/mailer"
)

// AttachmentResolver fetches the attachment for a record by its logical
// name. The boolean result is false when the attachment cannot be
// retrieved; the record is then sent without one.
type AttachmentResolver interface {
	Resolve(ctx context.Context, name string) (mailer.Attachment, bool)
}

// Exporter persists the enriched batch and returns the artifact's storage key.
type Exporter interface {
	Write(ctx context.Context, records []ProcessedRecord) (string, error)
}

// Config holds batch processing configuration.
// Embed this in your app config for env parsing with caarlos0/env.
type Config struct {
	// SubjectPrefix prefixes every subject line; the record's reference id
	// is appended so replies and bounces can be traced back.
	SubjectPrefix string `env:"DISPATCH_SUBJECT_PREFIX" envDefault:"Notification"`
}

// ProcessorOption configures a Processor.
type ProcessorOption func(*Processor)

// WithLogger sets the logger used for per-record and batch events.
func WithLogger(log *slog.Logger) ProcessorOption {
	return func(p *Processor) {
		if log != nil {
			p.log = log
		}
	}
}

// WithClock overrides the time source. Tests use it to pin timestamps.
func WithClock(now func() time.Time) ProcessorOption {
	return func(p *Processor) {
		if now != nil {
			p.now = now
		}
	}
}

// Processor drives a notification batch end to end: envelope validation,
// sequential per-record delivery, and export of the enriched results.
type Processor struct {
	resolver AttachmentResolver
	sender   mailer.Sender
	exporter Exporter
	log      *slog.Logger
	now      func() time.Time
	cfg      Config
}

// NewProcessor wires the processing pipeline. All capabilities are explicit;
// the processor holds no global state.
func NewProcessor(resolver AttachmentResolver, sender mailer.Sender, exporter Exporter, cfg Config, opts ...ProcessorOption) *Processor {
	p := &Processor{
		resolver: resolver,
		sender:   sender,
		exporter: exporter,
		log:      logger.NewNop(),
		now:      time.Now,
		cfg:      cfg,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Result summarizes one processed batch.
type Result struct {
	ArtifactKey        string
	Records            int
	Sent               int
	Failed             int
	MissingAttachments int
}

// Process validates the batch, delivers every record in input order, and
// exports the enriched outcomes. A failed delivery never aborts the batch;
// a failed export does.
func (p *Processor) Process(ctx context.Context, batch Batch) (*Result, error) {
	if err := batch.Validate(); err != nil {
		return nil, err
	}

	log := p.log.With(slog.String("batch_id", uuid.NewString()))
	log.InfoContext(ctx, "processing batch",
		slog.Int("records", len(batch.Records)),
		slog.String("sender", batch.SenderEmail),
	)

	result := &Result{Records: len(batch.Records)}
	records := make([]ProcessedRecord, 0, len(batch.Records))

	for _, req := range batch.Records {
		rec, hadAttachment := p.processRecord(ctx, log, batch.SenderEmail, req)
		if !hadAttachment {
			result.MissingAttachments++
		}
		switch rec.State {
		case StateSent:
			result.Sent++
		case StateSendFailed:
			result.Failed++
		}
		records = append(records, rec)
	}

	key, err := p.exporter.Write(ctx, records)
	if err != nil {
		return nil, fmt.Errorf("export batch results: %w", err)
	}
	result.ArtifactKey = key

	log.InfoContext(ctx, "batch completed",
		slog.Int("sent", result.Sent),
		slog.Int("failed", result.Failed),
		slog.Int("missing_attachments", result.MissingAttachments),
		slog.String("artifact", key),
	)

	return result, nil
}

// processRecord takes one record from pending to a terminal state and
// reports whether its attachment was resolved. Delivery errors are captured
// in the record, never returned.
func (p *Processor) processRecord(ctx context.Context, log *slog.Logger, sender string, req Request) (ProcessedRecord, bool) {
	rec := ProcessedRecord{
		Request: req,
		SentAt:  p.now(),
		State:   StatePending,
	}

	att, ok := p.resolver.Resolve(ctx, req.AttachmentName)
	if ok {
		rec.State = StateAttachmentResolved
	} else {
		rec.State = StateAttachmentMissing
		log.WarnContext(ctx, "attachment unavailable, sending without it",
			slog.String("reference_id", req.ReferenceID),
			slog.String("attachment", req.AttachmentName),
		)
	}

	spec := MessageSpec{
		Sender:    sender,
		Recipient: req.Recipient,
		Subject:   p.subject(req.ReferenceID),
		Body:      req.Body,
		HTML:      true,
	}
	if ok {
		spec.Attachment = &att
	}

	if err := p.sender.Send(ctx, BuildMessage(spec)); err != nil {
		rec.ErrorMessage = err.Error()
		rec.State = StateSendFailed
		log.ErrorContext(ctx, "delivery failed",
			slog.String("reference_id", req.ReferenceID),
			slog.String("recipient", req.Recipient),
			slog.String("error", err.Error()),
		)
		return rec, ok
	}

	rec.State = StateSent
	log.InfoContext(ctx, "notification sent",
		slog.String("reference_id", req.ReferenceID),
		slog.String("recipient", req.Recipient),
	)
	return rec, ok
}

func (p *Processor) subject(referenceID string) string {
	return fmt.Sprintf("%s #%s", p.cfg.SubjectPrefix, referenceID)
}
