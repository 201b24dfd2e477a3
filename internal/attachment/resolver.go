// Package attachment resolves logical attachment names against the object
// store records reference them by.
package attachment

import (
	"context"
	"io"
	"log/slog"
	"path"
	"strings"

	"github.com/notifika/mailroom/internal/dispatch"
	"github.com/notifika/mailroom/pkg/logger"
	"github.com/notifika/mailroom/pkg/mailer"
	"github.com/notifika/mailroom/pkg/storage"
)

// ContentStore is the slice of the object store the resolver needs.
type ContentStore interface {
	Get(ctx context.Context, key string) (io.ReadCloser, error)
}

// Config holds attachment resolution configuration.
// Embed this in your app config for env parsing with caarlos0/env.
type Config struct {
	// Prefix is the key prefix attachments live under in the content store.
	Prefix string `env:"ATTACHMENT_PREFIX" envDefault:"documents/"`
}

// Option configures a Resolver.
type Option func(*Resolver)

// WithLogger sets the logger for resolution failures.
func WithLogger(log *slog.Logger) Option {
	return func(r *Resolver) {
		if log != nil {
			r.log = log
		}
	}
}

// Resolver fetches attachments from the content store by logical name.
type Resolver struct {
	store  ContentStore
	log    *slog.Logger
	prefix string
}

// NewResolver creates a resolver. The configured prefix is normalized here,
// once, never per record.
func NewResolver(store ContentStore, cfg Config, opts ...Option) *Resolver {
	r := &Resolver{
		store:  store,
		log:    logger.NewNop(),
		prefix: normalizePrefix(cfg.Prefix),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Resolve fetches the named attachment and types it by file extension.
// A false result means the attachment could not be retrieved; the failure
// is logged and the caller proceeds without it.
func (r *Resolver) Resolve(ctx context.Context, name string) (mailer.Attachment, bool) {
	key := r.prefix + name

	rc, err := r.store.Get(ctx, key)
	if err != nil {
		r.log.WarnContext(ctx, "attachment fetch failed",
			slog.String("key", key),
			slog.String("error", err.Error()),
		)
		return mailer.Attachment{}, false
	}
	defer rc.Close()

	content, err := io.ReadAll(rc)
	if err != nil {
		r.log.WarnContext(ctx, "attachment read failed",
			slog.String("key", key),
			slog.String("error", err.Error()),
		)
		return mailer.Attachment{}, false
	}

	return mailer.Attachment{
		Filename:    path.Base(key),
		ContentType: storage.MIMEFromExtension(name),
		Content:     content,
	}, true
}

// normalizePrefix guarantees exactly one trailing slash on non-empty prefixes.
func normalizePrefix(prefix string) string {
	prefix = strings.Trim(prefix, "/")
	if prefix == "" {
		return ""
	}
	return prefix + "/"
}

// Ensure Resolver implements dispatch.AttachmentResolver.
var _ dispatch.AttachmentResolver = (*Resolver)(nil)
