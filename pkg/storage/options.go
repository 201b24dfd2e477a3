package storage

// PutOption configures Put operations.
type PutOption func(*putOptions)

// putOptions holds configuration for Put operations.
type putOptions struct {
	contentType string
}

// WithContentType overrides the default content type for the upload.
func WithContentType(ct string) PutOption {
	return func(o *putOptions) {
		if ct != "" {
			o.contentType = ct
		}
	}
}
