// Package storage provides S3-compatible object storage operations.
//
// It offers a small interface for retrieving and uploading objects with
// extension-based MIME mapping and sentinel errors for the common S3
// failure modes.
//
// # Basic Usage
//
// Create a storage client and move objects:
//
//	cfg := storage.Config{
//		Bucket:    "my-bucket",
//		Region:    "us-east-1",
//		AccessKey: os.Getenv("STORAGE_ACCESS_KEY"),
//		SecretKey: os.Getenv("STORAGE_SECRET_KEY"),
//	}
//
//	store, err := storage.New(cfg)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	// Download
//	rc, err := store.Get(ctx, "documents/report.pdf")
//	if errors.Is(err, storage.ErrNotFound) {
//		// Handle missing object
//	}
//	defer rc.Close()
//
//	// Upload
//	err = store.Put(ctx, "exports/report.parquet", buf, int64(buf.Len()),
//		storage.WithContentType(storage.MIMEFromExtension(".parquet")),
//	)
//
// # Errors
//
// S3 API errors are normalized to sentinel errors. Use errors.Is to check:
//
//	ErrNotFound      - object or bucket does not exist
//	ErrAccessDenied  - credentials lack permission
//	ErrUploadFailed  - PutObject failed for another reason
//	ErrUnavailable   - healthcheck could not reach the bucket
//
// # Configuration
//
// The Config struct supports environment variables via caarlos0/env:
//
//	Bucket    string // STORAGE_BUCKET
//	AccessKey string // STORAGE_ACCESS_KEY
//	SecretKey string // STORAGE_SECRET_KEY
//	Endpoint  string // STORAGE_ENDPOINT (for MinIO/custom S3)
//	Region    string // STORAGE_REGION (default: us-east-1)
//	PathStyle bool   // STORAGE_PATH_STYLE (for MinIO)
package storage
