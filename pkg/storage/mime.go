package storage

import (
	"path"
	"strings"
)

// MIMEOctetStream is the fallback MIME type for unknown extensions.
const MIMEOctetStream = "application/octet-stream"

// extensionMIMEs maps lowercase file extensions to MIME types.
var extensionMIMEs = map[string]string{
	// Images
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
	".gif":  "image/gif",
	".webp": "image/webp",
	".svg":  "image/svg+xml",
	".bmp":  "image/bmp",
	".tiff": "image/tiff",
	".ico":  "image/x-icon",
	// Documents
	".pdf":  "application/pdf",
	".doc":  "application/msword",
	".docx": "application/vnd.openxmlformats-officedocument.wordprocessingml.document",
	".xls":  "application/vnd.ms-excel",
	".xlsx": "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
	".ppt":  "application/vnd.ms-powerpoint",
	".pptx": "application/vnd.openxmlformats-officedocument.presentationml.presentation",
	".txt":  "text/plain",
	".csv":  "text/csv",
	".html": "text/html",
	".rtf":  "application/rtf",
	// Data
	".json":    "application/json",
	".xml":     "application/xml",
	".parquet": "application/vnd.apache.parquet",
	// Archives
	".zip": "application/zip",
	".gz":  "application/gzip",
	".tar": "application/x-tar",
	".7z":  "application/x-7z-compressed",
	".rar": "application/x-rar-compressed",
}

// MIMEFromExtension returns the MIME type for a file name or key based on its
// extension (the part after the last dot). Returns "application/octet-stream"
// when the extension is missing or unknown.
func MIMEFromExtension(name string) string {
	ext := strings.ToLower(path.Ext(name))
	if ext == "" {
		return MIMEOctetStream
	}
	if mimeType, ok := extensionMIMEs[ext]; ok {
		return mimeType
	}
	return MIMEOctetStream
}
