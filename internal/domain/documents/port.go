package documents

import "context"

// Normalizer port (canonical re-encode of the uploaded buffer)
type Normalizer interface {
	Normalize(data []byte) (*NormalizedImage, error)
}

// MetadataAnalyzer port (intrinsic-property findings on the original buffer)
type MetadataAnalyzer interface {
	Inspect(data []byte) ([]Finding, error)
}

// VisualAnalyzer port (pixel-statistics findings on the normalized buffer)
type VisualAnalyzer interface {
	Detect(data []byte) ([]Finding, error)
}

// ArchiveStore port (evidence storage for flagged uploads)
type ArchiveStore interface {
	Store(ctx context.Context, key string, data []byte, contentType string) (string, error)
}
