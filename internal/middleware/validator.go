package middleware

import (
	"fmt"
	"net/http"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/Shoaibzaak/docscreen/internal/domain/documents"
)

// Input validation and sanitization for document uploads. Everything here
// runs before the pipeline; a rejected upload never reaches an analyzer.

var declaredTypePattern = regexp.MustCompile(`^[a-zA-Z0-9_-]{1,64}$`)

// ValidateDeclaredType checks the declared type's format and registry
// membership.
func ValidateDeclaredType(reg *documents.Registry, declared string) error {
	if declared == "" {
		return fmt.Errorf("%w: documentType is required", documents.ErrUnknownDocumentType)
	}
	if !declaredTypePattern.MatchString(declared) {
		return fmt.Errorf("%w: invalid documentType format", documents.ErrUnknownDocumentType)
	}
	if !reg.Known(declared) {
		return fmt.Errorf("%w: %s (known: %s)", documents.ErrUnknownDocumentType, declared, strings.Join(reg.Types(), ", "))
	}
	return nil
}

// ValidateUpload checks size and content type. The content type is sniffed
// from the payload rather than trusted from the multipart header.
func ValidateUpload(data []byte, maxBytes int64) (string, error) {
	if int64(len(data)) > maxBytes {
		return "", fmt.Errorf("%w: %d bytes exceeds limit of %d", documents.ErrTooLarge, len(data), maxBytes)
	}
	if len(data) == 0 {
		return "", fmt.Errorf("%w: empty upload", documents.ErrUnsupportedMedia)
	}
	mime := http.DetectContentType(data)
	if _, ok := documents.SupportedMedia[mime]; !ok {
		return "", fmt.Errorf("%w: %s", documents.ErrUnsupportedMedia, mime)
	}
	return mime, nil
}

// SanitizeFilename strips any path components and control characters from a
// client-supplied filename.
func SanitizeFilename(name string) string {
	name = filepath.Base(strings.ReplaceAll(name, "\\", "/"))
	var b strings.Builder
	for _, r := range name {
		if r >= 32 && r != 127 {
			b.WriteRune(r)
		}
	}
	cleaned := strings.TrimSpace(b.String())
	if cleaned == "" || cleaned == "." || cleaned == ".." {
		return "upload"
	}
	return cleaned
}
