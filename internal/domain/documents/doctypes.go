package documents

import (
	"sort"
	"strings"
)

// MaxUploadBytes is the default upload admission limit (10 MiB).
const MaxUploadBytes = 10 << 20

// SupportedMedia maps the admitted content types to a file extension used for
// archive keys. PDF conversion happens upstream; only raster types land here.
var SupportedMedia = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/webp": ".webp",
	"image/tiff": ".tif",
}

// defaultKeywordTable maps a declared document type to the classifier labels
// considered compatible with it. The assignments are heuristic configuration
// data, not domain logic; operators can replace the table from config.
var defaultKeywordTable = map[string][]string{
	"passport":          {"passport", "identity document", "travel document", "id card"},
	"visa":              {"visa", "travel permit", "immigration document"},
	"degree":            {"degree", "diploma", "certificate", "scientific publication", "academic transcript"},
	"bank-statement":    {"bank statement", "account statement", "financial document", "financial report", "invoice"},
	"employment-letter": {"employment letter", "offer letter", "reference letter", "contract"},
	"photo":             {"photo", "photograph", "portrait", "person"},
}

// Registry is the static configuration surface for declared document types.
type Registry struct {
	keywords map[string][]string
}

// NewRegistry builds a registry from a keyword table. An empty table falls
// back to the default assignments.
func NewRegistry(table map[string][]string) *Registry {
	if len(table) == 0 {
		table = defaultKeywordTable
	}
	keywords := make(map[string][]string, len(table))
	for name, kws := range table {
		normalized := make([]string, 0, len(kws))
		for _, kw := range kws {
			normalized = append(normalized, normalizeLabel(kw))
		}
		keywords[normalizeLabel(name)] = normalized
	}
	return &Registry{keywords: keywords}
}

// Known reports whether the declared type exists in the registry.
func (r *Registry) Known(declared string) bool {
	_, ok := r.keywords[normalizeLabel(declared)]
	return ok
}

// Types lists the declared types in stable order.
func (r *Registry) Types() []string {
	names := make([]string, 0, len(r.keywords))
	for name := range r.keywords {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Keywords returns the keyword set for a declared type.
func (r *Registry) Keywords(declared string) []string {
	return r.keywords[normalizeLabel(declared)]
}

// Matches reports whether a classifier label is compatible with the declared
// type: membership is a substring test in either direction against the
// keyword set.
func (r *Registry) Matches(declared, label string) bool {
	label = normalizeLabel(label)
	if label == "" {
		return false
	}
	for _, kw := range r.keywords[normalizeLabel(declared)] {
		if strings.Contains(label, kw) || strings.Contains(kw, label) {
			return true
		}
	}
	return false
}

// normalizeLabel lowercases and folds separators so "financial-report" and
// "Financial Report" compare equal.
func normalizeLabel(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.ReplaceAll(s, "-", " ")
	s = strings.ReplaceAll(s, "_", " ")
	return strings.Join(strings.Fields(s), " ")
}
