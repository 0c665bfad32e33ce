package ai

import "context"

// Label is one classification candidate with its confidence in [0,1].
type Label struct {
	Label      string  `json:"label"`
	Confidence float64 `json:"confidence"`
}

// Client exposes the three inference capabilities the pipeline can use. Each
// method fails independently; a failed capability is omitted from the result
// rather than aborting the run.
type Client interface {
	// ClassifyDocument returns document-type candidates ordered by confidence.
	ClassifyDocument(ctx context.Context, image []byte) ([]Label, error)
	// ExtractText returns the text visible in the image, best effort.
	ExtractText(ctx context.Context, image []byte) (string, error)
	// AssessTextFraud returns a free-text risk narrative for extracted text
	// given the declared document type.
	AssessTextFraud(ctx context.Context, text, declaredType string) (string, error)
}

// Advisor answers a single templated eligibility question.
type Advisor interface {
	Advise(ctx context.Context, prompt string) (string, error)
}
