package advice

import (
	"context"
	"fmt"
	"strings"

	domai "github.com/Shoaibzaak/docscreen/internal/domain/ai"
	"github.com/Shoaibzaak/docscreen/internal/infra/ai/prompt"
)

// Service answers eligibility questions with a single templated prompt to the
// hosted model. There is no pipeline behind it; it is deliberately thin glue.
type Service struct {
	Client domai.Advisor // nil when no inference credential is configured
}

// Query is one eligibility question with optional context.
type Query struct {
	Question string `json:"question"`
	Country  string `json:"country,omitempty"`
	Purpose  string `json:"purpose,omitempty"`
}

func (s *Service) Advise(ctx context.Context, q Query) (string, error) {
	if strings.TrimSpace(q.Question) == "" {
		return "", fmt.Errorf("question is required")
	}
	if s.Client == nil {
		return "", domai.ErrNotConfigured
	}
	return s.Client.Advise(ctx, prompt.EligibilityAdvice(q.Question, q.Country, q.Purpose))
}
