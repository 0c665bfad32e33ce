package documents

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/Shoaibzaak/docscreen/internal/application"
	domai "github.com/Shoaibzaak/docscreen/internal/domain/ai"
	domain "github.com/Shoaibzaak/docscreen/internal/domain/documents"
)

const (
	defaultCallTimeout = 30 * time.Second

	// Extracted text shorter than this is not worth a fraud assessment.
	minAssessableTextLen = 10

	// Confidence gate for the declared-type cross-check.
	mismatchConfidence = 0.5
)

// Service implements the screening pipeline use-case.
// Service is designed to be used concurrently and is thread-safe.
type Service struct {
	Normalizer  domain.Normalizer
	Metadata    domain.MetadataAnalyzer
	Visual      domain.VisualAnalyzer
	AI          domai.Client // nil when no inference credential is configured
	Types       *domain.Registry
	Tuning      domain.Tuning
	Clock       application.Clock
	CallTimeout time.Duration // bound on each individual AI call
}

// Command to analyze one uploaded document
type AnalyzeCommand struct {
	Filename     string
	DeclaredType string
	Data         []byte
}

//
// ==== USE CASE ====
//

// Analyze runs the full pipeline: normalize -> {metadata, visual, AI} ->
// aggregate -> recommend. Only a decode failure is fatal; every AI capability
// degrades gracefully and the deterministic findings always survive.
func (s *Service) Analyze(ctx context.Context, cmd AnalyzeCommand) (*domain.AnalysisResult, error) {
	normalized, err := s.Normalizer.Normalize(cmd.Data)
	if err != nil {
		return nil, err
	}

	// Metadata and visual analysis have no data dependency; run them side by
	// side. Neither may fail the pipeline: the normalizer already proved the
	// payload decodes, so anything here is logged and degraded to no findings.
	var metaFindings, visualFindings []domain.Finding
	var g errgroup.Group
	g.Go(func() error {
		f, err := s.Metadata.Inspect(cmd.Data)
		if err != nil {
			log.Printf("warn: metadata analysis degraded for %s: %v", cmd.Filename, err)
			return nil
		}
		metaFindings = f
		return nil
	})
	g.Go(func() error {
		f, err := s.Visual.Detect(normalized.Data)
		if err != nil {
			log.Printf("warn: visual analysis degraded for %s: %v", cmd.Filename, err)
			return nil
		}
		visualFindings = f
		return nil
	})
	_ = g.Wait()

	// Stable order for this implementation: metadata, then visual, then the
	// AI cross-check.
	findings := make([]domain.Finding, 0, len(metaFindings)+len(visualFindings)+1)
	findings = append(findings, metaFindings...)
	findings = append(findings, visualFindings...)

	aiAnalysis := domain.AIAnalysis{}
	if aiFinding := s.runInference(ctx, cmd, normalized, aiAnalysis); aiFinding != nil {
		findings = append(findings, *aiFinding)
	}

	score, level := domain.AggregateRisk(findings)

	return &domain.AnalysisResult{
		ID:               domain.AnalysisID(uuid.New().String()),
		Filename:         cmd.Filename,
		DeclaredType:     cmd.DeclaredType,
		AnalyzedAt:       s.Clock.Now(),
		OverallRiskScore: score,
		RiskLevel:        level,
		Findings:         findings,
		AIAnalysis:       aiAnalysis,
		Recommendations:  domain.Recommendations(level, findings),
	}, nil
}

// runInference drives the three collaborator capabilities, filling aiAnalysis
// with whatever succeeded. It returns the cross-check finding when the top
// classification label contradicts the declared type.
func (s *Service) runInference(ctx context.Context, cmd AnalyzeCommand, img *domain.NormalizedImage, out domain.AIAnalysis) *domain.Finding {
	if s.AI == nil {
		out[domain.AIKeyNote] = fmt.Sprintf("AI analysis unavailable: %v", domai.ErrNotConfigured)
		return nil
	}

	// Classification and extraction are independent; fraud assessment needs
	// the extracted text, so it runs after the join.
	var labels []domai.Label
	var text string
	var g errgroup.Group
	g.Go(func() error {
		l, err := s.callClassify(ctx, img.Data)
		if err != nil {
			log.Printf("warn: classification failed for %s: %v", cmd.Filename, err)
			return nil
		}
		labels = l
		return nil
	})
	g.Go(func() error {
		t, err := s.callExtract(ctx, img.Data)
		if err != nil {
			log.Printf("warn: text extraction failed for %s: %v", cmd.Filename, err)
			return nil
		}
		text = t
		return nil
	})
	_ = g.Wait()

	if labels != nil {
		out[domain.AIKeyClassification] = labels
	}
	if text != "" {
		out[domain.AIKeyExtractedText] = text
	}

	if len(text) > minAssessableTextLen {
		narrative, err := s.callAssess(ctx, text, cmd.DeclaredType)
		if err != nil {
			log.Printf("warn: fraud assessment failed for %s: %v", cmd.Filename, err)
		} else if narrative != "" {
			out[domain.AIKeyFraudAssessment] = narrative
		}
	}

	return s.crossCheck(cmd.DeclaredType, labels)
}

// crossCheck compares the top classification label against the declared
// type's keyword set. Low-confidence labels are not trusted enough to accuse.
func (s *Service) crossCheck(declaredType string, labels []domai.Label) *domain.Finding {
	if len(labels) == 0 || s.Types == nil || !s.Types.Known(declaredType) {
		return nil
	}
	top := labels[0]
	if top.Confidence <= mismatchConfidence {
		return nil
	}
	if s.Types.Matches(declaredType, top.Label) {
		return nil
	}
	return &domain.Finding{
		Type:              domain.FindingDocumentTypeMismatch,
		Severity:          domain.SeverityHigh,
		Detail:            fmt.Sprintf("classifier sees %q (confidence %.2f) but the declared type is %q", top.Label, top.Confidence, declaredType),
		ScoreContribution: s.mismatchWeight(),
	}
}

func (s *Service) mismatchWeight() int {
	if w := s.Tuning.Weights.DocumentTypeMismatch; w > 0 {
		return w
	}
	return domain.DefaultTuning().Weights.DocumentTypeMismatch
}

func (s *Service) callClassify(ctx context.Context, img []byte) ([]domai.Label, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout())
	defer cancel()
	return s.AI.ClassifyDocument(ctx, img)
}

func (s *Service) callExtract(ctx context.Context, img []byte) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout())
	defer cancel()
	return s.AI.ExtractText(ctx, img)
}

func (s *Service) callAssess(ctx context.Context, text, declaredType string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout())
	defer cancel()
	return s.AI.AssessTextFraud(ctx, text, declaredType)
}

func (s *Service) timeout() time.Duration {
	if s.CallTimeout > 0 {
		return s.CallTimeout
	}
	return defaultCallTimeout
}
