package documents

import (
	"time"
)

// AnalysisID identifier type
type AnalysisID string

// FindingType enum
type FindingType string

const (
	FindingLowResolution        FindingType = "LOW_RESOLUTION"
	FindingUnusualColorSpace    FindingType = "UNUSUAL_COLOR_SPACE"
	FindingHighCompression      FindingType = "HIGH_COMPRESSION"
	FindingAlphaChannel         FindingType = "ALPHA_CHANNEL"
	FindingLowDPI               FindingType = "LOW_DPI"
	FindingUniformColorRegion   FindingType = "UNIFORM_COLOR_REGION"
	FindingEdgeInconsistency    FindingType = "EDGE_INCONSISTENCY"
	FindingNoiseInconsistency   FindingType = "NOISE_INCONSISTENCY"
	FindingDocumentTypeMismatch FindingType = "DOCUMENT_TYPE_MISMATCH"
)

// Severity enum
type Severity string

const (
	SeverityLow    Severity = "low"
	SeverityMedium Severity = "medium"
	SeverityHigh   Severity = "high"
)

// RiskLevel enum
type RiskLevel string

const (
	RiskLow    RiskLevel = "LOW"
	RiskMedium RiskLevel = "MEDIUM"
	RiskHigh   RiskLevel = "HIGH"
)

// Finding is one scored, typed observation about a document.
// Findings are append-only within a single analysis run.
type Finding struct {
	Type              FindingType `json:"type"`
	Severity          Severity    `json:"severity"`
	Detail            string      `json:"detail"`
	ScoreContribution int         `json:"score_contribution"`
}

// AIAnalysis holds the named sub-results the AI collaborator produced.
// Only the keys of capabilities that succeeded are present.
type AIAnalysis map[string]any

// Well-known AIAnalysis keys.
const (
	AIKeyNote            = "note"
	AIKeyClassification  = "classification"
	AIKeyExtractedText   = "extractedText"
	AIKeyFraudAssessment = "fraudAssessment"
)

// NormalizedImage is the canonical re-encoded form every analyzer works from.
type NormalizedImage struct {
	Data         []byte
	Width        int
	Height       int
	SourceFormat string
}

// Aggregate Root: AnalysisResult. Created once per request, returned to the
// caller and discarded; never persisted.
type AnalysisResult struct {
	ID               AnalysisID `json:"id"`
	Filename         string     `json:"filename"`
	DeclaredType     string     `json:"declared_type"`
	AnalyzedAt       time.Time  `json:"analyzed_at"`
	OverallRiskScore int        `json:"overall_risk_score"`
	RiskLevel        RiskLevel  `json:"risk_level"`
	Findings         []Finding  `json:"findings"`
	AIAnalysis       AIAnalysis `json:"ai_analysis"`
	Recommendations  []string   `json:"recommendations"`
	ArchiveURL       string     `json:"archive_url,omitempty"`
}
