package documents

// MaxRiskScore is the clamp applied to the summed contributions.
const MaxRiskScore = 100

// Tier boundaries: score >= 60 is HIGH, 30..59 is MEDIUM, below 30 is LOW.
const (
	highRiskThreshold   = 60
	mediumRiskThreshold = 30
)

// OverallScore sums every finding's contribution and clamps to [0,100].
// It does not depend on finding order.
func OverallScore(findings []Finding) int {
	total := 0
	for _, f := range findings {
		total += f.ScoreContribution
	}
	if total > MaxRiskScore {
		return MaxRiskScore
	}
	return total
}

// LevelFor maps a clamped score to its risk tier.
func LevelFor(score int) RiskLevel {
	switch {
	case score >= highRiskThreshold:
		return RiskHigh
	case score >= mediumRiskThreshold:
		return RiskMedium
	default:
		return RiskLow
	}
}

// AggregateRisk is the pure aggregation step of the pipeline.
func AggregateRisk(findings []Finding) (int, RiskLevel) {
	score := OverallScore(findings)
	return score, LevelFor(score)
}
