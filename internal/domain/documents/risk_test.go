package documents

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func findingsWorth(contributions ...int) []Finding {
	fs := make([]Finding, 0, len(contributions))
	for _, c := range contributions {
		fs = append(fs, Finding{Type: FindingHighCompression, Severity: SeverityMedium, ScoreContribution: c})
	}
	return fs
}

func TestOverallScoreSumsContributions(t *testing.T) {
	assert.Equal(t, 0, OverallScore(nil))
	assert.Equal(t, 33, OverallScore(findingsWorth(15, 10, 8)))
}

func TestOverallScoreClampsAt100(t *testing.T) {
	assert.Equal(t, 100, OverallScore(findingsWorth(25, 25, 25, 25, 20)))
	assert.Equal(t, MaxRiskScore, OverallScore(findingsWorth(99, 99)))
}

func TestLevelForIsBoundaryExact(t *testing.T) {
	cases := []struct {
		score int
		want  RiskLevel
	}{
		{0, RiskLow},
		{29, RiskLow},
		{30, RiskMedium},
		{59, RiskMedium},
		{60, RiskHigh},
		{100, RiskHigh},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, LevelFor(tc.score), "score %d", tc.score)
	}
}

func TestAggregateRiskIgnoresOrder(t *testing.T) {
	a := findingsWorth(15, 20, 8)
	b := findingsWorth(8, 15, 20)

	scoreA, levelA := AggregateRisk(a)
	scoreB, levelB := AggregateRisk(b)

	assert.Equal(t, scoreA, scoreB)
	assert.Equal(t, levelA, levelB)
}
