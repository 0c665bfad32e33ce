package documents

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecommendationsOrderAndDisclaimer(t *testing.T) {
	findings := []Finding{
		{Type: FindingLowResolution},
		{Type: FindingNoiseInconsistency},
	}

	recs := Recommendations(RiskHigh, findings)
	require.Len(t, recs, 5)

	// tier guidance first, finding advisories in discovery order, disclaimer last
	assert.Equal(t, tierGuidance[RiskHigh][0], recs[0])
	assert.Equal(t, tierGuidance[RiskHigh][1], recs[1])
	assert.Equal(t, findingAdvice[FindingLowResolution], recs[2])
	assert.Equal(t, findingAdvice[FindingNoiseInconsistency], recs[3])
	assert.Equal(t, Disclaimer, recs[4])
}

func TestRecommendationsDeduplicatesFindingTypes(t *testing.T) {
	findings := []Finding{
		{Type: FindingLowResolution},
		{Type: FindingLowResolution},
	}

	recs := Recommendations(RiskMedium, findings)

	count := 0
	for _, r := range recs {
		if r == findingAdvice[FindingLowResolution] {
			count++
		}
	}
	assert.Equal(t, 1, count)
}

func TestRecommendationsLowTierStillAdvises(t *testing.T) {
	recs := Recommendations(RiskLow, nil)

	require.Len(t, recs, 2)
	assert.Equal(t, tierGuidance[RiskLow][0], recs[0])
	assert.Equal(t, Disclaimer, recs[1])
}

func TestRecommendationsSkipFindingsWithoutAdvice(t *testing.T) {
	findings := []Finding{{Type: FindingAlphaChannel}}

	recs := Recommendations(RiskLow, findings)
	require.Len(t, recs, 2) // tier guidance + disclaimer only
}
