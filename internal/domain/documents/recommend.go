package documents

// Disclaimer closes every recommendation list.
const Disclaimer = "Automated screening assists but does not replace the standard verification procedure"

var tierGuidance = map[RiskLevel][]string{
	RiskHigh: {
		"High risk indicators detected - manual verification is strongly recommended",
		"Cross-check the document details directly with the issuing institution",
	},
	RiskMedium: {
		"Some anomalies detected - re-check the flagged attributes before accepting the document",
	},
	RiskLow: {
		"Document appears consistent, but the standard verification procedure still applies",
	},
}

var findingAdvice = map[FindingType]string{
	FindingLowResolution:        "Request a higher-resolution scan of the document",
	FindingNoiseInconsistency:   "Request the original physical document for inspection",
	FindingDocumentTypeMismatch: "Verify that the correct document was uploaded for the declared type",
}

// Recommendations maps the aggregated tier and the finding types present to an
// ordered, deduplicated advisory list: tier guidance first, then
// finding-specific items in discovery order, then the disclaimer.
func Recommendations(level RiskLevel, findings []Finding) []string {
	recs := make([]string, 0, len(findings)+3)
	recs = append(recs, tierGuidance[level]...)

	seen := make(map[FindingType]bool, len(findings))
	for _, f := range findings {
		if seen[f.Type] {
			continue
		}
		seen[f.Type] = true
		if advice, ok := findingAdvice[f.Type]; ok {
			recs = append(recs, advice)
		}
	}

	return append(recs, Disclaimer)
}
