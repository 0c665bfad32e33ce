package prompt

import (
	"fmt"
	"strings"
)

// EligibilityAdvice builds the single templated prompt behind the advice
// endpoint. Country and purpose are optional context lines.
func EligibilityAdvice(question, country, purpose string) string {
	var b strings.Builder
	b.WriteString("You are a visa eligibility advisor. Answer the applicant's question factually and concisely, and remind them that final decisions rest with the consulate. Plain text only.\n\n")
	if country != "" {
		fmt.Fprintf(&b, "Destination country: %s\n", country)
	}
	if purpose != "" {
		fmt.Fprintf(&b, "Travel purpose: %s\n", purpose)
	}
	fmt.Fprintf(&b, "Question: %s", question)
	return b.String()
}
