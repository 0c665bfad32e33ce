package prompt

import "fmt"

// ClassifySystemPrompt provides strict directions and schema for JSON output.
func ClassifySystemPrompt() string {
	return `You are a document classification engine. You must produce one valid JSON object only (no markdown, no commentary). Do not include code fences.

Requirements:
- Output must be a single JSON object.
- labels is an array ordered by descending confidence.
- confidence is a number between 0 and 1.
- Use short generic label names such as "passport", "bank statement", "diploma", "invoice", "photograph".

Schema (example with empty values):
{
  "labels": [
    {"label": "<string>", "confidence": 0.0}
  ]
}`
}

// ClassifyUserPrompt asks for classification of the attached image.
func ClassifyUserPrompt() string {
	return "Classify the attached document image and respond with the JSON per schema."
}

// ExtractTextPrompt asks for a plain transcription of the attached image.
func ExtractTextPrompt() string {
	return "Transcribe all readable text in the attached document image. Respond with the plain text only, preserving line breaks. If no text is readable, respond with an empty string."
}

// FraudSystemPrompt frames the text-fraud assessment.
func FraudSystemPrompt() string {
	return "You are a document fraud analyst for a visa consultancy. Given text extracted from an uploaded document and the type the applicant declared, point out inconsistencies, implausible values, missing elements expected for that document type, and signs of tampering. Respond with a short plain-text assessment (no markdown), at most one paragraph."
}

// FraudUserPrompt builds the user message for a fraud assessment.
func FraudUserPrompt(text, declaredType string) string {
	return fmt.Sprintf("Declared document type: %s\n\nExtracted text:\n%s", declaredType, text)
}
