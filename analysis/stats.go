package analysis

import (
	"regexp"
	"strings"
)

var (
	digitRe      = regexp.MustCompile(`\d`)
	legalTermsRe = regexp.MustCompile(`(?i)agreement|contract|terms|conditions`)
	// The wider keyword list drives the complexity grade.
	complexityTermsRe = regexp.MustCompile(`(?i)agreement|contract|liability|indemnity|warranty|breach|termination|jurisdiction|arbitration`)
)

func countWords(text string) int {
	return len(strings.Fields(text))
}

// overallConfidence grades text quality from simple surface statistics:
// 0.7 base, plus 0.1 each for length, numeric content and legal vocabulary,
// capped at 0.95.
func overallConfidence(text string) float64 {
	confidence := 0.7
	if countWords(text) > 500 {
		confidence += 0.1
	}
	if digitRe.MatchString(text) {
		confidence += 0.1
	}
	if legalTermsRe.MatchString(text) {
		confidence += 0.1
	}
	if confidence > 0.95 {
		confidence = 0.95
	}
	return confidence
}

func assessComplexity(text string) string {
	wordCount := countWords(text)
	legalTermCount := len(complexityTermsRe.FindAllString(text, -1))

	switch {
	case wordCount < 1000 && legalTermCount < 5:
		return "simple"
	case wordCount < 3000 && legalTermCount < 15:
		return "moderate"
	case wordCount < 8000 && legalTermCount < 30:
		return "complex"
	default:
		return "highly-complex"
	}
}
