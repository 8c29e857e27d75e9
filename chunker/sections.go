package chunker

import (
	"strings"

	"legalmind/types"
)

type sectionRule struct {
	section  types.SectionType
	keywords []string
}

// Rules are checked in a fixed precedence order; the first match wins.
var sectionRules = []sectionRule{
	// Stems, so "terminated" and "expires" match too.
	{types.SectionTermination, []string{"terminat", "expir"}},
	{types.SectionPayment, []string{"payment", "fee", "cost"}},
	{types.SectionLiability, []string{"liability", "indemnify"}},
	{types.SectionConfidentiality, []string{"confidential", "proprietary"}},
	{types.SectionWarranty, []string{"warranty", "guarantee"}},
	{types.SectionIP, []string{"intellectual property", "copyright"}},
	{types.SectionLegal, []string{"governing law", "jurisdiction"}},
	{types.SectionForceMajeure, []string{"force majeure", "act of god"}},
}

// DetermineSectionType assigns a coarse content-category label by scanning
// for domain keywords, falling back to "general".
func DetermineSectionType(text string) types.SectionType {
	lower := strings.ToLower(text)
	for _, rule := range sectionRules {
		for _, kw := range rule.keywords {
			if strings.Contains(lower, kw) {
				return rule.section
			}
		}
	}
	return types.SectionGeneral
}
