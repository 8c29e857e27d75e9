package analysis

import "fmt"

// Prompt templates for the six independent sub-analyses. Each receives the
// truncated document prefix; the executive summary also gets the file name.

const executiveSummaryTemplate = `
Analyze this document and provide a comprehensive executive summary. First, determine if this is a legal document or contract. If it's NOT a legal document, provide appropriate warnings.

Document: %s
Content: %s

IMPORTANT:
1. First determine if this is a legal document, contract, or agreement
2. If it's NOT a legal document (e.g., academic paper, news article, creative content, business report), set isLegalDocument to false and provide a warning
3. If it's a legal document, proceed with normal analysis

Provide ONLY a valid JSON response (no markdown, no explanations, just the JSON object):
{
  "documentType": "specific type of document",
  "keyPurpose": "main purpose in 1-2 sentences",
  "partiesInvolved": ["party1", "party2"],
  "mainSubject": "primary subject matter",
  "overallRiskLevel": "low|medium|high|critical",
  "confidence": 0.95,
  "isLegalDocument": true,
  "documentCategory": "legal|contract|academic|business|creative|other",
  "analysisWarning": "Warning message if not a legal document (optional)"
}
`

const contractTermsTemplate = `
Analyze the contract terms in this document. Extract key contractual elements.

Content: %s

Provide ONLY a valid JSON response (no markdown, no explanations, just the JSON object):
{
  "duration": "contract duration",
  "paymentTerms": ["term1", "term2"],
  "obligations": ["obligation1", "obligation2"],
  "terminationClauses": ["clause1", "clause2"],
  "penalties": ["penalty1", "penalty2"]
}
`

const riskAssessmentTemplate = `
Perform a comprehensive risk assessment of this document. Identify financial, legal, and operational risks.

Content: %s

Provide ONLY a valid JSON response (no markdown, no explanations, just the JSON object):
{
  "financialRisks": [
    {
      "type": "risk type",
      "description": "detailed description",
      "impact": "low|medium|high|critical",
      "probability": "low|medium|high",
      "mitigation": "mitigation strategy",
      "estimatedCost": "cost if materialized"
    }
  ],
  "legalRisks": [
    {
      "type": "risk type",
      "description": "detailed description",
      "severity": "low|medium|high|critical",
      "clause": "relevant clause",
      "recommendation": "recommended action"
    }
  ],
  "operationalRisks": [
    {
      "type": "risk type",
      "description": "detailed description",
      "impact": "low|medium|high",
      "timeline": "when risk might occur",
      "actionRequired": "required action"
    }
  ]
}
`

const complianceCheckTemplate = `
Check this document for regulatory compliance and industry standards adherence.

Content: %s

Provide ONLY a valid JSON response (no markdown, no explanations, just the JSON object):
{
  "regulatoryRequirements": [
    {
      "requirement": "specific requirement",
      "status": "compliant|non-compliant|unclear",
      "description": "explanation",
      "actionNeeded": "action if non-compliant"
    }
  ],
  "industryStandards": [
    {
      "standard": "standard name",
      "adherence": "full|partial|none",
      "gaps": ["gap1", "gap2"]
    }
  ]
}
`

const financialAnalysisTemplate = `
Analyze the financial aspects of this document. Extract monetary values, payment terms, and financial implications.

Content: %s

Provide ONLY a valid JSON response (no markdown, no explanations, just the JSON object):
{
  "totalValue": "total contract value",
  "paymentSchedule": [
    {
      "amount": "payment amount",
      "dueDate": "due date",
      "conditions": "payment conditions"
    }
  ],
  "costBreakdown": [
    {
      "category": "cost category",
      "amount": "amount",
      "description": "description"
    }
  ],
  "roiProjection": {
    "timeframe": "ROI timeframe",
    "expectedReturn": "expected return",
    "confidence": 0.85
  }
}
`

const humanExplanationTemplate = `
Provide a human-friendly explanation of this document. Make it accessible to non-legal professionals.

Content: %s

Provide ONLY a valid JSON response (no markdown, no explanations, just the JSON object):
{
  "plainLanguageSummary": "simple explanation in 2-3 paragraphs",
  "keyTakeaways": ["takeaway1", "takeaway2", "takeaway3"],
  "redFlags": ["warning1", "warning2"],
  "greenFlags": ["positive1", "positive2"],
  "recommendations": [
    {
      "priority": "high|medium|low",
      "action": "recommended action",
      "reason": "why this action",
      "timeline": "when to do it"
    }
  ],
  "nextSteps": [
    {
      "step": "step description",
      "description": "detailed description",
      "responsible": "who should do it",
      "deadline": "deadline"
    }
  ]
}
`

func executiveSummaryPrompt(text, documentName string) string {
	return fmt.Sprintf(executiveSummaryTemplate, documentName, text)
}

func contractTermsPrompt(text string) string {
	return fmt.Sprintf(contractTermsTemplate, text)
}

func riskAssessmentPrompt(text string) string {
	return fmt.Sprintf(riskAssessmentTemplate, text)
}

func complianceCheckPrompt(text string) string {
	return fmt.Sprintf(complianceCheckTemplate, text)
}

func financialAnalysisPrompt(text string) string {
	return fmt.Sprintf(financialAnalysisTemplate, text)
}

func humanExplanationPrompt(text string) string {
	return fmt.Sprintf(humanExplanationTemplate, text)
}
