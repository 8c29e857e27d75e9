package types

import "time"

type ExecutiveSummary struct {
	DocumentType     string   `json:"documentType"`
	KeyPurpose       string   `json:"keyPurpose"`
	PartiesInvolved  []string `json:"partiesInvolved"`
	MainSubject      string   `json:"mainSubject"`
	OverallRiskLevel string   `json:"overallRiskLevel"` // low|medium|high|critical
	Confidence       float64  `json:"confidence"`
	IsLegalDocument  bool     `json:"isLegalDocument"`
	DocumentCategory string   `json:"documentCategory"` // legal|contract|academic|business|creative|other
	AnalysisWarning  string   `json:"analysisWarning,omitempty"`
}

type ContractTerms struct {
	Duration           string   `json:"duration"`
	PaymentTerms       []string `json:"paymentTerms"`
	Obligations        []string `json:"obligations"`
	TerminationClauses []string `json:"terminationClauses"`
	Penalties          []string `json:"penalties"`
}

type FinancialRisk struct {
	Type          string `json:"type"`
	Description   string `json:"description"`
	Impact        string `json:"impact"`
	Probability   string `json:"probability"`
	Mitigation    string `json:"mitigation"`
	EstimatedCost string `json:"estimatedCost,omitempty"`
}

type LegalRisk struct {
	Type           string `json:"type"`
	Description    string `json:"description"`
	Severity       string `json:"severity"`
	Clause         string `json:"clause"`
	Recommendation string `json:"recommendation"`
}

type OperationalRisk struct {
	Type           string `json:"type"`
	Description    string `json:"description"`
	Impact         string `json:"impact"`
	Timeline       string `json:"timeline"`
	ActionRequired string `json:"actionRequired"`
}

type RiskAssessment struct {
	FinancialRisks   []FinancialRisk   `json:"financialRisks"`
	LegalRisks       []LegalRisk       `json:"legalRisks"`
	OperationalRisks []OperationalRisk `json:"operationalRisks"`
}

type RegulatoryRequirement struct {
	Requirement  string `json:"requirement"`
	Status       string `json:"status"` // compliant|non-compliant|unclear
	Description  string `json:"description"`
	ActionNeeded string `json:"actionNeeded,omitempty"`
}

type IndustryStandard struct {
	Standard  string   `json:"standard"`
	Adherence string   `json:"adherence"` // full|partial|none
	Gaps      []string `json:"gaps"`
}

type ComplianceCheck struct {
	RegulatoryRequirements []RegulatoryRequirement `json:"regulatoryRequirements"`
	IndustryStandards      []IndustryStandard      `json:"industryStandards"`
}

type ScheduledPayment struct {
	Amount     string `json:"amount"`
	DueDate    string `json:"dueDate"`
	Conditions string `json:"conditions"`
}

type CostItem struct {
	Category    string `json:"category"`
	Amount      string `json:"amount"`
	Description string `json:"description"`
}

type ROIProjection struct {
	Timeframe      string  `json:"timeframe"`
	ExpectedReturn string  `json:"expectedReturn"`
	Confidence     float64 `json:"confidence"`
}

type FinancialAnalysis struct {
	TotalValue      string             `json:"totalValue"`
	PaymentSchedule []ScheduledPayment `json:"paymentSchedule"`
	CostBreakdown   []CostItem         `json:"costBreakdown"`
	ROIProjection   *ROIProjection     `json:"roiProjection,omitempty"`
}

type Recommendation struct {
	Priority string `json:"priority"` // high|medium|low
	Action   string `json:"action"`
	Reason   string `json:"reason"`
	Timeline string `json:"timeline"`
}

type NextStep struct {
	Step        string `json:"step"`
	Description string `json:"description"`
	Responsible string `json:"responsible"`
	Deadline    string `json:"deadline"`
}

type HumanExplanation struct {
	PlainLanguageSummary string           `json:"plainLanguageSummary"`
	KeyTakeaways         []string         `json:"keyTakeaways"`
	RedFlags             []string         `json:"redFlags"`
	GreenFlags           []string         `json:"greenFlags"`
	Recommendations      []Recommendation `json:"recommendations"`
	NextSteps            []NextStep       `json:"nextSteps"`
}

// AnalysisMetadata is computed deterministically from text statistics,
// never from model output.
type AnalysisMetadata struct {
	AnalysisDate     time.Time `json:"analysisDate"`
	ProcessingTimeMs int64     `json:"processingTimeMs"`
	Confidence       float64   `json:"confidence"`
	WordCount        int       `json:"wordCount"`
	Complexity       string    `json:"complexity"` // simple|moderate|complex|highly-complex
	Truncated        bool      `json:"truncated"`
}

type DetailedAnalysis struct {
	ContractTerms     ContractTerms     `json:"contractTerms"`
	RiskAssessment    RiskAssessment    `json:"riskAssessment"`
	ComplianceCheck   ComplianceCheck   `json:"complianceCheck"`
	FinancialAnalysis FinancialAnalysis `json:"financialAnalysis"`
}

// AnalysisReport is produced once per document and immutable after creation.
type AnalysisReport struct {
	ExecutiveSummary ExecutiveSummary `json:"executiveSummary"`
	DetailedAnalysis DetailedAnalysis `json:"detailedAnalysis"`
	HumanExplanation HumanExplanation `json:"humanExplanation"`
	Metadata         AnalysisMetadata `json:"metadata"`
}
