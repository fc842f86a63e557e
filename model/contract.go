package model

// Contract is a single agreement in the portfolio as shown in list views.
type Contract struct {
	ID         string   `json:"id"`
	Name       string   `json:"name"`
	Parties    []string `json:"parties"`
	StartDate  string   `json:"startDate"`
	ExpiryDate string   `json:"expiryDate"`
	Status     string   `json:"status"`    // Active, Expired, Renewal Due
	RiskScore  string   `json:"riskScore"` // Low, Medium, High
	Value      string   `json:"value"`
	Type       string   `json:"type"`
}

// ContractDetail is a contract plus its extracted clauses, derived insights
// and supporting evidence.
type ContractDetail struct {
	Contract
	Clauses  []Clause   `json:"clauses"`
	Insights []Insight  `json:"insights"`
	Evidence []Evidence `json:"evidence"`
}

// Clause is an extracted sub-section of a contract.
type Clause struct {
	ID              string `json:"id"`
	Title           string `json:"title"`
	Summary         string `json:"summary"`
	ConfidenceScore int    `json:"confidenceScore"`
	Type            string `json:"type"` // Standard, Custom, Risk
}

// Insight is a derived observation about a contract.
type Insight struct {
	ID          string `json:"id"`
	Type        string `json:"type"`     // Risk, Recommendation, Opportunity
	Severity    string `json:"severity"` // Low, Medium, High
	Title       string `json:"title"`
	Description string `json:"description"`
}

// Evidence is a supporting text excerpt backing an insight or clause.
type Evidence struct {
	ID             string `json:"id"`
	Source         string `json:"source"`
	Snippet        string `json:"snippet"`
	RelevanceScore int    `json:"relevanceScore"`
	Page           int    `json:"page,omitempty"`
}

// Contract status values as they appear in fixture data.
const (
	StatusActive     = "Active"
	StatusExpired    = "Expired"
	StatusRenewalDue = "Renewal Due"
)

// Risk levels shared by contracts and insights.
const (
	RiskLow    = "Low"
	RiskMedium = "Medium"
	RiskHigh   = "High"
)

// Clause classifications.
const (
	ClauseStandard = "Standard"
	ClauseCustom   = "Custom"
	ClauseRisk     = "Risk"
)

// Insight kinds.
const (
	InsightRisk           = "Risk"
	InsightRecommendation = "Recommendation"
	InsightOpportunity    = "Opportunity"
)

// ValidStatus reports whether s is a known contract status.
func ValidStatus(s string) bool {
	switch s {
	case StatusActive, StatusExpired, StatusRenewalDue:
		return true
	}
	return false
}

// ValidRisk reports whether r is a known risk level.
func ValidRisk(r string) bool {
	switch r {
	case RiskLow, RiskMedium, RiskHigh:
		return true
	}
	return false
}
