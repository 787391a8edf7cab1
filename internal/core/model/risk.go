package model

// RiskVerdict is the result of analyzing a single clause. Tags keep
// insertion order with duplicates removed; Score is clamped to
// [0, score cap] after summing category contributions.
type RiskVerdict struct {
	Tags      []string `json:"tags"`
	Score     int      `json:"score"`
	Rationale string   `json:"rationale"`

	// Populated only by the AI analysis path; empty on the pattern path.
	LegalDisadvantages string `json:"legal_disadvantages,omitempty"`
	PrivacyConcerns    string `json:"privacy_concerns,omitempty"`
	UnfairTerms        string `json:"unfair_terms,omitempty"`
	Recommendations    string `json:"recommendations,omitempty"`
}

// RankedClause pairs a clause with its verdict. Document analysis keeps
// only verdicts scoring >= 1, sorted by score descending (stable, so
// equal scores preserve document order).
type RankedClause struct {
	Clause Clause      `json:"clause"`
	Risk   RiskVerdict `json:"risk_analysis"`
}

type RiskSummary struct {
	TotalScore   int            `json:"total_score"`
	AverageScore float64        `json:"avg_score"`
	Distribution map[string]int `json:"risk_distribution"`
	HighestRisk  *RankedClause  `json:"highest_risk_clause,omitempty"`
}

// AIVerdict is the JSON shape the LLM is instructed to return for risk
// analysis. It is converted into a RiskVerdict at the strategy boundary.
type AIVerdict struct {
	RiskScore          int      `json:"risk_score"`
	RiskTags           []string `json:"risk_tags"`
	RiskSummary        string   `json:"risk_summary"`
	LegalDisadvantages string   `json:"legal_disadvantages"`
	PrivacyConcerns    string   `json:"privacy_concerns"`
	UnfairTerms        string   `json:"unfair_terms"`
	Recommendations    string   `json:"recommendations"`
}
