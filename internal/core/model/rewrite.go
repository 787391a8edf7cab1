package model

// RewriteControls are the user-tunable parameters applied when asking
// the model for a fairer version of a clause.
type RewriteControls struct {
	NoticeDays          int     `json:"notice_days"`
	LateFeePercent      float64 `json:"late_fee_percent"`
	JurisdictionNeutral bool    `json:"jurisdiction_neutral"`
	FavorCustomer       bool    `json:"favor_customer"`
}

// RewriteResult is the JSON shape the LLM is instructed to return for
// a clause rewrite.
type RewriteResult struct {
	Rewrite        string   `json:"rewrite"`
	Rationale      string   `json:"rationale"`
	FallbackLevels []string `json:"fallback_levels"`
	RiskReduction  string   `json:"risk_reduction"`
	Citation       string   `json:"citation"`
}
