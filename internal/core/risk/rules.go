package risk

import (
	"regexp"
	"strconv"

	"github.com/clauselens/clauselens/internal/config"
)

// Risk categories recognized by the pattern rule set.
const (
	TagAutoRenew             = "auto_renew"
	TagUnilateralChange      = "unilateral_change"
	TagShortNotice           = "short_notice"
	TagHighPenalty           = "high_penalty"
	TagExclusiveJurisdiction = "exclusive_jurisdiction"
	TagLiabilityLimitation   = "liability_limitation"
	TagBroadTermination      = "broad_termination"
)

// ThresholdFunc inspects the capture groups of one pattern occurrence
// and returns the extra score to add when an extracted value crosses
// the configured boundary (e.g. notice shorter than 30 days).
type ThresholdFunc func(groups []string) int

// Rule is one risk category: the patterns that trigger it, its base
// score, a human-readable rationale, and an optional threshold
// refinement. Rules are plain data so each can be tested on its own.
type Rule struct {
	Category  string
	Patterns  []*regexp.Regexp
	Score     int
	Rationale string
	Threshold ThresholdFunc
}

// DefaultRules builds the fixed rule table. Evaluation order matters
// for determinism, so this is a slice, not a map. Thresholds come from
// config; the table itself is never mutated after construction.
func DefaultRules(cfg config.RiskConfig) []Rule {
	return []Rule{
		{
			Category: TagAutoRenew,
			Patterns: compile(
				`auto(?:matic)?(?:ally)?\s*renew`,
				`renews?\s*(?:automatically|unless)`,
				`automatic\s*(?:extension|renewal)`,
				`shall\s*continue\s*unless\s*terminated`,
			),
			Score:     3,
			Rationale: "Auto-renewal clauses can trap parties in unwanted contract extensions.",
		},
		{
			Category: TagUnilateralChange,
			Patterns: compile(
				`(?:provider|company|we)\s*(?:may|can|shall)\s*modify.*without\s*(?:notice|consent)`,
				`unilateral(?:ly)?\s*(?:change|modify|alter)`,
				`at\s*(?:our|company's)\s*(?:sole\s*)?discretion`,
				`right\s*to\s*(?:change|modify).*without\s*(?:notice|consent)`,
			),
			Score:     4,
			Rationale: "Unilateral modification rights create power imbalances and unpredictability.",
		},
		{
			Category: TagShortNotice,
			Patterns: compile(
				`(?:notice|notification)\s*(?:period\s*)?(?:of\s*)?(?:less\s*than\s*)?(\d+)\s*days?`,
				`(\d+)\s*days?\s*(?:prior\s*)?notice`,
				`terminate.*(?:with|upon)\s*(\d+)\s*days?\s*notice`,
			),
			Score:     2,
			Rationale: "Short notice periods may not provide adequate time to respond or find alternatives.",
			Threshold: shortNoticeBonus(cfg.ShortNoticeDays),
		},
		{
			Category: TagHighPenalty,
			Patterns: compile(
				`(?:penalty|fee|charge).*?(\d+(?:\.\d+)?)%`,
				`liquidated\s*damages.*?(\d+(?:\.\d+)?)%`,
				`late\s*(?:payment\s*)?(?:fee|charge).*?(\d+(?:\.\d+)?)%`,
			),
			Score:     3,
			Rationale: "High penalty percentages can result in disproportionate financial consequences.",
			Threshold: highPenaltyBonus(cfg.HighPenaltyPercent),
		},
		{
			Category: TagExclusiveJurisdiction,
			Patterns: compile(
				`exclusive\s*jurisdiction`,
				`binding\s*arbitration`,
				`waive.*right.*jury\s*trial`,
				`disputes\s*shall\s*be\s*resolved\s*(?:exclusively\s*)?in`,
			),
			Score:     2,
			Rationale: "Exclusive jurisdiction clauses may limit legal options and increase costs.",
		},
		{
			Category: TagLiabilityLimitation,
			Patterns: compile(
				`(?:limit|exclude|disclaim).*liability`,
				`in\s*no\s*event.*liable`,
				`maximum\s*liability.*(?:shall\s*not\s*exceed|limited\s*to)`,
				`consequential\s*damages.*(?:excluded|disclaimed)`,
			),
			Score:     3,
			Rationale: "Liability limitations may prevent fair compensation for damages.",
		},
		{
			Category: TagBroadTermination,
			Patterns: compile(
				`terminate.*(?:for\s*any\s*reason|at\s*any\s*time)`,
				`(?:immediate|without\s*cause)\s*termination`,
				`terminate.*without.*(?:notice|cause|reason)`,
			),
			Score:     3,
			Rationale: "Broad termination rights create uncertainty and potential for abuse.",
		},
	}
}

func compile(patterns ...string) []*regexp.Regexp {
	out := make([]*regexp.Regexp, len(patterns))
	for i, p := range patterns {
		out[i] = regexp.MustCompile(`(?i)` + p)
	}
	return out
}

// shortNoticeBonus adds 1 when the smallest captured day count is
// below the configured threshold.
func shortNoticeBonus(maxDays int) ThresholdFunc {
	return func(groups []string) int {
		days, ok := minInt(groups)
		if ok && days < maxDays {
			return 1
		}
		return 0
	}
}

// highPenaltyBonus adds 1 when the largest captured percentage exceeds
// the configured threshold.
func highPenaltyBonus(maxPercent float64) ThresholdFunc {
	return func(groups []string) int {
		pct, ok := maxFloat(groups)
		if ok && pct > maxPercent {
			return 1
		}
		return 0
	}
}

func minInt(groups []string) (int, bool) {
	best := 0
	found := false
	for _, g := range groups {
		if g == "" {
			continue
		}
		v, err := strconv.ParseFloat(g, 64)
		if err != nil {
			continue
		}
		if !found || int(v) < best {
			best = int(v)
		}
		found = true
	}
	return best, found
}

func maxFloat(groups []string) (float64, bool) {
	best := 0.0
	found := false
	for _, g := range groups {
		if g == "" {
			continue
		}
		v, err := strconv.ParseFloat(g, 64)
		if err != nil {
			continue
		}
		if !found || v > best {
			best = v
		}
		found = true
	}
	return best, found
}
