package risk

import (
	"context"
	"sort"
	"strings"

	"github.com/clauselens/clauselens/internal/config"
	"github.com/clauselens/clauselens/internal/core/model"
)

// DefaultRationale is emitted when a verdict matched no category.
const DefaultRationale = "Potential risk identified through pattern matching."

// Analyzer is the strategy interface for clause risk analysis. There is
// no error return: every implementation must produce a verdict for any
// clause, falling back to the deterministic pattern path if it cannot.
type Analyzer interface {
	AnalyzeClause(ctx context.Context, clause model.Clause) model.RiskVerdict
}

// PatternDetector is the required deterministic analyzer. It is pure
// and stateless after construction, so a single instance is safe for
// concurrent use.
type PatternDetector struct {
	Rules    []Rule
	ScoreCap int
}

func NewPatternDetector(cfg config.RiskConfig) *PatternDetector {
	return &PatternDetector{
		Rules:    DefaultRules(cfg),
		ScoreCap: cfg.ScoreCap,
	}
}

// AnalyzeClause runs every rule against the clause text. Each category
// contributes at most once: all of its pattern occurrences are
// evaluated and the maximum contribution (base score plus threshold
// bonus) wins. The summed total is clamped to [0, ScoreCap] at the
// end; per-category scores are never clamped individually.
func (d *PatternDetector) AnalyzeClause(ctx context.Context, clause model.Clause) model.RiskVerdict {
	text := clause.Text
	if strings.TrimSpace(text) == "" {
		return model.RiskVerdict{Tags: []string{}, Score: 0, Rationale: DefaultRationale}
	}

	tags := newOrderedSet()
	rationales := newOrderedSet()
	total := 0

	for _, rule := range d.Rules {
		contribution := 0
		matched := false

		for _, pattern := range rule.Patterns {
			for _, groups := range pattern.FindAllStringSubmatch(text, -1) {
				c := rule.Score
				if rule.Threshold != nil {
					c += rule.Threshold(groups[1:])
				}
				if c > contribution {
					contribution = c
				}
				matched = true
			}
		}

		if matched {
			tags.add(rule.Category)
			rationales.add(rule.Rationale)
			total += contribution
		}
	}

	if total > d.ScoreCap {
		total = d.ScoreCap
	}

	rationale := strings.Join(rationales.items, " ")
	if rationale == "" {
		rationale = DefaultRationale
	}

	return model.RiskVerdict{
		Tags:      tags.items,
		Score:     total,
		Rationale: rationale,
	}
}

// AnalyzeDocument analyzes every clause in input order, keeps verdicts
// scoring at least 1, and stable-sorts descending by score so tied
// clauses keep their document order.
func AnalyzeDocument(ctx context.Context, analyzer Analyzer, clauses []model.Clause) []model.RankedClause {
	ranked := make([]model.RankedClause, 0, len(clauses))

	for _, clause := range clauses {
		verdict := analyzer.AnalyzeClause(ctx, clause)
		if verdict.Score >= 1 {
			ranked = append(ranked, model.RankedClause{Clause: clause, Risk: verdict})
		}
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Risk.Score > ranked[j].Risk.Score
	})

	return ranked
}

// Summarize aggregates ranked verdicts into a document-level summary.
func Summarize(ranked []model.RankedClause) model.RiskSummary {
	summary := model.RiskSummary{Distribution: map[string]int{}}
	if len(ranked) == 0 {
		return summary
	}

	for i, rc := range ranked {
		summary.TotalScore += rc.Risk.Score
		for _, tag := range rc.Risk.Tags {
			summary.Distribution[tag]++
		}
		if summary.HighestRisk == nil || rc.Risk.Score > summary.HighestRisk.Risk.Score {
			summary.HighestRisk = &ranked[i]
		}
	}
	summary.AverageScore = float64(summary.TotalScore) / float64(len(ranked))

	return summary
}

// orderedSet is a sequence with membership check: insertion-order
// de-duplication for tags and rationales.
type orderedSet struct {
	seen  map[string]struct{}
	items []string
}

func newOrderedSet() *orderedSet {
	return &orderedSet{seen: map[string]struct{}{}, items: []string{}}
}

func (s *orderedSet) add(v string) {
	if _, ok := s.seen[v]; ok {
		return
	}
	s.seen[v] = struct{}{}
	s.items = append(s.items, v)
}
