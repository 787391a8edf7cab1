package risk

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/clauselens/clauselens/internal/config"
	"github.com/clauselens/clauselens/internal/core/model"
)

func newTestDetector() *PatternDetector {
	return NewPatternDetector(config.Default().Risk)
}

func TestAnalyzeClause_AutoRenewal(t *testing.T) {
	detector := newTestDetector()

	verdict := detector.AnalyzeClause(context.Background(), model.Clause{
		ID:    "test_1",
		Title: "Auto-Renewal Clause",
		Text:  "This agreement shall automatically renew for successive one-year periods unless either party provides written notice of termination at least 30 days prior to the expiration date.",
	})

	assert.Contains(t, verdict.Tags, TagAutoRenew)
	assert.GreaterOrEqual(t, verdict.Score, 3)
}

func TestAnalyzeClause_HighPenaltyWithThresholdBonus(t *testing.T) {
	detector := newTestDetector()

	verdict := detector.AnalyzeClause(context.Background(), model.Clause{
		ID:    "test_4",
		Title: "Late Payment Fee",
		Text:  "Customer agrees to pay a late payment fee of 15% per month on any overdue amounts.",
	})

	// Base 3 plus threshold bonus 1, since 15 > 10.
	assert.Contains(t, verdict.Tags, TagHighPenalty)
	assert.GreaterOrEqual(t, verdict.Score, 4)
}

func TestAnalyzeClause_LowPenaltyNoBonus(t *testing.T) {
	detector := newTestDetector()

	verdict := detector.AnalyzeClause(context.Background(), model.Clause{
		Text: "Customer agrees to pay a late payment fee of 5% on any overdue amounts.",
	})

	assert.Contains(t, verdict.Tags, TagHighPenalty)
	assert.Equal(t, 3, verdict.Score)
}

func TestAnalyzeClause_ShortNoticeBonus(t *testing.T) {
	detector := newTestDetector()

	verdict := detector.AnalyzeClause(context.Background(), model.Clause{
		Text: "Either party may cancel this subscription by giving 10 days prior notice in writing.",
	})

	assert.Contains(t, verdict.Tags, TagShortNotice)
	assert.Equal(t, 3, verdict.Score) // base 2 + bonus, 10 < 30
}

func TestAnalyzeClause_EmptyTextIsZeroVerdict(t *testing.T) {
	detector := newTestDetector()

	verdict := detector.AnalyzeClause(context.Background(), model.Clause{ID: "empty", Text: ""})

	assert.Equal(t, 0, verdict.Score)
	assert.Empty(t, verdict.Tags)
	assert.Equal(t, DefaultRationale, verdict.Rationale)
}

func TestAnalyzeClause_NoMatchIsZeroVerdict(t *testing.T) {
	detector := newTestDetector()

	verdict := detector.AnalyzeClause(context.Background(), model.Clause{
		Text: "The parties agree to cooperate in good faith on all deliverables.",
	})

	assert.Equal(t, 0, verdict.Score)
	assert.Empty(t, verdict.Tags)
	assert.Equal(t, DefaultRationale, verdict.Rationale)
}

func TestAnalyzeClause_CategoryContributesOnce(t *testing.T) {
	detector := newTestDetector()

	// Two distinct auto-renewal phrasings; the category still counts once.
	verdict := detector.AnalyzeClause(context.Background(), model.Clause{
		Text: "This agreement shall automatically renew each term. The contract renews unless notice is given. Automatic extension applies thereafter.",
	})

	assert.Equal(t, []string{TagAutoRenew}, verdict.Tags)
	assert.Equal(t, 3, verdict.Score)
}

func TestAnalyzeClause_ScoreClampedToCap(t *testing.T) {
	detector := newTestDetector()

	// Triggers every category: 3+4+3+4+2+3+3 before clamping.
	text := strings.Join([]string{
		"This agreement shall automatically renew each year.",
		"Company may modify these terms without notice.",
		"Either party may cancel upon 5 days prior notice.",
		"A late payment fee of 20% applies to overdue amounts.",
		"The courts of Delaware shall have exclusive jurisdiction.",
		"In no event shall the Company be liable for damages.",
		"We may terminate this agreement at any time.",
	}, " ")

	verdict := detector.AnalyzeClause(context.Background(), model.Clause{Text: text})

	assert.Equal(t, 10, verdict.Score)
	assert.Len(t, verdict.Tags, 7)
}

func TestAnalyzeClause_ScoreAlwaysInRange(t *testing.T) {
	detector := newTestDetector()

	texts := []string{
		"",
		"Nothing risky here.",
		"terminate terminate terminate at any time at any time",
		"A penalty of 99% and binding arbitration and automatic renewal and unilateral changes at our sole discretion.",
	}
	for _, text := range texts {
		verdict := detector.AnalyzeClause(context.Background(), model.Clause{Text: text})
		assert.GreaterOrEqual(t, verdict.Score, 0, "text %q", text)
		assert.LessOrEqual(t, verdict.Score, 10, "text %q", text)
	}
}

func TestAnalyzeClause_RationalesDeduplicated(t *testing.T) {
	detector := newTestDetector()

	verdict := detector.AnalyzeClause(context.Background(), model.Clause{
		Text: "This agreement shall automatically renew. Automatic renewal applies to all terms.",
	})

	assert.Equal(t, 1, strings.Count(verdict.Rationale, "Auto-renewal"))
}

func TestAnalyzeClause_IsDeterministic(t *testing.T) {
	detector := newTestDetector()
	clause := model.Clause{
		Text: "Company may modify these terms at our sole discretion. A late fee of 12% applies.",
	}

	first := detector.AnalyzeClause(context.Background(), clause)
	second := detector.AnalyzeClause(context.Background(), clause)

	assert.Equal(t, first, second)
}

func TestAnalyzeDocument_FiltersAndSorts(t *testing.T) {
	detector := newTestDetector()

	clauses := []model.Clause{
		{ID: "c1", Title: "Cooperation", Text: "The parties agree to cooperate in good faith."},
		{ID: "c2", Title: "Auto-Renewal", Text: "This agreement shall automatically renew each year."},
		{ID: "c3", Title: "Modification", Text: "Company may modify these terms without notice to the customer."},
		{ID: "c4", Title: "Late Fees", Text: "A late payment fee of 15% applies to overdue amounts."},
	}

	ranked := AnalyzeDocument(context.Background(), detector, clauses)

	assert.Len(t, ranked, 3) // c1 matched nothing and is dropped
	for i := 1; i < len(ranked); i++ {
		assert.GreaterOrEqual(t, ranked[i-1].Risk.Score, ranked[i].Risk.Score)
	}
	assert.Equal(t, "c3", ranked[0].Clause.ID) // unilateral_change scores 4
}

func TestAnalyzeDocument_StableForEqualScores(t *testing.T) {
	detector := newTestDetector()

	// Both clauses score 3 (auto_renew / broad_termination base).
	clauses := []model.Clause{
		{ID: "first", Text: "This agreement shall automatically renew each year."},
		{ID: "second", Text: "We may terminate this agreement at any time."},
	}

	ranked := AnalyzeDocument(context.Background(), detector, clauses)

	assert.Len(t, ranked, 2)
	assert.Equal(t, ranked[0].Risk.Score, ranked[1].Risk.Score)
	assert.Equal(t, "first", ranked[0].Clause.ID)
	assert.Equal(t, "second", ranked[1].Clause.ID)
}

func TestAnalyzeDocument_EmptyInput(t *testing.T) {
	detector := newTestDetector()

	assert.Empty(t, AnalyzeDocument(context.Background(), detector, nil))
}

func TestSummarize(t *testing.T) {
	detector := newTestDetector()

	clauses := []model.Clause{
		{ID: "c1", Text: "This agreement shall automatically renew each year."},
		{ID: "c2", Text: "Company may modify these terms without notice to the customer."},
	}
	ranked := AnalyzeDocument(context.Background(), detector, clauses)

	summary := Summarize(ranked)

	assert.Equal(t, 7, summary.TotalScore)
	assert.InDelta(t, 3.5, summary.AverageScore, 0.001)
	assert.Equal(t, 1, summary.Distribution[TagAutoRenew])
	assert.Equal(t, 1, summary.Distribution[TagUnilateralChange])
	assert.NotNil(t, summary.HighestRisk)
	assert.Equal(t, "c2", summary.HighestRisk.Clause.ID)
}

func TestSummarize_Empty(t *testing.T) {
	summary := Summarize(nil)

	assert.Equal(t, 0, summary.TotalScore)
	assert.Equal(t, 0.0, summary.AverageScore)
	assert.Empty(t, summary.Distribution)
	assert.Nil(t, summary.HighestRisk)
}
