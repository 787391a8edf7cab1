package core

import (
	"context"
	"fmt"

	"github.com/clauselens/clauselens/internal/core/diff"
	"github.com/clauselens/clauselens/internal/core/model"
	"github.com/clauselens/clauselens/internal/core/rewrite"
	"github.com/clauselens/clauselens/internal/core/risk"
	"github.com/clauselens/clauselens/internal/core/segment"
)

// Reviewer ties the pipeline together: segmentation -> risk ranking ->
// rewrite suggestion -> structured diff. The risk and diff stages are
// pure and safe for concurrent use; the rewrite stage needs an LLM
// client and may be nil-backed in pattern-only deployments.
type Reviewer struct {
	Segmenter *segment.Segmenter
	Analyzer  risk.Analyzer
	Rewriter  *rewrite.Rewriter
}

func NewReviewer(analyzer risk.Analyzer, rewriter *rewrite.Rewriter) *Reviewer {
	return &Reviewer{
		Segmenter: segment.NewSegmenter(),
		Analyzer:  analyzer,
		Rewriter:  rewriter,
	}
}

// ClauseReview is the full side-by-side package for one clause: its
// verdict, the suggested rewrite, and the diff between the two texts.
type ClauseReview struct {
	Clause  model.Clause         `json:"clause"`
	Risk    model.RiskVerdict    `json:"risk_analysis"`
	Rewrite model.RewriteResult  `json:"rewrite"`
	Diff    model.StructuredDiff `json:"diff"`
	Summary model.ChangeSummary  `json:"change_summary"`
}

// AnalyzeText segments raw page text and ranks the risky clauses.
func (r *Reviewer) AnalyzeText(ctx context.Context, pages []model.Page) (model.Document, []model.RankedClause) {
	doc := r.Segmenter.Segment(pages)
	ranked := risk.AnalyzeDocument(ctx, r.Analyzer, doc.Clauses)
	return doc, ranked
}

// AnalyzeClauses ranks pre-segmented clauses.
func (r *Reviewer) AnalyzeClauses(ctx context.Context, clauses []model.Clause) []model.RankedClause {
	return risk.AnalyzeDocument(ctx, r.Analyzer, clauses)
}

// ReviewClause analyzes one clause, asks for a rewrite, and diffs the
// rewrite against the original.
func (r *Reviewer) ReviewClause(ctx context.Context, clause model.Clause, controls model.RewriteControls) (*ClauseReview, error) {
	if r.Rewriter == nil {
		return nil, fmt.Errorf("rewriting requires an LLM client")
	}

	verdict := r.Analyzer.AnalyzeClause(ctx, clause)
	ranked := model.RankedClause{Clause: clause, Risk: verdict}

	suggestion, err := r.Rewriter.Suggest(ctx, ranked, controls)
	if err != nil {
		return nil, fmt.Errorf("failed to rewrite clause '%s': %w", clause.Title, err)
	}

	return &ClauseReview{
		Clause:  clause,
		Risk:    verdict,
		Rewrite: suggestion,
		Diff:    diff.Structured(clause.Text, suggestion.Rewrite),
		Summary: diff.Summarize(clause.Text, suggestion.Rewrite),
	}, nil
}
