package report

import (
	"fmt"
	"html"
	"strings"
	"time"

	"github.com/clauselens/clauselens/internal/core"
	"github.com/clauselens/clauselens/internal/core/diff"
	"github.com/clauselens/clauselens/internal/core/model"
	"github.com/clauselens/clauselens/internal/core/risk"
)

// Options controls what an exported report contains.
type Options struct {
	Title        string `json:"title"`
	IncludeDiffs bool   `json:"include_diffs"`
}

const htmlHeader = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>%s</title>
<style>
body { font-family: Arial, sans-serif; line-height: 1.6; margin: 40px; color: #212529; }
h1 { border-bottom: 2px solid #dee2e6; padding-bottom: 8px; }
.summary { background-color: #f8f9fa; border: 1px solid #dee2e6; border-radius: 5px; padding: 16px; }
.clause { border: 1px solid #dee2e6; border-radius: 5px; padding: 16px; margin: 16px 0; }
.score { display: inline-block; padding: 2px 10px; border-radius: 10px; color: #fff; font-weight: bold; }
.score-high { background-color: #dc3545; }
.score-medium { background-color: #ffc107; color: #212529; }
.score-low { background-color: #28a745; }
.tags { color: #6c757d; font-size: 0.9em; }
.diff-inline { font-family: 'Courier New', monospace; font-size: 13px; background-color: #f8f9fa; border: 1px solid #dee2e6; border-radius: 5px; padding: 12px; white-space: pre-wrap; }
.diff-insert { background-color: #d4edda; color: #155724; }
.diff-delete { background-color: #f8d7da; color: #721c24; text-decoration: line-through; }
.footer { margin-top: 40px; color: #6c757d; font-size: 0.85em; }
</style>
</head>
<body>
<h1>%s</h1>
`

// BuildHTML assembles the human-facing report from the stable analysis
// contracts: the ranked risk list and, when present, per-clause rewrite
// reviews with inline diffs.
func BuildHTML(doc model.Document, ranked []model.RankedClause, reviews []core.ClauseReview, opts Options) string {
	title := opts.Title
	if title == "" {
		title = "Contract Risk Report"
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, htmlHeader, html.EscapeString(title), html.EscapeString(title))

	writeSummary(&sb, doc, ranked)
	writeRiskSection(&sb, ranked)
	if len(reviews) > 0 {
		writeRewriteSection(&sb, reviews, opts)
	}

	fmt.Fprintf(&sb, `<div class="footer">Generated %s &middot; pattern-based analysis, not legal advice.</div>`+"\n",
		time.Now().UTC().Format("2006-01-02 15:04 UTC"))
	sb.WriteString("</body>\n</html>\n")

	return sb.String()
}

func writeSummary(sb *strings.Builder, doc model.Document, ranked []model.RankedClause) {
	summary := risk.Summarize(ranked)

	sb.WriteString(`<div class="summary"><h2>Summary</h2><ul>` + "\n")
	fmt.Fprintf(sb, "<li>Pages: %d</li>\n", doc.TotalPages)
	fmt.Fprintf(sb, "<li>Words: %d</li>\n", doc.WordCount)
	fmt.Fprintf(sb, "<li>Clauses analyzed: %d</li>\n", len(doc.Clauses))
	fmt.Fprintf(sb, "<li>Risky clauses: %d (total score %d, average %.1f)</li>\n",
		len(ranked), summary.TotalScore, summary.AverageScore)
	for tag, count := range summary.Distribution {
		fmt.Fprintf(sb, "<li>%s: %d</li>\n", html.EscapeString(tag), count)
	}
	sb.WriteString("</ul></div>\n")
}

func writeRiskSection(sb *strings.Builder, ranked []model.RankedClause) {
	sb.WriteString("<h2>Risk Analysis</h2>\n")
	if len(ranked) == 0 {
		sb.WriteString("<p>No risky clauses identified.</p>\n")
		return
	}

	for _, rc := range ranked {
		fmt.Fprintf(sb, `<div class="clause"><h3>%s <span class="score %s">%d/10</span></h3>`+"\n",
			html.EscapeString(rc.Clause.Title), scoreClass(rc.Risk.Score), rc.Risk.Score)
		fmt.Fprintf(sb, `<p class="tags">Page %d &middot; %s</p>`+"\n",
			rc.Clause.Page, html.EscapeString(strings.Join(rc.Risk.Tags, ", ")))
		fmt.Fprintf(sb, "<p>%s</p>\n", html.EscapeString(rc.Risk.Rationale))
		fmt.Fprintf(sb, "<blockquote>%s</blockquote>\n", html.EscapeString(rc.Clause.Text))
		sb.WriteString("</div>\n")
	}
}

func writeRewriteSection(sb *strings.Builder, reviews []core.ClauseReview, opts Options) {
	sb.WriteString("<h2>Suggested Rewrites</h2>\n")

	for _, review := range reviews {
		fmt.Fprintf(sb, `<div class="clause"><h3>%s</h3>`+"\n", html.EscapeString(review.Clause.Title))
		fmt.Fprintf(sb, "<p><strong>Rationale:</strong> %s</p>\n", html.EscapeString(review.Rewrite.Rationale))
		fmt.Fprintf(sb, "<p><strong>Risk reduction:</strong> %s</p>\n", html.EscapeString(review.Rewrite.RiskReduction))

		if opts.IncludeDiffs {
			sb.WriteString(diff.RenderInlineHTML(review.Clause.Text, review.Rewrite.Rewrite))
			fmt.Fprintf(sb, `<p class="tags">%d additions, %d deletions, %d modifications &middot; %.0f%% similar</p>`+"\n",
				review.Summary.Additions, review.Summary.Deletions, review.Summary.Modifications,
				review.Summary.SimilarityRatio*100)
		} else {
			fmt.Fprintf(sb, "<blockquote>%s</blockquote>\n", html.EscapeString(review.Rewrite.Rewrite))
		}

		if len(review.Rewrite.FallbackLevels) > 0 {
			sb.WriteString("<p><strong>Negotiation fallbacks:</strong></p><ol>\n")
			for _, level := range review.Rewrite.FallbackLevels {
				fmt.Fprintf(sb, "<li>%s</li>\n", html.EscapeString(level))
			}
			sb.WriteString("</ol>\n")
		}
		sb.WriteString("</div>\n")
	}
}

func scoreClass(score int) string {
	switch {
	case score >= 7:
		return "score-high"
	case score >= 4:
		return "score-medium"
	default:
		return "score-low"
	}
}
