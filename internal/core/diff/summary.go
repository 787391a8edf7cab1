package diff

import (
	"fmt"
	"math"
	"strings"

	"github.com/pmezard/go-difflib/difflib"

	"github.com/clauselens/clauselens/internal/core/model"
)

// Summarize produces the coarse word-level view of a rewrite: counts
// of added/removed/replaced/unchanged words, the 2*M/T similarity
// ratio, and the percentage of the original that changed.
func Summarize(original, rewritten string) model.ChangeSummary {
	originalWords := strings.Fields(original)
	rewrittenWords := strings.Fields(rewritten)

	matcher := difflib.NewMatcher(originalWords, rewrittenWords)

	summary := model.ChangeSummary{
		SimilarityRatio: matcher.Ratio(),
		WordCountChange: len(rewrittenWords) - len(originalWords),
	}

	for _, op := range matcher.GetOpCodes() {
		switch op.Tag {
		case 'e':
			summary.Unchanged += op.I2 - op.I1
		case 'i':
			summary.Additions += op.J2 - op.J1
		case 'd':
			summary.Deletions += op.I2 - op.I1
		case 'r':
			summary.Modifications += maxOf(op.I2-op.I1, op.J2-op.J1)
		}
	}

	if len(originalWords) > 0 {
		changed := summary.Additions + summary.Deletions + summary.Modifications
		pct := float64(changed) / float64(len(originalWords)) * 100
		summary.PercentChanged = math.Round(pct*100) / 100
	}

	return summary
}

// Highlights extracts sentence-level phrases a rewrite added, removed
// or reworded, for quick human review.
func Highlights(original, rewritten string) model.ChangeHighlights {
	originalSentences := splitSentences(original)
	rewrittenSentences := splitSentences(rewritten)

	highlights := model.ChangeHighlights{
		AddedPhrases:    []string{},
		RemovedPhrases:  []string{},
		ModifiedPhrases: []string{},
	}

	matcher := difflib.NewMatcher(originalSentences, rewrittenSentences)
	for _, op := range matcher.GetOpCodes() {
		switch op.Tag {
		case 'i':
			highlights.AddedPhrases = append(highlights.AddedPhrases, rewrittenSentences[op.J1:op.J2]...)
		case 'd':
			highlights.RemovedPhrases = append(highlights.RemovedPhrases, originalSentences[op.I1:op.I2]...)
		case 'r':
			highlights.ModifiedPhrases = append(highlights.ModifiedPhrases, fmt.Sprintf(
				"Changed from: '%s' to: '%s'",
				strings.Join(originalSentences[op.I1:op.I2], " "),
				strings.Join(rewrittenSentences[op.J1:op.J2], " "),
			))
		}
	}

	return highlights
}

func splitSentences(text string) []string {
	var sentences []string
	for _, s := range strings.Split(text, ".") {
		if s = strings.TrimSpace(s); s != "" {
			sentences = append(sentences, s)
		}
	}
	return sentences
}
