package diff

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSummarize_TrailingAddition(t *testing.T) {
	summary := Summarize("one two three", "one two three four")

	assert.Equal(t, 1, summary.Additions)
	assert.Equal(t, 0, summary.Deletions)
	assert.Equal(t, 0, summary.Modifications)
	assert.Equal(t, 3, summary.Unchanged)
	assert.Equal(t, 1, summary.WordCountChange)
	assert.InDelta(t, 33.33, summary.PercentChanged, 0.001)
	assert.InDelta(t, 6.0/7.0, summary.SimilarityRatio, 0.001)
}

func TestSummarize_Identical(t *testing.T) {
	summary := Summarize("payment due within thirty days", "payment due within thirty days")

	assert.Equal(t, 0, summary.Additions)
	assert.Equal(t, 0, summary.Deletions)
	assert.Equal(t, 0, summary.Modifications)
	assert.Equal(t, 5, summary.Unchanged)
	assert.Equal(t, 0, summary.WordCountChange)
	assert.Equal(t, 0.0, summary.PercentChanged)
	assert.Equal(t, 1.0, summary.SimilarityRatio)
}

func TestSummarize_WordReplacement(t *testing.T) {
	summary := Summarize("fee of twenty percent", "fee of five percent")

	assert.Equal(t, 1, summary.Modifications)
	assert.Equal(t, 3, summary.Unchanged)
	assert.Equal(t, 0, summary.WordCountChange)
	assert.InDelta(t, 25.0, summary.PercentChanged, 0.001)
}

func TestSummarize_EmptyOriginal(t *testing.T) {
	summary := Summarize("", "brand new clause")

	assert.Equal(t, 3, summary.Additions)
	assert.Equal(t, 3, summary.WordCountChange)
	// No original words: percent changed stays zero rather than dividing by zero.
	assert.Equal(t, 0.0, summary.PercentChanged)
}

func TestSummarize_EmptyRewrite(t *testing.T) {
	summary := Summarize("everything was removed", "")

	assert.Equal(t, 3, summary.Deletions)
	assert.Equal(t, -3, summary.WordCountChange)
	assert.InDelta(t, 100.0, summary.PercentChanged, 0.001)
	assert.Equal(t, 0.0, summary.SimilarityRatio)
}

func TestSummarize_PercentRounding(t *testing.T) {
	// 1 of 7 words changed: 14.285714... rounds to 14.29.
	summary := Summarize("a b c d e f g", "a b c d e f h")

	assert.Equal(t, 14.29, summary.PercentChanged)
}

func TestSummarize_WhitespaceInsensitive(t *testing.T) {
	summary := Summarize("one  two\tthree", "one two three")

	assert.Equal(t, 3, summary.Unchanged)
	assert.Equal(t, 0, summary.WordCountChange)
	assert.Equal(t, 1.0, summary.SimilarityRatio)
}

func TestHighlights_AddedSentence(t *testing.T) {
	h := Highlights(
		"The agreement renews annually.",
		"The agreement renews annually. Either party may opt out with notice.",
	)

	assert.Equal(t, []string{"Either party may opt out with notice"}, h.AddedPhrases)
	assert.Empty(t, h.RemovedPhrases)
	assert.Empty(t, h.ModifiedPhrases)
}

func TestHighlights_RemovedSentence(t *testing.T) {
	h := Highlights(
		"Fees are non-refundable. Late fees apply at twenty percent.",
		"Fees are non-refundable.",
	)

	assert.Equal(t, []string{"Late fees apply at twenty percent"}, h.RemovedPhrases)
	assert.Empty(t, h.AddedPhrases)
}

func TestHighlights_ModifiedSentence(t *testing.T) {
	h := Highlights(
		"Notice must be given 10 days in advance.",
		"Notice must be given 60 days in advance.",
	)

	assert.Len(t, h.ModifiedPhrases, 1)
	assert.Equal(t,
		"Changed from: 'Notice must be given 10 days in advance' to: 'Notice must be given 60 days in advance'",
		h.ModifiedPhrases[0])
}

func TestHighlights_EmptyInputs(t *testing.T) {
	h := Highlights("", "")

	assert.Empty(t, h.AddedPhrases)
	assert.Empty(t, h.RemovedPhrases)
	assert.Empty(t, h.ModifiedPhrases)
}
