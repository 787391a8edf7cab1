package segment

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/clauselens/clauselens/internal/core/model"
)

const terminationBody = "The Company may terminate this agreement at any time upon thirty days written notice to the other party without cause or penalty."

const paymentBody = "All fees are due within fifteen days of invoice and late payments accrue interest at the maximum rate permitted by applicable law."

func TestSegment_NumberedHeaders(t *testing.T) {
	s := NewSegmenter()

	doc := s.Segment([]model.Page{
		{Number: 1, Text: "AGREEMENT\n1. Termination\n" + terminationBody},
		{Number: 2, Text: "Continued terms\n2. Payment\n" + paymentBody},
	})

	assert.NotEmpty(t, doc.ID)
	assert.Equal(t, 2, doc.TotalPages)
	assert.Len(t, doc.Clauses, 2)

	first := doc.Clauses[0]
	assert.Equal(t, "clause_1", first.ID)
	assert.Equal(t, "1. Termination", first.Title)
	assert.Contains(t, first.Text, "thirty days written notice")
	assert.Equal(t, 1, first.Page)

	second := doc.Clauses[1]
	assert.Equal(t, "clause_2", second.ID)
	assert.Equal(t, "2. Payment", second.Title)
	assert.Equal(t, 2, second.Page)
}

func TestSegment_FiltersShortSections(t *testing.T) {
	s := NewSegmenter()

	doc := s.Segment([]model.Page{{Number: 1, Text: strings.Join([]string{
		"MASTER SERVICES AGREEMENT",
		"1. Termination",
		terminationBody,
		"2. Notices",
		"Short.",
		"3. Payment",
		paymentBody,
	}, "\n")}})

	// The preamble and the three-word notices section fall below the
	// minimum clause length; IDs stay sequential over what survives.
	assert.Len(t, doc.Clauses, 2)
	assert.Equal(t, "clause_1", doc.Clauses[0].ID)
	assert.Equal(t, "1. Termination", doc.Clauses[0].Title)
	assert.Equal(t, "clause_2", doc.Clauses[1].ID)
	assert.Equal(t, "3. Payment", doc.Clauses[1].Title)
}

func TestSegment_FallbackChunking(t *testing.T) {
	s := NewSegmenter()

	para := strings.TrimSpace(strings.Repeat("the parties agree to these terms ", 3)) // 18 words
	text := para + "\n\n" + para + "\n\n" + para

	doc := s.Segment([]model.Page{{Number: 1, Text: text}})

	// No headers anywhere: the chunking fallback groups paragraphs into
	// roughly clause-sized pieces instead of returning nothing.
	assert.NotEmpty(t, doc.Clauses)
	for _, clause := range doc.Clauses {
		assert.GreaterOrEqual(t, clause.WordCount, s.MinFallbackWords)
		assert.Equal(t, 1, clause.Page)
	}
}

func TestSegment_FallbackDropsTinyRemainder(t *testing.T) {
	s := NewSegmenter()

	big := strings.TrimSpace(strings.Repeat("obligations survive termination of this agreement ", 7)) // 42 words
	doc := s.Segment([]model.Page{{Number: 1, Text: big + "\n\ntiny leftover"}})

	assert.Len(t, doc.Clauses, 1)
	assert.NotContains(t, doc.Clauses[0].Text, "tiny leftover")
}

func TestSegment_EmptyInput(t *testing.T) {
	s := NewSegmenter()

	doc := s.Segment(nil)

	assert.NotEmpty(t, doc.ID)
	assert.Equal(t, 0, doc.TotalPages)
	assert.Equal(t, 0, doc.WordCount)
	assert.Empty(t, doc.Clauses)
}

func TestSegment_DocumentFields(t *testing.T) {
	s := NewSegmenter()

	doc := s.Segment([]model.Page{
		{Number: 1, Text: "Intro\n1. Termination\n" + terminationBody},
		{Number: 2, Text: "More\n2. Payment\n" + paymentBody},
	})

	assert.Contains(t, doc.FullText, terminationBody)
	assert.Contains(t, doc.FullText, paymentBody)
	assert.Equal(t, len(strings.Fields(doc.FullText)), doc.WordCount)
	for _, clause := range doc.Clauses {
		assert.Equal(t, len(strings.Fields(clause.Text)), clause.WordCount)
	}
}

func TestExtractTitle(t *testing.T) {
	cases := []struct {
		name string
		text string
		want string
	}{
		{
			name: "short first line used verbatim",
			text: "Payment Terms\n" + paymentBody,
			want: "Payment Terms",
		},
		{
			name: "numbering prefix stripped from long line",
			text: "1. Notice must be given to each party in writing\nmore text",
			want: "Notice must be given to each party in writing",
		},
		{
			name: "long unstructured line truncated to eight words",
			text: "the quick brown fox jumps over the lazy sleeping dog today",
			want: "the quick brown fox jumps over the lazy...",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, extractTitle(tc.text))
		})
	}
}
