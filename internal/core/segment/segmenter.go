package segment

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/google/uuid"

	"github.com/clauselens/clauselens/internal/core/model"
)

// headerPattern marks the start of a new clause: numbered sections
// ("1.", "2 TERMINATION"), ALL-CAPS headings, "Article N"/"Section N".
var headerPattern = regexp.MustCompile(`\n\s*(?:\d+\.|\d+\s+[A-Z]|[A-Z][A-Z\s]{3,}:?)\s*[^\n]*\n`)

// titlePatterns are tried against the first line of a clause to strip
// the numbering prefix when building a title.
var titlePatterns = []*regexp.Regexp{
	regexp.MustCompile(`^\d+\.\s*`),
	regexp.MustCompile(`^[A-Z][A-Z\s]+:?`),
	regexp.MustCompile(`^\([a-z]\)`),
	regexp.MustCompile(`^\([0-9]+\)`),
	regexp.MustCompile(`^Article\s+\d+`),
	regexp.MustCompile(`^Section\s+\d+`),
	regexp.MustCompile(`^\d+\s+[A-Z][A-Za-z\s]+`),
}

// Segmenter splits extracted page text into titled clause records. It
// does not own text extraction; pages arrive from whatever produced
// them (PDF, OCR, plain upload).
type Segmenter struct {
	// MinClauseWords filters out fragments too short to be a clause.
	MinClauseWords int
	// MinFallbackWords is the lower bound used by the chunking
	// fallback when header detection finds too little structure.
	MinFallbackWords int
}

func NewSegmenter() *Segmenter {
	return &Segmenter{
		MinClauseWords:   20,
		MinFallbackWords: 15,
	}
}

type pageRange struct {
	start, end int
	number     int
}

// Segment extracts clauses from the given pages. When header-based
// splitting yields fewer than two clauses, it falls back to grouping
// paragraph chunks so unstructured documents still produce something
// analyzable.
func (s *Segmenter) Segment(pages []model.Page) model.Document {
	var fullText strings.Builder
	var ranges []pageRange

	for _, page := range pages {
		start := fullText.Len()
		fullText.WriteString(page.Text)
		fullText.WriteString("\n\n")
		ranges = append(ranges, pageRange{start: start, end: fullText.Len(), number: page.Number})
	}

	text := fullText.String()
	clauses := s.splitByHeaders(text, ranges)

	if len(clauses) < 2 {
		clauses = s.chunkFallback(pages)
	}

	return model.Document{
		ID:         uuid.New().String(),
		TotalPages: len(pages),
		WordCount:  len(strings.Fields(text)),
		FullText:   text,
		Clauses:    clauses,
	}
}

func (s *Segmenter) splitByHeaders(text string, ranges []pageRange) []model.Clause {
	matches := headerPattern.FindAllStringIndex(text, -1)

	// Section boundaries: each header starts a section that runs until
	// the next header. Text before the first header is its own section.
	type section struct {
		start int
		body  string
	}
	var sections []section

	if len(matches) > 0 && matches[0][0] > 0 {
		sections = append(sections, section{start: 0, body: text[:matches[0][0]]})
	}
	for i, m := range matches {
		end := len(text)
		if i+1 < len(matches) {
			end = matches[i+1][0]
		}
		sections = append(sections, section{start: m[0], body: text[m[0]:end]})
	}
	if len(matches) == 0 && strings.TrimSpace(text) != "" {
		sections = append(sections, section{start: 0, body: text})
	}

	var clauses []model.Clause
	counter := 1
	for _, sec := range sections {
		body := strings.TrimSpace(sec.body)
		words := len(strings.Fields(body))
		if words < s.MinClauseWords {
			continue
		}

		clauses = append(clauses, model.Clause{
			ID:        fmt.Sprintf("clause_%d", counter),
			Title:     extractTitle(body),
			Text:      body,
			Page:      pageFor(sec.start, ranges),
			WordCount: words,
		})
		counter++
	}

	return clauses
}

// chunkFallback groups paragraph chunks into roughly clause-sized
// pieces when the document has no recognizable section structure.
func (s *Segmenter) chunkFallback(pages []model.Page) []model.Clause {
	var parts []string
	for _, page := range pages {
		parts = append(parts, page.Text)
	}
	allText := strings.Join(parts, " ")

	var chunks []string
	for _, chunk := range strings.Split(allText, "\n\n") {
		if chunk = strings.TrimSpace(chunk); chunk != "" {
			chunks = append(chunks, chunk)
		}
	}

	var clauses []model.Clause
	counter := 1
	current := ""

	flush := func() {
		words := len(strings.Fields(current))
		if words >= s.MinFallbackWords {
			clauses = append(clauses, model.Clause{
				ID:        fmt.Sprintf("clause_%d", counter),
				Title:     extractTitle(current),
				Text:      strings.TrimSpace(current),
				Page:      1,
				WordCount: words,
			})
			counter++
		}
	}

	for _, chunk := range chunks {
		if len(strings.Fields(current)) < 30 {
			if current == "" {
				current = chunk
			} else {
				current += " " + chunk
			}
		} else {
			flush()
			current = chunk
		}
	}
	if current != "" {
		flush()
	}

	return clauses
}

// extractTitle derives a short title from the first line of a clause.
func extractTitle(text string) string {
	firstLine := strings.TrimSpace(strings.SplitN(text, "\n", 2)[0])
	words := strings.Fields(firstLine)

	if len(words) <= 8 {
		return firstLine
	}

	for _, pattern := range titlePatterns {
		loc := pattern.FindStringIndex(firstLine)
		if loc == nil || loc[0] != 0 {
			continue
		}
		remainder := strings.TrimSpace(firstLine[loc[1]:])
		if remainder != "" {
			if len(remainder) > 50 {
				return remainder[:50] + "..."
			}
			return remainder
		}
	}

	return strings.Join(words[:8], " ") + "..."
}

func pageFor(pos int, ranges []pageRange) int {
	for _, r := range ranges {
		if pos >= r.start && pos < r.end {
			return r.number
		}
	}
	return 1
}
