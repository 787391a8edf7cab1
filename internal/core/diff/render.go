package diff

import (
	"html"
	"strings"

	"github.com/pmezard/go-difflib/difflib"

	"github.com/clauselens/clauselens/internal/core/model"
)

// Presentation helpers built on top of the structured diff. These are
// conveniences for the report and UI layers; the tested contract is
// the StructuredDiff itself.

// RenderUnified renders the unified stream as plain text, one prefixed
// line per entry.
func RenderUnified(d model.StructuredDiff) string {
	var sb strings.Builder
	for _, line := range d.UnifiedDiff {
		sb.WriteString(line.Prefix)
		sb.WriteString(line.Content)
		sb.WriteByte('\n')
	}
	return sb.String()
}

// RenderInlineHTML produces a single HTML fragment with character-level
// insertions and deletions highlighted in place. All content is escaped.
func RenderInlineHTML(original, rewritten string) string {
	a := strings.Split(original, "")
	b := strings.Split(rewritten, "")

	segment := func(parts []string) string {
		return html.EscapeString(strings.Join(parts, ""))
	}

	var sb strings.Builder
	matcher := difflib.NewMatcher(a, b)
	for _, op := range matcher.GetOpCodes() {
		switch op.Tag {
		case 'e':
			sb.WriteString(segment(a[op.I1:op.I2]))
		case 'i':
			sb.WriteString(`<span class="diff-insert">` + segment(b[op.J1:op.J2]) + `</span>`)
		case 'd':
			sb.WriteString(`<span class="diff-delete">` + segment(a[op.I1:op.I2]) + `</span>`)
		case 'r':
			sb.WriteString(`<span class="diff-delete">` + segment(a[op.I1:op.I2]) + `</span>`)
			sb.WriteString(`<span class="diff-insert">` + segment(b[op.J1:op.J2]) + `</span>`)
		}
	}

	return `<div class="diff-inline">` + sb.String() + `</div>`
}
