package diff

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRenderUnified(t *testing.T) {
	d := Structured("A\nB\nC", "A\nX\nC")

	rendered := RenderUnified(d)

	assert.Equal(t, " A\n-B\n+X\n C\n", rendered)
}

func TestRenderUnified_Empty(t *testing.T) {
	assert.Equal(t, "", RenderUnified(Structured("", "")))
}

func TestRenderInlineHTML_Wrapper(t *testing.T) {
	out := RenderInlineHTML("same", "same")

	assert.Equal(t, `<div class="diff-inline">same</div>`, out)
}

func TestRenderInlineHTML_InsertAndDelete(t *testing.T) {
	out := RenderInlineHTML("abc", "abXc")

	assert.Contains(t, out, `<span class="diff-insert">X</span>`)
	assert.NotContains(t, out, "diff-delete")

	out = RenderInlineHTML("abXc", "abc")
	assert.Contains(t, out, `<span class="diff-delete">X</span>`)
}

func TestRenderInlineHTML_EscapesContent(t *testing.T) {
	out := RenderInlineHTML("safe", `<script>alert("x")</script>`)

	assert.NotContains(t, out, "<script>")
	assert.Contains(t, out, "&lt;")
	assert.Contains(t, out, "&gt;")

	// The only tags present are the ones we emit.
	stripped := strings.ReplaceAll(out, `<div class="diff-inline">`, "")
	stripped = strings.ReplaceAll(stripped, `</div>`, "")
	stripped = strings.ReplaceAll(stripped, `<span class="diff-insert">`, "")
	stripped = strings.ReplaceAll(stripped, `<span class="diff-delete">`, "")
	stripped = strings.ReplaceAll(stripped, `</span>`, "")
	assert.NotContains(t, stripped, "<")
}
