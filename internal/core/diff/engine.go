package diff

import (
	"strings"

	"github.com/pmezard/go-difflib/difflib"

	"github.com/clauselens/clauselens/internal/core/model"
)

// Structured computes the full line-level diff between an original
// clause and its rewrite: annotated line lists for both sides, a
// unified stream, grouped change blocks, and aggregate stats. It is a
// pure function; calling it twice with the same inputs yields
// identical output.
func Structured(original, rewritten string) model.StructuredDiff {
	a := SplitLines(original)
	b := SplitLines(rewritten)

	result := model.StructuredDiff{
		OriginalLines: []model.DiffLine{},
		ModifiedLines: []model.DiffLine{},
		UnifiedDiff:   []model.DiffLine{},
		ChangeBlocks:  []model.ChangeBlock{},
	}

	// 1-based counters, advanced independently per side.
	origNum := 1
	modNum := 1

	matcher := difflib.NewMatcher(a, b)
	for _, op := range matcher.GetOpCodes() {
		switch op.Tag {
		case 'e':
			for k := 0; k < op.I2-op.I1; k++ {
				line := model.DiffLine{
					OldLine: intPtr(origNum),
					NewLine: intPtr(modNum),
					Content: a[op.I1+k],
					Kind:    model.LineContext,
					Prefix:  " ",
				}
				result.OriginalLines = append(result.OriginalLines, line)
				result.ModifiedLines = append(result.ModifiedLines, line)
				result.UnifiedDiff = append(result.UnifiedDiff, line)
				origNum++
				modNum++
			}

		case 'd':
			block := model.ChangeBlock{
				Kind:          model.BlockDeletion,
				OriginalLines: []string{},
				ModifiedLines: []string{},
				StartLine:     origNum,
			}
			for _, content := range a[op.I1:op.I2] {
				line := model.DiffLine{
					OldLine: intPtr(origNum),
					Content: content,
					Kind:    model.LineRemoved,
					Prefix:  "-",
				}
				result.OriginalLines = append(result.OriginalLines, line)
				result.UnifiedDiff = append(result.UnifiedDiff, line)
				block.OriginalLines = append(block.OriginalLines, content)
				origNum++
				result.Stats.Deletions++
			}
			result.ChangeBlocks = append(result.ChangeBlocks, block)

		case 'i':
			block := model.ChangeBlock{
				Kind:          model.BlockAddition,
				OriginalLines: []string{},
				ModifiedLines: []string{},
				StartLine:     modNum,
			}
			for _, content := range b[op.J1:op.J2] {
				line := model.DiffLine{
					NewLine: intPtr(modNum),
					Content: content,
					Kind:    model.LineAdded,
					Prefix:  "+",
				}
				result.ModifiedLines = append(result.ModifiedLines, line)
				result.UnifiedDiff = append(result.UnifiedDiff, line)
				block.ModifiedLines = append(block.ModifiedLines, content)
				modNum++
				result.Stats.Additions++
			}
			result.ChangeBlocks = append(result.ChangeBlocks, block)

		case 'r':
			block := model.ChangeBlock{
				Kind:          model.BlockModification,
				OriginalLines: []string{},
				ModifiedLines: []string{},
				StartLine:     origNum,
			}
			for _, content := range a[op.I1:op.I2] {
				line := model.DiffLine{
					OldLine: intPtr(origNum),
					Content: content,
					Kind:    model.LineRemoved,
					Prefix:  "-",
				}
				result.OriginalLines = append(result.OriginalLines, line)
				result.UnifiedDiff = append(result.UnifiedDiff, line)
				block.OriginalLines = append(block.OriginalLines, content)
				origNum++
			}
			for _, content := range b[op.J1:op.J2] {
				line := model.DiffLine{
					NewLine: intPtr(modNum),
					Content: content,
					Kind:    model.LineAdded,
					Prefix:  "+",
				}
				result.ModifiedLines = append(result.ModifiedLines, line)
				result.UnifiedDiff = append(result.UnifiedDiff, line)
				block.ModifiedLines = append(block.ModifiedLines, content)
				modNum++
			}
			// A replaced region counts as "lines touched", not as
			// separate additions plus deletions.
			result.Stats.Modifications += maxOf(op.I2-op.I1, op.J2-op.J1)
			result.ChangeBlocks = append(result.ChangeBlocks, block)
		}
	}

	result.Stats.TotalChanges = result.Stats.Additions + result.Stats.Deletions + result.Stats.Modifications

	return result
}

// SplitLines splits text into lines without terminators. A trailing
// newline does not produce an empty final line, and empty input yields
// no lines at all.
func SplitLines(text string) []string {
	if text == "" {
		return nil
	}
	text = strings.ReplaceAll(text, "\r\n", "\n")
	lines := strings.Split(text, "\n")
	if lines[len(lines)-1] == "" && strings.HasSuffix(text, "\n") {
		lines = lines[:len(lines)-1]
	}
	return lines
}

func intPtr(v int) *int {
	return &v
}

func maxOf(a, b int) int {
	if a > b {
		return a
	}
	return b
}
