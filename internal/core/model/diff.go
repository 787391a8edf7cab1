package model

// Diff line kinds and change block kinds. Kept as plain strings so the
// JSON contract stays readable for the UI and report layers.
const (
	LineContext = "context"
	LineAdded   = "added"
	LineRemoved = "removed"

	BlockAddition     = "addition"
	BlockDeletion     = "deletion"
	BlockModification = "modification"
)

// DiffLine is one annotated line of a diff. For context lines both line
// numbers are set; added lines carry only NewLine, removed lines only
// OldLine.
type DiffLine struct {
	OldLine *int   `json:"old_line_number"`
	NewLine *int   `json:"new_line_number"`
	Content string `json:"content"`
	Kind    string `json:"type"`
	Prefix  string `json:"prefix"`
}

// ChangeBlock is a maximal run of non-equal edit operations, grouped
// for side-by-side display.
type ChangeBlock struct {
	Kind          string   `json:"type"`
	OriginalLines []string `json:"original_lines"`
	ModifiedLines []string `json:"modified_lines"`
	StartLine     int      `json:"start_line"`
}

type DiffStats struct {
	Additions     int `json:"additions"`
	Deletions     int `json:"deletions"`
	Modifications int `json:"modifications"`
	TotalChanges  int `json:"total_changes"`
}

// StructuredDiff is the full diff contract consumed by the report and
// UI layers. It is a pure function of the two input texts.
type StructuredDiff struct {
	OriginalLines []DiffLine    `json:"original_lines"`
	ModifiedLines []DiffLine    `json:"modified_lines"`
	UnifiedDiff   []DiffLine    `json:"unified_diff"`
	ChangeBlocks  []ChangeBlock `json:"change_blocks"`
	Stats         DiffStats     `json:"stats"`
}

// ChangeSummary is the coarser word-level view of a rewrite.
// SimilarityRatio is the standard 2*M/T sequence ratio in [0, 1];
// PercentChanged is relative to the original word count, rounded to
// two decimals.
type ChangeSummary struct {
	Additions       int     `json:"additions"`
	Deletions       int     `json:"deletions"`
	Modifications   int     `json:"modifications"`
	Unchanged       int     `json:"unchanged"`
	SimilarityRatio float64 `json:"similarity_ratio"`
	WordCountChange int     `json:"word_count_change"`
	PercentChanged  float64 `json:"percent_changed"`
}

// ChangeHighlights lists sentence-level phrases touched by a rewrite.
type ChangeHighlights struct {
	AddedPhrases    []string `json:"added_phrases"`
	RemovedPhrases  []string `json:"removed_phrases"`
	ModifiedPhrases []string `json:"modified_phrases"`
}
