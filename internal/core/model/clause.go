package model

// Clause is one segmented unit of a contract. It is produced by the
// segmenter (or supplied directly by an API caller) and never mutated
// by the analysis pipeline.
type Clause struct {
	ID        string `json:"clause_id"`
	Title     string `json:"title"`
	Text      string `json:"text"`
	Page      int    `json:"page"`
	WordCount int    `json:"word_count"`
}

// Page is raw text for a single document page, as delivered by whatever
// extracted it (PDF, OCR, plain upload). Segmentation consumes pages;
// it does not own the extraction.
type Page struct {
	Number int    `json:"page_number"`
	Text   string `json:"text"`
}

type Document struct {
	ID         string   `json:"document_id"`
	TotalPages int      `json:"total_pages"`
	WordCount  int      `json:"word_count"`
	FullText   string   `json:"full_text,omitempty"`
	Clauses    []Clause `json:"clauses"`
}
