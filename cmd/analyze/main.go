package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/clauselens/clauselens/internal/config"
	"github.com/clauselens/clauselens/internal/core/model"
	"github.com/clauselens/clauselens/internal/core/risk"
	"github.com/clauselens/clauselens/internal/core/segment"
)

// Offline risk scan: segments a plain-text contract and prints the
// ranked risky clauses. Uses the deterministic pattern path only, so
// it needs no API keys.
func main() {
	if len(os.Args) < 2 {
		fmt.Fprintf(os.Stderr, "usage: %s <contract.txt>\n", os.Args[0])
		os.Exit(1)
	}

	data, err := os.ReadFile(os.Args[1])
	if err != nil {
		log.Fatalf("Failed to read %s: %v", os.Args[1], err)
	}

	// Form feed separates pages in plain-text exports; a single page
	// otherwise.
	var pages []model.Page
	for i, text := range strings.Split(string(data), "\f") {
		pages = append(pages, model.Page{Number: i + 1, Text: text})
	}

	cfg := config.Default()
	segmenter := segment.NewSegmenter()
	detector := risk.NewPatternDetector(cfg.Risk)

	doc := segmenter.Segment(pages)
	fmt.Printf("Analyzing %d clauses across %d pages (%d words)...\n\n",
		len(doc.Clauses), doc.TotalPages, doc.WordCount)

	ranked := risk.AnalyzeDocument(context.Background(), detector, doc.Clauses)
	if len(ranked) == 0 {
		fmt.Println("No risky clauses identified.")
		return
	}

	for _, rc := range ranked {
		fmt.Printf("[%2d/10] %s (page %d)\n", rc.Risk.Score, rc.Clause.Title, rc.Clause.Page)
		fmt.Printf("        tags: %s\n", strings.Join(rc.Risk.Tags, ", "))
		fmt.Printf("        %s\n\n", rc.Risk.Rationale)
	}

	summary := risk.Summarize(ranked)
	fmt.Printf("%d risky clauses, total score %d, average %.1f\n",
		len(ranked), summary.TotalScore, summary.AverageScore)
}
