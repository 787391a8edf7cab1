package risk

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/clauselens/clauselens/internal/core/common"
	"github.com/clauselens/clauselens/internal/core/model"
	"github.com/clauselens/clauselens/internal/llm"
)

const riskPrompt = `You are an expert legal analyst specializing in contract risk assessment.
Analyze the provided contract clause and identify all potential legal risks, disadvantages,
privacy concerns, and unfair terms.

Focus on:
1. Legal disadvantages to one party
2. Privacy and data protection risks
3. Unfair termination conditions
4. Excessive penalties or liability limitations
5. Jurisdictional disadvantages
6. Automatic renewals or binding terms
7. Unilateral change rights
8. Vague or ambiguous language that could be exploited
9. Financial risks and fee structures
10. Dispute resolution limitations

Respond with JSON in this exact format:
{
  "risk_score": <integer from 0-10>,
  "risk_tags": ["tag1", "tag2"],
  "risk_summary": "Brief summary of main risks",
  "legal_disadvantages": "Specific legal disadvantages identified",
  "privacy_concerns": "Data privacy and protection issues",
  "unfair_terms": "Terms that create imbalance between parties",
  "recommendations": "How to address these risks"
}

CLAUSE TITLE: %s

CLAUSE TEXT:
%s`

// AIAnalyzer delegates risk analysis to an LLM. Any failure of the
// external call (error, timeout, unparseable output) falls back to the
// deterministic pattern detector, so callers always get a verdict.
type AIAnalyzer struct {
	LLM      llm.LLMClient
	Fallback *PatternDetector
	Timeout  time.Duration
}

func NewAIAnalyzer(llmClient llm.LLMClient, fallback *PatternDetector) *AIAnalyzer {
	return &AIAnalyzer{
		LLM:      llmClient,
		Fallback: fallback,
		Timeout:  30 * time.Second,
	}
}

func (a *AIAnalyzer) AnalyzeClause(ctx context.Context, clause model.Clause) model.RiskVerdict {
	if a.LLM == nil {
		return a.Fallback.AnalyzeClause(ctx, clause)
	}

	ctx, cancel := context.WithTimeout(ctx, a.Timeout)
	defer cancel()

	prompt := fmt.Sprintf(riskPrompt, clause.Title, clause.Text)

	response, err := a.LLM.Generate(ctx, prompt)
	if err != nil {
		log.Printf("AI analysis failed for clause '%s': %v, falling back to pattern analysis", clause.Title, err)
		return a.Fallback.AnalyzeClause(ctx, clause)
	}

	verdict, err := common.ParseJSON[model.AIVerdict](response)
	if err != nil {
		log.Printf("AI analysis returned unparseable output for clause '%s': %v, falling back to pattern analysis", clause.Title, err)
		return a.Fallback.AnalyzeClause(ctx, clause)
	}

	score := verdict.RiskScore
	if score < 0 {
		score = 0
	}
	if score > a.Fallback.ScoreCap {
		score = a.Fallback.ScoreCap
	}

	tags := verdict.RiskTags
	if tags == nil {
		tags = []string{}
	}

	return model.RiskVerdict{
		Tags:               tags,
		Score:              score,
		Rationale:          verdict.RiskSummary,
		LegalDisadvantages: verdict.LegalDisadvantages,
		PrivacyConcerns:    verdict.PrivacyConcerns,
		UnfairTerms:        verdict.UnfairTerms,
		Recommendations:    verdict.Recommendations,
	}
}
