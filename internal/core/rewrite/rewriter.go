package rewrite

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/clauselens/clauselens/internal/core/common"
	"github.com/clauselens/clauselens/internal/core/model"
	"github.com/clauselens/clauselens/internal/llm"
)

const rewritePrompt = `You are an expert contract analyst and legal writer.
Your task is to rewrite problematic contract clauses to make them more fair and balanced.

Guidelines:
- Maintain the original intent and legal effect where possible
- Make language clearer and more straightforward
- Reduce unfair advantages for one party
- Apply the specified numerical parameters where relevant
- Keep the rewrite roughly the same length as the original
- Provide three fallback negotiation positions in plain text
- Output ONLY clean, professional legal text

Always respond with valid JSON in this exact format:
{
  "rewrite": "The rewritten clause text",
  "rationale": "Explanation of why changes were made",
  "fallback_levels": [
    "Most customer-favorable version",
    "Balanced compromise version",
    "Minimal change version"
  ],
  "risk_reduction": "How this reduces risk",
  "citation": "Reference to original clause"
}

ORIGINAL CLAUSE:
Title: %s
Text: %s
Page: %d
Current Risk Score: %d
Risk Factors: %s

REWRITE CONTROLS:
- Notice Period: %d days
- Late Fee Percentage: %.1f%%
- Jurisdiction Neutral: %t
- Favor Customer: %t`

// Rewriter asks the LLM for a fairer version of a risky clause.
// Unlike risk analysis there is no deterministic fallback, so failures
// are returned to the caller.
type Rewriter struct {
	LLM        llm.LLMClient
	MaxRetries int
	RetryDelay time.Duration
}

func NewRewriter(llmClient llm.LLMClient) *Rewriter {
	return &Rewriter{
		LLM:        llmClient,
		MaxRetries: 2,
		RetryDelay: 2 * time.Second,
	}
}

func (r *Rewriter) Suggest(ctx context.Context, rc model.RankedClause, controls model.RewriteControls) (model.RewriteResult, error) {
	if r.LLM == nil {
		return model.RewriteResult{}, fmt.Errorf("no LLM client configured for rewriting")
	}

	prompt := fmt.Sprintf(rewritePrompt,
		rc.Clause.Title,
		rc.Clause.Text,
		rc.Clause.Page,
		rc.Risk.Score,
		strings.Join(rc.Risk.Tags, ", "),
		controls.NoticeDays,
		controls.LateFeePercent,
		controls.JurisdictionNeutral,
		controls.FavorCustomer,
	)

	response, err := r.generateWithRetry(ctx, prompt)
	if err != nil {
		return model.RewriteResult{}, fmt.Errorf("failed to generate rewrite: %w", err)
	}

	result, err := common.ParseJSON[model.RewriteResult](response)
	if err != nil {
		return model.RewriteResult{}, fmt.Errorf("failed to parse rewrite result: %w", err)
	}

	if strings.TrimSpace(result.Rewrite) == "" {
		return model.RewriteResult{}, fmt.Errorf("rewrite result missing 'rewrite' field")
	}

	return result, nil
}

// generateWithRetry retries rate-limited calls with a linear backoff.
// Other errors are returned immediately.
func (r *Rewriter) generateWithRetry(ctx context.Context, prompt string) (string, error) {
	var lastErr error

	for attempt := 0; attempt <= r.MaxRetries; attempt++ {
		response, err := r.LLM.Generate(ctx, prompt)
		if err == nil {
			return response, nil
		}
		lastErr = err

		if !strings.Contains(err.Error(), "429") || attempt == r.MaxRetries {
			return "", err
		}

		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-time.After(r.RetryDelay * time.Duration(attempt+1)):
		}
	}

	return "", lastErr
}
