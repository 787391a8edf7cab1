package server

import (
	"context"
	"log"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"

	"github.com/clauselens/clauselens/internal/config"
	"github.com/clauselens/clauselens/internal/core"
	"github.com/clauselens/clauselens/internal/core/diff"
	"github.com/clauselens/clauselens/internal/core/model"
	"github.com/clauselens/clauselens/internal/core/rewrite"
	"github.com/clauselens/clauselens/internal/core/risk"
	"github.com/clauselens/clauselens/internal/llm"
	"github.com/clauselens/clauselens/internal/report"
)

type Server struct {
	Reviewer *core.Reviewer
	Config   *config.Config
}

func NewServer() *Server {
	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "config/config.toml"
	}

	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Printf("Could not load %s: %v. Using defaults (pattern-only analysis unless LLM env vars are set)", cfgPath, err)
		cfg = config.Default()
	}

	// Override config with env vars if present.
	if envProvider := os.Getenv("LLM_PROVIDER"); envProvider != "" {
		cfg.LLM.Provider = envProvider
	}
	if envModel := os.Getenv("LLM_MODEL"); envModel != "" {
		cfg.LLM.Model = envModel
	}
	if envAPIKey := os.Getenv("LLM_API_KEY"); envAPIKey != "" {
		cfg.LLM.APIKey = envAPIKey
	}
	if envBaseURL := os.Getenv("LLM_BASE_URL"); envBaseURL != "" {
		cfg.LLM.BaseURL = envBaseURL
	}

	detector := risk.NewPatternDetector(cfg.Risk)

	// The deterministic pattern path is always available; the AI path
	// and the rewriter only exist when an LLM provider is configured.
	var analyzer risk.Analyzer = detector
	var rewriter *rewrite.Rewriter

	if cfg.LLM.Provider != "" {
		llmClient, err := llm.NewClient(context.Background(), cfg.LLM)
		if err != nil {
			log.Printf("Failed to initialize LLM client: %v. Falling back to pattern-only analysis", err)
		} else {
			analyzer = risk.NewAIAnalyzer(llmClient, detector)
			rewriter = rewrite.NewRewriter(llmClient)
		}
	}

	return &Server{
		Reviewer: core.NewReviewer(analyzer, rewriter),
		Config:   cfg,
	}
}

func (s *Server) SetupRouter() *gin.Engine {
	r := gin.Default()

	r.POST("/documents/analyze", s.AnalyzeDocument)
	r.POST("/clauses/analyze", s.AnalyzeClause)
	r.POST("/clauses/rewrite", s.RewriteClause)
	r.POST("/diff", s.Diff)
	r.POST("/reports/html", s.HTMLReport)

	return r
}

type AnalyzeDocumentRequest struct {
	Clauses []model.Clause `json:"clauses"`
	Pages   []model.Page   `json:"pages"`
}

func (s *Server) AnalyzeDocument(c *gin.Context) {
	var req AnalyzeDocumentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: expected 'clauses' or 'pages'"})
		return
	}
	if len(req.Clauses) == 0 && len(req.Pages) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Either 'clauses' or 'pages' must be provided"})
		return
	}

	ctx := c.Request.Context()

	var ranked []model.RankedClause
	if len(req.Clauses) > 0 {
		ranked = s.Reviewer.AnalyzeClauses(ctx, req.Clauses)
	} else {
		_, ranked = s.Reviewer.AnalyzeText(ctx, req.Pages)
	}

	c.JSON(http.StatusOK, gin.H{
		"risky_clauses": ranked,
		"summary":       risk.Summarize(ranked),
	})
}

type AnalyzeClauseRequest struct {
	Clause model.Clause `json:"clause"`
}

func (s *Server) AnalyzeClause(c *gin.Context) {
	var req AnalyzeClauseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: 'clause' must be a clause object with string 'text'"})
		return
	}

	verdict := s.Reviewer.Analyzer.AnalyzeClause(c.Request.Context(), req.Clause)
	c.JSON(http.StatusOK, gin.H{"risk_analysis": verdict})
}

type RewriteClauseRequest struct {
	Clause   model.Clause           `json:"clause"`
	Controls *model.RewriteControls `json:"controls"`
}

func (s *Server) RewriteClause(c *gin.Context) {
	var req RewriteClauseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: 'clause' must be a clause object with string 'text'"})
		return
	}

	controls := s.defaultControls()
	if req.Controls != nil {
		controls = *req.Controls
	}

	review, err := s.Reviewer.ReviewClause(c.Request.Context(), req.Clause, controls)
	if err != nil {
		log.Printf("Failed to review clause: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate rewrite"})
		return
	}

	c.JSON(http.StatusOK, review)
}

type DiffRequest struct {
	Original  *string `json:"original"`
	Rewritten *string `json:"rewritten"`
}

func (s *Server) Diff(c *gin.Context) {
	var req DiffRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: 'original' and 'rewritten' must be strings"})
		return
	}
	if req.Original == nil || req.Rewritten == nil {
		// Empty strings are valid diff input; missing fields are not.
		c.JSON(http.StatusBadRequest, gin.H{"error": "Both 'original' and 'rewritten' are required"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"diff":    diff.Structured(*req.Original, *req.Rewritten),
		"summary": diff.Summarize(*req.Original, *req.Rewritten),
	})
}

type HTMLReportRequest struct {
	Document model.Document      `json:"document"`
	Reviews  []core.ClauseReview `json:"reviews"`
	Options  report.Options      `json:"options"`
}

func (s *Server) HTMLReport(c *gin.Context) {
	var req HTMLReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	ranked := s.Reviewer.AnalyzeClauses(c.Request.Context(), req.Document.Clauses)
	html := report.BuildHTML(req.Document, ranked, req.Reviews, req.Options)

	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(html))
}

func (s *Server) defaultControls() model.RewriteControls {
	return model.RewriteControls{
		NoticeDays:          s.Config.Rewrite.NoticeDays,
		LateFeePercent:      s.Config.Rewrite.LateFeePercent,
		JurisdictionNeutral: s.Config.Rewrite.JurisdictionNeutral,
		FavorCustomer:       s.Config.Rewrite.FavorCustomer,
	}
}
