package config

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

type LLMConfig struct {
	Provider string `toml:"provider"`
	Model    string `toml:"model"`
	APIKey   string `toml:"api_key"`
	BaseURL  string `toml:"base_url"`
}

// RiskConfig holds the recognized tunables of the rule engine. Zero
// values mean "use default" so a partial config file stays valid.
type RiskConfig struct {
	ScoreCap           int     `toml:"score_cap"`
	ShortNoticeDays    int     `toml:"short_notice_days"`
	HighPenaltyPercent float64 `toml:"high_penalty_percent"`
}

type RewriteConfig struct {
	NoticeDays          int     `toml:"notice_days"`
	LateFeePercent      float64 `toml:"late_fee_percent"`
	JurisdictionNeutral bool    `toml:"jurisdiction_neutral"`
	FavorCustomer       bool    `toml:"favor_customer"`
}

type Config struct {
	LLM     LLMConfig     `toml:"llm"`
	Risk    RiskConfig    `toml:"risk"`
	Rewrite RewriteConfig `toml:"rewrite"`
}

// Default returns the configuration used when no config file is
// present: pattern-only analysis with the documented thresholds.
func Default() *Config {
	return &Config{
		Risk: RiskConfig{
			ScoreCap:           10,
			ShortNoticeDays:    30,
			HighPenaltyPercent: 10,
		},
		Rewrite: RewriteConfig{
			NoticeDays:          30,
			LateFeePercent:      5.0,
			JurisdictionNeutral: true,
			FavorCustomer:       true,
		},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file '%s': %w", path, err)
	}

	cfg := Default()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse TOML: %w", err)
	}
	cfg.ApplyDefaults()

	return cfg, nil
}

// ApplyDefaults backfills tunables a config file left unset.
func (c *Config) ApplyDefaults() {
	d := Default()
	if c.Risk.ScoreCap <= 0 {
		c.Risk.ScoreCap = d.Risk.ScoreCap
	}
	if c.Risk.ShortNoticeDays <= 0 {
		c.Risk.ShortNoticeDays = d.Risk.ShortNoticeDays
	}
	if c.Risk.HighPenaltyPercent <= 0 {
		c.Risk.HighPenaltyPercent = d.Risk.HighPenaltyPercent
	}
	if c.Rewrite.NoticeDays <= 0 {
		c.Rewrite.NoticeDays = d.Rewrite.NoticeDays
	}
	if c.Rewrite.LateFeePercent <= 0 {
		c.Rewrite.LateFeePercent = d.Rewrite.LateFeePercent
	}
}
