package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/prelandr/prelandr-go/internal/domain/entities/content"
	"github.com/prelandr/prelandr-go/internal/infrastructure/ai"
	"github.com/prelandr/prelandr-go/internal/infrastructure/observability/logging"
)

// CopyRequest carries the brand facts the copywriter works from.
type CopyRequest struct {
	BrandName   string
	Industry    string
	Description string
}

// MarketingCopy is the generated (or fallback) copy set.
type MarketingCopy struct {
	Headline    string   `json:"headline"`
	Subheadline string   `json:"subheadline"`
	CTA         string   `json:"cta"`
	SEOKeywords []string `json:"seoKeywords"`
}

// CopyService generates marketing copy through the text generation
// boundary, falling back to deterministic copy when generation is
// unavailable or returns something unusable.
type CopyService struct {
	generator ai.TextGenerator
	timeout   time.Duration
	logger    *logging.ChanneledLogger
}

// NewCopyService creates a new copy service
func NewCopyService(generator ai.TextGenerator, timeout time.Duration, logger *logging.ChanneledLogger) *CopyService {
	return &CopyService{generator: generator, timeout: timeout, logger: logger}
}

// gamingIndustries trigger the gaming fallback copy by substring match.
var gamingIndustries = []string{"gaming", "casino", "entertainment"}

// GenerateMarketingCopy returns AI-written copy when the generator is
// configured and produces a valid response, else the deterministic
// fallback for the industry. The fallback never fails.
func (s *CopyService) GenerateMarketingCopy(ctx context.Context, req CopyRequest) MarketingCopy {
	if s.generator == nil || !s.generator.Configured() {
		s.logger.Copy().Debug("Text generator not configured, using fallback copy",
			"brand", req.BrandName)
		return s.fallbackCopy(req)
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	raw, err := s.generator.Generate(ctx, s.buildPrompt(req), s.buildInputText(req))
	if err != nil {
		s.logger.Copy().Warn("Copy generation failed, using fallback",
			"brand", req.BrandName, "error", err.Error())
		return s.fallbackCopy(req)
	}

	copySet, err := parseCopyResponse(raw)
	if err != nil {
		s.logger.Copy().Warn("Copy response failed validation, using fallback",
			"brand", req.BrandName, "error", err.Error())
		return s.fallbackCopy(req)
	}

	s.logger.Copy().Info("Generated marketing copy", "brand", req.BrandName)
	return copySet
}

func (s *CopyService) buildPrompt(req CopyRequest) string {
	return fmt.Sprintf(`Write landing page marketing copy for the brand %q in the %q industry.
Respond with ONLY a JSON object, no prose, matching exactly:
{"headline": string, "subheadline": string, "cta": string, "seoKeywords": [string]}
The headline must be short and punchy, the cta at most four words.`,
		req.BrandName, req.Industry)
}

func (s *CopyService) buildInputText(req CopyRequest) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Brand: %s\nIndustry: %s\n", req.BrandName, req.Industry)
	if req.Description != "" {
		fmt.Fprintf(&b, "Description: %s\n", req.Description)
	}
	return b.String()
}

// parseCopyResponse decodes the model output and rejects incomplete
// copy sets. Models occasionally wrap JSON in fences, so strip those.
func parseCopyResponse(raw string) (MarketingCopy, error) {
	cleaned := strings.TrimSpace(raw)
	cleaned = strings.TrimPrefix(cleaned, "```json")
	cleaned = strings.TrimPrefix(cleaned, "```")
	cleaned = strings.TrimSuffix(cleaned, "```")
	cleaned = strings.TrimSpace(cleaned)

	var copySet MarketingCopy
	if err := json.Unmarshal([]byte(cleaned), &copySet); err != nil {
		return MarketingCopy{}, fmt.Errorf("failed to decode copy JSON: %w", err)
	}
	if copySet.Headline == "" || copySet.Subheadline == "" || copySet.CTA == "" {
		return MarketingCopy{}, fmt.Errorf("copy response missing required fields")
	}
	return copySet, nil
}

// fallbackCopy is deterministic: the same industry string always maps
// to the same copy set.
func (s *CopyService) fallbackCopy(req CopyRequest) MarketingCopy {
	brand := req.BrandName
	if brand == "" {
		brand = "Your Brand"
	}

	industry := strings.ToLower(req.Industry)
	for _, key := range gamingIndustries {
		if strings.Contains(industry, key) {
			return MarketingCopy{
				Headline:    fmt.Sprintf("%s — Win Big Today!", brand),
				Subheadline: "Spin, play, and claim your exclusive welcome bonus.",
				CTA:         "PLAY NOW",
				SEOKeywords: []string{"casino", "bonus", "jackpot", "free spins"},
			}
		}
	}

	return MarketingCopy{
		Headline:    fmt.Sprintf("Welcome to %s", brand),
		Subheadline: "Discover what we can do for you.",
		CTA:         "GET STARTED",
		SEOKeywords: []string{"landing page", brand},
	}
}

// ApplyToBrand copies the generated fields onto a BrandConfig.
func (c MarketingCopy) ApplyToBrand(b *content.BrandConfig) {
	b.Copy.Headline = c.Headline
	b.Copy.Subheadline = c.Subheadline
	b.Copy.CTA = c.CTA
}
