package service

import (
	"bytes"
	"complymeter/internal/cache"
	"complymeter/internal/config"
	"complymeter/internal/model"
	"complymeter/internal/repository"
	"complymeter/internal/scoring"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// NarrativeService turns a score result into a human-readable report. When an
// LLM is configured it asks OpenRouter for the prose, rotating API keys on
// failure; any error at all falls back to the template report, so a report is
// always produced. The scoring core never depends on this service.
type NarrativeService struct {
	cfg        *config.AIConfig
	client     *http.Client
	reportRepo repository.ReportRepo
	reports    cache.ReportCache
}

// NewNarrativeService creates a new narrative service
func NewNarrativeService(reportRepo repository.ReportRepo, reports cache.ReportCache) *NarrativeService {
	cfg := config.DefaultAIConfig()
	return &NarrativeService{
		cfg:        cfg,
		client:     &http.Client{Timeout: time.Duration(cfg.TimeoutMS) * time.Millisecond},
		reportRepo: reportRepo,
		reports:    reports,
	}
}

// GenerateReport returns the narrative report for an assessment, producing
// and persisting it if none is cached. force busts both cache layers.
func (s *NarrativeService) GenerateReport(ctx context.Context, assessment *model.Assessment, force bool) (*model.NarrativeReport, error) {
	if assessment.Result == nil {
		return nil, ErrAssessmentNotDone
	}

	if !force {
		if cached, err := s.reports.Get(ctx, assessment.ID); err == nil && cached != nil {
			return cached, nil
		}
		if stored, err := s.reportRepo.Get(ctx, assessment.ID); err == nil && stored != nil {
			_ = s.reports.Set(ctx, stored)
			return stored, nil
		}
	}

	report := &model.NarrativeReport{
		AssessmentID: assessment.ID,
		Source:       "template",
		Content:      TemplateReport(assessment.OrganizationName, assessment.Result),
		GeneratedAt:  time.Now(),
	}

	if s.cfg.IsEnabled() {
		if content, err := s.generateWithLLM(ctx, assessment); err == nil {
			report.Source = "ai"
			report.Content = content
		}
	}

	if err := s.reportRepo.Save(ctx, report); err != nil {
		return nil, err
	}
	_ = s.reports.Set(ctx, report)

	return report, nil
}

// generateWithLLM calls the chat completions API, rotating to the next key
// and retrying once on failure.
func (s *NarrativeService) generateWithLLM(ctx context.Context, assessment *model.Assessment) (string, error) {
	prompt := buildReportPrompt(assessment)

	content, err := s.callChatCompletions(ctx, s.cfg.CurrentKey(), prompt)
	if err != nil {
		key := s.cfg.RotateKey()
		content, err = s.callChatCompletions(ctx, key, prompt)
	}
	if err != nil {
		return "", err
	}

	// Strip code fences the model sometimes wraps markdown in
	content = strings.TrimSpace(content)
	content = strings.ReplaceAll(content, "```markdown", "")
	content = strings.ReplaceAll(content, "```", "")
	return strings.TrimSpace(content), nil
}

func (s *NarrativeService) callChatCompletions(ctx context.Context, apiKey, prompt string) (string, error) {
	reqBody := map[string]interface{}{
		"model": s.cfg.Model,
		"messages": []map[string]string{
			{"role": "user", "content": prompt},
		},
	}

	jsonBody, err := json.Marshal(reqBody)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, "POST", s.cfg.ChatEndpoint(), bytes.NewBuffer(jsonBody))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+apiKey)
	req.Header.Set("HTTP-Referer", "https://complymeter.local")
	req.Header.Set("X-Title", "Compliance Assessment Service")

	resp, err := s.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("chat completions returned status %d", resp.StatusCode)
	}

	var chatResp struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := json.Unmarshal(body, &chatResp); err != nil {
		return "", err
	}
	if len(chatResp.Choices) == 0 || chatResp.Choices[0].Message.Content == "" {
		return "", fmt.Errorf("empty response from chat completions")
	}
	return chatResp.Choices[0].Message.Content, nil
}

func buildReportPrompt(assessment *model.Assessment) string {
	result := assessment.Result

	var sections strings.Builder
	for _, name := range result.SectionOrder {
		score := result.SectionScores[name]
		if score == nil {
			continue
		}
		sections.WriteString(fmt.Sprintf("- %s: %.1f%%", name, *score*100))
		if recs := result.Recommendations[name]; len(recs) > 0 {
			limit := len(recs)
			if limit > 3 {
				limit = 3
			}
			sections.WriteString(" (key actions: " + strings.Join(recs[:limit], "; ") + ")")
		}
		sections.WriteString("\n")
	}

	return fmt.Sprintf(`You are writing a data protection compliance report for an organization.
Write a professional markdown report with these sections: Executive Summary, Detailed Findings, Action Plan.
Do not invent scores or findings; use only the data below. Keep it concise and actionable.

Organization: %s
Regulation: %s
Overall compliance: %.1f%% (%s)

Section scores:
%s
Highest-risk areas, most urgent first: %s
Top improvement priorities: %s`,
		assessment.OrganizationName,
		assessment.Regulation,
		result.OverallScore,
		result.ComplianceLevel,
		sections.String(),
		strings.Join(result.HighRiskAreas, ", "),
		strings.Join(result.ImprovementPriorities, ", "))
}

// TemplateReport renders the deterministic fallback report. Risk labels use
// the same cut points as the scoring core, and the action plan reuses the
// core's priority selection so the report can never disagree with the
// recommendations page.
func TemplateReport(organization string, result *model.ScoreResult) string {
	var overallAssessment string
	switch {
	case result.OverallScore >= 80:
		overallAssessment = "Your organization demonstrates strong compliance with the data protection requirements."
	case result.OverallScore >= 60:
		overallAssessment = "Your organization shows moderate compliance with data protection requirements, but there are areas that need improvement."
	default:
		overallAssessment = "Your organization has significant compliance gaps that should be addressed urgently."
	}

	var b strings.Builder
	b.WriteString("# DATA PROTECTION COMPLIANCE REPORT\n\n")
	if organization != "" {
		b.WriteString("Organization: " + organization + "\n\n")
	}
	b.WriteString("## EXECUTIVE SUMMARY\n\n")
	fmt.Fprintf(&b, "Based on the assessment, your organization's overall compliance score is **%.1f%%**, which indicates a **%s** level of compliance.\n\n", result.OverallScore, result.ComplianceLevel)
	b.WriteString(overallAssessment + "\n\n")
	b.WriteString("## DETAILED FINDINGS\n\n")

	// Most critical areas first; sections without a score are skipped
	for _, name := range scoring.TopPriorities(result, len(result.SectionOrder)) {
		score := *result.SectionScores[name]
		pct := score * 100

		var riskLevel, urgency string
		switch {
		case score < scoring.HighRiskThreshold:
			riskLevel, urgency = "HIGH RISK", "urgent attention"
		case score < scoring.ModerateRiskThreshold:
			riskLevel, urgency = "MODERATE RISK", "attention"
		default:
			riskLevel, urgency = "LOW RISK", "continued monitoring"
		}

		fmt.Fprintf(&b, "### %s - %.1f%%\n", name, pct)
		fmt.Fprintf(&b, "**Risk Level: %s**\n", riskLevel)
		fmt.Fprintf(&b, "This area requires %s.\n", urgency)

		if recs := result.Recommendations[name]; len(recs) > 0 {
			b.WriteString("#### Key recommendations:\n")
			limit := len(recs)
			if limit > 3 {
				limit = 3
			}
			for _, rec := range recs[:limit] {
				b.WriteString("* " + rec + "\n")
			}
			if len(recs) > 3 {
				fmt.Fprintf(&b, "* *And %d more recommendation(s).*\n", len(recs)-3)
			}
		}
		b.WriteString("\n")
	}

	b.WriteString("## ACTION PLAN\n\n")
	switch {
	case result.OverallScore < 60:
		b.WriteString("**Given the high-risk areas identified, we recommend the following priority actions:**\n\n")
	case result.OverallScore < 75:
		b.WriteString("**To improve your compliance posture, consider the following actions:**\n\n")
	default:
		b.WriteString("**To maintain your strong compliance posture, consider the following actions:**\n\n")
	}

	for i, name := range scoring.TopPriorities(result, scoring.DefaultTopN) {
		recs := result.Recommendations[name]
		if len(recs) == 0 {
			continue
		}
		fmt.Fprintf(&b, "%d. **Focus on improving %s** by implementing these actions:\n", i+1, name)
		limit := len(recs)
		if limit > 2 {
			limit = 2
		}
		for j, rec := range recs[:limit] {
			fmt.Fprintf(&b, "   %d. %s\n", j+1, rec)
		}
		b.WriteString("\n")
	}

	return strings.TrimRight(b.String(), "\n") + "\n"
}
