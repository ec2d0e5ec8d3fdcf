// Package ai consumes the external text-generation capability: summary
// generation, bullet generation, and job-match analysis. Calls may fail;
// callers must leave existing resume data untouched on failure and apply a
// successful result as exactly one whole-field replacement.
package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/ollama/ollama/api"

	"resume-studio/internal/model"
)

type Config struct {
	BaseURL string        `yaml:"base_url"`
	Model   string        `yaml:"model"`
	Timeout time.Duration `yaml:"timeout"`
	Retries int           `yaml:"retries"`
	Backoff time.Duration `yaml:"backoff"`
}

// Client wraps the Ollama API client and adds retries with backoff.
type Client struct {
	api     *api.Client
	model   string
	retries int
	backoff time.Duration
}

func NewClient(cfg Config) (*Client, error) {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "http://localhost:11434"
	}
	if cfg.Model == "" {
		cfg.Model = "llama3.2"
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = 60 * time.Second
	}
	if cfg.Retries == 0 {
		cfg.Retries = 3
	}
	if cfg.Backoff == 0 {
		cfg.Backoff = time.Second
	}

	u, err := url.ParseRequestURI(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid base url: %w", err)
	}

	return &Client{
		api:     api.NewClient(u, &http.Client{Timeout: cfg.Timeout}),
		model:   cfg.Model,
		retries: cfg.Retries,
		backoff: cfg.Backoff,
	}, nil
}

// generate runs one non-streaming completion with retry/backoff.
func (c *Client) generate(ctx context.Context, prompt string) (string, error) {
	stream := false
	req := &api.GenerateRequest{Model: c.model, Prompt: prompt, Stream: &stream}

	var lastErr error
	for i := 0; i < c.retries; i++ {
		var out strings.Builder
		err := c.api.Generate(ctx, req, func(resp api.GenerateResponse) error {
			out.WriteString(resp.Response)
			return nil
		})
		if err == nil {
			return out.String(), nil
		}
		lastErr = err
		if i < c.retries-1 {
			backoff := time.Duration(1<<i) * c.backoff
			select {
			case <-time.After(backoff):
			case <-ctx.Done():
				return "", ctx.Err()
			}
		}
	}
	return "", lastErr
}

// GenerateSummary produces a professional summary for the given personal
// info. The result replaces the summary field wholesale, never merged.
func (c *Client) GenerateSummary(ctx context.Context, info model.PersonalInfo) (string, error) {
	prompt := fmt.Sprintf(
		"Write a professional resume summary of 2-3 sentences for the person below. "+
			"Respond with ONLY the summary text, no preamble, no quotes, no markdown.\n\n"+
			"Name: %s\nLocation: %s\nCurrent summary (may be empty): %s\n",
		info.FullName, info.Location, info.Summary)

	out, err := c.generate(ctx, prompt)
	if err != nil {
		return "", err
	}
	out = strings.TrimSpace(strings.Trim(strings.TrimSpace(out), `"`))
	if out == "" {
		return "", fmt.Errorf("ai: empty summary response")
	}
	return out, nil
}

// GenerateBullets produces achievement bullet points for one experience
// entry. The result replaces the entry's bullet list wholesale.
func (c *Client) GenerateBullets(ctx context.Context, exp model.Experience) ([]string, error) {
	prompt := fmt.Sprintf(
		"Write 3 to 5 resume achievement bullet points for this role. "+
			"Respond with ONLY a JSON array of strings and NOTHING ELSE - no commentary, no markdown, no code fences.\n\n"+
			"Title: %s\nCompany: %s\nDescription: %s\n",
		exp.JobTitle, exp.Company, exp.Description)

	out, err := c.generate(ctx, prompt)
	if err != nil {
		return nil, err
	}

	var bullets []string
	if err := json.Unmarshal([]byte(out), &bullets); err != nil {
		// model may wrap the JSON in prose or fences; extract the array
		sub, ok := extractJSON(out, '[', ']')
		if !ok {
			return nil, fmt.Errorf("ai: non-json bullets response: %w", err)
		}
		if err := json.Unmarshal([]byte(sub), &bullets); err != nil {
			return nil, fmt.Errorf("ai: non-json bullets response: %w", err)
		}
	}

	kept := bullets[:0]
	for _, b := range bullets {
		if s := strings.TrimSpace(b); s != "" {
			kept = append(kept, s)
		}
	}
	if len(kept) == 0 {
		return nil, fmt.Errorf("ai: empty bullets response")
	}
	return kept, nil
}

// MatchAnalysis scores a resume against a job description.
type MatchAnalysis struct {
	Score           int      `json:"score"`
	MissingKeywords []string `json:"missingKeywords"`
	Suggestions     []string `json:"suggestions"`
}

// AnalyzeMatch asks the model to compare resume text with a job
// description. Score is clamped to 0-100.
func (c *Client) AnalyzeMatch(ctx context.Context, resumeText, jobDescription string) (*MatchAnalysis, error) {
	prompt := fmt.Sprintf(
		"Compare the resume with the job description. Respond with ONLY a single JSON object "+
			`{"score": <0-100>, "missingKeywords": [...], "suggestions": [...]} and NOTHING ELSE.`+
			"\n\nRESUME:\n%s\n\nJOB DESCRIPTION:\n%s\n",
		resumeText, jobDescription)

	out, err := c.generate(ctx, prompt)
	if err != nil {
		return nil, err
	}

	var analysis MatchAnalysis
	if err := json.Unmarshal([]byte(out), &analysis); err != nil {
		sub, ok := extractJSON(out, '{', '}')
		if !ok {
			return nil, fmt.Errorf("ai: non-json analysis response: %w", err)
		}
		if err := json.Unmarshal([]byte(sub), &analysis); err != nil {
			return nil, fmt.Errorf("ai: non-json analysis response: %w", err)
		}
	}

	if analysis.Score < 0 {
		analysis.Score = 0
	}
	if analysis.Score > 100 {
		analysis.Score = 100
	}
	return &analysis, nil
}

// extractJSON pulls the outermost open..close region out of a response that
// wraps JSON in prose or markdown fences.
func extractJSON(s string, open, close byte) (string, bool) {
	start := strings.IndexByte(s, open)
	end := strings.LastIndexByte(s, close)
	if start < 0 || end <= start {
		return "", false
	}
	return s[start : end+1], true
}
