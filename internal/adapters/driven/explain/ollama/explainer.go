// Package ollama provides an outfit explanation adapter using a local
// Ollama LLM.
package ollama

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/attire-labs/outfit-cli/internal/core/domain"
	"github.com/attire-labs/outfit-cli/internal/core/ports/driven"
)

// Ensure ExplanationService implements the interface.
var _ driven.ExplanationService = (*ExplanationService)(nil)

// Default configuration values.
const (
	DefaultBaseURL = "http://localhost:11434"
	DefaultModel   = "llama3.2"
	DefaultTimeout = 120 * time.Second
)

// Config holds configuration for the Ollama explanation service.
type Config struct {
	// BaseURL is the Ollama API base URL (default: http://localhost:11434).
	BaseURL string

	// Model is the LLM model to use (default: llama3.2).
	Model string

	// Timeout is the request timeout (default: 120s).
	Timeout time.Duration
}

// ExplanationService generates outfit reasoning using Ollama.
type ExplanationService struct {
	client  *http.Client
	baseURL string
	model   string
}

// generateRequest is the Ollama /api/generate request format.
type generateRequest struct {
	Model   string   `json:"model"`
	Prompt  string   `json:"prompt"`
	Stream  bool     `json:"stream"`
	Options *options `json:"options,omitempty"`
}

// options holds generation parameters.
type options struct {
	NumPredict  int     `json:"num_predict,omitempty"`
	Temperature float64 `json:"temperature,omitempty"`
}

// generateResponse is the Ollama /api/generate response format.
type generateResponse struct {
	Response string `json:"response"`
	Done     bool   `json:"done"`
}

// NewExplanationService creates a new Ollama explanation service.
func NewExplanationService(cfg Config) *ExplanationService {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Model == "" {
		cfg.Model = DefaultModel
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = DefaultTimeout
	}

	return &ExplanationService{
		client: &http.Client{
			Timeout: cfg.Timeout,
		},
		baseURL: cfg.BaseURL,
		model:   cfg.Model,
	}
}

const explainPrompt = `You are a fashion stylist. Explain in 2-3 short bullet points why this outfit suits the occasion and weather.
Start each bullet with "•" and keep each under 20 words. Return ONLY the bullets.

Outfit:
- Top: %s (%s, %s)
- Bottom: %s (%s, %s)
- Shoes: %s (%s, %s)

Occasion: %s
Weather: %d°C, %s
Preferred styles: %s

Bullets:`

// ExplainOutfit asks the model for short bullet reasons and parses the
// bullet lines out of the completion.
func (s *ExplanationService) ExplainOutfit(ctx context.Context, outfit domain.OutfitCandidate, occasion string, weather domain.Weather, styles []string) ([]string, error) {
	prompt := fmt.Sprintf(explainPrompt,
		outfit.Top.Title, outfit.Top.Color, outfit.Top.Style,
		outfit.Bottom.Title, outfit.Bottom.Color, outfit.Bottom.Style,
		outfit.Shoes.Title, outfit.Shoes.Color, outfit.Shoes.Style,
		occasion, int(weather.TempC), weather.Condition,
		strings.Join(styles, ", "),
	)

	result, err := s.generate(ctx, prompt, 200, 0.7)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrExplanationUnavailable, err)
	}

	reasons := parseBullets(result)
	if len(reasons) == 0 {
		return nil, fmt.Errorf("%w: model returned no bullet lines", domain.ErrExplanationUnavailable)
	}
	return reasons, nil
}

const accessoriesPrompt = `You are a fashion stylist. Suggest 2-3 accessories that complete an outfit with a %s top and %s bottom, for a %s occasion in %s style.
Return ONLY a JSON array of short strings, e.g. ["leather belt", "silver watch"].

JSON:`

// SuggestAccessories asks the model for accessory names and parses the
// JSON array out of the completion.
func (s *ExplanationService) SuggestAccessories(ctx context.Context, topColor, bottomColor, occasion, style string) ([]string, error) {
	prompt := fmt.Sprintf(accessoriesPrompt, topColor, bottomColor, occasion, style)

	result, err := s.generate(ctx, prompt, 100, 0.7)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrExplanationUnavailable, err)
	}

	suggestions, err := parseJSONArray(result)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrExplanationUnavailable, err)
	}
	return suggestions, nil
}

// generate calls the Ollama /api/generate endpoint.
func (s *ExplanationService) generate(ctx context.Context, prompt string, maxTokens int, temperature float64) (string, error) {
	reqBody := generateRequest{
		Model:  s.model,
		Prompt: prompt,
		Stream: false,
		Options: &options{
			NumPredict:  maxTokens,
			Temperature: temperature,
		},
	}

	jsonBody, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		s.baseURL+"/api/generate",
		bytes.NewReader(jsonBody),
	)
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, err := io.ReadAll(resp.Body)
		if err != nil {
			return "", fmt.Errorf("ollama error (status %d): failed to read response", resp.StatusCode)
		}
		return "", fmt.Errorf("ollama error (status %d): %s", resp.StatusCode, string(body))
	}

	var genResp generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&genResp); err != nil {
		return "", fmt.Errorf("decode response: %w", err)
	}

	return genResp.Response, nil
}

// parseBullets extracts "•" or "-" prefixed lines from a completion.
func parseBullets(text string) []string {
	var bullets []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		switch {
		case strings.HasPrefix(line, "•"):
			line = strings.TrimSpace(strings.TrimPrefix(line, "•"))
		case strings.HasPrefix(line, "- "):
			line = strings.TrimSpace(strings.TrimPrefix(line, "- "))
		default:
			continue
		}
		if line != "" {
			bullets = append(bullets, line)
		}
	}
	return bullets
}

// parseJSONArray extracts the first JSON array embedded in a completion.
func parseJSONArray(text string) ([]string, error) {
	start := strings.Index(text, "[")
	end := strings.LastIndex(text, "]")
	if start < 0 || end <= start {
		return nil, fmt.Errorf("no JSON array in completion")
	}

	var items []string
	if err := json.Unmarshal([]byte(text[start:end+1]), &items); err != nil {
		return nil, fmt.Errorf("parse JSON array: %w", err)
	}
	return items, nil
}

// ModelName returns the name of the LLM model being used.
func (s *ExplanationService) ModelName() string {
	return s.model
}

// Ping validates the service is reachable by checking the /api/tags endpoint.
// This is a lightweight check that validates connectivity without running inference.
func (s *ExplanationService) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.baseURL+"/api/tags", http.NoBody)
	if err != nil {
		return fmt.Errorf("ollama: failed to create ping request: %w", err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("ollama: ping failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, err := io.ReadAll(resp.Body)
		if err != nil {
			return fmt.Errorf("ollama: API returned status %d (failed to read body: %w)", resp.StatusCode, err)
		}
		return fmt.Errorf("ollama: API returned status %d: %s", resp.StatusCode, string(body))
	}
	return nil
}

// Close releases resources.
func (s *ExplanationService) Close() error {
	// HTTP client doesn't need explicit cleanup
	return nil
}
