package groq

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
	"unicode/utf8"

	"yt-companion/domain/repository"
	"yt-companion/infrastructure/configuration"
	"yt-companion/infrastructure/logger"
)

const requestTimeout = 15 * time.Second

// SuggestionClient calls a chat-completion API for alternative video
// titles. It never returns an error: a missing key, malformed model
// output or transport failure all degrade to a substitute three-item
// result.
type SuggestionClient struct {
	apiKey     string
	model      string
	endpoint   string
	httpClient *http.Client
}

func NewSuggestionClient(cfg *configuration.Config) repository.ISuggestion {
	return &SuggestionClient{
		apiKey:     cfg.Groq.APIKey,
		model:      cfg.Groq.Model,
		endpoint:   cfg.Groq.Endpoint,
		httpClient: &http.Client{Timeout: requestTimeout},
	}
}

type chatCompletionRequest struct {
	Model       string                  `json:"model"`
	Messages    []chatCompletionMessage `json:"messages"`
	Temperature float64                 `json:"temperature"`
	MaxTokens   int                     `json:"max_tokens"`
}

type chatCompletionMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatCompletionResponse struct {
	Choices []struct {
		Message chatCompletionMessage `json:"message"`
	} `json:"choices"`
}

// Suggest returns exactly three candidate titles.
func (c *SuggestionClient) Suggest(ctx context.Context, currentTitle string) []string {
	if c.apiKey == "" {
		return []string{
			"Error: GROQ_API_KEY is not configured",
			"Get a free key at console.groq.com",
			"Then restart the server",
		}
	}

	raw, err := c.complete(ctx, currentTitle)
	if err != nil {
		logger.GetLogger().WithField("error", err).Warn("Title suggestion call failed; returning degraded result")
		return []string{
			fmt.Sprintf("Error: %s", truncate(err.Error(), 60)),
			"Check your GROQ_API_KEY configuration",
			"Check server logs for details",
		}
	}

	titles := splitTitles(raw)
	if len(titles) < 3 {
		return fallbackTitles(currentTitle)
	}
	return titles[:3]
}

func (c *SuggestionClient) complete(ctx context.Context, currentTitle string) (string, error) {
	prompt := fmt.Sprintf(
		"You are a YouTube growth expert. "+
			"Give me exactly 3 viral, click-worthy YouTube titles for a video currently titled: '%s'. "+
			"Return ONLY the 3 titles separated by a pipe character | with no extra text, numbering, or explanation. "+
			"Example format: Title One | Title Two | Title Three",
		currentTitle,
	)

	body, err := json.Marshal(chatCompletionRequest{
		Model:       c.model,
		Messages:    []chatCompletionMessage{{Role: "user", Content: prompt}},
		Temperature: 0.9,
		MaxTokens:   200,
	})
	if err != nil {
		return "", fmt.Errorf("encoding request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("completion request failed: %w", err)
	}
	defer resp.Body.Close()

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("reading response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("completion API returned status %d", resp.StatusCode)
	}

	var completion chatCompletionResponse
	if err := json.Unmarshal(payload, &completion); err != nil {
		return "", fmt.Errorf("decoding response: %w", err)
	}
	if len(completion.Choices) == 0 {
		return "", fmt.Errorf("completion API returned no choices")
	}
	return strings.TrimSpace(completion.Choices[0].Message.Content), nil
}

func splitTitles(raw string) []string {
	parts := strings.Split(raw, "|")
	titles := make([]string, 0, len(parts))
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			titles = append(titles, t)
		}
	}
	return titles
}

// fallbackTitles is the deterministic substitute used when the model
// ignores the pipe format.
func fallbackTitles(currentTitle string) []string {
	return []string{
		fmt.Sprintf("You Won't Believe What Happened with %s", currentTitle),
		fmt.Sprintf("The Truth About %s Nobody Tells You", currentTitle),
		fmt.Sprintf("I Tried %s for 30 Days — Here's What Happened", currentTitle),
	}
}

// truncate cuts on a rune boundary so a multibyte character is never
// split mid-sequence.
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n]
}
