package hint

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/go-resty/resty/v2"
	"github.com/sirupsen/logrus"

	"sudoku_engine_go/internal/config"
	"sudoku_engine_go/internal/types"
)

// Client calls an OpenAI-compatible chat-completion endpoint and parses
// the model's JSON reply into a Suggestion. Transient failures (5xx,
// rate limits, network errors) are retried with exponential backoff;
// everything else fails fast.
type Client struct {
	http *resty.Client
	cfg  config.HintConfig
	log  *logrus.Logger
}

// NewClient builds a Client from cfg. The URL is the service base, e.g.
// https://api.openai.com.
func NewClient(cfg config.HintConfig, log *logrus.Logger) *Client {
	httpClient := resty.New().
		SetBaseURL(cfg.URL).
		SetTimeout(cfg.Timeout.Std()).
		SetHeader("Content-Type", "application/json")
	if cfg.APIKey != "" {
		httpClient.SetAuthToken(cfg.APIKey)
	}
	return &Client{http: httpClient, cfg: cfg, log: log}
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model          string          `json:"model"`
	Messages       []chatMessage   `json:"messages"`
	ResponseFormat *responseFormat `json:"response_format,omitempty"`
}

type responseFormat struct {
	Type string `json:"type"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

// Suggest implements Provider.
func (c *Client) Suggest(ctx context.Context, req Request) (*Suggestion, error) {
	payload := chatRequest{
		Model: c.cfg.Model,
		Messages: []chatMessage{
			{Role: "system", Content: coachPrompt},
			{Role: "user", Content: buildPrompt(req)},
		},
		ResponseFormat: &responseFormat{Type: "json_object"},
	}

	var reply chatResponse
	operation := func() error {
		resp, err := c.http.R().
			SetContext(ctx).
			SetBody(payload).
			SetResult(&reply).
			Post("/v1/chat/completions")
		if err != nil {
			return err
		}
		if resp.IsError() {
			err := fmt.Errorf("hint service: %s", resp.Status())
			if resp.StatusCode() >= http.StatusInternalServerError ||
				resp.StatusCode() == http.StatusTooManyRequests {
				return err
			}
			return backoff.Permanent(err)
		}
		return nil
	}

	policy := backoff.WithContext(
		backoff.WithMaxRetries(backoff.NewExponentialBackOff(), uint64(c.cfg.MaxRetries)), ctx)
	notify := func(err error, wait time.Duration) {
		c.log.WithError(err).WithField("wait", wait).Debug("retrying hint request")
	}
	if err := backoff.RetryNotify(operation, policy, notify); err != nil {
		return nil, err
	}

	if len(reply.Choices) == 0 {
		return nil, fmt.Errorf("%w: service returned no choices", ErrNoHint)
	}
	return parseSuggestion(reply.Choices[0].Message.Content)
}

// parseSuggestion decodes the model's reply. Some models wrap JSON in a
// code fence despite instructions, so fences are stripped first.
func parseSuggestion(content string) (*Suggestion, error) {
	content = strings.TrimSpace(content)
	content = strings.TrimPrefix(content, "```json")
	content = strings.TrimPrefix(content, "```")
	content = strings.TrimSuffix(content, "```")
	content = strings.TrimSpace(content)

	var s Suggestion
	if err := json.Unmarshal([]byte(content), &s); err != nil {
		return nil, fmt.Errorf("%w: unparseable reply: %v", ErrNoHint, err)
	}
	if s.Strategy == "" {
		return nil, fmt.Errorf("%w: service had no suggestion", ErrNoHint)
	}
	for _, cell := range s.Cells {
		if cell.Row < 0 || cell.Row >= types.Size || cell.Col < 0 || cell.Col >= types.Size {
			return nil, fmt.Errorf("%w: cell (%d,%d) out of range", ErrNoHint, cell.Row, cell.Col)
		}
	}
	return &s, nil
}
