package newsapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"NewsPulse/internal/domain"
	"NewsPulse/internal/ports"
)

// Client talks to the remote news service over its four HTTP operations.
// It is a pure request/response mapper: no retries, no caching, no state
// beyond the connection pool.
type Client struct {
	baseURL string
	http    *http.Client
	logger  *slog.Logger
}

var _ ports.Gateway = (*Client)(nil)

// NewClient creates a reusable HTTP client for the given base URL.
func NewClient(baseURL string, timeout time.Duration, logger *slog.Logger) *Client {
	if timeout <= 0 {
		timeout = 20 * time.Second
	}
	return &Client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		logger:  logger,
	}
}

// Ingest asks the service to pull and process the given raw sources.
func (c *Client) Ingest(ctx context.Context, sources []string, language domain.Language) (domain.IngestResult, error) {
	payload := map[string]any{
		"sources":  sources,
		"language": language,
	}

	var resp struct {
		Inserted *int `json:"inserted"`
	}
	if err := c.post(ctx, "/api/ingest", payload, &resp); err != nil {
		return domain.IngestResult{}, err
	}

	return domain.IngestResult{Inserted: intOrZero(resp.Inserted)}, nil
}

// FetchFeed requests the personalized feed for the given preferences.
func (c *Client) FetchFeed(ctx context.Context, prefs domain.Preferences) (domain.FeedResult, error) {
	payload := map[string]any{
		"city":      prefs.City,
		"interests": prefs.InterestList(),
		"urgency":   prefs.Urgency,
		"language":  prefs.Language,
	}

	var resp struct {
		Items []domain.StoryItem `json:"items"`
		Count *int               `json:"count"`
	}
	if err := c.post(ctx, "/api/feed", payload, &resp); err != nil {
		return domain.FeedResult{}, err
	}

	if resp.Items == nil {
		resp.Items = []domain.StoryItem{}
	}
	return domain.FeedResult{Items: resp.Items, Count: intOrZero(resp.Count)}, nil
}

// FetchDigest requests the daily aggregate for the given language.
func (c *Client) FetchDigest(ctx context.Context, language domain.Language) (domain.DigestPayload, error) {
	endpoint := fmt.Sprintf("%s/api/digest?language=%s", c.baseURL, url.QueryEscape(string(language)))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return domain.DigestPayload{}, fmt.Errorf("new request: %w", err)
	}

	var digest domain.DigestPayload
	if err := c.do(req, &digest); err != nil {
		return domain.DigestPayload{}, err
	}

	if digest.Headlines == nil {
		digest.Headlines = []string{}
	}
	if digest.GlobalAffectingPK == nil {
		digest.GlobalAffectingPK = []string{}
	}
	return digest, nil
}

// RequestAudio asks the service to synthesize narration for the given text.
func (c *Client) RequestAudio(ctx context.Context, text string, language domain.Language) (domain.AudioResult, error) {
	payload := map[string]any{
		"text":     text,
		"language": language,
	}

	var resp struct {
		AudioURL string `json:"audio_url"`
	}
	if err := c.post(ctx, "/api/audio", payload, &resp); err != nil {
		return domain.AudioResult{}, err
	}

	return domain.AudioResult{AudioURL: resp.AudioURL}, nil
}

func (c *Client) post(ctx context.Context, path string, payload any, v any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("new request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	return c.do(req, v)
}

func (c *Client) do(req *http.Request, v any) error {
	requestID := uuid.NewString()
	req.Header.Set("X-Request-ID", requestID)

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close()

	c.debug("remote call",
		"path", req.URL.Path,
		"status", resp.StatusCode,
		"request_id", requestID,
		"elapsed", time.Since(start).Round(time.Millisecond))

	if resp.StatusCode != http.StatusOK {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		if len(detail) > 0 {
			return fmt.Errorf("service returned %s: %s", resp.Status, strings.TrimSpace(string(detail)))
		}
		return fmt.Errorf("service returned %s", resp.Status)
	}

	if v == nil {
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}

	return nil
}

func (c *Client) debug(msg string, args ...any) {
	if c.logger != nil {
		c.logger.Debug(msg, args...)
	}
}

func intOrZero(v *int) int {
	if v == nil {
		return 0
	}
	return *v
}
