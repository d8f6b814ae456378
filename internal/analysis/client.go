// Package analysis talks to the external attack-graph analysis service.
package analysis

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/hashicorp/go-retryablehttp"
	"github.com/rs/zerolog"

	"github.com/netposture/core/internal/models"
)

// ErrNotConfigured is returned when no analyzer URL is set.
var ErrNotConfigured = errors.New("analyzer url is not configured")

// maxResponseBytes bounds how much of an analyzer response is read.
const maxResponseBytes = 8 << 20

type Request struct {
	Assets      []models.Asset     `json:"assets"`
	ThreatModel *models.ThreatModel `json:"threat_model,omitempty"`
	LocalScore  *models.LocalScore  `json:"local_score,omitempty"`
}

// Analyzer produces an external analysis for an asset set.
type Analyzer interface {
	Analyze(ctx context.Context, req Request) (*models.AnalysisResult, error)
}

type Options struct {
	URL      string
	Timeout  time.Duration
	RetryMax int
	Logger   zerolog.Logger

	// RetryWaitMin and RetryWaitMax default to the retryablehttp defaults.
	RetryWaitMin time.Duration
	RetryWaitMax time.Duration
}

type Client struct {
	url  string
	http *retryablehttp.Client
}

// NewClient builds a retrying JSON client for the analyzer.
func NewClient(opts Options) (*Client, error) {
	if opts.URL == "" {
		return nil, ErrNotConfigured
	}

	rc := retryablehttp.NewClient()
	rc.RetryMax = opts.RetryMax
	rc.Logger = leveledLogger{logger: opts.Logger}
	if opts.Timeout > 0 {
		rc.HTTPClient.Timeout = opts.Timeout
	}
	if opts.RetryWaitMin > 0 {
		rc.RetryWaitMin = opts.RetryWaitMin
	}
	if opts.RetryWaitMax > 0 {
		rc.RetryWaitMax = opts.RetryWaitMax
	}

	return &Client{url: opts.URL, http: rc}, nil
}

// Analyze posts the request and decodes the analysis result.
func (c *Client) Analyze(ctx context.Context, req Request) (*models.AnalysisResult, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("failed to encode analysis request: %w", err)
	}

	httpReq, err := retryablehttp.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build analysis request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("analyzer request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("analyzer returned %d: %s", resp.StatusCode, bytes.TrimSpace(snippet))
	}

	var result models.AnalysisResult
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxResponseBytes)).Decode(&result); err != nil {
		return nil, fmt.Errorf("failed to decode analysis result: %w", err)
	}

	return &result, nil
}

// leveledLogger routes retryablehttp logs through zerolog.
type leveledLogger struct {
	logger zerolog.Logger
}

func (l leveledLogger) Error(msg string, keysAndValues ...interface{}) {
	l.logger.Error().Fields(keysAndValues).Msg(msg)
}

func (l leveledLogger) Info(msg string, keysAndValues ...interface{}) {
	l.logger.Info().Fields(keysAndValues).Msg(msg)
}

func (l leveledLogger) Debug(msg string, keysAndValues ...interface{}) {
	l.logger.Debug().Fields(keysAndValues).Msg(msg)
}

func (l leveledLogger) Warn(msg string, keysAndValues ...interface{}) {
	l.logger.Warn().Fields(keysAndValues).Msg(msg)
}
