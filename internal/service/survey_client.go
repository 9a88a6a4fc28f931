package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"

	"talent_bridge_backend/internal/config"
	"talent_bridge_backend/internal/engine"
	"talent_bridge_backend/internal/util"
	"talent_bridge_backend/pkg/logger"
	"talent_bridge_backend/pkg/monitoring"
	"talent_bridge_backend/pkg/tracing"

	"go.uber.org/zap"
)

// maxUpstreamBody caps how much of an upstream response is read.
const maxUpstreamBody = 4 << 20

// UpstreamError is a non-2xx answer from the survey API.
type UpstreamError struct {
	Status int
	Body   string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("survey api responded %d: %s", e.Status, e.Body)
}

func (e *UpstreamError) Unwrap() error {
	return util.ErrUpstreamRejected
}

// SurveySaver is the part of SurveyClient the assessment flow depends on.
type SurveySaver interface {
	Save(ctx context.Context, p engine.SavePayload) error
}

// SurveyClient talks to the external survey-storage API. Endpoints can be
// swapped at runtime when the configuration is reloaded.
type SurveyClient struct {
	mu       sync.RWMutex
	upstream config.UpstreamConfig
	http     *http.Client
}

func NewSurveyClient(cfg config.UpstreamConfig) *SurveyClient {
	return &SurveyClient{
		upstream: cfg,
		http:     &http.Client{Timeout: cfg.Timeout()},
	}
}

func (c *SurveyClient) SetUpstream(cfg config.UpstreamConfig) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.upstream = cfg
	c.http = &http.Client{Timeout: cfg.Timeout()}
}

func (c *SurveyClient) snapshot() (config.UpstreamConfig, *http.Client) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.upstream, c.http
}

// Save posts the payload once. A 2xx answer with a JSON body is success;
// anything else is returned as an error and never retried.
func (c *SurveyClient) Save(ctx context.Context, p engine.SavePayload) error {
	body, err := json.Marshal(p)
	if err != nil {
		return err
	}
	status, resp, err := c.Forward(ctx, body)
	if err != nil {
		return err
	}
	if status < 200 || status > 299 {
		return &UpstreamError{Status: status, Body: string(resp)}
	}
	if !json.Valid(resp) {
		return fmt.Errorf("survey api returned a non-JSON body with status %d", status)
	}
	return nil
}

// Forward posts body verbatim to the save endpoint and returns the upstream
// status and body. err is only set when no response was received.
func (c *SurveyClient) Forward(ctx context.Context, body []byte) (int, []byte, error) {
	upstream, client := c.snapshot()
	return c.do(ctx, client, "save", http.MethodPost, upstream.SaveURL, body)
}

// Summary fetches the aggregate report from the summary endpoint.
func (c *SurveyClient) Summary(ctx context.Context) (int, []byte, error) {
	upstream, client := c.snapshot()
	return c.do(ctx, client, "summary", http.MethodGet, upstream.SummaryURL, nil)
}

func (c *SurveyClient) do(ctx context.Context, client *http.Client, endpoint, method, url string, body []byte) (int, []byte, error) {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return 0, nil, fmt.Errorf("build %s request: %w", endpoint, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if method == http.MethodGet {
		req.Header.Set("Cache-Control", "no-store")
	}

	ctx, span := tracing.StartClientSpan(ctx, "survey."+endpoint, req)
	req = req.WithContext(ctx)

	start := time.Now()
	resp, err := client.Do(req)
	if err != nil {
		monitoring.ObserveUpstream(endpoint, 0, start)
		tracing.EndClientSpan(span, 0, err)
		logger.Log.Warn("survey api unreachable", zap.String("endpoint", endpoint), zap.Error(err))
		return 0, nil, err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxUpstreamBody))
	monitoring.ObserveUpstream(endpoint, resp.StatusCode, start)
	tracing.EndClientSpan(span, resp.StatusCode, err)
	if err != nil {
		return 0, nil, fmt.Errorf("read %s response: %w", endpoint, err)
	}

	logger.Log.Debug("survey api response",
		zap.String("endpoint", endpoint),
		zap.Int("status", resp.StatusCode),
		zap.Duration("latency", time.Since(start)),
	)
	return resp.StatusCode, data, nil
}
