// Package upstream is the typed gateway to the remote results API. It
// performs no retries, no caching and no deduplication: every call is
// independent and at-most-once, and failures are classified and returned
// to the caller.
package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/rimedu/resultats-portal-api/pkg/config"
	appErrors "github.com/rimedu/resultats-portal-api/pkg/errors"
)

// ObserveFunc receives one measurement per upstream call.
type ObserveFunc func(endpoint string, status int, duration time.Duration)

// Client talks to the remote results API.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *zap.Logger
	observe    ObserveFunc
}

// Option customises the client.
type Option func(*Client)

// WithHTTPClient swaps the underlying transport (used by tests).
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithObserver wires upstream call metrics.
func WithObserver(fn ObserveFunc) Option {
	return func(c *Client) { c.observe = fn }
}

// New builds a gateway client.
func New(cfg config.UpstreamConfig, logger *zap.Logger, opts ...Option) *Client {
	if logger == nil {
		logger = zap.NewNop()
	}
	c := &Client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		httpClient: &http.Client{Timeout: cfg.Timeout},
		logger:     logger,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type request struct {
	method      string
	path        string
	query       url.Values
	token       string
	body        io.Reader
	contentType string
}

// upstreamError mirrors the error payloads the results API emits.
type upstreamError struct {
	Detail  string `json:"detail"`
	Message string `json:"message"`
}

func (c *Client) do(ctx context.Context, req request, out interface{}) error {
	endpoint := req.method + " " + req.path

	target := c.baseURL + req.path
	if len(req.query) > 0 {
		target += "?" + req.query.Encode()
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.method, target, req.body)
	if err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "build upstream request")
	}
	httpReq.Header.Set("Accept", "application/json")
	if req.contentType != "" {
		httpReq.Header.Set("Content-Type", req.contentType)
	}
	if req.token != "" {
		httpReq.Header.Set("Authorization", "Bearer "+req.token)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(httpReq)
	duration := time.Since(start)
	if err != nil {
		if c.observe != nil {
			c.observe(endpoint, 0, duration)
		}
		c.logger.Warn("upstream unreachable",
			zap.String("endpoint", endpoint),
			zap.Error(err))
		return appErrors.Wrap(err, appErrors.ErrUpstreamUnavailable.Code, appErrors.ErrUpstreamUnavailable.Status, appErrors.ErrUpstreamUnavailable.Message)
	}
	defer resp.Body.Close() //nolint:errcheck

	if c.observe != nil {
		c.observe(endpoint, resp.StatusCode, duration)
	}

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return appErrors.Wrap(err, appErrors.ErrUpstream.Code, appErrors.ErrUpstream.Status, "read upstream response")
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return c.classify(endpoint, resp.StatusCode, payload)
	}

	if out == nil || len(payload) == 0 {
		return nil
	}
	if err := json.Unmarshal(payload, out); err != nil {
		return appErrors.Wrap(err, appErrors.ErrUpstream.Code, appErrors.ErrUpstream.Status, "decode upstream response")
	}
	return nil
}

// classify maps a non-2xx upstream status to the portal error taxonomy:
// 404 stays a distinct not-found, 401/403 stay auth errors, everything
// else is a generic upstream failure.
func (c *Client) classify(endpoint string, status int, payload []byte) error {
	var body upstreamError
	_ = json.Unmarshal(payload, &body)
	detail := body.Detail
	if detail == "" {
		detail = body.Message
	}

	c.logger.Warn("upstream error",
		zap.String("endpoint", endpoint),
		zap.Int("status", status),
		zap.String("detail", detail))

	switch status {
	case http.StatusNotFound:
		return appErrors.Clone(appErrors.ErrNotFound, detail)
	case http.StatusUnauthorized:
		return appErrors.Clone(appErrors.ErrUnauthorized, detail)
	case http.StatusForbidden:
		return appErrors.Clone(appErrors.ErrForbidden, detail)
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		return appErrors.Clone(appErrors.ErrValidation, detail)
	default:
		return appErrors.Wrap(fmt.Errorf("upstream status %d", status), appErrors.ErrUpstream.Code, appErrors.ErrUpstream.Status, appErrors.ErrUpstream.Message)
	}
}

func (c *Client) get(ctx context.Context, path string, query url.Values, token string, out interface{}) error {
	return c.do(ctx, request{method: http.MethodGet, path: path, query: query, token: token}, out)
}

func (c *Client) postJSON(ctx context.Context, path string, token string, body interface{}, out interface{}) error {
	raw, err := json.Marshal(body)
	if err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "encode request body")
	}
	return c.do(ctx, request{
		method:      http.MethodPost,
		path:        path,
		token:       token,
		body:        bytes.NewReader(raw),
		contentType: "application/json",
	}, out)
}

func (c *Client) submitForm(ctx context.Context, method, path, token string, form url.Values, out interface{}) error {
	return c.do(ctx, request{
		method:      method,
		path:        path,
		token:       token,
		body:        strings.NewReader(form.Encode()),
		contentType: "application/x-www-form-urlencoded",
	}, out)
}
