// Package clockodo provides a thin HTTP client for the Clockodo REST
// API. It only handles transport concerns: authentication headers,
// endpoint versioning and JSON decoding. Business rules live in the
// service layer.
package clockodo

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"regexp"
	"strings"
	"time"

	"go.uber.org/zap"
)

// DefaultBaseURL is the public Clockodo API root.
const DefaultBaseURL = "https://my.clockodo.com/api/"

const defaultUserAgent = "clockodo-bridge/unknown"

var versionSuffix = regexp.MustCompile(`v\d+/?$`)

// Config holds the client configuration. APIUser is the email identity
// the credentials belong to; the user service resolves it against the
// roster to answer "who am I".
type Config struct {
	APIUser            string
	APIKey             string
	UserAgent          string
	BaseURL            string
	ExternalAppContact string
	Timeout            time.Duration
}

// Client is an HTTP client for the Clockodo REST API.
type Client struct {
	apiUser            string
	apiKey             string
	userAgent          string
	externalAppContact string
	baseURL            string
	httpc              *http.Client
	logger             *zap.Logger
}

// NewClient creates a Clockodo API client. The base URL is normalized
// to end in /api/ with any version segment stripped; versions are
// chosen per endpoint because the API mixes v1 through v4.
func NewClient(cfg Config, logger *zap.Logger) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	return &Client{
		apiUser:            cfg.APIUser,
		apiKey:             cfg.APIKey,
		userAgent:          cfg.UserAgent,
		externalAppContact: cfg.ExternalAppContact,
		baseURL:            normalizeBaseURL(baseURL),
		httpc:              &http.Client{Timeout: timeout},
		logger:             logger,
	}
}

// APIUser returns the email identity the client authenticates as.
func (c *Client) APIUser() string {
	return c.apiUser
}

// BaseURL returns the normalized API root the client talks to.
func (c *Client) BaseURL() string {
	return c.baseURL
}

func normalizeBaseURL(raw string) string {
	u := raw
	if !strings.HasSuffix(u, "/") {
		u += "/"
	}

	u = versionSuffix.ReplaceAllString(u, "")

	if !strings.HasSuffix(u, "/api/") {
		if strings.HasSuffix(u, "/api") {
			u += "/"
		} else if !strings.Contains(u, "/api/") {
			u = strings.TrimRight(u, "/") + "/api/"
		}
	}
	return u
}

func (c *Client) headers() http.Header {
	appName := c.userAgent
	if appName == "" {
		appName = "clockodo-bridge"
	}
	contact := c.externalAppContact
	if contact == "" {
		contact = c.apiUser
	}

	h := http.Header{}
	h.Set("X-ClockodoApiUser", c.apiUser)
	h.Set("X-ClockodoApiKey", c.apiKey)
	h.Set("X-Clockodo-External-Application", fmt.Sprintf("%s;%s", appName, contact))
	if c.userAgent != "" {
		h.Set("User-Agent", c.userAgent)
	} else {
		h.Set("User-Agent", defaultUserAgent)
	}
	return h
}

// request performs one API call and decodes the JSON response into out
// (skipped when out is nil). Non-2xx responses return *APIError with
// the response body attached.
func (c *Client) request(ctx context.Context, method, endpoint string, params url.Values, body, out any) error {
	reqURL := c.baseURL + endpoint
	if len(params) > 0 {
		reqURL += "?" + params.Encode()
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("clockodo: encode %s %s body: %w", method, endpoint, err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, reqURL, reader)
	if err != nil {
		return fmt.Errorf("clockodo: build %s %s request: %w", method, endpoint, err)
	}
	for key, values := range c.headers() {
		for _, v := range values {
			req.Header.Set(key, v)
		}
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return fmt.Errorf("clockodo: %s %s: %w", method, endpoint, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("clockodo: read %s %s response: %w", method, endpoint, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		apiErr := &APIError{
			StatusCode: resp.StatusCode,
			Status:     resp.Status,
			Method:     method,
			Endpoint:   endpoint,
			Body:       strings.TrimSpace(string(data)),
		}
		c.logger.Error("clockodo API error",
			zap.String("method", method),
			zap.String("endpoint", endpoint),
			zap.Int("status", resp.StatusCode),
			zap.String("body", apiErr.Body))
		return apiErr
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("clockodo: decode %s %s response: %w", method, endpoint, err)
	}
	return nil
}

func (c *Client) get(ctx context.Context, endpoint string, params url.Values, out any) error {
	return c.request(ctx, http.MethodGet, endpoint, params, nil, out)
}

func (c *Client) post(ctx context.Context, endpoint string, body, out any) error {
	return c.request(ctx, http.MethodPost, endpoint, nil, body, out)
}

func (c *Client) put(ctx context.Context, endpoint string, body, out any) error {
	return c.request(ctx, http.MethodPut, endpoint, nil, body, out)
}

func (c *Client) delete(ctx context.Context, endpoint string, out any) error {
	return c.request(ctx, http.MethodDelete, endpoint, nil, nil, out)
}
