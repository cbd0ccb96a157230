// Package platform is a client for the Moltbook agent API.
package platform

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/carlmjohnson/versioninfo"
	"github.com/hashicorp/go-cleanhttp"
	"github.com/sirupsen/logrus"
	"golang.org/x/time/rate"

	"github.com/ibeckermayer/judgmentroutingbot/internal/config"
)

// Client talks to the platform API. Requests are spaced by a shared limiter
// so that concurrent callers (the cycle and the HTTP surface) stay under the
// platform's rate limits together.
type Client struct {
	baseURL      string
	heartbeatURL string
	apiKey       string
	userAgent    string
	client       *http.Client
	limiter      *rate.Limiter
	log          logrus.FieldLogger
}

// New creates a client from the platform config
func New(cfg config.PlatformConfig, logger logrus.FieldLogger) *Client {
	httpClient := cleanhttp.DefaultPooledClient()
	httpClient.Timeout = cfg.RequestTimeout.Std()

	limit := rate.Inf
	if spacing := cfg.RequestSpacing.Std(); spacing > 0 {
		limit = rate.Every(spacing)
	}

	if logger == nil {
		logger = logrus.StandardLogger()
	}

	return &Client{
		baseURL:      strings.TrimRight(cfg.BaseURL, "/"),
		heartbeatURL: cfg.HeartbeatURL,
		apiKey:       cfg.APIKey,
		userAgent:    "judgmentroutingbot/" + versioninfo.Short(),
		client:       httpClient,
		limiter:      rate.NewLimiter(limit, 1),
		log:          logger.WithField("component", "platform"),
	}
}

// HasCredentials reports whether an API key is configured
func (c *Client) HasCredentials() bool {
	return c.apiKey != ""
}

// envelope is the response wrapper used by every JSON endpoint
type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   string          `json:"error"`
	Hint    string          `json:"hint"`
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return err
	}

	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request: %w", err)
		}
		reader = bytes.NewReader(b)
	}

	uri := c.baseURL + path
	if len(query) > 0 {
		uri += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, uri, reader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", c.userAgent)
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	start := time.Now()
	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	c.log.WithFields(logrus.Fields{
		"method":   method,
		"path":     path,
		"status":   resp.StatusCode,
		"duration": time.Since(start).String(),
	}).Debug("platform request")

	var env envelope
	decodeErr := json.Unmarshal(raw, &env)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		perr := &Error{StatusCode: resp.StatusCode, Message: env.Error, Hint: env.Hint}
		if perr.Message == "" && decodeErr != nil {
			perr.Message = strings.TrimSpace(string(raw))
		}
		if s := resp.Header.Get("Retry-After"); s != "" {
			if n, err := strconv.Atoi(s); err == nil {
				perr.RetryAfter = time.Duration(n) * time.Second
			}
		}
		return perr
	}

	if decodeErr != nil {
		return fmt.Errorf("failed to decode response from %s: %w", path, decodeErr)
	}
	if !env.Success && env.Error != "" {
		return &Error{StatusCode: resp.StatusCode, Message: env.Error, Hint: env.Hint}
	}

	if out == nil || len(env.Data) == 0 || string(env.Data) == "null" {
		return nil
	}
	if err := json.Unmarshal(env.Data, out); err != nil {
		return fmt.Errorf("failed to decode data from %s: %w", path, err)
	}
	return nil
}

func listQuery(sort string, limit int) url.Values {
	q := url.Values{}
	if sort != "" {
		q.Set("sort", sort)
	}
	if limit > 0 {
		q.Set("limit", strconv.Itoa(limit))
	}
	return q
}

func escape(segment string) string {
	return url.PathEscape(segment)
}
