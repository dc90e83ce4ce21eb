// Package client talks to the RabbitMQ HTTP management API. Payloads are
// built with the requests package and responses are decoded with the
// responses package; this package only moves bytes and maps HTTP failures
// to errors.
package client

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/andrelcunha/rmqadmin/pkg/metrics"
	"github.com/andrelcunha/rmqadmin/pkg/requests"
	"github.com/andrelcunha/rmqadmin/pkg/responses"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// HTTPDoer is primarily an [*http.Client], but any implementation that can
// execute a request works, e.g. an in-process test server.
type HTTPDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

type Client struct {
	endpoint string
	username string
	password string

	doer    HTTPDoer
	timeout time.Duration
	metrics metrics.MetricsCollector
	logger  zerolog.Logger
}

type Option func(*Client)

// WithHTTPDoer replaces the default *http.Client.
func WithHTTPDoer(doer HTTPDoer) Option {
	return func(c *Client) {
		c.doer = doer
	}
}

func WithMetrics(collector metrics.MetricsCollector) Option {
	return func(c *Client) {
		c.metrics = collector
	}
}

func WithLogger(logger zerolog.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithTimeout bounds every request. Zero disables the bound.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.timeout = timeout
	}
}

// New creates a client for the management API rooted at endpoint, e.g.
// "http://localhost:15672/api".
func New(endpoint, username, password string, opts ...Option) (*Client, error) {
	u, err := url.Parse(endpoint)
	if err != nil {
		return nil, fmt.Errorf("invalid endpoint '%s': %w", endpoint, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("invalid endpoint '%s': scheme must be http or https", endpoint)
	}
	if u.Host == "" {
		return nil, fmt.Errorf("invalid endpoint '%s': missing host", endpoint)
	}

	c := &Client{
		endpoint: strings.TrimRight(endpoint, "/"),
		username: username,
		password: password,
		doer:     http.DefaultClient,
		timeout:  30 * time.Second,
		metrics:  metrics.NoopCollector{},
		logger:   log.Logger,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Endpoint returns the API root the client was created with.
func (c *Client) Endpoint() string {
	return c.endpoint
}

// path joins escaped segments under the endpoint. The default vhost "/"
// becomes "%2F".
func (c *Client) path(segments ...string) string {
	var b strings.Builder
	b.WriteString(c.endpoint)
	for _, s := range segments {
		b.WriteByte('/')
		b.WriteString(url.PathEscape(s))
	}
	return b.String()
}

// request performs one round trip. route is the unescaped template used as
// the metrics label. A non-2xx status is returned as *HTTPError.
func (c *Client) request(ctx context.Context, method, route string, payload any, segments ...string) ([]byte, error) {
	var body io.Reader
	if payload != nil {
		encoded, err := requests.Encode(payload)
		if err != nil {
			return nil, err
		}
		body = bytes.NewReader(encoded)
	}

	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	target := c.path(segments...)
	req, err := http.NewRequestWithContext(ctx, method, target, body)
	if err != nil {
		return nil, fmt.Errorf("failed to build %s %s: %w", method, target, err)
	}
	req.SetBasicAuth(c.username, c.password)
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	start := time.Now()
	resp, err := c.doer.Do(req)
	if err != nil {
		c.metrics.RecordRequest(method, route, 0, time.Since(start))
		c.logger.Debug().Err(err).Str("method", method).Str("url", target).Msg("management API request failed")
		return nil, fmt.Errorf("%s %s: %w", method, target, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	elapsed := time.Since(start)
	c.metrics.RecordRequest(method, route, resp.StatusCode, elapsed)
	c.logger.Debug().
		Str("method", method).
		Str("url", target).
		Int("status", resp.StatusCode).
		Dur("elapsed", elapsed).
		Msg("management API request")
	if err != nil {
		return nil, fmt.Errorf("failed to read response of %s %s: %w", method, target, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &HTTPError{StatusCode: resp.StatusCode, Method: method, URL: target, Body: string(raw)}
	}
	return raw, nil
}

func (c *Client) put(ctx context.Context, route string, payload any, segments ...string) error {
	_, err := c.request(ctx, http.MethodPut, route, payload, segments...)
	return err
}

func (c *Client) post(ctx context.Context, route string, payload any, segments ...string) error {
	_, err := c.request(ctx, http.MethodPost, route, payload, segments...)
	return err
}

func (c *Client) delete(ctx context.Context, route string, segments ...string) error {
	_, err := c.request(ctx, http.MethodDelete, route, nil, segments...)
	return err
}

// fetch GETs route and decodes the body with parse. Parse failures are
// counted and returned unchanged.
func fetch[T any](ctx context.Context, c *Client, parse func([]byte) (T, error), route string, segments ...string) (T, error) {
	var zero T
	raw, err := c.request(ctx, http.MethodGet, route, nil, segments...)
	if err != nil {
		return zero, err
	}

	v, err := parse(raw)
	if err != nil {
		var perr *responses.ParseError
		if errors.As(err, &perr) {
			c.metrics.RecordParseFailure(perr.Resource, perr.Kind.String())
		}
		c.logger.Warn().Err(err).Str("route", route).Msg("Failed to parse management API response")
		return zero, err
	}
	return v, nil
}
