// Package iplapi is a typed client for the IPL data REST API.
package iplapi

import (
	"context"
	"strings"
	"time"

	sonic "github.com/bytedance/sonic"
	"github.com/cockroachdb/errors"
	"github.com/valyala/fasthttp"

	"github.com/sugerdarco/IPL-Data-Platform/internal/platform/logging"
	"github.com/sugerdarco/IPL-Data-Platform/internal/platform/resilience"
)

const (
	defaultTimeout = 10 * time.Second
	maxBodySize    = 8 << 20
)

type ClientConfig struct {
	BaseURL string
	Timeout time.Duration
	// HTTPClient overrides the transport; nil builds a fasthttp.Client with sane limits.
	HTTPClient *fasthttp.Client
	Breaker    resilience.BreakerConfig
	Logger     *logging.Logger
}

type Client struct {
	http    *fasthttp.Client
	baseURL string
	timeout time.Duration
	breaker *resilience.Breaker
	flight  resilience.Group[response]
	logger  *logging.Logger
}

type response struct {
	status int
	body   []byte
}

func NewClient(cfg ClientConfig) (*Client, error) {
	baseURL := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if baseURL == "" {
		return nil, errors.New("iplapi: base url is required")
	}
	if !strings.HasPrefix(baseURL, "http://") && !strings.HasPrefix(baseURL, "https://") {
		return nil, errors.Newf("iplapi: base url %q must use http or https", baseURL)
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &fasthttp.Client{
			Name:                "ipl-data-platform-client",
			ReadTimeout:         timeout,
			WriteTimeout:        timeout,
			MaxIdleConnDuration: time.Minute,
			MaxResponseBodySize: maxBodySize,
		}
	}

	return &Client{
		http:    httpClient,
		baseURL: baseURL,
		timeout: timeout,
		breaker: resilience.NewBreaker(cfg.Breaker),
		logger:  logger.With("component", "iplapi"),
	}, nil
}

// BreakerState reports the circuit breaker state guarding the transport.
func (c *Client) BreakerState() resilience.State {
	return c.breaker.State()
}

type envelope[T any] struct {
	APIVersion string      `json:"apiVersion"`
	Data       T           `json:"data"`
	Pagination *Pagination `json:"pagination"`
	Error      *errorBody  `json:"error"`
}

type errorBody struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Status  string `json:"status"`
}

// get fetches path and decodes the data member of the success envelope into T.
// Statuses listed in accept are decoded like a 2xx response.
func get[T any](ctx context.Context, c *Client, path string, params Params, accept ...int) (T, *Pagination, error) {
	var zero T

	resp, err := c.do(ctx, buildURL(c.baseURL, path, params))
	if err != nil {
		return zero, nil, err
	}

	var env envelope[T]
	if err := sonic.Unmarshal(resp.body, &env); err != nil {
		if resp.status < 200 || resp.status >= 300 {
			return zero, nil, &APIError{Status: resp.status, Code: "UNKNOWN", Message: abbreviate(resp.body)}
		}
		return zero, nil, errors.Wrapf(err, "iplapi: decode %s", path)
	}

	if resp.status < 200 || resp.status >= 300 {
		accepted := false
		for _, status := range accept {
			accepted = accepted || status == resp.status
		}
		if !accepted || env.Error != nil {
			apiErr := &APIError{Status: resp.status}
			if env.Error != nil {
				apiErr.Code = env.Error.Status
				apiErr.Message = env.Error.Message
			}
			return zero, nil, apiErr
		}
	}

	return env.Data, env.Pagination, nil
}

func (c *Client) do(ctx context.Context, uri string) (response, error) {
	if err := ctx.Err(); err != nil {
		return response{}, err
	}

	out, _, err := c.flight.Do(uri, func() (response, error) {
		var resp response
		err := c.breaker.Do(func() error {
			var reqErr error
			resp, reqErr = c.execute(ctx, uri)
			if reqErr == nil && retryableStatus(resp.status) {
				return &APIError{Status: resp.status}
			}
			return reqErr
		}, isCircuitFailure)

		var apiErr *APIError
		switch {
		case errors.Is(err, resilience.ErrCircuitOpen):
			c.logger.WarnContext(ctx, "iplapi circuit breaker rejected request", "state", c.breaker.State())
			return response{}, errors.Mark(errors.Wrap(err, "iplapi"), ErrUnavailable)
		case errors.As(err, &apiErr):
			// Keep the body so the caller can decode the error envelope.
			return resp, nil
		}
		return resp, err
	})
	return out, err
}

func (c *Client) execute(ctx context.Context, uri string) (response, error) {
	req := fasthttp.AcquireRequest()
	defer fasthttp.ReleaseRequest(req)
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseResponse(resp)

	req.SetRequestURI(uri)
	req.Header.SetMethod(fasthttp.MethodGet)
	req.Header.Set(fasthttp.HeaderAccept, "application/json")

	deadline := time.Now().Add(c.timeout)
	if ctxDeadline, ok := ctx.Deadline(); ok && ctxDeadline.Before(deadline) {
		deadline = ctxDeadline
	}

	started := time.Now()
	if err := c.http.DoDeadline(req, resp, deadline); err != nil {
		c.logger.WarnContext(ctx, "iplapi request failed", "url", uri, "error", err)
		return response{}, errors.Mark(errors.Wrapf(err, "iplapi: GET %s", uri), ErrUnavailable)
	}

	status := resp.StatusCode()
	c.logger.DebugContext(ctx, "iplapi request",
		"url", uri,
		"status", status,
		"duration_ms", time.Since(started).Milliseconds(),
	)

	return response{status: status, body: append([]byte(nil), resp.Body()...)}, nil
}

func abbreviate(body []byte) string {
	const limit = 256
	s := strings.TrimSpace(string(body))
	if len(s) > limit {
		return s[:limit] + "..."
	}
	return s
}
