package binance

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/cenkalti/backoff/v5"
	"github.com/sony/gobreaker"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

const (
	TestnetBaseURL = "https://testnet.binancefuture.com"

	apiKeyHeader = "X-MBX-APIKEY"

	pingPath  = "/fapi/v1/ping"
	timePath  = "/fapi/v1/time"
	orderPath = "/fapi/v1/order"
)

type Credentials struct {
	APIKey    string
	APISecret string
}

type RetryPolicy struct {
	MaxAttempts int
	BaseDelay   time.Duration
	MaxDelay    time.Duration
}

type BreakerConfig struct {
	Enabled     bool
	MaxRequests uint32
	Interval    time.Duration
	Timeout     time.Duration
}

type Config struct {
	BaseURL           string
	Timeout           time.Duration
	RecvWindow        int64
	Retry             RetryPolicy
	RequestsPerSecond float64
	Burst             int
	Breaker           BreakerConfig
}

// Client issues authenticated requests against the Binance Futures REST
// API. Order placement goes through a canonical query string that is
// signed with HMAC-SHA256 and retransmitted unchanged on retry; retries
// apply to transient failures only (429, 5xx, transport errors).
type Client struct {
	baseURL    string
	apiKey     string
	signer     *Signer
	httpClient *http.Client
	limiter    *rate.Limiter
	breaker    *gobreaker.CircuitBreaker
	retry      RetryPolicy
	recvWindow int64
	timeOffset int64
	logger     *zap.Logger
}

func NewClient(cfg Config, creds Credentials, logger *zap.Logger) (*Client, error) {
	if creds.APIKey == "" || creds.APISecret == "" {
		return nil, ErrMissingCredentials
	}

	if cfg.BaseURL == "" {
		cfg.BaseURL = TestnetBaseURL
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 10 * time.Second
	}
	if cfg.RecvWindow <= 0 {
		cfg.RecvWindow = 10000
	}
	if cfg.Retry.MaxAttempts <= 0 {
		cfg.Retry.MaxAttempts = 3
	}
	if cfg.Retry.BaseDelay <= 0 {
		cfg.Retry.BaseDelay = 500 * time.Millisecond
	}
	if cfg.Retry.MaxDelay <= 0 {
		cfg.Retry.MaxDelay = 10 * time.Second
	}
	if cfg.RequestsPerSecond <= 0 {
		cfg.RequestsPerSecond = 5
	}
	if cfg.Burst <= 0 {
		cfg.Burst = 10
	}

	c := &Client{
		baseURL:    cfg.BaseURL,
		apiKey:     creds.APIKey,
		signer:     NewSigner(creds.APISecret),
		httpClient: &http.Client{Timeout: cfg.Timeout},
		limiter:    rate.NewLimiter(rate.Limit(cfg.RequestsPerSecond), cfg.Burst),
		retry:      cfg.Retry,
		recvWindow: cfg.RecvWindow,
		logger:     logger,
	}

	if cfg.Breaker.Enabled {
		c.breaker = gobreaker.NewCircuitBreaker(gobreaker.Settings{
			Name:        "binance-rest",
			MaxRequests: cfg.Breaker.MaxRequests,
			Interval:    cfg.Breaker.Interval,
			Timeout:     cfg.Breaker.Timeout,
		})
	}

	return c, nil
}

// Ping issues an unsigned connectivity check.
func (c *Client) Ping(ctx context.Context) error {
	_, err := c.get(ctx, pingPath)
	return err
}

// ServerTime returns the exchange clock in milliseconds since epoch.
func (c *Client) ServerTime(ctx context.Context) (int64, error) {
	body, err := c.get(ctx, timePath)
	if err != nil {
		return 0, err
	}
	var resp serverTimeResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return 0, fmt.Errorf("decode server time: %w", err)
	}
	return resp.ServerTime, nil
}

// SyncTime measures the offset between the exchange clock and the local
// clock. Signed requests use local time adjusted by this offset, which
// keeps timestamps inside the receive window without an extra round trip
// per order.
func (c *Client) SyncTime(ctx context.Context) error {
	serverTime, err := c.ServerTime(ctx)
	if err != nil {
		return err
	}
	c.timeOffset = serverTime - time.Now().UnixMilli()
	c.logger.Debug("clock offset measured", zap.Int64("offset_ms", c.timeOffset))
	return nil
}

// PlaceOrder submits a signed order request built from the given
// parameters and returns the parsed acknowledgement.
func (c *Client) PlaceOrder(ctx context.Context, params *Params) (*OrderResponse, error) {
	body, err := c.signedRequest(ctx, http.MethodPost, orderPath, params)
	if err != nil {
		return nil, err
	}
	var resp OrderResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("decode order response: %w", err)
	}
	return &resp, nil
}

// signedRequest completes the parameter set with timestamp and
// recvWindow, signs the canonical query string and sends it. The
// signature is appended after signing and never logged.
func (c *Client) signedRequest(ctx context.Context, method, path string, params *Params) ([]byte, error) {
	signed := params.Clone()
	signed.Set("timestamp", strconv.FormatInt(c.now(), 10))
	signed.Set("recvWindow", strconv.FormatInt(c.recvWindow, 10))

	query := signed.Encode()
	rawQuery := query + "&" + signatureKey + "=" + c.signer.Sign(query)

	c.logger.Debug("sending signed request",
		zap.String("method", method),
		zap.String("path", path),
		zap.String("params", signed.Redacted()),
	)

	return c.doWithRetry(ctx, method, path, rawQuery)
}

// doWithRetry retransmits the same signed query until it succeeds, fails
// permanently, or the attempt budget is exhausted. Transient failures
// back off exponentially between attempts.
func (c *Client) doWithRetry(ctx context.Context, method, path, rawQuery string) ([]byte, error) {
	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = c.retry.BaseDelay
	bo.MaxInterval = c.retry.MaxDelay
	bo.Multiplier = 2
	bo.RandomizationFactor = 0

	var lastAPIErr *APIError
	var lastNetErr error

	for attempt := 1; attempt <= c.retry.MaxAttempts; attempt++ {
		if attempt > 1 {
			delay := bo.NextBackOff()
			c.logger.Warn("transient failure, retrying",
				zap.String("path", path),
				zap.Int("attempt", attempt),
				zap.Duration("delay", delay),
			)
			select {
			case <-ctx.Done():
				return nil, &NetworkError{Attempts: attempt - 1, Err: ctx.Err()}
			case <-time.After(delay):
			}
		}

		body, retryable, err := c.doOnce(ctx, method, path, rawQuery)
		if err == nil {
			return body, nil
		}
		if !retryable {
			return nil, err
		}

		var apiErr *APIError
		if errors.As(err, &apiErr) {
			lastAPIErr = apiErr
			lastNetErr = nil
		} else {
			lastNetErr = err
			lastAPIErr = nil
		}
	}

	if lastAPIErr != nil {
		lastAPIErr.Attempts = c.retry.MaxAttempts
		return nil, lastAPIErr
	}
	return nil, &NetworkError{Attempts: c.retry.MaxAttempts, Err: lastNetErr}
}

// doOnce performs a single HTTP attempt and classifies the outcome.
// retryable is true for transport errors and transient statuses only.
func (c *Client) doOnce(ctx context.Context, method, path, rawQuery string) (body []byte, retryable bool, err error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, false, err
	}

	url := c.baseURL + path
	if rawQuery != "" {
		url += "?" + rawQuery
	}
	req, err := http.NewRequestWithContext(ctx, method, url, nil)
	if err != nil {
		return nil, false, err
	}
	req.Header.Set(apiKeyHeader, c.apiKey)

	resp, err := c.do(req)
	if err != nil {
		return nil, true, err
	}
	defer resp.Body.Close()

	body, err = io.ReadAll(resp.Body)
	if err != nil {
		return nil, true, err
	}

	c.logger.Debug("response received",
		zap.String("path", path),
		zap.Int("status", resp.StatusCode),
	)

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		// The exchange occasionally reports errors inside a 2xx body.
		var envelope APIError
		if json.Unmarshal(body, &envelope) == nil && envelope.populated() {
			return nil, false, &envelope
		}
		return body, false, nil
	}

	apiErr := &APIError{Code: resp.StatusCode, Msg: http.StatusText(resp.StatusCode)}
	var envelope APIError
	if json.Unmarshal(body, &envelope) == nil && envelope.populated() {
		apiErr = &envelope
	}

	return nil, transientStatus(resp.StatusCode), apiErr
}

func (c *Client) do(req *http.Request) (*http.Response, error) {
	if c.breaker == nil {
		return c.httpClient.Do(req)
	}
	res, err := c.breaker.Execute(func() (interface{}, error) {
		return c.httpClient.Do(req)
	})
	if err != nil {
		return nil, err
	}
	return res.(*http.Response), nil
}

// get issues an unsigned GET with the same transient-failure retry
// policy as signed requests.
func (c *Client) get(ctx context.Context, path string) ([]byte, error) {
	return c.doWithRetry(ctx, http.MethodGet, path, "")
}

func (c *Client) now() int64 {
	return time.Now().UnixMilli() + c.timeOffset
}

// Close wipes the signing key.
func (c *Client) Close() {
	c.signer.Wipe()
}
