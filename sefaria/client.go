package sefaria

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"golang.org/x/time/rate"
)

const (
	// DefaultBaseURL is the public Sefaria API root.
	DefaultBaseURL = "https://www.sefaria.org"

	// DefaultTimeout is the per-request HTTP timeout.
	DefaultTimeout = 30 * time.Second

	// DefaultRequestRate throttles outbound requests, in requests per second.
	DefaultRequestRate = 5.0

	// DefaultMaxAttempts is the retry budget per request.
	DefaultMaxAttempts = 3

	// DefaultRetryDelay is the initial backoff delay.
	DefaultRetryDelay = time.Second
)

// Client talks to a Sefaria-style library API. It satisfies
// corpus.TextSource.
type Client struct {
	baseURL     string
	httpClient  *http.Client
	limiter     *rate.Limiter
	maxAttempts int
	retryDelay  time.Duration
	logger      *slog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL points the client at a different API root.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		if baseURL != "" {
			c.baseURL = baseURL
		}
	}
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		if httpClient != nil {
			c.httpClient = httpClient
		}
	}
}

// WithRequestRate sets the outbound request rate in requests per second.
func WithRequestRate(perSecond float64) Option {
	return func(c *Client) {
		if perSecond > 0 {
			c.limiter = rate.NewLimiter(rate.Limit(perSecond), 1)
		}
	}
}

// WithRetry sets the retry budget and initial backoff delay.
func WithRetry(maxAttempts int, baseDelay time.Duration) Option {
	return func(c *Client) {
		if maxAttempts > 0 {
			c.maxAttempts = maxAttempts
		}
		if baseDelay > 0 {
			c.retryDelay = baseDelay
		}
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// NewClient creates a library API client.
func NewClient(opts ...Option) *Client {
	c := &Client{
		baseURL:     DefaultBaseURL,
		httpClient:  &http.Client{Timeout: DefaultTimeout},
		limiter:     rate.NewLimiter(rate.Limit(DefaultRequestRate), 1),
		maxAttempts: DefaultMaxAttempts,
		retryDelay:  DefaultRetryDelay,
		logger:      slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// shapeEntry is the part of a shape response the client depends on.
type shapeEntry struct {
	Length *int `json:"length"`
}

// ChapterCount returns the number of chapters in a document, taken from the
// document's shape.
func (c *Client) ChapterCount(ctx context.Context, document string) (int, error) {
	endpoint := fmt.Sprintf("%s/api/shape/%s", c.baseURL, url.PathEscape(document))

	var shape []shapeEntry
	if err := c.getJSON(ctx, endpoint, &shape); err != nil {
		return 0, err
	}
	if len(shape) == 0 || shape[0].Length == nil {
		return 0, fmt.Errorf("%w: shape of %q has no length", ErrMalformedResponse, document)
	}
	if *shape[0].Length < 0 {
		return 0, fmt.Errorf("%w: shape of %q has negative length", ErrMalformedResponse, document)
	}
	return *shape[0].Length, nil
}

// textResponse is the part of a texts response the client depends on. The
// Hebrew field is a verse list for regular chapters but a bare string for
// single-segment texts.
type textResponse struct {
	Hebrew json.RawMessage `json:"he"`
}

// Verses returns the Hebrew verses of one chapter, in order.
func (c *Client) Verses(ctx context.Context, document string, chapter int) ([]string, error) {
	ref := fmt.Sprintf("%s.%d", document, chapter)
	endpoint := fmt.Sprintf("%s/api/texts/%s?context=0&commentary=0", c.baseURL, url.PathEscape(ref))

	var body textResponse
	if err := c.getJSON(ctx, endpoint, &body); err != nil {
		return nil, err
	}
	if body.Hebrew == nil {
		return nil, fmt.Errorf("%w: %s has no hebrew text", ErrMalformedResponse, ref)
	}

	var verses []string
	if err := json.Unmarshal(body.Hebrew, &verses); err == nil {
		return verses, nil
	}
	var single string
	if err := json.Unmarshal(body.Hebrew, &single); err == nil {
		return []string{single}, nil
	}
	return nil, fmt.Errorf("%w: %s hebrew text is neither list nor string", ErrMalformedResponse, ref)
}

// getJSON performs a rate-limited, retried GET and decodes the body into v.
func (c *Client) getJSON(ctx context.Context, endpoint string, v any) error {
	return retryWithBackoff(ctx, c.logger, func() error {
		if err := c.limiter.Wait(ctx); err != nil {
			return err
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
		if err != nil {
			return err
		}
		req.Header.Set("Accept", "application/json")

		resp, err := c.httpClient.Do(req)
		if err != nil {
			return err
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			io.Copy(io.Discard, resp.Body)
			return &APIError{StatusCode: resp.StatusCode, URL: endpoint}
		}

		if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
			return fmt.Errorf("%w: %v", ErrMalformedResponse, err)
		}
		return nil
	}, c.maxAttempts, c.retryDelay)
}
