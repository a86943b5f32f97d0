package loops

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

	"github.com/rs/zerolog"
)

const defaultBaseURL = "https://app.loops.so/api/"

// defaultRateLimit is assumed when a 429 response omits a rate-limit header.
const defaultRateLimit = 10

// Client is a Loops API client. It is immutable after construction and
// safe for concurrent use as long as its http.Client is.
type Client struct {
	baseURL    string
	apiKey     string
	userAgent  string
	httpClient *http.Client
	logger     zerolog.Logger
}

// NewClient creates a new Loops client authenticated with the given API key.
func NewClient(apiKey string, opts ...Option) (*Client, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, ErrMissingAPIKey
	}

	options := defaultOptions()
	for _, opt := range opts {
		opt(&options)
	}

	httpClient := options.httpClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: options.timeout}
	}

	return &Client{
		baseURL:    strings.TrimRight(options.baseURL, "/") + "/",
		apiKey:     apiKey,
		userAgent:  options.userAgent,
		httpClient: httpClient,
		logger:     options.logger,
	}, nil
}

// apiRequest describes one outbound call. Path carries the "v1/" version
// prefix. Params are appended to the URL only for GET; payload becomes the
// JSON body only when non-nil. The two are never used together.
type apiRequest struct {
	path    string
	method  string
	payload map[string]any
	params  url.Values
}

// doQuery builds and sends one request, then decodes the response into out.
// Failures are classified as RateLimitExceededError (429), APIError (other
// non-2xx), or the raw transport error, returned unwrapped.
func (c *Client) doQuery(ctx context.Context, r apiRequest, out any) error {
	method := r.method
	if method == "" {
		method = http.MethodGet
	}

	requestURL := c.baseURL + r.path
	if method == http.MethodGet && len(r.params) > 0 {
		requestURL += "?" + r.params.Encode()
	}

	var body io.Reader
	if r.payload != nil {
		encoded, err := json.Marshal(r.payload)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		body = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, requestURL, body)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	c.logger.Debug().
		Str("method", method).
		Str("url", requestURL).
		Msg("Loops API request")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		// Transport failures go back untouched, diagnostics intact.
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusTooManyRequests {
		return &RateLimitExceededError{
			Limit:     rateLimitHeader(resp.Header, "x-ratelimit-limit"),
			Remaining: rateLimitHeader(resp.Header, "x-ratelimit-remaining"),
		}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var errBody map[string]any
		if err := json.NewDecoder(resp.Body).Decode(&errBody); err != nil {
			return fmt.Errorf("decode error response: %w", err)
		}
		return &APIError{StatusCode: resp.StatusCode, Body: errBody}
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func rateLimitHeader(headers http.Header, name string) int {
	value, err := strconv.Atoi(headers.Get(name))
	if err != nil {
		return defaultRateLimit
	}
	return value
}

// TestAPIKey verifies the configured API key against the /api-key endpoint.
func (c *Client) TestAPIKey(ctx context.Context) (*APIKeyResponse, error) {
	var resp APIKeyResponse
	if err := c.doQuery(ctx, apiRequest{path: "v1/api-key"}, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
