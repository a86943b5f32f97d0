package loops

import (
	"net/http"
	"time"

	"github.com/rs/zerolog"
)

// Option configures a Client.
type Option func(*clientOptions)

// clientOptions holds configuration options for the Client.
type clientOptions struct {
	baseURL    string
	timeout    time.Duration
	userAgent  string
	httpClient *http.Client
	logger     zerolog.Logger
}

func defaultOptions() clientOptions {
	return clientOptions{
		baseURL: defaultBaseURL,
		timeout: 30 * time.Second,
		logger:  zerolog.Nop(),
	}
}

// WithBaseURL points the client at a different API origin, typically a
// test server. A trailing slash is optional.
func WithBaseURL(baseURL string) Option {
	return func(o *clientOptions) {
		if baseURL != "" {
			o.baseURL = baseURL
		}
	}
}

// WithTimeout sets the HTTP client timeout. Ignored when a custom
// http.Client is supplied via WithHTTPClient.
func WithTimeout(timeout time.Duration) Option {
	return func(o *clientOptions) {
		if timeout > 0 {
			o.timeout = timeout
		}
	}
}

// WithHTTPClient supplies a custom http.Client, e.g. one with a proxy or
// an instrumented transport. The client is used as-is; any timeout must
// be configured on it directly.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(o *clientOptions) {
		if httpClient != nil {
			o.httpClient = httpClient
		}
	}
}

// WithUserAgent sets a custom User-Agent header on every request.
func WithUserAgent(userAgent string) Option {
	return func(o *clientOptions) {
		o.userAgent = userAgent
	}
}

// WithLogger attaches a zerolog logger for debug-level request tracing.
// The default logger discards everything.
func WithLogger(logger zerolog.Logger) Option {
	return func(o *clientOptions) {
		o.logger = logger
	}
}
