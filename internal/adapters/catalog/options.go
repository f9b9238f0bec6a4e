package catalog

import "net/http"

// Default client configuration constants.
const (
	defaultPageSize = 100
)

// settings holds knobs shared by both backend clients.
type settings struct {
	httpClient *http.Client
	baseURL    string
	pageSize   int
}

// Option applies a configuration option to a backend client.
type Option func(*settings)

// WithHTTPClient sets a custom HTTP client, e.g. one with a transport
// suited to tests.
func WithHTTPClient(c *http.Client) Option {
	return func(s *settings) {
		if c != nil {
			s.httpClient = c
		}
	}
}

// WithBaseURL overrides the upstream base URL. Mainly for tests
// pointing at a local server.
func WithBaseURL(u string) Option {
	return func(s *settings) {
		if u != "" {
			s.baseURL = u
		}
	}
}

// WithPageSize sets how many records are requested per page.
func WithPageSize(n int) Option {
	return func(s *settings) {
		if n > 0 {
			s.pageSize = n
		}
	}
}

func newSettings(baseURL string, opts ...Option) settings {
	s := settings{
		httpClient: http.DefaultClient,
		baseURL:    baseURL,
		pageSize:   defaultPageSize,
	}
	for _, opt := range opts {
		opt(&s)
	}
	return s
}
