// Package service provides the core business service that implements
// the dependencies required by the HTTP API.
package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/sleiderink/skifinder/internal/adapters/catalog"
	"github.com/sleiderink/skifinder/internal/domain/gradient"
	"github.com/sleiderink/skifinder/internal/domain/matcher"
	"github.com/sleiderink/skifinder/internal/domain/model"
	"github.com/sleiderink/skifinder/internal/domain/types"
	"github.com/sleiderink/skifinder/pkg/logger"
	"github.com/sleiderink/skifinder/pkg/metrics"
)

// Default service configuration constants.
const (
	defaultFetchTimeout = 10 * time.Second
	defaultMaxResults   = 3
)

// ErrFetchTimeout marks a catalog fetch that exceeded its deadline, so
// the API can tell a slow upstream apart from a broken one.
var ErrFetchTimeout = errors.New("catalog fetch timed out")

// ErrNoFetcher is returned by Start when no catalog backend was wired.
var ErrNoFetcher = errors.New("no catalog fetcher configured")

// ErrNotStarted is returned when Search or Catalog is called before
// Start has wired the matcher.
var ErrNotStarted = errors.New("service not started")

// Service implements the API dependencies for the ski finder.
type Service struct {
	mu sync.RWMutex

	fetcher catalog.Fetcher
	matcher *matcher.Matcher

	fetchTimeout time.Duration
	maxResults   int
	gradientLow  *gradient.RGB
	gradientHigh *gradient.RGB

	// Stats, guarded by mu.
	started         bool
	searches        int64
	lastFetchMS     int64
	lastCatalogSize int

	logger logger.Logger
}

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithFetcher sets the catalog backend.
func WithFetcher(f catalog.Fetcher) Option {
	return func(s *Service) {
		if f != nil {
			s.fetcher = f
		}
	}
}

// WithFetchTimeout bounds one upstream catalog fetch.
func WithFetchTimeout(d time.Duration) Option {
	return func(s *Service) {
		if d > 0 {
			s.fetchTimeout = d
		}
	}
}

// WithMaxResults caps how many ranked matches a search returns.
func WithMaxResults(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.maxResults = n
		}
	}
}

// WithGradient sets the colors rendered for 0 % and 100 % matches.
func WithGradient(low, high gradient.RGB) Option {
	return func(s *Service) {
		s.gradientLow = &low
		s.gradientHigh = &high
	}
}

// WithLogger sets a custom logger for the service.
func WithLogger(l logger.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// New constructs a Service with default configuration.
func New(opts ...Option) *Service {
	s := &Service{
		fetchTimeout: defaultFetchTimeout,
		maxResults:   defaultMaxResults,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Start wires the matcher and verifies a catalog backend is present.
func (s *Service) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started {
		return nil
	}
	if s.fetcher == nil {
		return ErrNoFetcher
	}
	if s.logger == nil {
		s.logger = logger.Get()
	}

	mopts := []matcher.Option{matcher.WithLimit(s.maxResults)}
	if s.gradientLow != nil && s.gradientHigh != nil {
		mopts = append(mopts, matcher.WithGradient(*s.gradientLow, *s.gradientHigh))
	}
	s.matcher = matcher.New(mopts...)

	s.started = true
	s.logger.Info(ctx, "ski finder service started",
		logger.Int("maxResults", s.maxResults),
		logger.Duration("fetchTimeout", s.fetchTimeout),
	)
	return nil
}

// Stop shuts the service down. Idempotent; the service holds no
// background workers or open stores.
func (s *Service) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.started {
		return
	}
	s.started = false
	s.logger.Info(context.Background(), "ski finder service stopped")
}

// Search fetches a fresh catalog and ranks it against prefs. The fetch
// is bounded by the configured timeout; a deadline hit is reported as
// ErrFetchTimeout. Results are never cached across searches.
func (s *Service) Search(ctx context.Context, prefs model.Preferences) (types.SearchResult, error) {
	s.mu.Lock()
	if !s.started {
		s.mu.Unlock()
		return types.SearchResult{}, ErrNotStarted
	}
	s.searches++
	s.mu.Unlock()

	start := time.Now()
	metrics.RecordSearch()

	skis, err := s.fetchCatalog(ctx)
	if err != nil {
		return types.SearchResult{}, err
	}

	matches := s.matcher.Rank(skis, prefs)
	metrics.RecordMatchesReturned(len(matches))
	metrics.RecordSearchDuration(float64(time.Since(start).Milliseconds()))

	s.logger.Info(ctx, "search completed",
		logger.Int("catalogSize", len(skis)),
		logger.Int("matches", len(matches)),
		logger.Int("height", prefs.Height),
	)

	return types.SearchResult{
		Matches:           matches,
		RecommendedLength: matcher.RecommendedLength(prefs.Height),
		CatalogSize:       len(skis),
	}, nil
}

// Catalog exposes the normalized catalog, the proxy read surface for
// clients that want raw records rather than a ranking.
func (s *Service) Catalog(ctx context.Context) ([]model.Ski, error) {
	s.mu.RLock()
	started := s.started
	s.mu.RUnlock()
	if !started {
		return nil, ErrNotStarted
	}
	return s.fetchCatalog(ctx)
}

func (s *Service) fetchCatalog(ctx context.Context) ([]model.Ski, error) {
	fetchCtx, cancel := context.WithTimeout(ctx, s.fetchTimeout)
	defer cancel()

	start := time.Now()
	skis, err := s.fetcher.Fetch(fetchCtx)
	elapsed := time.Since(start)
	metrics.RecordCatalogFetchDuration(float64(elapsed.Milliseconds()))

	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || fetchCtx.Err() == context.DeadlineExceeded {
			metrics.RecordCatalogFetch("timeout")
			s.logger.Warn(ctx, "catalog fetch timed out", logger.Duration("after", elapsed))
			return nil, fmt.Errorf("%w: %v", ErrFetchTimeout, err)
		}
		metrics.RecordCatalogFetch("error")
		s.logger.Error(ctx, "catalog fetch failed", logger.Error(err))
		return nil, err
	}

	metrics.RecordCatalogFetch("ok")
	metrics.UpdateCatalogSize(len(skis))

	s.mu.Lock()
	s.lastFetchMS = elapsed.Milliseconds()
	s.lastCatalogSize = len(skis)
	s.mu.Unlock()

	return skis, nil
}

// GetStats returns service statistics for monitoring.
func (s *Service) GetStats() map[string]interface{} {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return map[string]interface{}{
		"started":         s.started,
		"maxResults":      s.maxResults,
		"fetchTimeoutMs":  s.fetchTimeout.Milliseconds(),
		"searches":        s.searches,
		"lastFetchMs":     s.lastFetchMS,
		"lastCatalogSize": s.lastCatalogSize,
	}
}
