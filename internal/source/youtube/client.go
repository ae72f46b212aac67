// Package youtube implements the catalog client on top of the YouTube Data API v3.
package youtube

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	gobreaker "github.com/sony/gobreaker/v2"
	"golang.org/x/time/rate"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
	"google.golang.org/api/youtube/v3"

	"channel_syncer/internal/config"
	"channel_syncer/internal/domain"
	"channel_syncer/internal/metrics"
)

// maxIDsPerRequest is the API limit for id filters and page sizes.
const maxIDsPerRequest = 50

// Client talks to the Data API. Every call goes through the rate limiter, the
// circuit breaker and the retry loop, in that order.
type Client struct {
	service *youtube.Service
	limiter *rate.Limiter
	breaker *gobreaker.CircuitBreaker[any]
	timeout time.Duration
	retry   config.RetryConfig
	logger  *slog.Logger
}

func New(ctx context.Context, cfg config.YouTubeConfig, logger *slog.Logger) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, errors.New("youtube: api key required")
	}

	opts := []option.ClientOption{option.WithAPIKey(cfg.APIKey)}
	if cfg.Endpoint != "" {
		opts = append(opts, option.WithEndpoint(cfg.Endpoint))
	}

	service, err := youtube.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("create youtube service: %w", err)
	}

	return &Client{
		service: service,
		limiter: rate.NewLimiter(rate.Limit(cfg.RequestsPerSecond), max(int(cfg.RequestsPerSecond), 1)),
		breaker: newBreaker("youtube-api", cfg.CircuitBreaker, logger),
		timeout: cfg.Timeout,
		retry:   cfg.Retry,
		logger:  logger.With("source", "youtube"),
	}, nil
}

// call runs fn with rate limiting, circuit breaking and retries. Missing
// resources come back as domain.ErrNotFound, every other failure wraps
// domain.ErrUpstreamUnavailable.
func call[T any](ctx context.Context, c *Client, op string, fn func(ctx context.Context) (T, error)) (T, error) {
	var zero T
	attempts := max(c.retry.MaxAttempts, 1)

	var err error
	for attempt := 1; attempt <= attempts; attempt++ {
		if werr := c.limiter.Wait(ctx); werr != nil {
			if ctx.Err() != nil {
				return zero, ctx.Err()
			}
			return zero, fmt.Errorf("%s: %w: %w", op, domain.ErrUpstreamUnavailable, werr)
		}

		var res any
		res, err = c.breaker.Execute(func() (any, error) {
			attemptCtx, cancel := c.attemptContext(ctx)
			defer cancel()
			return fn(attemptCtx)
		})

		switch {
		case err == nil:
			metrics.UpstreamRequests.WithLabelValues(op, "success").Inc()
			v, _ := res.(T)
			return v, nil
		case isNotFound(err):
			metrics.UpstreamRequests.WithLabelValues(op, "not_found").Inc()
			return zero, fmt.Errorf("%s: %w", op, domain.ErrNotFound)
		case ctx.Err() != nil:
			metrics.UpstreamRequests.WithLabelValues(op, "canceled").Inc()
			return zero, ctx.Err()
		case isRejected(err):
			metrics.UpstreamRequests.WithLabelValues(op, "rejected").Inc()
			return zero, fmt.Errorf("%s: %w: %w", op, domain.ErrUpstreamUnavailable, err)
		}

		metrics.UpstreamRequests.WithLabelValues(op, "error").Inc()
		if !isRetryable(err) || attempt == attempts {
			break
		}

		backoff := c.calculateBackoff(attempt)
		c.logger.Warn("request failed, retrying",
			"operation", op,
			"attempt", attempt,
			"backoff", backoff,
			"error", err,
		)

		select {
		case <-ctx.Done():
			return zero, ctx.Err()
		case <-time.After(backoff):
		}
	}

	return zero, fmt.Errorf("%s: %w: %w", op, domain.ErrUpstreamUnavailable, err)
}

func (c *Client) attemptContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if c.timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, c.timeout)
}

func (c *Client) calculateBackoff(attempt int) time.Duration {
	backoff := c.retry.InitialBackoff
	for i := 1; i < attempt; i++ {
		backoff *= 2
	}
	if c.retry.MaxBackoff > 0 && backoff > c.retry.MaxBackoff {
		backoff = c.retry.MaxBackoff
	}
	return backoff
}

func isNotFound(err error) bool {
	if errors.Is(err, domain.ErrNotFound) {
		return true
	}
	var apiErr *googleapi.Error
	return errors.As(err, &apiErr) && apiErr.Code == http.StatusNotFound
}

func isRejected(err error) bool {
	return errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests)
}

// isRetryable reports whether err is worth another attempt. Quota exhaustion
// and client errors are final; throttling, server errors and transport
// failures are not.
func isRetryable(err error) bool {
	var apiErr *googleapi.Error
	if !errors.As(err, &apiErr) {
		return true
	}

	switch {
	case apiErr.Code == http.StatusTooManyRequests, apiErr.Code >= 500:
		return true
	case apiErr.Code == http.StatusForbidden:
		for _, item := range apiErr.Errors {
			if item.Reason == "rateLimitExceeded" || item.Reason == "userRateLimitExceeded" {
				return true
			}
		}
	}
	return false
}
