package github

// Package github contains the client for the GitHub GraphQL API
// This file is the transport layer: one authorized POST per query, rate limited and circuit broken
// It knows nothing about contributions, callers decode the returned body

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"mario-graph/internal/infra/log"
	"mario-graph/internal/infra/retry"

	"github.com/sony/gobreaker"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

const (
	// GraphQLEndpoint is the public GitHub GraphQL API.
	GraphQLEndpoint = "https://api.github.com/graphql"

	defaultMaxResponseSize = 10 * 1024 * 1024
	userAgent              = "mario-graph"
)

// Options configures NewClient. Zero values fall back to defaults.
type Options struct {
	Endpoint        string
	Token           string
	Timeout         time.Duration // 0 leaves the transport default (no client timeout)
	MaxRetries      int
	MaxResponseSize int64
}

type Client struct {
	endpoint        string
	token           string
	httpClient      *http.Client
	rateLimiter     *rate.Limiter
	circuitBreaker  *gobreaker.CircuitBreaker
	retry           retry.Options
	maxResponseSize int64
}

type graphQLRequest struct {
	Query     string                 `json:"query"`
	Variables map[string]interface{} `json:"variables,omitempty"`
}

func NewClient(opts Options) *Client {
	endpoint := opts.Endpoint
	if endpoint == "" {
		endpoint = GraphQLEndpoint
	}
	maxResponseSize := opts.MaxResponseSize
	if maxResponseSize <= 0 {
		maxResponseSize = defaultMaxResponseSize
	}

	circuitBreaker := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "GitHubGraphQL",
		MaxRequests: 1,
		Interval:    60 * time.Second,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures > 3
		},
	})

	return &Client{
		endpoint:        endpoint,
		token:           opts.Token,
		rateLimiter:     rate.NewLimiter(rate.Limit(5), 5),
		circuitBreaker:  circuitBreaker,
		maxResponseSize: maxResponseSize,
		retry: retry.Options{
			MaxRetries: opts.MaxRetries,
			BaseDelay:  500 * time.Millisecond,
			MaxDelay:   10 * time.Second,
			Backoff:    2.0,
		},
		httpClient: &http.Client{Timeout: opts.Timeout},
	}
}

// Query posts a GraphQL document and returns the raw 2xx response body.
// A non-2xx status is returned as *retry.HTTPError.
func (c *Client) Query(ctx context.Context, query string, variables map[string]interface{}) ([]byte, error) {
	requestID := log.GenerateRequestID()
	startTime := time.Now()

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context cancelled: %w", err)
	}

	payload, err := json.Marshal(graphQLRequest{Query: query, Variables: variables})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal GraphQL request: %w", err)
	}

	var respBody []byte
	err = retry.Do(ctx, c.retry, func() error {
		if err := c.rateLimiter.Wait(ctx); err != nil {
			return fmt.Errorf("rate limiter wait failed: %w", err)
		}
		body, err := c.circuitBreaker.Execute(func() (interface{}, error) {
			return c.post(ctx, requestID, payload, startTime)
		})
		if err != nil {
			return err
		}
		respBody = body.([]byte)
		return nil
	})
	if err != nil {
		return nil, err
	}

	log.LogDebug("GraphQL query completed",
		zap.String("request_id", requestID),
		zap.Int64("duration_ms", time.Since(startTime).Milliseconds()),
		zap.Int("bytes", len(respBody)))

	return respBody, nil
}

func (c *Client) post(ctx context.Context, requestID string, payload []byte, startTime time.Time) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	setHeaders(req, c.token)

	log.LogRequest(requestID, req.Method, c.endpoint)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.LogResponse(requestID, 0, time.Since(startTime).Milliseconds(), zap.String("endpoint", c.endpoint), zap.Error(err))
		return nil, fmt.Errorf("failed to perform request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, c.maxResponseSize))
	duration := time.Since(startTime).Milliseconds()
	if err != nil {
		log.LogResponse(requestID, resp.StatusCode, duration, zap.String("endpoint", c.endpoint), zap.Error(err))
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	log.LogResponse(requestID, resp.StatusCode, duration, zap.String("endpoint", c.endpoint))

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &retry.HTTPError{
			StatusCode: resp.StatusCode,
			Body:       body,
			RetryAfter: retry.ParseRetryAfter(resp.Header.Get("Retry-After")),
		}
	}
	return body, nil
}

func setHeaders(req *http.Request, token string) {
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", userAgent)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
}
