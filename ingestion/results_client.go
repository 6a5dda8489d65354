package ingestion

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"lotofacil/domain/entities"

	log "github.com/sirupsen/logrus"
	"github.com/tidwall/gjson"
	"golang.org/x/time/rate"
)

const (
	requestTimeout = 20 * time.Second
	maxRetries     = 2
	initialBackoff = 1 * time.Second
	maxBackoff     = 8 * time.Second
	userAgent      = "lotofacil-strategist/1.0"
)

// errNotFound marks a 404 so the fallback is not consulted for a contest that does not exist yet
var errNotFound = errors.New("not found")

// ResultsClient fetches published results from the official endpoint, falling back to a
// secondary mirror whose payload uses different field names
type ResultsClient struct {
	httpClient     *http.Client
	rateLimiter    *rate.Limiter
	primaryURL     string
	fallbackURL    string
	initialBackoff time.Duration
}

// ClientOption customises a ResultsClient
type ClientOption func(*ResultsClient)

// WithHTTPClient replaces the default HTTP client
func WithHTTPClient(client *http.Client) ClientOption {
	return func(c *ResultsClient) {
		c.httpClient = client
	}
}

// WithRetryBackoff sets the first retry delay; it doubles on every retry
func WithRetryBackoff(backoff time.Duration) ClientOption {
	return func(c *ResultsClient) {
		c.initialBackoff = backoff
	}
}

// NewResultsClient creates a client limited to ratePerSec requests per second.
// fallbackURL may be empty.
func NewResultsClient(primaryURL, fallbackURL string, ratePerSec float64, opts ...ClientOption) *ResultsClient {
	if ratePerSec <= 0 {
		ratePerSec = 1
	}

	client := &ResultsClient{
		httpClient: &http.Client{
			Timeout: requestTimeout,
		},
		rateLimiter:    rate.NewLimiter(rate.Limit(ratePerSec), 1),
		primaryURL:     strings.TrimRight(primaryURL, "/"),
		fallbackURL:    strings.TrimRight(fallbackURL, "/"),
		initialBackoff: initialBackoff,
	}
	for _, opt := range opts {
		opt(client)
	}
	return client
}

// FetchLatest returns the most recent published draw
func (c *ResultsClient) FetchLatest(ctx context.Context) (*entities.DrawResult, error) {
	return c.fetch(ctx, c.primaryURL, c.fallbackURL+"/latest", "latest")
}

// FetchContest returns one contest. A contest unknown to the primary source is reported as
// entities.ErrDrawNotFound without consulting the fallback.
func (c *ResultsClient) FetchContest(ctx context.Context, contestID int) (*entities.DrawResult, error) {
	suffix := "/" + strconv.Itoa(contestID)
	return c.fetch(ctx, c.primaryURL+suffix, c.fallbackURL+suffix, fmt.Sprintf("contest %d", contestID))
}

func (c *ResultsClient) fetch(ctx context.Context, primaryURL, fallbackURL, what string) (*entities.DrawResult, error) {
	draw, err := c.fetchFrom(ctx, primaryURL)
	if err == nil {
		return draw, nil
	}
	if errors.Is(err, errNotFound) {
		return nil, fmt.Errorf("%w: %s", entities.ErrDrawNotFound, what)
	}
	if c.fallbackURL == "" || ctx.Err() != nil {
		return nil, fmt.Errorf("failed to fetch %s: %w", what, err)
	}

	log.WithFields(log.Fields{
		"what":  what,
		"error": err,
	}).Warn("Primary results source failed, trying fallback")

	draw, fallbackErr := c.fetchFrom(ctx, fallbackURL)
	if fallbackErr != nil {
		if errors.Is(fallbackErr, errNotFound) {
			return nil, fmt.Errorf("%w: %s", entities.ErrDrawNotFound, what)
		}
		return nil, fmt.Errorf("failed to fetch %s from both sources: %w", what, errors.Join(err, fallbackErr))
	}
	return draw, nil
}

func (c *ResultsClient) fetchFrom(ctx context.Context, url string) (*entities.DrawResult, error) {
	body, err := c.doRequest(ctx, url)
	if err != nil {
		return nil, err
	}
	return ParseResultJSON(body)
}

// doRequest performs a GET with rate limiting and retries on network errors, 429 and 5xx
func (c *ResultsClient) doRequest(ctx context.Context, url string) ([]byte, error) {
	var lastErr error
	backoff := c.initialBackoff

	for attempt := 0; attempt <= maxRetries; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(backoff):
			}
			backoff = min(backoff*2, maxBackoff)
		}

		if err := c.rateLimiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("rate limiter error: %w", err)
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			return nil, fmt.Errorf("failed to create request: %w", err)
		}
		req.Header.Set("User-Agent", userAgent)
		req.Header.Set("Accept", "application/json")

		resp, err := c.httpClient.Do(req)
		if err != nil {
			lastErr = fmt.Errorf("HTTP request failed: %w", err)
			continue
		}

		body, readErr := io.ReadAll(resp.Body)
		_ = resp.Body.Close()

		switch {
		case resp.StatusCode == http.StatusOK:
			if readErr != nil {
				return nil, fmt.Errorf("failed to read response body: %w", readErr)
			}
			return body, nil
		case resp.StatusCode == http.StatusNotFound:
			return nil, errNotFound
		case resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= http.StatusInternalServerError:
			lastErr = fmt.Errorf("results source returned status %d", resp.StatusCode)
			continue
		default:
			return nil, fmt.Errorf("results source returned status %d: %s", resp.StatusCode, truncate(string(body), 200))
		}
	}

	return nil, fmt.Errorf("max retries exceeded: %w", lastErr)
}

// ParseResultJSON reads one result from either payload shape: numero/dataApuracao/listaDezenas
// or concurso/data/dezenas. Numbers may be strings ("01") or integers.
func ParseResultJSON(body []byte) (*entities.DrawResult, error) {
	if !gjson.ValidBytes(body) {
		return nil, fmt.Errorf("%w: response is not valid JSON", entities.ErrInvalidDraw)
	}
	result := gjson.ParseBytes(body)

	contest := firstExisting(result, "numero", "concurso")
	date := firstExisting(result, "dataApuracao", "data")
	numbers := firstExisting(result, "listaDezenas", "dezenas")

	if !contest.Exists() || contest.Int() <= 0 {
		return nil, fmt.Errorf("%w: missing contest number", entities.ErrInvalidDraw)
	}
	if !numbers.IsArray() {
		return nil, fmt.Errorf("%w: missing number list", entities.ErrInvalidDraw)
	}

	var values []int
	for _, value := range numbers.Array() {
		n, err := strconv.Atoi(strings.TrimSpace(value.String()))
		if err != nil {
			return nil, fmt.Errorf("%w: number %q is not an integer", entities.ErrInvalidDraw, value.String())
		}
		values = append(values, n)
	}

	return entities.NewDrawResult(int(contest.Int()), date.String(), values...)
}

func firstExisting(result gjson.Result, paths ...string) gjson.Result {
	for _, path := range paths {
		if value := result.Get(path); value.Exists() && value.Type != gjson.Null {
			return value
		}
	}
	return gjson.Result{}
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
