package fetch

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"

	"go.uber.org/zap"

	"garner/internal/domain"
)

// DefaultTimeout is the overall connect deadline for one path.
const DefaultTimeout = 120 * time.Second

// defaultAttempts bounds retries of the transient negotiation failure.
const defaultAttempts = 3

// Options tune a Client. Zero values select the defaults.
type Options struct {
	Timeout  time.Duration // overall per-path deadline
	Attempts int           // transient-failure attempt budget
}

// Client fetches documents over a network boundary dialer.
type Client struct {
	http     *http.Client
	logger   *zap.Logger
	timeout  time.Duration
	attempts int
}

// Result is the per-path outcome of a multi-path fetch. Exactly one of
// Body and Err is meaningful.
type Result struct {
	Path string
	Body []byte
	Err  error
}

// New builds a client over dialer. All requests in this client's
// lifetime share one routing context where the network layer permits
// reuse.
func New(dialer domain.Dialer, logger *zap.Logger, opts Options) *Client {
	if logger == nil {
		logger = zap.NewNop()
	}
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	attempts := opts.Attempts
	if attempts <= 0 {
		attempts = defaultAttempts
	}
	return &Client{
		http: &http.Client{
			Transport: &http.Transport{DialContext: dialer.DialContext},
		},
		logger:   logger,
		timeout:  timeout,
		attempts: attempts,
	}
}

// Fetch retrieves one path from addr. The transient negotiation failure
// is retried within the attempt budget and the overall deadline; any
// other failure surfaces immediately. The deadline bounds the whole
// request, body transfer included, so a transfer still in progress at
// the deadline fails with ErrFetchTimeout rather than running on.
func (c *Client) Fetch(ctx context.Context, addr domain.ServiceAddress, path string) ([]byte, error) {
	deadline := time.Now().Add(c.timeout)
	ctx, cancel := context.WithDeadline(ctx, deadline)
	defer cancel()

	budget := newRetryBudget(c.attempts, deadline)
	var lastErr error
	for budget.spend(time.Now()) {
		body, err := c.do(ctx, addr, path)
		if err == nil {
			return body, nil
		}
		switch Classify(err) {
		case ClassRetryable:
			lastErr = err
			c.logger.Debug("transient negotiation failure, retrying",
				zap.String("path", path), zap.Error(err))
		case ClassTimeout:
			return nil, fmt.Errorf("%w (%s)", domain.ErrFetchTimeout, c.timeout)
		default:
			return nil, err
		}
	}
	return nil, fmt.Errorf("%w: last failure: %v", domain.ErrRetryExhausted, lastErr)
}

// FetchAll retrieves every path concurrently. Results arrive in input
// order regardless of completion order; each entry succeeds or fails
// independently.
func (c *Client) FetchAll(ctx context.Context, addr domain.ServiceAddress, paths []string) []Result {
	results := make([]Result, len(paths))
	var wg sync.WaitGroup
	for i, path := range paths {
		wg.Add(1)
		go func(i int, path string) {
			defer wg.Done()
			body, err := c.Fetch(ctx, addr, path)
			results[i] = Result{Path: path, Body: body, Err: err}
		}(i, path)
	}
	wg.Wait()
	return results
}

func (c *Client) do(ctx context.Context, addr domain.ServiceAddress, path string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, addr.URL(path), nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		io.Copy(io.Discard, resp.Body)
		return nil, domain.ErrNotFound
	case resp.StatusCode != http.StatusOK:
		io.Copy(io.Discard, resp.Body)
		return nil, fmt.Errorf("server returned %s", resp.Status)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response: %w", err)
	}
	return body, nil
}
