package fetch_test

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"garner/internal/domain"
	"garner/internal/fetch"
)

const testAddr = domain.ServiceAddress("2gzyxa5ihm7nsggfxnu52rck2vv4rvmdlkiu3zzui5du4xyclen53wid.onion")

// dialerFunc adapts a function to domain.Dialer.
type dialerFunc func(ctx context.Context, network, address string) (net.Conn, error)

func (f dialerFunc) DialContext(ctx context.Context, network, address string) (net.Conn, error) {
	return f(ctx, network, address)
}

// loopbackDialer routes every dial to a local test server, standing in
// for the anonymous network.
func loopbackDialer(t *testing.T, ts *httptest.Server) domain.Dialer {
	t.Helper()
	return dialerFunc(func(ctx context.Context, network, address string) (net.Conn, error) {
		var d net.Dialer
		return d.DialContext(ctx, "tcp", ts.Listener.Addr().String())
	})
}

func TestFetch_Success(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintf(w, "body of %s", r.URL.Path)
	}))
	defer ts.Close()

	c := fetch.New(loopbackDialer(t, ts), zap.NewNop(), fetch.Options{})
	body, err := c.Fetch(context.Background(), testAddr, "/index.txt")
	require.NoError(t, err)
	require.Equal(t, "body of /index.txt", string(body))
}

func TestFetch_NotFound(t *testing.T) {
	ts := httptest.NewServer(http.NotFoundHandler())
	defer ts.Close()

	c := fetch.New(loopbackDialer(t, ts), zap.NewNop(), fetch.Options{})
	_, err := c.Fetch(context.Background(), testAddr, "/missing")
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestFetch_TransientExhaustsBudgetBeforeDeadline(t *testing.T) {
	var dials atomic.Int32
	dialer := dialerFunc(func(ctx context.Context, network, address string) (net.Conn, error) {
		dials.Add(1)
		return nil, fmt.Errorf("%w: socks handshake", domain.ErrTransientNegotiation)
	})

	deadline := 5 * time.Second
	c := fetch.New(dialer, zap.NewNop(), fetch.Options{Timeout: deadline, Attempts: 3})

	start := time.Now()
	_, err := c.Fetch(context.Background(), testAddr, "/")
	elapsed := time.Since(start)

	require.ErrorIs(t, err, domain.ErrRetryExhausted)
	require.EqualValues(t, 3, dials.Load(), "must spend exactly the attempt budget")
	require.Less(t, elapsed, deadline, "must return well before the overall deadline")
}

func TestFetch_TransientRecovery(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, "recovered")
	}))
	defer ts.Close()

	var dials atomic.Int32
	dialer := dialerFunc(func(ctx context.Context, network, address string) (net.Conn, error) {
		if dials.Add(1) < 3 {
			return nil, fmt.Errorf("%w: socks handshake", domain.ErrTransientNegotiation)
		}
		var d net.Dialer
		return d.DialContext(ctx, "tcp", ts.Listener.Addr().String())
	})

	c := fetch.New(dialer, zap.NewNop(), fetch.Options{Attempts: 3})
	body, err := c.Fetch(context.Background(), testAddr, "/")
	require.NoError(t, err)
	require.Equal(t, "recovered", string(body))
}

func TestFetch_TerminalFailureNotRetried(t *testing.T) {
	var dials atomic.Int32
	dialer := dialerFunc(func(ctx context.Context, network, address string) (net.Conn, error) {
		dials.Add(1)
		return nil, errors.New("connection refused by destination host")
	})

	c := fetch.New(dialer, zap.NewNop(), fetch.Options{Attempts: 3})
	_, err := c.Fetch(context.Background(), testAddr, "/")
	require.Error(t, err)
	require.NotErrorIs(t, err, domain.ErrRetryExhausted)
	require.EqualValues(t, 1, dials.Load(), "terminal failures must surface immediately")
}

func TestFetch_TimeoutBounded(t *testing.T) {
	dialer := dialerFunc(func(ctx context.Context, network, address string) (net.Conn, error) {
		<-ctx.Done()
		return nil, ctx.Err()
	})

	deadline := 300 * time.Millisecond
	c := fetch.New(dialer, zap.NewNop(), fetch.Options{Timeout: deadline})

	start := time.Now()
	_, err := c.Fetch(context.Background(), testAddr, "/")
	elapsed := time.Since(start)

	require.ErrorIs(t, err, domain.ErrFetchTimeout)
	require.Less(t, elapsed, deadline+time.Second, "must not block past the deadline")
}

func TestFetchAll_OrderAndPartialFailure(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/missing" {
			http.NotFound(w, r)
			return
		}
		fmt.Fprintf(w, "body of %s", r.URL.Path)
	}))
	defer ts.Close()

	c := fetch.New(loopbackDialer(t, ts), zap.NewNop(), fetch.Options{})
	paths := []string{"/c", "/missing", "/a", "/b"}
	results := c.FetchAll(context.Background(), testAddr, paths)

	require.Len(t, results, len(paths))
	for i, res := range results {
		require.Equal(t, paths[i], res.Path, "result order must match input order")
	}
	require.NoError(t, results[0].Err)
	require.Equal(t, "body of /c", string(results[0].Body))
	require.ErrorIs(t, results[1].Err, domain.ErrNotFound)
	require.NoError(t, results[2].Err)
	require.NoError(t, results[3].Err)
}
