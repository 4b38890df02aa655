package crawler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestFetcher(t *testing.T) *CollyFetcher {
	t.Helper()

	cfg := testConfig()
	cfg.RequestTimeout = 2 * time.Second
	f, err := NewCollyFetcher(cfg, zap.NewNop())
	require.NoError(t, err)
	return f
}

func TestCollyFetcherFetch(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte("<html><head><title>ok</title></head><body>hi</body></html>"))
	}))
	defer srv.Close()

	resp, err := newTestFetcher(t).Fetch(context.Background(), srv.URL)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Contains(t, string(resp.Body), "<title>ok</title>")
	require.Equal(t, "text/html", resp.Headers.Get("Content-Type"))
}

func TestCollyFetcherFetchServerError(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "down", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	_, err := newTestFetcher(t).Fetch(context.Background(), srv.URL)
	require.Error(t, err)
}

func TestCollyFetcherCanceledContextSkipsRequest(t *testing.T) {
	t.Parallel()

	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(_ http.ResponseWriter, _ *http.Request) {
		hits.Add(1)
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := newTestFetcher(t).Fetch(ctx, srv.URL)
	require.ErrorIs(t, err, context.Canceled)
	require.Equal(t, int32(0), hits.Load(), "canceled fetch must never reach the server")
}
