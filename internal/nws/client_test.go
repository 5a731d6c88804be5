package nws

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"weather-gateway/internal/diag"
)

func TestFetchSuccess(t *testing.T) {
	var gotUserAgent, gotAccept string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUserAgent = r.Header.Get("User-Agent")
		gotAccept = r.Header.Get("Accept")
		w.Write([]byte(`{"features":[{"properties":{"event":"Flood Warning"}}]}`))
	}))
	defer server.Close()

	client := NewClient(Config{BaseURL: server.URL})
	scope := diag.NewScope(nil)

	result := Fetch[AlertsResponse](context.Background(), client, server.URL+"/alerts?area=CA", scope)

	require.True(t, result.OK)
	require.Len(t, result.Body.Features, 1)
	assert.Equal(t, "Flood Warning", result.Body.Features[0].Properties.Event)
	assert.Equal(t, DefaultUserAgent, gotUserAgent)
	assert.Equal(t, DefaultAccept, gotAccept)
	assert.Zero(t, scope.Len(), "a successful fetch appends nothing")
}

func TestFetchNon2xxStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "Not Found", http.StatusNotFound)
	}))
	defer server.Close()

	client := NewClient(Config{BaseURL: server.URL})
	scope := diag.NewScope(nil)

	result := Fetch[AlertsResponse](context.Background(), client, server.URL+"/alerts?area=ZZ", scope)

	assert.False(t, result.OK)
	entries := scope.PeekLast(10)
	require.Len(t, entries, 1)
	assert.Contains(t, entries[0].Message, "404")
	assert.Contains(t, entries[0].Message, "Not Found")
}

func TestFetchMalformedBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("this is not json"))
	}))
	defer server.Close()

	client := NewClient(Config{BaseURL: server.URL})
	scope := diag.NewScope(nil)

	result := Fetch[AlertsResponse](context.Background(), client, server.URL, scope)

	assert.False(t, result.OK)
	entries := scope.PeekLast(10)
	require.Len(t, entries, 1)
	assert.Contains(t, entries[0].Message, "parse")
}

func TestFetchConnectionFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := server.URL
	server.Close()

	client := NewClient(Config{BaseURL: url})
	scope := diag.NewScope(nil)

	result := Fetch[AlertsResponse](context.Background(), client, url, scope)

	assert.False(t, result.OK)
	entries := scope.PeekLast(10)
	require.Len(t, entries, 1)
	assert.Contains(t, entries[0].Message, "Request failed")
}

// blockingTransport never responds; it waits for the request context to be
// canceled and records that the cancellation actually reached the
// transport, proving the timeout releases the underlying call.
type blockingTransport struct {
	canceled chan struct{}
}

func (bt *blockingTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	<-req.Context().Done()
	close(bt.canceled)
	return nil, req.Context().Err()
}

func TestFetchTimeoutCancelsRequest(t *testing.T) {
	transport := &blockingTransport{canceled: make(chan struct{})}
	client := NewClient(Config{
		BaseURL:   "http://upstream.invalid",
		Timeout:   20 * time.Millisecond,
		Transport: transport,
	})
	scope := diag.NewScope(nil)

	result := Fetch[AlertsResponse](context.Background(), client, "http://upstream.invalid/alerts", scope)

	assert.False(t, result.OK)

	select {
	case <-transport.canceled:
	case <-time.After(time.Second):
		t.Fatal("timeout did not cancel the in-flight request")
	}

	entries := scope.PeekLast(10)
	require.Len(t, entries, 1, "timeout appends exactly one entry")
	assert.Contains(t, entries[0].Message, "timed out")
}

func TestFetchExternalCancellation(t *testing.T) {
	transport := &blockingTransport{canceled: make(chan struct{})}
	client := NewClient(Config{
		BaseURL:   "http://upstream.invalid",
		Transport: transport,
	})
	scope := diag.NewScope(nil)

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(10 * time.Millisecond)
		cancel()
	}()

	result := Fetch[AlertsResponse](ctx, client, "http://upstream.invalid/alerts", scope)

	assert.False(t, result.OK)
	entries := scope.PeekLast(10)
	require.Len(t, entries, 1)
	assert.Contains(t, entries[0].Message, "canceled")
}

func TestFetchMakesExactlyOneAttempt(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		http.Error(w, "Service Unavailable", http.StatusServiceUnavailable)
	}))
	defer server.Close()

	client := NewClient(Config{BaseURL: server.URL})
	scope := diag.NewScope(nil)

	result := Fetch[AlertsResponse](context.Background(), client, server.URL, scope)

	assert.False(t, result.OK)
	assert.Equal(t, int32(1), calls.Load())
}

func TestURLBuilders(t *testing.T) {
	client := NewClient(Config{})

	assert.Equal(t, "https://api.weather.gov/alerts?area=CA", client.AlertsURL("CA"))
	assert.Equal(t, "https://api.weather.gov/points/40.7128,-74.0060", client.PointsURL(40.7128, -74.006))

	trimmed := NewClient(Config{BaseURL: "http://localhost:8080/"})
	assert.False(t, strings.Contains(trimmed.AlertsURL("TX"), "//alerts"))
}
