package feed

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetcher_Run_Success(t *testing.T) {
	var gotUserAgent, gotAccept string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUserAgent = r.Header.Get("User-Agent")
		gotAccept = r.Header.Get("Accept")
		w.Header().Set("Content-Type", "application/xml; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("<rss/>"))
	}))
	defer server.Close()

	fetcher := NewFetcher(server.Client(), "RSS Duo/test", time.Second)
	data, err := fetcher.Run(context.Background(), server.URL)

	require.NoError(t, err)
	assert.Equal(t, "<rss/>", string(data))
	assert.Equal(t, "RSS Duo/test", gotUserAgent)
	assert.Contains(t, gotAccept, "application/rss+xml")
}

func TestFetcher_Run_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	fetcher := NewFetcher(server.Client(), "", time.Second)
	data, err := fetcher.Run(context.Background(), server.URL)

	require.Error(t, err)
	assert.Nil(t, data)

	var netErr *NetworkError
	require.True(t, errors.As(err, &netErr))
	assert.Equal(t, http.StatusInternalServerError, netErr.StatusCode)
	assert.Equal(t, server.URL, netErr.URL)
	assert.Contains(t, err.Error(), "HTTP 500")
}

func TestFetcher_Run_InvalidURL(t *testing.T) {
	fetcher := NewFetcher(nil, "", time.Second)
	data, err := fetcher.Run(context.Background(), "invalid://url")

	assert.Error(t, err)
	assert.Nil(t, data)

	var netErr *NetworkError
	assert.True(t, errors.As(err, &netErr))
	assert.Zero(t, netErr.StatusCode)
}

func TestFetcher_Run_Timeout(t *testing.T) {
	release := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer server.Close()
	defer close(release)

	fetcher := NewFetcher(server.Client(), "", 50*time.Millisecond)
	_, err := fetcher.Run(context.Background(), server.URL)

	require.Error(t, err)
	assert.True(t, errors.Is(err, context.DeadlineExceeded))
}

func TestFetcher_Run_ContextCancelled(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	fetcher := NewFetcher(server.Client(), "", time.Second)
	data, err := fetcher.Run(ctx, server.URL)

	assert.Error(t, err)
	assert.Nil(t, data)
}
