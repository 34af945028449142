// internal/platform/httpclient/httpx_test.go
package httpclient

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"huntx/internal/platform/errors"
	"huntx/internal/platform/logx"
)

func newClient(cfg Config) *Client {
	return New(cfg, logx.NewSilent())
}

func TestFetchJSONSuccess(t *testing.T) {
	var gotAccept, gotAgent string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAccept = r.Header.Get("Accept")
		gotAgent = r.Header.Get("User-Agent")
		fmt.Fprint(w, `{"ok": true}`)
	}))
	defer server.Close()

	body, err := newClient(Config{}).FetchJSON(context.Background(), server.URL)

	if err != nil {
		t.Fatalf("fetch failed: %v", err)
	}
	if string(body) != `{"ok": true}` {
		t.Errorf("body = %q", body)
	}
	if gotAccept != "application/json" {
		t.Errorf("Accept = %q", gotAccept)
	}
	if gotAgent != "HuntX/1.0" {
		t.Errorf("User-Agent = %q", gotAgent)
	}
}

func TestFetchJSONStatusMapping(t *testing.T) {
	tests := []struct {
		status int
		want   error
	}{
		{http.StatusTooManyRequests, errors.ErrRateLimit},
		{http.StatusNotFound, errors.ErrNotFound},
		{http.StatusUnauthorized, errors.ErrUnauthorized},
		{http.StatusForbidden, errors.ErrUnauthorized},
		{http.StatusServiceUnavailable, errors.ErrServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("status %d", tt.status), func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
			}))
			defer server.Close()

			_, err := newClient(Config{}).FetchJSON(context.Background(), server.URL)

			if err == nil {
				t.Fatal("expected error")
			}
			if !errors.Is(err, tt.want) {
				t.Errorf("error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestRetryOnRetryableStatus(t *testing.T) {
	var calls int32

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&calls, 1) < 3 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		fmt.Fprint(w, `{"ok": true}`)
	}))
	defer server.Close()

	client := newClient(Config{
		MaxRetries:   3,
		RetryBackoff: time.Millisecond,
	})

	body, err := client.FetchJSON(context.Background(), server.URL)

	if err != nil {
		t.Fatalf("fetch failed after retries: %v", err)
	}
	if string(body) != `{"ok": true}` {
		t.Errorf("body = %q", body)
	}
	if got := atomic.LoadInt32(&calls); got != 3 {
		t.Errorf("calls = %d, want 3", got)
	}
}

func TestSingleAttemptWhenRetriesDisabled(t *testing.T) {
	var calls int32

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	_, err := newClient(Config{MaxRetries: 0}).FetchJSON(context.Background(), server.URL)

	if err == nil {
		t.Fatal("expected error")
	}
	if got := atomic.LoadInt32(&calls); got != 1 {
		t.Errorf("calls = %d, want 1", got)
	}
}

func TestNonRetryableStatusIsNotRetried(t *testing.T) {
	var calls int32

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	client := newClient(Config{MaxRetries: 3, RetryBackoff: time.Millisecond})

	_, err := client.FetchJSON(context.Background(), server.URL)

	if err == nil {
		t.Fatal("expected error")
	}
	if !errors.IsUnauthorized(err) {
		t.Errorf("error = %v, want unauthorized", err)
	}
	if got := atomic.LoadInt32(&calls); got != 1 {
		t.Errorf("calls = %d, want 1", got)
	}
}

func TestCheckStatusOK(t *testing.T) {
	for _, status := range []int{200, 201, 204, 299} {
		resp := &http.Response{StatusCode: status}
		if err := CheckStatus(resp); err != nil {
			t.Errorf("status %d: unexpected error %v", status, err)
		}
	}
}

func TestRateLimitedRequestsAreSpaced(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{}`)
	}))
	defer server.Close()

	client := newClient(Config{RateLimit: 20, RateLimitBurst: 1}) // one token per 50ms

	start := time.Now()
	for i := 0; i < 3; i++ {
		if _, err := client.FetchJSON(context.Background(), server.URL); err != nil {
			t.Fatalf("fetch %d failed: %v", i, err)
		}
	}
	elapsed := time.Since(start)

	// first request uses the burst token, the next two wait ~50ms each
	if elapsed < 80*time.Millisecond {
		t.Errorf("requests not rate limited: took %v", elapsed)
	}
}
