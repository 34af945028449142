// internal/sources/hunter/client_test.go
package hunter

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"huntx/internal/core/ports"
	"huntx/internal/platform/errors"
	"huntx/internal/platform/logx"
	"huntx/internal/testutil"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client := NewClientWithConfig("test-key", logx.NewSilent(), Config{
		BaseURL: server.URL,
	})
	return client
}

func TestDomainSearch(t *testing.T) {
	var gotPath, gotDomain, gotKey string

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotDomain = r.URL.Query().Get("domain")
		gotKey = r.URL.Query().Get("api_key")

		fmt.Fprint(w, `{
			"data": {
				"domain": "example.com",
				"pattern": "{first}.{last}",
				"organization": "Example Inc",
				"emails": [
					{"value": "ada@example.com", "type": "personal", "confidence": 92,
					 "first_name": "Ada", "last_name": "Lovelace", "position": "Engineer"},
					{"value": "info@example.com", "type": "generic", "confidence": 80}
				]
			}
		}`)
	})

	record, err := client.DomainSearch(context.Background(), "example.com")

	testutil.AssertNoError(t, err, "domain search")
	testutil.AssertEqual(t, gotPath, "/domain-search", "endpoint")
	testutil.AssertEqual(t, gotDomain, "example.com", "domain param")
	testutil.AssertEqual(t, gotKey, "test-key", "api key param")

	testutil.AssertEqual(t, record.Pattern, "{first}.{last}", "pattern")
	testutil.AssertEqual(t, record.Organization, "Example Inc", "organization")
	testutil.AssertEqual(t, record.EmailCount, 2, "email count from list length")
	testutil.AssertEqual(t, record.Emails[0].Value, "ada@example.com", "first email")
	testutil.AssertEqual(t, record.Emails[0].Confidence, 92, "first email confidence")
}

func TestDomainSearchCountsFromListNotCounter(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		// emails_count can be zero or missing; the list is authoritative
		fmt.Fprint(w, `{"data": {"domain": "example.com", "emails_count": 0,
			"emails": [{"value": "a@example.com", "type": "generic", "confidence": 50}]}}`)
	})

	record, err := client.DomainSearch(context.Background(), "example.com")

	testutil.AssertNoError(t, err, "domain search")
	testutil.AssertEqual(t, record.EmailCount, 1, "email count")
}

func TestEmailFinderSplitsFullName(t *testing.T) {
	tests := []struct {
		name      string
		query     ports.FinderQuery
		wantFirst string
		wantLast  string
	}{
		{
			name:      "full name overrides explicit names",
			query:     ports.FinderQuery{FirstName: "X", LastName: "Y", FullName: "Ada King Lovelace"},
			wantFirst: "Ada",
			wantLast:  "Lovelace",
		},
		{
			name:      "single token full name sends no names",
			query:     ports.FinderQuery{FirstName: "Ada", LastName: "Lovelace", FullName: "Ada"},
			wantFirst: "",
			wantLast:  "",
		},
		{
			name:      "explicit names only",
			query:     ports.FinderQuery{FirstName: " Grace ", LastName: " Hopper "},
			wantFirst: "Grace",
			wantLast:  "Hopper",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotFirst, gotLast string
			var hasFirst, hasLast bool

			client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				gotFirst = r.URL.Query().Get("first_name")
				gotLast = r.URL.Query().Get("last_name")
				hasFirst = r.URL.Query().Has("first_name")
				hasLast = r.URL.Query().Has("last_name")
				fmt.Fprint(w, `{"data": {"email": "found@example.com", "confidence": 70}}`)
			})

			query := tt.query
			query.Domain = "example.com"
			record, err := client.EmailFinder(context.Background(), query)

			testutil.AssertNoError(t, err, "email finder")
			testutil.AssertEqual(t, gotFirst, tt.wantFirst, "first_name param")
			testutil.AssertEqual(t, gotLast, tt.wantLast, "last_name param")
			testutil.AssertEqual(t, hasFirst, tt.wantFirst != "", "first_name presence")
			testutil.AssertEqual(t, hasLast, tt.wantLast != "", "last_name presence")
			testutil.AssertEqual(t, record.Email, "found@example.com", "found email")
			testutil.AssertEqual(t, record.Confidence, 70, "confidence")
		})
	}
}

func TestEmailFinderScoreFallback(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"data": {"email": "found@example.com", "score": 64}}`)
	})

	record, err := client.EmailFinder(context.Background(), ports.FinderQuery{Domain: "example.com"})

	testutil.AssertNoError(t, err, "email finder")
	testutil.AssertEqual(t, record.Confidence, 64, "score used as confidence")
}

func TestEmailVerifier(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		testutil.AssertEqual(t, r.URL.Path, "/email-verifier", "endpoint")
		testutil.AssertEqual(t, r.URL.Query().Get("email"), "ada@example.com", "email param")

		fmt.Fprint(w, `{"data": {"email": "ada@example.com", "result": "deliverable",
			"score": 97, "regexp": true, "mx_records": true, "smtp_check": true,
			"sources": [{"domain": "example.com", "uri": "http://example.com/team"}]}}`)
	})

	record, err := client.EmailVerifier(context.Background(), "ada@example.com")

	testutil.AssertNoError(t, err, "email verifier")
	testutil.AssertEqual(t, record.Result, "deliverable", "result")
	testutil.AssertEqual(t, record.Score, 97, "score")
	testutil.AssertTrue(t, record.MXRecords, "mx records")
	testutil.AssertEqual(t, len(record.Sources), 1, "sources")
	testutil.AssertEqual(t, record.Sources[0].Domain, "example.com", "source domain")
}

func TestVerifierAbsentFieldsDefault(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"data": {"result": "risky"}}`)
	})

	record, err := client.EmailVerifier(context.Background(), "ada@example.com")

	testutil.AssertNoError(t, err, "email verifier")
	testutil.AssertEqual(t, record.Email, "ada@example.com", "email falls back to the request")
	testutil.AssertEqual(t, record.Score, 0, "absent score")
	testutil.AssertFalse(t, record.Disposable, "absent disposable")
	testutil.AssertEqual(t, len(record.Sources), 0, "absent sources")
}

func TestRemoteErrorStatuses(t *testing.T) {
	tests := []struct {
		name   string
		status int
		want   error
	}{
		{"unauthorized", http.StatusUnauthorized, errors.ErrUnauthorized},
		{"rate limited", http.StatusTooManyRequests, errors.ErrRateLimit},
		{"not found", http.StatusNotFound, errors.ErrNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
			})

			_, err := client.DomainSearch(context.Background(), "example.com")

			testutil.AssertError(t, err, "remote error")
			testutil.AssertTrue(t, errors.Is(err, tt.want), "sentinel mapping")
		})
	}
}

func TestMalformedResponseIsProtocolError(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"not json", `<html>oops</html>`},
		{"missing data", `{"meta": {}}`},
		{"null data", `{"data": null}`},
		{"wrong shape", `{"data": ["not", "an", "object"]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				fmt.Fprint(w, tt.body)
			})

			_, err := client.DomainSearch(context.Background(), "example.com")

			testutil.AssertError(t, err, "protocol error")
			testutil.AssertTrue(t, errors.IsInvalidResponse(err), "sentinel mapping")
		})
	}
}
