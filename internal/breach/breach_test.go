package breach

import (
	"context"
	"crypto/sha1"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func testClient(url string) *Client {
	return &Client{baseURL: url, client: &http.Client{Timeout: time.Second}}
}

func digestParts(password string) (string, string) {
	digest := fmt.Sprintf("%X", sha1.Sum([]byte(password)))
	return digest[:5], digest[5:]
}

func TestCountFound(t *testing.T) {
	prefix, suffix := digestParts("password")

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/range/"+prefix {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		fmt.Fprintf(w, "0018A45C4D1DEF81644B54AB7F969B88D65:3\r\n%s:3861493\r\n00D4F6E8FA6EECAD2A3AA415EEC418D38EC:2\r\n", suffix)
	}))
	defer server.Close()

	count, err := testClient(server.URL).Count(context.Background(), "password")
	if err != nil {
		t.Fatal(err)
	}
	if count != 3861493 {
		t.Errorf("expected count 3861493, got %d", count)
	}
}

func TestCountNotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, "0018A45C4D1DEF81644B54AB7F969B88D65:3\r\n")
	}))
	defer server.Close()

	count, err := testClient(server.URL).Count(context.Background(), "xK9#mQ2$vLp7")
	if err != nil {
		t.Fatal(err)
	}
	if count != 0 {
		t.Errorf("expected count 0, got %d", count)
	}
}

func TestCountLowercaseSuffixMatch(t *testing.T) {
	_, suffix := digestParts("password")

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintf(w, "%s:42\r\n", strings.ToLower(suffix))
	}))
	defer server.Close()

	count, err := testClient(server.URL).Count(context.Background(), "password")
	if err != nil {
		t.Fatal(err)
	}
	if count != 42 {
		t.Errorf("expected count 42, got %d", count)
	}
}

func TestCountServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	if _, err := testClient(server.URL).Count(context.Background(), "password"); err == nil {
		t.Error("expected error for non-200 response")
	}
}

func TestCountUnreachable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	if _, err := testClient(server.URL).Count(context.Background(), "password"); err == nil {
		t.Error("expected error for unreachable server")
	}
}

func TestCountContextCanceled(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, "AAAA:1\r\n")
	}))
	defer server.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := testClient(server.URL).Count(ctx, "password"); err == nil {
		t.Error("expected error for canceled context")
	}
}

func TestNewClientDefaults(t *testing.T) {
	c := NewClient()
	if c.baseURL != defaultBaseURL {
		t.Errorf("unexpected base URL: %s", c.baseURL)
	}
	if c.client.Timeout == 0 {
		t.Error("expected a request timeout")
	}
}
