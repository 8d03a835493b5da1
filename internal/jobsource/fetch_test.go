package jobsource

import (
	"compress/gzip"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go.uber.org/zap"
)

const jobPage = `<html><head><title>Job</title><style>body { color: red; }</style></head>
<body><script>var tracking = "python";</script>
<h1>Software Engineer</h1><p>Requirements:</p><ul><li>Python   and SQL</li><li>3+ years</li></ul>
</body></html>`

func TestFetchHTML(t *testing.T) {
	var gotAgent string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAgent = r.Header.Get("User-Agent")
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write([]byte(jobPage))
	}))
	defer server.Close()

	text, err := New(zap.NewNop()).Fetch(context.Background(), server.URL)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	expected := "Software Engineer\nRequirements:\nPython and SQL\n3+ years"
	if text != expected {
		t.Fatalf("expected %q, got %q", expected, text)
	}
	if gotAgent != userAgent {
		t.Fatalf("expected user agent %q, got %q", userAgent, gotAgent)
	}
}

func TestFetchGzip(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.Contains(r.Header.Get("Accept-Encoding"), "gzip") {
			t.Errorf("expected gzip to be accepted")
		}
		w.Header().Set("Content-Type", "text/html")
		w.Header().Set("Content-Encoding", "gzip")
		gz := gzip.NewWriter(w)
		_, _ = gz.Write([]byte(jobPage))
		_ = gz.Close()
	}))
	defer server.Close()

	text, err := New(zap.NewNop()).Fetch(context.Background(), server.URL)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(text, "Python and SQL") {
		t.Fatalf("unexpected text: %q", text)
	}
}

func TestFetchPlainText(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain")
		_, _ = w.Write([]byte("  Docker <and> Kubernetes  \n\n"))
	}))
	defer server.Close()

	text, err := New(zap.NewNop()).Fetch(context.Background(), server.URL)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if text != "Docker <and> Kubernetes" {
		t.Fatalf("unexpected text: %q", text)
	}
}

func TestFetchErrors(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/missing":
			http.NotFound(w, r)
		case "/empty":
			w.Header().Set("Content-Type", "text/html")
			_, _ = w.Write([]byte("<html><body><script>x()</script></body></html>"))
		}
	}))
	defer server.Close()

	client := New(zap.NewNop())

	if _, err := client.Fetch(context.Background(), server.URL+"/missing"); err == nil || !strings.Contains(err.Error(), "bad status") {
		t.Fatalf("expected bad status error, got %v", err)
	}

	if _, err := client.Fetch(context.Background(), server.URL+"/empty"); !errors.Is(err, ErrEmpty) {
		t.Fatalf("expected ErrEmpty, got %v", err)
	}

	if _, err := client.Fetch(context.Background(), "ftp://example.com/job"); err == nil {
		t.Fatalf("expected invalid url error")
	}
}
