package fetcher

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"gamepulse/internal/usecase/ingest"
)

const articleHTML = `<!DOCTYPE html>
<html>
<head><title>Patch 1.2 deep dive</title></head>
<body>
  <nav>Home | News | Reviews</nav>
  <article>
    <h1>Patch 1.2 deep dive</h1>
    <p>The balance patch reworks twelve weapons and reshapes the late game.
    Developers spent three months iterating on community feedback before
    shipping the final tuning pass to all platforms.</p>
    <p>Ranked play resets one week after the patch goes live.</p>
  </article>
  <footer>Copyright</footer>
</body>
</html>`

// testConfig allows loopback addresses so httptest servers can be fetched.
func testConfig() ContentFetchConfig {
	cfg := DefaultConfig()
	cfg.DenyPrivateIPs = false
	return cfg
}

func TestReadabilityFetcher_FetchContent(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte(articleHTML))
	}))
	defer srv.Close()

	f := NewReadabilityFetcher(testConfig())

	content, err := f.FetchContent(context.Background(), srv.URL+"/article")
	if err != nil {
		t.Fatalf("FetchContent: %v", err)
	}

	if !strings.Contains(content, "balance patch reworks twelve weapons") {
		t.Errorf("article text missing from extracted content: %q", content)
	}
	if strings.Contains(content, "<p>") {
		t.Error("extracted content still contains HTML tags")
	}
}

func TestReadabilityFetcher_NonOKStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gone", http.StatusNotFound)
	}))
	defer srv.Close()

	f := NewReadabilityFetcher(testConfig())

	if _, err := f.FetchContent(context.Background(), srv.URL); err == nil {
		t.Fatal("expected error for 404 response")
	}
}

func TestReadabilityFetcher_BodyTooLarge(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte("<html><body>" + strings.Repeat("a", 4096) + "</body></html>"))
	}))
	defer srv.Close()

	cfg := testConfig()
	cfg.MaxBodySize = 1024
	f := NewReadabilityFetcher(cfg)

	_, err := f.FetchContent(context.Background(), srv.URL)
	if !errors.Is(err, ingest.ErrBodyTooLarge) {
		t.Fatalf("err = %v, want ErrBodyTooLarge", err)
	}
}

func TestReadabilityFetcher_RejectsPrivateURLWhenEnabled(t *testing.T) {
	f := NewReadabilityFetcher(DefaultConfig())

	_, err := f.FetchContent(context.Background(), "http://localhost/article")
	if !errors.Is(err, ingest.ErrPrivateIP) {
		t.Fatalf("err = %v, want ErrPrivateIP", err)
	}
}
