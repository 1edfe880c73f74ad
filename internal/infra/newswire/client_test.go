package newswire

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

const sampleResponse = `{
  "status": "ok",
  "totalResults": 2,
  "articles": [
    {
      "source": {"id": null, "name": "The Verge"},
      "title": "Big studio teases sequel",
      "description": "A teaser dropped overnight.",
      "content": "A teaser dropped overnight. Full reveal next month.",
      "url": "https://example.com/sequel",
      "urlToImage": "https://example.com/sequel.jpg",
      "publishedAt": "2025-06-02T10:00:00Z"
    },
    {
      "source": {"id": null, "name": "Polygon"},
      "title": "Indie hit sells a million",
      "description": "",
      "content": "",
      "url": "https://example.com/indie",
      "urlToImage": "",
      "publishedAt": "2025-06-01T08:30:00Z"
    }
  ]
}`

func newTestClient(t *testing.T, handler http.HandlerFunc) (*Client, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client := New(Config{
		APIKey:  "test-key",
		BaseURL: srv.URL,
	}, srv.Client())
	return client, srv
}

func TestClient_Fetch(t *testing.T) {
	var gotPath, gotKey, gotQuery string
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotKey = r.Header.Get("X-Api-Key")
		gotQuery = r.URL.Query().Get("q")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(sampleResponse))
	})

	items, err := client.Fetch(context.Background())
	if err != nil {
		t.Fatalf("Fetch: %v", err)
	}

	if gotPath != "/v2/everything" {
		t.Errorf("path = %q", gotPath)
	}
	if gotKey != "test-key" {
		t.Errorf("api key header = %q", gotKey)
	}
	if gotQuery == "" {
		t.Error("q query parameter missing")
	}

	if len(items) != 2 {
		t.Fatalf("got %d items, want 2", len(items))
	}
	first := items[0]
	if first.Title != "Big studio teases sequel" {
		t.Errorf("title = %q", first.Title)
	}
	if first.SourceName != "The Verge" {
		t.Errorf("source = %q", first.SourceName)
	}
	if first.ImageURL != "https://example.com/sequel.jpg" {
		t.Errorf("image = %q", first.ImageURL)
	}
	if first.PublishedAt.IsZero() {
		t.Error("publishedAt not parsed")
	}
}

func TestClient_FetchAPIErrorStatus(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":"error","code":"apiKeyInvalid","message":"bad key"}`))
	})

	if _, err := client.Fetch(context.Background()); err == nil {
		t.Fatal("expected error for status=error response")
	}
}

func TestClient_FetchWithoutKey(t *testing.T) {
	client := New(Config{}, http.DefaultClient)

	if _, err := client.Fetch(context.Background()); err == nil {
		t.Fatal("expected error when API key is missing")
	}
}

func TestClient_Name(t *testing.T) {
	client := New(Config{APIKey: "k"}, http.DefaultClient)
	if client.Name() != "newsapi" {
		t.Fatalf("Name() = %q", client.Name())
	}
}
