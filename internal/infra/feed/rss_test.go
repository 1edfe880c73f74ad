package feed

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

const sampleFeed = `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0">
  <channel>
    <title>Gaming Wire</title>
    <item>
      <title>New expansion announced</title>
      <link>https://example.com/expansion</link>
      <description>&lt;p&gt;The studio &lt;b&gt;confirmed&lt;/b&gt; a new expansion.&lt;/p&gt;</description>
      <pubDate>Mon, 02 Jun 2025 10:00:00 GMT</pubDate>
      <enclosure url="https://example.com/expansion.jpg" type="image/jpeg" length="1000"/>
    </item>
    <item>
      <title>Patch notes 1.2</title>
      <link>https://example.com/patch</link>
      <description>&lt;img src="https://example.com/patch.png"/&gt;Balance changes across the board.</description>
      <pubDate>Sun, 01 Jun 2025 09:00:00 GMT</pubDate>
    </item>
  </channel>
</rss>`

func TestRSSSource_Fetch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/rss+xml")
		_, _ = w.Write([]byte(sampleFeed))
	}))
	defer srv.Close()

	src := NewRSSSource("gaming-wire", srv.URL, srv.Client())

	items, err := src.Fetch(context.Background())
	if err != nil {
		t.Fatalf("Fetch: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("got %d items, want 2", len(items))
	}

	first := items[0]
	if first.Title != "New expansion announced" {
		t.Errorf("title = %q", first.Title)
	}
	if first.URL != "https://example.com/expansion" {
		t.Errorf("url = %q", first.URL)
	}
	if first.SourceName != "gaming-wire" {
		t.Errorf("source = %q", first.SourceName)
	}
	if first.ImageURL != "https://example.com/expansion.jpg" {
		t.Errorf("enclosure image not picked up, got %q", first.ImageURL)
	}
	if first.Description != "The studio confirmed a new expansion." {
		t.Errorf("description not stripped to plain text, got %q", first.Description)
	}
	if first.PublishedAt.IsZero() {
		t.Error("publishedAt not parsed")
	}

	second := items[1]
	if second.ImageURL != "https://example.com/patch.png" {
		t.Errorf("inline image not extracted, got %q", second.ImageURL)
	}
}

func TestRSSSource_Name(t *testing.T) {
	src := NewRSSSource("ign", "https://example.com/feed", http.DefaultClient)
	if src.Name() != "ign" {
		t.Fatalf("Name() = %q", src.Name())
	}
}

func TestFirstImageURL(t *testing.T) {
	cases := []struct {
		name string
		html string
		want string
	}{
		{"no image", "<p>plain</p>", ""},
		{"single image", `<p><img src="https://x/img.png"/></p>`, "https://x/img.png"},
		{"first of several", `<img src="https://x/a.png"/><img src="https://x/b.png"/>`, "https://x/a.png"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := firstImageURL(tc.html); got != tc.want {
				t.Fatalf("firstImageURL() = %q, want %q", got, tc.want)
			}
		})
	}
}
