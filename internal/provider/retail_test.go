// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package provider

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/pdiddy/bookfinder/pkg/types"
)

const retailPrimaryMarkup = `<html><body>
<div data-component-type="s-search-result" data-asin="8172234988">
  <h2><a href="/Autobiography-Yogi-Paramahansa-Yogananda/dp/8172234988"><span>Autobiography of a Yogi</span></a></h2>
  <div class="a-row">by <a class="a-size-base" href="/author">Paramahansa Yogananda</a></div>
  <span class="a-price"><span class="a-offscreen">&#8377;199.00</span></span>
  <img class="s-image" src="http://m.media-amazon.com/images/I/yogi.jpg"/>
</div>
<div data-component-type="s-search-result" data-asin="">
  <h2><a href="/broken"><span></span></a></h2>
</div>
<div data-component-type="s-search-result" data-asin="9380619102">
  <h2><a href="/Meditation-Osho/dp/9380619102"><span>Meditation: The First and Last Freedom</span></a></h2>
  <div class="a-row">by Osho | Paperback</div>
</div>
</body></html>`

const retailFallbackMarkup = `<html><body>
<div class="s-result-item" data-asin="B001">
  <h2><a href="https://www.amazon.in/dp/B001"><span>The Book of Secrets</span></a></h2>
  <span class="a-price-whole">450</span>
</div>
</body></html>`

func serveRetail(t *testing.T, page string, status int) *RetailProvider {
	t.Helper()
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(status)
		w.Write([]byte(page))
	}))
	t.Cleanup(ts.Close)

	old := retailSearchBase
	retailSearchBase = ts.URL
	t.Cleanup(func() { retailSearchBase = old })

	return &RetailProvider{Client: ts.Client()}
}

func TestRetailPrimarySelectors(t *testing.T) {
	p := serveRetail(t, retailPrimaryMarkup, http.StatusOK)

	candidates, err := p.Fetch(context.Background(), "yogananda", types.Intent{Title: "yogananda"}, 10)
	if err != nil {
		t.Fatalf("Fetch: %v", err)
	}
	// The middle container has no title text and no identifier: skipped,
	// not fatal to the batch.
	if len(candidates) != 2 {
		t.Fatalf("len(candidates) = %d, want 2", len(candidates))
	}

	first := candidates[0]
	if first.ID != "retail:8172234988" {
		t.Errorf("ID = %q", first.ID)
	}
	if first.Title != "Autobiography of a Yogi" {
		t.Errorf("Title = %q", first.Title)
	}
	if first.Author != "Paramahansa Yogananda" {
		t.Errorf("Author = %q", first.Author)
	}
	if first.Price == nil || *first.Price != 199 {
		t.Errorf("Price = %v, want 199", first.Price)
	}
	if first.Currency != types.CurrencyINR {
		t.Errorf("Currency = %q", first.Currency)
	}
	if !strings.Contains(first.SourceURL, "/dp/8172234988") {
		t.Errorf("SourceURL = %q", first.SourceURL)
	}

	second := candidates[1]
	if second.Author != "Osho" {
		t.Errorf("byline author = %q, want Osho", second.Author)
	}
	if second.Price != nil {
		t.Errorf("missing price must stay unknown, got %v", *second.Price)
	}
}

func TestRetailFallbackSelectors(t *testing.T) {
	p := serveRetail(t, retailFallbackMarkup, http.StatusOK)

	candidates, err := p.Fetch(context.Background(), "secrets", types.Intent{Title: "secrets"}, 10)
	if err != nil {
		t.Fatalf("Fetch: %v", err)
	}
	if len(candidates) != 1 {
		t.Fatalf("len(candidates) = %d, want 1 via fallback strategy", len(candidates))
	}
	if candidates[0].Price == nil || *candidates[0].Price != 450 {
		t.Errorf("Price = %v, want 450 via a-price-whole fallback", candidates[0].Price)
	}
}

func TestRetailUnrecognizedMarkupYieldsNothing(t *testing.T) {
	p := serveRetail(t, "<html><body><p>captcha</p></body></html>", http.StatusOK)

	candidates, err := p.Fetch(context.Background(), "x", types.Intent{Title: "x"}, 10)
	if err != nil {
		t.Fatalf("Fetch: %v", err)
	}
	if len(candidates) != 0 {
		t.Errorf("len(candidates) = %d, want 0", len(candidates))
	}
}

func TestRetailHTTPErrorSurfaces(t *testing.T) {
	p := serveRetail(t, "", http.StatusForbidden)

	_, err := p.Fetch(context.Background(), "x", types.Intent{Title: "x"}, 10)
	if err == nil || !strings.Contains(err.Error(), "HTTP 403") {
		t.Errorf("expected HTTP 403 error, got: %v", err)
	}
}

func TestParsePrice(t *testing.T) {
	tests := []struct {
		in      string
		want    float64
		wantErr bool
	}{
		{"₹1,299.00", 1299, false},
		{"450", 450, false},
		{"₹ 99", 99, false},
		{"free", 0, true},
	}
	for _, tt := range tests {
		got, err := parsePrice(tt.in)
		if tt.wantErr {
			if err == nil {
				t.Errorf("parsePrice(%q) expected error", tt.in)
			}
			continue
		}
		if err != nil || got != tt.want {
			t.Errorf("parsePrice(%q) = %v, %v; want %v", tt.in, got, err, tt.want)
		}
	}
}
