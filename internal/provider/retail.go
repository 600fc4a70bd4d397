// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package provider

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"golang.org/x/net/html"

	"github.com/pdiddy/bookfinder/pkg/types"
)

// retailSearchBase is the retail search page. Declared as a var so tests
// can substitute an httptest server.
var retailSearchBase = "https://www.amazon.in/s"

// browserUserAgent is sent on scrape requests; listing pages serve reduced
// markup to non-browser agents.
const browserUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/124.0.0.0 Safari/537.36"

// RetailProvider scrapes a retail search listing page. Listing markup
// drifts, so extraction runs a primary selector strategy with fallbacks,
// and any single item that fails to parse is skipped, never fatal.
type RetailProvider struct {
	// Client should be rate-limited (httputil.NewPacedClient).
	Client *http.Client
}

// Name returns the provider identifier.
func (p *RetailProvider) Name() types.ProviderID { return types.ProviderRetail }

// resultContainerStrategies locate one result item each, tried in order
// until one yields containers.
var resultContainerStrategies = []nodePred{
	elemAttr("div", "data-component-type", "s-search-result"),
	func(n *html.Node) bool { return n.Data == "div" && hasClass(n, "s-result-item") && attrVal(n, "data-asin") != "" },
	elemClass("div", "sg-col-inner"),
}

// Fetch GETs the search page and extracts title, author, price, image, and
// link per result item.
func (p *RetailProvider) Fetch(ctx context.Context, rawQuery string, intent types.Intent, maxResults int) ([]types.Candidate, error) {
	if maxResults <= 0 {
		maxResults = 10
	}

	searchText := strings.TrimSpace(intent.Author + " " + intent.Title)
	if searchText == "" {
		searchText = rawQuery
	}

	params := url.Values{"k": {searchText}, "i": {"stripbooks"}}
	reqURL := retailSearchBase + "?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", browserUserAgent)
	req.Header.Set("Accept-Language", "en-IN,en;q=0.9")

	resp, err := p.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("retail page request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("retail page returned HTTP %d", resp.StatusCode)
	}

	doc, err := html.Parse(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("parsing retail page: %w", err)
	}

	items := findContainers(doc)
	if len(items) == 0 {
		return nil, nil
	}

	var candidates []types.Candidate
	for _, item := range items {
		c, ok := p.extractItem(item)
		if !ok {
			continue
		}
		candidates = append(candidates, c)
		if len(candidates) >= maxResults {
			break
		}
	}
	return candidates, nil
}

// findContainers tries each container strategy in order.
func findContainers(doc *html.Node) []*html.Node {
	for _, strategy := range resultContainerStrategies {
		if items := findAll(doc, strategy); len(items) > 0 {
			return items
		}
	}
	return nil
}

// extractItem pulls one candidate out of a result container. A missing
// title or link makes the item unusable; anything else degrades to empty.
func (p *RetailProvider) extractItem(item *html.Node) (types.Candidate, bool) {
	heading := findFirst(item, elem("h2"))
	if heading == nil {
		return types.Candidate{}, false
	}
	title := textContent(heading)
	if title == "" {
		return types.Candidate{}, false
	}

	link := findFirst(item, func(n *html.Node) bool {
		return n.Data == "a" && attrVal(n, "href") != ""
	})
	if link == nil {
		return types.Candidate{}, false
	}
	href := absoluteRetailURL(attrVal(link, "href"))

	id := attrVal(item, "data-asin")
	if id == "" {
		id = slugFromURL(href)
	}
	if id == "" {
		return types.Candidate{}, false
	}

	c := types.Candidate{
		ID:              "retail:" + id,
		Title:           title,
		Author:          extractAuthor(item),
		SourceProvider:  types.ProviderRetail,
		SourceURL:       href,
		Currency:        types.CurrencyINR,
		IsAvailable:     true,
		TheologicalTags: ScanTheologicalTags(title),
	}

	if img := findFirst(item, elemClass("img", "s-image")); img != nil {
		c.ImageURL = attrVal(img, "src")
	} else if img := findFirst(item, elem("img")); img != nil {
		c.ImageURL = attrVal(img, "src")
	}

	// A listing without a readable price stays price-unknown, not zero.
	if price, ok := extractPrice(item); ok {
		c.Price = types.PriceOf(price)
	}

	return c, true
}

// extractAuthor reads the byline row. The author renders as the first
// secondary-styled link or span after the heading.
func extractAuthor(item *html.Node) string {
	row := findFirst(item, elemClass("div", "a-row"))
	if row == nil {
		return ""
	}
	if a := findFirst(row, elemClass("a", "a-size-base")); a != nil {
		return textContent(a)
	}
	text := textContent(row)
	if after, found := strings.CutPrefix(text, "by "); found {
		// Byline text runs on into format and date; keep the leading name.
		name, _, _ := strings.Cut(after, "|")
		return strings.TrimSpace(name)
	}
	return ""
}

// extractPrice reads the price; primary selector is the offscreen full
// price, fallback is the whole-rupees span.
func extractPrice(item *html.Node) (float64, bool) {
	for _, pred := range []nodePred{
		elemClass("span", "a-offscreen"),
		elemClass("span", "a-price-whole"),
	} {
		node := findFirst(item, pred)
		if node == nil {
			continue
		}
		if v, err := parsePrice(textContent(node)); err == nil {
			return v, true
		}
	}
	return 0, false
}

// parsePrice strips currency symbols and thousands separators.
func parsePrice(s string) (float64, error) {
	cleaned := strings.Map(func(r rune) rune {
		if (r >= '0' && r <= '9') || r == '.' {
			return r
		}
		return -1
	}, s)
	if cleaned == "" {
		return 0, fmt.Errorf("no digits in price %q", s)
	}
	return strconv.ParseFloat(cleaned, 64)
}

// absoluteRetailURL resolves listing-relative links.
func absoluteRetailURL(href string) string {
	if strings.HasPrefix(href, "http://") || strings.HasPrefix(href, "https://") {
		return href
	}
	base, err := url.Parse(retailSearchBase)
	if err != nil {
		return href
	}
	ref, err := url.Parse(href)
	if err != nil {
		return href
	}
	return base.ResolveReference(ref).String()
}

// slugFromURL falls back to the /dp/<id> path segment as an identifier.
func slugFromURL(href string) string {
	u, err := url.Parse(href)
	if err != nil {
		return ""
	}
	parts := strings.Split(u.Path, "/")
	for i, p := range parts {
		if p == "dp" && i+1 < len(parts) {
			return parts[i+1]
		}
	}
	return ""
}
