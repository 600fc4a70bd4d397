// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/pdiddy/bookfinder/pkg/types"
)

// gutendexSearchBase is the Gutendex books endpoint. Declared as a var so
// tests can substitute an httptest server.
var gutendexSearchBase = "https://gutendex.com/books"

// GutendexProvider searches Project Gutenberg's public-domain catalog via
// the Gutendex API. Everything it returns is a free, always-available text.
type GutendexProvider struct {
	Client    *http.Client
	UserAgent string
}

// Name returns the provider identifier.
func (p *GutendexProvider) Name() types.ProviderID { return types.ProviderGutendex }

// Fetch runs a free-text search. Gutendex matches against titles and author
// names, so the combined intent text is sent as-is.
func (p *GutendexProvider) Fetch(ctx context.Context, rawQuery string, intent types.Intent, maxResults int) ([]types.Candidate, error) {
	if maxResults <= 0 {
		maxResults = 20
	}

	searchText := strings.TrimSpace(intent.Author + " " + intent.Title)
	if searchText == "" {
		searchText = rawQuery
	}

	params := url.Values{"search": {searchText}}
	reqURL := gutendexSearchBase + "?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", p.UserAgent)

	resp, err := p.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("Gutendex request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("Gutendex returned HTTP %d", resp.StatusCode)
	}

	var gr gutendexResponse
	if err := json.NewDecoder(resp.Body).Decode(&gr); err != nil {
		return nil, fmt.Errorf("parsing Gutendex response: %w", err)
	}

	var candidates []types.Candidate
	for _, book := range gr.Results {
		if book.ID == 0 || book.Title == "" {
			continue
		}

		c := types.Candidate{
			ID:             fmt.Sprintf("gutendex:%d", book.ID),
			Title:          book.Title,
			Description:    strings.Join(book.Summaries, " "),
			SourceProvider: types.ProviderGutendex,
			SourceURL:      fmt.Sprintf("https://www.gutenberg.org/ebooks/%d", book.ID),
			// Public-domain texts are confirmed free: price 0, not unknown.
			Price:           types.FreePrice(),
			Currency:        types.CurrencyUSD,
			IsAvailable:     true,
			ImageURL:        book.Formats["image/jpeg"],
			TheologicalTags: ScanTheologicalTags(book.Title),
		}

		if len(book.Authors) > 0 {
			c.Author = book.Authors[0].Name
		}
		if len(book.Languages) > 0 {
			c.Language = LanguageName(book.Languages[0])
		}
		for _, subj := range book.Subjects {
			// Gutenberg subject headings chain with " -- "; the leading
			// segment is the useful topic.
			topic, _, _ := strings.Cut(subj, " -- ")
			c.KeyTopics = append(c.KeyTopics, strings.TrimSpace(topic))
			if len(c.KeyTopics) >= maxKeyTopics {
				break
			}
		}
		if len(c.KeyTopics) > 0 {
			c.Category = c.KeyTopics[0]
		}

		candidates = append(candidates, c)
		if len(candidates) >= maxResults {
			break
		}
	}
	return candidates, nil
}

// Gutendex API JSON structures.
type gutendexResponse struct {
	Count   int            `json:"count"`
	Results []gutendexBook `json:"results"`
}

type gutendexBook struct {
	ID        int               `json:"id"`
	Title     string            `json:"title"`
	Authors   []gutendexPerson  `json:"authors"`
	Summaries []string          `json:"summaries"`
	Subjects  []string          `json:"subjects"`
	Languages []string          `json:"languages"`
	Formats   map[string]string `json:"formats"`
}

type gutendexPerson struct {
	Name string `json:"name"`
}
