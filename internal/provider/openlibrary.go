// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/pdiddy/bookfinder/internal/httputil"
	"github.com/pdiddy/bookfinder/pkg/types"
)

// openLibrarySearchBase is the Open Library search endpoint. Declared as a
// var so tests can substitute an httptest server.
var openLibrarySearchBase = "https://openlibrary.org/search.json"

const openLibraryFields = "key,title,author_name,first_sentence,subject,language,cover_i,first_publish_year"

// maxKeyTopics bounds how many subject headings become KeyTopics.
const maxKeyTopics = 6

// OpenLibraryProvider queries the Open Library bibliographic API.
type OpenLibraryProvider struct {
	Client *http.Client
	// UserAgent is sent with every request.
	UserAgent string
	// Email is sent for polite pool access.
	Email string
}

// Name returns the provider identifier.
func (p *OpenLibraryProvider) Name() types.ProviderID { return types.ProviderOpenLibrary }

// Fetch queries Open Library. When the intent carries an author, the
// structured author+title search is preferred: it is strictly more precise
// than free text. A structured search that finds nothing falls back to the
// raw query unless the author was explicitly delimited, since a
// heuristically derived author may simply be a wrong parse.
func (p *OpenLibraryProvider) Fetch(ctx context.Context, rawQuery string, intent types.Intent, maxResults int) ([]types.Candidate, error) {
	if maxResults <= 0 {
		maxResults = 20
	}

	if intent.Author != "" {
		candidates, err := p.search(ctx, structuredParams(intent), maxResults)
		if err != nil {
			return nil, err
		}
		if len(candidates) > 0 || intent.AuthorExplicit {
			return candidates, nil
		}
	}

	return p.search(ctx, url.Values{"q": {rawQuery}}, maxResults)
}

func structuredParams(intent types.Intent) url.Values {
	params := url.Values{"author": {intent.Author}}
	if intent.Title != "" {
		params.Set("title", intent.Title)
	} else {
		params.Set("q", intent.Author)
		params.Del("author")
	}
	return params
}

func (p *OpenLibraryProvider) search(ctx context.Context, params url.Values, maxResults int) ([]types.Candidate, error) {
	params.Set("limit", fmt.Sprintf("%d", maxResults))
	params.Set("fields", openLibraryFields)

	reqURL := openLibrarySearchBase + "?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	ua := p.UserAgent
	if p.Email != "" {
		ua = strings.TrimSpace(ua + " (" + p.Email + ")")
	}
	req.Header.Set("User-Agent", ua)

	resp, err := httputil.DoWithRetry(ctx, p.Client, req, 0)
	if err != nil {
		return nil, fmt.Errorf("Open Library request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("Open Library returned HTTP %d", resp.StatusCode)
	}

	var olr openLibraryResponse
	if err := json.NewDecoder(resp.Body).Decode(&olr); err != nil {
		return nil, fmt.Errorf("parsing Open Library response: %w", err)
	}

	var candidates []types.Candidate
	for _, doc := range olr.Docs {
		if doc.Key == "" || doc.Title == "" {
			continue
		}
		workID := strings.TrimPrefix(doc.Key, "/works/")

		c := types.Candidate{
			ID:             "openlibrary:" + workID,
			Title:          doc.Title,
			Description:    strings.Join(doc.FirstSentence, " "),
			SourceProvider: types.ProviderOpenLibrary,
			SourceURL:      "https://openlibrary.org" + doc.Key,
			// Bibliographic records carry no offer, so pricing stays unknown
			// rather than zero.
			Price:           nil,
			IsAvailable:     true,
			TheologicalTags: ScanTheologicalTags(doc.Title),
		}

		if len(doc.AuthorName) > 0 {
			c.Author = doc.AuthorName[0]
		}
		if len(doc.Language) > 0 {
			c.Language = LanguageName(doc.Language[0])
		}
		if doc.CoverID > 0 {
			c.ImageURL = fmt.Sprintf("https://covers.openlibrary.org/b/id/%d-M.jpg", doc.CoverID)
		}
		for _, subj := range doc.Subject {
			c.KeyTopics = append(c.KeyTopics, subj)
			if len(c.KeyTopics) >= maxKeyTopics {
				break
			}
		}
		if len(c.KeyTopics) > 0 {
			c.Category = c.KeyTopics[0]
		}

		candidates = append(candidates, c)
	}
	return candidates, nil
}

// Open Library API JSON structures.
type openLibraryResponse struct {
	NumFound int              `json:"numFound"`
	Docs     []openLibraryDoc `json:"docs"`
}

type openLibraryDoc struct {
	Key              string   `json:"key"`
	Title            string   `json:"title"`
	AuthorName       []string `json:"author_name"`
	FirstSentence    []string `json:"first_sentence"`
	Subject          []string `json:"subject"`
	Language         []string `json:"language"`
	CoverID          int      `json:"cover_i"`
	FirstPublishYear int      `json:"first_publish_year"`
}
