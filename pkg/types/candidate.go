// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for the bookfinder pipeline:
// the query intent, the canonical candidate record, the scored result, and
// the stage configuration structs.
package types

// ProviderID identifies the source a candidate was discovered through.
type ProviderID string

const (
	ProviderCatalog     ProviderID = "catalog"
	ProviderOpenLibrary ProviderID = "openlibrary"
	ProviderGutendex    ProviderID = "gutendex"
	ProviderRetail      ProviderID = "retail"
)

// ProviderPriority lists providers in the fixed cross-provider ordering used
// when concatenating fan-out results: broad web sources first, the narrow
// curated catalog last. The order is a tie-break for equal scores, not a
// relevance signal.
var ProviderPriority = []ProviderID{
	ProviderOpenLibrary,
	ProviderGutendex,
	ProviderRetail,
	ProviderCatalog,
}

// Currency is the pricing currency for a candidate.
type Currency string

const (
	CurrencyINR Currency = "INR"
	CurrencyUSD Currency = "USD"
)

// Intent is the structured interpretation of a free-text query. It is
// derived fresh per search and never persisted.
type Intent struct {
	// Author is the detected author name, empty when no heuristic fired.
	Author string `json:"author,omitempty" yaml:"author,omitempty"`

	// Title is the detected title or, when nothing else matched, the whole
	// cleaned query.
	Title string `json:"title,omitempty" yaml:"title,omitempty"`

	// Topics is the subset of the fixed topic vocabulary present in the query.
	Topics []string `json:"topics,omitempty" yaml:"topics,omitempty"`

	// AuthorExplicit is true when the author came from an explicit delimiter
	// ("Osho, meditation" or "X by Y") rather than a prefix/series heuristic.
	// Adapters use this to decide whether a zero-result structured search
	// should fall back to free text.
	AuthorExplicit bool `json:"author_explicit,omitempty" yaml:"author_explicit,omitempty"`
}

// Candidate is one normalized literature record from any provider, before
// scoring. Candidates are immutable once the normalizer emits them; the
// scorer only attaches a ScoredResult wrapper.
type Candidate struct {
	// ID is globally unique within one aggregation run: the provider name
	// prefixed to the provider-native identifier (e.g. "openlibrary:OL123W").
	ID string `json:"id" yaml:"id"`

	Title       string `json:"title" yaml:"title"`
	Author      string `json:"author,omitempty" yaml:"author,omitempty"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`

	// SourceProvider identifies which adapter discovered this candidate.
	SourceProvider ProviderID `json:"source_provider" yaml:"source_provider"`

	// SourceURL links to the candidate on its provider.
	SourceURL string `json:"source_url,omitempty" yaml:"source_url,omitempty"`

	// Price is nil when pricing is unknown or not applicable. A non-nil 0
	// means confirmed free; the two are never conflated.
	Price    *float64 `json:"price,omitempty" yaml:"price,omitempty"`
	Currency Currency `json:"currency,omitempty" yaml:"currency,omitempty"`

	IsAvailable bool   `json:"is_available" yaml:"is_available"`
	Language    string `json:"language,omitempty" yaml:"language,omitempty"`
	Category    string `json:"category,omitempty" yaml:"category,omitempty"`
	ImageURL    string `json:"image_url,omitempty" yaml:"image_url,omitempty"`

	// KeyTopics are subject keywords in provider order.
	KeyTopics []string `json:"key_topics,omitempty" yaml:"key_topics,omitempty"`

	// TheologicalTags are spiritual/philosophical terms detected in the
	// candidate's metadata.
	TheologicalTags []string `json:"theological_tags,omitempty" yaml:"theological_tags,omitempty"`

	// TableOfContents lists chapter or section headings when the provider
	// exposes them.
	TableOfContents []string `json:"table_of_contents,omitempty" yaml:"table_of_contents,omitempty"`
}

// FreePrice returns a pointer to a confirmed-free (0) price.
func FreePrice() *float64 {
	p := 0.0
	return &p
}

// PriceOf returns a pointer to a known price value.
func PriceOf(v float64) *float64 {
	return &v
}
