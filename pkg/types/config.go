package types

import "time"

// HTTPConfig holds shared HTTP settings used by stages that make network requests.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout. It is the only mechanism that
	// cancels an in-flight provider fetch.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// UserAgent is the User-Agent header sent with API requests
	// (e.g. "bookfinder/0.1").
	UserAgent string `json:"user_agent" yaml:"user_agent"`
}

// ProviderConfig holds settings for the discovery fan-out.
type ProviderConfig struct {
	HTTPConfig `yaml:",inline"`

	// EnableCatalog controls whether the curated catalog is searched.
	EnableCatalog bool `json:"enable_catalog" yaml:"enable_catalog"`

	// EnableOpenLibrary controls whether the Open Library API is searched.
	EnableOpenLibrary bool `json:"enable_openlibrary" yaml:"enable_openlibrary"`

	// EnableGutendex controls whether the Gutendex public-domain API is searched.
	EnableGutendex bool `json:"enable_gutendex" yaml:"enable_gutendex"`

	// EnableRetail controls whether retail listing pages are scraped.
	EnableRetail bool `json:"enable_retail" yaml:"enable_retail"`

	// CatalogMaxResults caps the curated catalog's contribution (default 10).
	// The catalog is small and precise, so it gets the narrow allotment.
	CatalogMaxResults int `json:"catalog_max_results" yaml:"catalog_max_results"`

	// WebMaxResults caps each broad web provider's contribution (default 20).
	WebMaxResults int `json:"web_max_results" yaml:"web_max_results"`

	// OpenLibraryEmail is sent as a contact parameter for polite pool access.
	OpenLibraryEmail string `json:"openlibrary_email,omitempty" yaml:"openlibrary_email,omitempty"`

	// RetailRequestsPerSecond paces scraper requests (default 1).
	RetailRequestsPerSecond float64 `json:"retail_requests_per_second" yaml:"retail_requests_per_second"`
}

// WebCap returns the broad-provider result cap with its default applied.
func (c ProviderConfig) WebCap() int {
	if c.WebMaxResults <= 0 {
		return 20
	}
	return c.WebMaxResults
}

// CatalogCap returns the catalog result cap with its default applied.
func (c ProviderConfig) CatalogCap() int {
	if c.CatalogMaxResults <= 0 {
		return 10
	}
	return c.CatalogMaxResults
}

// AIConfig holds shared settings for stages that call a Generative AI API.
type AIConfig struct {
	// Model is the AI model identifier (e.g. "claude-sonnet-4-5-20250929").
	Model string `json:"model" yaml:"model"`

	// APIKey is the authentication key for the AI API.
	APIKey string `json:"api_key,omitempty" yaml:"api_key,omitempty"`
}

// ScoringConfig holds settings for the relevance scorer.
type ScoringConfig struct {
	AIConfig `yaml:",inline"`

	// Timeout bounds the evaluator call.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`
}

// EngineConfig groups all stage configurations for one engine instance.
type EngineConfig struct {
	Providers ProviderConfig `json:"providers" yaml:"providers"`
	Scoring   ScoringConfig  `json:"scoring" yaml:"scoring"`

	// MaxResults caps the assembled response (0 = no cap).
	MaxResults int `json:"max_results" yaml:"max_results"`
}
