// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package scoring

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"text/template"

	"github.com/pdiddy/bookfinder/pkg/types"
)

// groundedPromptTmpl instructs the evaluator to score candidates with an
// explicit groundedness contract: a grounded verdict requires a citation
// from a specific metadata field, never an inference.
var groundedPromptTmpl = template.Must(template.New("grounded").Parse(`You are a literature relevance evaluator. Score each candidate book below for relevance to the reader's query.

Reader's query: {{.Query}}

For each candidate, produce:
- id: the candidate's id, copied exactly
- relevance_score: an integer from 0 to 100
- is_grounded: true ONLY if a specific metadata field (title, category, a key_topics entry, a table_of_contents entry, or a description excerpt) contains direct evidence for the query's subject. If you cannot cite such evidence, you MUST set is_grounded to false, whatever the score.
- matched_topics: the query subjects the candidate covers
- citation_snippet: the exact metadata text you are citing as evidence (required when is_grounded is true)
- citation_location: the field the snippet came from, one of "title", "category", "description", "key_topics", "table_of_contents"
- match_reason: one short sentence explaining the score

Respond with a JSON object containing an "evaluations" array. Do not include any text outside the JSON object.

Example response:
{"evaluations": [{"id": "catalog:example", "relevance_score": 92, "is_grounded": true, "matched_topics": ["yoga"], "citation_snippet": "Yoga Sutras of Patanjali", "citation_location": "title", "match_reason": "Title names the queried work directly."}]}

Candidates:
{{.Candidates}}
`))

// Evaluator abstracts the text-generation API so tests can supply a mock.
// It accepts a prompt and returns the model's free-form text.
type Evaluator interface {
	Evaluate(ctx context.Context, prompt string) (string, error)
}

// GroundedScorer is the AI-assisted strategy. Any evaluator fault or
// unparseable response is returned as an error, which the Ranker treats as
// a permanent transition to the fallback for the request.
type GroundedScorer struct {
	Evaluator Evaluator
}

// Name returns the strategy identifier.
func (s *GroundedScorer) Name() string { return "grounded" }

// candidateMetadata is the normalized view sent to the evaluator. Raw
// scraped markup never reaches the model, only canonical fields.
type candidateMetadata struct {
	ID              string   `json:"id"`
	Title           string   `json:"title"`
	Author          string   `json:"author,omitempty"`
	Description     string   `json:"description,omitempty"`
	Category        string   `json:"category,omitempty"`
	KeyTopics       []string `json:"key_topics,omitempty"`
	TheologicalTags []string `json:"theological_tags,omitempty"`
	TableOfContents []string `json:"table_of_contents,omitempty"`
}

// groundedResponse is the structured reply expected from the evaluator.
type groundedResponse struct {
	Evaluations []groundedEvaluation `json:"evaluations"`
}

type groundedEvaluation struct {
	ID               string   `json:"id"`
	RelevanceScore   int      `json:"relevance_score"`
	IsGrounded       bool     `json:"is_grounded"`
	MatchedTopics    []string `json:"matched_topics"`
	CitationSnippet  string   `json:"citation_snippet"`
	CitationLocation string   `json:"citation_location"`
	MatchReason      string   `json:"match_reason"`
}

// Score submits the candidate metadata and query to the evaluator and maps
// its verdicts back onto the candidates in discovery order. Candidates the
// evaluator did not mention are dropped.
func (s *GroundedScorer) Score(ctx context.Context, query string, _ types.Intent, candidates []types.Candidate) ([]types.ScoredResult, error) {
	prompt, err := renderGroundedPrompt(query, candidates)
	if err != nil {
		return nil, fmt.Errorf("rendering prompt: %w", err)
	}

	text, err := s.Evaluator.Evaluate(ctx, prompt)
	if err != nil {
		return nil, fmt.Errorf("evaluator call: %w", err)
	}

	payload, ok := extractJSONObject(text)
	if !ok {
		return nil, fmt.Errorf("no JSON object in evaluator response")
	}

	var resp groundedResponse
	if err := json.Unmarshal([]byte(payload), &resp); err != nil {
		return nil, fmt.Errorf("parsing evaluator response: %w", err)
	}
	if len(resp.Evaluations) == 0 {
		return nil, fmt.Errorf("evaluator response has no evaluations")
	}

	verdicts := make(map[string]groundedEvaluation, len(resp.Evaluations))
	for _, ev := range resp.Evaluations {
		verdicts[ev.ID] = ev
	}

	var out []types.ScoredResult
	for _, c := range candidates {
		ev, ok := verdicts[c.ID]
		if !ok {
			continue
		}
		out = append(out, types.ScoredResult{
			Candidate:        c,
			RelevanceScore:   ev.RelevanceScore,
			ConfidenceTier:   types.TierForScore(ev.RelevanceScore),
			IsGrounded:       ev.IsGrounded,
			MatchedTopics:    ev.MatchedTopics,
			CitationSnippet:  ev.CitationSnippet,
			CitationLocation: ev.CitationLocation,
			MatchReason:      ev.MatchReason,
		})
	}
	return out, nil
}

// renderGroundedPrompt executes the prompt template with the query and the
// candidates' metadata as indented JSON.
func renderGroundedPrompt(query string, candidates []types.Candidate) (string, error) {
	meta := make([]candidateMetadata, len(candidates))
	for i, c := range candidates {
		meta[i] = candidateMetadata{
			ID:              c.ID,
			Title:           c.Title,
			Author:          c.Author,
			Description:     c.Description,
			Category:        c.Category,
			KeyTopics:       c.KeyTopics,
			TheologicalTags: c.TheologicalTags,
			TableOfContents: c.TableOfContents,
		}
	}
	metaJSON, err := json.MarshalIndent(meta, "", "  ")
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	err = groundedPromptTmpl.Execute(&buf, struct {
		Query      string
		Candidates string
	}{Query: query, Candidates: string(metaJSON)})
	if err != nil {
		return "", err
	}
	return buf.String(), nil
}

// extractJSONObject locates the JSON payload in free-form model output: a
// fenced code block first, the outermost brace-delimited object second.
func extractJSONObject(text string) (string, bool) {
	if fenced, ok := extractFencedBlock(text); ok {
		return fenced, true
	}

	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start < 0 || end <= start {
		return "", false
	}
	return text[start : end+1], true
}

// extractFencedBlock returns the contents of the first ``` fence, tolerant
// of a language tag after the opening backticks.
func extractFencedBlock(text string) (string, bool) {
	open := strings.Index(text, "```")
	if open < 0 {
		return "", false
	}
	rest := text[open+3:]

	// Skip the language tag line ("json", "JSON", or nothing).
	if nl := strings.Index(rest, "\n"); nl >= 0 {
		firstLine := strings.TrimSpace(rest[:nl])
		if firstLine == "" || len(firstLine) <= 10 && !strings.ContainsAny(firstLine, "{}") {
			rest = rest[nl+1:]
		}
	}

	closing := strings.Index(rest, "```")
	if closing < 0 {
		return "", false
	}
	return strings.TrimSpace(rest[:closing]), true
}
