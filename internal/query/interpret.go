// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package query interprets a free-text search string into structured intent:
// an optional author, an optional title, and a set of topic keywords.
//
// The interpretation is a best-effort heuristic parse, not a grammar. It
// never fails; when no heuristic fires the whole cleaned query becomes the
// title. Downstream adapters must therefore stay safe under a wrong parse.
package query

import (
	"regexp"
	"strings"

	"github.com/pdiddy/bookfinder/pkg/types"
)

// fillerTokens are stripped from the query before any heuristic runs.
var fillerTokens = map[string]bool{
	"book":     true,
	"books":    true,
	"booklist": true,
}

// knownAuthors is a fixed list of well-known single- and double-word author
// names, matched as a case-insensitive prefix of the query. A hardcoded list
// is a known precision ceiling; see DESIGN.md.
var knownAuthors = []string{
	"paramahansa yogananda",
	"swami vivekananda",
	"jiddu krishnamurti",
	"ramana maharshi",
	"sri aurobindo",
	"eknath easwaran",
	"vivekananda",
	"krishnamurti",
	"yogananda",
	"sadhguru",
	"patanjali",
	"osho",
	"kabir",
	"rumi",
}

// seriesIndicators are canonical scripture and series names. When one
// appears mid-query, the text before it is treated as the author and the
// text from the indicator onward as the title.
var seriesIndicators = []string{
	"bhagavad gita",
	"yoga sutras",
	"brahma sutras",
	"upanishads",
	"mahabharata",
	"ramayana",
	"dhammapada",
	"tao te ching",
	"vedas",
	"gita",
}

// topicVocabulary is the fixed keyword set from which Intent.Topics is
// drawn, by substring match against the lowercased cleaned query.
var topicVocabulary = []string{
	"meditation",
	"yoga",
	"consciousness",
	"enlightenment",
	"mindfulness",
	"awareness",
	"spirituality",
	"philosophy",
	"devotion",
	"bhakti",
	"vedanta",
	"tantra",
	"karma",
	"dharma",
	"moksha",
	"samadhi",
	"kundalini",
	"chakra",
	"mantra",
	"pranayama",
	"prayer",
	"wisdom",
	"liberation",
	"silence",
	"death",
	"love",
}

// separatorRe splits a structured "author, title" style query on comma,
// dash, colon, or pipe.
var separatorRe = regexp.MustCompile(`[,\-:|]`)

// byPatternRe matches an explicit "TITLE by AUTHOR" query.
var byPatternRe = regexp.MustCompile(`(?i)^(.+?)\s+by\s+(.+)$`)

// Interpret parses a raw query string into an Intent. It cannot fail: on
// any input the worst case is an intent whose title is the cleaned query.
func Interpret(raw string) types.Intent {
	cleaned := stripFiller(raw)

	intent := types.Intent{
		Topics: detectTopics(cleaned),
	}

	// Structured "author, title" convention: a separator yielding at least
	// two non-empty segments commits the first as author.
	if segs := splitSegments(cleaned); len(segs) >= 2 {
		intent.Author = segs[0]
		intent.Title = strings.Join(segs[1:], " ")
		intent.AuthorExplicit = true
		return intent
	}

	// (a) explicit "X by Y".
	if m := byPatternRe.FindStringSubmatch(cleaned); m != nil {
		intent.Title = strings.TrimSpace(m[1])
		intent.Author = strings.TrimSpace(m[2])
		intent.AuthorExplicit = true
		return intent
	}

	// (b) known author as a leading prefix.
	lower := strings.ToLower(cleaned)
	for _, name := range knownAuthors {
		if !strings.HasPrefix(lower, name) {
			continue
		}
		rest := strings.TrimSpace(cleaned[len(name):])
		// The prefix must end at a word boundary ("oshothoughts" is not a match).
		if rest != "" && cleaned[len(name)] != ' ' {
			continue
		}
		intent.Author = cleaned[:len(name)]
		intent.Title = rest
		return intent
	}

	// (c) series indicator mid-query: author before, title from the
	// indicator onward. Only committed when both sides are non-empty.
	for _, series := range seriesIndicators {
		idx := indexAtWordBoundary(lower, series)
		if idx <= 0 {
			continue
		}
		author := strings.TrimSpace(cleaned[:idx])
		title := strings.TrimSpace(cleaned[idx:])
		if author != "" && title != "" {
			intent.Author = author
			intent.Title = title
			return intent
		}
	}

	intent.Title = cleaned
	return intent
}

// stripFiller removes filler tokens and collapses whitespace, preserving the
// original casing of the surviving words.
func stripFiller(raw string) string {
	var kept []string
	for _, w := range strings.Fields(raw) {
		if fillerTokens[strings.ToLower(strings.Trim(w, ".,!?"))] {
			continue
		}
		kept = append(kept, w)
	}
	return strings.Join(kept, " ")
}

// splitSegments splits on separator punctuation and drops empty segments.
func splitSegments(s string) []string {
	parts := separatorRe.Split(s, -1)
	var segs []string
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			segs = append(segs, t)
		}
	}
	if len(segs) < 2 {
		return nil
	}
	return segs
}

// indexAtWordBoundary returns the byte index of needle in haystack when the
// match starts on a word boundary, or -1.
func indexAtWordBoundary(haystack, needle string) int {
	from := 0
	for {
		idx := strings.Index(haystack[from:], needle)
		if idx < 0 {
			return -1
		}
		idx += from
		if idx == 0 || haystack[idx-1] == ' ' {
			return idx
		}
		from = idx + 1
	}
}

// detectTopics returns the topic-vocabulary entries present in the query.
func detectTopics(cleaned string) []string {
	lower := strings.ToLower(cleaned)
	var topics []string
	for _, t := range topicVocabulary {
		if strings.Contains(lower, t) {
			topics = append(topics, t)
		}
	}
	return topics
}
