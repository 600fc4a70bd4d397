// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package query

import (
	"reflect"
	"testing"
)

func TestInterpretStructuredSeparator(t *testing.T) {
	intent := Interpret("Osho, meditation techniques")
	if intent.Author != "Osho" {
		t.Errorf("Author = %q, want %q", intent.Author, "Osho")
	}
	if intent.Title != "meditation techniques" {
		t.Errorf("Title = %q, want %q", intent.Title, "meditation techniques")
	}
	if !intent.AuthorExplicit {
		t.Error("separator-delimited author should be marked explicit")
	}
}

func TestInterpretByPattern(t *testing.T) {
	intent := Interpret("Autobiography of a Yogi by Paramahansa Yogananda")
	if intent.Title != "Autobiography of a Yogi" {
		t.Errorf("Title = %q", intent.Title)
	}
	if intent.Author != "Paramahansa Yogananda" {
		t.Errorf("Author = %q", intent.Author)
	}
	if !intent.AuthorExplicit {
		t.Error("\"by\"-delimited author should be marked explicit")
	}
}

func TestInterpretKnownAuthorPrefix(t *testing.T) {
	tests := []struct {
		name       string
		query      string
		wantAuthor string
		wantTitle  string
	}{
		{"single word author", "osho courage", "osho", "courage"},
		{"double word author", "Swami Vivekananda raja yoga", "Swami Vivekananda", "raja yoga"},
		{"author only", "Sadhguru", "Sadhguru", ""},
		{"no false prefix inside word", "oshothoughts on life", "", "oshothoughts on life"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			intent := Interpret(tt.query)
			if intent.Author != tt.wantAuthor {
				t.Errorf("Author = %q, want %q", intent.Author, tt.wantAuthor)
			}
			if intent.Title != tt.wantTitle {
				t.Errorf("Title = %q, want %q", intent.Title, tt.wantTitle)
			}
			if intent.AuthorExplicit {
				t.Error("heuristic author should not be marked explicit")
			}
		})
	}
}

func TestInterpretSeriesIndicator(t *testing.T) {
	intent := Interpret("Stephen Mitchell Tao Te Ching translation")
	if intent.Author != "Stephen Mitchell" {
		t.Errorf("Author = %q", intent.Author)
	}
	if intent.Title != "Tao Te Ching translation" {
		t.Errorf("Title = %q", intent.Title)
	}
}

func TestInterpretSeriesIndicatorNotCommittedWithoutAuthor(t *testing.T) {
	// Indicator at position zero leaves nothing for the author side.
	intent := Interpret("Upanishads translation")
	if intent.Author != "" {
		t.Errorf("Author = %q, want empty", intent.Author)
	}
	if intent.Title != "Upanishads translation" {
		t.Errorf("Title = %q", intent.Title)
	}
}

func TestInterpretFillerStripped(t *testing.T) {
	intent := Interpret("books about meditation")
	if intent.Title != "about meditation" {
		t.Errorf("Title = %q, want filler removed", intent.Title)
	}
}

func TestInterpretFallbackWholeQueryAsTitle(t *testing.T) {
	intent := Interpret("silence and stillness in everyday life")
	if intent.Author != "" {
		t.Errorf("Author = %q, want empty", intent.Author)
	}
	if intent.Title != "silence and stillness in everyday life" {
		t.Errorf("Title = %q", intent.Title)
	}
}

func TestInterpretTopicsAlwaysComputed(t *testing.T) {
	tests := []struct {
		query string
		want  []string
	}{
		{"Osho, meditation techniques", []string{"meditation"}},
		{"karma and dharma in the Gita", []string{"karma", "dharma"}},
		{"cooking recipes", nil},
	}
	for _, tt := range tests {
		intent := Interpret(tt.query)
		if !reflect.DeepEqual(intent.Topics, tt.want) {
			t.Errorf("Topics(%q) = %v, want %v", tt.query, intent.Topics, tt.want)
		}
	}
}

func TestInterpretNeverFails(t *testing.T) {
	for _, q := range []string{"", "   ", "book", ",,,|||", "---"} {
		intent := Interpret(q)
		if intent.Author != "" && intent.Title == "" && len(intent.Topics) == 0 {
			t.Errorf("Interpret(%q) produced author without title", q)
		}
	}
}
