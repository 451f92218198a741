// Package lang is a rule-based English classifier. It is only consulted as
// a fallback explanation when a fetch produced nothing, to tell "bad city
// name" apart from "wrong language", so recall matters more than precision.
package lang

import (
	"strings"
	"unicode"
)

// Common English function words. One hit is strong evidence for English in
// utterances this short.
var stopwords = map[string]bool{
	"the": true, "a": true, "an": true, "of": true, "in": true, "on": true,
	"is": true, "are": true, "what": true, "where": true, "how": true,
	"to": true, "for": true, "me": true, "my": true, "tell": true,
	"about": true, "visit": true, "weather": true, "time": true,
	"currency": true, "and": true, "please": true, "show": true,
}

// IsEnglish reports whether the text looks like English. Latin-script text
// passes unless it has no Latin letters at all; multi-word Latin text needs
// either a stopword hit or to be mostly short ASCII words, which city-name
// queries are.
func IsEnglish(text string) bool {
	text = strings.TrimSpace(text)
	if text == "" {
		return true
	}

	var latin, nonLatin int
	for _, r := range text {
		if !unicode.IsLetter(r) {
			continue
		}
		if unicode.In(r, unicode.Latin) {
			latin++
		} else {
			nonLatin++
		}
	}

	// Non-Latin script dominates: not English.
	if nonLatin > latin {
		return false
	}
	if latin == 0 {
		// Digits and punctuation only; nothing to classify.
		return true
	}

	words := strings.Fields(strings.ToLower(text))
	if len(words) == 1 {
		// Single tokens are usually proper nouns (city names) and look the
		// same in any Latin-script language.
		return true
	}

	for _, w := range words {
		w = strings.Trim(w, ".,!?'\"")
		if stopwords[w] {
			return true
		}
	}

	// Latin script but no English function words: accented text is the
	// common case (e.g. Spanish or French questions).
	for _, r := range text {
		if unicode.IsLetter(r) && r > unicode.MaxASCII {
			return false
		}
	}

	return true
}
