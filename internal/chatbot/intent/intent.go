// Package intent resolves a user utterance into the city being asked about
// and, optionally, the single catalog field requested.
package intent

import (
	"regexp"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/Amarnath2908/Travel-Companion-chatbot/internal/chatbot/catalog"
)

// Intent is the resolved meaning of one utterance. Field is empty when the
// user wants the whole record.
type Intent struct {
	City  string
	Field string
}

// cityPattern captures trailing "(in|of) <words>" phrasing like
// "time of kolkata". Letters, spaces and commas only.
var cityPattern = regexp.MustCompile(`(?:in|of)\s+([a-zA-Z\s,]+)$`)

var titleCaser = cases.Title(language.English)

var greetings = []string{"hi", "hello", "hey", "hola"}

var farewells = []string{"bye", "goodbye", "see you", "exit", "quit"}

// Resolve extracts {city, field} from an utterance. Every utterance yields
// a city (possibly nonsensical) and an optional field; there is no failure
// mode. The alias scan honors catalog priority order and first match wins.
func Resolve(utterance string) Intent {
	utterance = strings.TrimSpace(utterance)
	lower := strings.ToLower(utterance)

	var city string
	if m := cityPattern.FindStringSubmatch(lower); m != nil {
		city = titleCaser.String(strings.TrimSpace(m[1]))
	} else {
		// The user just typed a city name.
		city = titleCaser.String(utterance)
	}

	field := ""
	for _, alias := range catalog.Aliases() {
		if strings.Contains(lower, alias.Keyword) {
			field = alias.Field
			break
		}
	}

	return Intent{City: city, Field: field}
}

// IsGreeting reports whether the utterance is a bare greeting.
func IsGreeting(utterance string) bool {
	return matchesAny(utterance, greetings)
}

// IsFarewell reports whether the utterance ends the conversation.
func IsFarewell(utterance string) bool {
	return matchesAny(utterance, farewells)
}

// Exact match on the whole utterance. Substring matching misfires badly
// here: "hi" is a substring of "delhi".
func matchesAny(utterance string, words []string) bool {
	lower := strings.ToLower(strings.TrimSpace(utterance))
	for _, w := range words {
		if lower == w {
			return true
		}
	}
	return false
}
