package record

import (
	"regexp"
	"strings"

	"github.com/Amarnath2908/Travel-Companion-chatbot/internal/chatbot/catalog"
)

// delimiterPattern matches any catalog name immediately followed by a colon.
// Names are QuoteMeta-escaped so catalog entries containing regex
// metacharacters (e.g. "Description (short)") cannot inject pattern syntax.
var delimiterPattern = buildDelimiterPattern()

func buildDelimiterPattern() *regexp.Regexp {
	names := catalog.Fields()
	parts := make([]string, len(names))
	for i, name := range names {
		parts[i] = regexp.QuoteMeta(name + ":")
	}
	return regexp.MustCompile(strings.Join(parts, "|"))
}

// Parse splits an aggregated text blob into a Record using the catalog
// names as delimiters. The walk holds two states: awaiting a key and
// awaiting that key's value. Blank pieces are skipped without clearing
// state. A delimiter immediately followed by another delimiter yields no
// entry for the first key; that is defined behavior, not a bug. An empty
// blob or one without recognized delimiters parses to an empty Record.
//
// Known edge case: a value whose prose contains another catalog name
// followed by a colon mis-splits at that point. The provider controls the
// blob and does not emit such values.
func Parse(blob string) *Record {
	rec := New()
	if blob == "" {
		return rec
	}

	matches := delimiterPattern.FindAllStringIndex(blob, -1)
	if len(matches) == 0 {
		return rec
	}

	currentKey := ""
	consume := func(piece string) {
		if strings.TrimSpace(piece) == "" {
			return
		}
		if currentKey != "" {
			rec.Set(currentKey, strings.TrimSpace(piece))
			currentKey = ""
		}
	}

	prevEnd := 0
	for _, m := range matches {
		consume(blob[prevEnd:m[0]])
		currentKey = strings.TrimSuffix(blob[m[0]:m[1]], ":")
		prevEnd = m[1]
	}
	consume(blob[prevEnd:])

	return rec
}
