// Package format renders a parsed destination record as user-facing
// markdown, either one extracted field or the whole record.
package format

import (
	"fmt"
	"strings"

	"github.com/Amarnath2908/Travel-Companion-chatbot/internal/chatbot/catalog"
	"github.com/Amarnath2908/Travel-Companion-chatbot/internal/chatbot/filter"
	"github.com/Amarnath2908/Travel-Companion-chatbot/internal/chatbot/record"
)

// ExtractField renders a single field from the record. Missing data
// degrades to an apology string; nothing here fails.
func ExtractField(rec *record.Record, field string) string {
	if rec == nil || rec.IsEmpty() {
		return fmt.Sprintf("Sorry, I couldn't find %s information.", strings.ToLower(field))
	}

	value, ok := rec.Get(field)
	if !ok {
		return fmt.Sprintf("Sorry, I couldn't find %s information for that destination.", strings.ToLower(field))
	}

	if catalog.IsListField(field) {
		value = filter.Places(value)
	}

	return fmt.Sprintf("**%s:** %s", field, value)
}

// RenderAll renders the whole record in its stored insertion order.
// Long-form fields get a separator block; everything else a compact line.
func RenderAll(rec *record.Record) string {
	if rec == nil || rec.IsEmpty() {
		return "No destination information available."
	}

	lines := make([]string, 0, rec.Len()*2)

	for _, key := range rec.Keys() {
		value, _ := rec.Get(key)

		if catalog.IsLongForm(key) {
			if catalog.IsListField(key) {
				value = filter.Places(value)
			}
			lines = append(lines, "\n---")
			lines = append(lines, fmt.Sprintf("**%s:**\n%s\n", key, value))
		} else {
			lines = append(lines, fmt.Sprintf("*%s:* **%s**", key, value))
		}
	}

	return strings.Join(lines, "\n")
}
