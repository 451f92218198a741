package lang

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsEnglish(t *testing.T) {
	tests := []struct {
		text string
		want bool
	}{
		{"what is the weather in london", true},
		{"currency of japan", true},
		{"Tokyo", true},
		{"München", true}, // single token, could be a city name
		{"¿cuál es el clima en parís?", false},
		{"quelle est la météo à paris aujourd'hui", false},
		{"東京の天気はどうですか", false},
		{"Какая погода в Москве", false},
		{"", true},
		{"123 456", true},
		{"places to visit in new york", true},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			assert.Equal(t, tt.want, IsEnglish(tt.text), "text %q", tt.text)
		})
	}
}
