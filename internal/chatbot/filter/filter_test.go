package filter

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPlaces_DropsYearsAndKeywords(t *testing.T) {
	got := Places("Paris,2024 Olympics,Eiffel Tower,2023 Film Festival")
	assert.Equal(t, "Paris, Eiffel Tower", got)
}

func TestPlaces_KeywordMatchIsCaseInsensitive(t *testing.T) {
	got := Places("Louvre, Best MOVIE Locations, Notre-Dame")
	assert.Equal(t, "Louvre, Notre-Dame", got)
}

func TestPlaces_EmptyInputYieldsSentinel(t *testing.T) {
	assert.Equal(t, NoItemsSentinel, Places(""))
	assert.Equal(t, NoItemsSentinel, Places("   "))
}

func TestPlaces_AllFilteredYieldsSentinel(t *testing.T) {
	got := Places("2024 Olympics, General election, Horror movie night")
	assert.Equal(t, NoItemsSentinel, got)
}

func TestPlaces_TrimsSurroundingWhitespace(t *testing.T) {
	got := Places("  Eiffel Tower ,   Louvre  ")
	assert.Equal(t, "Eiffel Tower, Louvre", got)
}

func TestPlaces_Idempotent(t *testing.T) {
	inputs := []string{
		"Paris,2024 Olympics,Eiffel Tower,2023 Film Festival",
		"",
		"2024 Olympics",
		"Tokyo Tower, Shibuya Crossing",
	}
	for _, in := range inputs {
		once := Places(in)
		twice := Places(once)
		assert.Equal(t, once, twice, "input %q", in)
	}
}

func TestPlaces_FourDigitNumberMustBeStandalone(t *testing.T) {
	// 5-digit numbers and embedded digits are not years.
	got := Places("Route 66, Gallery 10000 Steps")
	assert.Equal(t, "Route 66, Gallery 10000 Steps", got)
}
