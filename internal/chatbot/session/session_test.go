package session

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Amarnath2908/Travel-Companion-chatbot/internal/chatbot/record"
)

func parisRecord() *record.Record {
	rec := record.New()
	rec.Set("Destination", "Paris")
	rec.Set("Country", "France")
	return rec
}

func TestSession_GetAfterSet(t *testing.T) {
	s := New()
	rec := parisRecord()
	s.Set("Paris", rec)

	got, ok := s.Get("Paris")
	assert.True(t, ok)
	assert.Same(t, rec, got)
}

func TestSession_DifferentCityForcesFetch(t *testing.T) {
	s := New()
	s.Set("Paris", parisRecord())

	_, ok := s.Get("London")
	assert.False(t, ok)
}

func TestSession_EmptyRecordIsNotValid(t *testing.T) {
	s := New()
	s.Set("Atlantis", record.New())

	_, ok := s.Get("Atlantis")
	assert.False(t, ok)
}

func TestSession_EmptySessionMisses(t *testing.T) {
	s := New()
	_, ok := s.Get("Paris")
	assert.False(t, ok)
}

func TestSession_SetReplacesUnconditionally(t *testing.T) {
	s := New()
	s.Set("Paris", parisRecord())

	tokyo := record.New()
	tokyo.Set("Destination", "Tokyo")
	s.Set("Tokyo", tokyo)

	_, ok := s.Get("Paris")
	assert.False(t, ok)

	got, ok := s.Get("Tokyo")
	assert.True(t, ok)
	assert.Same(t, tokyo, got)
	assert.Equal(t, "Tokyo", s.LastCity())
}

func TestSession_CaseSensitiveCityMatch(t *testing.T) {
	// City strings are compared exactly as produced by title-casing.
	s := New()
	s.Set("Paris", parisRecord())

	_, ok := s.Get("paris")
	assert.False(t, ok)
}
