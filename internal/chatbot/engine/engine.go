// Package engine wires the pipeline together: intent resolution, session
// cache, aggregation fetch, blob parsing, and response formatting. Every
// path through Respond yields reply text; no error escapes to the caller.
package engine

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Amarnath2908/Travel-Companion-chatbot/internal/chatbot/format"
	"github.com/Amarnath2908/Travel-Companion-chatbot/internal/chatbot/intent"
	"github.com/Amarnath2908/Travel-Companion-chatbot/internal/chatbot/record"
	"github.com/Amarnath2908/Travel-Companion-chatbot/internal/chatbot/session"
	"github.com/Amarnath2908/Travel-Companion-chatbot/internal/common/logger"
	"github.com/Amarnath2908/Travel-Companion-chatbot/internal/common/metrics"
	"github.com/Amarnath2908/Travel-Companion-chatbot/internal/common/observability"
)

const (
	greetingReply = "Hello there! Please enter a destination name to get travel information."
	farewellReply = "Thank you for chatting with me! Have a great journey ahead!"

	nonEnglishReply = "Sorry, I can only respond in English. Please type in English."
)

// Provider returns the aggregated destination blob for a city: either
// delimiter-structured text or an apology sentence with no delimiters.
type Provider interface {
	Fetch(ctx context.Context, city string) (string, error)
}

// Classifier reports whether text is English. Consulted only when a fetch
// produced an empty record.
type Classifier func(text string) bool

type Engine struct {
	provider Provider
	classify Classifier
	obs      *observability.Observability
	logger   logger.Logger
}

func New(provider Provider, classify Classifier, obs *observability.Observability, log logger.Logger) *Engine {
	return &Engine{
		provider: provider,
		classify: classify,
		obs:      obs,
		logger:   log.With(map[string]interface{}{"component": "engine"}),
	}
}

// Respond processes one chat turn to completion. Pure aside from session
// mutation and the fetch/save side effects it triggers.
func (e *Engine) Respond(ctx context.Context, sess *session.Session, utterance string) string {
	start := time.Now()
	reply, outcome := e.respond(ctx, sess, utterance)

	metrics.ChatTurnsTotal.WithLabelValues(outcome).Inc()
	if e.obs != nil {
		e.obs.RecordTurn(ctx, outcome)
		e.obs.RecordTurnDuration(ctx, time.Since(start), outcome)
	}

	return reply
}

func (e *Engine) respond(ctx context.Context, sess *session.Session, utterance string) (string, string) {
	utterance = strings.TrimSpace(utterance)

	if intent.IsGreeting(utterance) {
		return greetingReply, "greeting"
	}
	if intent.IsFarewell(utterance) {
		return farewellReply, "farewell"
	}

	it := intent.Resolve(utterance)

	e.logger.Debug("intent resolved", map[string]interface{}{
		"city":  it.City,
		"field": it.Field,
	})

	// The cache only short-circuits single-field follow-ups; a full-record
	// request always refetches.
	var rec *record.Record
	if cached, ok := sess.Get(it.City); ok && it.Field != "" {
		rec = cached
	} else {
		rec = e.fetchAndParse(ctx, it.City)
		sess.Set(it.City, rec)
	}

	if rec.IsEmpty() {
		// Emptiness is established first; language is only consulted to
		// explain it. Single tokens are skipped: city names look the same
		// in any language.
		if len(strings.Fields(utterance)) > 1 && !e.classify(utterance) {
			return nonEnglishReply, "non_english"
		}
		return fmt.Sprintf("Sorry, I couldn't find data for '%s'. Make sure the city name is spelled correctly.", it.City), "not_found"
	}

	if it.Field != "" {
		return format.ExtractField(rec, it.Field), "field"
	}
	return format.RenderAll(rec), "full"
}

func (e *Engine) fetchAndParse(ctx context.Context, city string) *record.Record {
	blob, err := e.provider.Fetch(ctx, city)
	if err != nil {
		// Provider failures degrade to "unknown city"; the reply text is
		// decided by the empty-record branch.
		e.logger.Warn("aggregation fetch failed", map[string]interface{}{
			"city":  city,
			"error": err.Error(),
		})
		return record.New()
	}
	return record.Parse(blob)
}
