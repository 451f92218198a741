// cmd/chatbot/main.go
package main

import (
	"bufio"
	"context"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/Amarnath2908/Travel-Companion-chatbot/internal/chatbot/engine"
	"github.com/Amarnath2908/Travel-Companion-chatbot/internal/chatbot/intent"
	"github.com/Amarnath2908/Travel-Companion-chatbot/internal/chatbot/lang"
	"github.com/Amarnath2908/Travel-Companion-chatbot/internal/chatbot/session"
	"github.com/Amarnath2908/Travel-Companion-chatbot/internal/common/config"
	"github.com/Amarnath2908/Travel-Companion-chatbot/internal/common/database"
	"github.com/Amarnath2908/Travel-Companion-chatbot/internal/common/logger"
	"github.com/Amarnath2908/Travel-Companion-chatbot/internal/common/observability"
	"github.com/Amarnath2908/Travel-Companion-chatbot/internal/providers/aggregator"
	"github.com/Amarnath2908/Travel-Companion-chatbot/internal/providers/country"
	"github.com/Amarnath2908/Travel-Companion-chatbot/internal/providers/weather"
	"github.com/Amarnath2908/Travel-Companion-chatbot/internal/providers/wiki"
	"github.com/Amarnath2908/Travel-Companion-chatbot/internal/storage/destinations"
)

// retryWithBackoff attempts to execute a function with exponential backoff
func retryWithBackoff(operation func() error, maxRetries int, initialDelay time.Duration, log *zap.Logger, operationName string) error {
	var err error
	delay := initialDelay

	for i := 0; i < maxRetries; i++ {
		err = operation()
		if err == nil {
			return nil
		}

		if i < maxRetries-1 {
			log.Warn(fmt.Sprintf("%s failed, retrying...", operationName),
				zap.Error(err),
				zap.Int("attempt", i+1),
				zap.Int("maxRetries", maxRetries),
				zap.Duration("nextRetryIn", delay),
			)
			time.Sleep(delay)
			delay *= 2 // Exponential backoff
		}
	}

	return fmt.Errorf("%s failed after %d attempts: %w", operationName, maxRetries, err)
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config load failed: %v\n", err)
		os.Exit(1)
	}

	zapLog := logger.New(cfg.Logging.Level, cfg.Logging.Format)
	defer zapLog.Sync()

	// Wrap zap logger with our logger interface
	log := logger.NewZapAdapter(zapLog)

	zapLog.Info("Starting travel companion chatbot...")

	obs := observability.New(cfg.App.Name)
	defer obs.Shutdown()

	ctx := context.Background()

	// --- Init PostgreSQL with retry ---
	var pg *database.PostgresClient
	err = retryWithBackoff(func() error {
		var err error
		pg, err = database.NewPostgres(cfg.Database.Postgres)
		if err != nil {
			return err
		}
		// Test the connection with context
		return pg.Ping(ctx)
	}, 10, 2*time.Second, zapLog, "PostgreSQL connection")

	if err != nil {
		zapLog.Fatal("postgres failed after retries", zap.Error(err))
	}
	defer pg.Close()
	zapLog.Info("PostgreSQL connected successfully")

	// --- Init Redis with retry ---
	var rdb *database.RedisClient
	err = retryWithBackoff(func() error {
		var err error
		rdb, err = database.NewRedis(cfg.Database.Redis)
		if err != nil {
			return err
		}
		// Test the connection with context
		return rdb.Ping(ctx)
	}, 10, 2*time.Second, zapLog, "Redis connection")

	if err != nil {
		zapLog.Fatal("redis failed after retries", zap.Error(err))
	}
	defer rdb.Close()
	zapLog.Info("Redis connected successfully")

	// --- Init provider clients ---
	weatherClient := weather.NewClient(&weather.Config{
		BaseURL:    cfg.APIs.OpenWeather.BaseURL,
		APIKey:     cfg.APIs.OpenWeather.APIKey,
		Timeout:    config.GetDuration(cfg.APIs.OpenWeather.Timeout),
		MaxRetries: cfg.APIs.OpenWeather.MaxRetries,
	}, log)

	countryClient := country.NewClient(&country.Config{
		BaseURL:    cfg.APIs.RestCountries.BaseURL,
		Timeout:    config.GetDuration(cfg.APIs.RestCountries.Timeout),
		MaxRetries: cfg.APIs.RestCountries.MaxRetries,
	}, log)

	wikiClient := wiki.NewClient(&wiki.Config{
		BaseURL:        cfg.APIs.Wikipedia.BaseURL,
		Timeout:        config.GetDuration(cfg.APIs.Wikipedia.Timeout),
		MaxRetries:     cfg.APIs.Wikipedia.MaxRetries,
		MaxAttractions: cfg.APIs.Wikipedia.MaxAttractions,
	}, log)

	store := destinations.NewStore(pg.DB, log)

	agg := aggregator.New(
		weatherClient, countryClient, wikiClient,
		rdb.Client, store,
		config.GetTTL(cfg.Cache.TTL),
		log,
	)

	bot := engine.New(agg, lang.IsEnglish, obs, log)

	// --- Metrics endpoint ---
	if cfg.Metrics.Enabled {
		go func() {
			mux := http.NewServeMux()
			mux.Handle("/metrics", promhttp.Handler())
			zapLog.Info("Metrics endpoint listening", zap.String("address", cfg.Metrics.Address))
			if err := http.ListenAndServe(cfg.Metrics.Address, mux); err != nil {
				zapLog.Error("metrics server stopped", zap.Error(err))
			}
		}()
	}

	runChatLoop(ctx, bot, cfg.Chat.Prompt)
}

// runChatLoop drives a line-oriented conversation on stdin until the user
// says goodbye or input ends.
func runChatLoop(ctx context.Context, bot *engine.Engine, prompt string) {
	sess := session.New()
	scanner := bufio.NewScanner(os.Stdin)

	fmt.Println("Bot: Hello there! Please enter a destination name to get travel information.")

	for {
		fmt.Print(prompt)
		if !scanner.Scan() {
			break
		}

		input := strings.TrimSpace(scanner.Text())
		if input == "" {
			continue
		}

		reply := bot.Respond(ctx, sess, input)
		fmt.Println("Bot: " + reply)

		if intent.IsFarewell(input) {
			break
		}
	}
}
