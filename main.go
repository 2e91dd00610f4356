package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"

	"github.com/abdukarimov0990/Yangi-bot/internal/config"
	"github.com/abdukarimov0990/Yangi-bot/internal/handlers"
	"github.com/abdukarimov0990/Yangi-bot/internal/middleware"
	"github.com/abdukarimov0990/Yangi-bot/store"
	"github.com/abdukarimov0990/Yangi-bot/types"
)

func main() {
	_ = config.LoadEnvFile("config.env")

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	var sessions types.SessionStore
	if cfg.RedisAddr != "" {
		rdb, err := store.NewRedisClient(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB, "hiring_bot")
		if err != nil {
			log.Fatalf("Failed to connect to Redis: %v", err)
		}
		defer rdb.Close()
		sessions = store.NewRedisSessionStore(rdb, cfg.SessionTTLHours)
	} else {
		mem := store.NewMemorySessionStore(time.Duration(cfg.SessionTTLHours) * time.Hour)
		sessions = mem
		go func() {
			ticker := time.NewTicker(time.Hour)
			defer ticker.Stop()
			for {
				select {
				case <-ctx.Done():
					return
				case <-ticker.C:
					if n := mem.Cleanup(); n > 0 {
						log.Printf("Evicted %d idle sessions", n)
					}
				}
			}
		}()
	}

	var archive types.ApplicationStore
	if cfg.PostgresDSN != "" {
		pgStore, err := store.NewPostgresStore(ctx, cfg.PostgresDSN)
		if err != nil {
			log.Fatalf("Failed to connect to Postgres: %v", err)
		}
		defer pgStore.Close()
		archive = pgStore
	}

	h := handlers.NewHandlers(sessions, archive, cfg.ChannelID)
	middlewares := middleware.NewMessageAnalyzer(sessions)

	handlerChain := middlewares.SessionMiddleware(
		middlewares.AnalyzeMessageMiddleware(
			h.MainHandler,
		),
	)

	httpClient := &http.Client{
		Timeout: 10 * time.Minute,
	}
	pollTimeout := 50 * time.Second

	b, err := bot.New(
		cfg.BotToken,
		bot.WithHTTPClient(pollTimeout, httpClient),
	)
	if err != nil {
		log.Fatalf("Failed to create bot: %v", err)
	}

	b.RegisterHandlerMatchFunc(func(update *models.Update) bool {
		return update.Message != nil
	}, handlerChain)

	b.RegisterHandler(bot.HandlerTypeCallbackQueryData, "", bot.MatchTypePrefix, handlerChain)

	// Webhook when a public domain is configured, long polling otherwise.
	// Never both.
	if cfg.WebhookDomain != "" {
		if _, err := b.SetWebhook(ctx, &bot.SetWebhookParams{URL: cfg.WebhookURL()}); err != nil {
			log.Fatalf("Failed to set webhook: %v", err)
		}

		srv := &http.Server{
			Addr:    fmt.Sprintf(":%d", cfg.Port),
			Handler: b.WebhookHandler(),
		}
		go func() {
			<-ctx.Done()
			shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer shutdownCancel()
			_ = srv.Shutdown(shutdownCtx)
		}()
		go func() {
			if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				log.Fatalf("Webhook server failed: %v", err)
			}
		}()

		log.Printf("Bot started in webhook mode on port %d", cfg.Port)
		b.StartWebhook(ctx)
		return
	}

	log.Println("Bot started in polling mode. Press Ctrl+C to stop.")
	b.Start(ctx)
}
