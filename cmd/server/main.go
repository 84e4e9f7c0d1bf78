package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/irahulsinghrajput/BrandMark/internal/config"
	"github.com/irahulsinghrajput/BrandMark/internal/handler"
	"github.com/irahulsinghrajput/BrandMark/internal/logging"
	"github.com/irahulsinghrajput/BrandMark/internal/mailer"
	"github.com/irahulsinghrajput/BrandMark/internal/repository"
	"github.com/irahulsinghrajput/BrandMark/internal/service"
	"github.com/irahulsinghrajput/BrandMark/internal/storage"
	"github.com/irahulsinghrajput/BrandMark/pkg/auth"
	"github.com/irahulsinghrajput/BrandMark/pkg/gemini"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	logging.Setup(cfg.LogLevel)
	cfg.Log(slog.Default())

	ctx := context.Background()

	store, err := openStore(ctx, cfg)
	if err != nil {
		logging.Fatal("failed to connect to database", "driver", cfg.Database.Driver, "error", err)
	}
	defer store.Close()

	files, err := openStorage(ctx, cfg)
	if err != nil {
		logging.Fatal("failed to configure uploads", "error", err)
	}

	var sender mailer.Sender = mailer.LogSender{}
	if cfg.Email.Enabled() {
		sender = mailer.NewSMTPSender(mailer.SMTPConfig{
			Host:     cfg.Email.Host,
			Port:     cfg.Email.Port,
			Username: cfg.Email.User,
			Password: cfg.Email.Password,
			From:     cfg.Email.From,
		})
	}
	notifier := mailer.New(sender, cfg.Email.Operator, cfg.PublicURL)

	counters, closeCounters := openCounterStore(ctx, cfg)
	defer closeCounters()

	tokens := auth.NewTokenService(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)
	adminService := service.NewAdminService(store.Admins, store.Dashboard, tokens, cfg.Auth.AllowOpenAdminSignup)
	contactService := service.NewContactService(store.Contacts, notifier)
	careerService := service.NewCareerService(store.Careers, files, notifier, cfg.Uploads.MaxFileSize)
	quoteService := service.NewQuoteService(store.Quotes, notifier)
	newsletterService := service.NewNewsletterService(store.Subscribers, notifier)
	blogService := service.NewBlogService(store.Blogs, files, cfg.Uploads.MaxFileSize)
	chatService := service.NewChatService(openGemini(ctx, cfg))

	router := &handler.Router{
		Health:     handler.New(store.DB, cfg.FrontendURL),
		Admin:      handler.NewAdminHandler(adminService),
		Contact:    handler.NewContactHandler(contactService),
		Career:     handler.NewCareerHandler(careerService, cfg.Uploads.MaxFileSize),
		Quote:      handler.NewQuoteHandler(quoteService),
		Newsletter: handler.NewNewsletterHandler(newsletterService),
		Blog:       handler.NewBlogHandler(blogService, cfg.Uploads.MaxFileSize),
		Chat:       handler.NewChatHandler(chatService),

		Auth:    auth.NewMiddleware(tokens, adminService),
		Limiter: handler.NewRateLimiter(counters, cfg.RateLimit.Max, cfg.RateLimit.Window, cfg.RateLimit.TrustedProxies),

		ExposeErrors: !cfg.IsProduction(),
	}
	if local, ok := files.(*storage.LocalStorage); ok {
		router.UploadDir = local.Dir()
	}

	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       60 * time.Second,
		WriteTimeout:      60 * time.Second,
	}

	go func() {
		slog.Info("server listening", "addr", server.Addr, "env", cfg.Env)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logging.Fatal("server error", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("shutdown error", "error", err)
	}
}

func openStore(ctx context.Context, cfg *config.Config) (*repository.Store, error) {
	if cfg.Database.Driver == config.DriverMongo {
		client, err := repository.NewMongo(ctx, cfg.Database.URL)
		if err != nil {
			return nil, err
		}
		store := repository.NewMongoStore(client, cfg.Database.MongoDatabase)
		if err := repository.EnsureIndexes(ctx, client.Database(cfg.Database.MongoDatabase)); err != nil {
			store.Close()
			return nil, fmt.Errorf("ensure indexes: %w", err)
		}
		return store, nil
	}
	pool, err := repository.NewPool(ctx, cfg.Database.URL)
	if err != nil {
		return nil, err
	}
	return repository.NewPgStore(pool), nil
}

func openStorage(ctx context.Context, cfg *config.Config) (storage.Storage, error) {
	if cfg.Uploads.S3Bucket != "" {
		return storage.NewS3Storage(ctx, cfg.Uploads.S3Bucket, cfg.Uploads.S3PublicURL)
	}
	if err := os.MkdirAll(cfg.Uploads.Dir, 0o755); err != nil {
		return nil, err
	}
	return storage.NewLocalStorage(cfg.Uploads.Dir, cfg.Uploads.URLPrefix), nil
}

// openCounterStore prefers Redis and falls back to process memory when
// REDIS_URL is unset or unreachable.
func openCounterStore(ctx context.Context, cfg *config.Config) (handler.CounterStore, func()) {
	if cfg.RateLimit.RedisURL != "" {
		pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()
		client, err := handler.NewRedisClient(pingCtx, cfg.RateLimit.RedisURL)
		if err == nil {
			return handler.NewRedisCounterStore(client), func() { _ = client.Close() }
		}
		slog.Warn("redis unavailable, using in-memory rate limit counters", "error", err)
	}
	mem := handler.NewMemoryCounterStore(time.Minute)
	return mem, mem.Close
}

// openGemini returns nil when no credentials are configured; the chat
// endpoint then answers with its "not configured" reply.
func openGemini(ctx context.Context, cfg *config.Config) gemini.Client {
	switch {
	case cfg.Gemini.APIKey != "":
		return gemini.NewClient(cfg.Gemini.APIKey, cfg.Gemini.Model)
	case cfg.Gemini.UseADC:
		c, err := gemini.NewADCClient(ctx, cfg.Gemini.Model)
		if err != nil {
			slog.Warn("gemini application default credentials unavailable", "error", err)
			return nil
		}
		return c
	default:
		return nil
	}
}
