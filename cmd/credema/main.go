package main

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"credema/internal/concierge"
	"credema/internal/config"
	"credema/internal/datasync"
	"credema/internal/poll"
	"credema/internal/ratelimit"
	"credema/internal/server"
	"credema/internal/session"
	"credema/internal/util"
	"credema/pkg/ai"
	"credema/pkg/cache"
	"credema/pkg/domain"
	"credema/pkg/store"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load(config.ConfigPath)
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	pollInterval, err := config.ParsePollInterval(cfg.PollInterval)
	if err != nil {
		log.Fatalf("failed to parse poll interval: %v", err)
	}
	sessionTTL, err := config.ParseSessionTTL(cfg.SessionTTL)
	if err != nil {
		log.Fatalf("failed to parse session TTL: %v", err)
	}

	logger := util.InitLogger(cfg.LogLevel)

	var remote store.RemoteStore
	if cfg.DatabaseURL != "" {
		gormStore, err := store.NewGormStore(cfg.DatabaseURL)
		if err != nil {
			log.Fatalf("failed to init database store: %v", err)
		}
		remote = gormStore
		logger.Info("remote store ready", "backend", "postgres")
	} else {
		remote = store.NewMemoryStore()
		logger.Warn("no DATABASE_URL set, using in-memory store")
	}

	var local cache.Cache
	if cfg.RedisAddr != "" {
		local = cache.NewRedisCache(cfg.RedisAddr, cfg.RedisPassword)
		logger.Info("local cache ready", "backend", "redis", "addr", cfg.RedisAddr)
	} else {
		fileCache, err := cache.NewFileCache(cfg.CacheDir)
		if err != nil {
			log.Fatalf("failed to init file cache: %v", err)
		}
		local = fileCache
		logger.Info("local cache ready", "backend", "file", "dir", cfg.CacheDir)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	data := datasync.New(remote, local, logger)
	sessions := session.NewManager(data, local, logger)
	restored := sessions.RefreshOnStartup(ctx)
	if restored.ID != "" {
		logger.Info("session restored", "account_id", restored.ID, "role", restored.Role)
	}

	var advisor *concierge.Advisor
	if cfg.AIBaseURL != "" && cfg.AIAPIKey != "" {
		advisor = concierge.NewAdvisor(ai.NewChatClient(cfg.AIBaseURL, cfg.AIAPIKey, cfg.AIModel))
	} else {
		logger.Warn("AI credentials not set, concierge disabled")
	}

	poller := poll.New(data, logPublisher{log: logger}, pollInterval, logger)
	go poller.Run(ctx)
	<-poller.Ready()

	var loginLimit, chatLimit *ratelimit.FixedWindowLimiter
	if cfg.RedisAddr != "" {
		loginLimit, err = newLimiter(cfg, "login", cfg.LoginRateLimitPerMinute, 10)
		if err != nil {
			log.Fatalf("failed to init login limiter: %v", err)
		}
		chatLimit, err = newLimiter(cfg, "chat", cfg.ChatRateLimitPerMinute, 20)
		if err != nil {
			log.Fatalf("failed to init chat limiter: %v", err)
		}
	}

	httpServer := server.New(server.Config{
		Data:       data,
		Sessions:   sessions,
		Advisor:    advisor,
		JWTSecret:  cfg.JWTSecret,
		SessionTTL: sessionTTL,
		LoginLimit: loginLimit,
		ChatLimit:  chatLimit,
	})

	addr := ":" + cfg.Port
	srv := &http.Server{
		Addr:         addr,
		Handler:      httpServer.Router(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("shutdown error", "err", err)
		}
	}()

	slog.Info("server listening", "addr", addr)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Error("server error", "err", err)
	}
}

func newLimiter(cfg config.FileConfig, name string, limit, fallback int) (*ratelimit.FixedWindowLimiter, error) {
	if limit <= 0 {
		limit = fallback
	}
	prefix := "credema:ratelimit:" + name
	return ratelimit.NewRedisFixedWindowLimiter(cfg.RedisAddr, cfg.RedisPassword, prefix, limit, time.Minute)
}

// logPublisher records collection changes in the log; the HTTP console
// reads snapshots on demand, so observing the change stream is all the
// process itself needs from the poller.
type logPublisher struct {
	log *slog.Logger
}

func (p logPublisher) PublishAccounts(accounts []domain.Account) {
	p.log.Info("accounts changed", "count", len(accounts))
}

func (p logPublisher) PublishDeals(deals []domain.Deal) {
	p.log.Info("deals changed", "count", len(deals))
}

func (p logPublisher) PublishPosts(posts []domain.BlogPost) {
	p.log.Info("posts changed", "count", len(posts))
}
