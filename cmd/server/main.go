// cmd/server/main.go
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/FaizBuildsStuff/matera-media/internal/api"
	"github.com/FaizBuildsStuff/matera-media/internal/common/config"
	"github.com/FaizBuildsStuff/matera-media/internal/common/database"
	"github.com/FaizBuildsStuff/matera-media/internal/common/logger"
	"github.com/FaizBuildsStuff/matera-media/internal/common/observability"
	"github.com/FaizBuildsStuff/matera-media/internal/content"
	"github.com/FaizBuildsStuff/matera-media/internal/crm"
	"github.com/FaizBuildsStuff/matera-media/internal/inquiry"
	"github.com/FaizBuildsStuff/matera-media/internal/notify"
	"github.com/FaizBuildsStuff/matera-media/internal/sections"
)

func main() {
	zapLog := logger.New("info", "console")
	defer zapLog.Sync()

	// Wrap zap logger with our logger interface
	log := logger.NewZapAdapter(zapLog)

	zapLog.Info("Starting site server...")

	// CONFIG_FILE pins an exact config path (containers, systemd units);
	// otherwise the loader searches the usual config directories.
	var cfg *config.Config
	var err error
	if path := os.Getenv("CONFIG_FILE"); path != "" {
		cfg, err = config.LoadFromFile(path)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		zapLog.Fatal("config load failed", zap.Error(err))
	}

	obs := observability.New(cfg.App.Name)
	defer obs.Shutdown()

	ctx := context.Background()

	// --- Content store ---
	storeClient := content.NewClient(cfg.Content)
	var pages content.PageFetcher = storeClient

	// --- Redis (page cache + form drafts), optional ---
	var drafts inquiry.DraftStore = inquiry.NewMemoryDraftStore()
	if cfg.Database.Redis.Address != "" {
		redisClient, err := database.NewRedis(cfg.Database.Redis)
		if err == nil {
			err = redisClient.Ping(ctx)
		}
		if err != nil {
			zapLog.Warn("redis unavailable, caching and draft persistence degrade to in-process",
				zap.Error(err))
		} else {
			defer redisClient.Close()
			zapLog.Info("Redis connected successfully")
			if cfg.Content.CacheTTL > 0 {
				pages = content.NewCachedPages(storeClient, redisClient,
					time.Duration(cfg.Content.CacheTTL)*time.Second, log)
			}
			drafts = inquiry.NewRedisDraftStore(redisClient)
		}
	}

	// --- Inquiry pipeline ---
	service := inquiry.NewService(storeClient, log)

	if cfg.Database.Postgres.Enabled {
		pg, err := database.NewPostgres(cfg.Database.Postgres)
		if err == nil {
			err = pg.Ping(ctx)
		}
		if err != nil {
			zapLog.Warn("postgres unavailable, lead archive disabled", zap.Error(err))
		} else {
			defer pg.Close()
			zapLog.Info("PostgreSQL connected successfully")
			service.WithArchive(inquiry.NewLeadArchive(pg.DB, log))
		}
	}

	if cfg.Notifications.Email.Enabled || cfg.Notifications.SMS.Enabled {
		notifier, err := notify.NewLeadNotifier(ctx, cfg.Notifications, cfg.Integrations.AWS.Region, log)
		if err != nil {
			zapLog.Warn("lead notifier unavailable", zap.Error(err))
		} else {
			service.WithNotifier(notifier)
		}
	}

	if cfg.Integrations.Zoho.Enabled {
		service.WithCRM(crm.NewZohoClient(cfg.Integrations.Zoho.AuthToken))
	}

	// --- Rendering ---
	renderer, err := sections.NewRenderer(log)
	if err != nil {
		zapLog.Fatal("section renderer init failed", zap.Error(err))
	}

	engine := api.NewRouter(api.Deps{
		Logger:        log,
		Observability: obs,
		Pages:         pages,
		Renderer:      renderer,
		Inquiries:     service,
		Flow:          inquiry.NewFlow(drafts, service, log),
	})

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      engine,
		ReadTimeout:  config.GetDuration(cfg.Server.ReadTimeout),
		WriteTimeout: config.GetDuration(cfg.Server.WriteTimeout),
	}

	go func() {
		zapLog.Info("HTTP server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			zapLog.Fatal("http server failed", zap.Error(err))
		}
	}()

	// --- Graceful shutdown ---
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	zapLog.Info("Shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), config.GetDuration(cfg.Server.ShutdownTimeout))
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		zapLog.Error("graceful shutdown failed", zap.Error(err))
	}
	zapLog.Info("Server stopped")
}
