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

	"go.uber.org/zap"

	"github.com/hubsite/hubsite/internal/api"
	"github.com/hubsite/hubsite/internal/logger"
	"github.com/hubsite/hubsite/internal/web"
	"github.com/hubsite/hubsite/pkg/hubsite"
	"github.com/hubsite/hubsite/pkg/hubsite/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load server configuration: %v", err)
	}

	zl := logger.New(cfg.LogLevel)
	defer zl.Sync()

	// The seed is mandatory: serving with no content is worse than not
	// starting.
	seed, err := hubsite.LoadSeed(cfg.SeedPath)
	if err != nil {
		zl.Fatal("failed to load seed document", zap.String("path", cfg.SeedPath), zap.Error(err))
	}
	store := hubsite.NewStore(seed)

	// The promo deck is optional: missing or malformed means an empty
	// carousel head, not a failed startup.
	promo, err := hubsite.LoadPromo(cfg.PromoPath)
	if err != nil {
		zl.Warn("proceeding without promo slides", zap.String("path", cfg.PromoPath), zap.Error(err))
		promo = &hubsite.PromoDeck{}
	}

	renderer, err := web.NewRenderer()
	if err != nil {
		zl.Fatal("failed to parse templates", zap.Error(err))
	}

	composer := hubsite.NewComposer(store, promo, renderer)
	server := api.NewServer(composer, renderer, zl, cfg)

	httpServer := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.Port),
		Handler: server.Routes(),
	}

	go func() {
		zl.Info("hubsite server starting",
			zap.String("port", cfg.Port),
			zap.String("environment", cfg.Environment),
			zap.Int("posts", len(seed.Posts)),
			zap.Int("tools", len(seed.Tools)),
			zap.Int("promo_slides", len(promo.Slides)),
		)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			zl.Fatal("server error", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	zl.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := httpServer.Shutdown(ctx); err != nil {
		zl.Fatal("server forced to shutdown", zap.Error(err))
	}

	zl.Info("server exiting")
}
