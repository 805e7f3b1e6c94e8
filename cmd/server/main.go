package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ahpc/backend/internal/backend"
	"github.com/ahpc/backend/internal/config"
	"github.com/ahpc/backend/internal/handler"
	"github.com/ahpc/backend/internal/logging"
	"github.com/ahpc/backend/internal/notify"
	"github.com/ahpc/backend/internal/service"
	"github.com/ahpc/backend/pkg/auth"
)

func main() {
	cfg := config.Load()
	logging.Setup(cfg.SentryDSN)
	defer logging.Flush()

	ctx := context.Background()
	be, err := backend.New(ctx, cfg)
	if err != nil {
		logging.Fatal("backend init failed", "error", err)
	}
	defer be.Close()

	// SendGrid 未設定の場合はログ出力のみ
	notifier := notify.New(cfg.SendGridAPIKey, "AHPC", cfg.NotifyFromEmail, cfg.NotifyEmail)

	activityService := service.NewActivityService(be.Activities, be.Storage)
	galleryService := service.NewGalleryService(be.Gallery, be.Storage)
	contactService := service.NewContactService(be.Contacts, notifier)

	router := handler.NewRouter(handler.RouterConfig{
		FrontendURL:     cfg.FrontendURL,
		PagesDir:        cfg.PagesDir,
		UploadDir:       cfg.UploadDir,
		UploadURLPrefix: cfg.UploadURLPrefix,
		SessionSecret:   auth.SecretBytes(cfg.SessionSecret),
		Secure:          cfg.IsProduction(),
		Site: handler.SiteConfig{
			MockMode:          !be.Configured(),
			DonationWidgetURL: cfg.DonationWidgetURL,
		},
	}, handler.Services{
		DB:         be.DB(),
		Auth:       be.SessionBackend(),
		Activities: activityService,
		Gallery:    galleryService,
		Contacts:   contactService,
	})

	server := &http.Server{
		Addr:              cfg.ListenAddr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
	}

	go func() {
		slog.Info("server listening", "addr", server.Addr, "mock_mode", !be.Configured())
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logging.Fatal("server error", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("shutdown error", "error", err)
	}
	slog.Info("server stopped")
}
