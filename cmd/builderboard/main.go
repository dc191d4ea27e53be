package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"builderboard/internal/alert"
	"builderboard/internal/application"
	"builderboard/internal/auth"
	"builderboard/internal/cache"
	"builderboard/internal/config"
	"builderboard/internal/db"
	httpx "builderboard/internal/http"
	"builderboard/internal/job"
	"builderboard/internal/listing"
	"builderboard/internal/mailer"
	"builderboard/internal/profile"
	"builderboard/internal/shortlist"

	"github.com/sirupsen/logrus"
)

func main() {
	cfg, _ := config.Load()

	gdb, err := db.Connect(cfg.DatabaseURL)
	if err != nil {
		logrus.Fatal(err)
	}
	if err := db.AutoMigrateAndIndexes(gdb); err != nil {
		logrus.Fatal(err)
	}

	sender, err := mailer.NewSender(cfg)
	if err != nil {
		logrus.Fatal(err)
	}
	notifier := &mailer.Notifier{Sender: sender, From: cfg.EmailFrom}
	alerts := alert.NewWebhook(cfg.SlackWebhookURL)

	redisClient, err := cache.NewClient(context.Background(), cfg.RedisAddr)
	if err != nil {
		logrus.Fatal(err)
	}

	jwtSvc := auth.NewJWT(cfg.JWTSecret)

	workflow := &application.Service{
		DB:       gdb,
		Signer:   application.NewTokenSigner(cfg.DecisionTokenSecret),
		Notifier: notifier,
		Alerts:   alerts,
		BaseURL:  cfg.AppBaseURL,
	}

	r := httpx.NewRouter(cfg, httpx.Deps{
		DB:        gdb,
		JWT:       jwtSvc,
		Workflow:  workflow,
		Listings:  &listing.Service{DB: gdb, Cache: &cache.Cache{Client: redisClient}},
		Jobs:      &job.Service{DB: gdb},
		Profiles:  &profile.Service{DB: gdb},
		Bookmarks: &shortlist.Service{DB: gdb},
	})

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		logrus.WithField("addr", cfg.HTTPAddr).Info("listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.Fatal(err)
		}
	}()

	// graceful shutdown
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)
	<-ch

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	_ = srv.Shutdown(shutdownCtx)
}
