package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/you-rent/api/internal/business/rating"
	"github.com/you-rent/api/internal/platform/cache"
	"github.com/you-rent/api/internal/platform/config"
	firestoreclient "github.com/you-rent/api/internal/platform/firestore"
	apirouter "github.com/you-rent/api/internal/platform/http"
	"github.com/you-rent/api/internal/platform/logger"
	"github.com/you-rent/api/internal/platform/storage"
	"github.com/you-rent/api/internal/repository"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	_ = godotenv.Load(".env.local", ".env")

	cfg, err := config.Load()
	if err != nil {
		slog.Error("config load", "err", err)
		os.Exit(1)
	}

	log := logger.New(cfg.LogLevel)
	slog.SetDefault(log)

	gin.SetMode(cfg.GinMode)

	firestoreClient, credsSource, err := firestoreclient.New(ctx, cfg)
	if err != nil {
		log.Error("firestore init", "err", err)
		os.Exit(1)
	}
	defer firestoreClient.Close()

	if err := firestoreclient.Ping(ctx, firestoreClient); err != nil {
		log.Error("firestore ping", "err", err)
		os.Exit(1)
	}
	log.Info("connected to Firestore", "project", cfg.FirebaseProjectID, "credentials", credsSource)

	files, err := storage.New(ctx, cfg)
	if err != nil {
		log.Error("storage init", "err", err)
		os.Exit(1)
	}

	estateRepo := repository.NewEstateRepository(firestoreClient)
	criteriaRepo := repository.NewCriteriaRepository(firestoreClient)
	commentRepo := repository.NewCommentRepository(firestoreClient)
	userRepo := repository.NewUserRepository(firestoreClient)
	requestRepo := repository.NewRequestRepository(firestoreClient)

	ratingService := rating.NewService(commentRepo, repository.ScoreWriter{
		Estates: estateRepo,
		Users:   userRepo,
	}, log)

	router := apirouter.NewRouter(apirouter.Deps{
		Estates:   estateRepo,
		Criterias: criteriaRepo,
		Comments:  commentRepo,
		Users:     userRepo,
		Requests:  requestRepo,
		Ratings:   ratingService,
		Files:     files,
		Snapshots: cache.New(cfg.SnapshotTTL),
		Log:       log,
	}, cfg.AllowedOrigins)

	server := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("server error", "err", err)
			os.Exit(1)
		}
	}()
	log.Info("server listening", "port", cfg.Port)

	<-ctx.Done()
	stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("server shutdown", "err", err)
	}
	log.Info("server exited")
}
