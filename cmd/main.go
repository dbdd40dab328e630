package main

import (
	"context"
	"os"

	"github.com/gofiber/fiber/v2"

	"github.com/Olelouer/backend-chatop/config"
	"github.com/Olelouer/backend-chatop/db"
	authhandler "github.com/Olelouer/backend-chatop/internal/auth/handler"
	authrepo "github.com/Olelouer/backend-chatop/internal/auth/repository/postgres"
	authservice "github.com/Olelouer/backend-chatop/internal/auth/service"
	"github.com/Olelouer/backend-chatop/internal/logging"
	messagehandler "github.com/Olelouer/backend-chatop/internal/message/handler"
	messagerepo "github.com/Olelouer/backend-chatop/internal/message/repository/postgres"
	messageservice "github.com/Olelouer/backend-chatop/internal/message/service"
	"github.com/Olelouer/backend-chatop/internal/middleware"
	rentalhandler "github.com/Olelouer/backend-chatop/internal/rental/handler"
	rentalrepo "github.com/Olelouer/backend-chatop/internal/rental/repository/postgres"
	rentalservice "github.com/Olelouer/backend-chatop/internal/rental/service"
	"github.com/Olelouer/backend-chatop/internal/storage"
)

func main() {
	ctx := context.Background()
	log := logging.NewDefault()

	cfg := config.Load()

	if err := db.RunMigrations(ctx, cfg.DBURL); err != nil {
		log.Error(ctx, "migrations failed", "error", err)
		os.Exit(1)
	}

	pool, err := db.NewPostgresPool(ctx, cfg.DBURL)
	if err != nil {
		log.Error(ctx, "database connection failed", "error", err)
		os.Exit(1)
	}
	defer pool.Close()

	store, err := newStorage(ctx, cfg)
	if err != nil {
		log.Error(ctx, "storage init failed", "error", err)
		os.Exit(1)
	}

	tokenService, err := authservice.NewTokenService(cfg.TokenSecret, cfg.TokenExpiryMin)
	if err != nil {
		log.Error(ctx, "token service init failed", "error", err)
		os.Exit(1)
	}

	userRepo := authrepo.NewPostgresRepository(pool)
	userService := authservice.NewUserService(userRepo, tokenService)
	authHandler := authhandler.NewAuthHandler(userService)

	rentalRepo := rentalrepo.NewPostgresRepository(pool)
	rentalService := rentalservice.NewRentalService(rentalRepo, store, log)
	rentalHandler := rentalhandler.NewRentalHandler(rentalService)

	messageRepo := messagerepo.NewPostgresRepository(pool)
	messageService := messageservice.NewMessageService(messageRepo, rentalRepo, userRepo)
	messageHandler := messagehandler.NewMessageHandler(messageService)

	authenticate := middleware.Authenticate(tokenService, userRepo, log)

	app := fiber.New(fiber.Config{
		BodyLimit: 10 << 20, // rental pictures arrive inline in the form
	})

	authhandler.RegisterRoutes(app, authHandler, authenticate)
	rentalhandler.RegisterRoutes(app, rentalHandler, authenticate)
	messagehandler.RegisterRoutes(app, messageHandler, authenticate)

	if local, ok := store.(*storage.Local); ok {
		app.Static("/uploads", local.Dir())
	}

	log.Info(ctx, "server starting", "port", cfg.Port, "env", cfg.Env, "storage", cfg.StorageDriver)

	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Error(ctx, "server stopped", "error", err)
		os.Exit(1)
	}
}

func newStorage(ctx context.Context, cfg *config.Config) (storage.Storage, error) {
	if cfg.StorageDriver == "s3" {
		return storage.NewS3(ctx, storage.S3Options{
			Bucket:    cfg.S3Bucket,
			Region:    cfg.S3Region,
			Endpoint:  cfg.S3Endpoint,
			AccessKey: cfg.S3AccessKey,
			SecretKey: cfg.S3SecretKey,
		})
	}

	return storage.NewLocal(cfg.UploadDir, cfg.PublicBaseURL)
}
