package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	"github.com/outfitmatcher/backend/internal/config"
	"github.com/outfitmatcher/backend/internal/handlers"
	appMiddleware "github.com/outfitmatcher/backend/internal/middleware"
	"github.com/outfitmatcher/backend/internal/services"
	"github.com/outfitmatcher/backend/internal/storage"
	"github.com/outfitmatcher/backend/pkg/logger"
)

func main() {
	cfg := config.Load()

	zl, err := logger.New()
	if err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}
	defer zl.Sync()

	store, err := newStore(cfg, zl)
	if err != nil {
		zl.Fatal("failed to initialize storage", zap.Error(err))
	}
	defer store.Close(context.Background())

	imageStore, err := newImageStore(cfg, zl)
	if err != nil {
		zl.Fatal("failed to initialize image storage", zap.Error(err))
	}

	// Services
	closetService := services.NewClosetService(store, zl)
	outfitService := services.NewOutfitService(store, zl)
	favoriteService := services.NewFavoriteService(store, zl)
	profileService := services.NewProfileService(store, cfg.SessionSecret, cfg.SessionTTL, zl)
	imageService := services.NewImageService(imageStore, zl)

	// Handlers
	authHandler := handlers.NewAuthHandler(profileService, zl)
	closetHandler := handlers.NewClosetHandler(closetService, zl)
	outfitHandler := handlers.NewOutfitHandler(outfitService, zl)
	favoriteHandler := handlers.NewFavoriteHandler(favoriteService, zl)
	imageHandler := handlers.NewImageHandler(imageService, cfg.MaxUploadSizeMB, zl)

	// Router
	r := chi.NewRouter()

	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	r.Route("/api", func(r chi.Router) {
		// Demo login, no credentials
		r.Post("/auth/login", authHandler.Login)
		r.Post("/auth/guest", authHandler.LoginGuest)

		// Profile-scoped routes
		r.Group(func(r chi.Router) {
			r.Use(appMiddleware.SessionAuth(cfg.SessionSecret))

			r.Get("/profile", authHandler.GetProfile)

			r.Route("/closet", func(r chi.Router) {
				r.Get("/", closetHandler.ListItems)
				r.Post("/", closetHandler.AddItem)
				r.Delete("/", closetHandler.ClearCloset)
				r.Delete("/{itemId}", closetHandler.DeleteItem)
				r.Get("/{itemId}/outfits", outfitHandler.GenerateOutfits)
			})

			r.Route("/favorites", func(r chi.Router) {
				r.Get("/", favoriteHandler.ListFavorites)
				r.Post("/toggle", favoriteHandler.ToggleFavorite)
			})

			r.Post("/upload", imageHandler.Upload)
			r.Delete("/upload/{imageId}", imageHandler.Delete)
		})
	})

	// Serve locally stored uploads
	if cfg.ImageBackend == "local" {
		workDir, _ := os.Getwd()
		filesDir := http.Dir(workDir + "/" + cfg.UploadDir)
		r.Handle("/uploads/*", http.StripPrefix("/uploads/", http.FileServer(filesDir)))
	}

	zl.Info("outfit matcher API starting",
		zap.String("address", cfg.ServerAddress),
		zap.String("storage_backend", cfg.StorageBackend),
		zap.String("image_backend", cfg.ImageBackend))
	if err := http.ListenAndServe(cfg.ServerAddress, r); err != nil {
		zl.Fatal("server failed", zap.Error(err))
	}
}

func newStore(cfg *config.Config, zl *zap.Logger) (storage.Store, error) {
	if cfg.StorageBackend == "mongo" {
		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		return storage.NewMongoStore(ctx, cfg.MongoURI, cfg.MongoDB, zl)
	}
	return storage.NewFileStore(cfg.DataDir, zl)
}

func newImageStore(cfg *config.Config, zl *zap.Logger) (services.ImageStore, error) {
	if cfg.ImageBackend == "s3" {
		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		return services.NewS3ImageStore(ctx, &cfg.S3, zl)
	}
	return services.NewLocalImageStore(cfg.UploadDir)
}
