package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
	"github.com/storylens/storylens-go/internal/config"
	"github.com/storylens/storylens-go/internal/handler"
	"github.com/storylens/storylens-go/internal/middleware"
	"github.com/storylens/storylens-go/internal/repository"
	"github.com/storylens/storylens-go/internal/service"
	"github.com/storylens/storylens-go/internal/storage"
)

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Warn("no .env file found, using environment variables")
	}

	cfg := config.Load()

	db, err := repository.NewDB(cfg.DatabaseDSN)
	if err != nil {
		slog.Error("database connection failed", "error", err)
		os.Exit(1)
	}
	if err := repository.Migrate(db); err != nil {
		slog.Error("database migration failed", "error", err)
		os.Exit(1)
	}

	if err := os.MkdirAll(cfg.UploadDir, 0o755); err != nil {
		slog.Error("creating upload dir failed", "dir", cfg.UploadDir, "error", err)
		os.Exit(1)
	}
	store := storage.New(cfg.UploadDir, cfg.MaxUploadSize)

	userRepo := repository.NewUserRepository(db)
	sessionRepo := repository.NewSessionRepository(db)
	photoRepo := repository.NewPhotoRepository(db)
	editRepo := repository.NewEditHistoryRepository(db)

	authHandler := handler.NewAuthHandler(service.NewAuthService(userRepo, cfg.JWTSecret, cfg.AccessExpiry, cfg.RefreshExpiry))
	userHandler := handler.NewUserHandler(service.NewUserService(userRepo))
	sessionHandler := handler.NewSessionHandler(service.NewSessionService(sessionRepo))
	photoHandler := handler.NewPhotoHandler(service.NewPhotoService(photoRepo, sessionRepo, store), cfg.MaxUploadSize)
	editHandler := handler.NewEditHistoryHandler(service.NewEditHistoryService(editRepo, photoRepo))
	filterHandler := handler.NewFilterHandler(service.NewFilterService())

	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.CORS(cfg.AllowedOrigins))
	r.Use(chimw.Compress(5))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"healthy"}`))
	})

	// Uploaded files are served directly only outside production; a real
	// deployment puts a file server or CDN in front.
	if cfg.Env != "production" {
		fs := http.StripPrefix("/uploads/", http.FileServer(http.Dir(cfg.UploadDir)))
		r.Get("/uploads/*", fs.ServeHTTP)
	}

	r.Route("/api", func(r chi.Router) {
		r.Group(func(r chi.Router) {
			r.Use(middleware.RateLimit(cfg.RateLimitRPS, cfg.RateLimitBurst))
			r.Post("/auth/login", authHandler.HandleLogin)
			r.Post("/auth/register", authHandler.HandleRegister)
			r.Post("/auth/refresh", authHandler.HandleRefresh)
		})

		r.Group(func(r chi.Router) {
			r.Use(middleware.JWTAuth(cfg.JWTSecret))
			r.Post("/auth/logout", authHandler.HandleLogout)
			r.Post("/auth/password/change", authHandler.HandleChangePassword)
			r.Get("/filters", filterHandler.HandleList)

			// Edit history lives under /api, not /api/v1, matching the
			// paths the frontend was built against.
			r.Get("/photos/{photo_id}/edits", editHandler.HandleList)
			r.Post("/photos/{photo_id}/edits", editHandler.HandleCreate)
		})

		r.Route("/v1", func(r chi.Router) {
			r.Use(middleware.JWTAuth(cfg.JWTSecret))

			r.Get("/users/me", userHandler.HandleMe)
			r.Post("/users", userHandler.HandleCreateStudent)
			r.Get("/users", userHandler.HandleListStudents)

			r.Post("/sessions", sessionHandler.HandleCreate)
			r.Get("/sessions", sessionHandler.HandleList)
			r.Patch("/sessions/{session_id}/keywords", sessionHandler.HandleUpdateKeywords)

			r.Post("/photos", photoHandler.HandleUpload)
			r.Get("/photos", photoHandler.HandleList)
			r.Get("/photos/{photo_id}", photoHandler.HandleGet)
			r.Put("/photos/{photo_id}", photoHandler.HandleUpdate)
			r.Delete("/photos/{photo_id}", photoHandler.HandleDelete)
		})
	})

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	go func() {
		slog.Info("server starting", "port", cfg.Port, "env", cfg.Env)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("server forced shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("server stopped")
}
