package main

import (
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"

	"moviehub/database"
	"moviehub/internal/config"
	"moviehub/internal/http-api/handler"
	"moviehub/internal/http-api/middleware"
	"moviehub/internal/http-api/repository"
	"moviehub/internal/http-api/service"
	"moviehub/internal/moderation"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("could not load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid config: %v", err)
	}

	logger := newLogger(cfg)
	slog.SetDefault(logger)

	db, err := database.ConnectDB(cfg, logger)
	if err != nil {
		log.Fatalf("could not connect to database: %v", err)
	}

	// Repositories
	movieRepo := repository.NewMovieRepo(db)
	genreRepo := repository.NewGenreRepo(db)
	commentRepo := repository.NewCommentRepository(db)

	// External classifier
	classifier := moderation.NewClient(cfg.ModerationAPIURL, cfg.ModerationTimeout, cfg.ModerationRPS)

	// Services
	movieService := service.NewMovieService(movieRepo)
	genreService := service.NewGenreService(genreRepo)
	commentService := service.NewCommentService(commentRepo, movieRepo, classifier, cfg.ModerationSensitivity)

	// Setup Gin
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	r.Use(middleware.CORS(cfg.CORSOrigins))

	r.GET("/health", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	handler.NewMovieHandler(movieService).RegisterRoutes(api)
	handler.NewGenreHandler(genreService).RegisterRoutes(api.Group("/genres"))
	handler.NewCommentHandler(commentService).RegisterRoutes(api)

	addr := fmt.Sprintf(":%d", cfg.HTTPPort)
	logger.Info("Starting HTTP server", "addr", addr)
	if err := r.Run(addr); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}

func newLogger(cfg *config.Config) *slog.Logger {
	var level slog.Level
	switch cfg.LogLevel {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: level}
	if cfg.LogFormat == "json" {
		return slog.New(slog.NewJSONHandler(os.Stdout, opts))
	}
	return slog.New(slog.NewTextHandler(os.Stdout, opts))
}
