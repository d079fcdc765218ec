package database

import (
	"fmt"
	"log/slog" // use slog for structured logging

	"moviehub/internal/config"
	"moviehub/internal/http-api/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func ConnectDB(cfg *config.Config, logger *slog.Logger) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(cfg.DatabaseURL), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Verify the connection
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database handle: %w", err)
	}
	if err := sqlDB.Ping(); err != nil {
		// close the db handle if ping fails to avoid resource leak
		sqlDB.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Run migrations
	if err := runMigrations(db, logger); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	// Index provisioning happens once here, never on the query path. The
	// statements are idempotent so restarts are safe.
	if err := EnsureIndexes(db, logger); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("failed to ensure indexes: %w", err)
	}

	logger.Info("Connected to the database successfully")
	return db, nil
}

func runMigrations(db *gorm.DB, logger *slog.Logger) error {
	if err := db.AutoMigrate(
		&models.Genre{},
		&models.Actor{},
		&models.Language{},
		&models.Movie{},
		&models.Comment{},
	); err != nil {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}

	logger.Info("Database migrations applied successfully")
	return nil
}

// EnsureIndexes creates the indexes the browse pipeline relies on for
// sub-linear matching and the count-only comment join. Their absence changes
// latency, not results.
func EnsureIndexes(db *gorm.DB, logger *slog.Logger) error {
	stmts := []string{
		"CREATE INDEX IF NOT EXISTS idx_movie_genres_genre ON movie_genres (genre_id, movie_id)",
		"CREATE INDEX IF NOT EXISTS idx_movies_year ON movies (year)",
		"CREATE INDEX IF NOT EXISTS idx_comments_movie ON comments (movie_id)",
		"CREATE INDEX IF NOT EXISTS idx_actors_name ON actors (name)",
	}
	for _, stmt := range stmts {
		if err := db.Exec(stmt).Error; err != nil {
			return fmt.Errorf("create index: %w", err)
		}
	}

	logger.Info("Database indexes ensured")
	return nil
}
