package main

import (
	"context"
	"log"
	"log/slog"
	"os"

	"moviehub/internal/ingestion"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Imports a JSON movie dataset into the catalog. Run the API server once
// first so migrations and indexes exist.
func main() {
	log.Println("Starting catalog import...")

	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		log.Fatal("DATABASE_URL is not set")
	}

	db, err := gorm.Open(postgres.Open(dbURL), &gorm.Config{})
	if err != nil {
		log.Fatalf("could not connect to database: %v", err)
	}

	datasetPath := "./catalog_data.json"
	if len(os.Args) > 1 {
		datasetPath = os.Args[1]
	}

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	importer := ingestion.NewImporter(db, logger)

	count, err := importer.ImportFile(context.Background(), datasetPath)
	if err != nil {
		log.Fatalf("import failed: %v", err)
	}

	log.Printf("Imported %d movies from %s", count, datasetPath)
}
