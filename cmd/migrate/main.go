package main

import (
	"context"
	"os"
	"time"

	"socialrobot-be/internal/config"
	"socialrobot-be/internal/model"
	"socialrobot-be/internal/repository"
	"socialrobot-be/internal/repository/mongodb"
	"socialrobot-be/pkg/database"

	"github.com/fatih/color"
)

func main() {
	cfg := config.Load()

	switch repository.Driver(cfg.Database.Driver) {
	case repository.DriverPostgres:
		migratePostgres(cfg.Database.Connection, cfg.App.Debug)
	case repository.DriverMongo:
		migrateMongo(cfg.Database)
	case repository.DriverMemory:
		color.Yellow("Memory driver has no schema, nothing to migrate")
	default:
		color.Red("Error: unknown DB_DRIVER %q", cfg.Database.Driver)
		os.Exit(1)
	}
}

func migratePostgres(dsn string, debug bool) {
	if dsn == "" {
		color.Red("Error: DB_CONNECTION_STRING is not set")
		os.Exit(1)
	}

	db, err := database.NewGormDBFromDSN(dsn, debug)
	if err != nil {
		color.Red("Error: Failed to connect to database: %v", err)
		os.Exit(1)
	}
	defer database.CloseGormDB(db)

	color.Cyan("Step 1: Setting up extensions...")
	if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS pgcrypto;`).Error; err != nil {
		color.Yellow("Warn: Failed to create pgcrypto: %v. Continuing...", err)
	}

	color.Cyan("Step 2: Running AutoMigrate...")
	models := []interface{}{
		&model.Communication{},
		&model.Prompt{},
		&model.ChatMessage{},
	}
	if err := db.AutoMigrate(models...); err != nil {
		color.Red("Error: AutoMigrate failed: %v", err)
		os.Exit(1)
	}

	color.Green("Success: postgres schema is up to date")
}

func migrateMongo(cfg config.DatabaseConfig) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	client, err := database.NewMongoClient(ctx, cfg.MongoURL)
	if err != nil {
		color.Red("Error: Failed to connect to MongoDB: %v", err)
		os.Exit(1)
	}
	defer client.Disconnect(context.Background())

	color.Cyan("Ensuring indexes on %s...", cfg.Name)
	if err := mongodb.EnsureIndexes(ctx, client.Database(cfg.Name)); err != nil {
		color.Red("Error: Failed to create indexes: %v", err)
		os.Exit(1)
	}

	color.Green("Success: MongoDB indexes are up to date")
}
