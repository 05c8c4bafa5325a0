// main.go
package main

import (
	"context"
	"log"

	"github.com/Surendar2005/BookMyShow/cmd"
	"github.com/Surendar2005/BookMyShow/internal/data/catalog"
	"github.com/Surendar2005/BookMyShow/internal/data/repository"
	"github.com/Surendar2005/BookMyShow/internal/wire"
	"github.com/Surendar2005/BookMyShow/pkg/database"
	"github.com/Surendar2005/BookMyShow/pkg/utils"

	"go.uber.org/zap"
)

func main() {
	// Load config
	config, err := utils.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	logger, err := utils.InitLogger(config.App.LogPath, config.App.Debug)
	if err != nil {
		log.Printf("Failed to init logger: %v. Using standard log.", err)
		logger, _ = zap.NewProduction()
	}
	defer logger.Sync()

	logger.Info("Starting application",
		zap.String("app", config.App.Name),
		zap.String("port", config.App.Port),
		zap.Bool("debug", config.App.Debug),
	)

	// Connect to database
	db, err := database.InitDB(config.Database)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	logger.Info("Database connected successfully")

	// Ensure the bookings table exists
	if err := repository.InitializeSchema(context.Background(), db); err != nil {
		logger.Fatal("Failed to initialize schema", zap.Error(err))
	}

	// Initialize repositories and the static movie catalog
	repos := repository.NewRepository(db, logger)
	store := catalog.NewStore()

	// Wire all dependencies
	app := wire.Wiring(repos, store, config, logger)

	// Start server
	logger.Info("Starting HTTP server", zap.String("port", config.App.Port))

	cmd.APIServer(app.Router, config.App.Port)
}
