// Command populatedb fills the record store with sample cars.
//
//	populatedb [mongodb-uri]
//
// The URI defaults to MONGODB_URI from the environment.
package main

import (
	"context"
	"os"
	"time"

	"github.com/coolleighton/InventoryApp/internal/config"
	"github.com/coolleighton/InventoryApp/internal/repositories/mongodb"
	"github.com/coolleighton/InventoryApp/pkg/database"
	"github.com/coolleighton/InventoryApp/pkg/logger"
)

func main() {
	log, err := logger.NewLogger(&logger.Config{Level: logger.InfoLevel, Format: "text", AppName: "populatedb"})
	if err != nil {
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		log.WithError(err).Fatal("Failed to load config")
	}

	uri := cfg.Database.URI
	if len(os.Args) > 1 {
		uri = os.Args[1]
	}

	db, err := database.NewMongoDB(&database.DatabaseConfig{
		URI:            uri,
		Database:       cfg.Database.Database,
		MaxPoolSize:    cfg.Database.MaxPoolSize,
		MinPoolSize:    cfg.Database.MinPoolSize,
		ConnectTimeout: cfg.Database.ConnectTimeout,
		SocketTimeout:  cfg.Database.SocketTimeout,
	})
	if err != nil {
		log.WithError(err).Fatal("Failed to connect to MongoDB")
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.WithError(err).Warn("Failed to disconnect from MongoDB")
		}
	}()
	log.Info("Connected to MongoDB")

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	economy := mongodb.NewEconomyCarRepository(db.Database, nil, 0)
	luxury := mongodb.NewLuxuryCarRepository(db.Database, nil, 0)

	if err := seed(ctx, economy, luxury, log); err != nil {
		log.WithError(err).Error("Failed to populate the record store")
		return
	}
	log.Info("Finished populating the record store")
}
