package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/coolleighton/InventoryApp/internal/config"
	"github.com/coolleighton/InventoryApp/internal/handlers"
	"github.com/coolleighton/InventoryApp/internal/models"
	"github.com/coolleighton/InventoryApp/internal/repositories/interfaces"
	"github.com/coolleighton/InventoryApp/internal/repositories/memory"
	"github.com/coolleighton/InventoryApp/internal/repositories/mongodb"
	"github.com/coolleighton/InventoryApp/internal/services"
	"github.com/coolleighton/InventoryApp/pkg/cache"
	"github.com/coolleighton/InventoryApp/pkg/database"
	"github.com/coolleighton/InventoryApp/pkg/events"
	"github.com/coolleighton/InventoryApp/pkg/logger"
	"github.com/coolleighton/InventoryApp/routes"

	"github.com/gin-gonic/gin"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fallback := logger.NewNop()
		fallback.SetOutput(os.Stderr)
		fallback.Fatalf("Failed to load config: %v", err)
	}

	log, err := logger.NewLogger(&logger.Config{
		Level:      logger.LogLevel(cfg.Log.Level),
		Format:     cfg.Log.Format,
		Output:     cfg.Log.Output,
		TimeFormat: cfg.Log.TimeFormat,
		Caller:     cfg.Log.Caller,
		Colors:     cfg.App.IsDevelopment(),
		AppName:    cfg.App.Name,
		Version:    cfg.App.Version,
	})
	if err != nil {
		fallback := logger.NewNop()
		fallback.SetOutput(os.Stderr)
		fallback.Fatalf("Failed to create logger: %v", err)
	}

	if cfg.App.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	// Record stores
	var (
		economyRepo interfaces.CarRepository[*models.EconomyCar]
		luxuryRepo  interfaces.CarRepository[*models.LuxuryCar]
		ping        func(ctx context.Context) error
		closers     []func() error
	)

	switch cfg.Database.Driver {
	case config.DriverMemory:
		log.Warn("Using the in-memory record store; data is lost on exit")
		economyRepo = memory.NewEconomyCarRepository()
		luxuryRepo = memory.NewLuxuryCarRepository()
	default:
		db, err := database.NewMongoDB(&database.DatabaseConfig{
			URI:            cfg.Database.URI,
			Database:       cfg.Database.Database,
			MaxPoolSize:    cfg.Database.MaxPoolSize,
			MinPoolSize:    cfg.Database.MinPoolSize,
			ConnectTimeout: cfg.Database.ConnectTimeout,
			SocketTimeout:  cfg.Database.SocketTimeout,
		})
		if err != nil {
			log.WithError(err).Fatal("Failed to connect to MongoDB")
		}
		closers = append(closers, db.Close)
		ping = db.Ping
		log.WithField("database", cfg.Database.Database).Info("Connected to MongoDB")

		if cfg.Database.RunMigrations {
			ctx, cancel := context.WithTimeout(context.Background(), cfg.Database.ConnectTimeout)
			err := database.NewMigrator(db.Database, log).Up(ctx)
			cancel()
			if err != nil {
				log.WithError(err).Fatal("Failed to run migrations")
			}
		}

		var carCache mongodb.CacheService
		if cfg.Redis.Enabled {
			redisCache, err := cache.NewRedisCache(&cache.RedisConfig{
				Host:         cfg.Redis.Host,
				Port:         cfg.Redis.Port,
				Password:     cfg.Redis.Password,
				DB:           cfg.Redis.DB,
				PoolSize:     cfg.Redis.PoolSize,
				MinIdleConns: cfg.Redis.MinIdleConns,
				DialTimeout:  cfg.Redis.DialTimeout,
				ReadTimeout:  cfg.Redis.ReadTimeout,
				WriteTimeout: cfg.Redis.WriteTimeout,
				KeyPrefix:    cfg.Redis.KeyPrefix,
			})
			if err != nil {
				log.WithError(err).Fatal("Failed to connect to Redis")
			}
			closers = append(closers, redisCache.Close)
			carCache = redisCache
			log.Info("Car cache enabled")
		}

		economyRepo = mongodb.NewEconomyCarRepository(db.Database, carCache, cfg.Redis.CarTTL)
		luxuryRepo = mongodb.NewLuxuryCarRepository(db.Database, carCache, cfg.Redis.CarTTL)
	}

	// Record-change events
	var publisher events.Publisher = events.NewNoopPublisher()
	if cfg.Kafka.Enabled {
		kafkaPublisher, err := events.NewKafkaPublisher(&events.KafkaConfig{
			Brokers:      cfg.Kafka.Brokers,
			Topic:        cfg.Kafka.Topic,
			WriteTimeout: cfg.Kafka.WriteTimeout,
		})
		if err != nil {
			log.WithError(err).Fatal("Failed to create Kafka publisher")
		}
		publisher = kafkaPublisher
		log.WithField("topic", cfg.Kafka.Topic).Info("Publishing inventory events to Kafka")
	}
	closers = append(closers, publisher.Close)

	// Services
	economyService := services.NewCarService(services.EconomyCars, economyRepo, publisher, log)
	luxuryService := services.NewCarService(services.LuxuryCars, luxuryRepo, publisher, log)
	inventoryService := services.NewInventoryService(economyRepo, luxuryRepo)

	// Initialize Gin router
	router, err := routes.NewRouter(routes.RouterConfig{
		CORSOrigins: cfg.App.CORSOrigins,
		Logger:      log,
	}, routes.Handlers{
		Index: handlers.NewIndexHandler(inventoryService, log),
		Cars: []handlers.CatalogHandler{
			handlers.NewCarHandler(economyService, log),
			handlers.NewCarHandler(luxuryService, log),
		},
		InventoryAPI: handlers.NewInventoryAPIHandler(inventoryService, log),
		CarsAPI: []handlers.CatalogAPIHandler{
			handlers.NewCarAPIHandler(economyService, log),
			handlers.NewCarAPIHandler(luxuryService, log),
		},
		Health: handlers.NewHealthHandler(cfg.App.Version, ping),
	})
	if err != nil {
		log.WithError(err).Fatal("Failed to build router")
	}

	server := &http.Server{
		Addr:         cfg.App.Addr(),
		Handler:      router,
		ReadTimeout:  cfg.App.ReadTimeout,
		WriteTimeout: cfg.App.WriteTimeout,
	}

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		log.WithField("addr", server.Addr).Info("Starting server")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.WithError(err).Fatal("Failed to start server")
		}
	}()

	<-done
	log.Info("Shutting down the server")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.App.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.WithError(err).Error("Failed to shutdown server")
	}

	for i := len(closers) - 1; i >= 0; i-- {
		if err := closers[i](); err != nil {
			log.WithError(err).Warn("Failed to release resource")
		}
	}

	log.Info("Server shutdown successfully")
}
