package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/abhishekode/aakash-sweets-restaurant/configs"
	"github.com/abhishekode/aakash-sweets-restaurant/internal/cache"
	"github.com/abhishekode/aakash-sweets-restaurant/internal/events"
	apihttp "github.com/abhishekode/aakash-sweets-restaurant/internal/http"
	"github.com/abhishekode/aakash-sweets-restaurant/internal/logging"
	"github.com/abhishekode/aakash-sweets-restaurant/internal/repository"
	"github.com/abhishekode/aakash-sweets-restaurant/internal/service"
)

func main() {
	_ = godotenv.Load()

	configPath := os.Getenv("FASTBITE_CONFIG")
	if configPath == "" {
		configPath = "configs/config.yaml"
	}

	cfg, err := configs.Load(configPath)
	if err != nil {
		logging.Base().Error("config load failed", "error", err)
		os.Exit(1)
	}

	log := logging.Init("server", cfg.App.LogFile)

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	db, err := repository.ConnectMongoDB(ctx, cfg.Mongo.URI, cfg.Mongo.Database, cfg.Mongo.MaxPoolSize, cfg.Mongo.MinPoolSize)
	if err != nil {
		log.Error("mongodb connect failed", "error", err)
		os.Exit(1)
	}
	defer db.Client().Disconnect(context.Background())

	if err := repository.EnsureIndexes(ctx, db); err != nil {
		log.Error("index bootstrap failed", "error", err)
		os.Exit(1)
	}

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
	})
	defer redisClient.Close()
	if err := redisClient.Ping(ctx).Err(); err != nil {
		// Degrades to MongoDB-only reads; the cache layer logs misfires.
		log.Warn("redis unreachable, menu cache disabled", "error", err)
	}

	var publisher service.OrderEventPublisher
	if cfg.Rabbit.URL != "" {
		conn, err := events.Dial(cfg.Rabbit.URL)
		if err != nil {
			log.Warn("rabbitmq unreachable, order events disabled", "error", err)
		} else {
			defer conn.Close()
			p, err := events.NewPublisher(conn)
			if err != nil {
				log.Warn("rabbitmq publisher setup failed, order events disabled", "error", err)
			} else {
				defer p.Close()
				publisher = p
			}
		}
	}

	cartRepo := repository.NewMongoCartRepository(db)
	foodRepo := repository.NewMongoFoodRepository(db)
	categoryRepo := repository.NewMongoCategoryRepository(db)
	orderRepo := repository.NewMongoOrderRepository(db)
	teamRepo := repository.NewMongoTeamRepository(db)
	contactRepo := repository.NewMongoContactRepository(db)

	cartService := service.NewCartService(cartRepo, foodRepo, logging.New("cart"))
	catalogService := service.NewCatalogService(foodRepo, categoryRepo, cache.NewRedisMenuCache(redisClient), logging.New("catalog"))
	orderService := service.NewOrderService(orderRepo, cartService, publisher, logging.New("orders"))
	teamService := service.NewTeamService(teamRepo)
	contactService := service.NewContactService(contactRepo)

	router := apihttp.NewRouter(cfg, apihttp.Services{
		Carts:    cartService,
		Catalog:  catalogService,
		Orders:   orderService,
		Team:     teamService,
		Contacts: contactService,
	})

	srv := &http.Server{
		Addr:         cfg.App.HTTPAddr,
		Handler:      otelhttp.NewHandler(router, "fastbite-http"),
		ReadTimeout:  orDefault(cfg.HTTP.ReadTimeout, 10*time.Second),
		WriteTimeout: orDefault(cfg.HTTP.WriteTimeout, 10*time.Second),
		IdleTimeout:  orDefault(cfg.HTTP.IdleTimeout, 60*time.Second),
	}

	go func() {
		log.Info("http server starting", "addr", cfg.App.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down server")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), orDefault(cfg.HTTP.ShutdownTimeout, 10*time.Second))
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("server forced to shutdown", "error", err)
	}
}

func orDefault(d, fallback time.Duration) time.Duration {
	if d <= 0 {
		return fallback
	}
	return d
}
