package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"

	c "github.com/saikrishna1605/foliofinds/internal/cache"
	h "github.com/saikrishna1605/foliofinds/internal/http"
	"github.com/saikrishna1605/foliofinds/internal/payment"
	"github.com/saikrishna1605/foliofinds/internal/repository"
	s "github.com/saikrishna1605/foliofinds/internal/service"
)

type Config struct {
	HTTPPort        string
	MongoURI        string
	MongoDBName     string
	RedisAddr       string
	RedisPassword   string
	PayPal          payment.Config
	RequestTimeout  time.Duration
	ShutdownTimeout time.Duration
}

func loadConfig() *Config {
	return &Config{
		HTTPPort:      getEnv("HTTP_PORT", "8080"),
		MongoURI:      getEnv("MONGO_URI", "mongodb://localhost:27017"),
		MongoDBName:   getEnv("MONGO_DB_NAME", "folio"),
		RedisAddr:     getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
		PayPal: payment.Config{
			ClientID:        os.Getenv("PAYPAL_CLIENT_ID"),
			Secret:          os.Getenv("PAYPAL_APP_SECRET"),
			APIBase:         os.Getenv("PAYPAL_API_BASE"),
			CurrencyDivisor: getEnvInt64("PAYPAL_CURRENCY_DIVISOR", payment.DefaultCurrencyDivisor),
		},
		RequestTimeout:  30 * time.Second,
		ShutdownTimeout: 10 * time.Second,
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt64(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseInt(value, 10, 64); err == nil {
			return parsed
		}
		log.Printf("invalid value for %s, using default %d", key, defaultValue)
	}
	return defaultValue
}

func main() {
	cfg := loadConfig()

	ctx := context.Background()
	mongoDB, err := repository.ConnectMongoDB(ctx, cfg.MongoURI, cfg.MongoDBName)
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	if err := repository.EnsureIndexes(ctx, mongoDB); err != nil {
		log.Fatalf("Failed to create indexes: %v", err)
	}
	log.Printf("Connected to MongoDB at %s", cfg.MongoURI)

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       0,
	})
	defer redisClient.Close()
	if err := redisClient.Ping(ctx).Err(); err != nil {
		log.Fatalf("Redis connection failed: %v", err)
	}
	log.Printf("Redis ping succeeded")

	paypalClient, err := payment.NewClient(cfg.PayPal)
	if err != nil {
		log.Fatalf("PayPal client configuration error: %v", err)
	}

	cartRepo := repository.NewMongoCartRepository(mongoDB)
	orderRepo := repository.NewMongoOrderRepository(mongoDB)
	bookRepo := repository.NewMongoBookRepository(mongoDB)
	postRepo := repository.NewMongoPostRepository(mongoDB)

	cartCache := c.NewRedisCache(redisClient)
	cartService := s.NewCartService(cartRepo, cartCache)
	checkoutService := s.NewCheckoutService(cartService, orderRepo, paypalClient)
	listingService := s.NewListingService(bookRepo)
	postService := s.NewPostService(postRepo)

	router := h.NewRouter(
		h.NewBookHandler(listingService, cfg.RequestTimeout),
		h.NewPostHandler(postService, cfg.RequestTimeout),
		h.NewCartHandler(cartService, cfg.RequestTimeout),
		h.NewCheckoutHandler(checkoutService, cfg.RequestTimeout),
		cfg.RequestTimeout,
	)

	srv := &http.Server{
		Addr:         ":" + cfg.HTTPPort,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("FolioFinds API starting on :%s", cfg.HTTPPort)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("server error: %v", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("server forced to shutdown: %v", err)
	}

	if err := mongoDB.Client().Disconnect(context.Background()); err != nil {
		log.Printf("mongo disconnect error: %v", err)
	}

	log.Println("server exited")
}
