package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"carprice-api/internal/adapter/api"
	"carprice-api/internal/adapter/store"
	"carprice-api/internal/config"
	"carprice-api/internal/domain/repository"
	"carprice-api/internal/usecase"

	"github.com/gofiber/fiber/v2"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
)

func main() {
	if err := godotenv.Load(".env"); err != nil {
		log.Println("Warning: .env file not found, using system environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.Println("[CARPRICE] Starting CarPrice AI API...")

	var predictionCache repository.PredictionCache
	if cfg.RedisAddr != "" {
		rdb := redis.NewClient(&redis.Options{
			Addr: cfg.RedisAddr,
		})
		defer rdb.Close()

		pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
		err := rdb.Ping(pingCtx).Err()
		cancel()
		if err == nil {
			predictionCache = store.NewRedisCache(rdb, cfg.CacheTTL)
			log.Printf("[CACHE] Using redis at %s", cfg.RedisAddr)
		} else {
			log.Printf("[CACHE] Warning: redis at %s unreachable, falling back to memory: %v", cfg.RedisAddr, err)
		}
	}
	if predictionCache == nil {
		predictionCache = store.NewMemoryCache(cfg.CacheTTL)
	}

	service := usecase.NewPricingService(
		usecase.WithCache(predictionCache),
		usecase.WithTelemetry(usecase.NewTelemetry()),
	)

	// A failed load leaves the service degraded but still serving.
	if err := service.LoadModel(ctx, store.NewFileModelLoader(cfg.ModelPath, cfg.ModelMetaPath)); err != nil {
		log.Printf("[MODEL] Could not load ML model: %v", err)
	} else {
		log.Printf("[MODEL] Model loaded from %s", cfg.ModelPath)
	}

	if err := service.LoadOptions(ctx, store.NewCSVDataset(cfg.DataPath)); err != nil {
		log.Printf("[OPTIONS] Could not load dataset: %v", err)
	} else {
		log.Printf("[OPTIONS] Dataset loaded: %d rows", service.DatasetSize())
	}

	app := fiber.New(fiber.Config{
		AppName:           "CarPrice AI API",
		EnablePrintRoutes: cfg.Debug,
	})

	handler := api.NewPricingHandler(service, cfg.AppVersion)
	api.SetupRouter(app, handler, cfg.CORSOrigins)

	go func() {
		<-ctx.Done()
		log.Println("[CARPRICE] Shutting down...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := app.ShutdownWithContext(shutdownCtx); err != nil {
			log.Printf("[CARPRICE] Shutdown error: %v", err)
		}
	}()

	log.Printf("[CARPRICE] API ready on %s", cfg.Addr())
	if err := app.Listen(cfg.Addr()); err != nil {
		log.Fatal(err)
	}
}
