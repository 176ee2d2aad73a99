package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"

	"github.com/skyglass/weather-widget/internal/delivery/http"
	"github.com/skyglass/weather-widget/internal/domain"
	"github.com/skyglass/weather-widget/internal/service"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment")
	}

	// Configuration
	cfg := loadConfig()

	// Background table
	backgrounds := service.DefaultBackgrounds()
	if cfg.BackgroundsFile != "" {
		table, err := service.LoadBackgrounds(cfg.BackgroundsFile)
		if err != nil {
			log.Fatalf("Failed to load backgrounds: %v", err)
		}
		backgrounds = table
		log.Printf("Loaded backgrounds from %s", cfg.BackgroundsFile)
	}

	// Dependency Injection: Services
	provider := service.NewProvider(cfg.OpenWeatherAPIKey, cfg.OpenWeatherBaseURL)
	if cfg.OpenWeatherAPIKey == "" {
		log.Println("OPENWEATHER_API_KEY not set, serving demo weather data")
	}

	var assets domain.AssetResolver
	if cfg.VerifyAssets {
		assets = service.NewAssetVerifier()
	}

	controller := service.NewController(
		provider,
		service.NewPresenter(backgrounds),
		assets,
		service.NewClockTicker(),
	)
	defer controller.Close()

	// Fiber App
	app := fiber.New(fiberConfig(cfg))

	// Middleware
	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${status} - ${method} ${path} (${latency})\n",
	}))
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,OPTIONS",
		AllowHeaders: "Origin,Content-Type,Accept",
	}))

	// Routes
	http.SetupRoutes(app, controller)

	// Load the default city on startup
	if cfg.DefaultCity != "" {
		go func() {
			ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
			defer cancel()
			state, err := controller.Trigger(ctx, cfg.DefaultCity)
			if err != nil {
				log.Printf("Default city lookup skipped: %v", err)
				return
			}
			log.Printf("Default city %s loaded: %s", cfg.DefaultCity, state.Status)
		}()
	}

	// Graceful shutdown
	go func() {
		log.Printf("Server starting on :%s", cfg.Port)
		if err := app.Listen(":" + cfg.Port); err != nil {
			log.Fatalf("Server error: %v", err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	if err := app.ShutdownWithTimeout(5 * time.Second); err != nil {
		log.Printf("Server forced to shutdown: %v", err)
	}
	log.Println("Server exited gracefully")
}

// fiberConfig tags the app with its environment; routes are listed on startup outside production
func fiberConfig(cfg *Config) fiber.Config {
	return fiber.Config{
		AppName:           "Weather Widget API v1.0 (" + cfg.Env + ")",
		EnablePrintRoutes: cfg.Env != "production",
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      20 * time.Second,
		ErrorHandler:      http.ErrorHandler,
	}
}

type Config struct {
	OpenWeatherAPIKey  string
	OpenWeatherBaseURL string
	DefaultCity        string
	BackgroundsFile    string
	VerifyAssets       bool
	Port               string
	Env                string
}

func loadConfig() *Config {
	return &Config{
		OpenWeatherAPIKey:  getEnv("OPENWEATHER_API_KEY", ""),
		OpenWeatherBaseURL: getEnv("OPENWEATHER_BASE_URL", service.DefaultOpenWeatherURL),
		DefaultCity:        getEnv("DEFAULT_CITY", "Mumbai"),
		BackgroundsFile:    getEnv("BACKGROUNDS_FILE", ""),
		VerifyAssets:       getEnvBool("VERIFY_ASSETS", true),
		Port:               getEnv("PORT", "8080"),
		Env:                getEnv("GO_ENV", "development"),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		log.Printf("Invalid %s=%q, using %v", key, value, defaultValue)
		return defaultValue
	}
	return b
}
