package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/streadway/amqp"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"katalog/internal/handlers"
	"katalog/internal/middleware"
	"katalog/internal/models"
	"katalog/internal/repositories"
	"katalog/internal/services"
	"katalog/pkg/rabbitmq"

	"github.com/spf13/viper"
)

// NewApp wires repositories, services, and handlers into a Fiber app.
// Configuration comes from the environment via viper: with no
// DATABASE_DSN the app runs on in-memory repositories, and a missing or
// unreachable RabbitMQ broker disables eventing instead of failing.
func NewApp() (*fiber.App, *services.AuthService, *rabbitmq.Client, error) {
	viper.SetDefault("DATABASE_DSN", "")
	viper.SetDefault("RABBITMQ_URL", "")
	viper.SetDefault("JWT_SECRET", "dev_jwt_secret")
	viper.AutomaticEnv()

	// --- Repositories ---
	var (
		productRepo repositories.ProductRepository
		userRepo    repositories.UserRepository
	)
	if dsn := viper.GetString("DATABASE_DSN"); dsn != "" {
		db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
		if err != nil {
			return nil, nil, nil, err
		}
		if err := db.AutoMigrate(&models.Product{}, &models.User{}); err != nil {
			return nil, nil, nil, err
		}
		productRepo = repositories.NewGORMProductRepository(db)
		userRepo = repositories.NewGORMUserRepository(db)
	} else {
		log.Println("DATABASE_DSN not set, using in-memory repositories")
		mockRepo := repositories.NewMockProductRepository()
		seedProducts(mockRepo)
		productRepo = mockRepo
		userRepo = repositories.NewMockUserRepository()
	}

	// --- RabbitMQ client (best effort) ---
	var mqClient *rabbitmq.Client
	if mqURL := viper.GetString("RABBITMQ_URL"); mqURL != "" {
		client, err := rabbitmq.NewClient(rabbitmq.Config{URL: mqURL})
		if err != nil {
			log.Printf("Warning: RabbitMQ unavailable, catalog events disabled: %v", err)
		} else {
			mqClient = client
		}
	}

	// --- Services ---
	productService := services.NewProductService(productRepo, mqClient)
	authService := services.NewAuthService(userRepo, viper.GetString("JWT_SECRET"))

	// --- Handlers ---
	productHandler := handlers.NewProductHandler(productService)
	authHandler := handlers.NewAuthHandler(authService)

	// --- Fiber App ---
	app := fiber.New()
	app.Use(logger.New()) // Request logger

	apiV1 := app.Group("/api/v1")
	authHandler.RegisterRoutes(apiV1)
	productHandler.RegisterRoutes(apiV1, middleware.AuthRequired(authService))

	// --- Health Check Endpoint ---
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now().Format(time.RFC3339),
		})
	})

	return app, authService, mqClient, nil
}

func main() {
	viper.SetDefault("APP_PORT", ":8080")
	viper.AutomaticEnv()
	appPort := viper.GetString("APP_PORT")

	app, _, mqClient, err := NewApp()
	if err != nil {
		log.Fatalf("Failed to create app: %v", err)
	}

	// --- Start Catalog Event Consumer ---
	// Downstream consumers (search indexers, cache invalidation) would
	// live in their own process; this inline consumer just logs.
	if mqClient != nil {
		defer mqClient.Close()

		log.Println("Starting RabbitMQ consumer for catalog events...")
		messageHandler := func(msg amqp.Delivery) error {
			log.Printf("Received Catalog Event %s (Tag: %d): %s", msg.Type, msg.DeliveryTag, string(msg.Body))
			return nil // Return nil to acknowledge
		}
		if consumerErr := mqClient.ConsumeCatalogEvents(messageHandler); consumerErr != nil {
			log.Printf("Failed to start RabbitMQ consumer: %v", consumerErr)
		}
	}

	// --- Start HTTP Server ---
	log.Printf("Starting server on port %s", appPort)

	// Graceful shutdown handling
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := app.Listen(appPort); err != nil {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shut down the server
	<-quit
	log.Println("Shutting down server...")

	if err := app.Shutdown(); err != nil {
		log.Printf("Error during Fiber shutdown: %v", err)
	}

	log.Println("Server gracefully stopped")
}

// seedProducts populates the in-memory product repository with some
// starter catalog entries so the API is browsable out of the box.
func seedProducts(repo repositories.ProductRepository) {
	products := []models.Product{
		{ID: "prod-1", Name: "Laptop", Description: "High performance laptop", Price: 1200.00, Category: models.CategoryElectronics, StockQuantity: 10},
		{ID: "prod-2", Name: "Running Shoes", Description: "Lightweight trail shoes", Price: 89.99, Category: models.CategorySports, StockQuantity: 25},
		{ID: "prod-3", Name: "Wireless Mouse", Description: "Ergonomic wireless mouse", Price: 25.00, Category: models.CategoryElectronics, StockQuantity: 50},
	}

	for i := range products {
		if err := repo.Create(&products[i]); err != nil {
			log.Printf("Error seeding product %s: %v", products[i].Name, err)
		} else {
			log.Printf("Seeded product: %s (ID: %s)", products[i].Name, products[i].ID)
		}
	}
}
