package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"

	"storeman/internal/handlers"
	"storeman/internal/middleware"
	"storeman/internal/models"
	"storeman/internal/repositories"
	"storeman/internal/services"

	"github.com/spf13/viper"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	// --- Configuration ---
	// Set up Viper to read configuration from environment variables
	viper.SetDefault("APP_PORT", ":8080")
	viper.SetDefault("DATABASE_DSN", "")
	viper.SetDefault("JWT_SECRET", "change_me_in_production")
	viper.AutomaticEnv() // Load environment variables

	appPort := viper.GetString("APP_PORT")
	databaseDSN := viper.GetString("DATABASE_DSN")
	jwtSecret := viper.GetString("JWT_SECRET")

	// --- Initialize Repositories ---
	// With a DSN configured, products and users are backed by PostgreSQL.
	// Without one the app runs against an in-memory product store, which is
	// enough for local development but needs a DB for users, so auth routes
	// are only registered when a database is present.
	var productRepo repositories.ProductRepository
	var userRepo repositories.UserRepository

	if databaseDSN != "" {
		db, err := gorm.Open(postgres.Open(databaseDSN), &gorm.Config{})
		if err != nil {
			log.Fatalf("Failed to connect to database: %v", err)
		}
		if err := db.AutoMigrate(&models.Product{}, &models.User{}); err != nil {
			log.Fatalf("Failed to migrate database: %v", err)
		}
		productRepo = repositories.NewGORMProductRepository(db)
		userRepo = repositories.NewGORMUserRepository(db)
	} else {
		log.Println("DATABASE_DSN not set, using in-memory product store")
		productRepo = repositories.NewMemoryProductRepository()
	}

	// Seed some initial data
	seedProducts(productRepo)

	// --- Initialize Services ---
	productService := services.NewProductService(productRepo)

	var authService *services.AuthService
	if userRepo != nil {
		authService = services.NewAuthService(userRepo, jwtSecret)
		seedUsers(authService)
	}

	// --- Initialize Handlers ---
	productHandler := handlers.NewProductHandler(productService)

	// --- Initialize Fiber App ---
	app := fiber.New(fiber.Config{
		ErrorHandler: handlers.ErrorHandler,
	})

	// --- Middleware ---
	app.Use(logger.New()) // Request logger

	// --- API Routes ---
	// Group routes under /api/v1
	apiV1 := app.Group("/api/v1")

	if authService != nil {
		authHandler := handlers.NewAuthHandler(authService)
		authHandler.RegisterRoutes(apiV1)

		// Product routes require an authenticated caller holding the user or
		// admin role.
		protected := apiV1.Group("",
			middleware.AuthRequired(authService),
			middleware.RoleRequired(models.RoleUser, models.RoleAdmin),
		)
		productHandler.RegisterRoutes(protected)
	} else {
		// Dev mode without a database has no auth stack, so product routes
		// are open and requests run under a fixed local identity. Without
		// one, the service-level caller check would refuse every create,
		// update, and delete.
		devRoutes := apiV1.Group("", func(c *fiber.Ctx) error {
			c.Locals("username", "local-dev")
			return c.Next()
		})
		productHandler.RegisterRoutes(devRoutes)
	}

	// --- Health Check Endpoint ---
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now().Format(time.RFC3339),
		})
	})

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

// seedProducts populates the product store with some initial data. Seeding is
// idempotent: a product whose name already exists is left untouched.
func seedProducts(repo repositories.ProductRepository) {
	products := []models.Product{
		{Name: "Laptop", Description: "High performance laptop", Price: 1200.00, StockQuantity: 10, Category: "Electronics"},
		{Name: "Keyboard", Description: "Mechanical keyboard", Price: 75.00, StockQuantity: 25, Category: "Accessories"},
		{Name: "Mouse", Description: "Ergonomic wireless mouse", Price: 25.00, StockQuantity: 50, Category: "Accessories"},
	}

	for i := range products {
		existing, err := repo.GetByName(products[i].Name)
		if err != nil {
			log.Printf("Error checking for existing product %s: %v", products[i].Name, err)
			continue
		}
		if existing != nil {
			continue
		}
		if err := repo.Save(&products[i]); err != nil {
			log.Printf("Error seeding product %s: %v", products[i].Name, err)
		} else {
			log.Printf("Seeded product: %s (ID: %d)", products[i].Name, products[i].ID)
		}
	}
}

// seedUsers registers the default user and admin accounts when missing.
func seedUsers(authService *services.AuthService) {
	users := []models.User{
		{Username: "user", Email: "user@storeman.local", Password: "pass", Role: models.RoleUser},
		{Username: "admin", Email: "admin@storeman.local", Password: "pass", Role: models.RoleAdmin},
	}

	for i := range users {
		if err := authService.RegisterUser(&users[i]); err != nil {
			log.Printf("Skipping seed user %s: %v", users[i].Username, err)
		} else {
			log.Printf("Seeded user: %s (role: %s)", users[i].Username, users[i].Role)
		}
	}
}
