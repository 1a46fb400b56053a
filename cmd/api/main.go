package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"go-sales-network/internal/handler"
	"go-sales-network/internal/middleware"
	"go-sales-network/internal/model"
	"go-sales-network/internal/repository"
	"go-sales-network/internal/service"
	"go-sales-network/internal/ws"
	"go-sales-network/pkg/database"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
	"gorm.io/gorm"
)

func main() {
	// 1. Load Env
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	// 2. Setup Database
	db := database.ConnectDB()
	db.AutoMigrate(&model.User{}, &model.Contact{}, &model.Product{}, &model.Sale{})

	// 3. Seed default superuser
	seedSuperuser(db)

	// 4. Setup WebSocket Hub
	wsHub := ws.NewHub()
	go wsHub.Run()

	// 5. Dependency Injection (Wiring Layers)
	userRepo := repository.NewUserRepo(db)
	contactRepo := repository.NewContactRepo(db)
	productRepo := repository.NewProductRepo(db)
	saleRepo := repository.NewSaleRepo(db)

	authService := service.NewAuthService(userRepo)
	userService := service.NewUserService(userRepo)
	contactService := service.NewContactService(contactRepo, userRepo, wsHub)
	productService := service.NewProductService(productRepo, userRepo, wsHub)
	saleService := service.NewSaleService(saleRepo, productRepo, contactRepo, userRepo, wsHub)
	dashService := service.NewDashboardService(saleRepo)

	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	contactHandler := handler.NewContactHandler(contactService)
	productHandler := handler.NewProductHandler(productService)
	saleHandler := handler.NewSaleHandler(saleService)
	dashHandler := handler.NewDashboardHandler(dashService)

	// 6. Setup Fiber
	app := fiber.New(fiber.Config{
		AppName: "Sales Network API v1.0",
	})

	// Middleware
	app.Use(logger.New())  // Logging request
	app.Use(recover.New()) // Panic recovery
	app.Use(cors.New())    // CORS

	// 7. Routes

	// ============ PUBLIC ROUTES ============
	auth := app.Group("/auth")
	auth.Post("/login", authHandler.Login)
	auth.Post("/register", authHandler.Register)

	// ============ PROTECTED ROUTES ============
	// All routes below require an authenticated, active user
	protected := app.Group("", middleware.RequireAuth(userRepo))

	// Contact Routes
	contacts := protected.Group("/contacts")
	contacts.Get("/", contactHandler.GetContacts)
	contacts.Post("/", contactHandler.CreateContact)
	contacts.Get("/:id", contactHandler.GetContact)
	contacts.Patch("/:id", contactHandler.UpdateContact)
	contacts.Delete("/:id", contactHandler.DeleteContact)

	// Product Routes
	products := protected.Group("/products")
	products.Get("/", productHandler.GetProducts)
	products.Post("/", productHandler.CreateProduct)
	products.Get("/:id", productHandler.GetProduct)
	products.Patch("/:id", productHandler.UpdateProduct)
	products.Delete("/:id", productHandler.DeleteProduct)

	// Sale Routes
	sales := protected.Group("/sales")
	sales.Get("/", saleHandler.GetSales)
	sales.Post("/create", saleHandler.CreateSale)
	sales.Patch("/update/:id", saleHandler.UpdateSale)
	sales.Delete("/delete/:id", saleHandler.DeleteSale)
	sales.Get("/:id", saleHandler.GetSale)

	// User Management Routes (admin actions)
	users := protected.Group("/users", middleware.RequireStaff())
	users.Get("/", userHandler.GetUsers)
	users.Patch("/:id", userHandler.UpdateUser)
	users.Delete("/:id", middleware.RequireSuperuser(), userHandler.DeleteUser)

	// Network Stats
	protected.Get("/stats", dashHandler.GetNetworkStats)

	// WebSocket Route
	app.Use("/ws", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return c.SendStatus(fiber.StatusUpgradeRequired)
	})
	app.Get("/ws", websocket.New(func(c *websocket.Conn) {
		wsHub.Register <- c
		defer func() { wsHub.Unregister <- c }()

		for {
			// Keep alive loop
			if _, _, err := c.ReadMessage(); err != nil {
				break
			}
		}
	}))

	// 8. Graceful Shutdown
	go func() {
		port := os.Getenv("PORT")
		if port == "" {
			port = "3000"
		}
		if err := app.Listen(":" + port); err != nil {
			log.Panic(err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	if err := app.Shutdown(); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exited")
}

// seedSuperuser creates the default superuser account if it doesn't exist
func seedSuperuser(db *gorm.DB) {
	userRepo := repository.NewUserRepo(db)

	email := os.Getenv("ADMIN_EMAIL")
	if email == "" {
		email = "admin@example.com"
	}

	if _, err := userRepo.FindByEmail(email); err == nil {
		return
	}

	password := os.Getenv("ADMIN_PASSWORD")
	if password == "" {
		password = "admin123"
	}

	admin := &model.User{
		Email:       email,
		FullName:    "Administrator",
		IsActive:    true,
		IsStaff:     true,
		IsSuperuser: true,
	}
	admin.CreatedBy = "system"
	admin.UpdatedBy = "system"

	if err := admin.SetPassword(password); err != nil {
		log.Printf("Warning: Failed to hash admin password: %v", err)
		return
	}

	if err := userRepo.Create(admin); err != nil {
		log.Printf("Warning: Failed to create admin user: %v", err)
	} else {
		log.Printf("✅ Superuser created: %s", email)
	}
}
