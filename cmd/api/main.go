package main

import (
	"os"
	"os/signal"
	"syscall"

	"go-retail-admin/internal/handler"
	"go-retail-admin/internal/middleware"
	"go-retail-admin/internal/seed"
	"go-retail-admin/internal/service"
	"go-retail-admin/internal/store"
	"go-retail-admin/internal/ws"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	// 1. Load env and logger
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	if err := godotenv.Load(); err != nil {
		log.Warn().Msg(".env file not found")
	}

	// 2. Setup Stores and seed the demo dataset (state is process-lifetime only)
	stores := store.NewStores()
	if err := seed.Load(stores); err != nil {
		log.Fatal().Err(err).Msg("failed to seed stores")
	}

	// 3. Setup WebSocket Hub
	wsHub := ws.NewHub()
	go wsHub.Run()

	// 4. Dependency Injection (Wiring Layers)
	authService := service.NewAuthService(stores.Accounts)
	accountService := service.NewAccountService(stores.Accounts)
	invService := service.NewInventoryService(stores.Items, wsHub)
	cartService := service.NewCartService(stores.Items, stores.Customers, stores.Orders, wsHub)
	orderService := service.NewOrderService(stores.Orders, stores.Customers, stores.Items)
	attService := service.NewAttendanceService(stores.Attendance, stores.Staff, wsHub)
	dashService := service.NewDashboardService(stores.Orders, stores.Customers, stores.Items)

	authHandler := handler.NewAuthHandler(authService)
	accountHandler := handler.NewAccountHandler(accountService)
	customerHandler := handler.NewCustomerHandler(stores.Customers)
	staffHandler := handler.NewStaffHandler(stores.Staff)
	itemHandler := handler.NewItemHandler(invService)
	cartHandler := handler.NewCartHandler(cartService)
	txHandler := handler.NewTransactionHandler(orderService)
	attHandler := handler.NewAttendanceHandler(attService)
	dashHandler := handler.NewDashboardHandler(dashService)

	// 5. Setup Fiber
	app := fiber.New(fiber.Config{
		AppName: "Retail Admin v1.0",
	})

	// Middleware
	app.Use(logger.New())  // Logging request
	app.Use(recover.New()) // Panic recovery
	app.Use(cors.New())    // CORS

	// 6. Routes
	api := app.Group("/api/v1")

	// ============ PUBLIC ROUTES ============
	auth := api.Group("/auth")
	auth.Post("/login", authHandler.Login)
	auth.Post("/signup", authHandler.SignUp)

	// ============ PROTECTED ROUTES ============
	// All routes below require an active session
	protected := api.Group("", middleware.RequireAuth(stores.Accounts))

	protected.Post("/auth/change-password", authHandler.ChangePassword)

	// Dashboard overview
	protected.Get("/dashboard/stats", dashHandler.GetStats)

	// Customer screen
	protected.Get("/customers", customerHandler.GetCustomers)
	protected.Post("/customers", customerHandler.CreateCustomer)
	protected.Get("/customers/:id", customerHandler.GetCustomer)
	protected.Put("/customers/:id", customerHandler.UpdateCustomer)
	protected.Delete("/customers/:id", customerHandler.DeleteCustomer)

	// Item screen
	protected.Get("/items", itemHandler.GetItems)
	protected.Post("/items", itemHandler.CreateItem)
	protected.Get("/items/:id", itemHandler.GetItem)
	protected.Put("/items/:id", itemHandler.UpdateItem)
	protected.Delete("/items/:id", itemHandler.DeleteItem)

	// Staff screen
	protected.Get("/staff", staffHandler.GetStaff)
	protected.Post("/staff", staffHandler.CreateStaff)
	protected.Get("/staff/:id", staffHandler.GetStaffMember)
	protected.Put("/staff/:id", staffHandler.UpdateStaff)
	protected.Delete("/staff/:id", staffHandler.DeleteStaff)

	// Attendance screen
	protected.Get("/attendance", attHandler.GetAttendance)
	protected.Post("/attendance", attHandler.CreateAttendance)
	protected.Get("/attendance/:id", attHandler.GetSheet)
	protected.Put("/attendance/:id", attHandler.UpdateAttendance)
	protected.Delete("/attendance/:id", attHandler.DeleteAttendance)

	// Order composition (cart) and order history
	protected.Get("/cart", cartHandler.GetCart)
	protected.Post("/cart/customer", cartHandler.SelectCustomer)
	protected.Post("/cart/items", cartHandler.AddItem)
	protected.Put("/cart/items/:itemId", cartHandler.SetQuantity)
	protected.Delete("/cart/items/:itemId", cartHandler.RemoveItem)
	protected.Post("/cart/checkout", cartHandler.Checkout)
	protected.Get("/transactions", txHandler.GetTransactions)
	protected.Get("/transactions/:id", txHandler.GetTransaction)

	// Account management (Admin role only)
	accounts := protected.Group("/accounts", middleware.RequireRole("Admin"))
	accounts.Get("/", accountHandler.GetAccounts)
	accounts.Post("/", accountHandler.CreateAccount)
	accounts.Put("/:email", accountHandler.UpdateAccount)
	accounts.Delete("/:email", accountHandler.DeleteAccount)

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

	// 7. Graceful Shutdown
	go func() {
		port := os.Getenv("PORT")
		if port == "" {
			port = "3000"
		}
		if err := app.Listen(":" + port); err != nil {
			log.Panic().Err(err).Msg("server stopped")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server")
	if err := app.Shutdown(); err != nil {
		log.Fatal().Err(err).Msg("server forced to shutdown")
	}

	log.Info().Msg("server exited")
}
