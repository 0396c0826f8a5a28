package main

import (
	"context"
	"os/signal"
	"syscall"
	"time"

	"go-banksampah/internal/event"
	"go-banksampah/internal/handler"
	"go-banksampah/internal/middleware"
	"go-banksampah/internal/model"
	"go-banksampah/internal/repository"
	"go-banksampah/internal/service"
	"go-banksampah/internal/ws"
	"go-banksampah/pkg/cache"
	"go-banksampah/pkg/config"
	"go-banksampah/pkg/database"
	"go-banksampah/pkg/jwt"
	applog "go-banksampah/pkg/logger"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

func main() {
	// 1. Load config
	cfg, err := config.Load()
	if err != nil {
		logrus.WithError(err).Fatal("invalid configuration")
	}
	log := applog.New(cfg.AppName, cfg.LogLevel)

	// 2. Setup Database
	db, err := database.ConnectDB(cfg.DSN(), log)
	if err != nil {
		log.WithError(err).Fatal("database connection failed")
	}
	// Auto Migrate (Hati-hati di production, sebaiknya pakai tools migrasi terpisah)
	if err := db.AutoMigrate(model.All()...); err != nil {
		log.WithError(err).Fatal("auto migrate failed")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// 3. Token signing
	secret := cfg.JWTSecret
	if secret == "" {
		if secret, err = jwt.RandomSecret(); err != nil {
			log.WithError(err).Fatal("generate jwt secret")
		}
		log.Warn("JWT_SECRET is not set; using an ephemeral secret, tokens will not survive a restart")
	}
	tokens := jwt.NewService(secret, cfg.JWTTTL)

	// 4. Setup WebSocket Hub and event fan-out
	wsHub := ws.NewHub(log)
	go wsHub.Run(ctx)

	var publisher event.Publisher = event.NopPublisher{}
	if len(cfg.KafkaBrokers) > 0 {
		kp, err := event.NewKafkaPublisher(cfg.KafkaBrokers, 5, 3*time.Second)
		if err != nil {
			log.WithError(err).Warn("kafka unavailable, events go to websocket only")
		} else {
			publisher = kp
			log.WithField("brokers", cfg.KafkaBrokers).Info("kafka producer connected")
		}
	}
	dispatcher := event.NewDispatcher(wsHub, publisher, cfg.KafkaTopicPrefix, log)

	// 5. Dependency Injection (Wiring Layers)
	userRepo := repository.NewUserRepo(db)
	tokoRepo := repository.NewTokoRepo(db)
	barangRepo := repository.NewBarangRepo(db)
	bankRepo := repository.NewBankSampahRepo(db)
	sampahRepo := repository.NewSampahRepo(db)
	pelaporanRepo := repository.NewPelaporanRepo(db)
	penukaranRepo := repository.NewPenukaranRepo(db)
	paymentRepo := repository.NewPaymentRepo(db)
	statsRepo := repository.NewStatsRepo(db)

	authService := service.NewAuthService(userRepo, tokens, dispatcher, log)
	userService := service.NewUserService(userRepo, log)
	tokoService := service.NewTokoService(tokoRepo, barangRepo)
	bankService := service.NewBankSampahService(bankRepo, sampahRepo)
	pelaporanService := service.NewPelaporanService(pelaporanRepo, userRepo, dispatcher, log)
	penukaranService := service.NewPenukaranService(penukaranRepo, userRepo, sampahRepo, dispatcher, log)
	paymentService := service.NewPaymentService(paymentRepo, userRepo, barangRepo, dispatcher, log)
	dashService := service.NewDashboardService(statsRepo)

	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	tokoHandler := handler.NewTokoHandler(tokoService)
	bankHandler := handler.NewBankSampahHandler(bankService)
	pelaporanHandler := handler.NewPelaporanHandler(pelaporanService)
	penukaranHandler := handler.NewPenukaranHandler(penukaranService)
	paymentHandler := handler.NewPaymentHandler(paymentService)
	dashHandler := handler.NewDashboardHandler(dashService)

	// 6. Setup Fiber
	app := fiber.New(fiber.Config{
		AppName: cfg.AppName,
	})

	// Middleware
	app.Use(logger.New())  // Logging request
	app.Use(recover.New()) // Panic recovery
	app.Use(cors.New())    // CORS

	// Login and signup are throttled per client when Redis is configured
	authLimit := func(c *fiber.Ctx) error { return c.Next() }
	if cfg.RedisAddr != "" {
		var rdb *redis.Client
		if rdb, err = cache.NewRedis(ctx, cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB); err != nil {
			log.WithError(err).Warn("redis unavailable, rate limiting disabled")
		} else {
			defer rdb.Close()
			authLimit = middleware.RateLimit(rdb, cfg.RateLimit, cfg.RateLimitWindow, log)
		}
	}

	// 7. Routes
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	// ============ AUTH ============
	// Anyone may sign up; role and starting point are honoured only for an admin caller
	optionalAuth := middleware.OptionalAuth(tokens, userRepo)
	app.Post("/signup", authLimit, optionalAuth, authHandler.Signup)
	app.Post("/login", authLimit, authHandler.Login)
	app.Post("/validate-token", authHandler.ValidateToken)
	app.Get("/me", middleware.RequireAuth(tokens, userRepo), authHandler.Me)

	// ============ USERS ============
	app.Get("/users", userHandler.GetUsers)
	app.Get("/users/:id", userHandler.GetUser)
	app.Put("/users/:id", optionalAuth, userHandler.UpdateUser)
	app.Delete("/users/:id", userHandler.DeleteUser)

	// ============ TOKO & BARANG ============
	app.Post("/toko", tokoHandler.CreateToko)
	app.Get("/toko", tokoHandler.GetAllToko)
	app.Get("/toko/:id", tokoHandler.GetToko)
	app.Put("/toko/:id", tokoHandler.UpdateToko)
	app.Delete("/toko/:id", tokoHandler.DeleteToko)

	app.Post("/barang", tokoHandler.CreateBarang)
	app.Get("/barang", tokoHandler.GetAllBarang)
	app.Get("/barang/:id", tokoHandler.GetBarang)
	app.Put("/barang/:id", tokoHandler.UpdateBarang)
	app.Delete("/barang/:id", tokoHandler.DeleteBarang)

	// ============ BANK SAMPAH & SAMPAH ============
	app.Post("/bank-sampah", bankHandler.CreateBankSampah)
	app.Get("/bank-sampah", bankHandler.GetAllBankSampah)
	app.Get("/bank-sampah/:id", bankHandler.GetBankSampah)
	app.Put("/bank-sampah/:id", bankHandler.UpdateBankSampah)
	app.Delete("/bank-sampah/:id", bankHandler.DeleteBankSampah)

	app.Post("/sampah", bankHandler.CreateSampah)
	app.Get("/sampah", bankHandler.GetAllSampah)
	app.Get("/sampah/:id", bankHandler.GetSampah)
	app.Put("/sampah/:id", bankHandler.UpdateSampah)
	app.Delete("/sampah/:id", bankHandler.DeleteSampah)

	// ============ PELAPORAN ============
	app.Post("/pelaporan", pelaporanHandler.CreatePelaporan)
	app.Get("/pelaporan", pelaporanHandler.GetAllPelaporan)
	app.Get("/pelaporan/:id", pelaporanHandler.GetPelaporan)
	app.Put("/pelaporan/:id", pelaporanHandler.UpdatePelaporan)
	app.Delete("/pelaporan/:id", pelaporanHandler.DeletePelaporan)

	// ============ PENUKARAN & PAYMENT ============
	app.Post("/penukaran", penukaranHandler.CreatePenukaran)
	app.Get("/penukaran", penukaranHandler.GetAllPenukaran)
	app.Get("/penukaran/:id", penukaranHandler.GetPenukaran)
	app.Put("/penukaran/:id", penukaranHandler.UpdatePenukaran)
	app.Delete("/penukaran/:id", penukaranHandler.DeletePenukaran)

	app.Post("/payment", paymentHandler.CreatePayment)
	app.Get("/payment", paymentHandler.GetAllPayments)
	app.Get("/payment/:id", paymentHandler.GetPayment)
	app.Put("/payment/:id", paymentHandler.UpdatePayment)
	app.Delete("/payment/:id", paymentHandler.DeletePayment)

	// ============ DASHBOARD (admin) ============
	dashboard := app.Group("/dashboard", middleware.RequireAuth(tokens, userRepo), middleware.RequireRole(model.RoleAdmin))
	dashboard.Get("/stats", dashHandler.GetDashboardStats)
	dashboard.Get("/point-movement", dashHandler.GetPointMovement)

	// WebSocket Route
	app.Use("/ws", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return c.SendStatus(fiber.StatusUpgradeRequired)
	})
	app.Get("/ws", websocket.New(wsHub.Serve))

	// 8. Graceful Shutdown
	go func() {
		if err := app.Listen(":" + cfg.Port); err != nil {
			log.WithError(err).Error("server stopped")
			stop()
		}
	}()

	<-ctx.Done()

	log.Info("Shutting down server...")
	if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
		log.WithError(err).Error("server forced to shutdown")
	}
	if err := dispatcher.Close(); err != nil {
		log.WithError(err).Warn("close event publisher")
	}
	if sqlDB, err := db.DB(); err == nil {
		sqlDB.Close()
	}

	log.Info("Server exited")
}
