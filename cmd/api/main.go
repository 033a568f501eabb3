package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"taskboard/configs"
	"taskboard/internal/api"
	"taskboard/internal/api/handlers"
	"taskboard/internal/middleware"
	"taskboard/internal/repository"
	"taskboard/pkg/database"
	"taskboard/pkg/logger"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"go.uber.org/zap"
)

func main() {
	// Inisialisasi logger
	logger.InitLoggers()
	defer logger.SyncLoggers()
	logger.SystemLogger.Info("Starting application", zap.String("time", time.Now().Format(time.RFC3339)))

	// Load config
	cfg := configs.LoadConfig()
	// Inisialisasi database
	db := database.ConnectDB(cfg)
	defer db.Close()

	logger.SystemLogger.Info("Database Connected")

	// Buat tabel jika belum ada
	repository.CreateTableIfNotExists(db)

	app := fiber.New()

	// Middleware
	app.Use(middleware.ErrorHandler())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowHeaders: "Origin, Content-Type, Accept",
	}))

	// Frontend statis
	app.Static("/", "./web")

	h := handlers.New(db)
	api.RegisterRoutes(app, h)

	// Route yang tidak cocok dengan semua route di atas
	app.Use(func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Route not found"})
	})

	// Tutup listener (lalu koneksi database lewat defer) saat menerima sinyal terminasi
	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		sig := <-quit
		logger.SystemLogger.Info("Shutting down", zap.String("signal", sig.String()))
		_ = app.Shutdown()
	}()

	logger.SystemLogger.Info("Application ready", zap.Int("port", cfg.AppPort))
	if err := app.Listen(fmt.Sprintf(":%d", cfg.AppPort)); err != nil {
		logger.ErrorLogger.Error("Application failed to start", zap.Error(err))
	}
}
