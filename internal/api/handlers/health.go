package handlers

import (
	"time"

	"taskboard/pkg/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Health/readiness handlers. Semuanya memakai pool koneksi yang sama
// dengan handler lain, tidak membuka koneksi baru per request.

func timestamp() string {
	return time.Now().UTC().Format(time.RFC3339)
}

// Health melaporkan liveness proses plus ping ke database.
func (h *Handler) Health(c *fiber.Ctx) error {
	if err := h.DB.Ping(); err != nil {
		logger.ErrorLogger.Error("Health check failed", zap.Error(err))
		return c.Status(500).JSON(fiber.Map{
			"status":    "unhealthy",
			"database":  "disconnected",
			"timestamp": timestamp(),
		})
	}
	return c.JSON(fiber.Map{
		"status":    "healthy",
		"database":  "connected",
		"timestamp": timestamp(),
		"version":   "1.0.0",
	})
}

// HealthDB menjalankan query trivial untuk memastikan database bisa mengeksekusi query.
func (h *Handler) HealthDB(c *fiber.Ctx) error {
	var one int
	if err := h.DB.QueryRow("SELECT 1").Scan(&one); err != nil {
		logger.ErrorLogger.Error("Database health check failed", zap.Error(err))
		return c.Status(500).JSON(fiber.Map{
			"status":    "unhealthy",
			"database":  "disconnected",
			"timestamp": timestamp(),
		})
	}
	return c.JSON(fiber.Map{
		"status":    "healthy",
		"database":  "connected",
		"timestamp": timestamp(),
	})
}

// Ready memastikan database bukan hanya terhubung tapi juga bisa di-query
// (count ke tabel users). Gagal berarti 503.
func (h *Handler) Ready(c *fiber.Ctx) error {
	var count int
	if err := h.DB.QueryRow("SELECT COUNT(*) FROM users").Scan(&count); err != nil {
		logger.ErrorLogger.Error("Readiness check failed", zap.Error(err))
		return c.Status(503).JSON(fiber.Map{
			"status":    "not_ready",
			"database":  "error",
			"timestamp": timestamp(),
		})
	}
	return c.JSON(fiber.Map{
		"status":      "ready",
		"database":    "connected",
		"users_count": count,
		"timestamp":   timestamp(),
	})
}
