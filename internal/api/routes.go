package api

import (
	"taskboard/internal/api/handlers"

	"github.com/gofiber/fiber/v2"
)

func RegisterRoutes(app *fiber.App, h *handlers.Handler) {
	// Health
	app.Get("/health", h.Health)
	app.Get("/health/db", h.HealthDB)
	app.Get("/ready", h.Ready)

	api := app.Group("/api")

	// User
	userRoutes := api.Group("/users")
	userRoutes.Get("/", h.ListUsers)
	userRoutes.Post("/", h.CreateUser)
	userRoutes.Get("/:id", h.GetUser)
	userRoutes.Put("/:id", h.UpdateUser)
	userRoutes.Delete("/:id", h.DeleteUser)
	userRoutes.Get("/:id/stats", h.UserStats)

	// Task
	taskRoutes := api.Group("/tasks")
	taskRoutes.Get("/", h.ListTasks)
	taskRoutes.Post("/", h.CreateTask)
	taskRoutes.Get("/:id", h.GetTask)
	taskRoutes.Put("/:id", h.UpdateTask)
	taskRoutes.Delete("/:id", h.DeleteTask)

	// Statistik keseluruhan
	api.Get("/stats", h.OverallStats)
}
