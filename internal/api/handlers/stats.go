package handlers

import (
	"math"

	"taskboard/internal/models"
	"taskboard/pkg/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Statistics handlers

// completionRate menghitung persentase task selesai, dibulatkan dua desimal.
// Mengembalikan 0 jika belum ada task sama sekali.
func completionRate(completed, total int) float64 {
	if total == 0 {
		return 0
	}
	return math.Round(float64(completed)/float64(total)*100*100) / 100
}

// UserStats mengambil agregat task untuk satu user dalam satu query.
func (h *Handler) UserStats(c *fiber.Ctx) error {
	userID, ok := parseID(c)
	if !ok {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid user ID"})
	}

	const query = `
		SELECT
			COUNT(*) AS total_tasks,
			COALESCE(SUM(CASE WHEN completed THEN 1 ELSE 0 END), 0) AS completed_tasks,
			COALESCE(SUM(CASE WHEN NOT completed THEN 1 ELSE 0 END), 0) AS pending_tasks,
			COALESCE(SUM(CASE WHEN priority = 'high' THEN 1 ELSE 0 END), 0) AS high_priority_tasks,
			COALESCE(SUM(CASE WHEN priority = 'medium' THEN 1 ELSE 0 END), 0) AS medium_priority_tasks,
			COALESCE(SUM(CASE WHEN priority = 'low' THEN 1 ELSE 0 END), 0) AS low_priority_tasks
		FROM tasks
		WHERE user_id = $1`

	stats := models.UserStats{UserID: userID}
	err := h.DB.QueryRow(query, userID).Scan(
		&stats.TotalTasks,
		&stats.CompletedTasks,
		&stats.PendingTasks,
		&stats.HighPriorityTasks,
		&stats.MediumPriorityTasks,
		&stats.LowPriorityTasks,
	)
	if err != nil {
		logger.ErrorLogger.Error("Error fetching user stats", zap.Error(err))
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch user statistics"})
	}
	stats.CompletionRate = completionRate(stats.CompletedTasks, stats.TotalTasks)

	return c.JSON(stats)
}

// OverallStats mengambil agregat yang sama untuk seluruh user.
func (h *Handler) OverallStats(c *fiber.Ctx) error {
	const query = `
		SELECT
			(SELECT COUNT(*) FROM users) AS total_users,
			(SELECT COUNT(*) FROM tasks) AS total_tasks,
			(SELECT COUNT(*) FROM tasks WHERE completed) AS completed_tasks,
			(SELECT COUNT(*) FROM tasks WHERE NOT completed) AS pending_tasks,
			(SELECT COUNT(*) FROM tasks WHERE priority = 'high') AS high_priority_tasks`

	var stats models.OverallStats
	err := h.DB.QueryRow(query).Scan(
		&stats.TotalUsers,
		&stats.TotalTasks,
		&stats.CompletedTasks,
		&stats.PendingTasks,
		&stats.HighPriorityTasks,
	)
	if err != nil {
		logger.ErrorLogger.Error("Error fetching overall stats", zap.Error(err))
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch statistics"})
	}
	stats.CompletionRate = completionRate(stats.CompletedTasks, stats.TotalTasks)

	return c.JSON(stats)
}
