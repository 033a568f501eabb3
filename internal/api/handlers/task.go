package handlers

import (
	"database/sql"
	"fmt"
	"strconv"

	"taskboard/internal/models"
	"taskboard/pkg/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Task handlers

// validPriority is a function to validate the priority of a task
// it will return true if the priority is one of the following:
// - low
// - medium
// - high
// and false otherwise
func validPriority(priority string) bool {
	switch priority {
	case "low", "medium", "high":
		return true
	default:
		return false
	}
}

const taskSelect = `
	SELECT t.id, t.title, t.description, t.priority, t.completed, t.user_id,
	       t.created_at, t.updated_at, u.username
	FROM tasks t
	LEFT JOIN users u ON t.user_id = u.id`

func scanTask(row interface{ Scan(...interface{}) error }) (models.Task, error) {
	var task models.Task
	var desc, username sql.NullString
	err := row.Scan(&task.ID, &task.Title, &desc, &task.Priority, &task.Completed,
		&task.UserID, &task.CreatedAt, &task.UpdatedAt, &username)
	task.Description = desc.String
	task.Username = username.String
	return task, err
}

// ListTasks mengambil semua task; filter user_id, completed, dan priority
// bersifat opsional dan digabung dengan AND.
func (h *Handler) ListTasks(c *fiber.Ctx) error {
	query := taskSelect + " WHERE 1=1"
	args := []interface{}{}

	if v := c.Query("user_id"); v != "" {
		uid, err := strconv.Atoi(v)
		if err != nil {
			return c.Status(400).JSON(fiber.Map{"error": "Invalid user_id filter"})
		}
		args = append(args, uid)
		query += fmt.Sprintf(" AND t.user_id = $%d", len(args))
	}
	if v := c.Query("completed"); v != "" {
		// selain "true" dianggap false
		args = append(args, v == "true")
		query += fmt.Sprintf(" AND t.completed = $%d", len(args))
	}
	if v := c.Query("priority"); v != "" {
		args = append(args, v)
		query += fmt.Sprintf(" AND t.priority = $%d", len(args))
	}
	query += " ORDER BY t.created_at DESC"

	rows, err := h.DB.Query(query, args...)
	if err != nil {
		logger.ErrorLogger.Error("Error fetching tasks", zap.Error(err))
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch tasks"})
	}
	defer rows.Close()

	tasks := []models.Task{}
	for rows.Next() {
		task, err := scanTask(rows)
		if err != nil {
			logger.ErrorLogger.Error("Error scanning tasks", zap.Error(err))
			return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch tasks"})
		}
		tasks = append(tasks, task)
	}
	if err = rows.Err(); err != nil {
		logger.ErrorLogger.Error("Error iterating over tasks", zap.Error(err))
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch tasks"})
	}

	return c.JSON(tasks)
}

// GetTask mengambil satu task berdasarkan ID, termasuk username pemiliknya.
func (h *Handler) GetTask(c *fiber.Ctx) error {
	taskID, ok := parseID(c)
	if !ok {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid task ID"})
	}

	task, err := scanTask(h.DB.QueryRow(taskSelect+" WHERE t.id = $1", taskID))
	if err == sql.ErrNoRows {
		return c.Status(404).JSON(fiber.Map{"error": "Task not found"})
	}
	if err != nil {
		logger.ErrorLogger.Error("Error fetching task", zap.Error(err))
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch task"})
	}

	return c.JSON(task)
}

// CreateTask adalah fungsi untuk membuat task baru.
// User pemilik harus sudah ada sebelum task dibuat.
func (h *Handler) CreateTask(c *fiber.Ctx) error {
	// struct CreateTaskRequest menerima inputan dari client
	type CreateTaskRequest struct {
		Title       string `json:"title" validate:"required"`
		Description string `json:"description"`
		Priority    string `json:"priority"`
		UserID      int    `json:"user_id" validate:"required"`
	}

	var req CreateTaskRequest
	if err := c.BodyParser(&req); err != nil {
		logger.ErrorLogger.Error("Bad request in create task", zap.Error(err))
		return c.Status(400).JSON(fiber.Map{"error": "Bad request"})
	}

	// Validasi dengan validator
	if err := h.Validate.Struct(req); err != nil {
		logger.AuditLogger.Warn("Validation error in create task", zap.Error(err))
		return c.Status(400).JSON(fiber.Map{"error": "Title and user_id are required"})
	}

	if req.Priority == "" {
		req.Priority = "medium"
	}
	if !validPriority(req.Priority) {
		return c.Status(400).JSON(fiber.Map{"error": "Priority must be low, medium, or high"})
	}

	// pastikan user ada sebelum insert
	var ownerID int
	err := h.DB.QueryRow("SELECT id FROM users WHERE id = $1", req.UserID).Scan(&ownerID)
	if err == sql.ErrNoRows {
		return c.Status(400).JSON(fiber.Map{"error": "User not found"})
	}
	if err != nil {
		logger.ErrorLogger.Error("Error checking user", zap.Error(err))
		return c.Status(500).JSON(fiber.Map{"error": "Failed to validate user"})
	}

	var taskID int
	err = h.DB.QueryRow(
		"INSERT INTO tasks (title, description, priority, user_id) VALUES ($1, $2, $3, $4) RETURNING id",
		req.Title, req.Description, req.Priority, req.UserID,
	).Scan(&taskID)
	if err != nil {
		logger.ErrorLogger.Error("Error creating task", zap.Error(err))
		return c.Status(500).JSON(fiber.Map{"error": "Failed to create task"})
	}

	logger.AuditLogger.Info("Task created successfully", zap.Int("task_id", taskID))
	return c.Status(201).JSON(fiber.Map{
		"id":          taskID,
		"title":       req.Title,
		"description": req.Description,
		"priority":    req.Priority,
		"user_id":     req.UserID,
		"completed":   false,
		"message":     "Task created successfully",
	})
}

// UpdateTask mengubah hanya field yang dikirim client.
func (h *Handler) UpdateTask(c *fiber.Ctx) error {
	taskID, ok := parseID(c)
	if !ok {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid task ID"})
	}

	// pointer (*) untuk membedakan field kosong dengan field yang tidak dikirim
	type UpdateTaskRequest struct {
		Title       string  `json:"title"`
		Description *string `json:"description"`
		Completed   *bool   `json:"completed"`
		Priority    string  `json:"priority"`
	}

	var req UpdateTaskRequest
	if err := c.BodyParser(&req); err != nil {
		logger.ErrorLogger.Error("Bad request in update task", zap.Error(err))
		return c.Status(400).JSON(fiber.Map{"error": "Bad request"})
	}

	var p patch
	if req.Title != "" {
		p.set("title", req.Title)
	}
	if req.Description != nil {
		p.set("description", *req.Description)
	}
	if req.Completed != nil {
		p.set("completed", *req.Completed)
	}
	if req.Priority != "" {
		if !validPriority(req.Priority) {
			return c.Status(400).JSON(fiber.Map{"error": "Priority must be low, medium, or high"})
		}
		p.set("priority", req.Priority)
	}
	if p.empty() {
		return c.Status(400).JSON(fiber.Map{"error": "At least one field must be provided for update"})
	}

	query, args := p.build("tasks", taskID)
	res, err := h.DB.Exec(query, args...)
	if err != nil {
		logger.ErrorLogger.Error("Error updating task", zap.Error(err))
		return c.Status(500).JSON(fiber.Map{"error": "Failed to update task"})
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return c.Status(404).JSON(fiber.Map{"error": "Task not found"})
	}

	logger.AuditLogger.Info("Task updated successfully", zap.Int("task_id", taskID))
	return c.JSON(fiber.Map{"message": "Task updated successfully"})
}

// DeleteTask menghapus satu task berdasarkan ID.
func (h *Handler) DeleteTask(c *fiber.Ctx) error {
	taskID, ok := parseID(c)
	if !ok {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid task ID"})
	}

	res, err := h.DB.Exec("DELETE FROM tasks WHERE id = $1", taskID)
	if err != nil {
		logger.ErrorLogger.Error("Error deleting task", zap.Error(err))
		return c.Status(500).JSON(fiber.Map{"error": "Failed to delete task"})
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return c.Status(404).JSON(fiber.Map{"error": "Task not found"})
	}

	logger.AuditLogger.Info("Task deleted successfully", zap.Int("task_id", taskID))
	return c.JSON(fiber.Map{"message": "Task deleted successfully"})
}
