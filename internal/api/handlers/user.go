package handlers

import (
	"database/sql"
	"regexp"

	"taskboard/internal/models"
	"taskboard/pkg/logger"

	"github.com/gofiber/fiber/v2"
	"github.com/lib/pq"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// User handlers

var emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// validEmail is a function to validate the email format.
// it only checks the basic local@domain.tld shape, nothing deeper.
func validEmail(email string) bool {
	return emailRegex.MatchString(email)
}

// defaultPassword diisi ke kolom password_hash saat create (dalam bentuk
// bcrypt hash); tidak ada endpoint read yang mengembalikan kolom ini.
const defaultPassword = "defaultpass"

// isDuplicate melaporkan apakah err adalah unique violation dari Postgres.
func isDuplicate(err error) bool {
	pqErr, ok := err.(*pq.Error)
	return ok && pqErr.Code == "23505"
}

// ListUsers mengambil semua user, diurutkan dari yang terbaru.
func (h *Handler) ListUsers(c *fiber.Ctx) error {
	rows, err := h.DB.Query(
		"SELECT id, username, email, created_at, updated_at FROM users ORDER BY created_at DESC")
	if err != nil {
		logger.ErrorLogger.Error("Error fetching users", zap.Error(err))
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch users"})
	}
	defer rows.Close()

	users := []models.User{}
	for rows.Next() {
		var user models.User
		if err := rows.Scan(&user.ID, &user.Name, &user.Email, &user.CreatedAt, &user.UpdatedAt); err != nil {
			logger.ErrorLogger.Error("Error scanning users", zap.Error(err))
			return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch users"})
		}
		users = append(users, user)
	}
	if err = rows.Err(); err != nil {
		logger.ErrorLogger.Error("Error iterating over users", zap.Error(err))
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch users"})
	}

	return c.JSON(users)
}

// GetUser mengambil satu user berdasarkan ID.
func (h *Handler) GetUser(c *fiber.Ctx) error {
	userID, ok := parseID(c)
	if !ok {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid user ID"})
	}

	var user models.User
	err := h.DB.QueryRow(
		"SELECT id, username, email, created_at, updated_at FROM users WHERE id = $1",
		userID).Scan(&user.ID, &user.Name, &user.Email, &user.CreatedAt, &user.UpdatedAt)
	if err == sql.ErrNoRows {
		return c.Status(404).JSON(fiber.Map{"error": "User not found"})
	}
	if err != nil {
		logger.ErrorLogger.Error("Error fetching user", zap.Error(err))
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch user"})
	}

	return c.JSON(user)
}

// CreateUser adalah fungsi untuk membuat user baru.
func (h *Handler) CreateUser(c *fiber.Ctx) error {
	// struct CreateUserRequest menerima inputan dari client
	type CreateUserRequest struct {
		Name  string `json:"name" validate:"required"`
		Email string `json:"email" validate:"required"`
	}

	var req CreateUserRequest
	if err := c.BodyParser(&req); err != nil {
		logger.ErrorLogger.Error("Bad request in create user", zap.Error(err))
		return c.Status(400).JSON(fiber.Map{"error": "Bad request"})
	}

	// Validasi dengan validator
	if err := h.Validate.Struct(req); err != nil {
		logger.AuditLogger.Warn("Validation error in create user", zap.Error(err))
		return c.Status(400).JSON(fiber.Map{"error": "Name and email are required"})
	}

	if !validEmail(req.Email) {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid email format"})
	}

	// Kolom password_hash wajib diisi, gunakan hash dari password default
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(defaultPassword), bcrypt.DefaultCost)
	if err != nil {
		logger.ErrorLogger.Error("Error hashing placeholder password", zap.Error(err))
		return c.Status(500).JSON(fiber.Map{"error": "Failed to create user"})
	}

	var userID int
	err = h.DB.QueryRow(
		"INSERT INTO users (username, email, password_hash) VALUES ($1, $2, $3) RETURNING id",
		req.Name, req.Email, string(hashedPassword),
	).Scan(&userID)
	if err != nil {
		// unique violation pada kolom email dipetakan ke validation error
		if isDuplicate(err) {
			return c.Status(400).JSON(fiber.Map{"error": "Email already exists"})
		}
		logger.ErrorLogger.Error("Error creating user", zap.Error(err))
		return c.Status(500).JSON(fiber.Map{"error": "Failed to create user"})
	}

	logger.AuditLogger.Info("User created successfully", zap.Int("user_id", userID))
	return c.Status(201).JSON(fiber.Map{
		"id":      userID,
		"name":    req.Name,
		"email":   req.Email,
		"message": "User created successfully",
	})
}

// UpdateUser mengubah hanya field yang dikirim client; updated_at selalu di-refresh.
func (h *Handler) UpdateUser(c *fiber.Ctx) error {
	userID, ok := parseID(c)
	if !ok {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid user ID"})
	}

	type UpdateUserRequest struct {
		Name  string `json:"name"`
		Email string `json:"email"`
	}

	var req UpdateUserRequest
	if err := c.BodyParser(&req); err != nil {
		logger.ErrorLogger.Error("Bad request in update user", zap.Error(err))
		return c.Status(400).JSON(fiber.Map{"error": "Bad request"})
	}

	var p patch
	if req.Name != "" {
		p.set("username", req.Name)
	}
	if req.Email != "" {
		p.set("email", req.Email)
	}
	if p.empty() {
		return c.Status(400).JSON(fiber.Map{"error": "At least name or email must be provided"})
	}

	query, args := p.build("users", userID)
	res, err := h.DB.Exec(query, args...)
	if err != nil {
		if isDuplicate(err) {
			return c.Status(400).JSON(fiber.Map{"error": "Email already exists"})
		}
		logger.ErrorLogger.Error("Error updating user", zap.Error(err))
		return c.Status(500).JSON(fiber.Map{"error": "Failed to update user"})
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return c.Status(404).JSON(fiber.Map{"error": "User not found"})
	}

	logger.AuditLogger.Info("User updated successfully", zap.Int("user_id", userID))
	return c.JSON(fiber.Map{"message": "User updated successfully"})
}

// DeleteUser menghapus user beserta semua task miliknya dalam satu transaksi,
// jadi tidak ada kemungkinan task terhapus tanpa user-nya (atau sebaliknya).
func (h *Handler) DeleteUser(c *fiber.Ctx) error {
	userID, ok := parseID(c)
	if !ok {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid user ID"})
	}

	tx, err := h.DB.Begin()
	if err != nil {
		logger.ErrorLogger.Error("Error starting delete transaction", zap.Error(err))
		return c.Status(500).JSON(fiber.Map{"error": "Failed to delete user"})
	}
	defer tx.Rollback()

	// hapus task milik user terlebih dahulu (foreign key tanpa cascade)
	if _, err := tx.Exec("DELETE FROM tasks WHERE user_id = $1", userID); err != nil {
		logger.ErrorLogger.Error("Error deleting user tasks", zap.Error(err))
		return c.Status(500).JSON(fiber.Map{"error": "Failed to delete user tasks"})
	}

	res, err := tx.Exec("DELETE FROM users WHERE id = $1", userID)
	if err != nil {
		logger.ErrorLogger.Error("Error deleting user", zap.Error(err))
		return c.Status(500).JSON(fiber.Map{"error": "Failed to delete user"})
	}
	if n, _ := res.RowsAffected(); n == 0 {
		// rollback lewat defer, task yang terhapus di atas ikut batal
		return c.Status(404).JSON(fiber.Map{"error": "User not found"})
	}

	if err := tx.Commit(); err != nil {
		logger.ErrorLogger.Error("Error committing delete transaction", zap.Error(err))
		return c.Status(500).JSON(fiber.Map{"error": "Failed to delete user"})
	}

	logger.AuditLogger.Info("User deleted successfully", zap.Int("user_id", userID))
	return c.JSON(fiber.Map{"message": "User and associated tasks deleted successfully"})
}
