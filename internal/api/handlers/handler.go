package handlers

import (
	"database/sql"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// Handler memegang dependency yang dipakai semua endpoint.
// Koneksi database dimiliki oleh caller (cmd/api) dan ditutup di sana.
type Handler struct {
	DB       *sql.DB
	Validate *validator.Validate
}

func New(db *sql.DB) *Handler {
	return &Handler{
		DB:       db,
		Validate: validator.New(),
	}
}

// parseID memvalidasi path parameter id: harus integer positif.
func parseID(c *fiber.Ctx) (int, bool) {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return 0, false
	}
	return id, true
}
