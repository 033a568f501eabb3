package models

import "time"

// User tidak pernah membawa password_hash keluar dari database;
// kolom tersebut hanya diisi placeholder saat create.
type User struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type Task struct {
	ID          int       `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Priority    string    `json:"priority"`
	Completed   bool      `json:"completed"`
	UserID      int       `json:"user_id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
	// Username diambil lewat LEFT JOIN ke tabel users, bisa kosong.
	Username string `json:"username"`
}

type UserStats struct {
	UserID              int     `json:"user_id"`
	TotalTasks          int     `json:"total_tasks"`
	CompletedTasks      int     `json:"completed_tasks"`
	PendingTasks        int     `json:"pending_tasks"`
	HighPriorityTasks   int     `json:"high_priority_tasks"`
	MediumPriorityTasks int     `json:"medium_priority_tasks"`
	LowPriorityTasks    int     `json:"low_priority_tasks"`
	CompletionRate      float64 `json:"completion_rate"`
}

type OverallStats struct {
	TotalUsers        int     `json:"total_users"`
	TotalTasks        int     `json:"total_tasks"`
	CompletedTasks    int     `json:"completed_tasks"`
	PendingTasks      int     `json:"pending_tasks"`
	HighPriorityTasks int     `json:"high_priority_tasks"`
	CompletionRate    float64 `json:"completion_rate"`
}
