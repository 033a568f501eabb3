package handlers_test

import (
	"fmt"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateAndGetTask(t *testing.T) {
	app := newTestApp()

	userID, name, _ := createTestUser(t, app)

	resp, raw := do(t, app, "POST", "/api/tasks", fiber.Map{
		"title":       "Write report",
		"description": "Quarterly numbers",
		"priority":    "high",
		"user_id":     userID,
	})
	require.Equal(t, 201, resp.StatusCode)
	created := decodeObj(t, raw)
	assert.Equal(t, "Task created successfully", created["message"])
	assert.Equal(t, "high", created["priority"])
	assert.Equal(t, false, created["completed"])
	taskID := int(created["id"].(float64))

	resp, raw = do(t, app, "GET", fmt.Sprintf("/api/tasks/%d", taskID), nil)
	require.Equal(t, 200, resp.StatusCode)
	task := decodeObj(t, raw)
	assert.Equal(t, "Write report", task["title"])
	assert.Equal(t, "Quarterly numbers", task["description"])
	assert.Equal(t, float64(userID), task["user_id"])
	// username pemilik ikut lewat LEFT JOIN
	assert.Equal(t, name, task["username"])
}

func TestCreateTaskDefaultPriority(t *testing.T) {
	app := newTestApp()

	userID, _, _ := createTestUser(t, app)

	resp, raw := do(t, app, "POST", "/api/tasks", fiber.Map{"title": "No priority", "user_id": userID})
	require.Equal(t, 201, resp.StatusCode)
	assert.Equal(t, "medium", decodeObj(t, raw)["priority"])
}

func TestCreateTaskValidation(t *testing.T) {
	app := newTestApp()

	userID, _, _ := createTestUser(t, app)

	// title dan user_id wajib diisi
	resp, raw := do(t, app, "POST", "/api/tasks", fiber.Map{"user_id": userID})
	require.Equal(t, 400, resp.StatusCode)
	assert.Equal(t, "Title and user_id are required", decodeObj(t, raw)["error"])

	resp, _ = do(t, app, "POST", "/api/tasks", fiber.Map{"title": "No owner"})
	require.Equal(t, 400, resp.StatusCode)

	// priority di luar enumerasi
	resp, raw = do(t, app, "POST", "/api/tasks", fiber.Map{
		"title": "Bad priority", "user_id": userID, "priority": "urgent",
	})
	require.Equal(t, 400, resp.StatusCode)
	assert.Equal(t, "Priority must be low, medium, or high", decodeObj(t, raw)["error"])
}

// TestCreateTaskUnknownUser: user_id yang tidak ada harus 400 dan tidak
// ada baris yang dibuat.
func TestCreateTaskUnknownUser(t *testing.T) {
	app := newTestApp()

	const unknownUser = 999999
	resp, raw := do(t, app, "POST", "/api/tasks", fiber.Map{"title": "Orphan", "user_id": unknownUser})
	require.Equal(t, 400, resp.StatusCode)
	assert.Equal(t, "User not found", decodeObj(t, raw)["error"])

	resp, raw = do(t, app, "GET", fmt.Sprintf("/api/tasks?user_id=%d", unknownUser), nil)
	require.Equal(t, 200, resp.StatusCode)
	assert.Empty(t, decodeList(t, raw))
}

// TestTaskFilters: filter priority/completed/user_id bersifat AND.
func TestTaskFilters(t *testing.T) {
	app := newTestApp()

	userID, _, _ := createTestUser(t, app)
	createTestTask(t, app, userID, "low one", "low", false)
	createTestTask(t, app, userID, "high one", "high", true)
	createTestTask(t, app, userID, "high two", "high", false)

	// priority=high harus mengembalikan tepat 2 baris milik user ini
	resp, raw := do(t, app, "GET", fmt.Sprintf("/api/tasks?user_id=%d&priority=high", userID), nil)
	require.Equal(t, 200, resp.StatusCode)
	assert.Len(t, decodeList(t, raw), 2)

	// completed=true dikombinasikan dengan priority
	resp, raw = do(t, app, "GET", fmt.Sprintf("/api/tasks?user_id=%d&priority=high&completed=true", userID), nil)
	require.Equal(t, 200, resp.StatusCode)
	list := decodeList(t, raw)
	require.Len(t, list, 1)
	assert.Equal(t, "high one", list[0]["title"])

	resp, raw = do(t, app, "GET", fmt.Sprintf("/api/tasks?user_id=%d&completed=false", userID), nil)
	require.Equal(t, 200, resp.StatusCode)
	assert.Len(t, decodeList(t, raw), 2)

	// filter user_id harus berupa angka
	resp, _ = do(t, app, "GET", "/api/tasks?user_id=abc", nil)
	require.Equal(t, 400, resp.StatusCode)
}

func TestUpdateTask(t *testing.T) {
	app := newTestApp()

	userID, _, _ := createTestUser(t, app)
	taskID := createTestTask(t, app, userID, "Before", "low", false)

	resp, raw := do(t, app, "PUT", fmt.Sprintf("/api/tasks/%d", taskID), fiber.Map{
		"title":     "After",
		"completed": true,
	})
	require.Equal(t, 200, resp.StatusCode)
	assert.Equal(t, "Task updated successfully", decodeObj(t, raw)["message"])

	resp, raw = do(t, app, "GET", fmt.Sprintf("/api/tasks/%d", taskID), nil)
	require.Equal(t, 200, resp.StatusCode)
	task := decodeObj(t, raw)
	assert.Equal(t, "After", task["title"])
	assert.Equal(t, true, task["completed"])
	// field yang tidak dikirim tidak berubah
	assert.Equal(t, "low", task["priority"])
}

// TestUpdateTaskNoFields: body kosong harus 400 dan baris tidak berubah.
func TestUpdateTaskNoFields(t *testing.T) {
	app := newTestApp()

	userID, _, _ := createTestUser(t, app)
	taskID := createTestTask(t, app, userID, "Untouched", "medium", false)

	resp, raw := do(t, app, "PUT", fmt.Sprintf("/api/tasks/%d", taskID), fiber.Map{})
	require.Equal(t, 400, resp.StatusCode)
	assert.Equal(t, "At least one field must be provided for update", decodeObj(t, raw)["error"])

	resp, raw = do(t, app, "GET", fmt.Sprintf("/api/tasks/%d", taskID), nil)
	require.Equal(t, 200, resp.StatusCode)
	task := decodeObj(t, raw)
	assert.Equal(t, "Untouched", task["title"])
	assert.Equal(t, "medium", task["priority"])
	assert.Equal(t, false, task["completed"])
}

func TestUpdateTaskBadPriority(t *testing.T) {
	app := newTestApp()

	userID, _, _ := createTestUser(t, app)
	taskID := createTestTask(t, app, userID, "Priority check", "medium", false)

	resp, raw := do(t, app, "PUT", fmt.Sprintf("/api/tasks/%d", taskID), fiber.Map{"priority": "asap"})
	require.Equal(t, 400, resp.StatusCode)
	assert.Equal(t, "Priority must be low, medium, or high", decodeObj(t, raw)["error"])
}

func TestDeleteTask(t *testing.T) {
	app := newTestApp()

	userID, _, _ := createTestUser(t, app)
	taskID := createTestTask(t, app, userID, "Doomed", "medium", false)

	resp, raw := do(t, app, "DELETE", fmt.Sprintf("/api/tasks/%d", taskID), nil)
	require.Equal(t, 200, resp.StatusCode)
	assert.Equal(t, "Task deleted successfully", decodeObj(t, raw)["message"])

	resp, _ = do(t, app, "GET", fmt.Sprintf("/api/tasks/%d", taskID), nil)
	require.Equal(t, 404, resp.StatusCode)

	// menghapus dua kali: baris sudah tidak ada
	resp, _ = do(t, app, "DELETE", fmt.Sprintf("/api/tasks/%d", taskID), nil)
	require.Equal(t, 404, resp.StatusCode)
}

func TestGetTaskInvalidID(t *testing.T) {
	app := newTestApp()

	resp, raw := do(t, app, "GET", "/api/tasks/abc", nil)
	require.Equal(t, 400, resp.StatusCode)
	assert.Equal(t, "Invalid task ID", decodeObj(t, raw)["error"])

	resp, _ = do(t, app, "GET", "/api/tasks/0", nil)
	require.Equal(t, 400, resp.StatusCode)

	resp, _ = do(t, app, "GET", "/api/tasks/999999", nil)
	require.Equal(t, 404, resp.StatusCode)
}
