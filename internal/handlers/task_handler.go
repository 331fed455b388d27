package handlers

import (
	"net/http"

	"productivity-api/internal/database"
	"productivity-api/internal/models"
	"productivity-api/internal/realtime"
	"productivity-api/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// CreateTaskRequest represents the request payload for creating a task
type CreateTaskRequest struct {
	Title       string                `json:"title" binding:"required"`
	Description *string               `json:"description"`
	Status      *models.TaskStatus    `json:"status"`
	Priority    models.TaskPriority   `json:"priority"`
	Timeframe   *models.TaskTimeframe `json:"timeframe"`
	IsSupport   bool                  `json:"isSupport"`
	IsMeeting   bool                  `json:"isMeeting"`
	IsDone      bool                  `json:"isDone"`
	DueDate     *string               `json:"dueDate"`
}

// UpdateTaskRequest represents the request payload for updating a task.
// Only fields present in the patch are applied; the rest stay untouched.
type UpdateTaskRequest struct {
	Title       *string               `json:"title"`
	Description *string               `json:"description"`
	Status      *models.TaskStatus    `json:"status"`
	Priority    *models.TaskPriority  `json:"priority"`
	Timeframe   *models.TaskTimeframe `json:"timeframe"`
	IsSupport   *bool                 `json:"isSupport"`
	IsMeeting   *bool                 `json:"isMeeting"`
	IsDone      *bool                 `json:"isDone"`
	DueDate     *string               `json:"dueDate"` // empty string clears the due date
}

// ReorderTasksRequest carries the (id, order) batch of a drag-and-drop.
type ReorderTasksRequest struct {
	Tasks []store.OrderUpdate `json:"tasks" binding:"required"`
}

// GetTasks handles GET /api/tasks
// Returns the authenticated user's tasks in display order.
func GetTasks(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	tasks, err := store.List[models.Task](database.GetDB(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch tasks"})
		return
	}
	c.JSON(http.StatusOK, tasks)
}

// GetTaskByID handles GET /api/tasks/:id
func GetTaskByID(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	task, err := store.Get[models.Task](database.GetDB(), userID, c.Param("id"))
	if err != nil {
		respondStoreError(c, err, "Task not found", "Failed to fetch task")
		return
	}
	c.JSON(http.StatusOK, task)
}

// CreateTask handles POST /api/tasks
// Creates a new task for the authenticated user. Status and timeframe stay
// absent unless the client provides them; meetings never carry either.
func CreateTask(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if req.Status != nil && !models.ValidStatus(*req.Status) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid status"})
		return
	}
	if req.Timeframe != nil && !models.ValidTimeframe(*req.Timeframe) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid timeframe"})
		return
	}

	priority := req.Priority
	if priority == "" {
		priority = models.PriorityMedium
	}
	if !models.ValidPriority(priority) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid priority"})
		return
	}

	task := models.Task{
		ID:          uuid.NewString(),
		Title:       req.Title,
		Description: req.Description,
		Status:      req.Status,
		Priority:    priority,
		Timeframe:   req.Timeframe,
		IsSupport:   req.IsSupport,
		IsMeeting:   req.IsMeeting,
		IsDone:      req.IsDone,
		UserID:      userID,
	}

	if req.DueDate != nil && *req.DueDate != "" {
		due, ok := parseDateFlexible(*req.DueDate)
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid dueDate"})
			return
		}
		task.DueDate = &due
	}

	if task.IsMeeting {
		// Meetings carry neither status nor timeframe.
		task.Status = nil
		task.Timeframe = nil
	} else if task.IsDone {
		status := models.StatusCompleted
		task.Status = &status
	}

	if err := store.Create(database.GetDB(), &task); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create task"})
		return
	}

	realtime.GetHub().Publish(userID, realtime.Event{Resource: "tasks", Action: "created", ID: task.ID})
	c.JSON(http.StatusCreated, task)
}

// UpdateTask handles PATCH /api/tasks/:id (PUT is an alias)
// Applies a partial patch to a task owned by the authenticated user.
func UpdateTask(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	db := database.GetDB()
	task, err := store.Get[models.Task](db, userID, c.Param("id"))
	if err != nil {
		respondStoreError(c, err, "Task not found", "Failed to fetch task")
		return
	}

	var req UpdateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if req.Title != nil {
		if *req.Title == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Title cannot be empty"})
			return
		}
		task.Title = *req.Title
	}
	if req.Description != nil {
		task.Description = req.Description
	}
	if req.Status != nil {
		if !models.ValidStatus(*req.Status) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid status"})
			return
		}
		task.Status = req.Status
	}
	if req.Priority != nil {
		if !models.ValidPriority(*req.Priority) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid priority"})
			return
		}
		task.Priority = *req.Priority
	}
	if req.Timeframe != nil {
		if !models.ValidTimeframe(*req.Timeframe) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid timeframe"})
			return
		}
		task.Timeframe = req.Timeframe
	}
	if req.IsSupport != nil {
		task.IsSupport = *req.IsSupport
	}
	if req.IsMeeting != nil {
		task.IsMeeting = *req.IsMeeting
	}
	if req.DueDate != nil {
		if *req.DueDate == "" {
			task.DueDate = nil
		} else {
			due, ok := parseDateFlexible(*req.DueDate)
			if !ok {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid dueDate"})
				return
			}
			task.DueDate = &due
		}
	}

	// isDone and status are coupled: checking a task off forces COMPLETED,
	// unchecking reverts COMPLETED to TODO and leaves any other status
	// alone. The coupling wins over a status supplied in the same patch.
	if req.IsDone != nil {
		task.IsDone = *req.IsDone
		if task.IsDone {
			if !task.IsMeeting {
				status := models.StatusCompleted
				task.Status = &status
			}
		} else if task.Status != nil && *task.Status == models.StatusCompleted {
			status := models.StatusTodo
			task.Status = &status
		}
	}

	if task.IsMeeting {
		task.Status = nil
		task.Timeframe = nil
	}

	if err := store.Save(db, task); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update task"})
		return
	}

	realtime.GetHub().Publish(userID, realtime.Event{Resource: "tasks", Action: "updated", ID: task.ID})
	c.JSON(http.StatusOK, task)
}

// DeleteTask handles DELETE /api/tasks/:id
// Permanently removes a task owned by the authenticated user.
func DeleteTask(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	taskID := c.Param("id")
	if err := store.Delete[models.Task](database.GetDB(), userID, taskID); err != nil {
		respondStoreError(c, err, "Task not found", "Failed to delete task")
		return
	}

	realtime.GetHub().Publish(userID, realtime.Event{Resource: "tasks", Action: "deleted", ID: taskID})
	c.JSON(http.StatusOK, gin.H{
		"message": "Task deleted successfully",
		"id":      taskID,
	})
}

// ReorderTasks handles POST /api/tasks/reorder
// Persists a drag-and-drop batch atomically; one foreign or unknown id
// rejects the whole batch.
func ReorderTasks(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req ReorderTasksRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := store.Reorder[models.Task](database.GetDB(), userID, req.Tasks); err != nil {
		respondStoreError(c, err, "Task not found", "Failed to reorder tasks")
		return
	}

	realtime.GetHub().Publish(userID, realtime.Event{Resource: "tasks", Action: "reordered"})
	c.JSON(http.StatusOK, gin.H{"success": true})
}
