package models

import (
	"time"
)

// TaskStatus represents the status of a task
type TaskStatus string

const (
	StatusTodo       TaskStatus = "TODO"
	StatusInProgress TaskStatus = "IN_PROGRESS"
	StatusWaiting    TaskStatus = "WAITING"
	StatusCompleted  TaskStatus = "COMPLETED"
)

// ValidStatus reports whether s is a known task status.
func ValidStatus(s TaskStatus) bool {
	switch s {
	case StatusTodo, StatusInProgress, StatusWaiting, StatusCompleted:
		return true
	}
	return false
}

// TaskPriority represents the priority of a task
type TaskPriority string

const (
	PriorityLow    TaskPriority = "LOW"
	PriorityMedium TaskPriority = "MEDIUM"
	PriorityHigh   TaskPriority = "HIGH"
	PriorityUrgent TaskPriority = "URGENT"
)

// ValidPriority reports whether p is a known task priority.
func ValidPriority(p TaskPriority) bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh, PriorityUrgent:
		return true
	}
	return false
}

// TaskTimeframe represents the planning horizon of a task
type TaskTimeframe string

const (
	TimeframeToday    TaskTimeframe = "TODAY"
	TimeframeThisWeek TaskTimeframe = "THIS_WEEK"
	TimeframeUpcoming TaskTimeframe = "UPCOMING"
	TimeframeBacklog  TaskTimeframe = "BACKLOG"
)

// ValidTimeframe reports whether t is a known task timeframe.
func ValidTimeframe(t TaskTimeframe) bool {
	switch t {
	case TimeframeToday, TimeframeThisWeek, TimeframeUpcoming, TimeframeBacklog:
		return true
	}
	return false
}

// Task represents a task owned by a single user. Status and Timeframe are
// nullable: meetings carry neither, and a task created without a status
// keeps none until the client sets one.
type Task struct {
	ID          string         `json:"id" gorm:"primaryKey"`
	Title       string         `json:"title" gorm:"not null"`
	Description *string        `json:"description"`
	Status      *TaskStatus    `json:"status"`
	Priority    TaskPriority   `json:"priority" gorm:"default:'MEDIUM'"`
	Timeframe   *TaskTimeframe `json:"timeframe"`
	IsSupport   bool           `json:"isSupport" gorm:"default:false"`
	IsMeeting   bool           `json:"isMeeting" gorm:"default:false"`
	IsDone      bool           `json:"isDone" gorm:"default:false"`
	DueDate     *time.Time     `json:"dueDate"`
	Order       *int           `json:"order" gorm:"column:display_order"`
	UserID      string         `json:"-" gorm:"column:user_id;index"`
	CreatedAt   time.Time      `json:"createdAt"`
	UpdatedAt   time.Time      `json:"updatedAt"`
}

// TableName specifies the table name for Task Model
func (Task) TableName() string {
	return "tasks"
}
